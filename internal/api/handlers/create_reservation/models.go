package create_reservation

import (
	"time"

	"github.com/sansan-reserve/booking-service/internal/domain"
	createReservation "github.com/sansan-reserve/booking-service/internal/usecase/create_reservation"
)

// ReservationRequest HTTP модель запроса на бронирование
type ReservationRequest struct {
	Token      string `json:"token"`
	LastName   string `json:"lastName"`
	FirstName  string `json:"firstName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	GuestCount *int   `json:"guestCount"`
	HasPet     bool   `json:"hasPet"`
	Menu       string `json:"menu"`
	Start      string `json:"start"`
}

// ReservationResponse HTTP модель успешного ответа
type ReservationResponse struct {
	OK              bool   `json:"ok"`
	EventID         string `json:"eventId"`
	Menu            string `json:"menu"`
	MenuDisplayName string `json:"menuDisplayName"`
	Start           string `json:"start"`
	End             string `json:"end"`
	DurationMinutes int    `json:"durationMinutes"`
}

// ToUseCaseRequest конвертирует HTTP модель в запрос use case.
// guestCount по умолчанию 1, если клиент его не прислал
func (r *ReservationRequest) ToUseCaseRequest(loc *time.Location) (*createReservation.Request, error) {
	start, err := time.Parse(time.RFC3339, r.Start)
	if err != nil {
		return nil, err
	}

	guestCount := 1
	if r.GuestCount != nil {
		guestCount = *r.GuestCount
	}

	return &createReservation.Request{
		Menu:       r.Menu,
		Start:      start.In(loc),
		LastName:   r.LastName,
		FirstName:  r.FirstName,
		Email:      r.Email,
		Phone:      r.Phone,
		GuestCount: guestCount,
		HasPet:     r.HasPet,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		OK:              true,
		EventID:         resp.EventID,
		Menu:            string(resp.Menu),
		MenuDisplayName: resp.MenuDisplayName,
		Start:           resp.Start.Format(domain.WireTimeFormat),
		End:             resp.End.Format(domain.WireTimeFormat),
		DurationMinutes: resp.DurationMinutes,
	}
}
