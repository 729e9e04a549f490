package list_reservations

import (
	"github.com/sansan-reserve/booking-service/internal/domain"
	"github.com/sansan-reserve/booking-service/internal/infra/storage/reservationlog"
)

// ReservationsResponse HTTP response model
type ReservationsResponse struct {
	Reservations []ReservationItem `json:"reservations"`
}

// ReservationItem запись журнала в ответе API
type ReservationItem struct {
	ID              int64  `json:"id"`
	EventID         string `json:"eventId"`
	Menu            string `json:"menu"`
	MenuDisplayName string `json:"menuDisplayName"`
	Start           string `json:"start"`
	End             string `json:"end"`
	LastName        string `json:"lastName"`
	FirstName       string `json:"firstName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	GuestCount      int    `json:"guestCount"`
	HasPet          bool   `json:"hasPet"`
	RequestedAt     string `json:"requestedAt"`
}

// FromEntries конвертирует записи журнала в HTTP response
func FromEntries(entries []*reservationlog.Entry) *ReservationsResponse {
	items := make([]ReservationItem, len(entries))
	for i, e := range entries {
		items[i] = ReservationItem{
			ID:              e.ID,
			EventID:         e.EventID,
			Menu:            e.Menu,
			MenuDisplayName: e.MenuDisplayName,
			Start:           e.StartTime.Format(domain.WireTimeFormat),
			End:             e.EndTime.Format(domain.WireTimeFormat),
			LastName:        e.LastName,
			FirstName:       e.FirstName,
			Email:           e.Email,
			Phone:           e.Phone,
			GuestCount:      e.GuestCount,
			HasPet:          e.HasPet,
			RequestedAt:     e.RequestedAt.Format(domain.WireTimeFormat),
		}
	}

	return &ReservationsResponse{Reservations: items}
}
