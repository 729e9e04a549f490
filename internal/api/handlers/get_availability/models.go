package get_availability

import (
	"time"

	"github.com/sansan-reserve/booking-service/internal/domain"
	getAvailability "github.com/sansan-reserve/booking-service/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Slots []TimeSlot `json:"slots"`
}

// TimeSlot модель слота в ответе API.
// Временные метки — ISO-8601 с фиксированным смещением студии
type TimeSlot struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Available bool   `json:"available"`
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(fromStr, toStr string, durationMin int, loc *time.Location) (*getAvailability.Request, error) {
	from, err := time.Parse(time.RFC3339, fromStr)
	if err != nil {
		return nil, err
	}

	to, err := time.Parse(time.RFC3339, toStr)
	if err != nil {
		return nil, err
	}

	return &getAvailability.Request{
		From:            from.In(loc),
		To:              to.In(loc),
		DurationMinutes: durationMin,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]TimeSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = TimeSlot{
			Start:     slot.Interval.Start.Format(domain.WireTimeFormat),
			End:       slot.Interval.End.Format(domain.WireTimeFormat),
			Available: slot.Available,
		}
	}

	return &AvailabilityResponse{Slots: slots}
}
