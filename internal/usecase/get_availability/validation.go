package get_availability

import (
	"fmt"

	"github.com/sansan-reserve/booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Диапазон нулевой длины (from == to) корректен и дает пустой список слотов,
// как и длительность, превышающая рабочий день, — это не ошибки
func validateRequest(req *Request) error {
	if req.From.IsZero() {
		return fmt.Errorf("%w: from is required", ErrInvalidInput)
	}

	if req.To.IsZero() {
		return fmt.Errorf("%w: to is required", ErrInvalidInput)
	}

	if req.To.Before(req.From) {
		return fmt.Errorf("%w: to must not be before from", ErrInvalidInput)
	}

	if req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidInput)
	}

	if req.Hours != nil {
		if err := req.Hours.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	return nil
}

// validateBusyIntervals отбрасывает заведомо некорректные интервалы.
// Пересекающиеся между собой занятые интервалы допустимы — предикат
// пересечения проверяется против каждого независимо
func validateBusyIntervals(busy []domain.TimeInterval) []domain.TimeInterval {
	valid := make([]domain.TimeInterval, 0, len(busy))
	for _, b := range busy {
		if b.IsValid() {
			valid = append(valid, b)
		}
	}
	return valid
}
