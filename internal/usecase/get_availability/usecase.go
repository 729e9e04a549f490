package get_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/sansan-reserve/booking-service/internal/domain"
)

// UseCase use case для получения слотов доступности.
// Не хранит состояния между вызовами: занятые интервалы запрашиваются
// заново при каждом вызове, календарный сервис — единственный источник правды
type UseCase struct {
	calendarClient CalendarClient
	hours          domain.BusinessHours
	loc            *time.Location
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	calendarClient CalendarClient,
	hours domain.BusinessHours,
	loc *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		calendarClient: calendarClient,
		hours:          hours,
		loc:            loc,
		logger:         logger,
	}
}

// Execute выполняет use case получения слотов доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: from=%s, to=%s, duration=%d",
		req.From.Format(domain.WireTimeFormat), req.To.Format(domain.WireTimeFormat), req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	hours := uc.hours
	if req.Hours != nil {
		hours = *req.Hours
	}

	// 2. Получаем занятые интервалы из календаря (всегда свежие, без кэша)
	busy, err := uc.calendarClient.GetBusyPeriods(ctx, req.From, req.To)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to fetch busy periods: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
	}

	// 3. Генерируем слоты (чистая функция, порядок выдачи = порядок генерации)
	slots := generateTimeSlots(req.From, req.To, req.DurationMinutes, validateBusyIntervals(busy), hours, uc.loc)

	uc.logger.Info("GetAvailability: generated %d slots (%d busy periods)", len(slots), len(busy))

	return &Response{Slots: slots}, nil
}
