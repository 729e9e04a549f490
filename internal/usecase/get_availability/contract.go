package get_availability

import (
	"context"
	"time"

	"github.com/sansan-reserve/booking-service/internal/domain"
)

// CalendarClient интерфейс клиента календарного сервиса
type CalendarClient interface {
	// GetBusyPeriods получает все занятые интервалы, пересекающиеся с [from, to)
	GetBusyPeriods(ctx context.Context, from, to time.Time) ([]domain.TimeInterval, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
