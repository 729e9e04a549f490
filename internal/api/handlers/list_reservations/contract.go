package list_reservations

import (
	"context"
	"time"

	"github.com/sansan-reserve/booking-service/internal/infra/storage/reservationlog"
)

type JournalRepository interface {
	ListByDateRange(ctx context.Context, from, to time.Time) ([]*reservationlog.Entry, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
