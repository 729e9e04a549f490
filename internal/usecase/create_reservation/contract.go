package create_reservation

import (
	"context"
	"time"

	"github.com/sansan-reserve/booking-service/internal/domain"
	"github.com/sansan-reserve/booking-service/internal/infra/storage/reservationlog"
	"github.com/sansan-reserve/booking-service/internal/integrations/calendarservice"
)

// CalendarClient интерфейс клиента календарного сервиса
type CalendarClient interface {
	// GetBusyPeriods получает все занятые интервалы, пересекающиеся с [from, to)
	GetBusyPeriods(ctx context.Context, from, to time.Time) ([]domain.TimeInterval, error)
	// CreateEvent создает событие в календаре и возвращает его ID
	CreateEvent(ctx context.Context, input calendarservice.EventInput) (string, error)
}

// MailSender интерфейс отправки письма-подтверждения
type MailSender interface {
	Send(to, subject, body string) error
}

// JournalRepository интерфейс журнала бронирований.
// Журнал — вспомогательная отчетность: ошибки записи не влияют на результат
// бронирования и журнал никогда не используется для расчета доступности
type JournalRepository interface {
	Append(ctx context.Context, entry *reservationlog.Entry) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
