package create_reservation

import (
	"context"
	"fmt"
	"time"

	"github.com/sansan-reserve/booking-service/internal/domain"
	"github.com/sansan-reserve/booking-service/internal/infra/mail"
	"github.com/sansan-reserve/booking-service/internal/infra/storage/reservationlog"
	"github.com/sansan-reserve/booking-service/internal/integrations/calendarservice"
)

// UseCase use case создания бронирования по протоколу check-then-create.
//
// Протокол best-effort, НЕ линеаризуемый: между чтением занятости (шаг 4)
// и записью события (шаг 6) второй клиент может пройти свою проверку на тот
// же слот. Распределенной блокировки и условной записи календарь не дает,
// остаточная гонка принята осознанно — вызывающий при конфликте просто
// перезапрашивает доступность и выбирает другой слот
type UseCase struct {
	calendarClient CalendarClient
	journal        JournalRepository // nil, если журнал выключен
	mailSender     MailSender        // nil, если почта выключена
	loc            *time.Location
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
// journal и mailSender могут быть nil
func NewUseCase(
	calendarClient CalendarClient,
	journal JournalRepository,
	mailSender MailSender,
	loc *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		calendarClient: calendarClient,
		journal:        journal,
		mailSender:     mailSender,
		loc:            loc,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: menu=%s, start=%s, email=%s",
		req.Menu, req.Start.Format(domain.WireTimeFormat), req.Email)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Разрешаем меню через каталог: неизвестный ключ не доходит до календаря
	menuKey, err := domain.ParseMenu(req.Menu)
	if err != nil {
		uc.logger.Warn("CreateReservation: unknown menu %q", req.Menu)
		return nil, fmt.Errorf("%w: %q", ErrUnknownMenu, req.Menu)
	}
	entry, _ := domain.LookupMenu(menuKey)

	// 3. Вычисляем интервал записи в поясе студии; запись в прошлое невозможна
	now := uc.timeProvider.Now().In(uc.loc)
	start := req.Start.In(uc.loc)
	if start.Before(now) {
		uc.logger.Warn("CreateReservation: start in the past: %s", start.Format(domain.WireTimeFormat))
		return nil, fmt.Errorf("%w: start must not be in the past", ErrInvalidInput)
	}
	end := start.Add(time.Duration(entry.DurationMinutes) * time.Minute)
	requested := domain.TimeInterval{Start: start, End: end}

	// 4. Повторно запрашиваем занятость непосредственно перед записью.
	// Результат, переданный клиентом или посчитанный ранее, не переиспользуется:
	// устаревшая занятость — ровно та гонка, от которой защищает этот шаг
	busy, err := uc.calendarClient.GetBusyPeriods(ctx, start, end)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to fetch busy periods: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
	}

	// 5. Проверяем пересечение (строгое полуоткрытое, границы не считаются)
	if requested.OverlapsAny(busy) {
		uc.logger.Warn("CreateReservation: slot taken: start=%s, menu=%s",
			start.Format(domain.WireTimeFormat), menuKey)
		return nil, ErrSlotTaken
	}

	// 6. Создаем событие в календаре. Любая ошибка здесь — ошибка апстрима,
	// не конфликт; автоматических повторов нет, политика ретраев на вызывающем
	eventID, err := uc.calendarClient.CreateEvent(ctx, calendarservice.EventInput{
		Title:       buildEventTitle(entry, req),
		Description: buildEventDescription(entry, req, now),
		Start:       start,
		End:         end,
		Guests:      []string{req.Email},
	})
	if err != nil {
		uc.logger.Error("CreateReservation: failed to create event: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
	}

	uc.logger.Info("CreateReservation: event created: event_id=%s, menu=%s, start=%s",
		eventID, menuKey, start.Format(domain.WireTimeFormat))

	// 7. Журнал и письмо-подтверждение — побочные эффекты, не влияющие на результат
	uc.appendJournal(ctx, eventID, menuKey, entry, req, requested, now)
	uc.sendConfirmation(entry, req, requested)

	return &Response{
		EventID:         eventID,
		Menu:            menuKey,
		MenuDisplayName: entry.DisplayName,
		Start:           start,
		End:             end,
		DurationMinutes: entry.DurationMinutes,
	}, nil
}

// appendJournal пишет запись в журнал бронирований (если включен)
func (uc *UseCase) appendJournal(
	ctx context.Context,
	eventID string,
	menuKey domain.Menu,
	entry domain.MenuEntry,
	req *Request,
	interval domain.TimeInterval,
	requestedAt time.Time,
) {
	if uc.journal == nil {
		return
	}

	err := uc.journal.Append(ctx, &reservationlog.Entry{
		EventID:         eventID,
		Menu:            string(menuKey),
		MenuDisplayName: entry.DisplayName,
		StartTime:       interval.Start,
		EndTime:         interval.End,
		LastName:        req.LastName,
		FirstName:       req.FirstName,
		Email:           req.Email,
		Phone:           req.Phone,
		GuestCount:      req.GuestCount,
		HasPet:          req.HasPet,
		RequestedAt:     requestedAt,
	})
	if err != nil {
		uc.logger.Error("CreateReservation: failed to append journal entry for event_id=%s: %v", eventID, err)
	}
}

// sendConfirmation отправляет письмо-подтверждение клиенту (если почта включена)
func (uc *UseCase) sendConfirmation(entry domain.MenuEntry, req *Request, interval domain.TimeInterval) {
	if uc.mailSender == nil {
		return
	}

	params := mail.ConfirmationParams{
		LastName:        req.LastName,
		FirstName:       req.FirstName,
		Email:           req.Email,
		Phone:           req.Phone,
		GuestCount:      req.GuestCount,
		HasPet:          req.HasPet,
		MenuDisplayName: entry.DisplayName,
		DurationMinutes: entry.DurationMinutes,
		Start:           interval.Start,
		End:             interval.End,
	}

	if err := uc.mailSender.Send(req.Email, mail.ConfirmationSubject(params), mail.ConfirmationBody(params)); err != nil {
		uc.logger.Error("CreateReservation: failed to send confirmation email to %s: %v", req.Email, err)
	}
}
