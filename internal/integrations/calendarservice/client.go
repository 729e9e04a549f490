package calendarservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sansan-reserve/booking-service/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsObserver интерфейс для учета вызовов календарного сервиса (опционально)
type MetricsObserver interface {
	ObserveUpstream(operation, outcome string)
}

// Client клиент для работы с календарным сервисом.
// Календарь — единственный владелец записей о занятых интервалах:
// клиент никогда не кэширует ответы, каждый запрос доступности идет в апстрим.
type Client struct {
	baseURL    string
	calendarID string
	httpClient *http.Client
	log        Logger
	metrics    MetricsObserver
}

// NewClient создает новый экземпляр клиента календарного сервиса
// metrics может быть nil, если метрики выключены
func NewClient(baseURL, calendarID string, timeout time.Duration, log Logger, metrics MetricsObserver) *Client {
	return &Client{
		baseURL:    baseURL,
		calendarID: calendarID,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:     log,
		metrics: metrics,
	}
}

// GetBusyPeriods получает все подтвержденные занятые интервалы календаря,
// пересекающиеся с диапазоном [from, to)
func (c *Client) GetBusyPeriods(ctx context.Context, from, to time.Time) ([]domain.TimeInterval, error) {
	reqURL := fmt.Sprintf("%s/calendars/%s/busy?from=%s&to=%s",
		c.baseURL,
		url.PathEscape(c.calendarID),
		url.QueryEscape(from.Format(domain.WireTimeFormat)),
		url.QueryEscape(to.Format(domain.WireTimeFormat)),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe("busy_fetch", "error")
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrCalendarUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.observe("busy_fetch", "error")
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrCalendarUnavailable, resp.StatusCode, string(body))
	}

	var parsed busyResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		c.observe("busy_fetch", "error")
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	intervals := make([]domain.TimeInterval, 0, len(parsed.Busy))
	for _, p := range parsed.Busy {
		interval, err := parseBusyPeriod(p)
		if err != nil {
			c.observe("busy_fetch", "error")
			return nil, err
		}
		intervals = append(intervals, interval)
	}

	c.observe("busy_fetch", "ok")
	return intervals, nil
}

// CreateEvent создает событие в календаре и возвращает его ID.
// Уведомления приглашенным подавлены (send_invites=false) — подтверждение
// клиенту отправляет сам сервис отдельным письмом
func (c *Client) CreateEvent(ctx context.Context, input EventInput) (string, error) {
	reqURL := fmt.Sprintf("%s/calendars/%s/events", c.baseURL, url.PathEscape(c.calendarID))

	payload := createEventRequest{
		Title:       input.Title,
		Description: input.Description,
		Start:       input.Start.Format(domain.WireTimeFormat),
		End:         input.End.Format(domain.WireTimeFormat),
		Guests:      input.Guests,
		SendInvites: false,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe("create_event", "error")
		return "", fmt.Errorf("%w: failed to execute request: %v", ErrCalendarUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		c.observe("create_event", "error")
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: unexpected status code %d: %s", ErrCalendarUnavailable, resp.StatusCode, string(respBody))
	}

	var parsed createEventResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		c.observe("create_event", "error")
		return "", fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if parsed.ID == "" {
		c.observe("create_event", "error")
		return "", fmt.Errorf("%w: empty event id", ErrInvalidResponse)
	}

	c.observe("create_event", "ok")
	c.log.Info("Calendar event created: event_id=%s, start=%s", parsed.ID, payload.Start)
	return parsed.ID, nil
}

func (c *Client) observe(operation, outcome string) {
	if c.metrics != nil {
		c.metrics.ObserveUpstream(operation, outcome)
	}
}

// parseBusyPeriod разбирает занятый интервал из формата провода
func parseBusyPeriod(p busyPeriod) (domain.TimeInterval, error) {
	start, err := time.Parse(domain.WireTimeFormat, p.Start)
	if err != nil {
		return domain.TimeInterval{}, fmt.Errorf("%w: failed to parse busy start %q: %v", ErrInvalidResponse, p.Start, err)
	}
	end, err := time.Parse(domain.WireTimeFormat, p.End)
	if err != nil {
		return domain.TimeInterval{}, fmt.Errorf("%w: failed to parse busy end %q: %v", ErrInvalidResponse, p.End, err)
	}
	interval := domain.TimeInterval{Start: start, End: end}
	if !interval.IsValid() {
		return domain.TimeInterval{}, fmt.Errorf("%w: busy interval start >= end (%s, %s)", ErrInvalidResponse, p.Start, p.End)
	}
	return interval, nil
}
