package calendarservice

import "time"

// busyResponse ответ календарного сервиса на запрос занятых интервалов
type busyResponse struct {
	Busy []busyPeriod `json:"busy"`
}

// busyPeriod занятый интервал в формате провода (ISO-8601 с фиксированным смещением)
type busyPeriod struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// EventInput данные для создания события в календаре
type EventInput struct {
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	Guests      []string // приглашенные (email), уведомления календаря подавлены
}

// createEventRequest тело запроса на создание события
type createEventRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Start       string   `json:"start"`
	End         string   `json:"end"`
	Guests      []string `json:"guests,omitempty"`
	SendInvites bool     `json:"send_invites"`
}

// createEventResponse ответ календарного сервиса с ID созданного события
type createEventResponse struct {
	ID string `json:"id"`
}

// ErrorResponse модель ошибки от календарного сервиса
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
