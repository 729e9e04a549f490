package calendarservice

import "errors"

var (
	// ErrCalendarUnavailable возвращается при любой ошибке обращения к календарному
	// сервису (транспорт, таймаут, 5xx). Для вызывающего это generic upstream ошибка,
	// она никогда не интерпретируется как конфликт слота
	ErrCalendarUnavailable = errors.New("calendarservice client: calendar unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("calendarservice client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("calendarservice client: internal error")
)
