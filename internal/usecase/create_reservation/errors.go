package create_reservation

import "errors"

var (
	// ErrUnknownMenu возвращается, когда ключ меню отсутствует в каталоге
	ErrUnknownMenu = errors.New("create_reservation: unknown menu")

	// ErrSlotTaken возвращается, когда запрошенный интервал пересекается со
	// свежеполученным занятым интервалом. Единственная ошибка, которая
	// транслируется в 409 — недоступность календаря ею никогда не маскируется
	ErrSlotTaken = errors.New("create_reservation: slot is no longer available")

	// ErrCalendarUnavailable возвращается при любой ошибке обращения к
	// календарному сервису (и при чтении занятости, и при создании события)
	ErrCalendarUnavailable = errors.New("create_reservation: calendar service unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
