package get_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrCalendarUnavailable возвращается, когда не удалось получить занятые
	// интервалы из календарного сервиса. Частичный результат не возвращается
	// никогда: либо полный список слотов, либо ошибка
	ErrCalendarUnavailable = errors.New("get_availability: calendar service unavailable")
)
