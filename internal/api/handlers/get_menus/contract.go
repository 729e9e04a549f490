package get_menus

import (
	"github.com/sansan-reserve/booking-service/internal/domain"
)

type MenusService interface {
	List() []domain.MenuEntry
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
