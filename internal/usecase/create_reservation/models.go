package create_reservation

import (
	"time"

	"github.com/sansan-reserve/booking-service/internal/domain"
)

// Request модель запроса на создание бронирования.
// Эфемерная: после валидации либо превращается в событие календаря, либо отбрасывается
type Request struct {
	Menu       string    `validate:"required"`
	Start      time.Time `validate:"required"`
	LastName   string    `validate:"required,max=100"`
	FirstName  string    `validate:"required,max=100"`
	Email      string    `validate:"required,email"`
	Phone      string    `validate:"omitempty,max=30"`
	GuestCount int       `validate:"gte=1,lte=20"`
	HasPet     bool
}

// Response модель ответа с созданным бронированием
type Response struct {
	EventID         string      // непрозрачный идентификатор, присвоенный календарем
	Menu            domain.Menu // ключ меню
	MenuDisplayName string      // отображаемое название плана
	Start           time.Time   // начало записи (в поясе студии)
	End             time.Time   // конец записи (в поясе студии)
	DurationMinutes int         // длительность в минутах
}
