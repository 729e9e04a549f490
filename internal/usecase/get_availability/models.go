package get_availability

import (
	"time"

	"github.com/sansan-reserve/booking-service/internal/domain"
)

// Request модель запроса на получение слотов доступности
type Request struct {
	From            time.Time // начало диапазона (включительно)
	To              time.Time // конец диапазона (исключительно)
	DurationMinutes int       // желаемая длительность записи в минутах

	// Hours переопределяет рабочие часы для этого запроса (nil = настройки студии)
	Hours *domain.BusinessHours
}

// Response модель ответа со сгенерированными слотами.
// Слоты упорядочены по возрастанию начала: день за днем, внутри дня по времени
type Response struct {
	Slots []domain.Slot
}
