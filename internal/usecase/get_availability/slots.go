package get_availability

import (
	"time"

	"github.com/sansan-reserve/booking-service/internal/domain"
)

// generateTimeSlots генерирует слоты для диапазона [from, to).
// Дни перебираются от дня, содержащего from, до дня, содержащего to,
// не включая последний. Граница дня — локальная полночь в фиксированном
// поясе студии (loc), а не UTC и не пояс вызывающего
func generateTimeSlots(
	from, to time.Time,
	durationMinutes int,
	busy []domain.TimeInterval,
	hours domain.BusinessHours,
	loc *time.Location,
) []domain.Slot {
	slots := make([]domain.Slot, 0)

	// Нормализуем абсолютные моменты в пояс студии до любой математики по часам
	current := from.In(loc)
	end := to.In(loc)

	for current.Before(end) {
		daySlots := generateDaySlots(current, durationMinutes, busy, hours, loc)
		slots = append(slots, daySlots...)
		current = current.AddDate(0, 0, 1)
	}

	return slots
}

// generateDaySlots генерирует слоты одного дня.
// Кандидаты начинаются в hours.StartHour:00 и идут с шагом SlotIntervalMinutes.
// Кандидат попадает в выдачу только если его конец не выходит за hours.EndHour:00:
// переполняющие рабочий день кандидаты молча отбрасываются — не обрезаются
// и не переносятся на следующий день
func generateDaySlots(
	date time.Time,
	durationMinutes int,
	busy []domain.TimeInterval,
	hours domain.BusinessHours,
	loc *time.Location,
) []domain.Slot {
	slots := make([]domain.Slot, 0)

	year, month, day := date.In(loc).Date()
	dayStart := time.Date(year, month, day, hours.StartHour, 0, 0, 0, loc)
	dayEnd := time.Date(year, month, day, hours.EndHour, 0, 0, 0, loc)

	duration := time.Duration(durationMinutes) * time.Minute
	step := time.Duration(hours.SlotIntervalMinutes) * time.Minute

	for current := dayStart; current.Before(dayEnd); current = current.Add(step) {
		slotEnd := current.Add(duration)
		if slotEnd.After(dayEnd) {
			continue
		}

		interval := domain.TimeInterval{Start: current, End: slotEnd}

		// Слот занят только при строгом пересечении с любым занятым интервалом.
		// Слот, заканчивающийся ровно в начале занятого интервала (или
		// начинающийся ровно в его конце), остается доступным
		slots = append(slots, domain.Slot{
			Interval:  interval,
			Available: !interval.OverlapsAny(busy),
		})
	}

	return slots
}
