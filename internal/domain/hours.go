package domain

import "fmt"

// BusinessHours defines the daily window and step within which slots are generated
type BusinessHours struct {
	StartHour           int // час открытия (0-23)
	EndHour             int // час закрытия (0-23)
	SlotIntervalMinutes int // шаг между началами слотов в минутах
}

// DefaultBusinessHours студийное расписание по умолчанию: 9:00-18:00, шаг 30 минут
var DefaultBusinessHours = BusinessHours{
	StartHour:           9,
	EndHour:             18,
	SlotIntervalMinutes: 30,
}

// Validate checks the invariants of the business hours configuration
func (h BusinessHours) Validate() error {
	if h.StartHour < 0 || h.StartHour > 23 {
		return fmt.Errorf("business hours: startHour must be in 0..23, got %d", h.StartHour)
	}
	if h.EndHour < 0 || h.EndHour > 23 {
		return fmt.Errorf("business hours: endHour must be in 0..23, got %d", h.EndHour)
	}
	if h.StartHour >= h.EndHour {
		return fmt.Errorf("business hours: startHour (%d) must be before endHour (%d)", h.StartHour, h.EndHour)
	}
	if h.SlotIntervalMinutes <= 0 {
		return fmt.Errorf("business hours: slotIntervalMinutes must be positive, got %d", h.SlotIntervalMinutes)
	}
	return nil
}
