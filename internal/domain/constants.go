package domain

// Time format constants
const (
	// WireTimeFormat формат временных меток на проводе: ISO-8601 с фиксированным
	// смещением студии (например "2025-01-15T09:00:00+09:00"), не UTC
	WireTimeFormat = "2006-01-02T15:04:05-07:00"

	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:MM
)

// Business validation constants
const (
	MaxGuestCount = 20

	MaxNameLength  = 100
	MaxPhoneLength = 30
)
