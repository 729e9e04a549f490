package domain

import "time"

// TimeInterval represents a half-open time interval [Start, End)
// Used both for busy periods fetched from the calendar and for generated slots
type TimeInterval struct {
	Start time.Time
	End   time.Time
}

// IsValid returns true if the interval is well-formed (Start < End)
func (i TimeInterval) IsValid() bool {
	return i.Start.Before(i.End)
}

// Duration returns the length of the interval
func (i TimeInterval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Overlaps reports whether two intervals actually overlap.
// Интервалы пересекаются, только если:
// - начало другого интервала СТРОГО раньше конца этого И
// - конец другого интервала СТРОГО позже начала этого
//
// Граничные случаи НЕ считаются пересечением:
// - Слот 11:30-12:00, бронь 11:00-11:30 → НЕТ пересечения (граничат)
// - Слот 11:30-12:00, бронь 12:00-12:30 → НЕТ пересечения (граничат)
// - Слот 11:30-12:00, бронь 11:20-11:40 → ЕСТЬ пересечение (11:30-11:40)
func (i TimeInterval) Overlaps(other TimeInterval) bool {
	return i.Start.Before(other.End) && i.End.After(other.Start)
}

// OverlapsAny reports whether the interval overlaps at least one of the busy periods
func (i TimeInterval) OverlapsAny(busy []TimeInterval) bool {
	for _, b := range busy {
		if i.Overlaps(b) {
			return true
		}
	}
	return false
}

// Slot represents a candidate reservation interval with its availability flag.
// Slots are derived data: recomputed on every query, never persisted.
type Slot struct {
	Interval  TimeInterval
	Available bool
}
