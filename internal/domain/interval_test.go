package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jst = time.FixedZone("JST", 9*3600)

func at(hour, min int) time.Time {
	return time.Date(2025, 1, 15, hour, min, 0, 0, jst)
}

func TestTimeInterval_Overlaps(t *testing.T) {
	slot := TimeInterval{Start: at(11, 30), End: at(12, 0)}

	tests := []struct {
		name     string
		other    TimeInterval
		expected bool
	}{
		{
			name:     "бронь заканчивается ровно в начале слота - граничат, нет пересечения",
			other:    TimeInterval{Start: at(11, 0), End: at(11, 30)},
			expected: false,
		},
		{
			name:     "бронь начинается ровно в конце слота - граничат, нет пересечения",
			other:    TimeInterval{Start: at(12, 0), End: at(12, 30)},
			expected: false,
		},
		{
			name:     "частичное пересечение в начале слота",
			other:    TimeInterval{Start: at(11, 20), End: at(11, 40)},
			expected: true,
		},
		{
			name:     "частичное пересечение в конце слота",
			other:    TimeInterval{Start: at(11, 50), End: at(12, 10)},
			expected: true,
		},
		{
			name:     "бронь целиком внутри слота",
			other:    TimeInterval{Start: at(11, 35), End: at(11, 55)},
			expected: true,
		},
		{
			name:     "слот целиком внутри брони",
			other:    TimeInterval{Start: at(11, 0), End: at(13, 0)},
			expected: true,
		},
		{
			name:     "идентичные интервалы",
			other:    TimeInterval{Start: at(11, 30), End: at(12, 0)},
			expected: true,
		},
		{
			name:     "бронь целиком до слота",
			other:    TimeInterval{Start: at(9, 0), End: at(10, 0)},
			expected: false,
		},
		{
			name:     "бронь целиком после слота",
			other:    TimeInterval{Start: at(14, 0), End: at(15, 0)},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, slot.Overlaps(tt.other))
			// Пересечение симметрично
			assert.Equal(t, tt.expected, tt.other.Overlaps(slot))
		})
	}
}

func TestTimeInterval_OverlapsAny(t *testing.T) {
	slot := TimeInterval{Start: at(11, 30), End: at(12, 0)}

	busy := []TimeInterval{
		{Start: at(9, 0), End: at(10, 0)},
		{Start: at(14, 0), End: at(15, 0)},
	}
	assert.False(t, slot.OverlapsAny(busy))

	busy = append(busy, TimeInterval{Start: at(11, 45), End: at(12, 15)})
	assert.True(t, slot.OverlapsAny(busy))

	assert.False(t, slot.OverlapsAny(nil))
}

func TestTimeInterval_IsValid(t *testing.T) {
	assert.True(t, TimeInterval{Start: at(10, 0), End: at(11, 0)}.IsValid())
	assert.False(t, TimeInterval{Start: at(11, 0), End: at(11, 0)}.IsValid())
	assert.False(t, TimeInterval{Start: at(12, 0), End: at(11, 0)}.IsValid())
	assert.False(t, TimeInterval{}.IsValid())
}

func TestTimeInterval_Duration(t *testing.T) {
	interval := TimeInterval{Start: at(10, 0), End: at(12, 0)}
	require.Equal(t, 2*time.Hour, interval.Duration())
}
