package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBusinessHours_Validate(t *testing.T) {
	tests := []struct {
		name    string
		hours   BusinessHours
		wantErr bool
	}{
		{
			name:  "стандартные рабочие часы",
			hours: BusinessHours{StartHour: 9, EndHour: 18, SlotIntervalMinutes: 30},
		},
		{
			name:  "дефолтная конфигурация",
			hours: DefaultBusinessHours,
		},
		{
			name:    "начало после конца",
			hours:   BusinessHours{StartHour: 18, EndHour: 9, SlotIntervalMinutes: 30},
			wantErr: true,
		},
		{
			name:    "начало равно концу",
			hours:   BusinessHours{StartHour: 9, EndHour: 9, SlotIntervalMinutes: 30},
			wantErr: true,
		},
		{
			name:    "нулевой шаг сетки",
			hours:   BusinessHours{StartHour: 9, EndHour: 18, SlotIntervalMinutes: 0},
			wantErr: true,
		},
		{
			name:    "отрицательный час",
			hours:   BusinessHours{StartHour: -1, EndHour: 18, SlotIntervalMinutes: 30},
			wantErr: true,
		},
		{
			name:    "час больше 24",
			hours:   BusinessHours{StartHour: 9, EndHour: 25, SlotIntervalMinutes: 30},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.hours.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
