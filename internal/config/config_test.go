package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const minimalConfig = `
[auth]
api_token = "secret"

[calendar]
base_url = "http://localhost:8091"
calendar_id = "studio-main"
`

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "booking-service", cfg.Metrics.ServiceName)

	// Студия по умолчанию: JST, 9:00-18:00, шаг 30 минут
	assert.Equal(t, "JST", cfg.Studio.TimezoneName)
	assert.Equal(t, 9, cfg.Studio.UTCOffsetHours)
	assert.Equal(t, 9, cfg.Studio.OpenHour)
	assert.Equal(t, 18, cfg.Studio.CloseHour)
	assert.Equal(t, 30, cfg.Studio.SlotIntervalMinutes)

	assert.Equal(t, 10, cfg.Calendar.Timeout)
	assert.False(t, cfg.Mail.Enabled)
	assert.False(t, cfg.Database.Enabled)
}

func TestLoad_FullConfig(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
[server]
http_port = 9090

[auth]
api_token = "secret"

[studio]
timezone_name = "JST"
utc_offset_hours = 9
open_hour = 10
close_hour = 20
slot_interval_minutes = 15

[calendar]
base_url = "http://calendar:8091"
calendar_id = "studio-main"
timeout = 5

[menus.standard]
duration_minutes = 30
display_name = "15分撮影プラン"
`))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Studio.OpenHour)
	assert.Equal(t, 20, cfg.Studio.CloseHour)
	assert.Equal(t, 15, cfg.Studio.SlotIntervalMinutes)
	assert.Equal(t, 5, cfg.Calendar.Timeout)

	require.Contains(t, cfg.Menus, "standard")
	assert.Equal(t, 30, cfg.Menus["standard"].DurationMinutes)
	assert.Equal(t, "15分撮影プラン", cfg.Menus["standard"].DisplayName)
}

func TestLoad_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "нет api_token",
			content: `
[calendar]
base_url = "http://localhost:8091"
calendar_id = "studio-main"
`,
		},
		{
			name: "нет base_url календаря",
			content: `
[auth]
api_token = "secret"

[calendar]
calendar_id = "studio-main"
`,
		},
		{
			name: "нет calendar_id",
			content: `
[auth]
api_token = "secret"

[calendar]
base_url = "http://localhost:8091"
`,
		},
		{
			name: "смещение пояса вне диапазона",
			content: minimalConfig + `
[studio]
timezone_name = "XXX"
utc_offset_hours = 20
`,
		},
		{
			name: "почта включена без host",
			content: minimalConfig + `
[mail]
enabled = true
`,
		},
		{
			name: "журнал включен без host",
			content: minimalConfig + `
[database]
enabled = true
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "booking",
		Password: "pass",
		DBName:   "booking_service",
		SSLMode:  "disable",
	}
	assert.Equal(t, "host=localhost port=5432 user=booking password=pass dbname=booking_service sslmode=disable", d.DSN())
}
