package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server   ServerConfig          `toml:"server"`
	Logs     LogsConfig            `toml:"logs"`
	Metrics  MetricsConfig         `toml:"metrics"`
	Auth     AuthConfig            `toml:"auth"`
	Studio   StudioConfig          `toml:"studio"`
	Calendar CalendarConfig        `toml:"calendar"`
	Mail     MailConfig            `toml:"mail"`
	Database DatabaseConfig        `toml:"database"`
	Menus    map[string]MenuConfig `toml:"menus"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AuthConfig общий секрет для POST /reserve
type AuthConfig struct {
	APIToken string `toml:"api_token"`
}

// StudioConfig параметры студии: фиксированный часовой пояс и рабочие часы.
// Смещение задается явно и никогда не берется из таймзоны процесса —
// вся математика по дням и часам считается в этом поясе.
type StudioConfig struct {
	TimezoneName        string `toml:"timezone_name"`    // например "JST"
	UTCOffsetHours      int    `toml:"utc_offset_hours"` // например 9
	OpenHour            int    `toml:"open_hour"`
	CloseHour           int    `toml:"close_hour"`
	SlotIntervalMinutes int    `toml:"slot_interval_minutes"`
}

// CalendarConfig настройки клиента календарного сервиса
type CalendarConfig struct {
	BaseURL    string `toml:"base_url"`
	CalendarID string `toml:"calendar_id"`
	Timeout    int    `toml:"timeout"` // секунды
}

// MailConfig настройки отправки писем-подтверждений
type MailConfig struct {
	Enabled bool   `toml:"enabled"`
	Host    string `toml:"host"`
	Port    int    `toml:"port"`
	From    string `toml:"from"`
}

// DatabaseConfig настройки PostgreSQL для журнала бронирований
type DatabaseConfig struct {
	Enabled         bool   `toml:"enabled"`
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// MenuConfig копия записи каталога меню для сверки при старте.
// Значения обязаны совпадать с internal/domain (menuCatalog).
type MenuConfig struct {
	DurationMinutes int    `toml:"duration_minutes"`
	DisplayName     string `toml:"display_name"`
}

// DSN возвращает строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 15
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Logs.Level == "" {
		cfg.Logs.Level = "info"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "booking-service"
	}
	if cfg.Studio.TimezoneName == "" {
		cfg.Studio.TimezoneName = "JST"
		cfg.Studio.UTCOffsetHours = 9
	}
	if cfg.Studio.OpenHour == 0 && cfg.Studio.CloseHour == 0 {
		cfg.Studio.OpenHour = 9
		cfg.Studio.CloseHour = 18
	}
	if cfg.Studio.SlotIntervalMinutes == 0 {
		cfg.Studio.SlotIntervalMinutes = 30
	}
	if cfg.Calendar.Timeout == 0 {
		cfg.Calendar.Timeout = 10
	}
}

func validate(cfg *Config) error {
	if cfg.Auth.APIToken == "" {
		return fmt.Errorf("config: auth.api_token is required")
	}
	if cfg.Calendar.BaseURL == "" {
		return fmt.Errorf("config: calendar.base_url is required")
	}
	if cfg.Calendar.CalendarID == "" {
		return fmt.Errorf("config: calendar.calendar_id is required")
	}
	if cfg.Studio.UTCOffsetHours < -12 || cfg.Studio.UTCOffsetHours > 14 {
		return fmt.Errorf("config: studio.utc_offset_hours must be in -12..14, got %d", cfg.Studio.UTCOffsetHours)
	}
	if cfg.Mail.Enabled && cfg.Mail.Host == "" {
		return fmt.Errorf("config: mail.host is required when mail is enabled")
	}
	if cfg.Database.Enabled && cfg.Database.Host == "" {
		return fmt.Errorf("config: database.host is required when journal is enabled")
	}
	return nil
}
