package menus

import (
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sansan-reserve/booking-service/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validMirror() map[string]MirrorEntry {
	mirror := make(map[string]MirrorEntry)
	for _, entry := range domain.MenuCatalog() {
		mirror[string(entry.Key)] = MirrorEntry{
			DurationMinutes: entry.DurationMinutes,
			DisplayName:     entry.DisplayName,
		}
	}
	return mirror
}

func TestService_VerifyMirror(t *testing.T) {
	svc := NewService(nopLogger{})

	t.Run("полное совпадение", func(t *testing.T) {
		assert.NoError(t, svc.VerifyMirror(validMirror()))
	})

	t.Run("лишняя запись", func(t *testing.T) {
		mirror := validMirror()
		mirror["deluxe"] = MirrorEntry{DurationMinutes: 90, DisplayName: "deluxe"}

		err := svc.VerifyMirror(mirror)
		assert.ErrorIs(t, err, ErrMirrorMismatch)
	})

	t.Run("отсутствующая запись", func(t *testing.T) {
		mirror := validMirror()
		delete(mirror, "premium")

		err := svc.VerifyMirror(mirror)
		assert.ErrorIs(t, err, ErrMirrorMismatch)
	})

	t.Run("расхождение длительности", func(t *testing.T) {
		mirror := validMirror()
		m := mirror["standard"]
		m.DurationMinutes = 45
		mirror["standard"] = m

		err := svc.VerifyMirror(mirror)
		assert.ErrorIs(t, err, ErrMirrorMismatch)
	})

	t.Run("расхождение названия", func(t *testing.T) {
		mirror := validMirror()
		m := mirror["family"]
		m.DisplayName = "другое название"
		mirror["family"] = m

		err := svc.VerifyMirror(mirror)
		assert.ErrorIs(t, err, ErrMirrorMismatch)
	})
}

// TestConfigMirrorConformance сверяет реальный config.toml репозитория
// со встроенным каталогом: ровно та же проверка, что выполняется при старте
func TestConfigMirrorConformance(t *testing.T) {
	var cfg struct {
		Menus map[string]struct {
			DurationMinutes int    `toml:"duration_minutes"`
			DisplayName     string `toml:"display_name"`
		} `toml:"menus"`
	}

	_, err := toml.DecodeFile("../../../config.toml", &cfg)
	require.NoError(t, err)

	mirror := make(map[string]MirrorEntry, len(cfg.Menus))
	for key, m := range cfg.Menus {
		mirror[key] = MirrorEntry{
			DurationMinutes: m.DurationMinutes,
			DisplayName:     m.DisplayName,
		}
	}

	svc := NewService(nopLogger{})
	assert.NoError(t, svc.VerifyMirror(mirror))
}

func TestService_List(t *testing.T) {
	svc := NewService(nopLogger{})

	entries := svc.List()
	require.Len(t, entries, 4)
	assert.Equal(t, domain.MenuStandard, entries[0].Key)
	assert.Equal(t, domain.MenuWedding, entries[3].Key)
}

func TestService_Lookup(t *testing.T) {
	svc := NewService(nopLogger{})

	entry, ok := svc.Lookup(domain.MenuPremium)
	require.True(t, ok)
	assert.Equal(t, 60, entry.DurationMinutes)

	_, ok = svc.Lookup(domain.Menu("nope"))
	assert.False(t, ok)
}
