package menus

import (
	"fmt"

	"github.com/sansan-reserve/booking-service/internal/domain"
)

// MirrorEntry запись копии каталога меню из внешнего источника (config.toml)
type MirrorEntry struct {
	DurationMinutes int
	DisplayName     string
}

// Service сервис каталога меню. Каталог статический, только для чтения
// после инициализации; состояния и переходов нет
type Service struct {
	logger Logger
}

// NewService создает новый экземпляр сервиса каталога меню
func NewService(logger Logger) *Service {
	return &Service{logger: logger}
}

// List возвращает все записи каталога в фиксированном порядке отображения
func (s *Service) List() []domain.MenuEntry {
	return domain.MenuCatalog()
}

// Lookup возвращает запись каталога по ключу меню
func (s *Service) Lookup(key domain.Menu) (domain.MenuEntry, bool) {
	return domain.LookupMenu(key)
}

// VerifyMirror сверяет внешнюю копию каталога со встроенной.
// Копия обязана совпадать поле в поле: и длительности, и названия,
// и сам набор ключей. Проверка выполняется один раз при старте сервиса
func (s *Service) VerifyMirror(mirror map[string]MirrorEntry) error {
	catalog := domain.MenuCatalog()

	if len(mirror) != len(catalog) {
		return fmt.Errorf("%w: mirror has %d entries, catalog has %d", ErrMirrorMismatch, len(mirror), len(catalog))
	}

	for _, entry := range catalog {
		m, ok := mirror[string(entry.Key)]
		if !ok {
			return fmt.Errorf("%w: menu %q missing from mirror", ErrMirrorMismatch, entry.Key)
		}
		if m.DurationMinutes != entry.DurationMinutes {
			return fmt.Errorf("%w: menu %q duration %d != %d", ErrMirrorMismatch, entry.Key, m.DurationMinutes, entry.DurationMinutes)
		}
		if m.DisplayName != entry.DisplayName {
			return fmt.Errorf("%w: menu %q display name %q != %q", ErrMirrorMismatch, entry.Key, m.DisplayName, entry.DisplayName)
		}
	}

	s.logger.Info("Menu mirror verified: %d entries match", len(catalog))
	return nil
}
