package get_menus

import (
	"github.com/sansan-reserve/booking-service/internal/domain"
)

// MenusResponse HTTP response model
type MenusResponse struct {
	Menus []MenuItem `json:"menus"`
}

// MenuItem модель пункта каталога в ответе API
type MenuItem struct {
	Key             string `json:"key"`
	DisplayName     string `json:"displayName"`
	DurationMinutes int    `json:"durationMinutes"`
}

// FromCatalog конвертирует записи каталога в HTTP response
func FromCatalog(entries []domain.MenuEntry) *MenusResponse {
	menus := make([]MenuItem, len(entries))
	for i, entry := range entries {
		menus[i] = MenuItem{
			Key:             string(entry.Key),
			DisplayName:     entry.DisplayName,
			DurationMinutes: entry.DurationMinutes,
		}
	}

	return &MenusResponse{Menus: menus}
}
