package domain

import "fmt"

// Menu is a closed enumeration of reservation menu keys.
// Неизвестные значения отсекаются в ParseMenu и никогда не доходят
// до генерации слотов или создания события.
type Menu string

const (
	MenuStandard Menu = "standard"
	MenuPremium  Menu = "premium"
	MenuFamily   Menu = "family"
	MenuWedding  Menu = "wedding"
)

// MenuEntry describes a single menu: its appointment duration and display label
type MenuEntry struct {
	Key             Menu
	DurationMinutes int
	DisplayName     string
}

// menuCatalog единственный источник правды по меню.
// ВАЖНО: копия этой таблицы живет в config.toml ([menus.*]) и обязана
// совпадать с ней побайтово — расхождение ловится при старте сервиса
// (menus.Service.VerifyMirror) и в приемочном тесте.
var menuCatalog = map[Menu]MenuEntry{
	MenuStandard: {Key: MenuStandard, DurationMinutes: 30, DisplayName: "15分撮影プラン"},
	MenuPremium:  {Key: MenuPremium, DurationMinutes: 60, DisplayName: "30分撮影プラン"},
	MenuFamily:   {Key: MenuFamily, DurationMinutes: 120, DisplayName: "七五三 3歳女の子プラン"},
	MenuWedding:  {Key: MenuWedding, DurationMinutes: 120, DisplayName: "七五三 5歳男の子プラン"},
}

// menuOrder фиксированный порядок вывода меню в каталоге
var menuOrder = []Menu{MenuStandard, MenuPremium, MenuFamily, MenuWedding}

// LookupMenu returns the catalog entry for the given key
func LookupMenu(key Menu) (MenuEntry, bool) {
	entry, ok := menuCatalog[key]
	return entry, ok
}

// ParseMenu converts a raw string into a Menu, rejecting unknown keys
func ParseMenu(raw string) (Menu, error) {
	key := Menu(raw)
	if _, ok := menuCatalog[key]; !ok {
		return "", fmt.Errorf("unknown menu %q", raw)
	}
	return key, nil
}

// MenuCatalog returns all catalog entries in their fixed display order
func MenuCatalog() []MenuEntry {
	entries := make([]MenuEntry, 0, len(menuOrder))
	for _, key := range menuOrder {
		entries = append(entries, menuCatalog[key])
	}
	return entries
}
