package menus

import "errors"

var (
	// ErrMirrorMismatch возвращается, когда копия каталога меню из конфигурации
	// расходится со встроенным каталогом. Две физические копии одной логической
	// таблицы обязаны совпадать — сервис с расхождением не стартует
	ErrMirrorMismatch = errors.New("menus.service: menu mirror mismatch")
)
