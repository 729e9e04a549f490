package create_reservation

import (
	"fmt"
	"strings"
	"time"

	"github.com/sansan-reserve/booking-service/internal/domain"
)

// buildEventTitle собирает заголовок события календаря
// Формат: "Sansan Reserve: <план> <фамилия><имя>"
func buildEventTitle(entry domain.MenuEntry, req *Request) string {
	return fmt.Sprintf("Sansan Reserve: %s %s%s", entry.DisplayName, req.LastName, req.FirstName)
}

// buildEventDescription собирает описание события календаря со всеми
// данными клиента. Видно только персоналу студии в календаре
func buildEventDescription(entry domain.MenuEntry, req *Request, requestedAt time.Time) string {
	pet := "なし"
	if req.HasPet {
		pet = "あり"
	}

	lines := []string{
		"予約情報:",
		fmt.Sprintf("- お名前: %s %s", req.LastName, req.FirstName),
		fmt.Sprintf("- メール: %s", req.Email),
		fmt.Sprintf("- 電話番号: %s", req.Phone),
		fmt.Sprintf("- ご来店人数: %d人", req.GuestCount),
		fmt.Sprintf("- ペット同伴: %s", pet),
		fmt.Sprintf("- メニュー: %s", entry.DisplayName),
		fmt.Sprintf("- 時間: %d分", entry.DurationMinutes),
		fmt.Sprintf("- 予約日時: %s", requestedAt.Format(domain.WireTimeFormat)),
	}

	return strings.Join(lines, "\n")
}
