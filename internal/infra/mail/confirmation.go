package mail

import (
	"fmt"
	"time"
)

// ConfirmationParams данные для письма-подтверждения бронирования
type ConfirmationParams struct {
	LastName        string
	FirstName       string
	Email           string
	Phone           string
	GuestCount      int
	HasPet          bool
	MenuDisplayName string
	DurationMinutes int
	Start           time.Time // в поясе студии
	End             time.Time // в поясе студии
}

// weekdayNames японские однобуквенные названия дней недели, индекс = time.Weekday
var weekdayNames = [7]string{"日", "月", "火", "水", "木", "金", "土"}

// ConfirmationSubject возвращает тему письма-подтверждения
func ConfirmationSubject(p ConfirmationParams) string {
	return fmt.Sprintf("【Sansan Reserve】ご予約確認 - %s %s", formatDate(p.Start), formatTime(p.Start))
}

// ConfirmationBody возвращает тело письма-подтверждения
func ConfirmationBody(p ConfirmationParams) string {
	pet := "なし"
	if p.HasPet {
		pet = "あり"
	}

	return fmt.Sprintf(`%s %s 様

この度はご予約いただき、誠にありがとうございます。
以下の内容でご予約を承りました。

━━━━━━━━━━━━━━━━━━━━━━━━
  ご予約内容
━━━━━━━━━━━━━━━━━━━━━━━━

■ お名前: %s %s 様
■ メールアドレス: %s
■ 電話番号: %s
■ ご来店人数: %d人
■ ペット同伴: %s
■ 撮影メニュー: %s
■ 所要時間: 約%d分
■ 予約日時: %s %s〜%s

━━━━━━━━━━━━━━━━━━━━━━━━

ご不明な点がございましたら、お気軽にお問い合わせください。

当日のご来店をお待ちしております。

──────────────────────
Sansan Reserve 写真スタジオ
──────────────────────`,
		p.LastName, p.FirstName,
		p.LastName, p.FirstName,
		p.Email,
		p.Phone,
		p.GuestCount,
		pet,
		p.MenuDisplayName,
		p.DurationMinutes,
		formatDate(p.Start), formatTime(p.Start), formatTime(p.End),
	)
}

// formatDate форматирует дату по-японски: 2025年1月15日（水）
func formatDate(t time.Time) string {
	return fmt.Sprintf("%d年%d月%d日（%s）", t.Year(), int(t.Month()), t.Day(), weekdayNames[t.Weekday()])
}

// formatTime форматирует время как HH:MM
func formatTime(t time.Time) string {
	return t.Format("15:04")
}
