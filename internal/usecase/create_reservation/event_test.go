package create_reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sansan-reserve/booking-service/internal/domain"
)

func TestBuildEventTitle(t *testing.T) {
	entry, ok := domain.LookupMenu(domain.MenuStandard)
	require.True(t, ok)

	title := buildEventTitle(entry, &Request{LastName: "佐藤", FirstName: "花子"})
	assert.Equal(t, "Sansan Reserve: 15分撮影プラン 佐藤花子", title)
}

func TestBuildEventDescription(t *testing.T) {
	entry, ok := domain.LookupMenu(domain.MenuFamily)
	require.True(t, ok)

	req := &Request{
		LastName:   "佐藤",
		FirstName:  "花子",
		Email:      "hanako@example.com",
		Phone:      "080-0000-1111",
		GuestCount: 4,
		HasPet:     false,
	}
	requestedAt := time.Date(2025, 1, 10, 18, 30, 0, 0, jst)

	desc := buildEventDescription(entry, req, requestedAt)

	assert.Contains(t, desc, "予約情報:")
	assert.Contains(t, desc, "- お名前: 佐藤 花子")
	assert.Contains(t, desc, "- メール: hanako@example.com")
	assert.Contains(t, desc, "- 電話番号: 080-0000-1111")
	assert.Contains(t, desc, "- ご来店人数: 4人")
	assert.Contains(t, desc, "- ペット同伴: なし")
	assert.Contains(t, desc, "- メニュー: 七五三 3歳女の子プラン")
	assert.Contains(t, desc, "- 時間: 120分")
	assert.Contains(t, desc, "- 予約日時: 2025-01-10T18:30:00+09:00")
}
