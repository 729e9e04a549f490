package get_menus

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sansan-reserve/booking-service/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeMenusService struct{}

func (fakeMenusService) List() []domain.MenuEntry {
	return domain.MenuCatalog()
}

func TestHandler_Handle(t *testing.T) {
	h := NewHandler(fakeMenusService{}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/menus", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body MenusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Menus, 4)

	// Порядок каталога фиксирован
	assert.Equal(t, "standard", body.Menus[0].Key)
	assert.Equal(t, "15分撮影プラン", body.Menus[0].DisplayName)
	assert.Equal(t, 30, body.Menus[0].DurationMinutes)
	assert.Equal(t, "wedding", body.Menus[3].Key)
	assert.Equal(t, 120, body.Menus[3].DurationMinutes)
}
