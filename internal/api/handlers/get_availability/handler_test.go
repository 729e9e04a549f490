package get_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sansan-reserve/booking-service/internal/api/handlers"
	"github.com/sansan-reserve/booking-service/internal/domain"
	getAvailability "github.com/sansan-reserve/booking-service/internal/usecase/get_availability"
)

var jst = time.FixedZone("JST", 9*3600)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	resp    *getAvailability.Response
	err     error
	lastReq *getAvailability.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailability.Request) (*getAvailability.Response, error) {
	f.lastReq = req
	return f.resp, f.err
}

func doRequest(h *Handler, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability"+query, nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) handlers.ErrorResponse {
	t.Helper()
	var body handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHandler_Handle_Success(t *testing.T) {
	start := time.Date(2025, 1, 15, 9, 0, 0, 0, jst)
	uc := &fakeUseCase{
		resp: &getAvailability.Response{
			Slots: []domain.Slot{
				{
					Interval:  domain.TimeInterval{Start: start, End: start.Add(30 * time.Minute)},
					Available: true,
				},
				{
					Interval:  domain.TimeInterval{Start: start.Add(30 * time.Minute), End: start.Add(time.Hour)},
					Available: false,
				},
			},
		},
	}
	h := NewHandler(uc, jst, nopLogger{})

	rec := doRequest(h, "?from=2025-01-15T00:00:00%2B09:00&to=2025-01-16T00:00:00%2B09:00&durationMin=30")

	require.Equal(t, http.StatusOK, rec.Code)

	var body AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Slots, 2)
	assert.Equal(t, "2025-01-15T09:00:00+09:00", body.Slots[0].Start)
	assert.Equal(t, "2025-01-15T09:30:00+09:00", body.Slots[0].End)
	assert.True(t, body.Slots[0].Available)
	assert.False(t, body.Slots[1].Available)

	// Временные метки переданы в use case в поясе студии
	require.NotNil(t, uc.lastReq)
	assert.Equal(t, 30, uc.lastReq.DurationMinutes)
	assert.True(t, uc.lastReq.From.Equal(time.Date(2025, 1, 15, 0, 0, 0, 0, jst)))
}

func TestHandler_Handle_UTCTimestampsAccepted(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailability.Response{Slots: []domain.Slot{}}}
	h := NewHandler(uc, jst, nopLogger{})

	rec := doRequest(h, "?from=2025-01-14T15:00:00Z&to=2025-01-15T15:00:00Z&durationMin=30")

	require.Equal(t, http.StatusOK, rec.Code)
	// UTC метка конвертирована в пояс студии
	assert.True(t, uc.lastReq.From.Equal(time.Date(2025, 1, 15, 0, 0, 0, 0, jst)))
	assert.Equal(t, "JST", uc.lastReq.From.Location().String())
}

func TestHandler_Handle_BadRequests(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"нет параметров", ""},
		{"нет from", "?to=2025-01-16T00:00:00Z&durationMin=30"},
		{"нет to", "?from=2025-01-15T00:00:00Z&durationMin=30"},
		{"нет durationMin", "?from=2025-01-15T00:00:00Z&to=2025-01-16T00:00:00Z"},
		{"нечисловой durationMin", "?from=2025-01-15T00:00:00Z&to=2025-01-16T00:00:00Z&durationMin=abc"},
		{"некорректный from", "?from=15.01.2025&to=2025-01-16T00:00:00Z&durationMin=30"},
		{"некорректный to", "?from=2025-01-15T00:00:00Z&to=tomorrow&durationMin=30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{resp: &getAvailability.Response{}}
			h := NewHandler(uc, jst, nopLogger{})

			rec := doRequest(h, tt.query)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			body := decodeError(t, rec)
			assert.False(t, body.OK)
			assert.Equal(t, handlers.CodeInvalidRequest, body.ErrorCode)
			// До use case запрос не дошел
			assert.Nil(t, uc.lastReq)
		})
	}
}

func TestHandler_Handle_UseCaseErrors(t *testing.T) {
	query := "?from=2025-01-15T00:00:00Z&to=2025-01-16T00:00:00Z&durationMin=30"

	t.Run("invalid input - 400", func(t *testing.T) {
		uc := &fakeUseCase{err: getAvailability.ErrInvalidInput}
		rec := doRequest(NewHandler(uc, jst, nopLogger{}), query)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, handlers.CodeInvalidRequest, decodeError(t, rec).ErrorCode)
	})

	t.Run("calendar unavailable - 502", func(t *testing.T) {
		uc := &fakeUseCase{err: getAvailability.ErrCalendarUnavailable}
		rec := doRequest(NewHandler(uc, jst, nopLogger{}), query)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Equal(t, handlers.CodeCalendarError, decodeError(t, rec).ErrorCode)
	})

	t.Run("неизвестная ошибка - 500", func(t *testing.T) {
		uc := &fakeUseCase{err: assert.AnError}
		rec := doRequest(NewHandler(uc, jst, nopLogger{}), query)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, handlers.CodeInternalError, decodeError(t, rec).ErrorCode)
	})
}
