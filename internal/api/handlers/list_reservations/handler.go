package list_reservations

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/sansan-reserve/booking-service/internal/api/handlers"
)

const (
	msgMissingParams = "Missing required parameters: from, to"
	msgInvalidFrom   = "Invalid 'from' timestamp, expected ISO-8601"
	msgInvalidTo     = "Invalid 'to' timestamp, expected ISO-8601"
	msgInvalidToken  = "Invalid API token"
)

type Handler struct {
	journal  JournalRepository
	apiToken string
	loc      *time.Location
	logger   Logger
}

func NewHandler(journal JournalRepository, apiToken string, loc *time.Location, logger Logger) *Handler {
	return &Handler{
		journal:  journal,
		apiToken: apiToken,
		loc:      loc,
		logger:   logger,
	}
}

// Handle GET /api/v1/reservations
// Операторский endpoint поверх журнала: отдает записи за период.
// Защищен тем же токеном, что и создание бронирования
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get("X-API-Token")
	if subtle.ConstantTimeCompare([]byte(token), []byte(h.apiToken)) != 1 {
		h.logger.Warn("GET /reservations - Invalid API token")
		handlers.RespondUnauthorized(w, msgInvalidToken)
		return
	}

	query := r.URL.Query()
	fromStr := query.Get("from")
	toStr := query.Get("to")

	if fromStr == "" || toStr == "" {
		h.logger.Warn("GET /reservations - Missing parameters: from=%q, to=%q", fromStr, toStr)
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	from, err := time.Parse(time.RFC3339, fromStr)
	if err != nil {
		h.logger.Warn("GET /reservations - Invalid 'from': %v", err)
		handlers.RespondBadRequest(w, msgInvalidFrom)
		return
	}

	to, err := time.Parse(time.RFC3339, toStr)
	if err != nil {
		h.logger.Warn("GET /reservations - Invalid 'to': %v", err)
		handlers.RespondBadRequest(w, msgInvalidTo)
		return
	}

	entries, err := h.journal.ListByDateRange(r.Context(), from.In(h.loc), to.In(h.loc))
	if err != nil {
		h.logger.Error("GET /reservations - Failed to list journal entries: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reservations - Entries returned: count=%d", len(entries))
	handlers.RespondJSON(w, http.StatusOK, FromEntries(entries))
}
