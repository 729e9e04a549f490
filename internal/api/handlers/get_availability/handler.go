package get_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/sansan-reserve/booking-service/internal/api/handlers"
	getAvailability "github.com/sansan-reserve/booking-service/internal/usecase/get_availability"
)

const (
	msgMissingParams   = "Missing required parameters: from, to, durationMin"
	msgInvalidDuration = "Invalid durationMin value"
	msgInvalidFrom     = "Invalid 'from' timestamp, expected ISO-8601"
	msgInvalidTo       = "Invalid 'to' timestamp, expected ISO-8601"
	msgCalendarError   = "Failed to fetch calendar availability"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	loc     *time.Location
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, loc *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		loc:     loc,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: from, to (ISO-8601, обязательны), durationMin (целое, обязателен)
// Все три параметра проверяются до вызова ядра
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	fromStr := query.Get("from")
	toStr := query.Get("to")
	durationStr := query.Get("durationMin")

	if fromStr == "" || toStr == "" || durationStr == "" {
		h.logger.Warn("GET /availability - Missing parameters: from=%q, to=%q, durationMin=%q",
			fromStr, toStr, durationStr)
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	durationMin, err := strconv.Atoi(durationStr)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid durationMin: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	useCaseReq, err := ToUseCaseRequest(fromStr, toStr, durationMin, h.loc)
	if err != nil {
		h.logger.Warn("GET /availability - Failed to parse timestamps: %v", err)
		if _, fromErr := time.Parse(time.RFC3339, fromStr); fromErr != nil {
			handlers.RespondBadRequest(w, msgInvalidFrom)
		} else {
			handlers.RespondBadRequest(w, msgInvalidTo)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, getAvailability.ErrCalendarUnavailable):
			h.logger.Error("GET /availability - Calendar unavailable: %v", err)
			handlers.RespondCalendarError(w, msgCalendarError)

		default:
			h.logger.Error("GET /availability - Failed to get slots: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Slots retrieved: count=%d", len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
