package create_reservation

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"time"

	"github.com/sansan-reserve/booking-service/internal/api/handlers"
	createReservation "github.com/sansan-reserve/booking-service/internal/usecase/create_reservation"
)

const (
	msgInvalidToken  = "Invalid API token"
	msgInvalidStart  = "Invalid 'start' timestamp, expected ISO-8601"
	msgInvalidMenu   = "Invalid menu type"
	msgSlotTaken     = "This time slot is no longer available"
	msgCalendarError = "Failed to create calendar event"
)

type Handler struct {
	useCase  CreateReservationUseCase
	apiToken string
	loc      *time.Location
	logger   Logger
}

func NewHandler(useCase CreateReservationUseCase, apiToken string, loc *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		apiToken: apiToken,
		loc:      loc,
		logger:   logger,
	}
}

// Handle POST /api/v1/reserve
// Токен проверяется до любой работы с телом запроса по существу:
// клиент без токена не должен узнать даже о невалидности своих полей
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reserve - Failed to decode request body: %v", err)
		handlers.RespondBadRequest(w, "Invalid JSON body")
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Token), []byte(h.apiToken)) != 1 {
		h.logger.Warn("POST /reserve - Invalid API token")
		handlers.RespondUnauthorized(w, msgInvalidToken)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(h.loc)
	if err != nil {
		h.logger.Warn("POST /reserve - Failed to parse start timestamp: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStart)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reserve - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createReservation.ErrUnknownMenu):
			h.logger.Warn("POST /reserve - Unknown menu: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMenu)

		case errors.Is(err, createReservation.ErrSlotTaken):
			h.logger.Info("POST /reserve - Slot conflict: %v", err)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createReservation.ErrCalendarUnavailable):
			h.logger.Error("POST /reserve - Calendar unavailable: %v", err)
			handlers.RespondCalendarError(w, msgCalendarError)

		default:
			h.logger.Error("POST /reserve - Failed to create reservation: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reserve - Reservation created: eventID=%s, menu=%s, start=%s",
		result.EventID, result.Menu, result.Start.Format(time.RFC3339))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
