package get_menus

import (
	"net/http"

	"github.com/sansan-reserve/booking-service/internal/api/handlers"
)

type Handler struct {
	service MenusService
	logger  Logger
}

func NewHandler(service MenusService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/menus
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	entries := h.service.List()

	h.logger.Info("GET /menus - Catalog returned: count=%d", len(entries))
	handlers.RespondJSON(w, http.StatusOK, FromCatalog(entries))
}
