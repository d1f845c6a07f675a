package list_services

import (
	"net/http"

	"github.com/momonail/booking-service/internal/api/handlers"
)

type Handler struct {
	catalogService CatalogService
	salonID        int64
	logger         Logger
}

func NewHandler(catalogService CatalogService, salonID int64, logger Logger) *Handler {
	return &Handler{
		catalogService: catalogService,
		salonID:        salonID,
		logger:         logger,
	}
}

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.catalogService.ListServices(r.Context(), h.salonID)
	if err != nil {
		h.logger.Error("GET /services - Failed to list services: salon_id=%d, error=%v", h.salonID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /services - Services retrieved successfully: salon_id=%d, count=%d", h.salonID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
