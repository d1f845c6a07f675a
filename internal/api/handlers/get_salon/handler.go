package get_salon

import (
	"errors"
	"net/http"

	"github.com/momonail/booking-service/internal/api/handlers"
	catalogService "github.com/momonail/booking-service/internal/service/catalog"
)

const (
	msgSalonNotFound = "салон не найден"
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

// Handle GET /api/v1/salon
// Салон один, его ID берется из конфигурации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.catalogService.GetSalon(r.Context(), h.salonID)
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrSalonNotFound):
			h.logger.Warn("GET /salon - Salon not found: salon_id=%d", h.salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		default:
			h.logger.Error("GET /salon - Failed to get salon: salon_id=%d, error=%v", h.salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /salon - Salon retrieved successfully: salon_id=%d", h.salonID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
