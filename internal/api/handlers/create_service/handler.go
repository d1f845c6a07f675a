package create_service

import (
	"errors"
	"net/http"

	"github.com/momonail/booking-service/internal/api/handlers"
	catalogService "github.com/momonail/booking-service/internal/service/catalog"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDuration    = "длительность услуги должна быть кратна 30 минутам в пределах от 30 до 240"
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

// Handle POST /api/v1/staff/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /staff/services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.catalogService.CreateService(r.Context(), req.ToServiceRequest(h.salonID))
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrInvalidDuration):
			h.logger.Warn("POST /staff/services - Invalid duration: duration=%d", req.DurationMinutes)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, catalogService.ErrInvalidInput):
			h.logger.Warn("POST /staff/services - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /staff/services - Failed to create service: salon_id=%d, error=%v", h.salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /staff/services - Service created successfully: service_id=%d, salon_id=%d", result.ID, h.salonID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
