package update_service

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/momonail/booking-service/internal/api/handlers"
	catalogService "github.com/momonail/booking-service/internal/service/catalog"
	"github.com/momonail/booking-service/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidServiceID   = "некорректный ID услуги"
	msgServiceNotFound    = "услуга не найдена"
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

// UpdateServiceRequest HTTP request model
type UpdateServiceRequest struct {
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

// Handle PUT /api/v1/staff/services/{serviceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceID, err := strconv.ParseInt(mux.Vars(r)["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /staff/services/{serviceId} - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	var req UpdateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /staff/services/{serviceId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq := &models.UpsertServiceRequest{
		SalonID:         h.salonID,
		Name:            req.Name,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
	}

	result, err := h.catalogService.UpdateService(r.Context(), serviceID, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrServiceNotFound):
			h.logger.Warn("PUT /staff/services/{serviceId} - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, catalogService.ErrInvalidDuration):
			h.logger.Warn("PUT /staff/services/{serviceId} - Invalid duration: duration=%d", req.DurationMinutes)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, catalogService.ErrInvalidInput):
			h.logger.Warn("PUT /staff/services/{serviceId} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /staff/services/{serviceId} - Failed to update service: service_id=%d, error=%v",
				serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /staff/services/{serviceId} - Service updated successfully: service_id=%d", serviceID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
