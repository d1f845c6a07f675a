package get_month_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/momonail/booking-service/internal/api/handlers"
	getAvailableSlots "github.com/momonail/booking-service/internal/usecase/get_available_slots"
)

const (
	msgInvalidServiceID = "некорректный ID услуги"
	msgMissingServiceID = "ID услуги обязателен"
	msgInvalidYear      = "некорректный год"
	msgInvalidMonth     = "некорректный месяц, ожидается число от 1 до 12"
	msgServiceNotFound  = "услуга не найдена"
)

type Handler struct {
	useCase GetMonthAvailabilityUseCase
	salonID int64
	logger  Logger
}

func NewHandler(useCase GetMonthAvailabilityUseCase, salonID int64, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		salonID: salonID,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/month
// Query params: serviceId (required), year (required), month (required, 1-12)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceIDStr := r.URL.Query().Get("serviceId")
	if serviceIDStr == "" {
		h.logger.Warn("GET /availability/month - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /availability/month - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		h.logger.Warn("GET /availability/month - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		h.logger.Warn("GET /availability/month - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	useCaseReq := &getAvailableSlots.MonthRequest{
		SalonID:   h.salonID,
		ServiceID: serviceID,
		Year:      year,
		Month:     time.Month(month),
	}

	result, err := h.useCase.ExecuteMonth(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /availability/month - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /availability/month - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /availability/month - Failed to get availability: service_id=%d, year=%d, month=%d, error=%v",
				serviceID, year, month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /availability/month - Availability retrieved successfully: service_id=%d, year=%d, month=%d",
		serviceID, year, month)
	handlers.RespondJSON(w, http.StatusOK, response)
}
