package list_reservations

import (
	"errors"
	"net/http"
	"time"

	"github.com/momonail/booking-service/internal/api/handlers"
	"github.com/momonail/booking-service/internal/domain"
	reservationService "github.com/momonail/booking-service/internal/service/reservations"
	"github.com/momonail/booking-service/internal/service/reservations/models"
)

const (
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidStatus = "некорректный статус"
)

type Handler struct {
	reservationService ReservationService
	salonID            int64
	logger             Logger
}

func NewHandler(reservationService ReservationService, salonID int64, logger Logger) *Handler {
	return &Handler{
		reservationService: reservationService,
		salonID:            salonID,
		logger:             logger,
	}
}

// Handle GET /api/v1/staff/reservations
// Query params: date, from, to (YYYY-MM-DD), status, includeInactive - все опциональны
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListReservationsRequest{
		SalonID:         h.salonID,
		IncludeInactive: r.URL.Query().Get("includeInactive") == "true",
	}

	// date задает один день, иначе период from/to
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err := time.ParseInLocation(domain.DateFormat, dateStr, time.Local)
		if err != nil {
			h.logger.Warn("GET /staff/reservations - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.StartDate = &date
		req.EndDate = &date
	} else {
		if fromStr := r.URL.Query().Get("from"); fromStr != "" {
			from, err := time.ParseInLocation(domain.DateFormat, fromStr, time.Local)
			if err != nil {
				h.logger.Warn("GET /staff/reservations - Invalid from date: %v", err)
				handlers.RespondBadRequest(w, msgInvalidDate)
				return
			}
			req.StartDate = &from
		}
		if toStr := r.URL.Query().Get("to"); toStr != "" {
			to, err := time.ParseInLocation(domain.DateFormat, toStr, time.Local)
			if err != nil {
				h.logger.Warn("GET /staff/reservations - Invalid to date: %v", err)
				handlers.RespondBadRequest(w, msgInvalidDate)
				return
			}
			req.EndDate = &to
		}
	}

	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.reservationService.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservationService.ErrInvalidInput):
			h.logger.Warn("GET /staff/reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /staff/reservations - Failed to list reservations: salon_id=%d, error=%v", h.salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /staff/reservations - Reservations retrieved successfully: salon_id=%d, count=%d",
		h.salonID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
