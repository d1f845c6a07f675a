package update_date_schedule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/momonail/booking-service/internal/api/handlers"
	scheduleService "github.com/momonail/booking-service/internal/service/schedule"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidHours        = "некорректные часы работы"
	msgDateHasReservations = "на эту дату есть активные резервирования"
)

type Handler struct {
	scheduleService ScheduleService
	salonID         int64
	logger          Logger
}

func NewHandler(scheduleService ScheduleService, salonID int64, logger Logger) *Handler {
	return &Handler{
		scheduleService: scheduleService,
		salonID:         salonID,
		logger:          logger,
	}
}

// Handle PUT /api/v1/staff/schedule/dates/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := mux.Vars(r)["date"]

	var req UpdateDateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /staff/schedule/dates/{date} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(h.salonID, dateStr)
	if err != nil {
		h.logger.Warn("PUT /staff/schedule/dates/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.scheduleService.UpsertDate(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrDateHasReservations):
			h.logger.Warn("PUT /staff/schedule/dates/{date} - Date has reservations: date=%s, error=%v", dateStr, err)
			handlers.RespondError(w, http.StatusConflict, msgDateHasReservations)

		case errors.Is(err, scheduleService.ErrInvalidHours):
			h.logger.Warn("PUT /staff/schedule/dates/{date} - Invalid hours: %v", err)
			handlers.RespondBadRequest(w, msgInvalidHours)

		case errors.Is(err, scheduleService.ErrInvalidInput):
			h.logger.Warn("PUT /staff/schedule/dates/{date} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /staff/schedule/dates/{date} - Failed to update: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /staff/schedule/dates/{date} - Date schedule updated successfully: date=%s", dateStr)
	handlers.RespondJSON(w, http.StatusOK, result)
}
