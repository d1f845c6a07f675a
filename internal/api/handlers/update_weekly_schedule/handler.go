package update_weekly_schedule

import (
	"errors"
	"net/http"

	"github.com/momonail/booking-service/internal/api/handlers"
	scheduleService "github.com/momonail/booking-service/internal/service/schedule"
)

const (
	msgInvalidRequestBody     = "некорректное тело запроса"
	msgInvalidHours           = "некорректные часы работы"
	msgWeekdayHasReservations = "на этот день недели есть активные резервирования"
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

// Handle PUT /api/v1/staff/schedule/weekly
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateWeeklyScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /staff/schedule/weekly - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.scheduleService.UpsertWeekly(r.Context(), req.ToServiceRequest(h.salonID))
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrWeekdayHasReservations):
			h.logger.Warn("PUT /staff/schedule/weekly - Weekday has reservations: weekday=%d, error=%v",
				req.Weekday, err)
			handlers.RespondError(w, http.StatusConflict, msgWeekdayHasReservations)

		case errors.Is(err, scheduleService.ErrInvalidHours):
			h.logger.Warn("PUT /staff/schedule/weekly - Invalid hours: %v", err)
			handlers.RespondBadRequest(w, msgInvalidHours)

		case errors.Is(err, scheduleService.ErrInvalidInput):
			h.logger.Warn("PUT /staff/schedule/weekly - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /staff/schedule/weekly - Failed to update: weekday=%d, error=%v", req.Weekday, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /staff/schedule/weekly - Weekly schedule updated successfully: salon_id=%d, weekday=%d",
		h.salonID, req.Weekday)
	handlers.RespondJSON(w, http.StatusOK, result)
}
