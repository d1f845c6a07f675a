package get_weekly_schedule

import (
	"net/http"

	"github.com/momonail/booking-service/internal/api/handlers"
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

// Handle GET /api/v1/staff/schedule/weekly
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.scheduleService.GetWeekly(r.Context(), h.salonID)
	if err != nil {
		h.logger.Error("GET /staff/schedule/weekly - Failed to get weekly schedule: salon_id=%d, error=%v", h.salonID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /staff/schedule/weekly - Weekly schedule retrieved successfully: salon_id=%d", h.salonID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
