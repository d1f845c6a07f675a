package get_day_slots

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/momonail/booking-service/internal/api/handlers"
	"github.com/momonail/booking-service/internal/domain"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
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

// Handle GET /api/v1/staff/schedule/dates/{date}/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := mux.Vars(r)["date"]
	date, err := time.ParseInLocation(domain.DateFormat, dateStr, time.Local)
	if err != nil {
		h.logger.Warn("GET /staff/schedule/dates/{date}/slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.scheduleService.GetDaySlots(r.Context(), h.salonID, date)
	if err != nil {
		h.logger.Error("GET /staff/schedule/dates/{date}/slots - Failed to get slots: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /staff/schedule/dates/{date}/slots - Slots retrieved successfully: date=%s, count=%d",
		dateStr, len(result.Times))
	handlers.RespondJSON(w, http.StatusOK, result)
}
