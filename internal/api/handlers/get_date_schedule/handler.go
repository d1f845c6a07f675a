package get_date_schedule

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/momonail/booking-service/internal/api/handlers"
	"github.com/momonail/booking-service/internal/domain"
	scheduleService "github.com/momonail/booking-service/internal/service/schedule"
)

const (
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgScheduleNotFound = "переопределение расписания на эту дату не найдено"
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

// Handle GET /api/v1/staff/schedule/dates/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := mux.Vars(r)["date"]
	date, err := time.ParseInLocation(domain.DateFormat, dateStr, time.Local)
	if err != nil {
		h.logger.Warn("GET /staff/schedule/dates/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.scheduleService.GetDate(r.Context(), h.salonID, date)
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrScheduleNotFound):
			h.logger.Warn("GET /staff/schedule/dates/{date} - Not found: date=%s", dateStr)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		default:
			h.logger.Error("GET /staff/schedule/dates/{date} - Failed to get: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /staff/schedule/dates/{date} - Date schedule retrieved successfully: date=%s", dateStr)
	handlers.RespondJSON(w, http.StatusOK, result)
}
