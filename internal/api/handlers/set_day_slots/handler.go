package set_day_slots

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

// Handle PUT /api/v1/staff/schedule/dates/{date}/slots
// Заменяет набор явных слотов даты целиком (slot mode)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := mux.Vars(r)["date"]

	var req SetDaySlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /staff/schedule/dates/{date}/slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(h.salonID, dateStr)
	if err != nil {
		h.logger.Warn("PUT /staff/schedule/dates/{date}/slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.scheduleService.SetDaySlots(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrDateHasReservations):
			h.logger.Warn("PUT /staff/schedule/dates/{date}/slots - Date has reservations: date=%s, error=%v",
				dateStr, err)
			handlers.RespondError(w, http.StatusConflict, msgDateHasReservations)

		case errors.Is(err, scheduleService.ErrInvalidInput):
			h.logger.Warn("PUT /staff/schedule/dates/{date}/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /staff/schedule/dates/{date}/slots - Failed to set slots: date=%s, error=%v",
				dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /staff/schedule/dates/{date}/slots - Slots replaced successfully: date=%s, count=%d",
		dateStr, len(result.Times))
	handlers.RespondJSON(w, http.StatusOK, result)
}
