package cancel_reservation

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/momonail/booking-service/internal/api/handlers"
	"github.com/momonail/booking-service/internal/domain"
	reservationService "github.com/momonail/booking-service/internal/service/reservations"
	"github.com/momonail/booking-service/internal/service/reservations/models"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgMissingNumber       = "номер резервирования обязателен"
	msgReservationNotFound = "резервирование не найдено"
	msgCannotCancel        = "резервирование нельзя отменить в текущем статусе"
	msgDeadlinePassed      = "срок самостоятельной отмены истек, свяжитесь с салоном"
)

type Handler struct {
	reservationService ReservationService
	salonPolicy        SalonPolicyProvider
	salonID            int64
	logger             Logger
}

func NewHandler(
	reservationService ReservationService,
	salonPolicy SalonPolicyProvider,
	salonID int64,
	logger Logger,
) *Handler {
	return &Handler{
		reservationService: reservationService,
		salonPolicy:        salonPolicy,
		salonID:            salonID,
		logger:             logger,
	}
}

// Handle POST /api/v1/reservations/{number}/cancel
// Клиентская отмена: проверяет дедлайн отмены из политики салона
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	number, req, ok := h.parseRequest(w, r, "POST /reservations/{number}/cancel")
	if !ok {
		return
	}

	// Клиент может отменить сам только заранее, за cancellation_deadline_days
	if !h.checkDeadline(w, r, number) {
		return
	}

	h.cancel(w, r, "POST /reservations/{number}/cancel", number, req)
}

// HandleStaff POST /api/v1/staff/reservations/{number}/cancel
// Отмена персоналом: дедлайн не проверяется
func (h *Handler) HandleStaff(w http.ResponseWriter, r *http.Request) {
	number, req, ok := h.parseRequest(w, r, "POST /staff/reservations/{number}/cancel")
	if !ok {
		return
	}

	h.cancel(w, r, "POST /staff/reservations/{number}/cancel", number, req)
}

func (h *Handler) parseRequest(w http.ResponseWriter, r *http.Request, route string) (string, *models.CancelReservationRequest, bool) {
	number := mux.Vars(r)["number"]
	if number == "" {
		h.logger.Warn("%s - Missing reservation number", route)
		handlers.RespondBadRequest(w, msgMissingNumber)
		return "", nil, false
	}

	var req CancelReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return "", nil, false
	}

	return number, &models.CancelReservationRequest{CancellationReason: req.CancellationReason}, true
}

// checkDeadline проверяет, что до даты резервирования осталось не меньше
// cancellation_deadline_days полных дней
func (h *Handler) checkDeadline(w http.ResponseWriter, r *http.Request, number string) bool {
	reservation, err := h.reservationService.GetByNumber(r.Context(), number)
	if err != nil {
		h.respondCancelError(w, "POST /reservations/{number}/cancel", number, err)
		return false
	}

	salon, err := h.salonPolicy.GetSalonPolicy(r.Context(), h.salonID)
	if err != nil {
		h.logger.Error("POST /reservations/{number}/cancel - Failed to get salon policy: salon_id=%d, error=%v",
			h.salonID, err)
		handlers.RespondInternalError(w)
		return false
	}

	date, err := time.ParseInLocation(domain.DateFormat, reservation.Date, time.Local)
	if err != nil {
		h.logger.Error("POST /reservations/{number}/cancel - Malformed reservation date: number=%s, date=%s",
			number, reservation.Date)
		handlers.RespondInternalError(w)
		return false
	}

	now := time.Now()
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	daysUntil := int(date.Sub(nowOnly).Hours() / 24)

	if daysUntil < salon.CancellationDeadlineDays {
		h.logger.Warn("POST /reservations/{number}/cancel - Deadline passed: number=%s, days_until=%d, deadline=%d",
			number, daysUntil, salon.CancellationDeadlineDays)
		handlers.RespondError(w, http.StatusConflict, msgDeadlinePassed)
		return false
	}

	return true
}

func (h *Handler) cancel(w http.ResponseWriter, r *http.Request, route, number string, req *models.CancelReservationRequest) {
	result, err := h.reservationService.Cancel(r.Context(), number, req)
	if err != nil {
		h.respondCancelError(w, route, number, err)
		return
	}

	h.logger.Info("%s - Reservation cancelled successfully: number=%s", route, number)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) respondCancelError(w http.ResponseWriter, route, number string, err error) {
	switch {
	case errors.Is(err, reservationService.ErrReservationNotFound):
		h.logger.Warn("%s - Reservation not found: number=%s", route, number)
		handlers.RespondNotFound(w, msgReservationNotFound)

	case errors.Is(err, reservationService.ErrCannotCancel):
		h.logger.Warn("%s - Cannot cancel: number=%s, error=%v", route, number, err)
		handlers.RespondError(w, http.StatusConflict, msgCannotCancel)

	case errors.Is(err, reservationService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, err.Error())

	default:
		h.logger.Error("%s - Failed to cancel reservation: number=%s, error=%v", route, number, err)
		handlers.RespondInternalError(w)
	}
}
