package confirm_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/momonail/booking-service/internal/api/handlers"
	reservationService "github.com/momonail/booking-service/internal/service/reservations"
)

const (
	msgMissingNumber       = "номер резервирования обязателен"
	msgReservationNotFound = "резервирование не найдено"
	msgNotPending          = "подтвердить можно только ожидающее резервирование"
)

type Handler struct {
	reservationService ReservationService
	logger             Logger
}

func NewHandler(reservationService ReservationService, logger Logger) *Handler {
	return &Handler{
		reservationService: reservationService,
		logger:             logger,
	}
}

// Handle POST /api/v1/staff/reservations/{number}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	number := mux.Vars(r)["number"]
	if number == "" {
		h.logger.Warn("POST /staff/reservations/{number}/confirm - Missing reservation number")
		handlers.RespondBadRequest(w, msgMissingNumber)
		return
	}

	result, err := h.reservationService.Confirm(r.Context(), number)
	if err != nil {
		switch {
		case errors.Is(err, reservationService.ErrReservationNotFound):
			h.logger.Warn("POST /staff/reservations/{number}/confirm - Reservation not found: number=%s", number)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservationService.ErrNotPending):
			h.logger.Warn("POST /staff/reservations/{number}/confirm - Not pending: number=%s, error=%v", number, err)
			handlers.RespondError(w, http.StatusConflict, msgNotPending)

		case errors.Is(err, reservationService.ErrInvalidInput):
			h.logger.Warn("POST /staff/reservations/{number}/confirm - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /staff/reservations/{number}/confirm - Failed to confirm: number=%s, error=%v", number, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /staff/reservations/{number}/confirm - Reservation confirmed successfully: number=%s", number)
	handlers.RespondJSON(w, http.StatusOK, result)
}
