package complete_reservation

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
	msgCannotComplete      = "завершить можно только подтвержденное резервирование"
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

// Handle POST /api/v1/staff/reservations/{number}/complete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	number := mux.Vars(r)["number"]
	if number == "" {
		h.logger.Warn("POST /staff/reservations/{number}/complete - Missing reservation number")
		handlers.RespondBadRequest(w, msgMissingNumber)
		return
	}

	result, err := h.reservationService.Complete(r.Context(), number)
	if err != nil {
		switch {
		case errors.Is(err, reservationService.ErrReservationNotFound):
			h.logger.Warn("POST /staff/reservations/{number}/complete - Reservation not found: number=%s", number)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservationService.ErrCannotComplete):
			h.logger.Warn("POST /staff/reservations/{number}/complete - Cannot complete: number=%s, error=%v", number, err)
			handlers.RespondError(w, http.StatusConflict, msgCannotComplete)

		case errors.Is(err, reservationService.ErrInvalidInput):
			h.logger.Warn("POST /staff/reservations/{number}/complete - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /staff/reservations/{number}/complete - Failed to complete: number=%s, error=%v", number, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /staff/reservations/{number}/complete - Reservation completed successfully: number=%s", number)
	handlers.RespondJSON(w, http.StatusOK, result)
}
