package get_reservation

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

// Handle GET /api/v1/reservations/{number}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	number := mux.Vars(r)["number"]
	if number == "" {
		h.logger.Warn("GET /reservations/{number} - Missing reservation number")
		handlers.RespondBadRequest(w, msgMissingNumber)
		return
	}

	result, err := h.reservationService.GetByNumber(r.Context(), number)
	if err != nil {
		switch {
		case errors.Is(err, reservationService.ErrReservationNotFound):
			h.logger.Warn("GET /reservations/{number} - Reservation not found: number=%s", number)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservationService.ErrInvalidInput):
			h.logger.Warn("GET /reservations/{number} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /reservations/{number} - Failed to get reservation: number=%s, error=%v", number, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations/{number} - Reservation retrieved successfully: number=%s", number)
	handlers.RespondJSON(w, http.StatusOK, result)
}
