package create_reservation

import (
	"errors"
	"net/http"

	"github.com/momonail/booking-service/internal/api/handlers"
	reservationModels "github.com/momonail/booking-service/internal/service/reservations/models"
	createReservation "github.com/momonail/booking-service/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректная дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgDateInPast         = "дата и время уже прошли"
	msgServiceNotFound    = "услуга не найдена"
	msgSalonClosed        = "салон закрыт в выбранную дату"
	msgSlotTaken          = "выбранное время недоступно"
)

type Handler struct {
	useCase CreateReservationUseCase
	salonID int64
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, salonID int64, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		salonID: salonID,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(h.salonID)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse date or time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrSlotTaken):
			h.logger.Warn("POST /reservations - Slot taken: service_id=%d, date=%s, time=%s",
				req.ServiceID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createReservation.ErrSalonClosed):
			h.logger.Warn("POST /reservations - Salon closed: date=%s", req.Date)
			handlers.RespondError(w, http.StatusConflict, msgSalonClosed)

		case errors.Is(err, createReservation.ErrServiceNotFound):
			h.logger.Warn("POST /reservations - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createReservation.ErrInvalidDate):
			h.logger.Warn("POST /reservations - Date in the past: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: service_id=%d, error=%v",
				req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := reservationModels.FromDomainReservation(result.Reservation)

	h.logger.Info("POST /reservations - Reservation created successfully: number=%s, service_id=%d, date=%s, time=%s",
		response.ReservationNumber, req.ServiceID, req.Date, req.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
