package get_reservation

import (
	"context"

	"github.com/momonail/booking-service/internal/service/reservations/models"
)

type ReservationService interface {
	GetByNumber(ctx context.Context, number string) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
