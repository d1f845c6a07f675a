package cancel_reservation

import (
	"context"

	"github.com/momonail/booking-service/internal/domain"
	"github.com/momonail/booking-service/internal/service/reservations/models"
)

type ReservationService interface {
	GetByNumber(ctx context.Context, number string) (*models.ReservationResponse, error)
	Cancel(ctx context.Context, number string, req *models.CancelReservationRequest) (*models.ReservationResponse, error)
}

// SalonPolicyProvider отдает политику отмены салона
type SalonPolicyProvider interface {
	GetSalonPolicy(ctx context.Context, id int64) (*domain.Salon, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
