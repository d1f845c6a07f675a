package reservations

import (
	"context"

	"github.com/momonail/booking-service/internal/domain"
)

// ReservationRepository интерфейс репозитория резервирований
type ReservationRepository interface {
	GetByNumber(ctx context.Context, number string) (*domain.Reservation, error)
	GetBySalonWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
	Cancel(ctx context.Context, id int64, reason string) error
}

// Notifier интерфейс отправки уведомлений о смене статуса
// Реализация работает best-effort: ошибки доставки не влияют на результат
type Notifier interface {
	ReservationConfirmed(r *domain.Reservation)
	ReservationCancelled(r *domain.Reservation)
}

// Metrics интерфейс счетчика исходов бронирования (опционально, может быть nil)
type Metrics interface {
	IncReservation(operation, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
