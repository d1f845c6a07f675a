package create_reservation

import (
	"time"

	"github.com/momonail/booking-service/internal/domain"
	"github.com/momonail/booking-service/pkg/types"
)

// Request модель запроса на создание резервирования
type Request struct {
	SalonID   int64
	ServiceID int64

	CustomerName  string
	CustomerPhone *string // Опционально
	CustomerEmail string

	Date      time.Time        // Дата резервирования (без времени)
	StartTime types.TimeString // Время начала "HH:MM"
}

// Response модель ответа с созданным резервированием
type Response struct {
	Reservation *domain.Reservation
}
