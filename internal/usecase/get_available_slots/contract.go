package get_available_slots

import (
	"context"
	"time"

	"github.com/momonail/booking-service/internal/domain"
)

// ReservationRepository интерфейс репозитория резервирований
type ReservationRepository interface {
	// GetBySalonWithFilter получает резервирования салона на дату или период
	GetBySalonWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	GetDateSchedule(ctx context.Context, salonID int64, date time.Time) (*domain.DateSchedule, error)
	GetDateSchedulesInRange(ctx context.Context, salonID int64, from, to time.Time) ([]*domain.DateSchedule, error)
	GetWeeklyByWeekday(ctx context.Context, salonID int64, weekday time.Weekday) (*domain.WeeklyDefaultSchedule, error)
	GetWeeklyBySalon(ctx context.Context, salonID int64) ([]*domain.WeeklyDefaultSchedule, error)
	GetSlotsByDate(ctx context.Context, salonID int64, date time.Time) ([]*domain.AvailableTimeSlot, error)
	GetSlotsInRange(ctx context.Context, salonID int64, from, to time.Time) ([]*domain.AvailableTimeSlot, error)
}

// CatalogRepository интерфейс репозитория каталога услуг
type CatalogRepository interface {
	GetService(ctx context.Context, salonID, serviceID int64) (*domain.Service, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
