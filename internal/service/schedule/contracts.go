package schedule

import (
	"context"
	"time"

	"github.com/momonail/booking-service/internal/domain"
	"github.com/momonail/booking-service/pkg/types"
)

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	GetWeeklyBySalon(ctx context.Context, salonID int64) ([]*domain.WeeklyDefaultSchedule, error)
	UpsertWeekly(ctx context.Context, schedule *domain.WeeklyDefaultSchedule) (*domain.WeeklyDefaultSchedule, error)
	GetDateSchedule(ctx context.Context, salonID int64, date time.Time) (*domain.DateSchedule, error)
	UpsertDateSchedule(ctx context.Context, schedule *domain.DateSchedule) (*domain.DateSchedule, error)
	GetSlotsByDate(ctx context.Context, salonID int64, date time.Time) ([]*domain.AvailableTimeSlot, error)
	ReplaceDaySlots(ctx context.Context, salonID int64, date time.Time, slotTimes []types.TimeString) error
}

// ReservationCounter интерфейс подсчета активных резервирований
// Используется в защите от редактирования расписания "под" живыми записями
type ReservationCounter interface {
	CountActiveOnDate(ctx context.Context, salonID int64, date time.Time) (int, error)
	CountActiveOnWeekday(ctx context.Context, salonID int64, weekday time.Weekday, from time.Time) (int, error)
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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
