package create_reservation

import (
	"context"
	"time"

	"github.com/momonail/booking-service/internal/domain"
)

// ReservationRepository интерфейс репозитория резервирований
type ReservationRepository interface {
	// Create создает резервирование и возвращает его с заполненными ID и временными метками
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)

	// GetBySalonWithFilter получает резервирования салона на дату
	// Внутри транзакции однодневные выборки берут блокировку FOR UPDATE
	GetBySalonWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	GetDateSchedule(ctx context.Context, salonID int64, date time.Time) (*domain.DateSchedule, error)
	GetWeeklyByWeekday(ctx context.Context, salonID int64, weekday time.Weekday) (*domain.WeeklyDefaultSchedule, error)
	GetSlotsByDate(ctx context.Context, salonID int64, date time.Time) ([]*domain.AvailableTimeSlot, error)
}

// CatalogRepository интерфейс репозитория каталога услуг
type CatalogRepository interface {
	GetService(ctx context.Context, salonID, serviceID int64) (*domain.Service, error)
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	// DoSerializable выполняет fn в транзакции SERIALIZABLE с повтором
	// при конфликте сериализации
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier интерфейс отправки уведомлений после создания резервирования
// Реализация работает best-effort: ошибки доставки не влияют на результат
type Notifier interface {
	ReservationCreated(r *domain.Reservation)
}

// Metrics интерфейс счетчика исходов бронирования (опционально, может быть nil)
type Metrics interface {
	IncReservation(operation, result string)
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
