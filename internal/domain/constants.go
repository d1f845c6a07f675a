package domain

// Slot generation constants
const (
	// SlotStepMinutes шаг генерации кандидатов слотов
	SlotStepMinutes = 30
)

// Business validation constants
const (
	MinServiceDurationMinutes = 30
	MaxServiceDurationMinutes = 240

	MaxCustomerNameLength       = 100
	MaxCancellationReasonLength = 500

	// ReservationNumberLength длина номера резервирования (hex от uuid4, верхний регистр)
	ReservationNumberLength = 10
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы, при которых резервирование занимает своё время
// Используются в проверке пересечений при подсчете доступных слотов
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
}

// InactiveStatuses статусы, не участвующие в проверке пересечений
var InactiveStatuses = []ReservationStatus{
	StatusCancelled,
	StatusCompleted,
}
