package domain

import "time"

// Salon represents the salon itself: identity, contact and cancellation policy
// Single salon in practice, but modeled as a table
type Salon struct {
	ID          int64
	Name        string
	Address     string
	PhoneNumber string

	// Минимальное количество дней до начала, за которое клиент может отменить сам
	CancellationDeadlineDays int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Service represents a bookable salon service
// DurationMinutes drives how long a reservation occupies the calendar
type Service struct {
	ID              int64
	SalonID         int64
	Name            string
	Price           float64
	DurationMinutes int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// HasValidDuration returns true if the duration is a multiple of the slot
// step within the allowed range
func (s *Service) HasValidDuration() bool {
	return s.DurationMinutes >= MinServiceDurationMinutes &&
		s.DurationMinutes <= MaxServiceDurationMinutes &&
		s.DurationMinutes%SlotStepMinutes == 0
}
