package domain

import (
	"time"

	"github.com/momonail/booking-service/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
	StatusCompleted ReservationStatus = "completed"
)

// Reservation represents a customer reservation for a salon service
type Reservation struct {
	ID        int64
	SalonID   int64
	ServiceID int64

	// Контактные данные клиента (аккаунтов нет, связь по контактам)
	CustomerName  string
	CustomerPhone *string
	CustomerEmail string

	Date            time.Time // дата резервирования (без времени)
	StartTime       types.TimeString
	EndTime         types.TimeString // start + длительность услуги, вычисляется один раз при создании
	DurationMinutes int

	// Номер резервирования - человекочитаемый идентификатор, выдается один раз
	ReservationNumber string
	Status            ReservationStatus

	// Denormalized data for history
	ServiceName  string
	ServicePrice float64

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation occupies its time slot
// for the purposes of availability computation
func (r *Reservation) IsActive() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// CanBeConfirmed returns true if the reservation can be confirmed
func (r *Reservation) CanBeConfirmed() bool {
	return r.Status == StatusPending
}

// CanBeCancelled returns true if the reservation can be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// CanBeCompleted returns true if the reservation can be marked completed
func (r *Reservation) CanBeCompleted() bool {
	return r.Status == StatusConfirmed
}

// IsTerminal returns true if no further status transition is permitted
func (r *Reservation) IsTerminal() bool {
	return r.Status == StatusCancelled || r.Status == StatusCompleted
}

// ReservationsFilter фильтр для выборки резервирований салона
type ReservationsFilter struct {
	SalonID         int64              // Обязательный параметр
	StartDate       *time.Time         // Начало периода (опционально)
	EndDate         *time.Time         // Конец периода (опционально)
	Status          *ReservationStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли отмененные и завершенные резервирования
}
