package create_reservation

import (
	"time"

	"github.com/momonail/booking-service/internal/domain"
	createReservation "github.com/momonail/booking-service/internal/usecase/create_reservation"
	"github.com/momonail/booking-service/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	ServiceID     int64   `json:"serviceId"`
	CustomerName  string  `json:"customerName"`
	CustomerPhone *string `json:"customerPhone,omitempty"`
	CustomerEmail string  `json:"customerEmail"`
	Date          string  `json:"date"`      // "2026-03-15"
	StartTime     string  `json:"startTime"` // "10:00"
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(salonID int64) (*createReservation.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, r.Date, time.Local)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		SalonID:       salonID,
		ServiceID:     r.ServiceID,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		CustomerEmail: r.CustomerEmail,
		Date:          date,
		StartTime:     startTime,
	}, nil
}
