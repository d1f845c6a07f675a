package update_date_schedule

import (
	"time"

	"github.com/momonail/booking-service/internal/domain"
	"github.com/momonail/booking-service/internal/service/schedule/models"
)

// UpdateDateScheduleRequest HTTP request model
type UpdateDateScheduleRequest struct {
	IsClosed    bool    `json:"isClosed"`
	OpeningTime *string `json:"openingTime,omitempty"`
	ClosingTime *string `json:"closingTime,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateDateScheduleRequest) ToServiceRequest(salonID int64, dateStr string) (*models.UpsertDateRequest, error) {
	date, err := time.ParseInLocation(domain.DateFormat, dateStr, time.Local)
	if err != nil {
		return nil, err
	}

	return &models.UpsertDateRequest{
		SalonID:     salonID,
		Date:        date,
		IsClosed:    r.IsClosed,
		OpeningTime: r.OpeningTime,
		ClosingTime: r.ClosingTime,
	}, nil
}
