package set_day_slots

import (
	"time"

	"github.com/momonail/booking-service/internal/domain"
	"github.com/momonail/booking-service/internal/service/schedule/models"
)

// SetDaySlotsRequest HTTP request model
type SetDaySlotsRequest struct {
	Times []string `json:"times"` // "HH:MM", полный новый набор слотов дня
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *SetDaySlotsRequest) ToServiceRequest(salonID int64, dateStr string) (*models.SetDaySlotsRequest, error) {
	date, err := time.ParseInLocation(domain.DateFormat, dateStr, time.Local)
	if err != nil {
		return nil, err
	}

	return &models.SetDaySlotsRequest{
		SalonID: salonID,
		Date:    date,
		Times:   r.Times,
	}, nil
}
