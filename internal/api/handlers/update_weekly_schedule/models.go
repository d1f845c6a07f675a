package update_weekly_schedule

import (
	"github.com/momonail/booking-service/internal/service/schedule/models"
)

// UpdateWeeklyScheduleRequest HTTP request model
type UpdateWeeklyScheduleRequest struct {
	Weekday     int     `json:"weekday"` // 0 = воскресенье ... 6 = суббота
	IsClosed    bool    `json:"isClosed"`
	OpeningTime *string `json:"openingTime,omitempty"`
	ClosingTime *string `json:"closingTime,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateWeeklyScheduleRequest) ToServiceRequest(salonID int64) *models.UpsertWeeklyRequest {
	return &models.UpsertWeeklyRequest{
		SalonID:     salonID,
		Weekday:     r.Weekday,
		IsClosed:    r.IsClosed,
		OpeningTime: r.OpeningTime,
		ClosingTime: r.ClosingTime,
	}
}
