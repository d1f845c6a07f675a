package create_service

import (
	"github.com/momonail/booking-service/internal/service/catalog/models"
)

// CreateServiceRequest HTTP request model
type CreateServiceRequest struct {
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"` // Кратно 30, от 30 до 240
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateServiceRequest) ToServiceRequest(salonID int64) *models.UpsertServiceRequest {
	return &models.UpsertServiceRequest{
		SalonID:         salonID,
		Name:            r.Name,
		Price:           r.Price,
		DurationMinutes: r.DurationMinutes,
	}
}
