package models

import (
	"github.com/momonail/booking-service/internal/domain"
)

// Request модели

// UpsertServiceRequest запрос на создание или обновление услуги
type UpsertServiceRequest struct {
	SalonID         int64   `json:"salonId"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"` // Кратно 30, от 30 до 240
}

// Response модели

// SalonResponse ответ с данными салона
type SalonResponse struct {
	ID                       int64  `json:"id"`
	Name                     string `json:"name"`
	Address                  string `json:"address"`
	PhoneNumber              string `json:"phoneNumber"`
	CancellationDeadlineDays int    `json:"cancellationDeadlineDays"`
}

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              int64   `json:"id"`
	SalonID         int64   `json:"salonId"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

// ServiceListResponse ответ со списком услуг салона
type ServiceListResponse struct {
	Services []*ServiceResponse `json:"services"`
	Total    int                `json:"total"`
}

// FromDomainSalon конвертирует domain модель в response
func FromDomainSalon(s *domain.Salon) *SalonResponse {
	return &SalonResponse{
		ID:                       s.ID,
		Name:                     s.Name,
		Address:                  s.Address,
		PhoneNumber:              s.PhoneNumber,
		CancellationDeadlineDays: s.CancellationDeadlineDays,
	}
}

// FromDomainService конвертирует domain модель в response
func FromDomainService(s *domain.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:              s.ID,
		SalonID:         s.SalonID,
		Name:            s.Name,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
	}
}

// FromDomainServices конвертирует список domain моделей в response
func FromDomainServices(services []*domain.Service) *ServiceListResponse {
	responses := make([]*ServiceResponse, 0, len(services))
	for _, s := range services {
		responses = append(responses, FromDomainService(s))
	}
	return &ServiceListResponse{
		Services: responses,
		Total:    len(responses),
	}
}
