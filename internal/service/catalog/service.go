package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/momonail/booking-service/internal/domain"
	catalogRepo "github.com/momonail/booking-service/internal/infra/storage/catalog"
	"github.com/momonail/booking-service/internal/service/catalog/models"
)

// Service сервис каталога: салон и его услуги
type Service struct {
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// GetSalon получает данные салона
func (s *Service) GetSalon(ctx context.Context, id int64) (*models.SalonResponse, error) {
	s.logger.Info("GetSalon: fetching salon id=%d", id)

	if id <= 0 {
		return nil, fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}

	salon, err := s.catalogRepo.GetSalon(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrSalonNotFound) {
			s.logger.Warn("GetSalon: salon id=%d not found", id)
			return nil, ErrSalonNotFound
		}
		s.logger.Error("GetSalon: repository error for salon id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetSalon - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSalon(salon), nil
}

// GetSalonPolicy получает domain модель салона для проверки политики отмены
func (s *Service) GetSalonPolicy(ctx context.Context, id int64) (*domain.Salon, error) {
	salon, err := s.catalogRepo.GetSalon(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrSalonNotFound) {
			return nil, ErrSalonNotFound
		}
		s.logger.Error("GetSalonPolicy: repository error for salon id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetSalonPolicy - repository error: %v", ErrInternal, err)
	}
	return salon, nil
}

// ListServices получает список услуг салона
func (s *Service) ListServices(ctx context.Context, salonID int64) (*models.ServiceListResponse, error) {
	s.logger.Info("ListServices: fetching services for salon=%d", salonID)

	if salonID <= 0 {
		return nil, fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}

	services, err := s.catalogRepo.GetServices(ctx, salonID)
	if err != nil {
		s.logger.Error("ListServices: repository error for salon=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListServices: found %d services for salon=%d", len(services), salonID)
	return models.FromDomainServices(services), nil
}

// CreateService создает новую услугу салона
func (s *Service) CreateService(ctx context.Context, req *models.UpsertServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("CreateService: salon=%d, name=%s", req.SalonID, req.Name)

	service, err := s.toDomainService(req, 0)
	if err != nil {
		s.logger.Warn("CreateService: validation failed for salon=%d: %v", req.SalonID, err)
		return nil, err
	}

	created, err := s.catalogRepo.CreateService(ctx, service)
	if err != nil {
		s.logger.Error("CreateService: repository error for salon=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: CreateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateService: created service id=%d for salon=%d", created.ID, req.SalonID)
	return models.FromDomainService(created), nil
}

// UpdateService обновляет услугу салона
// Длительность и цена уже созданных резервирований не пересчитываются
func (s *Service) UpdateService(ctx context.Context, serviceID int64, req *models.UpsertServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("UpdateService: salon=%d, service=%d", req.SalonID, serviceID)

	if serviceID <= 0 {
		return nil, fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	// Убеждаемся, что услуга принадлежит салону
	if _, err := s.catalogRepo.GetService(ctx, req.SalonID, serviceID); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("UpdateService: service id=%d not found in salon=%d", serviceID, req.SalonID)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("UpdateService: repository error for service id=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: UpdateService - repository error: %v", ErrInternal, err)
	}

	service, err := s.toDomainService(req, serviceID)
	if err != nil {
		s.logger.Warn("UpdateService: validation failed for service id=%d: %v", serviceID, err)
		return nil, err
	}

	if err := s.catalogRepo.UpdateService(ctx, service); err != nil {
		s.logger.Error("UpdateService: repository error for service id=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: UpdateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateService: service id=%d updated", serviceID)
	return models.FromDomainService(service), nil
}

// toDomainService валидирует запрос и строит domain модель
func (s *Service) toDomainService(req *models.UpsertServiceRequest, serviceID int64) (*domain.Service, error) {
	if req.SalonID <= 0 {
		return nil, fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: service name is required", ErrInvalidInput)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	service := &domain.Service{
		ID:              serviceID,
		SalonID:         req.SalonID,
		Name:            strings.TrimSpace(req.Name),
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
	}

	if !service.HasValidDuration() {
		return nil, fmt.Errorf("%w: duration must be a multiple of %d between %d and %d minutes",
			ErrInvalidDuration, domain.SlotStepMinutes,
			domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
	}

	return service, nil
}
