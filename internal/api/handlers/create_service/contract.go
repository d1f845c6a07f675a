package create_service

import (
	"context"

	"github.com/momonail/booking-service/internal/service/catalog/models"
)

type CatalogService interface {
	CreateService(ctx context.Context, req *models.UpsertServiceRequest) (*models.ServiceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
