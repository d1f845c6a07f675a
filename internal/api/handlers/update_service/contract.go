package update_service

import (
	"context"

	"github.com/momonail/booking-service/internal/service/catalog/models"
)

type CatalogService interface {
	UpdateService(ctx context.Context, serviceID int64, req *models.UpsertServiceRequest) (*models.ServiceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
