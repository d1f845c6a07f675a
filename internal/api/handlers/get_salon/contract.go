package get_salon

import (
	"context"

	"github.com/momonail/booking-service/internal/service/catalog/models"
)

type CatalogService interface {
	GetSalon(ctx context.Context, id int64) (*models.SalonResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
