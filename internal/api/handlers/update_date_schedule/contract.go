package update_date_schedule

import (
	"context"

	"github.com/momonail/booking-service/internal/service/schedule/models"
)

type ScheduleService interface {
	UpsertDate(ctx context.Context, req *models.UpsertDateRequest) (*models.DateScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
