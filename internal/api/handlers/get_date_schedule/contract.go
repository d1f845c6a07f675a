package get_date_schedule

import (
	"context"
	"time"

	"github.com/momonail/booking-service/internal/service/schedule/models"
)

type ScheduleService interface {
	GetDate(ctx context.Context, salonID int64, date time.Time) (*models.DateScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
