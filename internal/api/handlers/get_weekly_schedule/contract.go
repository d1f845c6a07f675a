package get_weekly_schedule

import (
	"context"

	"github.com/momonail/booking-service/internal/service/schedule/models"
)

type ScheduleService interface {
	GetWeekly(ctx context.Context, salonID int64) (*models.WeeklyScheduleListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
