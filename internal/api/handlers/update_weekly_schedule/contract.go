package update_weekly_schedule

import (
	"context"

	"github.com/momonail/booking-service/internal/service/schedule/models"
)

type ScheduleService interface {
	UpsertWeekly(ctx context.Context, req *models.UpsertWeeklyRequest) (*models.WeeklyScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
