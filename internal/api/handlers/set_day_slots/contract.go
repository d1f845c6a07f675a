package set_day_slots

import (
	"context"

	"github.com/momonail/booking-service/internal/service/schedule/models"
)

type ScheduleService interface {
	SetDaySlots(ctx context.Context, req *models.SetDaySlotsRequest) (*models.DaySlotsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
