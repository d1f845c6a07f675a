package get_day_slots

import (
	"context"
	"time"

	"github.com/momonail/booking-service/internal/service/schedule/models"
)

type ScheduleService interface {
	GetDaySlots(ctx context.Context, salonID int64, date time.Time) (*models.DaySlotsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
