package get_month_availability

import (
	"context"

	getAvailableSlots "github.com/momonail/booking-service/internal/usecase/get_available_slots"
)

type GetMonthAvailabilityUseCase interface {
	ExecuteMonth(ctx context.Context, req *getAvailableSlots.MonthRequest) (*getAvailableSlots.MonthResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
