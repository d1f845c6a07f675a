package get_month_availability

import (
	"github.com/momonail/booking-service/internal/domain"
	getAvailableSlots "github.com/momonail/booking-service/internal/usecase/get_available_slots"
)

// MonthAvailabilityResponse HTTP response model
type MonthAvailabilityResponse struct {
	Year    int               `json:"year"`
	Month   int               `json:"month"`
	SalonID int64             `json:"salonId"`
	Days    []DayAvailability `json:"days"` // По возрастанию даты, на каждый день месяца
}

// DayAvailability доступность одного дня месяца
type DayAvailability struct {
	Date      string `json:"date"` // "2026-03-15"
	Available bool   `json:"available"`
	SlotCount int    `json:"slotCount"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.MonthResponse) *MonthAvailabilityResponse {
	days := make([]DayAvailability, len(resp.Days))
	for i, day := range resp.Days {
		days[i] = DayAvailability{
			Date:      day.Date.Format(domain.DateFormat),
			Available: day.Available,
			SlotCount: day.SlotCount,
		}
	}

	return &MonthAvailabilityResponse{
		Year:    resp.Year,
		Month:   int(resp.Month),
		SalonID: resp.SalonID,
		Days:    days,
	}
}
