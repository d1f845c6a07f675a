package domain

import (
	"time"

	"github.com/momonail/booking-service/pkg/types"
)

// WeeklyDefaultSchedule represents the recurring weekly operating pattern
// One row per (salon, weekday); hours are meaningful only when not closed
type WeeklyDefaultSchedule struct {
	ID          int64
	SalonID     int64
	Weekday     time.Weekday
	IsClosed    bool
	OpeningTime *types.TimeString
	ClosingTime *types.TimeString
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DateSchedule represents a date-specific override of the weekly default
// Absence of a row for a date means "fall back to the weekly default"
type DateSchedule struct {
	ID          int64
	SalonID     int64
	Date        time.Time
	IsClosed    bool
	OpeningTime *types.TimeString
	ClosingTime *types.TimeString
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AvailableTimeSlot represents a single staff-curated bookable clock-time on a date
// Used in slot mode instead of the opening/closing window
type AvailableTimeSlot struct {
	ID      int64
	SalonID int64
	Date    time.Time
	Time    types.TimeString
}

// ScheduleWindow effective opening window of a salon for one date
type ScheduleWindow struct {
	Open  types.TimeString
	Close types.TimeString
}

// HasUsableHours returns true if both opening and closing times are set
// A schedule row without hours is not usable as a working window
func hasUsableHours(opening, closing *types.TimeString) bool {
	return opening != nil && !opening.IsZero() && closing != nil && !closing.IsZero()
}

// Window returns the working window of the date override, or nil if the day is closed
func (d *DateSchedule) Window() *ScheduleWindow {
	if d.IsClosed || !hasUsableHours(d.OpeningTime, d.ClosingTime) {
		return nil
	}
	return &ScheduleWindow{Open: *d.OpeningTime, Close: *d.ClosingTime}
}

// Window returns the working window of the weekly default, or nil if the day is closed
func (w *WeeklyDefaultSchedule) Window() *ScheduleWindow {
	if w.IsClosed || !hasUsableHours(w.OpeningTime, w.ClosingTime) {
		return nil
	}
	return &ScheduleWindow{Open: *w.OpeningTime, Close: *w.ClosingTime}
}

// AvailabilityMode selects how availability is computed for a deployment
type AvailabilityMode string

const (
	// ModeWindow availability from the opening/closing window minus reservation overlaps
	ModeWindow AvailabilityMode = "window"

	// ModeSlots availability from the explicit per-date set of bookable times
	ModeSlots AvailabilityMode = "slots"
)

// Valid returns true for a known availability mode
func (m AvailabilityMode) Valid() bool {
	return m == ModeWindow || m == ModeSlots
}
