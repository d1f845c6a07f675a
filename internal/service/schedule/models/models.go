package models

import (
	"time"

	"github.com/momonail/booking-service/internal/domain"
)

// Request модели

// UpsertWeeklyRequest запрос на установку недельного расписания дня недели
type UpsertWeeklyRequest struct {
	SalonID     int64   `json:"salonId"`
	Weekday     int     `json:"weekday"` // 0 = воскресенье ... 6 = суббота
	IsClosed    bool    `json:"isClosed"`
	OpeningTime *string `json:"openingTime,omitempty"` // "HH:MM", обязательно если день открыт
	ClosingTime *string `json:"closingTime,omitempty"` // "HH:MM", обязательно если день открыт
}

// UpsertDateRequest запрос на установку переопределения расписания на дату
type UpsertDateRequest struct {
	SalonID     int64     `json:"salonId"`
	Date        time.Time `json:"date"`
	IsClosed    bool      `json:"isClosed"`
	OpeningTime *string   `json:"openingTime,omitempty"`
	ClosingTime *string   `json:"closingTime,omitempty"`
}

// SetDaySlotsRequest запрос на замену набора явных слотов даты
type SetDaySlotsRequest struct {
	SalonID int64     `json:"salonId"`
	Date    time.Time `json:"date"`
	Times   []string  `json:"times"` // "HH:MM", полный новый набор слотов дня
}

// Response модели

// WeeklyScheduleResponse ответ с расписанием одного дня недели
type WeeklyScheduleResponse struct {
	SalonID     int64   `json:"salonId"`
	Weekday     int     `json:"weekday"`
	IsClosed    bool    `json:"isClosed"`
	OpeningTime *string `json:"openingTime,omitempty"`
	ClosingTime *string `json:"closingTime,omitempty"`
}

// WeeklyScheduleListResponse ответ с недельным расписанием салона
type WeeklyScheduleListResponse struct {
	Days []*WeeklyScheduleResponse `json:"days"`
}

// DateScheduleResponse ответ с переопределением расписания на дату
type DateScheduleResponse struct {
	SalonID     int64   `json:"salonId"`
	Date        string  `json:"date"` // "2026-03-15"
	IsClosed    bool    `json:"isClosed"`
	OpeningTime *string `json:"openingTime,omitempty"`
	ClosingTime *string `json:"closingTime,omitempty"`
}

// DaySlotsResponse ответ с набором явных слотов даты
type DaySlotsResponse struct {
	SalonID int64    `json:"salonId"`
	Date    string   `json:"date"`
	Times   []string `json:"times"` // По возрастанию
}

// FromDomainWeekly конвертирует domain модель в response
func FromDomainWeekly(w *domain.WeeklyDefaultSchedule) *WeeklyScheduleResponse {
	resp := &WeeklyScheduleResponse{
		SalonID:  w.SalonID,
		Weekday:  int(w.Weekday),
		IsClosed: w.IsClosed,
	}
	if w.OpeningTime != nil {
		opening := w.OpeningTime.String()
		resp.OpeningTime = &opening
	}
	if w.ClosingTime != nil {
		closing := w.ClosingTime.String()
		resp.ClosingTime = &closing
	}
	return resp
}

// FromDomainWeeklyList конвертирует список domain моделей в response
func FromDomainWeeklyList(schedules []*domain.WeeklyDefaultSchedule) *WeeklyScheduleListResponse {
	days := make([]*WeeklyScheduleResponse, 0, len(schedules))
	for _, w := range schedules {
		days = append(days, FromDomainWeekly(w))
	}
	return &WeeklyScheduleListResponse{Days: days}
}

// FromDomainDateSchedule конвертирует domain модель в response
func FromDomainDateSchedule(d *domain.DateSchedule) *DateScheduleResponse {
	resp := &DateScheduleResponse{
		SalonID:  d.SalonID,
		Date:     d.Date.Format(domain.DateFormat),
		IsClosed: d.IsClosed,
	}
	if d.OpeningTime != nil {
		opening := d.OpeningTime.String()
		resp.OpeningTime = &opening
	}
	if d.ClosingTime != nil {
		closing := d.ClosingTime.String()
		resp.ClosingTime = &closing
	}
	return resp
}

// FromDomainSlots конвертирует список слотов даты в response
func FromDomainSlots(salonID int64, date time.Time, slots []*domain.AvailableTimeSlot) *DaySlotsResponse {
	times := make([]string, 0, len(slots))
	for _, slot := range slots {
		times = append(times, slot.Time.String())
	}
	return &DaySlotsResponse{
		SalonID: salonID,
		Date:    date.Format(domain.DateFormat),
		Times:   times,
	}
}
