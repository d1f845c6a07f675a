package get_available_slots

import (
	"time"

	"github.com/momonail/booking-service/pkg/types"
)

// Request модель запроса на получение доступных слотов на дату
type Request struct {
	SalonID   int64     // ID салона
	ServiceID int64     // ID услуги (длительность услуги определяет занимаемый интервал)
	Date      time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных времен начала
type Response struct {
	Date      time.Time          // Дата, на которую запрашивались слоты
	SalonID   int64              // ID салона
	ServiceID int64              // ID услуги
	Slots     []types.TimeString // Времена начала "HH:MM" по возрастанию
}

// MonthRequest модель запроса месячной доступности
type MonthRequest struct {
	SalonID   int64
	ServiceID int64
	Year      int
	Month     time.Month
}

// MonthResponse модель ответа месячной доступности
type MonthResponse struct {
	Year    int
	Month   time.Month
	SalonID int64
	Days    []DayAvailability // По возрастанию даты, один элемент на каждый день месяца
}

// DayAvailability доступность одного дня месяца
type DayAvailability struct {
	Date      time.Time
	Available bool // Есть ли хотя бы один подходящий слот
	SlotCount int  // Количество доступных слотов
}
