package get_available_slots

import (
	"github.com/momonail/booking-service/internal/domain"
)

// resolveWindow определяет действующее рабочее окно дня по правилу приоритета:
// переопределение на дату всегда побеждает недельное расписание - это
// механизм праздников и особых часов работы
//
// Возвращает nil, если день закрыт:
// - переопределение с is_closed
// - переопределение без часов работы (строка без часов не является рабочим окном)
// - недельное расписание с is_closed или без часов
// - день недели вообще не настроен (ненастроенный день = закрыт, консервативное умолчание)
func resolveWindow(dateSchedule *domain.DateSchedule, weekly *domain.WeeklyDefaultSchedule) *domain.ScheduleWindow {
	if dateSchedule != nil {
		return dateSchedule.Window()
	}

	if weekly != nil {
		return weekly.Window()
	}

	return nil
}
