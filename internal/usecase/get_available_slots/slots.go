package get_available_slots

import (
	"time"

	"github.com/momonail/booking-service/internal/domain"
	"github.com/momonail/booking-service/pkg/types"
)

// generateCandidates генерирует кандидатов начала с шагом SlotStepMinutes
// от открытия до последнего времени, при котором candidate + duration <= close
//
// Пример: окно 10:00-12:00, услуга 30 минут -> 10:00, 10:30, 11:00, 11:30
// (11:30 + 30 = 12:00 помещается ровно; 12:00 исключено, т.к. 12:00 + 30 > 12:00)
func generateCandidates(window *domain.ScheduleWindow, durationMinutes int) []types.TimeString {
	candidates := make([]types.TimeString, 0)

	current := window.Open
	for current.IsBefore(window.Close) {
		end, err := current.AddMinutes(durationMinutes)
		if err != nil {
			// Интервал пересекает полночь - дальше кандидаты точно не помещаются
			break
		}
		if end.IsAfter(window.Close) {
			break
		}

		candidates = append(candidates, current)

		next, err := current.AddMinutes(domain.SlotStepMinutes)
		if err != nil {
			break
		}
		current = next
	}

	return candidates
}

// filterOverlapping отбрасывает кандидатов, чей занимаемый интервал
// [candidate, candidate+duration) пересекается с активным резервированием
//
// Пересечение вычисляется по правилу max(start1, start2) < min(end1, end2):
// строгие неравенства, граничащие интервалы пересечением не считаются.
// Используется сохраненный end_time резервирования - он вычислен один раз
// при создании и не пересчитывается при изменении длительности услуги
func filterOverlapping(
	candidates []types.TimeString,
	durationMinutes int,
	reservations []*domain.Reservation,
) []types.TimeString {
	available := make([]types.TimeString, 0, len(candidates))

	for _, candidate := range candidates {
		candidateEnd, err := candidate.AddMinutes(durationMinutes)
		if err != nil {
			continue
		}

		if !overlapsAny(candidate, candidateEnd, reservations) {
			available = append(available, candidate)
		}
	}

	return available
}

// overlapsAny проверяет пересечение интервала с любым активным резервированием
func overlapsAny(start, end types.TimeString, reservations []*domain.Reservation) bool {
	for _, reservation := range reservations {
		// Отмененные и завершенные резервирования время не занимают
		if !reservation.IsActive() {
			continue
		}

		if reservation.StartTime.IsBefore(end) && reservation.EndTime.IsAfter(start) {
			return true
		}
	}

	return false
}

// filterTakenSlots возвращает настроенные слоты, чье время еще не занято
// временем начала активного резервирования (slot mode)
//
// Слот считается занятым только при точном совпадении времени начала.
// Проверки, что slot_time + duration помещается до следующего слота или
// до закрытия, здесь нет намеренно: персонал настраивает слоты уже
// с учетом длительности услуг
func filterTakenSlots(
	slots []*domain.AvailableTimeSlot,
	reservations []*domain.Reservation,
) []types.TimeString {
	taken := make(map[types.TimeString]bool, len(reservations))
	for _, reservation := range reservations {
		if !reservation.IsActive() {
			continue
		}
		taken[reservation.StartTime] = true
	}

	available := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		if !taken[slot.Time] {
			available = append(available, slot.Time)
		}
	}

	return available
}

// filterPastTimes для сегодняшней даты отбрасывает времена, которые уже прошли
// Для других дат возвращает вход без изменений
func filterPastTimes(slots []types.TimeString, date time.Time, now time.Time) []types.TimeString {
	if !isSameDay(date, now) {
		return slots
	}

	currentTime := types.NewTimeString(now)

	filtered := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		if slot.IsAfter(currentTime) {
			filtered = append(filtered, slot)
		}
	}

	return filtered
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
