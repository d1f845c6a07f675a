package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/momonail/booking-service/internal/domain"
	catalogRepo "github.com/momonail/booking-service/internal/infra/storage/catalog"
	scheduleRepo "github.com/momonail/booking-service/internal/infra/storage/schedule"
	"github.com/momonail/booking-service/pkg/types"
)

// UseCase use case вычисления доступных слотов
//
// Работает в одном из двух режимов (выбирается конфигурацией развертывания):
// - window: слоты генерируются из рабочего окна дня за вычетом пересечений с резервированиями
// - slots: доступны явно настроенные персоналом времена, не занятые резервированием
type UseCase struct {
	reservationRepo ReservationRepository
	scheduleRepo    ScheduleRepository
	catalogRepo     CatalogRepository
	mode            domain.AvailabilityMode
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	scheduleRepo ScheduleRepository,
	catalogRepo CatalogRepository,
	mode domain.AvailabilityMode,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		scheduleRepo:    scheduleRepo,
		catalogRepo:     catalogRepo,
		mode:            mode,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute возвращает доступные времена начала на дату, по возрастанию
// Повторный вызов без записей между ними возвращает идентичный результат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: salon=%d, service=%d, date=%s",
		req.SalonID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	if isDateInPast(req.Date, now) {
		uc.logger.Warn("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 2. Получаем услугу (длительность определяет занимаемый интервал)
	service, err := uc.catalogRepo.GetService(ctx, req.SalonID, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Получаем активные резервирования на дату
	filter := domain.ReservationsFilter{
		SalonID:         req.SalonID,
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: false, // Только pending/confirmed занимают время
	}

	reservations, err := uc.reservationRepo.GetBySalonWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 4. Вычисляем слоты в зависимости от режима
	var slots []types.TimeString
	if uc.mode == domain.ModeSlots {
		slots, err = uc.slotModeTimes(ctx, req.SalonID, req.Date, reservations)
	} else {
		slots, err = uc.windowModeTimes(ctx, req.SalonID, req.Date, service.DurationMinutes, reservations)
	}
	if err != nil {
		return nil, err
	}

	// 5. Для сегодняшней даты отбрасываем уже прошедшие времена
	slots = filterPastTimes(slots, req.Date, now)

	uc.logger.Info("GetAvailableSlots: %d slots for salon=%d, service=%d, date=%s",
		len(slots), req.SalonID, req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:      req.Date,
		SalonID:   req.SalonID,
		ServiceID: req.ServiceID,
		Slots:     slots,
	}, nil
}

// ExecuteMonth возвращает доступность каждого дня месяца по возрастанию даты
// Расписание и резервирования загружаются одним запросом на период
func (uc *UseCase) ExecuteMonth(ctx context.Context, req *MonthRequest) (*MonthResponse, error) {
	uc.logger.Info("GetMonthAvailability: salon=%d, service=%d, month=%d-%02d",
		req.SalonID, req.ServiceID, req.Year, req.Month)

	if err := validateMonthRequest(req); err != nil {
		uc.logger.Warn("GetMonthAvailability: validation failed: %v", err)
		return nil, err
	}

	service, err := uc.catalogRepo.GetService(ctx, req.SalonID, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetMonthAvailability: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetMonthAvailability: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()

	firstDay := time.Date(req.Year, req.Month, 1, 0, 0, 0, 0, time.Local)
	lastDay := firstDay.AddDate(0, 1, -1)

	// Загружаем данные месяца одним проходом
	filter := domain.ReservationsFilter{
		SalonID:         req.SalonID,
		StartDate:       &firstDay,
		EndDate:         &lastDay,
		IncludeInactive: false,
	}

	reservations, err := uc.reservationRepo.GetBySalonWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetMonthAvailability: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	reservationsByDay := groupReservationsByDay(reservations)

	days := make([]DayAvailability, 0, lastDay.Day())

	if uc.mode == domain.ModeSlots {
		slotRows, err := uc.scheduleRepo.GetSlotsInRange(ctx, req.SalonID, firstDay, lastDay)
		if err != nil {
			uc.logger.Error("GetMonthAvailability: failed to get slots: %v", err)
			return nil, fmt.Errorf("%w: failed to get slots: %v", ErrInternal, err)
		}
		slotsByDay := groupSlotsByDay(slotRows)

		for day := firstDay; !day.After(lastDay); day = day.AddDate(0, 0, 1) {
			key := day.Format(domain.DateFormat)
			available := filterTakenSlots(slotsByDay[key], reservationsByDay[key])
			available = filterPastTimes(available, day, now)
			if isDateInPast(day, now) {
				available = nil
			}
			days = append(days, DayAvailability{
				Date:      day,
				Available: len(available) > 0,
				SlotCount: len(available),
			})
		}
	} else {
		overrides, err := uc.scheduleRepo.GetDateSchedulesInRange(ctx, req.SalonID, firstDay, lastDay)
		if err != nil {
			uc.logger.Error("GetMonthAvailability: failed to get date schedules: %v", err)
			return nil, fmt.Errorf("%w: failed to get date schedules: %v", ErrInternal, err)
		}
		overridesByDay := make(map[string]*domain.DateSchedule, len(overrides))
		for _, override := range overrides {
			overridesByDay[override.Date.Format(domain.DateFormat)] = override
		}

		weeklyRows, err := uc.scheduleRepo.GetWeeklyBySalon(ctx, req.SalonID)
		if err != nil {
			uc.logger.Error("GetMonthAvailability: failed to get weekly schedule: %v", err)
			return nil, fmt.Errorf("%w: failed to get weekly schedule: %v", ErrInternal, err)
		}
		weeklyByWeekday := make(map[time.Weekday]*domain.WeeklyDefaultSchedule, len(weeklyRows))
		for _, weekly := range weeklyRows {
			weeklyByWeekday[weekly.Weekday] = weekly
		}

		for day := firstDay; !day.After(lastDay); day = day.AddDate(0, 0, 1) {
			key := day.Format(domain.DateFormat)

			var available []types.TimeString
			if !isDateInPast(day, now) {
				window := resolveWindow(overridesByDay[key], weeklyByWeekday[day.Weekday()])
				if window != nil {
					candidates := generateCandidates(window, service.DurationMinutes)
					available = filterOverlapping(candidates, service.DurationMinutes, reservationsByDay[key])
					available = filterPastTimes(available, day, now)
				}
			}

			days = append(days, DayAvailability{
				Date:      day,
				Available: len(available) > 0,
				SlotCount: len(available),
			})
		}
	}

	uc.logger.Info("GetMonthAvailability: computed %d days for salon=%d, month=%d-%02d",
		len(days), req.SalonID, req.Year, req.Month)

	return &MonthResponse{
		Year:    req.Year,
		Month:   req.Month,
		SalonID: req.SalonID,
		Days:    days,
	}, nil
}

// windowModeTimes вычисляет доступные времена по рабочему окну дня (window mode)
func (uc *UseCase) windowModeTimes(
	ctx context.Context,
	salonID int64,
	date time.Time,
	durationMinutes int,
	reservations []*domain.Reservation,
) ([]types.TimeString, error) {
	// Переопределение на дату приоритетнее недельного расписания
	dateSchedule, err := uc.scheduleRepo.GetDateSchedule(ctx, salonID, date)
	if err != nil && !errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to get date schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get date schedule: %v", ErrInternal, err)
	}

	var weekly *domain.WeeklyDefaultSchedule
	if dateSchedule == nil {
		weekly, err = uc.scheduleRepo.GetWeeklyByWeekday(ctx, salonID, date.Weekday())
		if err != nil && !errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			uc.logger.Error("GetAvailableSlots: failed to get weekly schedule: %v", err)
			return nil, fmt.Errorf("%w: failed to get weekly schedule: %v", ErrInternal, err)
		}
	}

	window := resolveWindow(dateSchedule, weekly)
	if window == nil {
		uc.logger.Info("GetAvailableSlots: salon=%d is closed on %s", salonID, date.Format(domain.DateFormat))
		return []types.TimeString{}, nil
	}

	candidates := generateCandidates(window, durationMinutes)
	return filterOverlapping(candidates, durationMinutes, reservations), nil
}

// slotModeTimes вычисляет доступные времена по явным слотам (slot mode)
func (uc *UseCase) slotModeTimes(
	ctx context.Context,
	salonID int64,
	date time.Time,
	reservations []*domain.Reservation,
) ([]types.TimeString, error) {
	slots, err := uc.scheduleRepo.GetSlotsByDate(ctx, salonID, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get slots: %v", ErrInternal, err)
	}

	return filterTakenSlots(slots, reservations), nil
}

// groupReservationsByDay группирует резервирования по дате "YYYY-MM-DD"
func groupReservationsByDay(reservations []*domain.Reservation) map[string][]*domain.Reservation {
	grouped := make(map[string][]*domain.Reservation, len(reservations))
	for _, reservation := range reservations {
		key := reservation.Date.Format(domain.DateFormat)
		grouped[key] = append(grouped[key], reservation)
	}
	return grouped
}

// groupSlotsByDay группирует явные слоты по дате "YYYY-MM-DD"
func groupSlotsByDay(slots []*domain.AvailableTimeSlot) map[string][]*domain.AvailableTimeSlot {
	grouped := make(map[string][]*domain.AvailableTimeSlot, len(slots))
	for _, slot := range slots {
		key := slot.Date.Format(domain.DateFormat)
		grouped[key] = append(grouped[key], slot)
	}
	return grouped
}
