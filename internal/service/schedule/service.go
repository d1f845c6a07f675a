package schedule

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/momonail/booking-service/internal/domain"
	scheduleRepo "github.com/momonail/booking-service/internal/infra/storage/schedule"
	"github.com/momonail/booking-service/internal/service/schedule/models"
	"github.com/momonail/booking-service/pkg/types"
)

// Service сервис управления расписанием салона
//
// Расписание под активными резервированиями не редактируется:
// сначала персонал разбирается с записями, потом меняет часы
type Service struct {
	scheduleRepo       ScheduleRepository
	reservationCounter ReservationCounter
	txManager          TransactionManager
	timeProvider       TimeProvider
	logger             Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	scheduleRepo ScheduleRepository,
	reservationCounter ReservationCounter,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo:       scheduleRepo,
		reservationCounter: reservationCounter,
		txManager:          txManager,
		timeProvider:       &RealTimeProvider{},
		logger:             logger,
	}
}

// GetWeekly получает недельное расписание салона
func (s *Service) GetWeekly(ctx context.Context, salonID int64) (*models.WeeklyScheduleListResponse, error) {
	s.logger.Info("GetWeekly: fetching weekly schedule for salon=%d", salonID)

	if salonID <= 0 {
		return nil, fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}

	schedules, err := s.scheduleRepo.GetWeeklyBySalon(ctx, salonID)
	if err != nil {
		s.logger.Error("GetWeekly: repository error for salon=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: GetWeekly - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainWeeklyList(schedules), nil
}

// UpsertWeekly устанавливает расписание одного дня недели
// Отклоняется, если на этот день недели есть активные будущие резервирования
func (s *Service) UpsertWeekly(ctx context.Context, req *models.UpsertWeeklyRequest) (*models.WeeklyScheduleResponse, error) {
	s.logger.Info("UpsertWeekly: salon=%d, weekday=%d", req.SalonID, req.Weekday)

	if req.SalonID <= 0 {
		return nil, fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}
	if req.Weekday < 0 || req.Weekday > 6 {
		return nil, fmt.Errorf("%w: weekday must be between 0 and 6", ErrInvalidInput)
	}

	opening, closing, err := parseHours(req.IsClosed, req.OpeningTime, req.ClosingTime)
	if err != nil {
		s.logger.Warn("UpsertWeekly: invalid hours for salon=%d, weekday=%d: %v", req.SalonID, req.Weekday, err)
		return nil, err
	}

	weekday := time.Weekday(req.Weekday)

	count, err := s.reservationCounter.CountActiveOnWeekday(ctx, req.SalonID, weekday, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("UpsertWeekly: failed to count reservations for salon=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: UpsertWeekly - repository error: %v", ErrInternal, err)
	}
	if count > 0 {
		s.logger.Warn("UpsertWeekly: salon=%d has %d active reservations on weekday=%d", req.SalonID, count, req.Weekday)
		return nil, fmt.Errorf("%w: %d active reservations", ErrWeekdayHasReservations, count)
	}

	schedule := &domain.WeeklyDefaultSchedule{
		SalonID:     req.SalonID,
		Weekday:     weekday,
		IsClosed:    req.IsClosed,
		OpeningTime: opening,
		ClosingTime: closing,
	}

	updated, err := s.scheduleRepo.UpsertWeekly(ctx, schedule)
	if err != nil {
		s.logger.Error("UpsertWeekly: repository error for salon=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: UpsertWeekly - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpsertWeekly: salon=%d, weekday=%d updated", req.SalonID, req.Weekday)
	return models.FromDomainWeekly(updated), nil
}

// GetDate получает переопределение расписания на дату
func (s *Service) GetDate(ctx context.Context, salonID int64, date time.Time) (*models.DateScheduleResponse, error) {
	s.logger.Info("GetDate: fetching date schedule for salon=%d, date=%s", salonID, date.Format(domain.DateFormat))

	if salonID <= 0 {
		return nil, fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}

	schedule, err := s.scheduleRepo.GetDateSchedule(ctx, salonID, date)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("GetDate: repository error for salon=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: GetDate - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainDateSchedule(schedule), nil
}

// UpsertDate устанавливает переопределение расписания на дату
// Отклоняется, если на дату есть активные резервирования
func (s *Service) UpsertDate(ctx context.Context, req *models.UpsertDateRequest) (*models.DateScheduleResponse, error) {
	s.logger.Info("UpsertDate: salon=%d, date=%s", req.SalonID, req.Date.Format(domain.DateFormat))

	if req.SalonID <= 0 {
		return nil, fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	opening, closing, err := parseHours(req.IsClosed, req.OpeningTime, req.ClosingTime)
	if err != nil {
		s.logger.Warn("UpsertDate: invalid hours for salon=%d: %v", req.SalonID, err)
		return nil, err
	}

	if err := s.checkDateEditable(ctx, req.SalonID, req.Date); err != nil {
		return nil, err
	}

	schedule := &domain.DateSchedule{
		SalonID:     req.SalonID,
		Date:        req.Date,
		IsClosed:    req.IsClosed,
		OpeningTime: opening,
		ClosingTime: closing,
	}

	updated, err := s.scheduleRepo.UpsertDateSchedule(ctx, schedule)
	if err != nil {
		s.logger.Error("UpsertDate: repository error for salon=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: UpsertDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpsertDate: salon=%d, date=%s updated", req.SalonID, req.Date.Format(domain.DateFormat))
	return models.FromDomainDateSchedule(updated), nil
}

// GetDaySlots получает набор явных слотов даты (slot mode)
func (s *Service) GetDaySlots(ctx context.Context, salonID int64, date time.Time) (*models.DaySlotsResponse, error) {
	s.logger.Info("GetDaySlots: fetching slots for salon=%d, date=%s", salonID, date.Format(domain.DateFormat))

	if salonID <= 0 {
		return nil, fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}

	slots, err := s.scheduleRepo.GetSlotsByDate(ctx, salonID, date)
	if err != nil {
		s.logger.Error("GetDaySlots: repository error for salon=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: GetDaySlots - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSlots(salonID, date, slots), nil
}

// SetDaySlots заменяет набор явных слотов даты целиком
// Удаление старых и вставка новых выполняются в одной транзакции
func (s *Service) SetDaySlots(ctx context.Context, req *models.SetDaySlotsRequest) (*models.DaySlotsResponse, error) {
	s.logger.Info("SetDaySlots: salon=%d, date=%s, %d slots",
		req.SalonID, req.Date.Format(domain.DateFormat), len(req.Times))

	if req.SalonID <= 0 {
		return nil, fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	slotTimes, err := parseSlotTimes(req.Times)
	if err != nil {
		s.logger.Warn("SetDaySlots: invalid times for salon=%d: %v", req.SalonID, err)
		return nil, err
	}

	if err := s.checkDateEditable(ctx, req.SalonID, req.Date); err != nil {
		return nil, err
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.scheduleRepo.ReplaceDaySlots(txCtx, req.SalonID, req.Date, slotTimes)
	})
	if err != nil {
		s.logger.Error("SetDaySlots: failed to replace slots for salon=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: SetDaySlots - repository error: %v", ErrInternal, err)
	}

	times := make([]string, 0, len(slotTimes))
	for _, t := range slotTimes {
		times = append(times, t.String())
	}

	s.logger.Info("SetDaySlots: salon=%d, date=%s replaced with %d slots",
		req.SalonID, req.Date.Format(domain.DateFormat), len(times))

	return &models.DaySlotsResponse{
		SalonID: req.SalonID,
		Date:    req.Date.Format(domain.DateFormat),
		Times:   times,
	}, nil
}

// checkDateEditable проверяет, что на дату нет активных резервирований
func (s *Service) checkDateEditable(ctx context.Context, salonID int64, date time.Time) error {
	count, err := s.reservationCounter.CountActiveOnDate(ctx, salonID, date)
	if err != nil {
		s.logger.Error("checkDateEditable: failed to count reservations for salon=%d: %v", salonID, err)
		return fmt.Errorf("%w: failed to count reservations: %v", ErrInternal, err)
	}
	if count > 0 {
		s.logger.Warn("checkDateEditable: salon=%d has %d active reservations on %s",
			salonID, count, date.Format(domain.DateFormat))
		return fmt.Errorf("%w: %d active reservations", ErrDateHasReservations, count)
	}
	return nil
}

// parseHours валидирует и конвертирует часы работы
// Для закрытого дня часы игнорируются, для открытого оба времени обязательны
func parseHours(isClosed bool, openingStr, closingStr *string) (*types.TimeString, *types.TimeString, error) {
	if isClosed {
		return nil, nil, nil
	}

	if openingStr == nil || closingStr == nil {
		return nil, nil, fmt.Errorf("%w: opening and closing times are required for an open day", ErrInvalidHours)
	}

	opening, err := types.NewTimeStringFromString(*openingStr)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: invalid opening time: %v", ErrInvalidHours, err)
	}

	closing, err := types.NewTimeStringFromString(*closingStr)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: invalid closing time: %v", ErrInvalidHours, err)
	}

	if !opening.IsBefore(closing) {
		return nil, nil, fmt.Errorf("%w: opening time must be before closing time", ErrInvalidHours)
	}

	return &opening, &closing, nil
}

// parseSlotTimes валидирует, дедуплицирует и сортирует времена слотов
func parseSlotTimes(raw []string) ([]types.TimeString, error) {
	seen := make(map[types.TimeString]bool, len(raw))
	slotTimes := make([]types.TimeString, 0, len(raw))

	for _, value := range raw {
		slotTime, err := types.NewTimeStringFromString(value)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid slot time %q: %v", ErrInvalidInput, value, err)
		}
		if seen[slotTime] {
			continue
		}
		seen[slotTime] = true
		slotTimes = append(slotTimes, slotTime)
	}

	sort.Slice(slotTimes, func(i, j int) bool {
		return slotTimes[i].IsBefore(slotTimes[j])
	})

	return slotTimes, nil
}
