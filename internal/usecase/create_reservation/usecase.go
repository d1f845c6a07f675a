package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/momonail/booking-service/internal/domain"
	catalogRepo "github.com/momonail/booking-service/internal/infra/storage/catalog"
	reservationRepo "github.com/momonail/booking-service/internal/infra/storage/reservation"
	scheduleRepo "github.com/momonail/booking-service/internal/infra/storage/schedule"
	"github.com/momonail/booking-service/pkg/types"
)

// Количество попыток создания при коллизии номера резервирования
const maxNumberAttempts = 5

// UseCase use case создания резервирования
//
// Проверка доступности и вставка выполняются в одной транзакции SERIALIZABLE:
// два конкурентных запроса на одно время не могут оба успешно завершиться,
// проигравший получает ErrSlotTaken
type UseCase struct {
	reservationRepo ReservationRepository
	scheduleRepo    ScheduleRepository
	catalogRepo     CatalogRepository
	txManager       TransactionManager
	notifier        Notifier
	mode            domain.AvailabilityMode
	timeProvider    TimeProvider
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// metrics может быть nil, если сбор метрик выключен
func NewUseCase(
	reservationRepo ReservationRepository,
	scheduleRepo ScheduleRepository,
	catalogRepo CatalogRepository,
	txManager TransactionManager,
	notifier Notifier,
	mode domain.AvailabilityMode,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		scheduleRepo:    scheduleRepo,
		catalogRepo:     catalogRepo,
		txManager:       txManager,
		notifier:        notifier,
		mode:            mode,
		timeProvider:    &RealTimeProvider{},
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute создает резервирование на запрошенное время
// Новое резервирование всегда создается в статусе pending
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: salon=%d, service=%d, date=%s, time=%s",
		req.SalonID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		uc.incMetric("rejected")
		return nil, err
	}

	now := uc.timeProvider.Now()

	if isDateTimeInPast(req.Date, req.StartTime, now) {
		uc.logger.Warn("CreateReservation: requested time %s %s is in the past",
			req.Date.Format(domain.DateFormat), req.StartTime)
		uc.incMetric("rejected")
		return nil, ErrInvalidDate
	}

	// 2. Получаем услугу - длительность и денормализуемые поля
	service, err := uc.catalogRepo.GetService(ctx, req.SalonID, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateReservation: service id=%d not found", req.ServiceID)
			uc.incMetric("rejected")
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateReservation: failed to get service id=%d: %v", req.ServiceID, err)
		uc.incMetric("error")
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Время окончания вычисляется один раз и сохраняется в записи
	endTime, err := req.StartTime.AddMinutes(service.DurationMinutes)
	if err != nil {
		uc.logger.Warn("CreateReservation: interval %s + %d min crosses midnight",
			req.StartTime, service.DurationMinutes)
		uc.incMetric("conflict")
		return nil, ErrSlotTaken
	}

	var created *domain.Reservation

	// 4. Проверка доступности и вставка в одной транзакции SERIALIZABLE
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := uc.checkAvailability(txCtx, req, endTime, service.DurationMinutes); err != nil {
			return err
		}

		reservation := &domain.Reservation{
			SalonID:         req.SalonID,
			ServiceID:       req.ServiceID,
			CustomerName:    strings.TrimSpace(req.CustomerName),
			CustomerPhone:   req.CustomerPhone,
			CustomerEmail:   strings.TrimSpace(req.CustomerEmail),
			Date:            req.Date,
			StartTime:       req.StartTime,
			EndTime:         endTime,
			DurationMinutes: service.DurationMinutes,
			Status:          domain.StatusPending,
			ServiceName:     service.Name,
			ServicePrice:    service.Price,
		}

		created, err = uc.createWithNumber(txCtx, reservation)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrSlotTaken) || errors.Is(err, ErrSalonClosed) {
			uc.logger.Warn("CreateReservation: slot %s %s unavailable: %v",
				req.Date.Format(domain.DateFormat), req.StartTime, err)
			uc.incMetric("conflict")
			return nil, err
		}
		uc.logger.Error("CreateReservation: transaction failed: %v", err)
		uc.incMetric("error")
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateReservation: created reservation number=%s, id=%d",
		created.ReservationNumber, created.ID)
	uc.incMetric("success")

	// 5. Уведомления отправляются после коммита и не влияют на результат
	if uc.notifier != nil {
		uc.notifier.ReservationCreated(created)
	}

	return &Response{Reservation: created}, nil
}

// checkAvailability проверяет, что запрошенное время доступно
// Вызывается внутри транзакции: выборка резервирований на дату берет FOR UPDATE
func (uc *UseCase) checkAvailability(
	ctx context.Context,
	req *Request,
	endTime types.TimeString,
	durationMinutes int,
) error {
	if uc.mode == domain.ModeSlots {
		if err := uc.checkSlotMode(ctx, req); err != nil {
			return err
		}
	} else {
		if err := uc.checkWindowMode(ctx, req, endTime); err != nil {
			return err
		}
	}

	filter := domain.ReservationsFilter{
		SalonID:         req.SalonID,
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: false,
	}

	reservations, err := uc.reservationRepo.GetBySalonWithFilter(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to get reservations: %w", err)
	}

	for _, other := range reservations {
		if !other.IsActive() {
			continue
		}

		if uc.mode == domain.ModeSlots {
			// В режиме слотов слот занят при точном совпадении времени начала
			if other.StartTime == req.StartTime {
				return ErrSlotTaken
			}
			continue
		}

		// Пересечение интервалов со строгими неравенствами:
		// граничащие интервалы конфликтом не считаются
		if other.StartTime.IsBefore(endTime) && other.EndTime.IsAfter(req.StartTime) {
			return ErrSlotTaken
		}
	}

	return nil
}

// checkWindowMode проверяет, что время попадает в рабочее окно дня
// и выровнено по сетке кандидатов
func (uc *UseCase) checkWindowMode(ctx context.Context, req *Request, endTime types.TimeString) error {
	dateSchedule, err := uc.scheduleRepo.GetDateSchedule(ctx, req.SalonID, req.Date)
	if err != nil && !errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
		return fmt.Errorf("failed to get date schedule: %w", err)
	}

	var weekly *domain.WeeklyDefaultSchedule
	if dateSchedule == nil {
		weekly, err = uc.scheduleRepo.GetWeeklyByWeekday(ctx, req.SalonID, req.Date.Weekday())
		if err != nil && !errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			return fmt.Errorf("failed to get weekly schedule: %w", err)
		}
	}

	// Переопределение на дату приоритетнее недельного расписания
	var window *domain.ScheduleWindow
	if dateSchedule != nil {
		window = dateSchedule.Window()
	} else if weekly != nil {
		window = weekly.Window()
	}

	if window == nil {
		return ErrSalonClosed
	}

	offset, err := window.Open.MinutesUntil(req.StartTime)
	if err != nil {
		return ErrSlotTaken
	}
	if offset < 0 || offset%domain.SlotStepMinutes != 0 {
		return ErrSlotTaken
	}

	if endTime.IsAfter(window.Close) {
		return ErrSlotTaken
	}

	return nil
}

// checkSlotMode проверяет, что время есть среди настроенных слотов дня
func (uc *UseCase) checkSlotMode(ctx context.Context, req *Request) error {
	slots, err := uc.scheduleRepo.GetSlotsByDate(ctx, req.SalonID, req.Date)
	if err != nil {
		return fmt.Errorf("failed to get slots: %w", err)
	}

	for _, slot := range slots {
		if slot.Time == req.StartTime {
			return nil
		}
	}

	return ErrSlotTaken
}

// createWithNumber создает запись, генерируя номер заново при коллизии
func (uc *UseCase) createWithNumber(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	for attempt := 1; attempt <= maxNumberAttempts; attempt++ {
		reservation.ReservationNumber = generateReservationNumber()

		created, err := uc.reservationRepo.Create(ctx, reservation)
		if err == nil {
			return created, nil
		}

		if errors.Is(err, reservationRepo.ErrDuplicateNumber) {
			uc.logger.Warn("CreateReservation: number collision on attempt %d, retrying", attempt)
			continue
		}

		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	return nil, fmt.Errorf("failed to generate unique reservation number after %d attempts", maxNumberAttempts)
}

// generateReservationNumber генерирует человекочитаемый номер резервирования:
// первые символы uuid4 без дефисов, в верхнем регистре
func generateReservationNumber() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[:domain.ReservationNumberLength])
}

// incMetric учитывает исход операции создания в счетчике бронирований
func (uc *UseCase) incMetric(result string) {
	if uc.metrics != nil {
		uc.metrics.IncReservation("create", result)
	}
}

// isDateTimeInPast проверяет, что дата и время уже прошли
func isDateTimeInPast(date time.Time, startTime types.TimeString, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if dateOnly.Before(nowOnly) {
		return true
	}

	if dateOnly.Equal(nowOnly) {
		return !startTime.IsAfter(types.NewTimeString(now))
	}

	return false
}
