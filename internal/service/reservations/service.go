package reservations

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/momonail/booking-service/internal/domain"
	reservationRepo "github.com/momonail/booking-service/internal/infra/storage/reservation"
	"github.com/momonail/booking-service/internal/service/reservations/models"
)

// Service сервис для работы с жизненным циклом резервирований
//
// Переходы статусов: pending -> confirmed/cancelled,
// confirmed -> cancelled/completed; cancelled и completed терминальные
type Service struct {
	reservationRepo ReservationRepository
	notifier        Notifier
	metrics         Metrics
	logger          Logger
}

// NewService создает новый экземпляр сервиса резервирований
// metrics может быть nil, если сбор метрик выключен
func NewService(
	reservationRepo ReservationRepository,
	notifier Notifier,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		notifier:        notifier,
		metrics:         metrics,
		logger:          logger,
	}
}

// GetByNumber получает резервирование по номеру
// Номер - публичный идентификатор, который выдается клиенту при создании
func (s *Service) GetByNumber(ctx context.Context, number string) (*models.ReservationResponse, error) {
	s.logger.Info("GetByNumber: fetching reservation number=%s", number)

	reservation, err := s.getByNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	return models.FromDomainReservation(reservation), nil
}

// List получает резервирования салона с фильтрацией по периоду и статусу
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("List: fetching reservations for salon=%d", req.SalonID)

	if req.SalonID <= 0 {
		return nil, fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid status filter for salon=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.GetBySalonWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for salon=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: found %d reservations for salon=%d", len(reservations), req.SalonID)
	return models.FromDomainReservations(reservations), nil
}

// Confirm подтверждает резервирование
// Разрешено только из статуса pending
func (s *Service) Confirm(ctx context.Context, number string) (*models.ReservationResponse, error) {
	s.logger.Info("Confirm: confirming reservation number=%s", number)

	reservation, err := s.getByNumber(ctx, number)
	if err != nil {
		s.incMetric("confirm", "rejected")
		return nil, err
	}

	if !reservation.CanBeConfirmed() {
		s.logger.Warn("Confirm: reservation number=%s has status=%s, cannot confirm",
			number, reservation.Status)
		s.incMetric("confirm", "conflict")
		return nil, fmt.Errorf("%w: current status is %s", ErrNotPending, reservation.Status)
	}

	if err := s.reservationRepo.UpdateStatus(ctx, reservation.ID, domain.StatusConfirmed); err != nil {
		s.logger.Error("Confirm: failed to update status for number=%s: %v", number, err)
		s.incMetric("confirm", "error")
		return nil, fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
	}

	reservation.Status = domain.StatusConfirmed
	s.incMetric("confirm", "success")

	if s.notifier != nil {
		s.notifier.ReservationConfirmed(reservation)
	}

	s.logger.Info("Confirm: reservation number=%s confirmed", number)
	return models.FromDomainReservation(reservation), nil
}

// Cancel отменяет резервирование с указанием причины
// Разрешено из статусов pending и confirmed, слот снова становится доступным
func (s *Service) Cancel(ctx context.Context, number string, req *models.CancelReservationRequest) (*models.ReservationResponse, error) {
	s.logger.Info("Cancel: cancelling reservation number=%s", number)

	reservation, err := s.getByNumber(ctx, number)
	if err != nil {
		s.incMetric("cancel", "rejected")
		return nil, err
	}

	if !reservation.CanBeCancelled() {
		s.logger.Warn("Cancel: reservation number=%s has status=%s, cannot cancel",
			number, reservation.Status)
		s.incMetric("cancel", "conflict")
		return nil, fmt.Errorf("%w: current status is %s", ErrCannotCancel, reservation.Status)
	}

	reason := strings.TrimSpace(req.CancellationReason)

	if err := s.reservationRepo.Cancel(ctx, reservation.ID, reason); err != nil {
		s.logger.Error("Cancel: failed to cancel number=%s: %v", number, err)
		s.incMetric("cancel", "error")
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	now := time.Now()
	reservation.Status = domain.StatusCancelled
	reservation.CancellationReason = &reason
	reservation.CancelledAt = &now
	s.incMetric("cancel", "success")

	if s.notifier != nil {
		s.notifier.ReservationCancelled(reservation)
	}

	s.logger.Info("Cancel: reservation number=%s cancelled", number)
	return models.FromDomainReservation(reservation), nil
}

// Complete отмечает резервирование как завершенное после визита
// Разрешено только из статуса confirmed
func (s *Service) Complete(ctx context.Context, number string) (*models.ReservationResponse, error) {
	s.logger.Info("Complete: completing reservation number=%s", number)

	reservation, err := s.getByNumber(ctx, number)
	if err != nil {
		s.incMetric("complete", "rejected")
		return nil, err
	}

	if !reservation.CanBeCompleted() {
		s.logger.Warn("Complete: reservation number=%s has status=%s, cannot complete",
			number, reservation.Status)
		s.incMetric("complete", "conflict")
		return nil, fmt.Errorf("%w: current status is %s", ErrCannotComplete, reservation.Status)
	}

	if err := s.reservationRepo.UpdateStatus(ctx, reservation.ID, domain.StatusCompleted); err != nil {
		s.logger.Error("Complete: failed to update status for number=%s: %v", number, err)
		s.incMetric("complete", "error")
		return nil, fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	reservation.Status = domain.StatusCompleted
	s.incMetric("complete", "success")

	s.logger.Info("Complete: reservation number=%s completed", number)
	return models.FromDomainReservation(reservation), nil
}

// incMetric учитывает исход операции в счетчике бронирований
func (s *Service) incMetric(operation, result string) {
	if s.metrics != nil {
		s.metrics.IncReservation(operation, result)
	}
}

// getByNumber получает domain модель по номеру с маппингом ошибок репозитория
func (s *Service) getByNumber(ctx context.Context, number string) (*domain.Reservation, error) {
	number = strings.ToUpper(strings.TrimSpace(number))
	if number == "" {
		return nil, fmt.Errorf("%w: reservation number is required", ErrInvalidInput)
	}

	reservation, err := s.reservationRepo.GetByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("getByNumber: reservation number=%s not found", number)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("getByNumber: repository error for number=%s: %v", number, err)
		return nil, fmt.Errorf("%w: getByNumber - repository error: %v", ErrInternal, err)
	}

	return reservation, nil
}
