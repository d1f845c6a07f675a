package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momonail/booking-service/internal/domain"
	reservationRepo "github.com/momonail/booking-service/internal/infra/storage/reservation"
	"github.com/momonail/booking-service/internal/service/reservations/models"
	"github.com/momonail/booking-service/pkg/types"
)

type fakeRepo struct {
	byNumber map[string]*domain.Reservation
	list     []*domain.Reservation

	lastFilter      domain.ReservationsFilter
	statusUpdates   map[int64]domain.ReservationStatus
	cancelledReason map[int64]string
}

func newFakeRepo(reservations ...*domain.Reservation) *fakeRepo {
	repo := &fakeRepo{
		byNumber:        make(map[string]*domain.Reservation),
		statusUpdates:   make(map[int64]domain.ReservationStatus),
		cancelledReason: make(map[int64]string),
	}
	for _, r := range reservations {
		repo.byNumber[r.ReservationNumber] = r
		repo.list = append(repo.list, r)
	}
	return repo
}

func (f *fakeRepo) GetByNumber(_ context.Context, number string) (*domain.Reservation, error) {
	if r, ok := f.byNumber[number]; ok {
		copied := *r
		return &copied, nil
	}
	return nil, reservationRepo.ErrReservationNotFound
}

func (f *fakeRepo) GetBySalonWithFilter(_ context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	f.lastFilter = filter
	return f.list, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.ReservationStatus) error {
	f.statusUpdates[id] = status
	return nil
}

func (f *fakeRepo) Cancel(_ context.Context, id int64, reason string) error {
	f.cancelledReason[id] = reason
	return nil
}

type recordingNotifier struct {
	confirmed []*domain.Reservation
	cancelled []*domain.Reservation
}

func (n *recordingNotifier) ReservationConfirmed(r *domain.Reservation) {
	n.confirmed = append(n.confirmed, r)
}

func (n *recordingNotifier) ReservationCancelled(r *domain.Reservation) {
	n.cancelled = append(n.cancelled, r)
}

type recordingMetrics struct {
	outcomes map[string]int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{outcomes: make(map[string]int)}
}

func (m *recordingMetrics) IncReservation(operation, result string) {
	m.outcomes[operation+"/"+result]++
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func reservationWithStatus(id int64, number string, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:                id,
		SalonID:           1,
		ServiceID:         10,
		CustomerName:      "山田花子",
		CustomerEmail:     "hanako@example.com",
		Date:              time.Date(2026, time.March, 17, 0, 0, 0, 0, time.Local),
		StartTime:         types.TimeString("10:00"),
		EndTime:           types.TimeString("10:30"),
		DurationMinutes:   30,
		ReservationNumber: number,
		Status:            status,
		ServiceName:       "カット",
		ServicePrice:      4500,
	}
}

func TestGetByNumber(t *testing.T) {
	repo := newFakeRepo(reservationWithStatus(1, "A1B2C3D4E5", domain.StatusPending))
	svc := NewService(repo, &recordingNotifier{}, nil, nopLogger{})

	t.Run("found", func(t *testing.T) {
		resp, err := svc.GetByNumber(context.Background(), "A1B2C3D4E5")

		require.NoError(t, err)
		assert.Equal(t, "A1B2C3D4E5", resp.ReservationNumber)
		assert.Equal(t, "pending", resp.Status)
		assert.Equal(t, "2026-03-17", resp.Date)
		assert.Equal(t, "10:00", resp.StartTime)
	})

	t.Run("number is normalized", func(t *testing.T) {
		resp, err := svc.GetByNumber(context.Background(), "  a1b2c3d4e5  ")

		require.NoError(t, err)
		assert.Equal(t, "A1B2C3D4E5", resp.ReservationNumber)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.GetByNumber(context.Background(), "XXXXXXXXXX")

		assert.ErrorIs(t, err, ErrReservationNotFound)
	})

	t.Run("empty number", func(t *testing.T) {
		_, err := svc.GetByNumber(context.Background(), "   ")

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestList(t *testing.T) {
	repo := newFakeRepo(
		reservationWithStatus(1, "NUM0000001", domain.StatusPending),
		reservationWithStatus(2, "NUM0000002", domain.StatusConfirmed),
	)
	svc := NewService(repo, &recordingNotifier{}, nil, nopLogger{})

	t.Run("returns list with total", func(t *testing.T) {
		resp, err := svc.List(context.Background(), &models.ListReservationsRequest{SalonID: 1})

		require.NoError(t, err)
		assert.Equal(t, 2, resp.Total)
		require.Len(t, resp.Reservations, 2)
	})

	t.Run("status filter passed to repository", func(t *testing.T) {
		status := "confirmed"
		_, err := svc.List(context.Background(), &models.ListReservationsRequest{SalonID: 1, Status: &status})

		require.NoError(t, err)
		require.NotNil(t, repo.lastFilter.Status)
		assert.Equal(t, domain.StatusConfirmed, *repo.lastFilter.Status)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		status := "archived"
		_, err := svc.List(context.Background(), &models.ListReservationsRequest{SalonID: 1, Status: &status})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("salon id required", func(t *testing.T) {
		_, err := svc.List(context.Background(), &models.ListReservationsRequest{})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestConfirm(t *testing.T) {
	t.Run("pending confirmed and notified", func(t *testing.T) {
		repo := newFakeRepo(reservationWithStatus(1, "NUM0000001", domain.StatusPending))
		notifier := &recordingNotifier{}
		metrics := newRecordingMetrics()
		svc := NewService(repo, notifier, metrics, nopLogger{})

		resp, err := svc.Confirm(context.Background(), "NUM0000001")

		require.NoError(t, err)
		assert.Equal(t, "confirmed", resp.Status)
		assert.Equal(t, domain.StatusConfirmed, repo.statusUpdates[1])
		require.Len(t, notifier.confirmed, 1)
		assert.Equal(t, 1, metrics.outcomes["confirm/success"])
	})

	t.Run("already confirmed rejected", func(t *testing.T) {
		repo := newFakeRepo(reservationWithStatus(1, "NUM0000001", domain.StatusConfirmed))
		svc := NewService(repo, &recordingNotifier{}, nil, nopLogger{})

		_, err := svc.Confirm(context.Background(), "NUM0000001")

		assert.ErrorIs(t, err, ErrNotPending)
		assert.Empty(t, repo.statusUpdates)
	})

	t.Run("cancelled rejected", func(t *testing.T) {
		repo := newFakeRepo(reservationWithStatus(1, "NUM0000001", domain.StatusCancelled))
		svc := NewService(repo, &recordingNotifier{}, nil, nopLogger{})

		_, err := svc.Confirm(context.Background(), "NUM0000001")

		assert.ErrorIs(t, err, ErrNotPending)
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewService(newFakeRepo(), &recordingNotifier{}, nil, nopLogger{})

		_, err := svc.Confirm(context.Background(), "XXXXXXXXXX")

		assert.ErrorIs(t, err, ErrReservationNotFound)
	})
}

func TestCancel(t *testing.T) {
	cancelReq := &models.CancelReservationRequest{CancellationReason: "都合が悪くなったため"}

	t.Run("pending cancelled with reason", func(t *testing.T) {
		repo := newFakeRepo(reservationWithStatus(1, "NUM0000001", domain.StatusPending))
		notifier := &recordingNotifier{}
		metrics := newRecordingMetrics()
		svc := NewService(repo, notifier, metrics, nopLogger{})

		resp, err := svc.Cancel(context.Background(), "NUM0000001", cancelReq)

		require.NoError(t, err)
		assert.Equal(t, "cancelled", resp.Status)
		require.NotNil(t, resp.CancellationReason)
		assert.Equal(t, "都合が悪くなったため", *resp.CancellationReason)
		assert.NotNil(t, resp.CancelledAt)
		assert.Equal(t, "都合が悪くなったため", repo.cancelledReason[1])
		require.Len(t, notifier.cancelled, 1)
		assert.Equal(t, 1, metrics.outcomes["cancel/success"])
	})

	t.Run("confirmed can be cancelled", func(t *testing.T) {
		repo := newFakeRepo(reservationWithStatus(1, "NUM0000001", domain.StatusConfirmed))
		svc := NewService(repo, &recordingNotifier{}, nil, nopLogger{})

		resp, err := svc.Cancel(context.Background(), "NUM0000001", cancelReq)

		require.NoError(t, err)
		assert.Equal(t, "cancelled", resp.Status)
	})

	t.Run("already cancelled rejected", func(t *testing.T) {
		repo := newFakeRepo(reservationWithStatus(1, "NUM0000001", domain.StatusCancelled))
		notifier := &recordingNotifier{}
		metrics := newRecordingMetrics()
		svc := NewService(repo, notifier, metrics, nopLogger{})

		_, err := svc.Cancel(context.Background(), "NUM0000001", cancelReq)

		assert.ErrorIs(t, err, ErrCannotCancel)
		assert.Empty(t, notifier.cancelled)
		assert.Equal(t, 1, metrics.outcomes["cancel/conflict"])
	})

	t.Run("completed rejected", func(t *testing.T) {
		repo := newFakeRepo(reservationWithStatus(1, "NUM0000001", domain.StatusCompleted))
		svc := NewService(repo, &recordingNotifier{}, nil, nopLogger{})

		_, err := svc.Cancel(context.Background(), "NUM0000001", cancelReq)

		assert.ErrorIs(t, err, ErrCannotCancel)
	})
}

func TestComplete(t *testing.T) {
	t.Run("confirmed completed", func(t *testing.T) {
		repo := newFakeRepo(reservationWithStatus(1, "NUM0000001", domain.StatusConfirmed))
		svc := NewService(repo, &recordingNotifier{}, nil, nopLogger{})

		resp, err := svc.Complete(context.Background(), "NUM0000001")

		require.NoError(t, err)
		assert.Equal(t, "completed", resp.Status)
		assert.Equal(t, domain.StatusCompleted, repo.statusUpdates[1])
	})

	t.Run("pending rejected", func(t *testing.T) {
		repo := newFakeRepo(reservationWithStatus(1, "NUM0000001", domain.StatusPending))
		svc := NewService(repo, &recordingNotifier{}, nil, nopLogger{})

		_, err := svc.Complete(context.Background(), "NUM0000001")

		assert.ErrorIs(t, err, ErrCannotComplete)
	})

	t.Run("cancelled rejected", func(t *testing.T) {
		repo := newFakeRepo(reservationWithStatus(1, "NUM0000001", domain.StatusCancelled))
		svc := NewService(repo, &recordingNotifier{}, nil, nopLogger{})

		_, err := svc.Complete(context.Background(), "NUM0000001")

		assert.ErrorIs(t, err, ErrCannotComplete)
	})
}
