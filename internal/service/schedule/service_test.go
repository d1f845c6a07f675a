package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momonail/booking-service/internal/domain"
	scheduleRepo "github.com/momonail/booking-service/internal/infra/storage/schedule"
	"github.com/momonail/booking-service/internal/service/schedule/models"
	"github.com/momonail/booking-service/pkg/types"
)

var testDate = time.Date(2026, time.March, 17, 0, 0, 0, 0, time.Local)

type fakeScheduleRepo struct {
	weekly        []*domain.WeeklyDefaultSchedule
	dateSchedules map[string]*domain.DateSchedule

	upsertedWeekly *domain.WeeklyDefaultSchedule
	upsertedDate   *domain.DateSchedule
	replacedTimes  []types.TimeString
	slots          []*domain.AvailableTimeSlot
}

func (f *fakeScheduleRepo) GetWeeklyBySalon(_ context.Context, _ int64) ([]*domain.WeeklyDefaultSchedule, error) {
	return f.weekly, nil
}

func (f *fakeScheduleRepo) UpsertWeekly(_ context.Context, schedule *domain.WeeklyDefaultSchedule) (*domain.WeeklyDefaultSchedule, error) {
	f.upsertedWeekly = schedule
	return schedule, nil
}

func (f *fakeScheduleRepo) GetDateSchedule(_ context.Context, _ int64, date time.Time) (*domain.DateSchedule, error) {
	if schedule, ok := f.dateSchedules[date.Format(domain.DateFormat)]; ok {
		return schedule, nil
	}
	return nil, scheduleRepo.ErrScheduleNotFound
}

func (f *fakeScheduleRepo) UpsertDateSchedule(_ context.Context, schedule *domain.DateSchedule) (*domain.DateSchedule, error) {
	f.upsertedDate = schedule
	return schedule, nil
}

func (f *fakeScheduleRepo) GetSlotsByDate(_ context.Context, _ int64, _ time.Time) ([]*domain.AvailableTimeSlot, error) {
	return f.slots, nil
}

func (f *fakeScheduleRepo) ReplaceDaySlots(_ context.Context, _ int64, _ time.Time, times []types.TimeString) error {
	f.replacedTimes = times
	return nil
}

type fakeCounter struct {
	onDate    int
	onWeekday int
}

func (f *fakeCounter) CountActiveOnDate(_ context.Context, _ int64, _ time.Time) (int, error) {
	return f.onDate, nil
}

func (f *fakeCounter) CountActiveOnWeekday(_ context.Context, _ int64, _ time.Weekday, _ time.Time) (int, error) {
	return f.onWeekday, nil
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func strPtr(s string) *string {
	return &s
}

type fixture struct {
	repo      *fakeScheduleRepo
	counter   *fakeCounter
	txManager *fakeTxManager
	svc       *Service
}

func newFixture() *fixture {
	f := &fixture{
		repo:      &fakeScheduleRepo{},
		counter:   &fakeCounter{},
		txManager: &fakeTxManager{},
	}
	f.svc = NewService(f.repo, f.counter, f.txManager, nopLogger{})
	return f
}

func TestUpsertWeekly(t *testing.T) {
	t.Run("open day stored with hours", func(t *testing.T) {
		f := newFixture()

		resp, err := f.svc.UpsertWeekly(context.Background(), &models.UpsertWeeklyRequest{
			SalonID:     1,
			Weekday:     2,
			OpeningTime: strPtr("10:00"),
			ClosingTime: strPtr("18:00"),
		})

		require.NoError(t, err)
		assert.Equal(t, 2, resp.Weekday)
		assert.False(t, resp.IsClosed)
		require.NotNil(t, resp.OpeningTime)
		assert.Equal(t, "10:00", *resp.OpeningTime)

		require.NotNil(t, f.repo.upsertedWeekly)
		assert.Equal(t, time.Tuesday, f.repo.upsertedWeekly.Weekday)
	})

	t.Run("closed day ignores hours", func(t *testing.T) {
		f := newFixture()

		resp, err := f.svc.UpsertWeekly(context.Background(), &models.UpsertWeeklyRequest{
			SalonID:     1,
			Weekday:     0,
			IsClosed:    true,
			OpeningTime: strPtr("10:00"),
			ClosingTime: strPtr("18:00"),
		})

		require.NoError(t, err)
		assert.True(t, resp.IsClosed)
		assert.Nil(t, resp.OpeningTime)
		assert.Nil(t, resp.ClosingTime)
	})

	t.Run("open day requires both hours", func(t *testing.T) {
		f := newFixture()

		_, err := f.svc.UpsertWeekly(context.Background(), &models.UpsertWeeklyRequest{
			SalonID:     1,
			Weekday:     2,
			OpeningTime: strPtr("10:00"),
		})

		assert.ErrorIs(t, err, ErrInvalidHours)
	})

	t.Run("opening must be before closing", func(t *testing.T) {
		f := newFixture()

		_, err := f.svc.UpsertWeekly(context.Background(), &models.UpsertWeeklyRequest{
			SalonID:     1,
			Weekday:     2,
			OpeningTime: strPtr("18:00"),
			ClosingTime: strPtr("10:00"),
		})

		assert.ErrorIs(t, err, ErrInvalidHours)
	})

	t.Run("weekday out of range", func(t *testing.T) {
		f := newFixture()

		_, err := f.svc.UpsertWeekly(context.Background(), &models.UpsertWeeklyRequest{
			SalonID:  1,
			Weekday:  7,
			IsClosed: true,
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("blocked by active reservations on weekday", func(t *testing.T) {
		f := newFixture()
		f.counter.onWeekday = 3

		_, err := f.svc.UpsertWeekly(context.Background(), &models.UpsertWeeklyRequest{
			SalonID:  1,
			Weekday:  2,
			IsClosed: true,
		})

		assert.ErrorIs(t, err, ErrWeekdayHasReservations)
		assert.Nil(t, f.repo.upsertedWeekly)
	})
}

func TestUpsertDate(t *testing.T) {
	t.Run("override stored", func(t *testing.T) {
		f := newFixture()

		resp, err := f.svc.UpsertDate(context.Background(), &models.UpsertDateRequest{
			SalonID:     1,
			Date:        testDate,
			OpeningTime: strPtr("12:00"),
			ClosingTime: strPtr("16:00"),
		})

		require.NoError(t, err)
		assert.Equal(t, "2026-03-17", resp.Date)
		require.NotNil(t, f.repo.upsertedDate)
	})

	t.Run("blocked by active reservations on date", func(t *testing.T) {
		f := newFixture()
		f.counter.onDate = 1

		_, err := f.svc.UpsertDate(context.Background(), &models.UpsertDateRequest{
			SalonID:  1,
			Date:     testDate,
			IsClosed: true,
		})

		assert.ErrorIs(t, err, ErrDateHasReservations)
		assert.Nil(t, f.repo.upsertedDate)
	})
}

func TestGetDate(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		f := newFixture()

		_, err := f.svc.GetDate(context.Background(), 1, testDate)

		assert.ErrorIs(t, err, ErrScheduleNotFound)
	})

	t.Run("found", func(t *testing.T) {
		f := newFixture()
		f.repo.dateSchedules = map[string]*domain.DateSchedule{
			"2026-03-17": {SalonID: 1, Date: testDate, IsClosed: true},
		}

		resp, err := f.svc.GetDate(context.Background(), 1, testDate)

		require.NoError(t, err)
		assert.True(t, resp.IsClosed)
	})
}

func TestSetDaySlots(t *testing.T) {
	t.Run("times deduplicated and sorted", func(t *testing.T) {
		f := newFixture()

		resp, err := f.svc.SetDaySlots(context.Background(), &models.SetDaySlotsRequest{
			SalonID: 1,
			Date:    testDate,
			Times:   []string{"15:00", "10:00", "13:00", "10:00"},
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"10:00", "13:00", "15:00"}, resp.Times)
		assert.Equal(t, []types.TimeString{"10:00", "13:00", "15:00"}, f.repo.replacedTimes)
		assert.Equal(t, 1, f.txManager.calls)
	})

	t.Run("empty set clears the day", func(t *testing.T) {
		f := newFixture()

		resp, err := f.svc.SetDaySlots(context.Background(), &models.SetDaySlotsRequest{
			SalonID: 1,
			Date:    testDate,
			Times:   []string{},
		})

		require.NoError(t, err)
		assert.Empty(t, resp.Times)
		assert.Equal(t, 1, f.txManager.calls)
	})

	t.Run("malformed time rejected", func(t *testing.T) {
		f := newFixture()

		_, err := f.svc.SetDaySlots(context.Background(), &models.SetDaySlotsRequest{
			SalonID: 1,
			Date:    testDate,
			Times:   []string{"10:00", "25:61"},
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Equal(t, 0, f.txManager.calls)
	})

	t.Run("blocked by active reservations on date", func(t *testing.T) {
		f := newFixture()
		f.counter.onDate = 2

		_, err := f.svc.SetDaySlots(context.Background(), &models.SetDaySlotsRequest{
			SalonID: 1,
			Date:    testDate,
			Times:   []string{"10:00"},
		})

		assert.ErrorIs(t, err, ErrDateHasReservations)
		assert.Equal(t, 0, f.txManager.calls)
	})
}
