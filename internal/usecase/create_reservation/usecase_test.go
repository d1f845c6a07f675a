package create_reservation

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momonail/booking-service/internal/domain"
	catalogRepo "github.com/momonail/booking-service/internal/infra/storage/catalog"
	reservationRepo "github.com/momonail/booking-service/internal/infra/storage/reservation"
	scheduleRepo "github.com/momonail/booking-service/internal/infra/storage/schedule"
	"github.com/momonail/booking-service/pkg/types"
)

// Вторник 2026-03-10, 09:00 - фиксированное "сейчас" для тестов
var testNow = time.Date(2026, time.March, 10, 9, 0, 0, 0, time.Local)

// Будущий вторник относительно testNow
var testDate = time.Date(2026, time.March, 17, 0, 0, 0, 0, time.Local)

type fakeReservationRepo struct {
	existing []*domain.Reservation

	created          []*domain.Reservation
	failDuplicateN   int // Столько первых вызовов Create завершаются коллизией номера
	numbersAttempted []string
}

func (f *fakeReservationRepo) Create(_ context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	f.numbersAttempted = append(f.numbersAttempted, reservation.ReservationNumber)
	if f.failDuplicateN > 0 {
		f.failDuplicateN--
		return nil, reservationRepo.ErrDuplicateNumber
	}
	saved := *reservation
	saved.ID = int64(len(f.created) + 1)
	saved.CreatedAt = testNow
	saved.UpdatedAt = testNow
	f.created = append(f.created, &saved)
	return &saved, nil
}

func (f *fakeReservationRepo) GetBySalonWithFilter(_ context.Context, _ domain.ReservationsFilter) ([]*domain.Reservation, error) {
	return f.existing, nil
}

type fakeScheduleRepo struct {
	dateSchedules map[string]*domain.DateSchedule
	weekly        map[time.Weekday]*domain.WeeklyDefaultSchedule
	slots         map[string][]*domain.AvailableTimeSlot
}

func (f *fakeScheduleRepo) GetDateSchedule(_ context.Context, _ int64, date time.Time) (*domain.DateSchedule, error) {
	if schedule, ok := f.dateSchedules[date.Format(domain.DateFormat)]; ok {
		return schedule, nil
	}
	return nil, scheduleRepo.ErrScheduleNotFound
}

func (f *fakeScheduleRepo) GetWeeklyByWeekday(_ context.Context, _ int64, weekday time.Weekday) (*domain.WeeklyDefaultSchedule, error) {
	if schedule, ok := f.weekly[weekday]; ok {
		return schedule, nil
	}
	return nil, scheduleRepo.ErrScheduleNotFound
}

func (f *fakeScheduleRepo) GetSlotsByDate(_ context.Context, _ int64, date time.Time) ([]*domain.AvailableTimeSlot, error) {
	return f.slots[date.Format(domain.DateFormat)], nil
}

type fakeCatalogRepo struct {
	services map[int64]*domain.Service
}

func (f *fakeCatalogRepo) GetService(_ context.Context, _, serviceID int64) (*domain.Service, error) {
	if service, ok := f.services[serviceID]; ok {
		return service, nil
	}
	return nil, catalogRepo.ErrServiceNotFound
}

// fakeTxManager выполняет fn без реальной транзакции
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type recordingNotifier struct {
	created []*domain.Reservation
}

func (n *recordingNotifier) ReservationCreated(r *domain.Reservation) {
	n.created = append(n.created, r)
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

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func ptrTS(s string) *types.TimeString {
	v := types.TimeString(s)
	return &v
}

type fixture struct {
	reservations *fakeReservationRepo
	schedules    *fakeScheduleRepo
	txManager    *fakeTxManager
	notifier     *recordingNotifier
	metrics      *recordingMetrics
	uc           *UseCase
}

func newFixture(mode domain.AvailabilityMode) *fixture {
	f := &fixture{
		reservations: &fakeReservationRepo{},
		schedules: &fakeScheduleRepo{
			weekly: map[time.Weekday]*domain.WeeklyDefaultSchedule{
				time.Tuesday: {
					SalonID:     1,
					Weekday:     time.Tuesday,
					OpeningTime: ptrTS("10:00"),
					ClosingTime: ptrTS("18:00"),
				},
			},
		},
		txManager: &fakeTxManager{},
		notifier:  &recordingNotifier{},
		metrics:   newRecordingMetrics(),
	}

	catalog := &fakeCatalogRepo{services: map[int64]*domain.Service{
		10: {ID: 10, SalonID: 1, Name: "カット", Price: 4500, DurationMinutes: 30},
		20: {ID: 20, SalonID: 1, Name: "カラー", Price: 8000, DurationMinutes: 60},
	}}

	f.uc = NewUseCase(f.reservations, f.schedules, catalog, f.txManager, f.notifier, mode, f.metrics, nopLogger{})
	f.uc.timeProvider = &fixedTimeProvider{now: testNow}
	return f
}

func validRequest() *Request {
	return &Request{
		SalonID:       1,
		ServiceID:     10,
		CustomerName:  "山田花子",
		CustomerEmail: "hanako@example.com",
		Date:          testDate,
		StartTime:     "10:00",
	}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture(domain.ModeWindow)

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, resp.Reservation)

	reservation := resp.Reservation
	assert.Equal(t, domain.StatusPending, reservation.Status)
	assert.Equal(t, types.TimeString("10:00"), reservation.StartTime)
	assert.Equal(t, types.TimeString("10:30"), reservation.EndTime)
	assert.Equal(t, 30, reservation.DurationMinutes)
	assert.Equal(t, "カット", reservation.ServiceName)
	assert.Equal(t, 4500.0, reservation.ServicePrice)

	require.Len(t, reservation.ReservationNumber, domain.ReservationNumberLength)
	assert.Equal(t, strings.ToUpper(reservation.ReservationNumber), reservation.ReservationNumber)

	assert.Equal(t, 1, f.txManager.calls)
	require.Len(t, f.notifier.created, 1)
	assert.Equal(t, reservation.ReservationNumber, f.notifier.created[0].ReservationNumber)
	assert.Equal(t, 1, f.metrics.outcomes["create/success"])
}

func TestExecute_OverlapRejected(t *testing.T) {
	f := newFixture(domain.ModeWindow)
	f.reservations.existing = []*domain.Reservation{{
		SalonID:   1,
		Date:      testDate,
		StartTime: "10:00",
		EndTime:   "11:00",
		Status:    domain.StatusConfirmed,
	}}

	req := validRequest()
	req.StartTime = "10:30"

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Empty(t, f.reservations.created)
	assert.Empty(t, f.notifier.created)
	assert.Equal(t, 1, f.metrics.outcomes["create/conflict"])
}

func TestExecute_AdjacentIntervalAllowed(t *testing.T) {
	f := newFixture(domain.ModeWindow)
	f.reservations.existing = []*domain.Reservation{{
		SalonID:   1,
		Date:      testDate,
		StartTime: "10:00",
		EndTime:   "10:30",
		Status:    domain.StatusPending,
	}}

	req := validRequest()
	req.StartTime = "10:30" // Начинается ровно там, где заканчивается существующее

	resp, err := f.uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:30"), resp.Reservation.StartTime)
}

func TestExecute_CancelledReservationDoesNotBlock(t *testing.T) {
	f := newFixture(domain.ModeWindow)
	f.reservations.existing = []*domain.Reservation{{
		SalonID:   1,
		Date:      testDate,
		StartTime: "10:00",
		EndTime:   "10:30",
		Status:    domain.StatusCancelled,
	}}

	_, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
}

func TestExecute_MisalignedStartRejected(t *testing.T) {
	f := newFixture(domain.ModeWindow)

	req := validRequest()
	req.StartTime = "10:15" // Не кратно шагу сетки от открытия

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_BeforeOpeningRejected(t *testing.T) {
	f := newFixture(domain.ModeWindow)

	req := validRequest()
	req.StartTime = "09:30"

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_EndPastClosingRejected(t *testing.T) {
	f := newFixture(domain.ModeWindow)

	req := validRequest()
	req.ServiceID = 20 // 60 минут
	req.StartTime = "17:30"

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_LastFittingStartAccepted(t *testing.T) {
	f := newFixture(domain.ModeWindow)

	req := validRequest()
	req.StartTime = "17:30" // 17:30 + 30 = 18:00, помещается ровно

	resp, err := f.uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, types.TimeString("18:00"), resp.Reservation.EndTime)
}

func TestExecute_ClosedDayRejected(t *testing.T) {
	f := newFixture(domain.ModeWindow)

	req := validRequest()
	req.Date = testDate.AddDate(0, 0, 1) // Среда: недельного расписания нет

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrSalonClosed)
}

func TestExecute_ClosedOverrideWinsOverWeekly(t *testing.T) {
	f := newFixture(domain.ModeWindow)
	f.schedules.dateSchedules = map[string]*domain.DateSchedule{
		testDate.Format(domain.DateFormat): {SalonID: 1, Date: testDate, IsClosed: true},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSalonClosed)
}

func TestExecute_MidnightCrossingRejected(t *testing.T) {
	f := newFixture(domain.ModeWindow)

	req := validRequest()
	req.ServiceID = 20 // 60 минут
	req.StartTime = "23:30"

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_SlotMode(t *testing.T) {
	dateKey := testDate.Format(domain.DateFormat)

	t.Run("configured slot accepted", func(t *testing.T) {
		f := newFixture(domain.ModeSlots)
		f.schedules.slots = map[string][]*domain.AvailableTimeSlot{
			dateKey: {{SalonID: 1, Date: testDate, Time: "13:00"}},
		}

		req := validRequest()
		req.StartTime = "13:00"

		resp, err := f.uc.Execute(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, domain.StatusPending, resp.Reservation.Status)
	})

	t.Run("unconfigured time rejected", func(t *testing.T) {
		f := newFixture(domain.ModeSlots)
		f.schedules.slots = map[string][]*domain.AvailableTimeSlot{
			dateKey: {{SalonID: 1, Date: testDate, Time: "13:00"}},
		}

		req := validRequest()
		req.StartTime = "14:00"

		_, err := f.uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrSlotTaken)
	})

	t.Run("taken slot rejected", func(t *testing.T) {
		f := newFixture(domain.ModeSlots)
		f.schedules.slots = map[string][]*domain.AvailableTimeSlot{
			dateKey: {{SalonID: 1, Date: testDate, Time: "13:00"}},
		}
		f.reservations.existing = []*domain.Reservation{{
			SalonID:   1,
			Date:      testDate,
			StartTime: "13:00",
			EndTime:   "13:30",
			Status:    domain.StatusPending,
		}}

		req := validRequest()
		req.StartTime = "13:00"

		_, err := f.uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrSlotTaken)
	})
}

func TestExecute_NumberCollisionRetries(t *testing.T) {
	f := newFixture(domain.ModeWindow)
	f.reservations.failDuplicateN = 2

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Len(t, f.reservations.numbersAttempted, 3)
	assert.Len(t, resp.Reservation.ReservationNumber, domain.ReservationNumberLength)
}

func TestExecute_NumberCollisionExhausted(t *testing.T) {
	f := newFixture(domain.ModeWindow)
	f.reservations.failDuplicateN = maxNumberAttempts

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, f.notifier.created)
}

func TestExecute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"empty customer name", func(req *Request) { req.CustomerName = "  " }},
		{"empty email", func(req *Request) { req.CustomerEmail = "" }},
		{"email without at sign", func(req *Request) { req.CustomerEmail = "hanako.example.com" }},
		{"zero date", func(req *Request) { req.Date = time.Time{} }},
		{"malformed start time", func(req *Request) { req.StartTime = "25:00" }},
		{"zero salon id", func(req *Request) { req.SalonID = 0 }},
		{"zero service id", func(req *Request) { req.ServiceID = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(domain.ModeWindow)
			req := validRequest()
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, 0, f.txManager.calls)
			assert.Equal(t, 1, f.metrics.outcomes["create/rejected"])
		})
	}
}

func TestExecute_PastDateTimeRejected(t *testing.T) {
	f := newFixture(domain.ModeWindow)

	t.Run("past date", func(t *testing.T) {
		req := validRequest()
		req.Date = testNow.AddDate(0, 0, -1)

		_, err := f.uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("earlier today", func(t *testing.T) {
		req := validRequest()
		req.Date = time.Date(2026, time.March, 10, 0, 0, 0, 0, time.Local)
		req.StartTime = "08:30" // Сейчас 09:00

		_, err := f.uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrInvalidDate)
	})
}

func TestExecute_ServiceNotFound(t *testing.T) {
	f := newFixture(domain.ModeWindow)

	req := validRequest()
	req.ServiceID = 999

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestGenerateReservationNumber(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		number := generateReservationNumber()
		require.Len(t, number, domain.ReservationNumberLength)
		assert.Equal(t, strings.ToUpper(number), number)
		seen[number] = true
	}
	// Коллизия на 100 номерах из uuid4 практически исключена
	assert.Len(t, seen, 100)
}
