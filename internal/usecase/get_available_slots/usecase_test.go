package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momonail/booking-service/internal/domain"
	catalogRepo "github.com/momonail/booking-service/internal/infra/storage/catalog"
	scheduleRepo "github.com/momonail/booking-service/internal/infra/storage/schedule"
	"github.com/momonail/booking-service/pkg/types"
)

// Вторник 2026-03-10, 09:00 - фиксированное "сейчас" для тестов
var testNow = time.Date(2026, time.March, 10, 9, 0, 0, 0, time.Local)

// Будущий вторник относительно testNow
var testDate = time.Date(2026, time.March, 17, 0, 0, 0, 0, time.Local)

type fakeReservationRepo struct {
	reservations []*domain.Reservation
	err          error
}

func (f *fakeReservationRepo) GetBySalonWithFilter(_ context.Context, _ domain.ReservationsFilter) ([]*domain.Reservation, error) {
	return f.reservations, f.err
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

func (f *fakeScheduleRepo) GetDateSchedulesInRange(_ context.Context, _ int64, _, _ time.Time) ([]*domain.DateSchedule, error) {
	result := make([]*domain.DateSchedule, 0, len(f.dateSchedules))
	for _, schedule := range f.dateSchedules {
		result = append(result, schedule)
	}
	return result, nil
}

func (f *fakeScheduleRepo) GetWeeklyByWeekday(_ context.Context, _ int64, weekday time.Weekday) (*domain.WeeklyDefaultSchedule, error) {
	if schedule, ok := f.weekly[weekday]; ok {
		return schedule, nil
	}
	return nil, scheduleRepo.ErrScheduleNotFound
}

func (f *fakeScheduleRepo) GetWeeklyBySalon(_ context.Context, _ int64) ([]*domain.WeeklyDefaultSchedule, error) {
	result := make([]*domain.WeeklyDefaultSchedule, 0, len(f.weekly))
	for _, schedule := range f.weekly {
		result = append(result, schedule)
	}
	return result, nil
}

func (f *fakeScheduleRepo) GetSlotsByDate(_ context.Context, _ int64, date time.Time) ([]*domain.AvailableTimeSlot, error) {
	return f.slots[date.Format(domain.DateFormat)], nil
}

func (f *fakeScheduleRepo) GetSlotsInRange(_ context.Context, _ int64, _, _ time.Time) ([]*domain.AvailableTimeSlot, error) {
	result := make([]*domain.AvailableTimeSlot, 0)
	for _, daySlots := range f.slots {
		result = append(result, daySlots...)
	}
	return result, nil
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

func ts(s string) types.TimeString {
	return types.TimeString(s)
}

func ptrTS(s string) *types.TimeString {
	v := ts(s)
	return &v
}

func weeklyOpen(weekday time.Weekday, open, close string) *domain.WeeklyDefaultSchedule {
	return &domain.WeeklyDefaultSchedule{
		SalonID:     1,
		Weekday:     weekday,
		OpeningTime: ptrTS(open),
		ClosingTime: ptrTS(close),
	}
}

func activeReservation(date time.Time, start, end string) *domain.Reservation {
	return &domain.Reservation{
		SalonID:   1,
		Date:      date,
		StartTime: ts(start),
		EndTime:   ts(end),
		Status:    domain.StatusConfirmed,
	}
}

func newTestUseCase(
	reservations *fakeReservationRepo,
	schedules *fakeScheduleRepo,
	services *fakeCatalogRepo,
	mode domain.AvailabilityMode,
) *UseCase {
	uc := NewUseCase(reservations, schedules, services, mode, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func defaultCatalog() *fakeCatalogRepo {
	return &fakeCatalogRepo{services: map[int64]*domain.Service{
		10: {ID: 10, SalonID: 1, Name: "カット", DurationMinutes: 30},
		20: {ID: 20, SalonID: 1, Name: "カラー", DurationMinutes: 60},
	}}
}

func TestExecute_WindowMode_Basic(t *testing.T) {
	schedules := &fakeScheduleRepo{
		weekly: map[time.Weekday]*domain.WeeklyDefaultSchedule{
			time.Tuesday: weeklyOpen(time.Tuesday, "10:00", "12:00"),
		},
	}
	uc := newTestUseCase(&fakeReservationRepo{}, schedules, defaultCatalog(), domain.ModeWindow)

	resp, err := uc.Execute(context.Background(), &Request{SalonID: 1, ServiceID: 10, Date: testDate})

	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"10:00", "10:30", "11:00", "11:30"}, resp.Slots)
}

func TestExecute_WindowMode_ReservationRemovesOverlap(t *testing.T) {
	schedules := &fakeScheduleRepo{
		weekly: map[time.Weekday]*domain.WeeklyDefaultSchedule{
			time.Tuesday: weeklyOpen(time.Tuesday, "10:00", "12:00"),
		},
	}
	reservations := &fakeReservationRepo{
		reservations: []*domain.Reservation{activeReservation(testDate, "10:30", "11:00")},
	}
	uc := newTestUseCase(reservations, schedules, defaultCatalog(), domain.ModeWindow)

	resp, err := uc.Execute(context.Background(), &Request{SalonID: 1, ServiceID: 10, Date: testDate})

	require.NoError(t, err)
	// Граничащие интервалы конфликтом не считаются: 10:00-10:30 и 11:00-11:30 остаются
	assert.Equal(t, []types.TimeString{"10:00", "11:00", "11:30"}, resp.Slots)
}

func TestExecute_WindowMode_LongerServiceOverlapsMore(t *testing.T) {
	schedules := &fakeScheduleRepo{
		weekly: map[time.Weekday]*domain.WeeklyDefaultSchedule{
			time.Tuesday: weeklyOpen(time.Tuesday, "10:00", "12:00"),
		},
	}
	reservations := &fakeReservationRepo{
		reservations: []*domain.Reservation{activeReservation(testDate, "10:30", "11:00")},
	}
	uc := newTestUseCase(reservations, schedules, defaultCatalog(), domain.ModeWindow)

	// Услуга 60 минут: 10:00 пересекается с 10:30-11:00, подходит только 11:00
	resp, err := uc.Execute(context.Background(), &Request{SalonID: 1, ServiceID: 20, Date: testDate})

	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"11:00"}, resp.Slots)
}

func TestExecute_WindowMode_CancelledReservationIgnored(t *testing.T) {
	schedules := &fakeScheduleRepo{
		weekly: map[time.Weekday]*domain.WeeklyDefaultSchedule{
			time.Tuesday: weeklyOpen(time.Tuesday, "10:00", "11:00"),
		},
	}
	cancelled := activeReservation(testDate, "10:00", "10:30")
	cancelled.Status = domain.StatusCancelled
	reservations := &fakeReservationRepo{reservations: []*domain.Reservation{cancelled}}
	uc := newTestUseCase(reservations, schedules, defaultCatalog(), domain.ModeWindow)

	resp, err := uc.Execute(context.Background(), &Request{SalonID: 1, ServiceID: 10, Date: testDate})

	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"10:00", "10:30"}, resp.Slots)
}

func TestExecute_WindowMode_DateOverrideWinsOverWeekly(t *testing.T) {
	schedules := &fakeScheduleRepo{
		weekly: map[time.Weekday]*domain.WeeklyDefaultSchedule{
			time.Tuesday: weeklyOpen(time.Tuesday, "10:00", "18:00"),
		},
		dateSchedules: map[string]*domain.DateSchedule{
			testDate.Format(domain.DateFormat): {
				SalonID:     1,
				Date:        testDate,
				OpeningTime: ptrTS("14:00"),
				ClosingTime: ptrTS("15:00"),
			},
		},
	}
	uc := newTestUseCase(&fakeReservationRepo{}, schedules, defaultCatalog(), domain.ModeWindow)

	resp, err := uc.Execute(context.Background(), &Request{SalonID: 1, ServiceID: 10, Date: testDate})

	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"14:00", "14:30"}, resp.Slots)
}

func TestExecute_WindowMode_ClosedOverrideReturnsEmpty(t *testing.T) {
	schedules := &fakeScheduleRepo{
		weekly: map[time.Weekday]*domain.WeeklyDefaultSchedule{
			time.Tuesday: weeklyOpen(time.Tuesday, "10:00", "18:00"),
		},
		dateSchedules: map[string]*domain.DateSchedule{
			testDate.Format(domain.DateFormat): {SalonID: 1, Date: testDate, IsClosed: true},
		},
	}
	uc := newTestUseCase(&fakeReservationRepo{}, schedules, defaultCatalog(), domain.ModeWindow)

	resp, err := uc.Execute(context.Background(), &Request{SalonID: 1, ServiceID: 10, Date: testDate})

	// Закрытый день - пустой список, не ошибка
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_WindowMode_NoScheduleMeansClosed(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeScheduleRepo{}, defaultCatalog(), domain.ModeWindow)

	resp, err := uc.Execute(context.Background(), &Request{SalonID: 1, ServiceID: 10, Date: testDate})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_Idempotent(t *testing.T) {
	schedules := &fakeScheduleRepo{
		weekly: map[time.Weekday]*domain.WeeklyDefaultSchedule{
			time.Tuesday: weeklyOpen(time.Tuesday, "10:00", "12:00"),
		},
	}
	uc := newTestUseCase(&fakeReservationRepo{}, schedules, defaultCatalog(), domain.ModeWindow)
	req := &Request{SalonID: 1, ServiceID: 10, Date: testDate}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.Slots, second.Slots)
}

func TestExecute_TodayFiltersPastTimes(t *testing.T) {
	today := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.Local)
	schedules := &fakeScheduleRepo{
		weekly: map[time.Weekday]*domain.WeeklyDefaultSchedule{
			time.Tuesday: weeklyOpen(time.Tuesday, "08:00", "10:30"),
		},
	}
	uc := newTestUseCase(&fakeReservationRepo{}, schedules, defaultCatalog(), domain.ModeWindow)

	// Сейчас 09:00: слоты 08:00, 08:30 и 09:00 уже прошли
	resp, err := uc.Execute(context.Background(), &Request{SalonID: 1, ServiceID: 10, Date: today})

	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:30", "10:00"}, resp.Slots)
}

func TestExecute_PastDateRejected(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeScheduleRepo{}, defaultCatalog(), domain.ModeWindow)
	yesterday := testNow.AddDate(0, 0, -1)

	_, err := uc.Execute(context.Background(), &Request{SalonID: 1, ServiceID: 10, Date: yesterday})

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeScheduleRepo{}, defaultCatalog(), domain.ModeWindow)

	_, err := uc.Execute(context.Background(), &Request{SalonID: 1, ServiceID: 999, Date: testDate})

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_SlotMode_TakenStartTimesExcluded(t *testing.T) {
	dateKey := testDate.Format(domain.DateFormat)
	schedules := &fakeScheduleRepo{
		slots: map[string][]*domain.AvailableTimeSlot{
			dateKey: {
				{SalonID: 1, Date: testDate, Time: "10:00"},
				{SalonID: 1, Date: testDate, Time: "13:00"},
				{SalonID: 1, Date: testDate, Time: "15:00"},
			},
		},
	}
	reservations := &fakeReservationRepo{
		reservations: []*domain.Reservation{activeReservation(testDate, "13:00", "13:30")},
	}
	uc := newTestUseCase(reservations, schedules, defaultCatalog(), domain.ModeSlots)

	resp, err := uc.Execute(context.Background(), &Request{SalonID: 1, ServiceID: 10, Date: testDate})

	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"10:00", "15:00"}, resp.Slots)
}

func TestExecute_SlotMode_CompletedReservationFreesSlot(t *testing.T) {
	dateKey := testDate.Format(domain.DateFormat)
	schedules := &fakeScheduleRepo{
		slots: map[string][]*domain.AvailableTimeSlot{
			dateKey: {{SalonID: 1, Date: testDate, Time: "10:00"}},
		},
	}
	completed := activeReservation(testDate, "10:00", "10:30")
	completed.Status = domain.StatusCompleted
	reservations := &fakeReservationRepo{reservations: []*domain.Reservation{completed}}
	uc := newTestUseCase(reservations, schedules, defaultCatalog(), domain.ModeSlots)

	resp, err := uc.Execute(context.Background(), &Request{SalonID: 1, ServiceID: 10, Date: testDate})

	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"10:00"}, resp.Slots)
}

func TestExecuteMonth_WindowMode(t *testing.T) {
	schedules := &fakeScheduleRepo{
		weekly: map[time.Weekday]*domain.WeeklyDefaultSchedule{
			time.Tuesday: weeklyOpen(time.Tuesday, "10:00", "11:00"),
		},
	}
	uc := newTestUseCase(&fakeReservationRepo{}, schedules, defaultCatalog(), domain.ModeWindow)

	resp, err := uc.ExecuteMonth(context.Background(), &MonthRequest{
		SalonID: 1, ServiceID: 10, Year: 2026, Month: time.March,
	})

	require.NoError(t, err)
	require.Len(t, resp.Days, 31)

	available := make([]string, 0)
	for i, day := range resp.Days {
		// Дни идут по возрастанию, один элемент на каждый день месяца
		assert.Equal(t, i+1, day.Date.Day())
		if day.Available {
			available = append(available, day.Date.Format(domain.DateFormat))
			assert.Equal(t, 2, day.SlotCount)
		}
	}

	// Вторники марта 2026: 3, 10, 17, 24, 31; 3-е уже в прошлом (сейчас 10-е)
	assert.Equal(t, []string{"2026-03-10", "2026-03-17", "2026-03-24", "2026-03-31"}, available)
}

func TestExecuteMonth_InvalidMonth(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeScheduleRepo{}, defaultCatalog(), domain.ModeWindow)

	_, err := uc.ExecuteMonth(context.Background(), &MonthRequest{
		SalonID: 1, ServiceID: 10, Year: 2026, Month: 13,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
