package notify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/momonail/booking-service/internal/domain"
	"github.com/momonail/booking-service/pkg/types"
)

type sentEmail struct {
	to          string
	subject     string
	hadDeadline bool
}

type fakeMailer struct {
	sent chan sentEmail
}

func (f *fakeMailer) Send(ctx context.Context, to, subject, _ string) error {
	_, hadDeadline := ctx.Deadline()
	f.sent <- sentEmail{to: to, subject: subject, hadDeadline: hadDeadline}
	return nil
}

type fakeLine struct {
	pushed chan string
}

func (f *fakeLine) PushText(_ context.Context, text string) error {
	f.pushed <- text
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testReservation() *domain.Reservation {
	return &domain.Reservation{
		ReservationNumber: "A1B2C3D4E5",
		ServiceName:       "カット",
		CustomerName:      "山田花子",
		CustomerEmail:     "hanako@example.com",
		Date:              time.Date(2026, time.March, 17, 0, 0, 0, 0, time.Local),
		StartTime:         types.TimeString("10:00"),
	}
}

func TestReservationCreated_DeliversToAllChannels(t *testing.T) {
	mailer := &fakeMailer{sent: make(chan sentEmail, 2)}
	line := &fakeLine{pushed: make(chan string, 1)}
	d := NewDispatcher(line, mailer, "owner@example.com", true, true, nil, nopLogger{})

	d.ReservationCreated(testReservation())

	pushed := waitFor(t, line.pushed)
	assert.Contains(t, pushed, "A1B2C3D4E5")

	first := waitFor(t, mailer.sent)
	second := waitFor(t, mailer.sent)

	recipients := []string{first.to, second.to}
	assert.ElementsMatch(t, []string{"hanako@example.com", "owner@example.com"}, recipients)
	assert.Contains(t, first.subject, "新規予約")

	// Email-канал получает тот же контекст с дедлайном, что и LINE:
	// зависший SMTP-сервер не держит горутину доставки бесконечно
	assert.True(t, first.hadDeadline)
	assert.True(t, second.hadDeadline)
}

func TestDispatch_DisabledChannelsSkipped(t *testing.T) {
	mailer := &fakeMailer{sent: make(chan sentEmail, 2)}
	line := &fakeLine{pushed: make(chan string, 1)}
	d := NewDispatcher(line, mailer, "owner@example.com", false, false, nil, nopLogger{})

	d.ReservationCancelled(testReservation())

	select {
	case <-line.pushed:
		t.Fatal("LINE push sent with channel disabled")
	case <-mailer.sent:
		t.Fatal("email sent with channel disabled")
	case <-time.After(100 * time.Millisecond):
	}
}

func waitFor[T any](t *testing.T, ch chan T) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for notification")
		panic("unreachable")
	}
}
