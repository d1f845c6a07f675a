package mailer

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestBuildMessage(t *testing.T) {
	m := New("smtp.example.com", 587, "salon@example.com", "", nopLogger{})

	msg := m.buildMessage("hanako@example.com", "新規予約 A1B2C3D4E5", "本文")
	lines := strings.Split(msg, "\r\n")

	assert.Equal(t, "From: salon@example.com", lines[0])
	assert.Equal(t, "To: hanako@example.com", lines[1])

	// Японская тема кодируется по RFC 2047, а не уходит сырым UTF-8
	require.True(t, strings.HasPrefix(lines[2], "Subject: =?UTF-8?q?"))
	assert.NotContains(t, lines[2], "新規予約")
	assert.Contains(t, lines[2], "A1B2C3D4E5")

	// Пустая строка отделяет заголовки от тела
	assert.Equal(t, "", lines[5])
	assert.Equal(t, "本文", lines[6])
}

func TestBuildMessage_AsciiSubjectUntouched(t *testing.T) {
	m := New("smtp.example.com", 587, "salon@example.com", "", nopLogger{})

	msg := m.buildMessage("hanako@example.com", "Reservation A1B2C3D4E5", "body")

	assert.Contains(t, msg, "Subject: Reservation A1B2C3D4E5\r\n")
}

func TestSend_NotConfigured(t *testing.T) {
	m := New("", 0, "", "", nopLogger{})

	err := m.Send(context.Background(), "hanako@example.com", "subject", "body")

	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSend_HonorsContextCancellation(t *testing.T) {
	m := New("smtp.invalid", 587, "salon@example.com", "", nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := m.Send(ctx, "hanako@example.com", "subject", "body")

	require.ErrorIs(t, err, ErrSendFailed)
	// Отмененный контекст обрывает установку соединения сразу,
	// без ожидания сетевых таймаутов
	assert.Less(t, time.Since(start), time.Second)
}
