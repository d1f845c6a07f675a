package notify

import "context"

// LineClient интерфейс LINE-клиента
type LineClient interface {
	PushText(ctx context.Context, text string) error
}

// Mailer интерфейс почтового клиента
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Metrics интерфейс счетчика уведомлений (опционально, может быть nil)
type Metrics interface {
	IncNotification(channel, status string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
