package mailer

import "errors"

var (
	// ErrSendFailed возвращается при ошибке отправки письма
	ErrSendFailed = errors.New("mailer: failed to send email")

	// ErrNotConfigured возвращается, когда SMTP не настроен
	ErrNotConfigured = errors.New("mailer: smtp is not configured")
)
