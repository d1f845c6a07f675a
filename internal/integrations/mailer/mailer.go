package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strings"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Mailer отправляет письма через SMTP
type Mailer struct {
	host     string
	port     int
	from     string
	password string
	log      Logger
}

// New создает новый экземпляр mailer
func New(host string, port int, from, password string, log Logger) *Mailer {
	return &Mailer{
		host:     host,
		port:     port,
		from:     from,
		password: password,
		log:      log,
	}
}

// Send отправляет письмо с указанной темой и текстом
// Соединение устанавливается с учетом контекста, дедлайн контекста
// ограничивает и сам SMTP-диалог
func (m *Mailer) Send(ctx context.Context, to, subject, body string) error {
	if m.host == "" || m.from == "" {
		return ErrNotConfigured
	}

	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	msg := m.buildMessage(to, subject, body)

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("%w: dial: %v", ErrSendFailed, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, m.host)
	if err != nil {
		return fmt.Errorf("%w: handshake: %v", ErrSendFailed, err)
	}
	defer client.Close()

	if m.password != "" {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(&tls.Config{ServerName: m.host}); err != nil {
				return fmt.Errorf("%w: starttls: %v", ErrSendFailed, err)
			}
		}
		if err := client.Auth(smtp.PlainAuth("", m.from, m.password, m.host)); err != nil {
			return fmt.Errorf("%w: auth: %v", ErrSendFailed, err)
		}
	}

	if err := client.Mail(m.from); err != nil {
		return fmt.Errorf("%w: mail from: %v", ErrSendFailed, err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("%w: rcpt to: %v", ErrSendFailed, err)
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("%w: data: %v", ErrSendFailed, err)
	}
	if _, err := writer.Write([]byte(msg)); err != nil {
		return fmt.Errorf("%w: write body: %v", ErrSendFailed, err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("%w: close body: %v", ErrSendFailed, err)
	}

	if err := client.Quit(); err != nil {
		return fmt.Errorf("%w: quit: %v", ErrSendFailed, err)
	}

	m.log.Info("Email sent to=%s subject=%q", to, subject)
	return nil
}

// buildMessage собирает письмо; тема кодируется по RFC 2047,
// иначе японский текст в заголовке уходит сырым UTF-8
func (m *Mailer) buildMessage(to, subject, body string) string {
	return strings.Join([]string{
		"From: " + m.from,
		"To: " + to,
		"Subject: " + mime.QEncoding.Encode("UTF-8", subject),
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		body,
	}, "\r\n")
}
