package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/momonail/booking-service/internal/domain"
)

// dispatchTimeout таймаут на доставку одного события во все каналы
const dispatchTimeout = 10 * time.Second

// Dispatcher рассылает уведомления о смене статуса резервирования
// в LINE и на email владельца салона.
//
// Все ошибки доставки логируются и проглатываются: корректность резервирования
// не зависит от побочных каналов, сбой уведомления никогда не откатывает операцию
// и не возвращается вызывающему коду
type Dispatcher struct {
	line         LineClient
	mailer       Mailer
	adminAddress string
	lineEnabled  bool
	emailEnabled bool
	metrics      Metrics
	logger       Logger
}

// NewDispatcher создает диспетчер уведомлений
// metrics может быть nil, если сбор метрик выключен
func NewDispatcher(
	line LineClient,
	mailer Mailer,
	adminAddress string,
	lineEnabled bool,
	emailEnabled bool,
	metrics Metrics,
	logger Logger,
) *Dispatcher {
	return &Dispatcher{
		line:         line,
		mailer:       mailer,
		adminAddress: adminAddress,
		lineEnabled:  lineEnabled,
		emailEnabled: emailEnabled,
		metrics:      metrics,
		logger:       logger,
	}
}

// ReservationCreated уведомляет о новом резервировании
func (d *Dispatcher) ReservationCreated(r *domain.Reservation) {
	subject := fmt.Sprintf("新規予約 %s", r.ReservationNumber)
	text := fmt.Sprintf(
		"新しい予約が入りました。\n予約番号: %s\nメニュー: %s\n日時: %s %s\nお客様: %s",
		r.ReservationNumber, r.ServiceName,
		r.Date.Format(domain.DateFormat), r.StartTime, r.CustomerName,
	)
	d.dispatch("created", subject, text, r.CustomerEmail)
}

// ReservationConfirmed уведомляет о подтверждении резервирования
func (d *Dispatcher) ReservationConfirmed(r *domain.Reservation) {
	subject := fmt.Sprintf("予約確定 %s", r.ReservationNumber)
	text := fmt.Sprintf(
		"予約が確定しました。\n予約番号: %s\nメニュー: %s\n日時: %s %s",
		r.ReservationNumber, r.ServiceName,
		r.Date.Format(domain.DateFormat), r.StartTime,
	)
	d.dispatch("confirmed", subject, text, r.CustomerEmail)
}

// ReservationCancelled уведомляет об отмене резервирования
func (d *Dispatcher) ReservationCancelled(r *domain.Reservation) {
	subject := fmt.Sprintf("予約キャンセル %s", r.ReservationNumber)
	text := fmt.Sprintf(
		"予約がキャンセルされました。\n予約番号: %s\nメニュー: %s\n日時: %s %s",
		r.ReservationNumber, r.ServiceName,
		r.Date.Format(domain.DateFormat), r.StartTime,
	)
	d.dispatch("cancelled", subject, text, r.CustomerEmail)
}

// dispatch доставляет событие во все настроенные каналы в фоне
// Вызывающая операция не ждет доставки
func (d *Dispatcher) dispatch(event, subject, text, customerEmail string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
		defer cancel()

		d.sendLine(ctx, event, text)
		d.sendEmail(ctx, event, customerEmail, subject, text)
		d.sendEmail(ctx, event, d.adminAddress, subject, text)
	}()
}

func (d *Dispatcher) sendLine(ctx context.Context, event, text string) {
	if !d.lineEnabled || d.line == nil {
		d.incMetric("line", "skipped")
		return
	}

	if err := d.line.PushText(ctx, text); err != nil {
		d.logger.Error("notify: LINE push failed for event=%s: %v", event, err)
		d.incMetric("line", "error")
		return
	}

	d.incMetric("line", "success")
}

func (d *Dispatcher) sendEmail(ctx context.Context, event, to, subject, body string) {
	if !d.emailEnabled || d.mailer == nil || to == "" {
		d.incMetric("email", "skipped")
		return
	}

	if err := d.mailer.Send(ctx, to, subject, body); err != nil {
		d.logger.Error("notify: email to=%s failed for event=%s: %v", to, event, err)
		d.incMetric("email", "error")
		return
	}

	d.incMetric("email", "success")
}

func (d *Dispatcher) incMetric(channel, status string) {
	if d.metrics != nil {
		d.metrics.IncNotification(channel, status)
	}
}
