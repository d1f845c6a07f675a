package line

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// defaultPushURL эндпоинт LINE Messaging API для push-сообщений
const defaultPushURL = "https://api.line.me/v2/bot/message/push"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент LINE Messaging API
// Отправляет текстовые push-уведомления владельцу салона
type Client struct {
	pushURL     string
	accessToken string
	recipientID string
	httpClient  *http.Client
	log         Logger
}

// NewClient создает новый экземпляр клиента LINE
func NewClient(accessToken, recipientID string, timeout time.Duration, log Logger) *Client {
	return &Client{
		pushURL:     defaultPushURL,
		accessToken: accessToken,
		recipientID: recipientID,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// PushText отправляет текстовое сообщение получателю, настроенному в конфигурации
func (c *Client) PushText(ctx context.Context, text string) error {
	if c.accessToken == "" || c.recipientID == "" {
		return ErrNotConfigured
	}

	body, err := json.Marshal(pushRequest{
		To:       c.recipientID,
		Messages: []message{{Type: "text", Text: text}},
	})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.pushURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var lineErr errorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&lineErr); decodeErr == nil && lineErr.Message != "" {
			return fmt.Errorf("%w: status %d: %s", ErrInvalidResponse, resp.StatusCode, lineErr.Message)
		}
		return fmt.Errorf("%w: unexpected status code %d", ErrInvalidResponse, resp.StatusCode)
	}

	c.log.Info("LINE push sent to recipient=%s", c.recipientID)
	return nil
}
