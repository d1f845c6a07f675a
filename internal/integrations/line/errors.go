package line

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("line client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе LINE API
	ErrInvalidResponse = errors.New("line client: invalid response")

	// ErrNotConfigured возвращается, когда канал не настроен (нет токена или получателя)
	ErrNotConfigured = errors.New("line client: channel is not configured")
)
