package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/momonail/booking-service/internal/api/handlers"
)

const (
	// AdminTokenHeader заголовок с токеном персонала
	AdminTokenHeader = "X-Admin-Token"

	msgUnauthorized = "доступ запрещен"
)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Auth проверяет токен персонала для защищенных маршрутов
// Клиентские маршруты токена не требуют - аккаунтов у клиентов нет
func Auth(token string, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(AdminTokenHeader)

			if token == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				logger.Warn("%s %s - Unauthorized staff request", r.Method, r.URL.Path)
				handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
