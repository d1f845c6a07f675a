package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{}) {}

func callProtected(configuredToken, providedToken string) (*httptest.ResponseRecorder, bool) {
	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/staff/reservations", nil)
	if providedToken != "" {
		req.Header.Set(AdminTokenHeader, providedToken)
	}

	recorder := httptest.NewRecorder()
	Auth(configuredToken, nopLogger{})(next).ServeHTTP(recorder, req)
	return recorder, reached
}

func TestAuth(t *testing.T) {
	t.Run("valid token passes", func(t *testing.T) {
		recorder, reached := callProtected("secret-token", "secret-token")

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.True(t, reached)
	})

	t.Run("wrong token rejected", func(t *testing.T) {
		recorder, reached := callProtected("secret-token", "wrong")

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.False(t, reached)
	})

	t.Run("missing token rejected", func(t *testing.T) {
		recorder, reached := callProtected("secret-token", "")

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.False(t, reached)
	})

	t.Run("empty configured token rejects everything", func(t *testing.T) {
		recorder, reached := callProtected("", "")

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.False(t, reached)
	})
}
