package simpletxmanager

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsSerializationFailure(t *testing.T) {
	conflict := &pq.Error{Code: "40001"}

	t.Run("bare pq error", func(t *testing.T) {
		assert.True(t, isSerializationFailure(conflict))
	})

	t.Run("detected through commit wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("%w: commit: %w", ErrTxFailed, conflict)
		assert.True(t, isSerializationFailure(wrapped))
	})

	t.Run("plain error is not a serialization failure", func(t *testing.T) {
		assert.False(t, isSerializationFailure(errors.New("connection reset")))
	})
}
