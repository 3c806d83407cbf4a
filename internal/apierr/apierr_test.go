package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	t.Run("application error passes through", func(t *testing.T) {
		e, degraded := From(NotFound)
		assert.False(t, degraded)
		assert.Same(t, NotFound, e)
	})

	t.Run("wrapped application error is unwrapped", func(t *testing.T) {
		e, degraded := From(fmt.Errorf("lookup 9: %w", NotFound))
		assert.False(t, degraded)
		assert.Equal(t, http.StatusNotFound, e.StatusCode)
		assert.Equal(t, "Item Not Found", e.Message)
	})

	t.Run("other errors degrade to server error", func(t *testing.T) {
		e, degraded := From(errors.New("disk on fire"))
		assert.True(t, degraded)
		assert.Equal(t, http.StatusInternalServerError, e.StatusCode)
		assert.Equal(t, map[string]string{"message": "Server Error"}, e.Payload())
	})
}
