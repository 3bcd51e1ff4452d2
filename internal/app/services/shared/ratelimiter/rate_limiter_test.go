package ratelimiter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeyedLimiter_Allow(t *testing.T) {
	t.Run("Burst Is Allowed Then Key Is Blocked", func(t *testing.T) {
		current := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
		limiter := NewKeyedLimiter(3, time.Minute, 5*time.Minute)
		limiter.now = func() time.Time { return current }

		for i := 0; i < 3; i++ {
			allowed, _ := limiter.Allow("10.0.0.1")
			assert.True(t, allowed, "request %d", i)
		}

		allowed, retryAfter := limiter.Allow("10.0.0.1")
		assert.False(t, allowed)
		assert.Equal(t, 5*time.Minute, retryAfter)

		current = current.Add(2 * time.Minute)
		allowed, retryAfter = limiter.Allow("10.0.0.1")
		assert.False(t, allowed)
		assert.Equal(t, 3*time.Minute, retryAfter)

		current = current.Add(3 * time.Minute)
		allowed, _ = limiter.Allow("10.0.0.1")
		assert.True(t, allowed)
	})

	t.Run("Keys Are Independent", func(t *testing.T) {
		limiter := NewKeyedLimiter(1, time.Minute, time.Minute)

		allowed, _ := limiter.Allow("a")
		assert.True(t, allowed)
		allowed, _ = limiter.Allow("a")
		assert.False(t, allowed)

		allowed, _ = limiter.Allow("b")
		assert.True(t, allowed)
	})

	t.Run("Cleanup Forgets Expired Blocks", func(t *testing.T) {
		current := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
		limiter := NewKeyedLimiter(1, time.Minute, time.Minute)
		limiter.now = func() time.Time { return current }

		limiter.Allow("a")
		limiter.Allow("a")
		assert.Len(t, limiter.blocked, 1)

		current = current.Add(2 * time.Minute)
		limiter.Cleanup()
		assert.Empty(t, limiter.blocked)
		assert.Empty(t, limiter.limiters)
	})
}
