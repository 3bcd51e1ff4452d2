package ratelimiter

import (
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// KeyedLimiter keeps one token bucket per key. A key that empties its
// bucket is blocked for blockTime before it gets a fresh bucket.
type KeyedLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*rate.Limiter
	blocked   map[string]time.Time
	limit     rate.Limit
	burst     int
	blockTime time.Duration
	now       func() time.Time
}

// NewKeyedLimiter allows burst requests per key refilled evenly over per.
func NewKeyedLimiter(burst int, per, blockTime time.Duration) *KeyedLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &KeyedLimiter{
		limiters:  make(map[string]*rate.Limiter),
		blocked:   make(map[string]time.Time),
		limit:     rate.Every(per / time.Duration(burst)),
		burst:     burst,
		blockTime: blockTime,
		now:       time.Now,
	}
}

// Allow reports whether key may proceed. When it may not, retryAfter is how
// long the key stays blocked.
func (l *KeyedLimiter) Allow(key string) (allowed bool, retryAfter time.Duration) {
	key = strings.ToLower(strings.TrimSpace(key))
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if blockedUntil, found := l.blocked[key]; found {
		if now.Before(blockedUntil) {
			return false, blockedUntil.Sub(now)
		}
		delete(l.blocked, key)
		delete(l.limiters, key)
	}

	limiter, exists := l.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[key] = limiter
	}

	if !limiter.AllowN(now, 1) {
		l.blocked[key] = now.Add(l.blockTime)
		return false, l.blockTime
	}
	return true, 0
}

// Cleanup drops expired blocks and buckets that are full again.
func (l *KeyedLimiter) Cleanup() {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	for key, blockedUntil := range l.blocked {
		if !now.Before(blockedUntil) {
			delete(l.blocked, key)
		}
	}
	for key, limiter := range l.limiters {
		if _, isBlocked := l.blocked[key]; isBlocked {
			continue
		}
		if limiter.TokensAt(now) >= float64(l.burst) {
			delete(l.limiters, key)
		}
	}
}
