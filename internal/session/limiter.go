package session

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	limiterCleanupThreshold = 10000
	limiterMaxIdle          = 10 * time.Minute
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter rate limits sign-in attempts per key (the normalized email).
type Limiter struct {
	keys map[string]*limiterEntry
	mu   sync.Mutex
	r    rate.Limit
	b    int
}

// NewLimiter allows perMinute attempts per key, with the same burst.
// A non-positive value disables limiting.
func NewLimiter(perMinute int) *Limiter {
	l := &Limiter{keys: make(map[string]*limiterEntry), r: rate.Inf, b: 1}
	if perMinute > 0 {
		l.r = rate.Every(time.Minute / time.Duration(perMinute))
		l.b = perMinute
	}
	return l
}

// Allow consumes one attempt for key.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if len(l.keys) > limiterCleanupThreshold {
		cutoff := now.Add(-limiterMaxIdle)
		for k, e := range l.keys {
			if e.lastSeen.Before(cutoff) {
				delete(l.keys, k)
			}
		}
	}

	e, ok := l.keys[key]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(l.r, l.b)}
		l.keys[key] = e
	}
	e.lastSeen = now
	return e.limiter.AllowN(now, 1)
}
