// Package ratelimiter throttles operations per caller key (usually the client IP).
package ratelimiter

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter decides whether an operation identified by key may proceed now.
type Limiter interface {
	Allow(key string) bool
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// KeyedLimiter keeps one token bucket per key.
// Buckets idle for longer than ttl are dropped on the next sweep.
type KeyedLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	rps       rate.Limit
	burst     int
	ttl       time.Duration
	lastSweep time.Time
	now       func() time.Time
}

// NewKeyedLimiter creates a limiter allowing rps events per second with the given burst for each key.
func NewKeyedLimiter(rps float64, burst int, ttl time.Duration) *KeyedLimiter {
	if burst <= 0 {
		burst = 1
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &KeyedLimiter{
		visitors:  make(map[string]*visitor),
		rps:       rate.Limit(rps),
		burst:     burst,
		ttl:       ttl,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

// Allow consumes one token from key's bucket.
func (l *KeyedLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= l.ttl {
		l.sweep(now)
	}

	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.visitors[key] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// sweep removes idle buckets. Callers hold l.mu.
func (l *KeyedLimiter) sweep(now time.Time) {
	for k, v := range l.visitors {
		if now.Sub(v.lastSeen) >= l.ttl {
			delete(l.visitors, k)
		}
	}
	l.lastSweep = now
}

// size returns the number of tracked keys.
func (l *KeyedLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.visitors)
}
