package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type keyLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// KeyedLimiter держит отдельный token bucket на каждый ключ (чат, API ключ магазина).
// Неиспользуемые ключи удаляются фоновой очисткой, пока жив ctx.
type KeyedLimiter struct {
	limiters   map[string]*keyLimiter
	mu         sync.Mutex
	rate       rate.Limit
	burst      int
	expiration time.Duration
	now        func() time.Time
}

// NewKeyedLimiter разрешает requests событий за window на ключ. requests <= 0 отключает ограничение.
func NewKeyedLimiter(ctx context.Context, requests int, window time.Duration) *KeyedLimiter {
	l := &KeyedLimiter{
		limiters:   make(map[string]*keyLimiter),
		rate:       rate.Inf,
		burst:      requests,
		expiration: 1 * time.Hour,
		now:        time.Now,
	}

	if requests > 0 && window > 0 {
		l.rate = rate.Limit(float64(requests) / window.Seconds())
	}

	if window > l.expiration {
		l.expiration = window
	}

	go l.cleanup(ctx)

	return l
}

func (l *KeyedLimiter) Allow(key string) bool {
	if l.rate == rate.Inf {
		return true
	}

	return l.get(key).AllowN(l.now(), 1)
}

func (l *KeyedLimiter) get(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, exists := l.limiters[key]
	if !exists {
		entry = &keyLimiter{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.limiters[key] = entry
	}

	entry.lastSeen = l.now()

	return entry.limiter
}

// Len возвращает количество отслеживаемых ключей.
func (l *KeyedLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.limiters)
}

func (l *KeyedLimiter) evictIdle() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for key, entry := range l.limiters {
		if l.now().Sub(entry.lastSeen) > l.expiration {
			delete(l.limiters, key)
		}
	}
}

func (l *KeyedLimiter) cleanup(ctx context.Context) {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.evictIdle()
		case <-ctx.Done():
			return
		}
	}
}
