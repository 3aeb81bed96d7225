package ratelimit

import "time"

func (l *KeyedLimiter) SetClock(now func() time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.now = now
}

func (l *KeyedLimiter) EvictIdle() {
	l.evictIdle()
}
