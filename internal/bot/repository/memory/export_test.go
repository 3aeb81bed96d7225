package memory

import "time"

func (r *SessionRepository) SetClock(now func() time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.now = now
}
