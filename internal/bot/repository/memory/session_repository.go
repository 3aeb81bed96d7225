package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Matthew11K/wb-sales-bot/internal/domain/models"
)

// SessionRepository держит сессии чатов в памяти процесса.
// Сессии без активного сценария не хранятся: отсутствие записи и есть состояние idle.
type SessionRepository struct {
	mu       sync.Mutex
	sessions map[int64]*models.ChatSession
	now      func() time.Time
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		sessions: make(map[int64]*models.ChatSession),
		now:      time.Now,
	}
}

func (r *SessionRepository) Get(_ context.Context, chatID int64) (*models.ChatSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[chatID]
	if !ok {
		return models.NewChatSession(chatID), nil
	}

	return session.Clone(), nil
}

func (r *SessionRepository) Save(_ context.Context, session *models.ChatSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !session.Active() {
		delete(r.sessions, session.ChatID)
		return nil
	}

	session.UpdatedAt = r.now()
	r.sessions[session.ChatID] = session.Clone()

	return nil
}

func (r *SessionRepository) Delete(_ context.Context, chatID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, chatID)

	return nil
}

// Sweep удаляет сессии, которые не обновлялись дольше ttl, и возвращает их количество.
func (r *SessionRepository) Sweep(ttl time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	deadline := r.now().Add(-ttl)
	removed := 0

	for chatID, session := range r.sessions {
		if session.UpdatedAt.Before(deadline) {
			delete(r.sessions, chatID)

			removed++
		}
	}

	return removed
}

func (r *SessionRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sessions)
}
