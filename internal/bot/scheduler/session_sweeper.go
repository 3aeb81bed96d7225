package scheduler

import (
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/Matthew11K/wb-sales-bot/internal/common/metrics"
)

type SessionStore interface {
	// Sweep удаляет сессии, не обновлявшиеся дольше ttl, и возвращает их количество.
	Sweep(ttl time.Duration) int

	Count() int
}

// SessionSweeper периодически удаляет брошенные сессии из хранилища в памяти.
type SessionSweeper struct {
	scheduler *gocron.Scheduler
	store     SessionStore
	ttl       time.Duration
	interval  time.Duration
	logger    *slog.Logger
}

func NewSessionSweeper(store SessionStore, ttl, interval time.Duration, logger *slog.Logger) *SessionSweeper {
	return &SessionSweeper{
		scheduler: gocron.NewScheduler(time.UTC),
		store:     store,
		ttl:       ttl,
		interval:  interval,
		logger:    logger,
	}
}

func (s *SessionSweeper) Start() error {
	s.logger.Info("Запуск очистки устаревших сессий",
		"interval", s.interval.String(),
		"ttl", s.ttl.String(),
	)

	if _, err := s.scheduler.Every(s.interval).Do(s.sweep); err != nil {
		s.logger.Error("Ошибка при настройке планировщика",
			"error", err,
		)

		return err
	}

	s.scheduler.StartAsync()

	return nil
}

func (s *SessionSweeper) sweep() {
	removed := s.store.Sweep(s.ttl)
	active := s.store.Count()

	metrics.SetActiveSessions(active)

	if removed > 0 {
		s.logger.Info("Удалены устаревшие сессии",
			"removed", removed,
			"active", active,
		)
	}
}

func (s *SessionSweeper) Stop() {
	s.logger.Info("Остановка очистки сессий")
	s.scheduler.Stop()
}
