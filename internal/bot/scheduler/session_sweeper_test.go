package scheduler_test

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Matthew11K/wb-sales-bot/internal/bot/repository/memory"
	"github.com/Matthew11K/wb-sales-bot/internal/bot/scheduler"
	"github.com/Matthew11K/wb-sales-bot/internal/common/metrics"
	"github.com/Matthew11K/wb-sales-bot/internal/domain/models"
)

type countingStore struct {
	sweeps chan time.Duration
}

func (s *countingStore) Sweep(ttl time.Duration) int {
	select {
	case s.sweeps <- ttl:
	default:
	}

	return 0
}

func (s *countingStore) Count() int {
	return 0
}

func TestSessionSweeper_RunsWithConfiguredTTL(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	store := &countingStore{sweeps: make(chan time.Duration, 1)}

	sweeper := scheduler.NewSessionSweeper(store, time.Hour, 100*time.Millisecond, logger)
	require.NoError(t, sweeper.Start())

	defer sweeper.Stop()

	select {
	case ttl := <-store.sweeps:
		assert.Equal(t, time.Hour, ttl)
	case <-time.After(2 * time.Second):
		t.Fatal("очистка сессий не запустилась")
	}
}

func TestSessionSweeper_RemovesExpiredSessions(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	store := memory.NewSessionRepository()

	session := models.NewChatSession(1)
	session.Start(models.FlowReport, models.StepAwaitingShop)
	require.NoError(t, store.Save(context.Background(), session))

	sweeper := scheduler.NewSessionSweeper(store, time.Nanosecond, 50*time.Millisecond, logger)
	require.NoError(t, sweeper.Start())

	defer sweeper.Stop()

	assert.Eventually(t, func() bool {
		return store.Count() == 0
	}, 2*time.Second, 20*time.Millisecond)

	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(metrics.ActiveSessions) == 0
	}, 2*time.Second, 20*time.Millisecond)
}

func TestSessionSweeper_InvalidInterval(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	sweeper := scheduler.NewSessionSweeper(&countingStore{sweeps: make(chan time.Duration, 1)}, time.Hour, 0, logger)

	assert.Error(t, sweeper.Start())
}
