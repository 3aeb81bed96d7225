package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Matthew11K/wb-sales-bot/internal/bot/service"
	"github.com/Matthew11K/wb-sales-bot/internal/common/metrics"
	"github.com/Matthew11K/wb-sales-bot/internal/domain/models"
)

func TestInstrumentedBotService_CountsMessages(t *testing.T) {
	env := newTestEnv(t)
	instrumented := service.NewInstrumentedBotService(env.service, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()

	commands := testutil.ToFloat64(metrics.UserMessagesTotal.WithLabelValues("command"))
	texts := testutil.ToFloat64(metrics.UserMessagesTotal.WithLabelValues("text"))
	callbacks := testutil.ToFloat64(metrics.UserMessagesTotal.WithLabelValues("callback"))

	reply, err := instrumented.ProcessCommand(ctx, command(models.CommandHelp))
	require.NoError(t, err)
	assert.NotEmpty(t, reply.Text)

	_, err = instrumented.ProcessMessage(ctx, testChatID, "привет")
	require.NoError(t, err)

	reply, err = instrumented.ProcessCallback(ctx, testChatID, "today")
	require.NoError(t, err)
	assert.NotEmpty(t, reply.Notice)

	assert.InDelta(t, commands+1, testutil.ToFloat64(metrics.UserMessagesTotal.WithLabelValues("command")), 0.001)
	assert.InDelta(t, texts+1, testutil.ToFloat64(metrics.UserMessagesTotal.WithLabelValues("text")), 0.001)
	assert.InDelta(t, callbacks+1, testutil.ToFloat64(metrics.UserMessagesTotal.WithLabelValues("callback")), 0.001)
}
