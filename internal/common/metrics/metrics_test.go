package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/Matthew11K/wb-sales-bot/internal/common/metrics"
)

func TestRecordUserMessage(t *testing.T) {
	// Arrange
	before := testutil.ToFloat64(metrics.UserMessagesTotal.WithLabelValues("command"))

	// Act
	metrics.RecordUserMessage("command")
	metrics.RecordUserMessage("command")

	// Assert
	after := testutil.ToFloat64(metrics.UserMessagesTotal.WithLabelValues("command"))
	assert.Equal(t, before+2, after)
}

func TestRecordReport(t *testing.T) {
	before := testutil.ToFloat64(metrics.ReportsTotal.WithLabelValues("today", "success"))

	metrics.RecordReport("today", "success")

	after := testutil.ToFloat64(metrics.ReportsTotal.WithLabelValues("today", "success"))
	assert.Equal(t, before+1, after)
}

func TestRecordMarketplaceRequest(t *testing.T) {
	before := testutil.ToFloat64(metrics.MarketplaceRequestsTotal.WithLabelValues("sales", "error"))

	metrics.RecordMarketplaceRequest("sales", "error", 250*time.Millisecond)

	after := testutil.ToFloat64(metrics.MarketplaceRequestsTotal.WithLabelValues("sales", "error"))
	assert.Equal(t, before+1, after)
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.MarketplaceRequestDuration, "shop_reports_marketplace_request_duration_seconds"))
}

func TestGauges(t *testing.T) {
	metrics.SetActiveSessions(7)
	metrics.SetRegisteredShops(3)

	assert.Equal(t, float64(7), testutil.ToFloat64(metrics.ActiveSessions))
	assert.Equal(t, float64(3), testutil.ToFloat64(metrics.RegisteredShops))
}
