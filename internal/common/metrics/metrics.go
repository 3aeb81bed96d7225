package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	Namespace = "shop_reports"

	BotSubsystem         = "bot"
	MarketplaceSubsystem = "marketplace"
)

// Бот метрики.
var (
	UserMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: BotSubsystem,
			Name:      "user_messages_total",
			Help:      "Total number of user messages processed",
		},
		[]string{"message_type"},
	)

	DispatchedUpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: BotSubsystem,
			Name:      "dispatched_updates_total",
			Help:      "Total number of telegram updates passed through the dispatcher",
		},
		[]string{"status"},
	)

	ReportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: BotSubsystem,
			Name:      "reports_total",
			Help:      "Total number of sales reports requested",
		},
		[]string{"period", "status"},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: BotSubsystem,
			Name:      "active_sessions",
			Help:      "Number of chat sessions held in memory",
		},
	)

	RegisteredShops = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: BotSubsystem,
			Name:      "registered_shops",
			Help:      "Number of shops in the config store",
		},
	)
)

// Метрики обращений к API маркетплейса.
var (
	MarketplaceRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: MarketplaceSubsystem,
			Name:      "requests_total",
			Help:      "Total number of marketplace API requests",
		},
		[]string{"endpoint", "status"},
	)

	MarketplaceRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: MarketplaceSubsystem,
			Name:      "request_duration_seconds",
			Help:      "Marketplace API request duration in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"endpoint"},
	)
)

func RecordUserMessage(messageType string) {
	UserMessagesTotal.WithLabelValues(messageType).Inc()
}

func RecordDispatchedUpdate(status string) {
	DispatchedUpdatesTotal.WithLabelValues(status).Inc()
}

func RecordReport(period, status string) {
	ReportsTotal.WithLabelValues(period, status).Inc()
}

func RecordMarketplaceRequest(endpoint, status string, duration time.Duration) {
	MarketplaceRequestsTotal.WithLabelValues(endpoint, status).Inc()
	MarketplaceRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func SetActiveSessions(count int) {
	ActiveSessions.Set(float64(count))
}

func SetRegisteredShops(count int) {
	RegisteredShops.Set(float64(count))
}
