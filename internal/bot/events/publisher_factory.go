package events

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Matthew11K/wb-sales-bot/internal/config"
	"github.com/Matthew11K/wb-sales-bot/internal/domain/models"
)

type TransportType string

const (
	NoTransport    TransportType = "NONE"
	KafkaTransport TransportType = "KAFKA"
)

type ReportPublisher interface {
	PublishReport(ctx context.Context, event *models.ReportEvent) error
	Close() error
}

func NewReportPublisher(cfg *config.Config, logger *slog.Logger) (ReportPublisher, error) {
	transport := TransportType(strings.ToUpper(cfg.ReportEventsTransport))

	logger.Info("Создание публикатора событий об отчётах",
		"type", transport,
	)

	switch transport {
	case NoTransport, "":
		return NewNoopReportPublisher(logger), nil
	case KafkaTransport:
		brokers := strings.Split(cfg.KafkaBrokers, ",")
		return NewKafkaReportPublisher(brokers, cfg.TopicReportEvents, logger), nil
	default:
		return nil, fmt.Errorf("неизвестный транспорт событий: %s", transport)
	}
}
