package events

import (
	"context"
	"log/slog"

	"github.com/Matthew11K/wb-sales-bot/internal/domain/models"
)

// NoopReportPublisher только пишет событие в лог. Используется, когда брокер не настроен.
type NoopReportPublisher struct {
	logger *slog.Logger
}

func NewNoopReportPublisher(logger *slog.Logger) *NoopReportPublisher {
	return &NoopReportPublisher{logger: logger}
}

func (p *NoopReportPublisher) PublishReport(_ context.Context, event *models.ReportEvent) error {
	p.logger.Debug("Отчёт сформирован, публикация событий отключена",
		"request_id", event.RequestID,
		"chat_id", event.ChatID,
	)

	return nil
}

func (p *NoopReportPublisher) Close() error {
	return nil
}
