package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/Matthew11K/wb-sales-bot/internal/common/metrics"
	"github.com/Matthew11K/wb-sales-bot/internal/domain/models"
)

const (
	messageTypeCommand  = "command"
	messageTypeText     = "text"
	messageTypeCallback = "callback"
)

// InstrumentedBotService оборачивает BotService: считает входящие сообщения и логирует время обработки.
type InstrumentedBotService struct {
	botService *BotService
	logger     *slog.Logger
}

func NewInstrumentedBotService(botService *BotService, logger *slog.Logger) *InstrumentedBotService {
	return &InstrumentedBotService{
		botService: botService,
		logger:     logger,
	}
}

func (s *InstrumentedBotService) ProcessCommand(ctx context.Context, command *models.Command) (*models.Reply, error) {
	start := time.Now()
	metrics.RecordUserMessage(messageTypeCommand)

	reply, err := s.botService.ProcessCommand(ctx, command)

	s.logger.Debug("Команда обработана",
		"chat_id", command.ChatID,
		"command", string(command.Type),
		"duration", time.Since(start),
		"error", err,
	)

	return reply, err
}

func (s *InstrumentedBotService) ProcessMessage(ctx context.Context, chatID int64, text string) (*models.Reply, error) {
	start := time.Now()
	metrics.RecordUserMessage(messageTypeText)

	reply, err := s.botService.ProcessMessage(ctx, chatID, text)

	s.logger.Debug("Сообщение обработано",
		"chat_id", chatID,
		"duration", time.Since(start),
		"error", err,
	)

	return reply, err
}

func (s *InstrumentedBotService) ProcessCallback(ctx context.Context, chatID int64, data string) (*models.Reply, error) {
	start := time.Now()
	metrics.RecordUserMessage(messageTypeCallback)

	reply, err := s.botService.ProcessCallback(ctx, chatID, data)

	s.logger.Debug("Нажатие кнопки обработано",
		"chat_id", chatID,
		"data", data,
		"duration", time.Since(start),
		"error", err,
	)

	return reply, err
}
