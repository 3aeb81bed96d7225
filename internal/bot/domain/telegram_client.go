package domain

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Matthew11K/wb-sales-bot/internal/domain/models"
)

type BotCommand struct {
	Command     string
	Description string
}

type TelegramClientAPI interface {
	SendMessage(ctx context.Context, chatID int64, text string) error

	SendReply(ctx context.Context, chatID int64, reply *models.Reply) error

	AnswerCallback(ctx context.Context, callbackID string, text string) error

	SetMyCommands(ctx context.Context, commands []BotCommand) error

	GetBot() *tgbotapi.BotAPI
}
