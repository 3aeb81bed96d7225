package clients

import (
	"context"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Matthew11K/wb-sales-bot/internal/bot/domain"
	"github.com/Matthew11K/wb-sales-bot/internal/domain/models"
)

type TelegramClient struct {
	bot    *tgbotapi.BotAPI
	logger *slog.Logger
}

func NewTelegramClient(token string, logger *slog.Logger) domain.TelegramClientAPI {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		logger.Error("Ошибка при создании Telegram клиента", "error", err)
	}

	return &TelegramClient{
		bot:    bot,
		logger: logger,
	}
}

func (c *TelegramClient) SendMessage(ctx context.Context, chatID int64, text string) error {
	return c.SendReply(ctx, chatID, models.NewReply(text))
}

func (c *TelegramClient) SendReply(_ context.Context, chatID int64, reply *models.Reply) error {
	if c.bot == nil {
		return fmt.Errorf("telegram клиент не инициализирован")
	}

	msg := tgbotapi.NewMessage(chatID, reply.Text)
	msg.ParseMode = tgbotapi.ModeHTML

	if len(reply.Keyboard) > 0 {
		msg.ReplyMarkup = BuildInlineKeyboard(reply.Keyboard)
	}

	if _, err := c.bot.Send(msg); err != nil {
		return fmt.Errorf("ошибка при отправке сообщения: %w", err)
	}

	return nil
}

func (c *TelegramClient) AnswerCallback(_ context.Context, callbackID, text string) error {
	if c.bot == nil {
		return fmt.Errorf("telegram клиент не инициализирован")
	}

	if _, err := c.bot.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		return fmt.Errorf("ошибка при ответе на callback: %w", err)
	}

	return nil
}

func (c *TelegramClient) SetMyCommands(_ context.Context, commands []domain.BotCommand) error {
	if c.bot == nil {
		return fmt.Errorf("telegram клиент не инициализирован")
	}

	botAPICommands := make([]tgbotapi.BotCommand, 0, len(commands))
	for _, cmd := range commands {
		botAPICommands = append(botAPICommands, tgbotapi.BotCommand{
			Command:     cmd.Command,
			Description: cmd.Description,
		})
	}

	setCommandsConfig := tgbotapi.NewSetMyCommands(botAPICommands...)

	_, err := c.bot.Request(setCommandsConfig)
	if err != nil {
		return fmt.Errorf("ошибка при установке команд бота: %w", err)
	}

	return nil
}

func (c *TelegramClient) GetBot() *tgbotapi.BotAPI {
	return c.bot
}

// BuildInlineKeyboard переводит кнопки ответа в разметку Telegram, по строке на ряд.
func BuildInlineKeyboard(rows [][]models.Button) tgbotapi.InlineKeyboardMarkup {
	keyboard := make([][]tgbotapi.InlineKeyboardButton, 0, len(rows))

	for _, row := range rows {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, button := range row {
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(button.Text, button.Data))
		}

		keyboard = append(keyboard, buttons)
	}

	return tgbotapi.NewInlineKeyboardMarkup(keyboard...)
}
