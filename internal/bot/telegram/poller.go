package telegram

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Matthew11K/wb-sales-bot/internal/bot/domain"
	domainerrors "github.com/Matthew11K/wb-sales-bot/internal/domain/errors"
	"github.com/Matthew11K/wb-sales-bot/internal/domain/models"
)

const (
	textProcessingError = "Произошла ошибка при обработке вашего сообщения. Пожалуйста, попробуйте позже."
	textTooManyRequests = "Слишком много сообщений. Подождите немного и попробуйте снова."

	longPollTimeout = 60
)

type BotService interface {
	ProcessCommand(ctx context.Context, command *models.Command) (*models.Reply, error)

	ProcessMessage(ctx context.Context, chatID int64, text string) (*models.Reply, error)

	ProcessCallback(ctx context.Context, chatID int64, data string) (*models.Reply, error)
}

type Poller struct {
	telegramClient domain.TelegramClientAPI
	botService     BotService
	dispatcher     *Dispatcher
	updateTimeout  time.Duration
	logger         *slog.Logger
	stopChan       chan struct{}
	done           chan struct{}
	stopOnce       sync.Once
}

func NewPoller(
	telegramClient domain.TelegramClientAPI,
	botService BotService,
	workers int,
	limiter Limiter,
	updateTimeout time.Duration,
	logger *slog.Logger,
) *Poller {
	if updateTimeout <= 0 {
		updateTimeout = 30 * time.Second
	}

	p := &Poller{
		telegramClient: telegramClient,
		botService:     botService,
		updateTimeout:  updateTimeout,
		logger:         logger,
		stopChan:       make(chan struct{}),
	}

	p.dispatcher = NewDispatcher(workers, p.HandleUpdate, limiter, logger)

	return p
}

func (p *Poller) Start() error {
	p.logger.Info("Запуск Telegram поллера")

	bot := p.telegramClient.GetBot()
	if bot == nil {
		return errors.New("не удалось получить доступ к API бота")
	}

	p.done = make(chan struct{})

	u := tgbotapi.NewUpdate(0)
	u.Timeout = longPollTimeout

	updates := bot.GetUpdatesChan(u)

	go func() {
		defer close(p.done)

		for {
			select {
			case <-p.stopChan:
				bot.StopReceivingUpdates()
				p.logger.Info("Получен сигнал остановки поллера")

				return
			case update, ok := <-updates:
				if !ok {
					return
				}

				p.submit(update)
			}
		}
	}()

	return nil
}

// Stop прекращает получение обновлений и дожидается обработки уже принятых.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() {
		p.logger.Info("Остановка Telegram поллера")

		close(p.stopChan)

		if p.done != nil {
			<-p.done
		}

		p.dispatcher.Stop()
	})
}

func (p *Poller) submit(update tgbotapi.Update) {
	if p.dispatcher.Submit(update) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.updateTimeout)
	defer cancel()

	if update.CallbackQuery != nil {
		if err := p.telegramClient.AnswerCallback(ctx, update.CallbackQuery.ID, textTooManyRequests); err != nil {
			p.logger.Error("Ошибка при ответе на callback", "error", err)
		}

		return
	}

	if chat := chatOf(update); chat != nil {
		if err := p.telegramClient.SendMessage(ctx, chat.ID, textTooManyRequests); err != nil {
			p.logger.Error("Ошибка при отправке ответа", "error", err, "chat_id", chat.ID)
		}
	}
}

// HandleUpdate обрабатывает одно обновление: сообщение, команду или нажатие кнопки.
func (p *Poller) HandleUpdate(update tgbotapi.Update) {
	ctx, cancel := context.WithTimeout(context.Background(), p.updateTimeout)
	defer cancel()

	switch {
	case update.CallbackQuery != nil:
		p.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		p.handleMessage(ctx, update.Message)
	}
}

func (p *Poller) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID

	p.logger.Debug("Получено сообщение",
		"chat_id", chatID,
		"is_command", message.IsCommand(),
	)

	var (
		reply *models.Reply
		err   error
	)

	if message.IsCommand() {
		command := &models.Command{
			Type:   models.ParseCommandType("/" + message.Command()),
			ChatID: chatID,
			Text:   message.Text,
		}

		if message.From != nil {
			command.UserID = message.From.ID
			command.Username = message.From.UserName
		}

		reply, err = p.botService.ProcessCommand(ctx, command)
	} else {
		reply, err = p.botService.ProcessMessage(ctx, chatID, message.Text)
	}

	reply = p.resolveReply(chatID, reply, err)

	p.sendReply(ctx, chatID, reply)
}

func (p *Poller) handleCallback(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	if callback.Message == nil {
		p.answerCallback(ctx, callback.ID, "")
		return
	}

	chatID := callback.Message.Chat.ID

	p.logger.Debug("Получено нажатие кнопки", "chat_id", chatID)

	reply, err := p.botService.ProcessCallback(ctx, chatID, callback.Data)
	reply = p.resolveReply(chatID, reply, err)

	p.answerCallback(ctx, callback.ID, reply.Notice)
	p.sendReply(ctx, chatID, reply)
}

// resolveReply превращает ошибку обработки в ответ пользователю.
// Неизвестная команда приходит вместе с готовым ответом и ошибкой не считается.
func (p *Poller) resolveReply(chatID int64, reply *models.Reply, err error) *models.Reply {
	if err == nil {
		if reply == nil {
			return &models.Reply{}
		}

		return reply
	}

	var unknownCommand *domainerrors.ErrUnknownCommand
	if errors.As(err, &unknownCommand) && reply != nil {
		p.logger.Info("Получена неизвестная команда", "chat_id", chatID, "command", unknownCommand.Command)
		return reply
	}

	p.logger.Error("Ошибка при обработке сообщения",
		"error", err,
		"chat_id", chatID,
	)

	return models.NewReply(textProcessingError)
}

func (p *Poller) sendReply(ctx context.Context, chatID int64, reply *models.Reply) {
	if reply.Text == "" {
		return
	}

	if err := p.telegramClient.SendReply(ctx, chatID, reply); err != nil {
		p.logger.Error("Ошибка при отправке ответа",
			"error", err,
			"chat_id", chatID,
		)
	}
}

func (p *Poller) answerCallback(ctx context.Context, callbackID, notice string) {
	if err := p.telegramClient.AnswerCallback(ctx, callbackID, notice); err != nil {
		p.logger.Error("Ошибка при ответе на callback", "error", err)
	}
}
