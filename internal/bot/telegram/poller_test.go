package telegram_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	domainmocks "github.com/Matthew11K/wb-sales-bot/internal/bot/domain/mocks"
	"github.com/Matthew11K/wb-sales-bot/internal/bot/telegram"
	"github.com/Matthew11K/wb-sales-bot/internal/bot/telegram/mocks"
	domainerrors "github.com/Matthew11K/wb-sales-bot/internal/domain/errors"
	"github.com/Matthew11K/wb-sales-bot/internal/domain/models"
)

func newTestPoller(t *testing.T) (*telegram.Poller, *domainmocks.TelegramClientAPI, *mocks.BotService) {
	t.Helper()

	client := domainmocks.NewTelegramClientAPI(t)
	service := mocks.NewBotService(t)

	poller := telegram.NewPoller(client, service, 1, nil, time.Second, discardLogger())
	t.Cleanup(poller.Stop)

	return poller, client, service
}

func commandUpdate(chatID int64, text string) tgbotapi.Update {
	command := strings.Fields(text)[0]

	return tgbotapi.Update{
		Message: &tgbotapi.Message{
			Chat: &tgbotapi.Chat{ID: chatID},
			From: &tgbotapi.User{ID: 100, UserName: "seller"},
			Text: text,
			Entities: []tgbotapi.MessageEntity{
				{Type: "bot_command", Offset: 0, Length: len(command)},
			},
		},
	}
}

func callbackUpdate(chatID int64, data string) tgbotapi.Update {
	return tgbotapi.Update{
		CallbackQuery: &tgbotapi.CallbackQuery{
			ID:   "cb-1",
			Data: data,
			Message: &tgbotapi.Message{
				Chat: &tgbotapi.Chat{ID: chatID},
			},
		},
	}
}

func TestPoller_HandleCommand(t *testing.T) {
	poller, client, service := newTestPoller(t)

	reply := models.NewReply("Выберите магазин")

	service.EXPECT().
		ProcessCommand(mock.Anything, mock.MatchedBy(func(command *models.Command) bool {
			return command.Type == models.CommandReport &&
				command.ChatID == 10 &&
				command.UserID == 100 &&
				command.Username == "seller"
		})).
		Return(reply, nil)
	client.EXPECT().SendReply(mock.Anything, int64(10), reply).Return(nil)

	poller.HandleUpdate(commandUpdate(10, "/report"))
}

func TestPoller_UnknownCommandKeepsReply(t *testing.T) {
	poller, client, service := newTestPoller(t)

	reply := models.NewReply("Неизвестная команда")

	service.EXPECT().
		ProcessCommand(mock.Anything, mock.MatchedBy(func(command *models.Command) bool {
			return command.Type == models.CommandUnknown
		})).
		Return(reply, &domainerrors.ErrUnknownCommand{Command: "/foo"})
	client.EXPECT().SendReply(mock.Anything, int64(10), reply).Return(nil)

	poller.HandleUpdate(commandUpdate(10, "/foo"))
}

func TestPoller_HandleMessageError(t *testing.T) {
	poller, client, service := newTestPoller(t)

	service.EXPECT().ProcessMessage(mock.Anything, int64(10), "Alpha").Return(nil, errors.New("база недоступна"))
	client.EXPECT().
		SendReply(mock.Anything, int64(10), mock.MatchedBy(func(reply *models.Reply) bool {
			return strings.Contains(reply.Text, "ошибка")
		})).
		Return(nil)

	poller.HandleUpdate(textUpdate(10, "Alpha"))
}

func TestPoller_SendFailureIsLogged(t *testing.T) {
	poller, client, service := newTestPoller(t)

	reply := models.NewReply("Введите название магазина")

	service.EXPECT().ProcessMessage(mock.Anything, int64(10), "key").Return(reply, nil)
	client.EXPECT().SendReply(mock.Anything, int64(10), reply).Return(errors.New("telegram недоступен"))

	poller.HandleUpdate(textUpdate(10, "key"))
}

func TestPoller_HandleCallback(t *testing.T) {
	t.Run("устаревшая кнопка", func(t *testing.T) {
		poller, client, service := newTestPoller(t)

		reply := (&models.Reply{}).WithNotice("Эта кнопка устарела")

		service.EXPECT().ProcessCallback(mock.Anything, int64(10), "shop_Alpha").Return(reply, nil)
		client.EXPECT().AnswerCallback(mock.Anything, "cb-1", "Эта кнопка устарела").Return(nil)

		poller.HandleUpdate(callbackUpdate(10, "shop_Alpha"))

		client.AssertNotCalled(t, "SendReply", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ответ с клавиатурой", func(t *testing.T) {
		poller, client, service := newTestPoller(t)

		reply := models.NewReply("Выберите период").WithButtons([]models.Button{{Text: "Сегодня", Data: "today"}})

		service.EXPECT().ProcessCallback(mock.Anything, int64(10), "shop_Alpha").Return(reply, nil)
		client.EXPECT().AnswerCallback(mock.Anything, "cb-1", "").Return(nil)
		client.EXPECT().SendReply(mock.Anything, int64(10), reply).Return(nil)

		poller.HandleUpdate(callbackUpdate(10, "shop_Alpha"))
	})

	t.Run("ошибка обработки", func(t *testing.T) {
		poller, client, service := newTestPoller(t)

		service.EXPECT().ProcessCallback(mock.Anything, int64(10), "today").Return(nil, errors.New("сбой"))
		client.EXPECT().AnswerCallback(mock.Anything, "cb-1", "").Return(nil)
		client.EXPECT().
			SendReply(mock.Anything, int64(10), mock.MatchedBy(func(reply *models.Reply) bool {
				return strings.Contains(reply.Text, "ошибка")
			})).
			Return(nil)

		poller.HandleUpdate(callbackUpdate(10, "today"))
	})

	t.Run("кнопка без сообщения", func(t *testing.T) {
		poller, client, _ := newTestPoller(t)

		client.EXPECT().AnswerCallback(mock.Anything, "cb-2", "").Return(nil)

		poller.HandleUpdate(tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{ID: "cb-2", Data: "today"}})
	})
}

func TestPoller_StartWithoutBot(t *testing.T) {
	poller, client, _ := newTestPoller(t)

	client.EXPECT().GetBot().Return(nil)

	assert.Error(t, poller.Start())
}
