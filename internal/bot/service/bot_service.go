package service

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	domainerrors "github.com/Matthew11K/wb-sales-bot/internal/domain/errors"
	"github.com/Matthew11K/wb-sales-bot/internal/domain/models"
)

const tracerName = "github.com/Matthew11K/wb-sales-bot/internal/bot/service"

// Префиксы и значения callback data inline кнопок.
const (
	callbackReportShop    = "shop_"
	callbackDeleteShop    = "del_"
	callbackDeleteConfirm = "del_confirm"
	callbackDeleteCancel  = "del_cancel"
	callbackCustomPeriod  = "custom_period"

	// Telegram ограничивает callback data 64 байтами.
	maxCallbackData = 64
	maxShopNameLen  = maxCallbackData - len(callbackReportShop)

	publishTimeout = 5 * time.Second
)

type ShopRepository interface {
	Load(ctx context.Context) (map[string]string, error)

	Save(ctx context.Context, shops map[string]string) error
}

type SessionRepository interface {
	// Get возвращает новую сессию без активного сценария, если для чата ничего не сохранено.
	Get(ctx context.Context, chatID int64) (*models.ChatSession, error)

	// Save сохраняет сессию; сессия без активного сценария удаляется из хранилища.
	Save(ctx context.Context, session *models.ChatSession) error
}

type MarketplaceClient interface {
	ValidateCredential(ctx context.Context, credential string) bool

	FetchSales(ctx context.Context, credential string, dateRange models.DateRange) ([]models.SalesRecord, error)
}

type ReportPublisher interface {
	PublishReport(ctx context.Context, event *models.ReportEvent) error
}

type userInput struct {
	Text   string
	Button bool
}

type stateKey struct {
	flow models.Flow
	step models.Step
}

type stepHandler func(ctx context.Context, session *models.ChatSession, input userInput) (*models.Reply, error)

type BotService struct {
	shops          *ShopRegistry
	sessions       SessionRepository
	marketplace    MarketplaceClient
	publisher      ReportPublisher
	publishTimeout time.Duration
	publishing     sync.WaitGroup
	location       *time.Location
	now            func() time.Time
	logger         *slog.Logger
	tracer         trace.Tracer
	handlers       map[stateKey]stepHandler
}

func NewBotService(
	shops *ShopRegistry,
	sessions SessionRepository,
	marketplace MarketplaceClient,
	publisher ReportPublisher,
	location *time.Location,
	logger *slog.Logger,
) *BotService {
	if location == nil {
		location = time.UTC
	}

	s := &BotService{
		shops:          shops,
		sessions:       sessions,
		marketplace:    marketplace,
		publisher:      publisher,
		publishTimeout: publishTimeout,
		location:       location,
		now:            time.Now,
		logger:         logger,
		tracer:         otel.Tracer(tracerName),
	}

	s.handlers = map[stateKey]stepHandler{
		{models.FlowAddShop, models.StepAwaitingCredential}:       s.handleCredentialInput,
		{models.FlowAddShop, models.StepAwaitingName}:             s.handleShopNameInput,
		{models.FlowDeleteShop, models.StepAwaitingDeleteChoice}:  s.handleDeleteChoice,
		{models.FlowDeleteShop, models.StepAwaitingDeleteConfirm}: s.handleDeleteConfirm,
		{models.FlowReport, models.StepAwaitingShop}:              s.handleReportShop,
		{models.FlowReport, models.StepAwaitingPeriod}:            s.handleReportPeriod,
		{models.FlowReport, models.StepAwaitingStartDate}:         s.handleStartDate,
		{models.FlowReport, models.StepAwaitingEndDate}:           s.handleEndDate,
	}

	return s
}

// Close дожидается отправки событий об уже сформированных отчётах.
func (s *BotService) Close() error {
	s.publishing.Wait()

	return nil
}

// ProcessCommand обрабатывает команду. Любая известная команда прерывает активный сценарий.
func (s *BotService) ProcessCommand(ctx context.Context, command *models.Command) (*models.Reply, error) {
	session, err := s.sessions.Get(ctx, command.ChatID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении сессии: %w", err)
	}

	var reply *models.Reply

	//nolint:exhaustive // CommandUnknown обрабатывается в блоке default
	switch command.Type {
	case models.CommandStart, models.CommandHelp:
		session.Reset()

		reply = models.NewReply(textWelcome)
	case models.CommandAddShop:
		session.Start(models.FlowAddShop, models.StepAwaitingCredential)

		reply = models.NewReply(textAskCredential)
	case models.CommandDelShop:
		reply, err = s.startDeleteShop(ctx, session)
	case models.CommandShops:
		session.Reset()

		reply, err = s.listShops(ctx)
	case models.CommandReport:
		reply, err = s.startReport(ctx, session)
	case models.CommandCancel:
		if session.Active() {
			s.logger.Info("Сценарий отменён пользователем",
				"chat_id", command.ChatID,
				"flow", session.Flow.String(),
			)

			session.Reset()

			reply = models.NewReply(textCancelled)
		} else {
			reply = models.NewReply(textNothingToCancel)
		}
	default:
		return models.NewReply(textUnknownCommand), &domainerrors.ErrUnknownCommand{Command: command.Text}
	}

	return s.finish(ctx, session, reply, err)
}

// ProcessMessage обрабатывает обычный текст в контексте текущего шага сценария.
func (s *BotService) ProcessMessage(ctx context.Context, chatID int64, text string) (*models.Reply, error) {
	return s.dispatch(ctx, chatID, userInput{Text: text})
}

// ProcessCallback обрабатывает нажатие inline кнопки.
// Кнопка без подходящей сессии считается устаревшей: пользователь получает уведомление, состояние не меняется.
func (s *BotService) ProcessCallback(ctx context.Context, chatID int64, data string) (*models.Reply, error) {
	return s.dispatch(ctx, chatID, userInput{Text: data, Button: true})
}

func (s *BotService) dispatch(ctx context.Context, chatID int64, input userInput) (*models.Reply, error) {
	session, err := s.sessions.Get(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении сессии: %w", err)
	}

	if !session.Active() {
		if input.Button {
			return staleReply(), nil
		}

		return models.NewReply(textIdle), nil
	}

	handler, ok := s.handlers[stateKey{session.Flow, session.Step}]
	if !ok {
		stateErr := &domainerrors.ErrUnknownState{Flow: session.Flow.String(), Step: session.Step.String()}

		return s.finish(ctx, session, nil, stateErr)
	}

	reply, err := handler(ctx, session, input)

	return s.finish(ctx, session, reply, err)
}

// finish сохраняет сессию после обработки. При ошибке обработчика сценарий сбрасывается,
// а ошибка уходит наверх, где превращается в общее сообщение пользователю.
func (s *BotService) finish(ctx context.Context, session *models.ChatSession, reply *models.Reply, err error) (*models.Reply, error) {
	if err != nil {
		s.logger.Error("Ошибка при обработке сообщения, сценарий сброшен",
			"chat_id", session.ChatID,
			"flow", session.Flow.String(),
			"step", session.Step.String(),
			"error", err,
		)

		session.Reset()
	}

	if saveErr := s.sessions.Save(ctx, session); saveErr != nil {
		if err != nil {
			return nil, err
		}

		return nil, fmt.Errorf("ошибка при сохранении сессии: %w", saveErr)
	}

	if err != nil {
		return nil, err
	}

	return reply, nil
}

func (s *BotService) listShops(ctx context.Context) (*models.Reply, error) {
	names, err := s.shops.List(ctx)
	if err != nil {
		return nil, err
	}

	if len(names) == 0 {
		return models.NewReply(textNoShops), nil
	}

	escaped := make([]string, len(names))
	for i, name := range names {
		escaped[i] = html.EscapeString(name)
	}

	return models.NewReply(fmt.Sprintf(textShopList, strings.Join(escaped, "\n"))), nil
}

func staleReply() *models.Reply {
	return (&models.Reply{}).WithNotice(textSessionExpired)
}

// shopChoiceReply строит клавиатуру выбора магазина. Имена, которые не помещаются в callback data,
// на кнопки не попадают: такой магазин выбирается вводом имени.
func shopChoiceReply(text string, names []string, prefix string) *models.Reply {
	rows := make([][]models.Button, 0, len(names))

	for _, name := range names {
		data := prefix + name
		if len(data) > maxCallbackData {
			continue
		}

		rows = append(rows, []models.Button{{Text: name, Data: data}})
	}

	if len(rows) < len(names) {
		text += "\n\n" + textTypeShopName
	}

	return models.NewReply(text).WithButtons(rows...)
}

// parseInput достаёт значение из кнопки с нужным префиксом или берёт введённый текст целиком.
func parseInput(input userInput, prefix string) (string, bool) {
	if !input.Button {
		return strings.TrimSpace(input.Text), true
	}

	if !strings.HasPrefix(input.Text, prefix) {
		return "", false
	}

	return strings.TrimPrefix(input.Text, prefix), true
}
