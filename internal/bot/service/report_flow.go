package service

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Matthew11K/wb-sales-bot/internal/bot/report"
	"github.com/Matthew11K/wb-sales-bot/internal/common/metrics"
	domainerrors "github.com/Matthew11K/wb-sales-bot/internal/domain/errors"
	"github.com/Matthew11K/wb-sales-bot/internal/domain/models"
)

const (
	reportStatusSuccess       = "success"
	reportStatusConfigMissing = "config_missing"
	reportStatusInvalidPeriod = "invalid_period"
	reportStatusIncomplete    = "incomplete_data"
)

type periodOption struct {
	id     string
	label  string
	period models.Period
}

var periodOptions = []periodOption{
	{id: string(models.PeriodToday), label: labelToday, period: models.PeriodToday},
	{id: string(models.PeriodYesterday), label: labelYesterday, period: models.PeriodYesterday},
	{id: string(models.PeriodLast7Days), label: labelLast7Days, period: models.PeriodLast7Days},
	{id: callbackCustomPeriod, label: labelCustom, period: models.PeriodCustom},
}

func (s *BotService) startReport(ctx context.Context, session *models.ChatSession) (*models.Reply, error) {
	session.Reset()

	names, err := s.shops.List(ctx)
	if err != nil {
		return nil, err
	}

	if len(names) == 0 {
		return models.NewReply(textNoShopsForReport), nil
	}

	session.Start(models.FlowReport, models.StepAwaitingShop)

	return shopChoiceReply(textChooseShopReport, names, callbackReportShop), nil
}

// handleReportShop проверяет, что у магазина есть ключ. Без ключа сценарий завершается,
// API маркетплейса не вызывается.
func (s *BotService) handleReportShop(ctx context.Context, session *models.ChatSession, input userInput) (*models.Reply, error) {
	name, ok := parseInput(input, callbackReportShop)
	if !ok {
		return staleReply(), nil
	}

	if _, err := s.shops.Credential(ctx, name); err != nil {
		if isConfigMissing(err) {
			session.Reset()

			metrics.RecordReport("none", reportStatusConfigMissing)

			s.logger.Warn("Запрошен отчёт по незарегистрированному магазину",
				"chat_id", session.ChatID,
				"shop", name,
				"error", err,
			)

			return models.NewReply(fmt.Sprintf(textShopUnavailable, html.EscapeString(name))), nil
		}

		return nil, err
	}

	session.Set(models.ScratchShop, name)
	session.Advance(models.StepAwaitingPeriod)

	return models.NewReply(textChoosePeriod).WithButtons(periodButtons()...), nil
}

func (s *BotService) handleReportPeriod(ctx context.Context, session *models.ChatSession, input userInput) (*models.Reply, error) {
	option, ok := matchPeriod(input)
	if !ok {
		if input.Button {
			return staleReply(), nil
		}

		return models.NewReply(textChoosePeriod).WithButtons(periodButtons()...), nil
	}

	if option.period == models.PeriodCustom {
		session.Advance(models.StepAwaitingStartDate)

		return models.NewReply(textAskStartDate), nil
	}

	return s.generateReport(ctx, session, option.period)
}

func (s *BotService) handleStartDate(_ context.Context, session *models.ChatSession, input userInput) (*models.Reply, error) {
	if input.Button {
		return staleReply(), nil
	}

	date := strings.TrimSpace(input.Text)
	if date == "" {
		return models.NewReply(textEmptyDate), nil
	}

	session.Set(models.ScratchDateStart, date)
	session.Advance(models.StepAwaitingEndDate)

	return models.NewReply(textAskEndDate), nil
}

func (s *BotService) handleEndDate(ctx context.Context, session *models.ChatSession, input userInput) (*models.Reply, error) {
	if input.Button {
		return staleReply(), nil
	}

	date := strings.TrimSpace(input.Text)
	if date == "" {
		return models.NewReply(textEmptyDate), nil
	}

	session.Set(models.ScratchDateEnd, date)

	return s.generateReport(ctx, session, models.PeriodCustom)
}

// generateReport завершает сценарий при любом исходе: отчёт либо отправлен, либо пользователь
// получил сообщение об ошибке. Повторных попыток нет.
func (s *BotService) generateReport(
	ctx context.Context,
	session *models.ChatSession,
	period models.Period,
) (*models.Reply, error) {
	shop := session.Get(models.ScratchShop)
	dateStart := session.Get(models.ScratchDateStart)
	dateEnd := session.Get(models.ScratchDateEnd)
	chatID := session.ChatID

	session.Reset()

	requestID := uuid.NewString()

	ctx, span := s.tracer.Start(ctx, "bot.generate_report", trace.WithAttributes(
		attribute.String("request_id", requestID),
		attribute.String("period", string(period)),
	))
	defer span.End()

	logger := s.logger.With(
		"request_id", requestID,
		"chat_id", chatID,
		"shop", shop,
		"period", string(period),
	)

	credential, err := s.shops.Credential(ctx, shop)
	if err != nil {
		if isConfigMissing(err) {
			metrics.RecordReport(string(period), reportStatusConfigMissing)
			logger.Warn("Магазин пропал из конфигурации до формирования отчёта", "error", err)

			return models.NewReply(fmt.Sprintf(textShopUnavailable, html.EscapeString(shop))), nil
		}

		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, err
	}

	dateRange, err := models.ResolvePeriod(period, s.now().In(s.location), dateStart, dateEnd)
	if err != nil {
		metrics.RecordReport(string(period), reportStatusInvalidPeriod)
		logger.Warn("Не удалось определить период отчёта", "error", err)

		return models.NewReply(textReportFailed), nil
	}

	records, err := s.marketplace.FetchSales(ctx, credential, dateRange)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return fetchFailureReply(logger, shop, period, err), nil
	}

	summary, err := report.Aggregate(records)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		metrics.RecordReport(string(period), reportStatusIncomplete)
		logger.Warn("Данные о продажах неполные", "error", err)

		return models.NewReply(textIncompleteData), nil
	}

	event := &models.ReportEvent{
		RequestID:   requestID,
		ChatID:      chatID,
		Shop:        shop,
		Period:      period,
		Range:       dateRange,
		Summary:     summary,
		GeneratedAt: s.now(),
	}

	s.publishReport(ctx, event, logger)

	metrics.RecordReport(string(period), reportStatusSuccess)

	logger.Info("Отчёт сформирован",
		"date_from", dateRange.From,
		"date_to", dateRange.To,
		"units_sold", summary.UnitsSold,
	)

	return models.NewReply(report.Render(shop, dateRange, summary)), nil
}

// publishReport отправляет событие в фоне со своим таймаутом: ответ пользователю не ждёт брокер,
// а отмена контекста обновления не обрывает отправку.
func (s *BotService) publishReport(ctx context.Context, event *models.ReportEvent, logger *slog.Logger) {
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.publishTimeout)

	s.publishing.Add(1)

	go func() {
		defer s.publishing.Done()
		defer cancel()

		if err := s.publisher.PublishReport(publishCtx, event); err != nil {
			logger.Warn("Не удалось опубликовать событие об отчёте", "error", err)
		}
	}()
}

func fetchFailureReply(logger *slog.Logger, shop string, period models.Period, err error) *models.Reply {
	kind := domainerrors.KindNetworkFailure

	var marketplaceErr *domainerrors.ErrMarketplace
	if errors.As(err, &marketplaceErr) {
		kind = marketplaceErr.Kind
	}

	metrics.RecordReport(string(period), string(kind))
	logger.Warn("Не удалось получить данные о продажах", "kind", string(kind), "error", err)

	//nolint:exhaustive // остальные виды ошибок показываются общим сообщением
	switch kind {
	case domainerrors.KindEmptyData:
		return models.NewReply(textNoSalesData)
	case domainerrors.KindRateLimited:
		return models.NewReply(textRateLimited)
	case domainerrors.KindCredentialInvalid:
		return models.NewReply(fmt.Sprintf(textReportCredential, html.EscapeString(shop)))
	default:
		return models.NewReply(textReportFailed)
	}
}

func isConfigMissing(err error) bool {
	return errors.Is(err, &domainerrors.ErrShopNotFound{}) || errors.Is(err, &domainerrors.ErrCredentialMissing{})
}

func matchPeriod(input userInput) (periodOption, bool) {
	text := strings.TrimSpace(input.Text)

	for _, option := range periodOptions {
		if text == option.id {
			return option, true
		}

		if !input.Button && strings.EqualFold(text, option.label) {
			return option, true
		}
	}

	return periodOption{}, false
}

func periodButtons() [][]models.Button {
	rows := make([][]models.Button, 0, len(periodOptions))

	for _, option := range periodOptions {
		rows = append(rows, []models.Button{{Text: option.label, Data: option.id}})
	}

	return rows
}
