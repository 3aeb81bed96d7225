package clients

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Matthew11K/wb-sales-bot/internal/common/httputil"
	"github.com/Matthew11K/wb-sales-bot/internal/common/metrics"
	"github.com/Matthew11K/wb-sales-bot/internal/common/ratelimit"
	"github.com/Matthew11K/wb-sales-bot/internal/config"
	domainerrors "github.com/Matthew11K/wb-sales-bot/internal/domain/errors"
	"github.com/Matthew11K/wb-sales-bot/internal/domain/models"
	"github.com/Matthew11K/wb-sales-bot/pkg"
)

const (
	endpointPing  = "ping"
	endpointSales = "sales"

	tracerName = "github.com/Matthew11K/wb-sales-bot/internal/bot/clients"
)

// WildberriesClient обращается к API Wildberries от имени магазина, ключ передаётся как Bearer токен.
type WildberriesClient struct {
	client       *resty.Client
	pingURL      string
	salesURL     string
	salesLimiter *ratelimit.KeyedLimiter
	logger       *slog.Logger
	tracer       trace.Tracer
}

func NewWildberriesClient(cfg *config.Config, salesLimiter *ratelimit.KeyedLimiter, logger *slog.Logger) *WildberriesClient {
	return &WildberriesClient{
		client:       httputil.CreateResilientHTTPClient(cfg, logger, "wildberries"),
		pingURL:      cfg.MarketplacePingURL,
		salesURL:     cfg.MarketplaceSalesURL,
		salesLimiter: salesLimiter,
		logger:       logger,
		tracer:       otel.Tracer(tracerName),
	}
}

// ValidateCredential возвращает true только при ответе 200. Причина отказа попадает лишь в лог.
func (c *WildberriesClient) ValidateCredential(ctx context.Context, credential string) bool {
	err := c.CheckCredential(ctx, credential)
	if err == nil {
		c.logger.Info("API ключ валиден", "credential", pkg.MaskSecret(credential))
		return true
	}

	var marketplaceErr *domainerrors.ErrMarketplace
	if errors.As(err, &marketplaceErr) && marketplaceErr.Kind == domainerrors.KindCredentialInvalid {
		c.logger.Warn("Неверный API ключ",
			"credential", pkg.MaskSecret(credential),
			"status", marketplaceErr.StatusCode,
		)

		return false
	}

	c.logger.Error("Не удалось проверить API ключ",
		"credential", pkg.MaskSecret(credential),
		"error", err,
	)

	return false
}

func (c *WildberriesClient) CheckCredential(ctx context.Context, credential string) (err error) {
	ctx, span := c.tracer.Start(ctx, "wildberries.ping")
	defer func() { endSpan(span, err) }()

	start := time.Now()

	resp, err := c.client.R().
		SetContext(ctx).
		SetAuthToken(credential).
		Get(c.pingURL)
	if err != nil {
		metrics.RecordMarketplaceRequest(endpointPing, "error", time.Since(start))
		return transportError(err)
	}

	metrics.RecordMarketplaceRequest(endpointPing, statusLabel(resp.StatusCode()), time.Since(start))
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode()))

	switch resp.StatusCode() {
	case http.StatusOK:
		return nil
	case http.StatusUnauthorized:
		return &domainerrors.ErrMarketplace{Kind: domainerrors.KindCredentialInvalid, StatusCode: resp.StatusCode()}
	default:
		c.logger.Error("Неожиданный ответ при проверке ключа",
			"status", resp.StatusCode(),
			"body", truncate(resp.String(), 512),
		)

		return &domainerrors.ErrMarketplace{Kind: domainerrors.KindUnexpectedStatus, StatusCode: resp.StatusCode()}
	}
}

// FetchSales запрашивает записи о продажах за диапазон дат. Пустой ответ считается ошибкой KindEmptyData.
func (c *WildberriesClient) FetchSales(
	ctx context.Context,
	credential string,
	dateRange models.DateRange,
) (records []models.SalesRecord, err error) {
	ctx, span := c.tracer.Start(ctx, "wildberries.sales", trace.WithAttributes(
		attribute.String("date_from", dateRange.From),
		attribute.String("date_to", dateRange.To),
	))
	defer func() { endSpan(span, err) }()

	if c.salesLimiter != nil && !c.salesLimiter.Allow(credential) {
		return nil, &domainerrors.ErrMarketplace{Kind: domainerrors.KindRateLimited}
	}

	start := time.Now()

	resp, err := c.client.R().
		SetContext(ctx).
		SetAuthToken(credential).
		SetQueryParams(map[string]string{
			"dateFrom": dateRange.From,
			"dateTo":   dateRange.To,
		}).
		Get(c.salesURL)
	if err != nil {
		metrics.RecordMarketplaceRequest(endpointSales, "error", time.Since(start))
		return nil, transportError(err)
	}

	metrics.RecordMarketplaceRequest(endpointSales, statusLabel(resp.StatusCode()), time.Since(start))
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode()))

	switch resp.StatusCode() {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return nil, &domainerrors.ErrMarketplace{Kind: domainerrors.KindCredentialInvalid, StatusCode: resp.StatusCode()}
	case http.StatusTooManyRequests:
		return nil, &domainerrors.ErrMarketplace{Kind: domainerrors.KindRateLimited, StatusCode: resp.StatusCode()}
	default:
		c.logger.Error("Ошибка при получении отчета",
			"status", resp.StatusCode(),
			"body", truncate(resp.String(), 512),
		)

		return nil, &domainerrors.ErrMarketplace{Kind: domainerrors.KindUnexpectedStatus, StatusCode: resp.StatusCode()}
	}

	records, err = DecodeSales(resp.Body())
	if err != nil {
		if errors.Is(err, errEmptyBody) {
			return nil, &domainerrors.ErrMarketplace{Kind: domainerrors.KindEmptyData, StatusCode: resp.StatusCode()}
		}

		return nil, &domainerrors.ErrMarketplace{Kind: domainerrors.KindMalformedData, StatusCode: resp.StatusCode(), Cause: err}
	}

	if len(records) == 0 {
		return nil, &domainerrors.ErrMarketplace{Kind: domainerrors.KindEmptyData, StatusCode: resp.StatusCode()}
	}

	c.logger.Info("Отчет успешно получен",
		"date_from", dateRange.From,
		"date_to", dateRange.To,
		"records", len(records),
	)

	return records, nil
}

func transportError(err error) error {
	var httpErr *domainerrors.HTTPError
	if errors.As(err, &httpErr) {
		return &domainerrors.ErrMarketplace{Kind: domainerrors.KindUnexpectedStatus, StatusCode: httpErr.StatusCode, Cause: err}
	}

	return &domainerrors.ErrMarketplace{Kind: domainerrors.KindNetworkFailure, Cause: err}
}

func statusLabel(code int) string {
	if code == http.StatusOK {
		return "success"
	}

	return "error"
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	span.End()
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	return s[:limit] + "…"
}
