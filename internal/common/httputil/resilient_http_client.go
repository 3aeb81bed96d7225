package httputil

import (
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"

	"github.com/Matthew11K/wb-sales-bot/internal/config"
	domainerrors "github.com/Matthew11K/wb-sales-bot/internal/domain/errors"
)

// CreateResilientHTTPClient собирает resty клиент для внешнего API: таймаут, повторы по
// списку статусов (только при RETRY_COUNT > 0) и circuit breaker на уровне транспорта.
// Ответы 5xx считаются отказом и возвращаются как *HTTPError.
func CreateResilientHTTPClient(cfg *config.Config, logger *slog.Logger, serviceName string) *resty.Client {
	client := resty.New().
		SetTimeout(cfg.ExternalRequestTimeout).
		SetTransport(newBreakerTransport(cfg, logger, serviceName, http.DefaultTransport))

	if cfg.RetryCount <= 0 {
		return client
	}

	client.
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(cfg.RetryBackoff).
		SetRetryMaxWaitTime(5 * cfg.RetryBackoff).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil {
				return !errors.Is(err, gobreaker.ErrOpenState)
			}

			return slices.Contains(cfg.RetryableStatusCodes, r.StatusCode())
		}).
		OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			if resp.Request.Attempt > 1 {
				logger.Info("Запрос выполнен после повтора",
					"service", serviceName,
					"attempt", resp.Request.Attempt,
					"status", resp.StatusCode(),
				)
			}

			return nil
		})

	return client
}

type breakerTransport struct {
	breaker *gobreaker.CircuitBreaker
	next    http.RoundTripper
	service string
	logger  *slog.Logger
}

func newBreakerTransport(cfg *config.Config, logger *slog.Logger, service string, next http.RoundTripper) *breakerTransport {
	minCalls := uint32(max(cfg.CBMinimumRequiredCalls, 0))     //nolint:gosec // значение из конфига
	halfOpen := uint32(max(cfg.CBPermittedCallsInHalfOpen, 0)) //nolint:gosec // значение из конфига
	threshold := float64(cfg.CBFailureRateThreshold) / 100.0

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        service,
		MaxRequests: halfOpen,
		Interval:    time.Duration(cfg.CBSlidingWindowSize) * time.Second,
		Timeout:     cfg.CBWaitDurationInOpenState,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < minCalls || counts.Requests == 0 {
				return false
			}

			return float64(counts.TotalFailures)/float64(counts.Requests) >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker сменил состояние",
				"service", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	})

	return &breakerTransport{
		breaker: breaker,
		next:    next,
		service: service,
		logger:  logger,
	}
}

func (t *breakerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	result, err := t.breaker.Execute(func() (any, error) {
		resp, err := t.next.RoundTrip(req)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode >= http.StatusInternalServerError {
			_ = resp.Body.Close()
			return nil, &domainerrors.HTTPError{StatusCode: resp.StatusCode}
		}

		return resp, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) {
			t.logger.Warn("Circuit breaker открыт, запрос не отправлен",
				"service", t.service,
				"url", req.URL.Redacted(),
			)
		}

		return nil, err
	}

	return result.(*http.Response), nil
}
