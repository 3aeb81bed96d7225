package httputil_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Matthew11K/wb-sales-bot/internal/common/httputil"
	"github.com/Matthew11K/wb-sales-bot/internal/config"
	domainerrors "github.com/Matthew11K/wb-sales-bot/internal/domain/errors"
)

func newTestConfig() *config.Config {
	return &config.Config{
		ExternalRequestTimeout:     5 * time.Second,
		RetryCount:                 0,
		RetryBackoff:               50 * time.Millisecond,
		RetryableStatusCodes:       []int{500, 502, 503, 504},
		CBSlidingWindowSize:        100,
		CBMinimumRequiredCalls:     100,
		CBFailureRateThreshold:     100,
		CBPermittedCallsInHalfOpen: 10,
		CBWaitDurationInOpenState:  10 * time.Second,
	}
}

func TestNoRetryByDefault(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var requestCount int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&requestCount, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := httputil.CreateResilientHTTPClient(newTestConfig(), logger, "no_retry")

	_, err := client.R().Get(server.URL + "/test")
	require.Error(t, err)

	var httpErr *domainerrors.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadGateway, httpErr.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&requestCount), "без RETRY_COUNT повторов быть не должно")
}

func TestRetryWithBackoff(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var requestCount int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if atomic.AddInt32(&requestCount, 1) <= 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("success"))
	}))
	defer server.Close()

	cfg := newTestConfig()
	cfg.RetryCount = 3

	client := httputil.CreateResilientHTTPClient(cfg, logger, "retry")

	resp, err := client.R().Get(server.URL + "/test")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, int32(3), atomic.LoadInt32(&requestCount), "Должно быть 3 запроса: 2 неудачных + 1 успешный")
}

func TestNonRetryableStatusPassesThrough(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var requestCount int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&requestCount, 1)
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": "unauthorized"}`))
	}))
	defer server.Close()

	cfg := newTestConfig()
	cfg.RetryCount = 3

	client := httputil.CreateResilientHTTPClient(cfg, logger, "non_retryable")

	resp, err := client.R().Get(server.URL + "/api/protected")

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())
	assert.Equal(t, int32(1), atomic.LoadInt32(&requestCount), "Для 401 повтор не выполняется")
}

func TestCircuitBreaker_FastFailure(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var requestCount int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&requestCount, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	cfg := newTestConfig()
	cfg.CBSlidingWindowSize = 1
	cfg.CBMinimumRequiredCalls = 1
	cfg.CBPermittedCallsInHalfOpen = 1
	cfg.CBWaitDurationInOpenState = 2 * time.Second

	client := httputil.CreateResilientHTTPClient(cfg, logger, "breaker")

	_, err := client.R().Get(server.URL + "/test")
	require.Error(t, err)

	start := time.Now()
	_, err = client.R().Get(server.URL + "/test")
	duration := time.Since(start)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "circuit breaker is open")
	assert.Less(t, duration, 200*time.Millisecond, "Circuit breaker должен отвечать быстро")
	assert.Equal(t, int32(1), atomic.LoadInt32(&requestCount))
}
