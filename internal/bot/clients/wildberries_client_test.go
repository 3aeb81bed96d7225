package clients_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Matthew11K/wb-sales-bot/internal/bot/clients"
	"github.com/Matthew11K/wb-sales-bot/internal/common/ratelimit"
	"github.com/Matthew11K/wb-sales-bot/internal/config"
	domainerrors "github.com/Matthew11K/wb-sales-bot/internal/domain/errors"
	"github.com/Matthew11K/wb-sales-bot/internal/domain/models"
)

const testCredential = "test-api-key-1234567890"

func newClient(t *testing.T, serverURL string, limiter *ratelimit.KeyedLimiter) *clients.WildberriesClient {
	t.Helper()

	cfg := &config.Config{
		MarketplacePingURL:         serverURL + "/ping",
		MarketplaceSalesURL:        serverURL + "/api/v1/supplier/sales",
		ExternalRequestTimeout:     2 * time.Second,
		CBSlidingWindowSize:        100,
		CBMinimumRequiredCalls:     100,
		CBFailureRateThreshold:     100,
		CBPermittedCallsInHalfOpen: 10,
		CBWaitDurationInOpenState:  10 * time.Second,
	}

	return clients.NewWildberriesClient(cfg, limiter, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestValidateCredential(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   bool
	}{
		{name: "valid", status: http.StatusOK, want: true},
		{name: "unauthorized", status: http.StatusUnauthorized, want: false},
		{name: "forbidden", status: http.StatusForbidden, want: false},
		{name: "server error", status: http.StatusInternalServerError, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var authHeader string

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				authHeader = r.Header.Get("Authorization")
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			client := newClient(t, server.URL, nil)

			assert.Equal(t, tt.want, client.ValidateCredential(context.Background(), testCredential))
			assert.Equal(t, "Bearer "+testCredential, authHeader)
		})
	}
}

func TestValidateCredential_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	serverURL := server.URL
	server.Close()

	client := newClient(t, serverURL, nil)

	assert.False(t, client.ValidateCredential(context.Background(), testCredential))

	err := client.CheckCredential(context.Background(), testCredential)
	assert.ErrorIs(t, err, &domainerrors.ErrMarketplace{Kind: domainerrors.KindNetworkFailure})
}

func TestFetchSales_QueryAndFlatList(t *testing.T) {
	var query map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = map[string]string{
			"dateFrom": r.URL.Query().Get("dateFrom"),
			"dateTo":   r.URL.Query().Get("dateTo"),
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"date": "2024-05-01T10:00:00", "totalPrice": 100, "discountPercent": 10, "spp": 1,
			 "paymentSaleAmount": 5, "forPay": 80, "finishedPrice": 90, "priceWithDisc": 90},
			{"date": "2024-05-01T11:00:00", "totalPrice": 200.5, "discountPercent": 0, "spp": 0,
			 "paymentSaleAmount": 0, "forPay": 180, "finishedPrice": 200, "priceWithDisc": 200.5}
		]`))
	}))
	defer server.Close()

	client := newClient(t, server.URL, nil)

	records, err := client.FetchSales(context.Background(), testCredential, models.DateRange{From: "2024-05-01", To: "2024-05-02"})

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, map[string]string{"dateFrom": "2024-05-01", "dateTo": "2024-05-02"}, query)
	assert.InDelta(t, 200.5, records[1][models.FieldTotalPrice], 1e-9)
	assert.NotContains(t, records[0], "date")
}

func TestFetchSales_ReportsEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"reports": [{"totalPrice": 10}]}`))
	}))
	defer server.Close()

	client := newClient(t, server.URL, nil)

	records, err := client.FetchSales(context.Background(), testCredential, models.DateRange{From: "2024-05-01", To: "2024-05-01"})

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.InDelta(t, 10.0, records[0][models.FieldTotalPrice], 1e-9)
}

func TestFetchSales_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		kind   domainerrors.FailureKind
	}{
		{name: "empty body", status: http.StatusOK, body: "", kind: domainerrors.KindEmptyData},
		{name: "empty list", status: http.StatusOK, body: "[]", kind: domainerrors.KindEmptyData},
		{name: "null", status: http.StatusOK, body: "null", kind: domainerrors.KindEmptyData},
		{name: "garbage", status: http.StatusOK, body: `"oops"`, kind: domainerrors.KindMalformedData},
		{name: "html after json", status: http.StatusOK, body: "[] <html>502 Bad Gateway</html>", kind: domainerrors.KindMalformedData},
		{name: "unauthorized", status: http.StatusUnauthorized, body: "", kind: domainerrors.KindCredentialInvalid},
		{name: "too many requests", status: http.StatusTooManyRequests, body: "", kind: domainerrors.KindRateLimited},
		{name: "bad request", status: http.StatusBadRequest, body: `{"errors":["bad date"]}`, kind: domainerrors.KindUnexpectedStatus},
		{name: "server error", status: http.StatusServiceUnavailable, body: "", kind: domainerrors.KindUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := newClient(t, server.URL, nil)

			records, err := client.FetchSales(context.Background(), testCredential, models.DateRange{From: "2024-05-01", To: "2024-05-01"})

			assert.Nil(t, records)

			var marketplaceErr *domainerrors.ErrMarketplace
			require.True(t, errors.As(err, &marketplaceErr), "ожидалась ErrMarketplace, получено %v", err)
			assert.Equal(t, tt.kind, marketplaceErr.Kind)
		})
	}
}

func TestFetchSales_RateLimitedPerCredential(t *testing.T) {
	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests++
		_, _ = w.Write([]byte(`[{"totalPrice": 1}]`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := newClient(t, server.URL, ratelimit.NewKeyedLimiter(ctx, 1, time.Minute))
	dateRange := models.DateRange{From: "2024-05-01", To: "2024-05-01"}

	_, err := client.FetchSales(ctx, testCredential, dateRange)
	require.NoError(t, err)

	_, err = client.FetchSales(ctx, testCredential, dateRange)
	assert.ErrorIs(t, err, &domainerrors.ErrMarketplace{Kind: domainerrors.KindRateLimited})

	_, err = client.FetchSales(ctx, "another-key", dateRange)
	require.NoError(t, err)

	assert.Equal(t, 2, requests, "отклонённый лимитом запрос не должен уходить в API")
}
