package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"solana-dashboard-go/internal/feed"
	"solana-dashboard-go/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testAPIServer(t *testing.T) *APIServer {
	t.Helper()
	return NewAPIServer(testEngine(t), 0, zap.NewNop())
}

func TestHandlersServeEmptyDefaultsBeforeFirstRefresh(t *testing.T) {
	server := testAPIServer(t)

	testCases := []struct {
		path     string
		handler  http.HandlerFunc
		expected string
	}{
		{"/api/trades", server.tradesHandler, "[]"},
		{"/api/positions", server.positionsHandler, "[]"},
		{"/api/roundtrips", server.roundTripsHandler, "[]"},
		{"/api/signals", server.signalsHandler, "[]"},
		{"/api/reports", server.reportsHandler, "[]"},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tc.handler(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tc.expected, rec.Body.String())
		})
	}
}

func TestStatusHandlerNotReadyBeforeFirstRefresh(t *testing.T) {
	server := testAPIServer(t)

	rec := httptest.NewRecorder()
	server.statusHandler(rec, httptest.NewRequest(http.MethodGet, "/api/status", nil))

	var status statusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.False(t, status.Ready)
	assert.Equal(t, 0, status.TradesCount)
}

func TestStatusHandlerAfterRefresh(t *testing.T) {
	engine := testEngine(t)
	ds := &feed.Dataset{
		Wallet: models.WalletSnapshot{TotalUsd: 1500},
		RawTrades: []map[string]any{
			{"input_token": "USDC", "output_token": "SOL", "input_amount": 100.0},
		},
		FetchedAt: time.Now(),
	}
	engine.current.Store(engine.Compute(ds))
	server := NewAPIServer(engine, 0, zap.NewNop())

	rec := httptest.NewRecorder()
	server.statusHandler(rec, httptest.NewRequest(http.MethodGet, "/api/status", nil))

	var status statusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.True(t, status.Ready)
	assert.Equal(t, 1, status.TradesCount)
	assert.Equal(t, 1500.0, status.WalletTotalUsd)
	assert.NotEmpty(t, status.LastUpdated)
}

func TestTradesHandlerServesNormalizedLog(t *testing.T) {
	engine := testEngine(t)
	ds := &feed.Dataset{
		RawTrades: []map[string]any{
			{
				"timestamp":    "2024-02-15T09:00:00Z",
				"input_token":  "USDC",
				"output_token": "SOL",
				"input_amount": 100.0,
				"strategy":     "TEST",
			},
		},
		FetchedAt: time.Now(),
	}
	engine.current.Store(engine.Compute(ds))
	server := NewAPIServer(engine, 0, zap.NewNop())

	rec := httptest.NewRecorder()
	server.tradesHandler(rec, httptest.NewRequest(http.MethodGet, "/api/trades", nil))

	var trades []models.Trade
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &trades))
	// The audit log includes synthetic trades.
	require.Len(t, trades, 1)
	assert.Equal(t, "TEST", trades[0].Strategy)
	assert.Equal(t, 100.0, trades[0].InputAmount)
}

func TestHealthHandler(t *testing.T) {
	server := testAPIServer(t)

	rec := httptest.NewRecorder()
	server.healthHandler(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK\n", rec.Body.String())
}
