package dashboard

import (
	"testing"
	"time"

	"solana-dashboard-go/internal/config"
	"solana-dashboard-go/internal/feed"
	"solana-dashboard-go/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	cfg := &config.Config{
		Reporting: config.Reporting{
			Timezone:   "UTC",
			SolDustUsd: 1.0,
			DustUsd:    0.01,
		},
		Refresh: config.Refresh{Interval: 300},
	}
	engine, err := NewEngine(zap.NewNop(), cfg, nil)
	require.NoError(t, err)
	return engine
}

func TestNewEngineRejectsBadTimezone(t *testing.T) {
	cfg := &config.Config{
		Reporting: config.Reporting{Timezone: "Not/AZone"},
	}
	_, err := NewEngine(zap.NewNop(), cfg, nil)
	assert.Error(t, err)
}

func TestCurrentNilBeforeFirstRefresh(t *testing.T) {
	engine := testEngine(t)
	assert.Nil(t, engine.Current())
}

func TestComputeFullPipeline(t *testing.T) {
	engine := testEngine(t)

	ds := &feed.Dataset{
		Wallet: models.WalletSnapshot{
			SolBalance:  1.2,
			SolValueUsd: 150,
			SolPriceUsd: 150,
			TotalUsd:    1150,
		},
		RawTrades: []map[string]any{
			{
				"timestamp":            "2024-02-15T09:00:00Z",
				"input_token":          "USDC",
				"output_token":         "SOL",
				"input_amount":         100.0,
				"actual_output_amount": 1.0,
				"strategy":             "CCI",
				"fee_lamports":         500000.0,
			},
			{
				"timestamp":     "2024-02-14T09:00:00Z",
				"input_token":   "USDC",
				"output_token":  "WBTC",
				"input_amount":  200.0,
				"output_amount": 0.004,
				"strategy":      "CCI",
			},
			{
				"timestamp":     "2024-02-14T12:00:00Z",
				"input_token":   "WBTC",
				"output_token":  "USDC",
				"input_amount":  0.004,
				"output_amount": 220.0,
				"strategy":      "CCI",
			},
			{
				"timestamp":    "2024-02-15T10:00:00Z",
				"input_token":  "USDC",
				"output_token": "SOL",
				"input_amount": 50.0,
				"strategy":     "PIPELINE_TEST",
			},
		},
		Strategies: models.StrategySet{
			Strategies: map[string]*models.Strategy{
				"CCI": {Pairs: map[string]*models.StrategyPair{
					"WBTC_CCI": {Symbol: "WBTC"},
				}},
			},
		},
		Tasks: models.TaskTree{
			Projects: []models.Project{
				{ID: "bot", Name: "Trading bot", Tasks: []models.Task{{Status: "completed"}}},
			},
		},
		FetchedAt: time.Now(),
	}

	res := engine.Compute(ds)

	// The raw audit log keeps everything, synthetic included.
	assert.Len(t, res.Trades, 4)

	// Only the open SOL buy survives as a position; WBTC was closed.
	require.Len(t, res.Positions, 1)
	assert.Equal(t, "SOL", res.Positions[0].Token)
	assert.Equal(t, 1.0, res.Positions[0].Amount)
	assert.Equal(t, 100.0, res.Positions[0].EntryUsd)

	require.Len(t, res.RoundTrips, 1)
	assert.Equal(t, "WBTC", res.RoundTrips[0].Token)
	assert.InDelta(t, 20.0, res.RoundTrips[0].PnlUsd, 1e-9)

	// Synthetic trade is excluded from the aggregate counts.
	assert.Equal(t, 3, res.Summary.TotalTrades)
	assert.InDelta(t, 20.0, res.Summary.RealizedPnlUsd, 1e-9)
	assert.InDelta(t, 0.0005, res.Summary.TotalFeesSol, 1e-12)

	stats := res.Strategies.Strategies["CCI"].Pairs["WBTC_CCI"].LiveStats
	require.NotNil(t, stats)
	assert.Equal(t, 1, stats.CompletedTrips)
	require.NotNil(t, stats.RealizedPnl)
	assert.InDelta(t, 20.0, *stats.RealizedPnl, 1e-9)

	require.NotNil(t, res.Tasks.Statistics)
	assert.Equal(t, 1, res.Tasks.Statistics.CompletedTasks)

	assert.Same(t, ds, res.Dataset)
	assert.False(t, res.ComputedAt.IsZero())
}

func TestComputeEmptyDataset(t *testing.T) {
	engine := testEngine(t)

	res := engine.Compute(&feed.Dataset{FetchedAt: time.Now()})

	assert.Empty(t, res.Trades)
	assert.Empty(t, res.Positions)
	assert.Empty(t, res.RoundTrips)
	assert.Equal(t, 0, res.Summary.TotalTrades)
	assert.False(t, res.Summary.HasDailyBaseline)
}

func TestComputeIsPure(t *testing.T) {
	engine := testEngine(t)
	ds := &feed.Dataset{
		RawTrades: []map[string]any{
			{
				"timestamp":     "2024-02-14T09:00:00Z",
				"input_token":   "USDC",
				"output_token":  "WBTC",
				"input_amount":  200.0,
				"output_amount": 0.004,
			},
			{
				"timestamp":     "2024-02-14T12:00:00Z",
				"input_token":   "WBTC",
				"output_token":  "USDC",
				"input_amount":  0.004,
				"output_amount": 220.0,
			},
		},
	}

	first := engine.Compute(ds)
	second := engine.Compute(ds)

	assert.Equal(t, first.Trades, second.Trades)
	assert.Equal(t, first.RoundTrips, second.RoundTrips)
	assert.Equal(t, first.Summary.RealizedPnlUsd, second.Summary.RealizedPnlUsd)
}
