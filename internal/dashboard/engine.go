// Package dashboard ties the snapshot feed and the portfolio computations
// together and publishes the result over HTTP.
package dashboard

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"solana-dashboard-go/internal/config"
	"solana-dashboard-go/internal/feed"
	"solana-dashboard-go/internal/models"
	"solana-dashboard-go/internal/portfolio"

	"go.uber.org/zap"
)

// Result is the computed output of one refresh cycle. It is immutable once
// published; a newer refresh replaces it wholesale.
type Result struct {
	Dataset    *feed.Dataset
	Trades     []models.Trade // full normalized log, synthetic included, for the raw audit table
	Positions  []models.OpenPosition
	RoundTrips []models.RoundTrip
	Summary    models.Summary
	Signals    []map[string]any
	Strategies models.StrategySet
	Tasks      models.TaskTree
	ComputedAt time.Time
}

// Engine periodically fetches the snapshot documents, recomputes every
// derived view, and swaps the published Result atomically. Readers always
// see one coherent dataset, never a mix of old and new.
type Engine struct {
	logger  *zap.Logger
	cfg     *config.Config
	client  *feed.Client
	loc     *time.Location
	tokens  []portfolio.TrackedToken
	current atomic.Pointer[Result]
}

// NewEngine creates a refresh engine.
func NewEngine(logger *zap.Logger, cfg *config.Config, client *feed.Client) (*Engine, error) {
	loc, err := cfg.Reporting.Location()
	if err != nil {
		return nil, fmt.Errorf("invalid reporting timezone %q: %w", cfg.Reporting.Timezone, err)
	}
	return &Engine{
		logger: logger,
		cfg:    cfg,
		client: client,
		loc:    loc,
		tokens: portfolio.DefaultTrackedTokens(cfg.Reporting.SolDustUsd, cfg.Reporting.DustUsd),
	}, nil
}

// Current returns the latest published result, or nil before the first
// refresh has completed.
func (e *Engine) Current() *Result {
	return e.current.Load()
}

// Run starts the refresh loop. It performs one refresh immediately, then
// repeats at the configured interval until the context is cancelled.
func (e *Engine) Run(ctx context.Context) {
	interval := time.Duration(e.cfg.Refresh.Interval) * time.Second
	e.logger.Info("Starting refresh loop", zap.Duration("interval", interval))

	e.refresh(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			e.logger.Info("Stopping refresh loop")
			return
		case <-ticker.C:
			e.refresh(ctx)
		}
	}
}

func (e *Engine) refresh(ctx context.Context) {
	ds := e.client.FetchAll(ctx, &e.cfg.Sources)
	res := e.Compute(ds)
	e.current.Store(res)

	e.logger.Info("Refresh complete",
		zap.Int("trades", len(res.Trades)),
		zap.Int("positions", len(res.Positions)),
		zap.Int("round_trips", len(res.RoundTrips)),
		zap.Float64("wallet_total_usd", ds.Wallet.TotalUsd),
	)
}

// Compute runs every derived view over one dataset. It is a pure function
// of its input: no state survives between calls and nothing is recomputed
// incrementally.
func (e *Engine) Compute(ds *feed.Dataset) *Result {
	now := time.Now()
	trades := portfolio.NormalizeAll(ds.RawTrades)
	trips := portfolio.MatchRoundTrips(trades)

	return &Result{
		Dataset:    ds,
		Trades:     trades,
		Positions:  portfolio.ReconstructPositions(trades, ds.Wallet, e.tokens),
		RoundTrips: trips,
		Summary:    portfolio.Summarize(trades, trips, ds.Wallet, ds.History.PortfolioHistory, now, e.loc),
		Signals:    portfolio.RecentSignals(ds.Signals, now),
		Strategies: portfolio.EnrichStrategies(ds.Strategies, trades),
		Tasks:      portfolio.ComputeTaskStats(ds.Tasks),
		ComputedAt: now,
	}
}
