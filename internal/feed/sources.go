package feed

import (
	"context"
	"sync"
	"time"

	"solana-dashboard-go/internal/config"
	"solana-dashboard-go/internal/models"

	"go.uber.org/zap"
)

// Dataset is one refresh cycle's immutable set of inputs. Every field is
// independently optional; a failed or missing source leaves its documented
// default (zero struct or empty list) in place.
type Dataset struct {
	Wallet     models.WalletSnapshot
	RawTrades  []map[string]any
	Signals    []map[string]any
	Tasks      models.TaskTree
	Reports    []models.DailyReport
	Strategies models.StrategySet
	History    models.HistoryDocument
	FetchedAt  time.Time
}

// FetchAll retrieves every configured snapshot document concurrently.
// There is no ordering dependency between the sources, and a failure in
// one degrades only its own section: the error is logged and the default
// value kept, never propagated to siblings.
func (c *Client) FetchAll(ctx context.Context, cfg *config.Sources) *Dataset {
	ds := &Dataset{FetchedAt: time.Now()}

	var wg sync.WaitGroup
	fetch := func(name, path string, out any) {
		if path == "" {
			return // source not configured
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := c.getJSON(ctx, path, out); err != nil {
				c.logger.Warn("Snapshot source unavailable, keeping empty default",
					zap.String("source", name),
					zap.Error(err),
				)
			}
		}()
	}

	fetch("wallet", cfg.Wallet, &ds.Wallet)
	fetch("trades", cfg.Trades, &ds.RawTrades)
	fetch("signals", cfg.Signals, &ds.Signals)
	fetch("tasks", cfg.Tasks, &ds.Tasks)
	fetch("daily_reports", cfg.DailyReports, &ds.Reports)
	fetch("strategies", cfg.Strategies, &ds.Strategies)
	fetch("portfolio_history", cfg.PortfolioHistory, &ds.History)
	wg.Wait()

	return ds
}
