package portfolio

import (
	"strings"
	"time"

	"solana-dashboard-go/internal/models"
)

// Summarize rolls trade-level and round-trip-level data up into the
// portfolio summary figures. All counts exclude synthetic trades.
//
// The win rate prefers the P&L-aware variant: sell-direction trades with a
// non-zero recorded P&L. Datasets written before the bot recorded per-trade
// P&L have none of those, so the rate falls back to the plain success count.
func Summarize(trades []models.Trade, trips []models.RoundTrip, wallet models.WalletSnapshot, history []models.PortfolioPoint, now time.Time, loc *time.Location) models.Summary {
	var s models.Summary

	for _, t := range trades {
		if IsSynthetic(t) {
			continue
		}
		s.TotalTrades++
		if t.Successful() {
			s.SuccessfulTrades++
		}
		s.TotalFeesSol += t.FeeSol
		if strings.EqualFold(t.Direction, "sell") && t.PnlUsd != 0 {
			s.ClosedTrades++
			if t.PnlUsd > 0 {
				s.WinningTrades++
			}
		}
	}

	if s.ClosedTrades > 0 {
		s.PnlAware = true
		s.WinRate = float64(s.WinningTrades) / float64(s.ClosedTrades)
	} else if s.TotalTrades > 0 {
		s.WinRate = float64(s.SuccessfulTrades) / float64(s.TotalTrades)
	}

	// Fees are recorded in SOL units; convert at the current reference price.
	s.TotalFeesUsd = s.TotalFeesSol * wallet.SolPriceUsd

	s.CompletedTrips = len(trips)
	for _, trip := range trips {
		s.RealizedPnlUsd += trip.PnlUsd
	}

	if baseline, ok := dayBaseline(history, now, loc); ok {
		s.HasDailyBaseline = true
		s.DailyChangeUsd = wallet.TotalUsd - baseline
		if baseline != 0 {
			s.DailyChangePct = s.DailyChangeUsd / baseline * 100
		}
	}

	return s
}

// dayBaseline returns the total value of the first portfolio snapshot
// recorded on the current calendar day. The day boundary is computed in
// the fixed reporting timezone so the figure does not shift when viewer
// and data source sit in different zones.
func dayBaseline(history []models.PortfolioPoint, now time.Time, loc *time.Location) (float64, bool) {
	year, month, day := now.In(loc).Date()

	var (
		earliest time.Time
		value    float64
		found    bool
	)
	for _, p := range history {
		if p.Timestamp.IsZero() {
			continue
		}
		py, pm, pd := p.Timestamp.In(loc).Date()
		if py != year || pm != month || pd != day {
			continue
		}
		if !found || p.Timestamp.Before(earliest) {
			earliest = p.Timestamp.Time
			value = p.TotalUsd
			found = true
		}
	}
	return value, found
}
