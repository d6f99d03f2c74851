package portfolio

import (
	"strings"

	"solana-dashboard-go/internal/models"
)

// EnrichStrategies attaches per-pair live stats to the strategy set.
// Each pair's realized P&L comes from the same greedy FIFO matching the
// round-trip view uses, restricted to that pair's trades.
func EnrichStrategies(set models.StrategySet, trades []models.Trade) models.StrategySet {
	for id, strat := range set.Strategies {
		if strat == nil {
			continue
		}
		strat.ID = id
		for pairID, pair := range strat.Pairs {
			if pair == nil {
				continue
			}
			pair.PairID = pairID
			pair.LiveStats = pairStats(tradesForPair(trades, pair.Symbol, id))
		}
	}
	return set
}

// tradesForPair selects non-synthetic trades whose either leg carries the
// pair's symbol and whose strategy label matches the strategy id.
func tradesForPair(trades []models.Trade, symbol, strategyID string) []models.Trade {
	symbol = strings.ToUpper(symbol)
	if symbol == "" {
		return nil
	}
	var matched []models.Trade
	for _, t := range trades {
		if IsSynthetic(t) {
			continue
		}
		if !strings.EqualFold(t.Strategy, strategyID) {
			continue
		}
		if strings.Contains(strings.ToUpper(t.InputToken), symbol) ||
			strings.Contains(strings.ToUpper(t.OutputToken), symbol) {
			matched = append(matched, t)
		}
	}
	return matched
}

func pairStats(trades []models.Trade) *models.PairStats {
	var buys, sells []models.Trade
	for _, t := range trades {
		switch {
		case strings.EqualFold(t.Direction, "buy") || t.InputToken == "USDC":
			buys = append(buys, t)
		case strings.EqualFold(t.Direction, "sell") || t.OutputToken == "USDC":
			sells = append(sells, t)
		}
	}
	sortByTime(buys)
	sortByTime(sells)

	stats := &models.PairStats{
		TotalTrades: len(trades),
		Buys:        len(buys),
		Sells:       len(sells),
	}

	claimed := make([]bool, len(sells))
	var realized float64
	for _, buy := range buys {
		var buyUsd float64
		if buy.InputToken == "USDC" {
			buyUsd = buy.InputAmount
		}
		for j, sell := range sells {
			if claimed[j] || !sell.Timestamp.After(buy.Timestamp) {
				continue
			}
			var sellUsd float64
			if sell.OutputToken == "USDC" {
				sellUsd = sell.OutputAmount
			}
			if sellUsd <= dustSellUsd {
				continue
			}
			realized += sellUsd - buyUsd
			stats.TotalInvested += buyUsd
			stats.TotalReturned += sellUsd
			stats.CompletedTrips++
			claimed[j] = true
			break
		}
	}
	if stats.CompletedTrips > 0 {
		stats.RealizedPnl = &realized
	}
	return stats
}
