package portfolio

import (
	"sort"

	"solana-dashboard-go/internal/models"
)

// dustSellUsd is the floor below which a recorded sell is treated as a
// data-recording error rather than a real exit. Such sells are skipped
// during matching and never claimed.
const dustSellUsd = 0.01

// MatchRoundTrips pairs historical buys and sells per token into completed
// round-trips with realized P&L.
//
// The matcher is greedy FIFO, not an optimal assignment: buys are processed
// oldest-first and each claims the earliest unclaimed sell strictly after
// it. When overlapping entries interleave this can attribute a sell to a
// different buy than an economically optimal matching would; that is an
// accepted approximation, not a bug to fix with a different strategy.
//
// The result is sorted by sell timestamp descending for display.
func MatchRoundTrips(trades []models.Trade) []models.RoundTrip {
	var trips []models.RoundTrip
	for _, symbol := range swapTokens(trades) {
		trips = append(trips, matchToken(trades, symbol)...)
	}
	sort.SliceStable(trips, func(i, j int) bool {
		return trips[i].SellTime.After(trips[j].SellTime)
	})
	return trips
}

func matchToken(trades []models.Trade, symbol string) []models.RoundTrip {
	buys, sells := splitSwaps(trades, symbol)

	claimed := make([]bool, len(sells))
	var trips []models.RoundTrip
	for _, buy := range buys {
		for j, sell := range sells {
			if claimed[j] || !sell.Timestamp.After(buy.Timestamp) {
				continue
			}
			if sell.OutputAmount <= dustSellUsd {
				// Misrecorded exit: leave it unclaimed and keep scanning
				// for the next eligible sell.
				continue
			}
			trips = append(trips, models.RoundTrip{
				Token:    symbol,
				BuyUsd:   buy.InputAmount,
				SellUsd:  sell.OutputAmount,
				BuyTime:  buy.Timestamp,
				SellTime: sell.Timestamp,
				PnlUsd:   sell.OutputAmount - buy.InputAmount,
			})
			claimed[j] = true
			break
		}
		// A buy with no eligible later sell produces no round-trip: it is
		// presumably still open, or its exit was misrecorded.
	}
	return trips
}

// swapTokens returns every token appearing on the non-USDC side of a
// successful, non-synthetic USDC swap, in first-seen order. Deriving the
// universe from the log itself keeps meme-token trips from being dropped
// by a fixed list.
func swapTokens(trades []models.Trade) []string {
	seen := make(map[string]bool)
	var symbols []string
	for _, t := range trades {
		if !t.Successful() || IsSynthetic(t) {
			continue
		}
		var symbol string
		switch {
		case t.InputToken == "USDC" && t.OutputToken != "" && t.OutputToken != "USDC":
			symbol = t.OutputToken
		case t.OutputToken == "USDC" && t.InputToken != "" && t.InputToken != "USDC":
			symbol = t.InputToken
		}
		if symbol != "" && !seen[symbol] {
			seen[symbol] = true
			symbols = append(symbols, symbol)
		}
	}
	return symbols
}
