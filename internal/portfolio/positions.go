package portfolio

import (
	"sort"
	"time"

	"solana-dashboard-go/internal/models"
)

// TrackedToken describes one token the reconstructor reports positions for.
type TrackedToken struct {
	Symbol string
	// DustUsd is the wallet-value floor below which the token is skipped
	// entirely, whatever the trade history says.
	DustUsd float64
	// SizeFromBuy sizes the position from the entry buy's output amount
	// instead of the raw wallet balance. Used for SOL, where part of the
	// balance is a gas reserve that is never a tradable position.
	SizeFromBuy bool
}

// DefaultTrackedTokens returns the fixed core token set. Meme holdings are
// picked up dynamically from the wallet snapshot.
func DefaultTrackedTokens(solDustUsd, dustUsd float64) []TrackedToken {
	return []TrackedToken{
		{Symbol: "SOL", DustUsd: solDustUsd, SizeFromBuy: true},
		{Symbol: "WBTC", DustUsd: dustUsd},
		{Symbol: "BNB", DustUsd: dustUsd},
	}
}

// ReconstructPositions derives the currently open position, if any, for
// every trackable token: the configured core set plus whatever meme
// holdings the wallet reports. The wallet snapshot is ground truth for
// whether a position exists and what it is worth; the trade log only
// explains when it was entered and at what cost.
//
// Single-position-at-a-time model: at most one position per token, sized
// by the most recent buy after the last sell. Positions built from several
// buys under-report cost basis; that approximation is intentional.
func ReconstructPositions(trades []models.Trade, wallet models.WalletSnapshot, tokens []TrackedToken) []models.OpenPosition {
	tracked := make([]TrackedToken, len(tokens))
	copy(tracked, tokens)

	known := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		known[tok.Symbol] = true
	}
	memes := make([]string, 0, len(wallet.Tokens))
	for symbol := range wallet.Tokens {
		if !known[symbol] && symbol != "USDC" {
			memes = append(memes, symbol)
		}
	}
	sort.Strings(memes) // deterministic output across refreshes
	dust := dustFloor(tokens)
	for _, symbol := range memes {
		tracked = append(tracked, TrackedToken{Symbol: symbol, DustUsd: dust})
	}

	var positions []models.OpenPosition
	for _, tok := range tracked {
		if pos, ok := reconstructToken(trades, wallet, tok); ok {
			positions = append(positions, pos)
		}
	}
	return positions
}

func reconstructToken(trades []models.Trade, wallet models.WalletSnapshot, tok TrackedToken) (models.OpenPosition, bool) {
	holding := wallet.Holding(tok.Symbol)
	if holding.ValueUsd <= tok.DustUsd {
		return models.OpenPosition{}, false
	}

	buys, sells := splitSwaps(trades, tok.Symbol)

	var lastSell time.Time
	if len(sells) > 0 {
		lastSell = sells[len(sells)-1].Timestamp
	}

	var active *models.Trade
	for i := len(buys) - 1; i >= 0; i-- {
		if buys[i].Timestamp.After(lastSell) {
			active = &buys[i]
			break
		}
	}
	if active == nil {
		// Reconciliation gap: the wallet holds the token but no buy after
		// the last sell explains it (funds moved outside the tracked swap
		// flow). Omit the position rather than guess an entry.
		return models.OpenPosition{}, false
	}

	pos := models.OpenPosition{
		Token:           tok.Symbol,
		Amount:          holding.Balance,
		CurrentValueUsd: holding.ValueUsd,
		EntryUsd:        active.InputAmount,
		EntryTime:       active.Timestamp,
	}
	if tok.SizeFromBuy {
		pos.Amount = active.OutputAmount
		pos.CurrentValueUsd = pos.Amount * holding.PriceUsd
	}
	pos.PnlUsd = pos.CurrentValueUsd - pos.EntryUsd
	return pos, true
}

// splitSwaps partitions the successful, non-synthetic trades of one token
// into USDC->token buys and token->USDC sells, each ordered by timestamp
// ascending with a stable input-order tie-break.
func splitSwaps(trades []models.Trade, symbol string) (buys, sells []models.Trade) {
	for _, t := range trades {
		if !t.Successful() || IsSynthetic(t) {
			continue
		}
		switch {
		case t.InputToken == "USDC" && t.OutputToken == symbol:
			buys = append(buys, t)
		case t.InputToken == symbol && t.OutputToken == "USDC":
			sells = append(sells, t)
		}
	}
	sortByTime(buys)
	sortByTime(sells)
	return buys, sells
}

func sortByTime(trades []models.Trade) {
	sort.SliceStable(trades, func(i, j int) bool {
		return trades[i].Timestamp.Before(trades[j].Timestamp)
	})
}

// dustFloor picks the generic (non-SOL) threshold for dynamically tracked
// tokens.
func dustFloor(tokens []TrackedToken) float64 {
	for _, tok := range tokens {
		if !tok.SizeFromBuy {
			return tok.DustUsd
		}
	}
	return 0.01
}
