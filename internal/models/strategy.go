package models

// PairStats is the live trading record of one strategy pair, derived from
// the filtered trade log on every refresh.
type PairStats struct {
	TotalTrades    int     `json:"total_trades"`
	Buys           int     `json:"buys"`
	Sells          int     `json:"sells"`
	CompletedTrips int     `json:"completed_trips"`
	TotalInvested  float64 `json:"total_invested"`
	TotalReturned  float64 `json:"total_returned"`
	// RealizedPnl is nil until at least one round-trip has completed.
	RealizedPnl *float64 `json:"realized_pnl"`
}

// StrategyPair is one tradable pair inside a strategy definition.
type StrategyPair struct {
	PairID    string         `json:"pair_id"`
	Symbol    string         `json:"symbol"`
	Position  map[string]any `json:"position,omitempty"`
	LiveStats *PairStats     `json:"live_stats,omitempty"`
}

// Strategy is one entry of the bot's hierarchical strategy config.
type Strategy struct {
	ID          string                   `json:"id"`
	Name        string                   `json:"name,omitempty"`
	Description string                   `json:"description,omitempty"`
	Pairs       map[string]*StrategyPair `json:"pairs,omitempty"`
}

// StrategySet is the strategies.json document: strategy definitions plus
// the portfolio allocation table.
type StrategySet struct {
	Strategies map[string]*Strategy `json:"strategies"`
	Allocation map[string]any       `json:"portfolio_allocation,omitempty"`
}
