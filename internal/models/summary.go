package models

// Summary is the portfolio-level rollup shown at the top of the dashboard.
// All figures exclude synthetic trades.
type Summary struct {
	TotalTrades      int `json:"total_trades"`
	SuccessfulTrades int `json:"successful_trades"`

	// WinRate is computed from sell trades with a recorded P&L when the
	// dataset has any (PnlAware true); otherwise it falls back to the plain
	// success rate over all trades.
	WinRate       float64 `json:"win_rate"`
	PnlAware      bool    `json:"pnl_aware"`
	ClosedTrades  int     `json:"closed_trades,omitempty"`
	WinningTrades int     `json:"winning_trades,omitempty"`

	TotalFeesSol float64 `json:"total_fees_sol"`
	TotalFeesUsd float64 `json:"total_fees_usd"`

	RealizedPnlUsd float64 `json:"realized_pnl_usd"`
	CompletedTrips int     `json:"completed_trips"`

	// Daily change compares the current wallet value against the first
	// portfolio snapshot recorded today in the reporting timezone.
	DailyChangeUsd   float64 `json:"daily_change_usd"`
	DailyChangePct   float64 `json:"daily_change_pct"`
	HasDailyBaseline bool    `json:"has_daily_baseline"`
}
