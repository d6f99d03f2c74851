package models

// DailyReport is one dated report entry from the bot's report feed.
type DailyReport struct {
	Date    string `json:"date"`
	Content string `json:"content"`
}

// PortfolioPoint is one sample of the portfolio value time series.
type PortfolioPoint struct {
	Timestamp FlexTime           `json:"timestamp"`
	TotalUsd  float64            `json:"total_usd"`
	Usdc      float64            `json:"usdc"`
	Sol       float64            `json:"sol"`
	Tokens    map[string]float64 `json:"tokens,omitempty"`
	Prices    map[string]float64 `json:"prices,omitempty"`
}

// HistoryDocument is the portfolio_history.json document: the portfolio
// value series plus the raw price series the charts consume.
type HistoryDocument struct {
	PortfolioHistory []PortfolioPoint `json:"portfolio_history"`
	PriceHistory     []map[string]any `json:"price_history,omitempty"`
}
