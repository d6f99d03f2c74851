package models

// TokenHolding is one token balance inside the wallet snapshot.
type TokenHolding struct {
	Balance  float64 `json:"balance"`
	ValueUsd float64 `json:"value_usd"`
	PriceUsd float64 `json:"price_usd"`
}

// WalletSnapshot is the point-in-time wallet state published by the bot's
// portfolio recorder. Exactly one snapshot is live at a time; each refresh
// replaces it wholesale, never merges.
type WalletSnapshot struct {
	Timestamp     FlexTime `json:"timestamp"`
	WalletAddress string   `json:"wallet_address"`

	SolBalance  float64 `json:"sol_balance"`
	UsdcBalance float64 `json:"usdc_balance"`
	WbtcBalance float64 `json:"wbtc_balance"`
	BnbBalance  float64 `json:"bnb_balance"`

	SolPriceUsd float64 `json:"sol_price_usd"`
	BtcPriceUsd float64 `json:"btc_price_usd"`
	BnbPriceUsd float64 `json:"bnb_price_usd"`
	EthPriceUsd float64 `json:"eth_price_usd"`

	SolValueUsd  float64 `json:"sol_value_usd"`
	WbtcValueUsd float64 `json:"wbtc_value_usd"`
	BnbValueUsd  float64 `json:"bnb_value_usd"`
	TotalUsd     float64 `json:"total_usd"`

	// Tokens holds the open-ended set of meme holdings keyed by symbol.
	Tokens map[string]TokenHolding `json:"tokens,omitempty"`
}

// Holding returns the balance, USD value and reference price for a symbol.
// Core tokens live in fixed fields; everything else comes from Tokens.
func (w WalletSnapshot) Holding(symbol string) TokenHolding {
	switch symbol {
	case "SOL":
		return TokenHolding{Balance: w.SolBalance, ValueUsd: w.SolValueUsd, PriceUsd: w.SolPriceUsd}
	case "USDC":
		return TokenHolding{Balance: w.UsdcBalance, ValueUsd: w.UsdcBalance, PriceUsd: 1}
	case "WBTC":
		return TokenHolding{Balance: w.WbtcBalance, ValueUsd: w.WbtcValueUsd, PriceUsd: w.BtcPriceUsd}
	case "BNB":
		return TokenHolding{Balance: w.BnbBalance, ValueUsd: w.BnbValueUsd, PriceUsd: w.BnbPriceUsd}
	}
	return w.Tokens[symbol]
}
