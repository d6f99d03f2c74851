package models

import "time"

// RoundTrip is a matched buy-then-sell pair of the same token: one
// completed speculative position with realized P&L. A given buy or sell
// trade participates in at most one round-trip.
type RoundTrip struct {
	Token    string    `json:"token"`
	BuyUsd   float64   `json:"buy_usd"`
	SellUsd  float64   `json:"sell_usd"`
	BuyTime  time.Time `json:"buy_time"`
	SellTime time.Time `json:"sell_time"`
	PnlUsd   float64   `json:"pnl_usd"`
}
