package models

import "time"

// OpenPosition is a currently held token whose acquisition is traceable to
// an unmatched buy trade. Derived fresh on every refresh, never mutated.
//
// The wallet snapshot is ground truth for whether the position exists and
// what it is worth; the trade log only explains when it was entered and at
// what cost.
type OpenPosition struct {
	Token           string    `json:"token"`
	Amount          float64   `json:"amount"`
	CurrentValueUsd float64   `json:"current_value_usd"`
	EntryUsd        float64   `json:"entry_usd"`
	EntryTime       time.Time `json:"entry_time"`
	PnlUsd          float64   `json:"pnl_usd"`
}
