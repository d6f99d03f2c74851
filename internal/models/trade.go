package models

import "time"

// Trade status values recorded by the bot. Legacy records predate the
// status field and are normalized to StatusSuccess.
const (
	StatusSuccess = "Success"
	StatusFailed  = "Failed"
	StatusError   = "Error"
	StatusPending = "Pending"
)

// Trade is one historical swap attempt in canonical form. Raw records carry
// several legacy field aliases for the same logical values; portfolio.Normalize
// resolves them onto this shape. Trades are immutable and totally ordered by
// timestamp, with ties broken by input order.
type Trade struct {
	Timestamp    time.Time `json:"timestamp"`
	InputToken   string    `json:"input_token"`
	OutputToken  string    `json:"output_token"`
	InputAmount  float64   `json:"input_amount"`
	OutputAmount float64   `json:"output_amount"`
	Status       string    `json:"status"`
	Strategy     string    `json:"strategy,omitempty"`
	Direction    string    `json:"direction,omitempty"`
	FeeSol       float64   `json:"fee_sol"`
	PnlUsd       float64   `json:"pnl_usd,omitempty"`
	Signature    string    `json:"signature,omitempty"`
}

// Successful reports whether the swap actually executed.
func (t Trade) Successful() bool {
	return t.Status == StatusSuccess
}
