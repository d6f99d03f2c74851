// Package portfolio reconstructs positions, round-trips and summary
// figures from the bot's trade log and wallet snapshot. Every function is
// a pure computation over one immutable refresh dataset.
package portfolio

import (
	"strconv"
	"strings"
	"time"

	"solana-dashboard-go/internal/models"
)

const lamportsPerSol = 1e9

// Amount field aliases, in priority order. Older bot versions wrote
// different names for the same logical value; the first alias that is
// present and non-zero wins.
var (
	inputAmountAliases  = []string{"actual_input_amount", "input_amount", "order_input_amount", "usdc_spent"}
	outputAmountAliases = []string{"actual_output_amount", "output_amount", "order_output_amount", "token_amount"}
	pnlAliases          = []string{"pnl_usd", "pnl", "profit"}
)

// Normalize maps one raw trade record onto the canonical models.Trade.
// It is total and deterministic: absent or malformed fields degrade to
// zero values instead of erroring, so a single bad record can never take
// down a whole section.
func Normalize(raw map[string]any) models.Trade {
	t := models.Trade{
		Timestamp:    timeField(raw, "timestamp"),
		InputToken:   stringField(raw, "input_token"),
		OutputToken:  stringField(raw, "output_token"),
		InputAmount:  firstAmount(raw, inputAmountAliases),
		OutputAmount: firstAmount(raw, outputAmountAliases),
		Status:       stringField(raw, "status"),
		Strategy:     stringField(raw, "strategy"),
		Direction:    stringField(raw, "direction"),
		PnlUsd:       firstAmount(raw, pnlAliases),
		Signature:    stringField(raw, "signature"),
	}
	if t.Status == "" {
		// Legacy records predate the status field.
		t.Status = models.StatusSuccess
	}
	t.FeeSol = numberField(raw, "fee_sol")
	if t.FeeSol == 0 {
		t.FeeSol = numberField(raw, "fee_lamports") / lamportsPerSol
	}
	return t
}

// NormalizeAll converts a raw trade list, preserving input order so that
// timestamp ties keep a stable ordering downstream.
func NormalizeAll(raw []map[string]any) []models.Trade {
	trades := make([]models.Trade, 0, len(raw))
	for _, r := range raw {
		trades = append(trades, Normalize(r))
	}
	return trades
}

// IsSynthetic reports whether a trade was produced by test or pipeline
// validation code. Synthetic trades are excluded from every financial
// figure.
func IsSynthetic(t models.Trade) bool {
	switch strings.ToUpper(t.Strategy) {
	case "TEST", "PIPELINE_TEST":
		return true
	}
	return false
}

func stringField(raw map[string]any, key string) string {
	if v, ok := raw[key].(string); ok {
		return v
	}
	return ""
}

// numberField reads a numeric field that may arrive as a JSON number or,
// in sheet-backed logs, as a string.
func numberField(raw map[string]any, key string) float64 {
	switch v := raw[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f
		}
	}
	return 0
}

func firstAmount(raw map[string]any, aliases []string) float64 {
	for _, key := range aliases {
		if v := numberField(raw, key); v != 0 {
			return v
		}
	}
	return 0
}

func timeField(raw map[string]any, key string) time.Time {
	switch v := raw[key].(type) {
	case string:
		return models.ParseTime(v)
	case float64:
		if v > 0 {
			return time.Unix(int64(v), 0).UTC()
		}
	}
	return time.Time{}
}
