package portfolio

import (
	"testing"
	"time"

	"solana-dashboard-go/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAliasPriority(t *testing.T) {
	testCases := []struct {
		name           string
		raw            map[string]any
		expectedInput  float64
		expectedOutput float64
	}{
		{
			name: "Actual amounts win over order amounts",
			raw: map[string]any{
				"actual_input_amount":  100.0,
				"input_amount":         90.0,
				"order_input_amount":   80.0,
				"actual_output_amount": 1.5,
				"output_amount":        1.4,
			},
			expectedInput:  100.0,
			expectedOutput: 1.5,
		},
		{
			name: "Zero alias is skipped, not used",
			raw: map[string]any{
				"actual_input_amount": 0.0,
				"input_amount":        90.0,
			},
			expectedInput:  90.0,
			expectedOutput: 0,
		},
		{
			name: "Token-specific alias is the last resort",
			raw: map[string]any{
				"usdc_spent":   42.5,
				"token_amount": 3.0,
			},
			expectedInput:  42.5,
			expectedOutput: 3.0,
		},
		{
			name: "String-typed amounts from sheet-backed logs",
			raw: map[string]any{
				"input_amount":  "12.25",
				"output_amount": "0.5",
			},
			expectedInput:  12.25,
			expectedOutput: 0.5,
		},
		{
			name:           "No alias present defaults to zero",
			raw:            map[string]any{},
			expectedInput:  0,
			expectedOutput: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			trade := Normalize(tc.raw)
			assert.Equal(t, tc.expectedInput, trade.InputAmount)
			assert.Equal(t, tc.expectedOutput, trade.OutputAmount)
		})
	}
}

func TestNormalizeDefaults(t *testing.T) {
	trade := Normalize(map[string]any{
		"input_token":  "USDC",
		"output_token": "SOL",
	})

	// Legacy records predate the status field and count as successful.
	assert.Equal(t, models.StatusSuccess, trade.Status)
	assert.Equal(t, "", trade.Strategy)
	assert.True(t, trade.Timestamp.IsZero())
	assert.Equal(t, 0.0, trade.FeeSol)
}

func TestNormalizeFeeFromLamports(t *testing.T) {
	t.Run("fee_sol wins when present", func(t *testing.T) {
		trade := Normalize(map[string]any{"fee_sol": 0.0005, "fee_lamports": 900000.0})
		assert.Equal(t, 0.0005, trade.FeeSol)
	})

	t.Run("fee_lamports converted at 1e9", func(t *testing.T) {
		trade := Normalize(map[string]any{"fee_lamports": 500000.0})
		assert.InDelta(t, 0.0005, trade.FeeSol, 1e-12)
	})
}

func TestNormalizeTimestamps(t *testing.T) {
	testCases := []struct {
		name     string
		value    any
		expected time.Time
	}{
		{
			name:     "RFC3339",
			value:    "2024-02-15T09:30:00Z",
			expected: time.Date(2024, 2, 15, 9, 30, 0, 0, time.UTC),
		},
		{
			name:     "Bare ISO without offset",
			value:    "2024-02-15T09:30:00.123456",
			expected: time.Date(2024, 2, 15, 9, 30, 0, 123456000, time.UTC),
		},
		{
			name:     "Unix seconds",
			value:    float64(1707989400),
			expected: time.Unix(1707989400, 0).UTC(),
		},
		{
			name:     "Garbage degrades to zero time",
			value:    "not-a-date",
			expected: time.Time{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			trade := Normalize(map[string]any{"timestamp": tc.value})
			assert.True(t, tc.expected.Equal(trade.Timestamp),
				"expected %v, got %v", tc.expected, trade.Timestamp)
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	raw := map[string]any{
		"timestamp":           "2024-02-15T09:30:00Z",
		"input_token":         "USDC",
		"output_token":        "SOL",
		"actual_input_amount": 100.0,
		"output_amount":       1.0,
		"status":              "Success",
		"strategy":            "CCI",
		"fee_lamports":        500000.0,
	}

	first := Normalize(raw)
	second := Normalize(raw)
	assert.Equal(t, first, second)
}

func TestIsSynthetic(t *testing.T) {
	testCases := []struct {
		strategy string
		expected bool
	}{
		{"TEST", true},
		{"test", true},
		{"Pipeline_Test", true},
		{"PIPELINE_TEST", true},
		{"", false},
		{"CCI", false},
		{"GRID", false},
		{"TESTING", false}, // only exact matches count
	}

	for _, tc := range testCases {
		t.Run("strategy="+tc.strategy, func(t *testing.T) {
			trade := models.Trade{Strategy: tc.strategy}
			assert.Equal(t, tc.expected, IsSynthetic(trade))
			// Pure predicate: asking twice never changes the answer.
			assert.Equal(t, tc.expected, IsSynthetic(trade))
		})
	}
}
