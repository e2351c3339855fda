package commerce

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeMoney(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  Money
	}{
		{"nil", nil, Money{Amount: "0", Currency: "INR"}},
		{"number", float64(499), Money{Amount: "499", Currency: "INR"}},
		{"fractional number", 499.5, Money{Amount: "499.5", Currency: "INR"}},
		{"int", 42, Money{Amount: "42", Currency: "INR"}},
		{"numeric string", "150.00", Money{Amount: "150.00", Currency: "INR"}},
		{"empty string", "", Money{Amount: "0", Currency: "INR"}},
		{"json number", json.Number("150"), Money{Amount: "150", Currency: "INR"}},
		{"object with amount", map[string]any{"amount": float64(100)}, Money{Amount: "100", Currency: "INR"}},
		{"object with value", map[string]any{"value": float64(150)}, Money{Amount: "150", Currency: "INR"}},
		{"object with currency", map[string]any{"amount": "75", "currency": "USD"}, Money{Amount: "75", Currency: "USD"}},
		{"object with neither key", map[string]any{"foo": "bar"}, Money{Amount: "0", Currency: "INR"}},
		{"unexpected type", true, Money{Amount: "0", Currency: "INR"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeMoney(tt.value, "INR")
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, got.Amount)
			assert.NotEmpty(t, got.Currency)
		})
	}
}

func TestNormalizeMoney_DecodedJSONShapes(t *testing.T) {
	// values as they actually arrive after decoding a platform response
	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(`{
		"flat": 499,
		"str": "120.50",
		"nested": {"value": 150},
		"full": {"amount": "80", "currency": "USD"}
	}`), &payload))

	assert.Equal(t, Money{Amount: "499", Currency: "INR"}, NormalizeMoney(payload["flat"], "INR"))
	assert.Equal(t, Money{Amount: "120.50", Currency: "INR"}, NormalizeMoney(payload["str"], "INR"))
	assert.Equal(t, Money{Amount: "150", Currency: "INR"}, NormalizeMoney(payload["nested"], "INR"))
	assert.Equal(t, Money{Amount: "80", Currency: "USD"}, NormalizeMoney(payload["full"], "INR"))
	assert.Equal(t, Money{Amount: "0", Currency: "INR"}, NormalizeMoney(payload["missing"], "INR"))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "Free", FormatAmount(Money{Amount: "0", Currency: "INR"}))
	assert.Equal(t, "Free", FormatAmount(Money{Amount: "0.00", Currency: "INR"}))
	assert.Equal(t, "₹499.00", FormatAmount(Money{Amount: "499", Currency: "INR"}))
	assert.Equal(t, "$12.50", FormatAmount(Money{Amount: "12.5", Currency: "USD"}))
	assert.Equal(t, "AED 99.00", FormatAmount(Money{Amount: "99", Currency: "AED"}))
	assert.Equal(t, "INR abc", FormatAmount(Money{Amount: "abc", Currency: "INR"}))
}
