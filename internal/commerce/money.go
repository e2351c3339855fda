package commerce

import (
	"encoding/json"
	"strconv"

	"github.com/shopspring/decimal"
)

// Money is the canonical amount+currency pair the storefront returns to
// clients. Amount is always a decimal string, never a raw number.
type Money struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

func (m Money) IsZero() bool {
	d, err := decimal.NewFromString(m.Amount)
	if err != nil {
		return false
	}
	return d.IsZero()
}

// NormalizeMoney converts any of the shapes the platform has been observed
// to return for a monetary field (absent, bare number, numeric string, or a
// {amount|value, currency} object) into a Money. It never fails; absence
// normalizes to "0" with the fallback currency.
func NormalizeMoney(value any, fallbackCurrency string) Money {
	switch v := value.(type) {
	case nil:
		return Money{Amount: "0", Currency: fallbackCurrency}
	case Money:
		if v.Amount == "" {
			v.Amount = "0"
		}
		if v.Currency == "" {
			v.Currency = fallbackCurrency
		}
		return v
	case float64:
		return Money{Amount: decimal.NewFromFloat(v).String(), Currency: fallbackCurrency}
	case float32:
		return Money{Amount: decimal.NewFromFloat32(v).String(), Currency: fallbackCurrency}
	case int:
		return Money{Amount: strconv.Itoa(v), Currency: fallbackCurrency}
	case int64:
		return Money{Amount: strconv.FormatInt(v, 10), Currency: fallbackCurrency}
	case json.Number:
		return Money{Amount: v.String(), Currency: fallbackCurrency}
	case string:
		if v == "" {
			return Money{Amount: "0", Currency: fallbackCurrency}
		}
		return Money{Amount: v, Currency: fallbackCurrency}
	case map[string]any:
		amount, ok := v["amount"]
		if !ok || amount == nil {
			amount = v["value"]
		}
		currency := fallbackCurrency
		if c, ok := v["currency"].(string); ok && c != "" {
			currency = c
		}
		return NormalizeMoney(amount, currency)
	default:
		return Money{Amount: "0", Currency: fallbackCurrency}
	}
}

var currencySymbols = map[string]string{
	"INR": "₹",
	"USD": "$",
	"EUR": "€",
}

// FormatAmount renders a Money for display: "Free" when zero, otherwise a
// currency-prefixed two-decimal string.
func FormatAmount(m Money) string {
	d, err := decimal.NewFromString(m.Amount)
	if err != nil {
		return m.Currency + " " + m.Amount
	}
	if d.IsZero() {
		return "Free"
	}
	if sym, ok := currencySymbols[m.Currency]; ok {
		return sym + d.StringFixed(2)
	}
	return m.Currency + " " + d.StringFixed(2)
}
