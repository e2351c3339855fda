package commerce

import "regexp"

// PaymentInfo is the payment payload attached to an order-creation call.
// It is built transiently per completion trigger and never persisted here.
type PaymentInfo struct {
	Provider      string `json:"provider"`
	TransactionID string `json:"transactionId,omitempty"`
	Amount        string `json:"amount,omitempty"`
	Currency      string `json:"currency,omitempty"`
}

// OrderRef identifies an order created on the platform.
type OrderRef struct {
	OrderID     string `json:"orderId"`
	OrderNumber string `json:"orderNumber,omitempty"`
}

// OrderRefFrom pulls the identifiers out of a raw platform order payload.
func OrderRefFrom(raw map[string]any) OrderRef {
	return OrderRef{
		OrderID:     stringField(raw, "orderId", "id"),
		OrderNumber: stringField(raw, "orderNumber", "number"),
	}
}

// OrderView is the confirmation-page representation of a platform order.
type OrderView struct {
	OrderID     string       `json:"orderId"`
	OrderNumber string       `json:"orderNumber,omitempty"`
	Status      string       `json:"status,omitempty"`
	Email       string       `json:"email,omitempty"`
	Items       []LineItem   `json:"items"`
	Pricing     PriceSummary `json:"pricing"`
}

// NormalizeOrder reshapes a raw platform order payload the same way
// NormalizeCheckout does for checkouts.
func NormalizeOrder(raw map[string]any, fallbackCurrency string) OrderView {
	if raw == nil {
		raw = map[string]any{}
	}
	currency := fallbackCurrency
	if c := stringField(raw, "currency", "currencyCode"); c != "" {
		currency = c
	}
	ref := OrderRefFrom(raw)
	return OrderView{
		OrderID:     ref.OrderID,
		OrderNumber: ref.OrderNumber,
		Status:      stringField(raw, "status"),
		Email:       stringField(raw, "email"),
		Items:       normalizeItems(raw, currency),
		Pricing:     NormalizeTotals(raw, currency),
	}
}

// Gateway order ids are minted as "<checkoutId>-<epoch millis>", so the
// suffix to strip is a long run of digits. The length guard keeps short
// numeric segments that belong to the checkout id itself (e.g. "abc-123")
// intact.
var txnIDSuffix = regexp.MustCompile(`-\d{10,}$`)

// RecoverCheckoutID strips the timestamp segment a gateway appends to its
// transaction id, returning the original checkout id. Ids without such a
// suffix pass through unchanged.
func RecoverCheckoutID(txnID string) string {
	return txnIDSuffix.ReplaceAllString(txnID, "")
}
