package commerce

// PriceSummary is the normalized totals block attached to every checkout
// response, regardless of which shape the platform returned them in.
type PriceSummary struct {
	Subtotal Money `json:"subtotal"`
	Tax      Money `json:"tax"`
	Shipping Money `json:"shipping"`
	Discount Money `json:"discount"`
	Total    Money `json:"total"`
}

// LineItem is one purchasable row of a checkout or order.
type LineItem struct {
	ProductID string `json:"productId"`
	Title     string `json:"title"`
	Quantity  int    `json:"quantity"`
	UnitPrice Money  `json:"unitPrice"`
}

// CheckoutView is the canonical checkout representation served to clients.
type CheckoutView struct {
	CheckoutID      string           `json:"checkoutId"`
	Email           string           `json:"email,omitempty"`
	Phone           string           `json:"phone,omitempty"`
	Items           []LineItem       `json:"items"`
	Pricing         PriceSummary     `json:"pricing"`
	ShippingOptions []ShippingOption `json:"shippingOptions"`
}

// NormalizeCheckout reshapes a raw platform checkout payload into a
// CheckoutView. Totals may arrive flat on the root or nested under a
// pricing container; either way every Money field comes out as a string
// amount and the shipping list is non-empty.
func NormalizeCheckout(raw map[string]any, fallbackCurrency string) CheckoutView {
	if raw == nil {
		raw = map[string]any{}
	}
	currency := fallbackCurrency
	if c := stringField(raw, "currency", "currencyCode"); c != "" {
		currency = c
	}
	return CheckoutView{
		CheckoutID:      stringField(raw, "checkoutId", "id"),
		Email:           stringField(raw, "email"),
		Phone:           stringField(raw, "phone", "mobile"),
		Items:           normalizeItems(raw, currency),
		Pricing:         NormalizeTotals(raw, currency),
		ShippingOptions: BuildShippingOptions(raw, currency),
	}
}

// NormalizeTotals extracts the price summary. Each field is tried under the
// key variants the platform has been seen to use, then defaulted to zero.
func NormalizeTotals(raw map[string]any, currency string) PriceSummary {
	totals := raw
	if nested, ok := raw["priceSummary"].(map[string]any); ok {
		totals = nested
	} else if nested, ok := raw["pricing"].(map[string]any); ok {
		totals = nested
	}
	return PriceSummary{
		Subtotal: NormalizeMoney(pickField(totals, "subTotal", "subtotal"), currency),
		Tax:      NormalizeMoney(pickField(totals, "tax", "totalTax"), currency),
		Shipping: NormalizeMoney(pickField(totals, "shipping", "shippingAmount", "deliveryCharge"), currency),
		Discount: NormalizeMoney(pickField(totals, "discount", "totalDiscount"), currency),
		Total:    NormalizeMoney(pickField(totals, "total", "totalAmount", "grandTotal"), currency),
	}
}

func normalizeItems(raw map[string]any, currency string) []LineItem {
	var items []LineItem
	for _, iv := range listField(raw, "items", "lineItems") {
		entry, ok := iv.(map[string]any)
		if !ok {
			continue
		}
		items = append(items, LineItem{
			ProductID: stringField(entry, "productId", "product", "sku"),
			Title:     stringField(entry, "title", "name"),
			Quantity:  intField(entry, "quantity", "qty"),
			UnitPrice: NormalizeMoney(pickField(entry, "price", "unitPrice", "amount"), currency),
		})
	}
	return items
}
