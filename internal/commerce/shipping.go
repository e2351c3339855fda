package commerce

// ShippingOption is one selectable delivery choice, flattened from the
// platform's shipping method -> carrier service tree.
type ShippingOption struct {
	ID            string `json:"id"`
	MethodID      string `json:"methodId,omitempty"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	Cost          Money  `json:"cost"`
	FormattedCost string `json:"formattedCost"`
}

// BuildShippingOptions flattens the checkout's logistics substructure into a
// list the UI can render directly. Each shipping method contributes one
// option per carrier service, or itself when it carries no services. The
// result is never empty: a synthetic free "Standard Delivery" option is
// injected when the platform returns no usable methods.
func BuildShippingOptions(checkout map[string]any, fallbackCurrency string) []ShippingOption {
	var options []ShippingOption

	for _, mv := range shippingMethods(checkout) {
		method, ok := mv.(map[string]any)
		if !ok {
			continue
		}
		methodID := stringField(method, "id", "methodId", "code")
		methodTitle := stringField(method, "title", "name", "label")
		methodDesc := stringField(method, "description")
		methodCost := pickField(method, "cost", "price", "amount")

		services := listField(method, "carrierServices", "options", "services")
		if len(services) == 0 {
			if methodID == "" {
				continue
			}
			options = append(options, buildOption(method, methodID, methodID, methodTitle, methodDesc, methodCost, nil, fallbackCurrency))
			continue
		}

		for _, sv := range services {
			service, ok := sv.(map[string]any)
			if !ok {
				continue
			}
			id := stringField(service, "id", "code")
			if id == "" {
				id = methodID
			}
			if id == "" {
				continue
			}
			title := stringField(service, "title", "name", "label")
			if title == "" {
				title = methodTitle
			}
			desc := stringField(service, "description")
			if desc == "" {
				desc = methodDesc
			}
			// option-level price wins over option-level cost wins over the
			// parent method's cost
			cost := pickField(service, "price", "cost")
			if cost == nil {
				cost = methodCost
			}
			options = append(options, buildOption(service, id, methodID, title, desc, cost, service, fallbackCurrency))
		}
	}

	if len(options) == 0 {
		options = []ShippingOption{{
			ID:            "standard",
			Title:         "Standard Delivery",
			Cost:          Money{Amount: "0", Currency: fallbackCurrency},
			FormattedCost: "Free",
		}}
	}
	return options
}

func buildOption(src map[string]any, id, methodID, title, desc string, cost any, formattedSrc map[string]any, fallbackCurrency string) ShippingOption {
	money := NormalizeMoney(cost, fallbackCurrency)
	formatted := ""
	if formattedSrc != nil {
		formatted = stringField(formattedSrc, "formattedCost", "displayCost")
	}
	if formatted == "" {
		formatted = stringField(src, "formattedCost", "displayCost")
	}
	if formatted == "" {
		formatted = FormatAmount(money)
	}
	return ShippingOption{
		ID:            id,
		MethodID:      methodID,
		Title:         title,
		Description:   desc,
		Cost:          money,
		FormattedCost: formatted,
	}
}

func shippingMethods(checkout map[string]any) []any {
	if checkout == nil {
		return nil
	}
	if logistics, ok := checkout["logistics"].(map[string]any); ok {
		if methods := listField(logistics, "shippingMethods", "methods"); methods != nil {
			return methods
		}
	}
	return listField(checkout, "shippingMethods", "shipping_methods")
}
