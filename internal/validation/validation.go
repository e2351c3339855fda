package validation

import (
	"strings"

	"storefront-backend/internal/dto"

	validatorv10 "github.com/go-playground/validator/v10"
)

// SupportedCountry is the only shipping destination the storefront serves.
const SupportedCountry = "IN"

// New returns a configured validator with the checkout-update struct rule
// registered.
func New() *validatorv10.Validate {
	v := validatorv10.New()
	v.RegisterStructValidation(updateCheckoutStructValidation, dto.UpdateCheckoutRequest{})
	return v
}

// CountryAllowed reports whether the given shipping country resolves to the
// supported one. Empty input is allowed and later normalized to the
// supported code.
func CountryAllowed(country string) bool {
	switch strings.ToUpper(strings.TrimSpace(country)) {
	case "", SupportedCountry, "INDIA":
		return true
	default:
		return false
	}
}

// NormalizeCountry maps any accepted spelling to the canonical country code.
func NormalizeCountry(country string) string {
	return SupportedCountry
}

func updateCheckoutStructValidation(sl validatorv10.StructLevel) {
	req := sl.Current().Interface().(dto.UpdateCheckoutRequest)
	if req.ShippingAddress == nil {
		return
	}
	if !CountryAllowed(req.ShippingAddress.Country) {
		sl.ReportError(req.ShippingAddress.Country, "shippingAddress.country", "Country",
			"supported_country", SupportedCountry)
	}
}
