package service

import "errors"

var (
	// ErrMissingCheckoutID means no checkout id could be resolved from the
	// request or payment payload. Caller error, not retryable.
	ErrMissingCheckoutID = errors.New("checkout id missing or unresolvable")

	// ErrUnsupportedCountry rejects shipping destinations outside the
	// storefront's single supported country.
	ErrUnsupportedCountry = errors.New("shipping country not supported")

	// ErrUnsupportedPaymentMethod rejects unknown payment method tags.
	ErrUnsupportedPaymentMethod = errors.New("unsupported payment method")
)
