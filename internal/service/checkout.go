package service

import (
	"context"
	"fmt"

	"storefront-backend/internal/client"
	"storefront-backend/internal/commerce"
	"storefront-backend/internal/dto"
	"storefront-backend/internal/validation"

	validatorv10 "github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// CheckoutService fronts the platform's checkout CRUD. Every read goes
// through the normalizer so clients always see canonical totals and a
// non-empty shipping list.
type CheckoutService interface {
	InitCheckout(ctx context.Context, cartID string) (*commerce.CheckoutView, error)
	GetCheckout(ctx context.Context, checkoutID string) (*commerce.CheckoutView, error)
	UpdateCheckout(ctx context.Context, req *dto.UpdateCheckoutRequest) (*commerce.CheckoutView, error)
	ApplyDiscount(ctx context.Context, checkoutID, code string) (*commerce.CheckoutView, error)
}

type checkoutServiceImpl struct {
	commerceClient client.CommerceClient
	validate       *validatorv10.Validate
	currency       string
	logger         *zap.Logger
}

func NewCheckoutService(commerceClient client.CommerceClient, validate *validatorv10.Validate, currency string, logger *zap.Logger) CheckoutService {
	return &checkoutServiceImpl{
		commerceClient: commerceClient,
		validate:       validate,
		currency:       currency,
		logger:         logger,
	}
}

func (s *checkoutServiceImpl) InitCheckout(ctx context.Context, cartID string) (*commerce.CheckoutView, error) {
	raw, err := s.commerceClient.CreateCheckout(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("create checkout: %w", err)
	}
	view := commerce.NormalizeCheckout(raw, s.currency)
	return &view, nil
}

func (s *checkoutServiceImpl) GetCheckout(ctx context.Context, checkoutID string) (*commerce.CheckoutView, error) {
	raw, err := s.commerceClient.GetCheckout(ctx, checkoutID)
	if err != nil {
		return nil, fmt.Errorf("get checkout: %w", err)
	}
	view := commerce.NormalizeCheckout(raw, s.currency)
	return &view, nil
}

// UpdateCheckout validates before touching the platform: a rejected update
// (bad email, unsupported country) must cause no upstream mutation.
func (s *checkoutServiceImpl) UpdateCheckout(ctx context.Context, req *dto.UpdateCheckoutRequest) (*commerce.CheckoutView, error) {
	if err := s.validate.Struct(req); err != nil {
		if req.ShippingAddress != nil && !validation.CountryAllowed(req.ShippingAddress.Country) {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedCountry, req.ShippingAddress.Country)
		}
		return nil, err
	}

	patch := map[string]any{}
	if req.Email != "" {
		patch["email"] = req.Email
	}
	if req.Phone != "" {
		patch["phone"] = req.Phone
	}
	if req.ShippingAddress != nil {
		addr := *req.ShippingAddress
		addr.Country = validation.NormalizeCountry(addr.Country)
		patch["shippingAddress"] = addr
	}
	if req.ShippingOptionID != "" {
		patch["shippingOptionId"] = req.ShippingOptionID
	}

	raw, err := s.commerceClient.UpdateCheckout(ctx, req.CheckoutID, patch)
	if err != nil {
		return nil, fmt.Errorf("update checkout: %w", err)
	}
	view := commerce.NormalizeCheckout(raw, s.currency)
	return &view, nil
}

func (s *checkoutServiceImpl) ApplyDiscount(ctx context.Context, checkoutID, code string) (*commerce.CheckoutView, error) {
	raw, err := s.commerceClient.ApplyDiscount(ctx, checkoutID, code)
	if err != nil {
		return nil, fmt.Errorf("apply discount: %w", err)
	}
	view := commerce.NormalizeCheckout(raw, s.currency)
	return &view, nil
}
