package service

import (
	"context"
	"fmt"

	"storefront-backend/internal/client"
	"storefront-backend/internal/commerce"

	"go.uber.org/zap"
)

// OrderService owns the reconciliation gate: no matter how many completion
// triggers fire for a checkout, at most one platform order comes out.
type OrderService interface {
	EnsureOrder(ctx context.Context, checkoutID string, payment commerce.PaymentInfo) (*commerce.OrderRef, error)
	GetOrder(ctx context.Context, orderID string) (*commerce.OrderView, error)
	ListMemberOrders(ctx context.Context, memberToken string) ([]commerce.OrderView, error)
}

type orderServiceImpl struct {
	commerceClient client.CommerceClient
	currency       string
	logger         *zap.Logger
}

func NewOrderService(commerceClient client.CommerceClient, currency string, logger *zap.Logger) OrderService {
	return &orderServiceImpl{
		commerceClient: commerceClient,
		currency:       currency,
		logger:         logger,
	}
}

// EnsureOrder converts a paid checkout into a platform order exactly once.
//
// The platform's order store is the single arbiter: every trigger re-checks
// for an existing order immediately before creating, and treats "already
// exists" as success. Two triggers can still pass the check concurrently and
// both attempt creation; whichever loses re-queries before reporting an
// error, so both converge on the same order id.
func (s *orderServiceImpl) EnsureOrder(ctx context.Context, checkoutID string, payment commerce.PaymentInfo) (*commerce.OrderRef, error) {
	if checkoutID == "" {
		return nil, ErrMissingCheckoutID
	}

	existing, err := s.commerceClient.FindOrderByCheckoutID(ctx, checkoutID)
	if err != nil {
		// lookup failure is not fatal: creation below still converges
		s.logger.Warn("order lookup failed, attempting create",
			zap.String("checkout_id", checkoutID), zap.Error(err))
	}
	if existing != nil {
		ref := commerce.OrderRefFrom(existing)
		s.logger.Info("order already exists for checkout",
			zap.String("checkout_id", checkoutID), zap.String("order_id", ref.OrderID))
		return &ref, nil
	}

	created, err := s.commerceClient.CreateOrder(ctx, checkoutID, payment)
	if err != nil {
		// a concurrent trigger may have won the race; re-query before
		// reporting failure to the caller
		if again, qerr := s.commerceClient.FindOrderByCheckoutID(ctx, checkoutID); qerr == nil && again != nil {
			ref := commerce.OrderRefFrom(again)
			s.logger.Info("create raced, resolved to existing order",
				zap.String("checkout_id", checkoutID), zap.String("order_id", ref.OrderID))
			return &ref, nil
		}
		return nil, fmt.Errorf("create order for checkout %s: %w", checkoutID, err)
	}

	ref := commerce.OrderRefFrom(created)
	s.logger.Info("order created",
		zap.String("checkout_id", checkoutID),
		zap.String("order_id", ref.OrderID),
		zap.String("provider", payment.Provider))
	return &ref, nil
}

func (s *orderServiceImpl) GetOrder(ctx context.Context, orderID string) (*commerce.OrderView, error) {
	raw, err := s.commerceClient.GetOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	view := commerce.NormalizeOrder(raw, s.currency)
	return &view, nil
}

func (s *orderServiceImpl) ListMemberOrders(ctx context.Context, memberToken string) ([]commerce.OrderView, error) {
	raws, err := s.commerceClient.ListMemberOrders(ctx, memberToken)
	if err != nil {
		return nil, fmt.Errorf("list member orders: %w", err)
	}
	views := make([]commerce.OrderView, 0, len(raws))
	for _, raw := range raws {
		views = append(views, commerce.NormalizeOrder(raw, s.currency))
	}
	return views, nil
}
