package service

import (
	"context"
	"fmt"
	"sync"

	"storefront-backend/internal/client"
	"storefront-backend/internal/commerce"
)

// fakeCommerceClient is an in-memory stand-in for the platform. Order state
// lives in `orders` keyed by checkout id, mirroring the platform's role as
// the single source of truth. Unused interface methods panic via the
// embedded nil interface.
type fakeCommerceClient struct {
	client.CommerceClient

	mu          sync.Mutex
	orders      map[string]map[string]any
	checkouts   map[string]map[string]any
	payments    map[string]commerce.PaymentInfo
	createCalls int
	updateCalls []map[string]any

	findErr        error
	createErr      error
	getCheckoutErr error
	updateErr      error
	// when set, the next create fails but still writes the order,
	// simulating a lost race with a concurrent trigger
	createFailsButWrites bool
}

func newFakeCommerceClient() *fakeCommerceClient {
	return &fakeCommerceClient{
		orders:    map[string]map[string]any{},
		checkouts: map[string]map[string]any{},
		payments:  map[string]commerce.PaymentInfo{},
	}
}

func (f *fakeCommerceClient) FindOrderByCheckoutID(ctx context.Context, checkoutID string) (map[string]any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.orders[checkoutID], nil
}

func (f *fakeCommerceClient) CreateOrder(ctx context.Context, checkoutID string, payment commerce.PaymentInfo) (map[string]any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, exists := f.orders[checkoutID]; exists {
		return nil, fmt.Errorf("duplicate order for checkout %s", checkoutID)
	}
	order := map[string]any{
		"orderId":     fmt.Sprintf("ord_%d", f.createCalls),
		"orderNumber": fmt.Sprintf("100%d", f.createCalls),
	}
	f.orders[checkoutID] = order
	f.payments[checkoutID] = payment
	if f.createFailsButWrites {
		return nil, fmt.Errorf("platform timeout after write")
	}
	return order, nil
}

func (f *fakeCommerceClient) GetCheckout(ctx context.Context, checkoutID string) (map[string]any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getCheckoutErr != nil {
		return nil, f.getCheckoutErr
	}
	if chk, ok := f.checkouts[checkoutID]; ok {
		return chk, nil
	}
	return map[string]any{"checkoutId": checkoutID}, nil
}

func (f *fakeCommerceClient) CreateCheckout(ctx context.Context, cartID string) (map[string]any, error) {
	return map[string]any{"checkoutId": "chk_" + cartID}, nil
}

func (f *fakeCommerceClient) UpdateCheckout(ctx context.Context, checkoutID string, patch map[string]any) (map[string]any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.updateCalls = append(f.updateCalls, patch)
	return map[string]any{"checkoutId": checkoutID}, nil
}

func (f *fakeCommerceClient) ApplyDiscount(ctx context.Context, checkoutID, code string) (map[string]any, error) {
	return map[string]any{"checkoutId": checkoutID, "discount": 100}, nil
}

func (f *fakeCommerceClient) GetOrder(ctx context.Context, orderID string) (map[string]any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, order := range f.orders {
		if order["orderId"] == orderID {
			return order, nil
		}
	}
	return nil, fmt.Errorf("order %s not found", orderID)
}

// fakeWebhookEventRepo is an in-memory processed-event log.
type fakeWebhookEventRepo struct {
	mu   sync.Mutex
	seen map[string]bool
}

func newFakeWebhookEventRepo() *fakeWebhookEventRepo {
	return &fakeWebhookEventRepo{seen: map[string]bool{}}
}

func (r *fakeWebhookEventRepo) Exists(eventID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.seen[eventID], nil
}

func (r *fakeWebhookEventRepo) MarkProcessed(eventID, provider, eventType string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen[eventID] = true
	return nil
}

// fakeCashfreeClient returns a canned hosted-session response.
type fakeCashfreeClient struct {
	lastRequest *client.CashfreeSessionRequest
}

func (f *fakeCashfreeClient) CreatePaymentSession(ctx context.Context, req *client.CashfreeSessionRequest) (*client.CashfreeSessionResponse, error) {
	f.lastRequest = req
	return &client.CashfreeSessionResponse{
		GatewayOrderID: req.CheckoutID + "-1700000000000",
		PaymentLink:    "https://payments.example/session",
	}, nil
}
