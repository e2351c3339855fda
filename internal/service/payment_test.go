package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"storefront-backend/internal/client"
	"storefront-backend/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newPaymentService(fake *fakeCommerceClient) (PaymentService, *fakeWebhookEventRepo, *fakeCashfreeClient) {
	orderSvc := NewOrderService(fake, "INR", zap.NewNop())
	events := newFakeWebhookEventRepo()
	cashfree := &fakeCashfreeClient{}
	return NewPaymentService(fake, cashfree, orderSvc, events, "INR", zap.NewNop()), events, cashfree
}

func decodeWebhookEvent(t *testing.T, raw string) *client.CashfreeWebhookEvent {
	t.Helper()
	var event client.CashfreeWebhookEvent
	require.NoError(t, json.Unmarshal([]byte(raw), &event))
	return &event
}

func TestHandleCashfreeWebhook_DeliveredTwiceCreatesOneOrder(t *testing.T) {
	fake := newFakeCommerceClient()
	svc, _, _ := newPaymentService(fake)

	event := decodeWebhookEvent(t, `{
		"order_id": "abc-123-1700000000000",
		"order_status": "PAID",
		"payment_id": "pay_1",
		"order_amount": 499
	}`)

	first, err := svc.HandleCashfreeWebhook(context.Background(), event)
	require.NoError(t, err)
	require.NotNil(t, first)

	// redelivery resolves to the same order without a second create
	second, err := svc.HandleCashfreeWebhook(context.Background(), event)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, first.OrderID, second.OrderID)
	assert.Equal(t, 1, fake.createCalls)

	// the checkout id was recovered by stripping the timestamp suffix
	payment := fake.payments["abc-123"]
	assert.Equal(t, "cashfree", payment.Provider)
	assert.Equal(t, "pay_1", payment.TransactionID)
	assert.Equal(t, "499", payment.Amount)
	assert.Equal(t, "INR", payment.Currency)
}

func TestHandleCashfreeWebhook_NonPaidStatusIgnored(t *testing.T) {
	fake := newFakeCommerceClient()
	svc, _, _ := newPaymentService(fake)

	for _, status := range []string{"ACTIVE", "EXPIRED", "FAILED", ""} {
		event := decodeWebhookEvent(t, `{"order_id": "chk_1-1700000000000", "payment_id": "pay_x"}`)
		event.OrderStatus = status

		ref, err := svc.HandleCashfreeWebhook(context.Background(), event)
		assert.NoError(t, err, "status %q must be acked, not errored", status)
		assert.Nil(t, ref)
	}
	assert.Zero(t, fake.createCalls)
}

func TestHandleCashfreeWebhook_MissingOrderIDRejected(t *testing.T) {
	fake := newFakeCommerceClient()
	svc, _, _ := newPaymentService(fake)

	event := decodeWebhookEvent(t, `{"order_status": "PAID", "payment_id": "pay_1"}`)
	_, err := svc.HandleCashfreeWebhook(context.Background(), event)
	assert.ErrorIs(t, err, ErrMissingCheckoutID)
	assert.Zero(t, fake.createCalls)
}

func TestHandleCashfreeWebhook_DefaultsAmountAndTransactionID(t *testing.T) {
	fake := newFakeCommerceClient()
	svc, _, _ := newPaymentService(fake)

	event := decodeWebhookEvent(t, `{"order_id": "chk_7-1700000000000", "order_status": "PAID"}`)
	ref, err := svc.HandleCashfreeWebhook(context.Background(), event)
	require.NoError(t, err)
	require.NotNil(t, ref)

	payment := fake.payments["chk_7"]
	assert.Equal(t, "0", payment.Amount)
	assert.Equal(t, "cashfree-chk_7", payment.TransactionID)
}

func TestHandleCashfreeWebhook_FailureLeftForRedelivery(t *testing.T) {
	fake := newFakeCommerceClient()
	fake.createErr = errors.New("platform down")
	svc, events, _ := newPaymentService(fake)

	event := decodeWebhookEvent(t, `{
		"order_id": "chk_1-1700000000000",
		"order_status": "PAID",
		"payment_id": "pay_1"
	}`)

	_, err := svc.HandleCashfreeWebhook(context.Background(), event)
	require.Error(t, err)

	// event stays unmarked so the gateway's retry can complete the order
	seen, _ := events.Exists("pay_1")
	assert.False(t, seen)

	fake.createErr = nil
	ref, err := svc.HandleCashfreeWebhook(context.Background(), event)
	require.NoError(t, err)
	assert.NotNil(t, ref)
}

func TestPlaceOrder_COD(t *testing.T) {
	fake := newFakeCommerceClient()
	svc, _, _ := newPaymentService(fake)

	resp, err := svc.PlaceOrder(context.Background(), &dto.PlaceOrderRequest{
		CheckoutID:    "chk_1",
		PaymentMethod: "cod",
	})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	require.NotNil(t, resp.Order)

	payment := fake.payments["chk_1"]
	assert.Equal(t, "cod", payment.Provider)
	assert.Empty(t, payment.TransactionID)
	assert.Empty(t, payment.Amount)
}

func TestPlaceOrder_PhonePeUsesCheckoutTotal(t *testing.T) {
	fake := newFakeCommerceClient()
	fake.checkouts["chk_1"] = map[string]any{
		"checkoutId": "chk_1",
		"total":      float64(1260),
	}
	svc, _, _ := newPaymentService(fake)

	resp, err := svc.PlaceOrder(context.Background(), &dto.PlaceOrderRequest{
		CheckoutID:    "chk_1",
		PaymentMethod: "phonepe",
	})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)

	payment := fake.payments["chk_1"]
	assert.Equal(t, "phonepe", payment.Provider)
	assert.Equal(t, "phonepe-chk_1", payment.TransactionID)
	assert.Equal(t, "1260", payment.Amount)
	assert.Equal(t, "INR", payment.Currency)
}

func TestPlaceOrder_PhonePeCreateFailureReportsProcessing(t *testing.T) {
	fake := newFakeCommerceClient()
	fake.createErr = errors.New("platform down")
	svc, _, _ := newPaymentService(fake)

	// the customer already paid; never surface a hard failure here
	resp, err := svc.PlaceOrder(context.Background(), &dto.PlaceOrderRequest{
		CheckoutID:    "chk_1",
		PaymentMethod: "phonepe",
	})
	require.NoError(t, err)
	assert.Equal(t, "processing", resp.Status)
	assert.Nil(t, resp.Order)
}

func TestPlaceOrder_CODFailurePropagates(t *testing.T) {
	fake := newFakeCommerceClient()
	fake.createErr = errors.New("platform down")
	svc, _, _ := newPaymentService(fake)

	// no payment has happened for COD, so the failure is the caller's to see
	_, err := svc.PlaceOrder(context.Background(), &dto.PlaceOrderRequest{
		CheckoutID:    "chk_1",
		PaymentMethod: "cod",
	})
	assert.Error(t, err)
}

func TestPlaceOrder_UnsupportedMethod(t *testing.T) {
	svc, _, _ := newPaymentService(newFakeCommerceClient())

	_, err := svc.PlaceOrder(context.Background(), &dto.PlaceOrderRequest{
		CheckoutID:    "chk_1",
		PaymentMethod: "bitcoin",
	})
	assert.ErrorIs(t, err, ErrUnsupportedPaymentMethod)
}

func TestPlaceOrder_MissingCheckoutID(t *testing.T) {
	svc, _, _ := newPaymentService(newFakeCommerceClient())

	_, err := svc.PlaceOrder(context.Background(), &dto.PlaceOrderRequest{PaymentMethod: "cod"})
	assert.ErrorIs(t, err, ErrMissingCheckoutID)
}

func TestStartCashfreePayment(t *testing.T) {
	fake := newFakeCommerceClient()
	fake.checkouts["chk_1"] = map[string]any{
		"checkoutId": "chk_1",
		"email":      "a@b.in",
		"phone":      "9999999999",
		"total":      float64(499),
	}
	svc, _, cashfree := newPaymentService(fake)

	resp, err := svc.StartCashfreePayment(context.Background(), "chk_1")
	require.NoError(t, err)
	assert.Equal(t, "https://payments.example/session", resp.PaymentLink)

	require.NotNil(t, cashfree.lastRequest)
	assert.Equal(t, "499", cashfree.lastRequest.Amount)
	assert.Equal(t, "INR", cashfree.lastRequest.Currency)
	assert.Equal(t, "a@b.in", cashfree.lastRequest.CustomerEmail)
}
