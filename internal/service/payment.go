package service

import (
	"context"
	"fmt"

	"storefront-backend/internal/client"
	"storefront-backend/internal/commerce"
	"storefront-backend/internal/dto"
	"storefront-backend/internal/repository"

	"go.uber.org/zap"
)

const (
	ProviderCOD      = "cod"
	ProviderCashfree = "cashfree"
	ProviderPhonePe  = "phonepe"

	// the gateway's "funds cleared" sentinel; every other status is
	// acknowledged and ignored
	cashfreePaidStatus = "PAID"
)

// PaymentService routes each completion trigger (manual COD, Cashfree
// webhook, PhonePe client redirect) to the reconciliation gate with the
// right paymentInfo payload.
type PaymentService interface {
	PlaceOrder(ctx context.Context, req *dto.PlaceOrderRequest) (*dto.PlaceOrderResponse, error)
	StartCashfreePayment(ctx context.Context, checkoutID string) (*dto.PayResponse, error)
	HandleCashfreeWebhook(ctx context.Context, event *client.CashfreeWebhookEvent) (*commerce.OrderRef, error)
}

type paymentServiceImpl struct {
	commerceClient   client.CommerceClient
	cashfreeClient   client.CashfreeClient
	orderService     OrderService
	webhookEventRepo repository.WebhookEventRepository
	currency         string
	logger           *zap.Logger
}

func NewPaymentService(
	commerceClient client.CommerceClient,
	cashfreeClient client.CashfreeClient,
	orderService OrderService,
	webhookEventRepo repository.WebhookEventRepository,
	currency string,
	logger *zap.Logger,
) PaymentService {
	return &paymentServiceImpl{
		commerceClient:   commerceClient,
		cashfreeClient:   cashfreeClient,
		orderService:     orderService,
		webhookEventRepo: webhookEventRepo,
		currency:         currency,
		logger:           logger,
	}
}

// PlaceOrder handles the two client-driven completion paths. COD needs no
// payment data at all. PhonePe has no server-verified confirmation: the
// client reaching the success page is the only signal, so the amount comes
// from the checkout's own normalized total and the transaction id is
// synthesized.
func (s *paymentServiceImpl) PlaceOrder(ctx context.Context, req *dto.PlaceOrderRequest) (*dto.PlaceOrderResponse, error) {
	if req.CheckoutID == "" {
		return nil, ErrMissingCheckoutID
	}

	switch req.PaymentMethod {
	case ProviderCOD:
		ref, err := s.orderService.EnsureOrder(ctx, req.CheckoutID, commerce.PaymentInfo{
			Provider: ProviderCOD,
		})
		if err != nil {
			return nil, err
		}
		return &dto.PlaceOrderResponse{Status: "confirmed", Order: ref}, nil

	case ProviderPhonePe:
		payment := commerce.PaymentInfo{
			Provider:      ProviderPhonePe,
			TransactionID: ProviderPhonePe + "-" + req.CheckoutID,
			Amount:        "0",
			Currency:      s.currency,
		}
		raw, err := s.commerceClient.GetCheckout(ctx, req.CheckoutID)
		if err != nil {
			s.logger.Warn("checkout fetch failed before phonepe order, defaulting amount",
				zap.String("checkout_id", req.CheckoutID), zap.Error(err))
		} else {
			total := commerce.NormalizeCheckout(raw, s.currency).Pricing.Total
			payment.Amount = total.Amount
			payment.Currency = total.Currency
		}

		ref, err := s.orderService.EnsureOrder(ctx, req.CheckoutID, payment)
		if err != nil {
			// the customer already paid on the hosted page; report the
			// order as processing and let webhook redelivery or a retried
			// call converge on creation
			s.logger.Error("order creation failed after phonepe redirect",
				zap.String("checkout_id", req.CheckoutID), zap.Error(err))
			return &dto.PlaceOrderResponse{Status: "processing"}, nil
		}
		return &dto.PlaceOrderResponse{Status: "confirmed", Order: ref}, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPaymentMethod, req.PaymentMethod)
	}
}

// StartCashfreePayment opens a hosted payment session for the checkout's
// current total. Completion arrives later through the webhook.
func (s *paymentServiceImpl) StartCashfreePayment(ctx context.Context, checkoutID string) (*dto.PayResponse, error) {
	if checkoutID == "" {
		return nil, ErrMissingCheckoutID
	}
	raw, err := s.commerceClient.GetCheckout(ctx, checkoutID)
	if err != nil {
		return nil, fmt.Errorf("get checkout: %w", err)
	}
	view := commerce.NormalizeCheckout(raw, s.currency)

	session, err := s.cashfreeClient.CreatePaymentSession(ctx, &client.CashfreeSessionRequest{
		CheckoutID:    checkoutID,
		Amount:        view.Pricing.Total.Amount,
		Currency:      view.Pricing.Total.Currency,
		CustomerEmail: view.Email,
		CustomerPhone: view.Phone,
	})
	if err != nil {
		return nil, fmt.Errorf("create cashfree session: %w", err)
	}

	return &dto.PayResponse{
		GatewayOrderID: session.GatewayOrderID,
		PaymentLink:    session.PaymentLink,
	}, nil
}

// HandleCashfreeWebhook processes the gateway's at-least-once payment
// notification. Non-paid statuses are acknowledged and ignored. The gateway
// order id carries the checkout id plus a timestamp suffix; recovery of the
// checkout id is what keys the reconciliation gate.
func (s *paymentServiceImpl) HandleCashfreeWebhook(ctx context.Context, event *client.CashfreeWebhookEvent) (*commerce.OrderRef, error) {
	if event.OrderStatus != cashfreePaidStatus {
		s.logger.Info("ignoring cashfree event with non-paid status",
			zap.String("gateway_order_id", event.OrderID),
			zap.String("status", event.OrderStatus))
		return nil, nil
	}

	if event.OrderID == "" {
		return nil, fmt.Errorf("%w: webhook has no order_id", ErrMissingCheckoutID)
	}
	checkoutID := commerce.RecoverCheckoutID(event.OrderID)
	if checkoutID == "" {
		return nil, fmt.Errorf("%w: webhook order_id %q", ErrMissingCheckoutID, event.OrderID)
	}

	eventID := event.PaymentID
	if eventID == "" {
		eventID = event.OrderID
	}
	seen, err := s.webhookEventRepo.Exists(eventID)
	if err != nil {
		s.logger.Warn("webhook event lookup failed", zap.String("event_id", eventID), zap.Error(err))
	}
	if seen {
		s.logger.Info("cashfree event redelivered", zap.String("event_id", eventID))
	}

	txnID := event.PaymentID
	if txnID == "" {
		txnID = ProviderCashfree + "-" + checkoutID
	}
	currency := event.Currency
	if currency == "" {
		currency = s.currency
	}

	ref, err := s.orderService.EnsureOrder(ctx, checkoutID, commerce.PaymentInfo{
		Provider:      ProviderCashfree,
		TransactionID: txnID,
		Amount:        event.AmountString(),
		Currency:      currency,
	})
	if err != nil {
		// leave the event unmarked so the gateway's redelivery retries it
		return nil, err
	}

	if !seen {
		if err := s.webhookEventRepo.MarkProcessed(eventID, ProviderCashfree, event.OrderStatus); err != nil {
			s.logger.Warn("mark webhook event processed", zap.String("event_id", eventID), zap.Error(err))
		}
	}
	return ref, nil
}
