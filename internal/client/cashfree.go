package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"storefront-backend/internal/config"
)

// CashfreeClient creates hosted payment sessions on the Cashfree gateway.
// Payment completion comes back asynchronously through the webhook route.
type CashfreeClient interface {
	CreatePaymentSession(ctx context.Context, req *CashfreeSessionRequest) (*CashfreeSessionResponse, error)
}

type CashfreeSessionRequest struct {
	CheckoutID    string
	Amount        string
	Currency      string
	CustomerEmail string
	CustomerPhone string
}

type CashfreeSessionResponse struct {
	GatewayOrderID string
	PaymentLink    string
}

type cashfreeClientImpl struct {
	httpClient *http.Client
	baseApiURL string
	appID      string
	secretKey  string
	returnURL  string
	nowFunc    func() time.Time
}

func NewCashfreeClient(cfg *config.Cashfree) CashfreeClient {
	return &cashfreeClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseApiURL: cfg.BaseApiURL,
		appID:      cfg.AppID,
		secretKey:  cfg.SecretKey,
		returnURL:  cfg.ReturnURL,
		nowFunc:    time.Now,
	}
}

func (c *cashfreeClientImpl) CreatePaymentSession(ctx context.Context, sessionReq *CashfreeSessionRequest) (*CashfreeSessionResponse, error) {
	// The gateway requires a unique order id per attempt; the checkout id
	// plus a millisecond timestamp keeps it unique while letting the
	// webhook handler recover the checkout id later.
	gatewayOrderID := fmt.Sprintf("%s-%d", sessionReq.CheckoutID, c.nowFunc().UnixMilli())

	payload := map[string]any{
		"order_id":       gatewayOrderID,
		"order_amount":   sessionReq.Amount,
		"order_currency": sessionReq.Currency,
		"customer_details": map[string]string{
			"customer_email": sessionReq.CustomerEmail,
			"customer_phone": sessionReq.CustomerPhone,
		},
		"order_meta": map[string]string{
			"return_url": c.returnURL + "?checkout_id=" + sessionReq.CheckoutID,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal req payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseApiURL+"/pg/orders", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-client-id", c.appID)
	req.Header.Set("x-client-secret", c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("cashfree error %d: %s", resp.StatusCode, string(b))
	}

	var result struct {
		OrderID     string `json:"order_id"`
		PaymentLink string `json:"payment_link"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode cashfree response: %w", err)
	}
	if result.OrderID == "" {
		result.OrderID = gatewayOrderID
	}

	return &CashfreeSessionResponse{
		GatewayOrderID: result.OrderID,
		PaymentLink:    result.PaymentLink,
	}, nil
}

// CashfreeWebhookEvent is the gateway's server-to-server payment
// notification. Amount may arrive as a number or a string depending on the
// gateway API version.
type CashfreeWebhookEvent struct {
	OrderID     string          `json:"order_id"`
	OrderStatus string          `json:"order_status"`
	PaymentID   string          `json:"payment_id"`
	OrderAmount json.RawMessage `json:"order_amount"`
	Currency    string          `json:"order_currency"`
}

// AmountString renders the reported paid amount as a decimal string,
// defaulting to "0" when the field is absent or unreadable.
func (e *CashfreeWebhookEvent) AmountString() string {
	if len(e.OrderAmount) == 0 {
		return "0"
	}
	var asString string
	if err := json.Unmarshal(e.OrderAmount, &asString); err == nil {
		if asString == "" {
			return "0"
		}
		return asString
	}
	var asNumber float64
	if err := json.Unmarshal(e.OrderAmount, &asNumber); err == nil {
		return strconv.FormatFloat(asNumber, 'f', -1, 64)
	}
	return "0"
}
