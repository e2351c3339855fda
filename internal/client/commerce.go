package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"storefront-backend/internal/commerce"
	"storefront-backend/internal/config"

	"github.com/google/uuid"
)

// CommerceClient talks to the external commerce platform. The platform owns
// all catalog, cart, checkout and order state; this client only moves JSON
// back and forth.
type CommerceClient interface {
	ListProducts(ctx context.Context) ([]map[string]any, error)
	GetProduct(ctx context.Context, productID string) (map[string]any, error)

	GetCart(ctx context.Context, cartID string) (map[string]any, error)
	AddCartItem(ctx context.Context, cartID, productID string, quantity int) (map[string]any, error)

	CreateCheckout(ctx context.Context, cartID string) (map[string]any, error)
	GetCheckout(ctx context.Context, checkoutID string) (map[string]any, error)
	UpdateCheckout(ctx context.Context, checkoutID string, patch map[string]any) (map[string]any, error)
	ApplyDiscount(ctx context.Context, checkoutID, code string) (map[string]any, error)

	FindOrderByCheckoutID(ctx context.Context, checkoutID string) (map[string]any, error)
	CreateOrder(ctx context.Context, checkoutID string, payment commerce.PaymentInfo) (map[string]any, error)
	GetOrder(ctx context.Context, orderID string) (map[string]any, error)
	ListMemberOrders(ctx context.Context, memberToken string) ([]map[string]any, error)

	MemberLogin(ctx context.Context, email, password string) (*MemberSession, error)
}

// MemberSession is the platform-issued member token plus identity fields.
type MemberSession struct {
	Token string
	Email string
	Name  string
}

type commerceClientImpl struct {
	httpClient *http.Client
	baseApiURL string
	storeID    string
	apiKey     string
}

func NewCommerceClient(cfg *config.Commerce) CommerceClient {
	return &commerceClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseApiURL: cfg.BaseApiURL,
		storeID:    cfg.StoreID,
		apiKey:     cfg.APIKey,
	}
}

func (c *commerceClientImpl) do(ctx context.Context, method, path string, payload any, memberToken string) (map[string]any, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal req payload: %w", err)
		}
		body = bytes.NewBuffer(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseApiURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("X-Store-Id", c.storeID)
	req.Header.Set("X-Request-Id", uuid.NewString())
	if memberToken != "" {
		req.Header.Set("Authorization", "Bearer "+memberToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("commerce platform error %d: %s", resp.StatusCode, string(b))
	}

	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode commerce response: %w", err)
	}
	return result, nil
}

func (c *commerceClientImpl) ListProducts(ctx context.Context) ([]map[string]any, error) {
	result, err := c.do(ctx, http.MethodGet, "/v1/products", nil, "")
	if err != nil {
		return nil, err
	}
	return listOf(result, "products", "items"), nil
}

func (c *commerceClientImpl) GetProduct(ctx context.Context, productID string) (map[string]any, error) {
	return c.do(ctx, http.MethodGet, "/v1/products/"+url.PathEscape(productID), nil, "")
}

func (c *commerceClientImpl) GetCart(ctx context.Context, cartID string) (map[string]any, error) {
	return c.do(ctx, http.MethodGet, "/v1/carts/"+url.PathEscape(cartID), nil, "")
}

func (c *commerceClientImpl) AddCartItem(ctx context.Context, cartID, productID string, quantity int) (map[string]any, error) {
	payload := map[string]any{
		"productId": productID,
		"quantity":  quantity,
	}
	return c.do(ctx, http.MethodPost, "/v1/carts/"+url.PathEscape(cartID)+"/items", payload, "")
}

func (c *commerceClientImpl) CreateCheckout(ctx context.Context, cartID string) (map[string]any, error) {
	payload := map[string]any{"cartId": cartID}
	return c.do(ctx, http.MethodPost, "/v1/checkouts", payload, "")
}

func (c *commerceClientImpl) GetCheckout(ctx context.Context, checkoutID string) (map[string]any, error) {
	return c.do(ctx, http.MethodGet, "/v1/checkouts/"+url.PathEscape(checkoutID), nil, "")
}

func (c *commerceClientImpl) UpdateCheckout(ctx context.Context, checkoutID string, patch map[string]any) (map[string]any, error) {
	return c.do(ctx, http.MethodPut, "/v1/checkouts/"+url.PathEscape(checkoutID), patch, "")
}

func (c *commerceClientImpl) ApplyDiscount(ctx context.Context, checkoutID, code string) (map[string]any, error) {
	payload := map[string]any{"code": code}
	return c.do(ctx, http.MethodPost, "/v1/checkouts/"+url.PathEscape(checkoutID)+"/discounts", payload, "")
}

// FindOrderByCheckoutID returns the platform order created from the given
// checkout, or nil when none exists yet. This lookup is the de-duplication
// check the reconciliation gate relies on.
func (c *commerceClientImpl) FindOrderByCheckoutID(ctx context.Context, checkoutID string) (map[string]any, error) {
	result, err := c.do(ctx, http.MethodGet, "/v1/orders?checkoutId="+url.QueryEscape(checkoutID), nil, "")
	if err != nil {
		return nil, err
	}
	orders := listOf(result, "orders", "items")
	if len(orders) == 0 {
		return nil, nil
	}
	return orders[0], nil
}

func (c *commerceClientImpl) CreateOrder(ctx context.Context, checkoutID string, payment commerce.PaymentInfo) (map[string]any, error) {
	payload := map[string]any{
		"checkoutId":  checkoutID,
		"paymentInfo": payment,
	}
	return c.do(ctx, http.MethodPost, "/v1/orders", payload, "")
}

func (c *commerceClientImpl) GetOrder(ctx context.Context, orderID string) (map[string]any, error) {
	return c.do(ctx, http.MethodGet, "/v1/orders/"+url.PathEscape(orderID), nil, "")
}

func (c *commerceClientImpl) ListMemberOrders(ctx context.Context, memberToken string) ([]map[string]any, error) {
	result, err := c.do(ctx, http.MethodGet, "/v1/members/orders", nil, memberToken)
	if err != nil {
		return nil, err
	}
	return listOf(result, "orders", "items"), nil
}

func (c *commerceClientImpl) MemberLogin(ctx context.Context, email, password string) (*MemberSession, error) {
	payload := map[string]any{
		"email":    email,
		"password": password,
	}
	result, err := c.do(ctx, http.MethodPost, "/v1/members/login", payload, "")
	if err != nil {
		return nil, fmt.Errorf("member login: %w", err)
	}

	token, _ := result["token"].(string)
	if token == "" {
		return nil, fmt.Errorf("member login: no token in platform response")
	}
	session := &MemberSession{Token: token}
	if member, ok := result["member"].(map[string]any); ok {
		session.Email, _ = member["email"].(string)
		session.Name, _ = member["name"].(string)
	}
	return session, nil
}

func listOf(result map[string]any, keys ...string) []map[string]any {
	for _, key := range keys {
		raw, ok := result[key].([]any)
		if !ok {
			continue
		}
		out := make([]map[string]any, 0, len(raw))
		for _, v := range raw {
			if m, ok := v.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	}
	return nil
}
