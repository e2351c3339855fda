package dto

import "storefront-backend/internal/commerce"

type Address struct {
	Name       string `json:"name"`
	Line1      string `json:"line1" validate:"omitempty,max=200"`
	Line2      string `json:"line2" validate:"omitempty,max=200"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode" validate:"omitempty,numeric,len=6"`
	Country    string `json:"country"`
}

type InitCheckoutRequest struct {
	CartID string `json:"cartId" validate:"required"`
}

type UpdateCheckoutRequest struct {
	CheckoutID       string   `json:"checkoutId" validate:"required"`
	Email            string   `json:"email" validate:"omitempty,email"`
	Phone            string   `json:"phone" validate:"omitempty,min=10,max=15"`
	ShippingAddress  *Address `json:"shippingAddress"`
	ShippingOptionID string   `json:"shippingOptionId"`
}

type ApplyDiscountRequest struct {
	CheckoutID string `json:"checkoutId" validate:"required"`
	Code       string `json:"code" validate:"required"`
}

type PlaceOrderRequest struct {
	CheckoutID    string `json:"checkoutId" validate:"required"`
	PaymentMethod string `json:"paymentMethod" validate:"required"`
}

type PlaceOrderResponse struct {
	Status string             `json:"status"`
	Order  *commerce.OrderRef `json:"order,omitempty"`
}

type PayRequest struct {
	CheckoutID string `json:"checkoutId" validate:"required"`
}

type PayResponse struct {
	GatewayOrderID string `json:"gatewayOrderId"`
	PaymentLink    string `json:"paymentLink"`
}

type AddCartItemRequest struct {
	CartID    string `json:"cartId" validate:"required"`
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}
