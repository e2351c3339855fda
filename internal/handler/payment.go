package handler

import (
	"errors"
	"net/http"

	"storefront-backend/internal/client"
	"storefront-backend/internal/service"

	"github.com/labstack/echo/v4"
)

type PaymentHandler struct {
	paymentService service.PaymentService
}

func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// CashfreeWebhook receives the gateway's payment notifications. Delivery is
// at-least-once and unordered, so a 2xx here only means "received"; any
// non-2xx makes the gateway redeliver, which is exactly what we want for
// transient order-creation failures.
func (h *PaymentHandler) CashfreeWebhook(c echo.Context) error {
	ctx := c.Request().Context()

	var event client.CashfreeWebhookEvent
	if err := c.Bind(&event); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid webhook payload")
	}

	ref, err := h.paymentService.HandleCashfreeWebhook(ctx, &event)
	if err != nil {
		if errors.Is(err, service.ErrMissingCheckoutID) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return err
	}
	if ref == nil {
		return c.JSON(http.StatusOK, map[string]string{"status": "ignored"})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"orderId": ref.OrderID,
	})
}
