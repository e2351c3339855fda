package handler

import (
	"errors"
	"net/http"

	"storefront-backend/internal/dto"
	"storefront-backend/internal/service"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
	paymentService  service.PaymentService
}

func NewCheckoutHandler(checkoutService service.CheckoutService, paymentService service.PaymentService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		paymentService:  paymentService,
	}
}

func (h *CheckoutHandler) InitCheckout(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.InitCheckoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if req.CartID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing cartId")
	}

	view, err := h.checkoutService.InitCheckout(ctx, req.CartID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

func (h *CheckoutHandler) UpdateCheckout(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.UpdateCheckoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	view, err := h.checkoutService.UpdateCheckout(ctx, &req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, view)
}

func (h *CheckoutHandler) ApplyDiscount(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ApplyDiscountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if req.CheckoutID == "" || req.Code == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing checkoutId or code")
	}

	view, err := h.checkoutService.ApplyDiscount(ctx, req.CheckoutID, req.Code)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

func (h *CheckoutHandler) PlaceOrder(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	resp, err := h.paymentService.PlaceOrder(ctx, &req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *CheckoutHandler) Pay(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.PayRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	resp, err := h.paymentService.StartCashfreePayment(ctx, req.CheckoutID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

// mapServiceError turns caller mistakes into 400s and leaves everything
// else to echo's default 500 handling.
func mapServiceError(err error) error {
	switch {
	case errors.Is(err, service.ErrMissingCheckoutID),
		errors.Is(err, service.ErrUnsupportedCountry),
		errors.Is(err, service.ErrUnsupportedPaymentMethod):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	var verrs validatorv10.ValidationErrors
	if errors.As(err, &verrs) {
		return echo.NewHTTPError(http.StatusBadRequest, verrs.Error())
	}
	return err
}
