package handler

import (
	"net/http"

	"storefront-backend/internal/middleware"
	"storefront-backend/internal/service"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()

	orderID := c.QueryParam("orderId")
	if orderID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing orderId")
	}

	view, err := h.orderService.GetOrder(ctx, orderID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

func (h *OrderHandler) ListAccountOrders(c echo.Context) error {
	ctx := c.Request().Context()

	memberToken, ok := c.Get(middleware.MemberTokenKey).(string)
	if !ok || memberToken == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "not logged in")
	}

	views, err := h.orderService.ListMemberOrders(ctx, memberToken)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}
