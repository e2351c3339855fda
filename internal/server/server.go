package server

import (
	"storefront-backend/internal/handler"
	appmiddleware "storefront-backend/internal/middleware"
	"storefront-backend/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

type Server struct {
	echo            *echo.Echo
	authService     service.AuthService
	checkoutHandler *handler.CheckoutHandler
	paymentHandler  *handler.PaymentHandler
	orderHandler    *handler.OrderHandler
	authHandler     *handler.AuthHandler
	catalogHandler  *handler.CatalogHandler
}

func NewServer(
	checkoutService service.CheckoutService,
	paymentService service.PaymentService,
	orderService service.OrderService,
	authService service.AuthService,
	catalogService service.CatalogService,
	logger *zap.Logger,
) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogMethod: true,
		LogStatus: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Error(v.Error),
			)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:            e,
		authService:     authService,
		checkoutHandler: handler.NewCheckoutHandler(checkoutService, paymentService),
		paymentHandler:  handler.NewPaymentHandler(paymentService),
		orderHandler:    handler.NewOrderHandler(orderService),
		authHandler:     handler.NewAuthHandler(authService),
		catalogHandler:  handler.NewCatalogHandler(catalogService),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// -------- catalog / cart --------
	api.GET("/products", s.catalogHandler.ListProducts)
	api.GET("/products/:productID", s.catalogHandler.GetProduct)
	api.GET("/cart", s.catalogHandler.GetCart)
	api.POST("/cart/items", s.catalogHandler.AddCartItem)

	// -------- checkout --------
	checkout := api.Group("/checkout")
	checkout.POST("/init", s.checkoutHandler.InitCheckout)
	checkout.POST("/update", s.checkoutHandler.UpdateCheckout)
	checkout.POST("/apply-discount", s.checkoutHandler.ApplyDiscount)
	checkout.POST("/pay", s.checkoutHandler.Pay)
	checkout.POST("/place-order", s.checkoutHandler.PlaceOrder)

	// -------- payment webhooks / callbacks --------
	api.POST("/payments/cashfree/webhook", s.paymentHandler.CashfreeWebhook)

	// -------- orders / account --------
	api.GET("/orders", s.orderHandler.GetOrder)
	api.POST("/auth/login", s.authHandler.Login)
	account := api.Group("/account", appmiddleware.Session(s.authService))
	account.GET("/orders", s.orderHandler.ListAccountOrders)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
