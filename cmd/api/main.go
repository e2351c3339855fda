package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront-backend/internal/client"
	"storefront-backend/internal/config"
	"storefront-backend/internal/logger"
	"storefront-backend/internal/repository"
	"storefront-backend/internal/server"
	"storefront-backend/internal/service"
	"storefront-backend/internal/validation"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(&cfg.Log)
	if err != nil {
		fmt.Printf("Failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	db := client.InitSqliteClient(cfg.DatabaseURL)
	commerceClient := client.NewCommerceClient(&cfg.Commerce)
	cashfreeClient := client.NewCashfreeClient(&cfg.Cashfree)

	webhookEventRepo := repository.NewWebhookEventRepository(db)
	validate := validation.New()

	orderService := service.NewOrderService(commerceClient, cfg.Store.Currency, log)
	checkoutService := service.NewCheckoutService(commerceClient, validate, cfg.Store.Currency, log)
	paymentService := service.NewPaymentService(
		commerceClient,
		cashfreeClient,
		orderService,
		webhookEventRepo,
		cfg.Store.Currency,
		log,
	)
	authService := service.NewAuthService(commerceClient, &cfg.Session)
	catalogService := service.NewCatalogService(commerceClient)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	// Init HTTP server
	srv := server.NewServer(checkoutService, paymentService, orderService, authService, catalogService, log)

	log.Info("starting HTTP server", zap.String("addr", serverAddr))
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Info("signal received, starting graceful shutdown...")

	_, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error", zap.Error(err))
	}
}
