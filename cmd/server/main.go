package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Lixing-Zhang/kart-challenge/basket-service/internal/config"
	"github.com/Lixing-Zhang/kart-challenge/basket-service/internal/gateway"
	"github.com/Lixing-Zhang/kart-challenge/basket-service/internal/repository"
	"github.com/Lixing-Zhang/kart-challenge/basket-service/internal/service"
	"github.com/Lixing-Zhang/kart-challenge/basket-service/pkg/logger"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env file is fine; the environment wins either way
	_ = godotenv.Load()

	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting basket api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"store_url", cfg.Store.BaseURL,
		"max_stock", cfg.Store.MaxStock,
		"log_level", cfg.LogLevel,
	)

	// Remote store gateways
	storeTimeout := time.Duration(cfg.Store.Timeout) * time.Second
	storeClient := gateway.NewStoreClient(cfg.Store.BaseURL, storeTimeout, cfg.Store.MaxStock)
	sessionClient := gateway.NewSessionClient(cfg.Store.BaseURL, storeTimeout)

	// Initialize stores and services
	coordinator := service.NewInventoryCoordinator(
		repository.NewCatalogStore(),
		repository.NewBasketLedger(),
		storeClient,
		cfg.Store.MaxStock,
		log,
	)
	authService := service.NewAuthService(sessionClient, log)

	// An unreachable store at startup leaves an empty catalog; clients can
	// retry through POST /api/catalog/refresh
	log.Info("loading catalog...")
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), storeTimeout)
	if err := coordinator.RefreshCatalog(loadCtx); err != nil {
		log.Warn("initial catalog load failed", "error", err)
	}
	cancelLoad()

	r := newRouter(cfg, log, coordinator, authService)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
