package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Lixing-Zhang/kart-challenge/basket-service/internal/config"
	"github.com/Lixing-Zhang/kart-challenge/basket-service/internal/handlers"
	"github.com/Lixing-Zhang/kart-challenge/basket-service/internal/middleware"
	"github.com/Lixing-Zhang/kart-challenge/basket-service/internal/service"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func newRouter(
	cfg *config.Config,
	log *slog.Logger,
	coordinator *service.InventoryCoordinator,
	authService *service.AuthService,
) http.Handler {
	healthHandler := handlers.NewHealthHandler(coordinator, log)
	productHandler := handlers.NewProductHandler(coordinator, log)
	basketHandler := handlers.NewBasketHandler(coordinator, log)
	sessionHandler := handlers.NewSessionHandler(authService, log)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", middleware.APIKeyHeader},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", healthHandler.ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", sessionHandler.Login)

		// Catalog endpoints
		r.Get("/categories", productHandler.ListCategories)
		r.Get("/products", productHandler.ListProducts)
		r.Get("/products/{productId}", productHandler.GetProduct)

		// Refresh resets every product to full stock; it needs an API key
		r.With(middleware.APIKeyAuth(cfg.Auth)).Post("/catalog/refresh", productHandler.RefreshCatalog)

		// Basket endpoints; mutations require an API key
		r.Route("/basket", func(r chi.Router) {
			r.Get("/", basketHandler.GetBasket)
			r.Get("/summary", basketHandler.GetSummary)

			r.Group(func(r chi.Router) {
				r.Use(middleware.APIKeyAuth(cfg.Auth))
				r.Post("/items/{productId}", basketHandler.ReserveUnit)
				r.Delete("/items/{productId}", basketHandler.ReleaseUnit)
				r.Post("/checkout", basketHandler.Checkout)
			})
		})
	})

	return r
}
