package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Lixing-Zhang/kart-challenge/basket-service/internal/repository"
	"github.com/Lixing-Zhang/kart-challenge/basket-service/internal/service"
)

// ProductHandler handles catalog-related HTTP requests
type ProductHandler struct {
	coordinator *service.InventoryCoordinator
	logger      *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(coordinator *service.InventoryCoordinator, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		coordinator: coordinator,
		logger:      logger,
	}
}

// RefreshResponse reports the catalog size after a refresh
type RefreshResponse struct {
	Products   int `json:"products"`
	Categories int `json:"categories"`
}

// ListProducts handles GET /api/products
// An optional categoryId query parameter narrows the list to one category.
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("categoryId")
	if raw == "" {
		WriteJSON(w, http.StatusOK, h.coordinator.ListProducts(), h.logger)
		return
	}

	categoryID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.logger.Warn("invalid category ID format", "categoryId", raw, "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid category ID supplied", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, h.coordinator.ProductsInCategory(categoryID), h.logger)
}

// GetProduct handles GET /api/products/{productId}
// - 200: successful operation
// - 400: Invalid ID supplied
// - 404: Product not found
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID, ok := productIDParam(w, r, h.logger)
	if !ok {
		return
	}

	product, err := h.coordinator.GetProduct(productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			h.logger.Info("product not found", "productId", productID)
			WriteError(w, http.StatusNotFound, "Product not found", h.logger)
			return
		}

		h.logger.Error("failed to get product", "productId", productID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, product, h.logger)
}

// ListCategories handles GET /api/categories
func (h *ProductHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.coordinator.ListCategories(), h.logger)
}

// RefreshCatalog handles POST /api/catalog/refresh
// A failed fetch still replaces the catalog (with nothing) and answers 502.
func (h *ProductHandler) RefreshCatalog(w http.ResponseWriter, r *http.Request) {
	if err := h.coordinator.RefreshCatalog(r.Context()); err != nil {
		h.logger.Error("catalog refresh failed", "error", err)
		WriteError(w, http.StatusBadGateway, "Failed to fetch catalog from store", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, RefreshResponse{
		Products:   len(h.coordinator.ListProducts()),
		Categories: len(h.coordinator.ListCategories()),
	}, h.logger)
}
