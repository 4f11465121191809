package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/kart-challenge/basket-service/internal/models"
	"github.com/Lixing-Zhang/kart-challenge/basket-service/internal/repository"
	"github.com/Lixing-Zhang/kart-challenge/basket-service/internal/service"
)

// BasketHandler handles basket-related HTTP requests
type BasketHandler struct {
	coordinator *service.InventoryCoordinator
	log         *slog.Logger
}

// NewBasketHandler creates a new basket handler
func NewBasketHandler(coordinator *service.InventoryCoordinator, log *slog.Logger) *BasketHandler {
	return &BasketHandler{
		coordinator: coordinator,
		log:         log,
	}
}

// StockChangeResponse is the outcome of a reserve or release.
// Applied is false when the change was rejected; the counts are then unchanged.
type StockChangeResponse struct {
	Applied        bool  `json:"applied"`
	ProductID      int64 `json:"productId"`
	RemainingStock int   `json:"remainingStock"`
	Quantity       int   `json:"quantity"`
}

// GetBasket handles GET /api/basket
func (h *BasketHandler) GetBasket(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.coordinator.Basket(), h.log)
}

// GetSummary handles GET /api/basket/summary
func (h *BasketHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.coordinator.OrderSummary(), h.log)
}

// ReserveUnit handles POST /api/basket/items/{productId}
func (h *BasketHandler) ReserveUnit(w http.ResponseWriter, r *http.Request) {
	productID, ok := productIDParam(w, r, h.log)
	if !ok {
		return
	}

	item, applied, err := h.coordinator.ReserveUnitItem(productID)
	h.writeStockChange(w, productID, item, applied, err)
}

// ReleaseUnit handles DELETE /api/basket/items/{productId}
func (h *BasketHandler) ReleaseUnit(w http.ResponseWriter, r *http.Request) {
	productID, ok := productIDParam(w, r, h.log)
	if !ok {
		return
	}

	item, applied, err := h.coordinator.ReleaseUnitItem(productID)
	h.writeStockChange(w, productID, item, applied, err)
}

// Checkout handles POST /api/basket/checkout
func (h *BasketHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	receipt, err := h.coordinator.Checkout(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrEmptyBasket) {
			h.log.Info("checkout of an empty basket")
			WriteError(w, http.StatusBadRequest, "Basket must contain at least one item", h.log)
			return
		}

		h.log.Error("failed to confirm purchase", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, receipt, h.log)
}

func (h *BasketHandler) writeStockChange(w http.ResponseWriter, productID int64, item models.LineItem, applied bool, err error) {
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			WriteError(w, http.StatusNotFound, "Product not found", h.log)
			return
		}

		h.log.Error("failed to change stock", "productId", productID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, StockChangeResponse{
		Applied:        applied,
		ProductID:      productID,
		RemainingStock: item.RemainingStock,
		Quantity:       item.Quantity,
	}, h.log)
}
