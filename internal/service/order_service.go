package service

import (
	"context"
	"errors"
	"time"

	"github.com/Lixing-Zhang/kart-challenge/basket-service/internal/models"
	"github.com/google/uuid"
)

var (
	ErrEmptyBasket = errors.New("basket must contain at least one item")
)

// Checkout confirms the purchase of a non-empty basket. Emptiness is checked
// in the same critical section that snapshots the receipt.
func (c *InventoryCoordinator) Checkout(ctx context.Context) (*models.Receipt, error) {
	return c.confirm(ctx, true)
}

// ConfirmPurchase reconciles with the remote store: the product list is
// fetched again and replaces the catalog, which puts every product back to
// full stock, and the basket is emptied. It returns once the fetch has
// resolved. A failed fetch is logged and leaves an empty catalog; the
// purchase still completes.
//
// Reservations made while the fetch is in flight are discarded.
func (c *InventoryCoordinator) ConfirmPurchase(ctx context.Context) (*models.Receipt, error) {
	return c.confirm(ctx, false)
}

func (c *InventoryCoordinator) confirm(ctx context.Context, requireItems bool) (*models.Receipt, error) {
	c.mu.Lock()
	if requireItems && c.ledger.IsEmpty() {
		c.mu.Unlock()
		return nil, ErrEmptyBasket
	}
	items := c.lineItems()
	c.mu.Unlock()

	receipt := &models.Receipt{
		ID:          generateOrderID(),
		Items:       items,
		Summary:     summarize(items),
		ConfirmedAt: time.Now().UTC(),
	}

	products, err := c.gateway.FetchProducts(ctx)
	if err != nil {
		c.log.Warn("product refetch failed after purchase, catalog emptied",
			"order_id", receipt.ID,
			"error", err,
		)
		products = nil
	}

	c.mu.Lock()
	c.catalog.ReplaceProducts(products)
	c.ledger.Clear()
	c.mu.Unlock()

	c.log.Info("purchase confirmed",
		"order_id", receipt.ID,
		"total_price", receipt.Summary.TotalPrice,
		"total_units", receipt.Summary.TotalUnits,
	)

	return receipt, nil
}

// generateOrderID generates a unique order ID using UUID
func generateOrderID() string {
	return uuid.New().String()
}
