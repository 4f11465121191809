package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Lixing-Zhang/kart-challenge/basket-service/internal/models"
	"github.com/Lixing-Zhang/kart-challenge/basket-service/internal/repository"
)

// CatalogGateway resolves the catalog from the remote store
type CatalogGateway interface {
	FetchProducts(ctx context.Context) ([]models.Product, error)
	FetchCategories(ctx context.Context) ([]models.Category, error)
}

// InventoryCoordinator applies basket changes to the catalog and the basket
// ledger together and derives the basket views from them.
//
// Every method holds mu for its whole critical section so two calls never
// interleave on the stores. Network fetches run outside the lock.
type InventoryCoordinator struct {
	mu       sync.Mutex
	catalog  *repository.CatalogStore
	ledger   *repository.BasketLedger
	gateway  CatalogGateway
	maxStock int
	log      *slog.Logger
}

// NewInventoryCoordinator creates a coordinator over the given stores
func NewInventoryCoordinator(
	catalog *repository.CatalogStore,
	ledger *repository.BasketLedger,
	gateway CatalogGateway,
	maxStock int,
	log *slog.Logger,
) *InventoryCoordinator {
	return &InventoryCoordinator{
		catalog:  catalog,
		ledger:   ledger,
		gateway:  gateway,
		maxStock: maxStock,
		log:      log,
	}
}

// MaxStock returns the per-product unit cap
func (c *InventoryCoordinator) MaxStock() int {
	return c.maxStock
}

// ReserveUnit takes one unit of the product into the basket.
// It reports false and changes nothing when the product is unknown or sold out.
func (c *InventoryCoordinator) ReserveUnit(productID int64) bool {
	_, applied, _ := c.ReserveUnitItem(productID)
	return applied
}

// ReleaseUnit returns one unit of the product from the basket.
// It reports false and changes nothing when the product is unknown or already
// at full stock.
func (c *InventoryCoordinator) ReleaseUnit(productID int64) bool {
	_, applied, _ := c.ReleaseUnitItem(productID)
	return applied
}

// ReserveUnitItem is ReserveUnit returning the product's line item as it
// stands right after the call. An unknown product yields ErrProductNotFound.
func (c *InventoryCoordinator) ReserveUnitItem(productID int64) (models.LineItem, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	product, err := c.catalog.GetByID(productID)
	if err != nil {
		c.log.Debug("reserve ignored", "product_id", productID, "reason", err.Error())
		return models.LineItem{}, false, err
	}
	if product.RemainingStock <= 0 {
		c.log.Debug("reserve ignored", "product_id", productID, "reason", "out of stock")
		return c.lineItem(*product), false, nil
	}

	product.RemainingStock--
	// GetByID just succeeded under the same lock
	_ = c.catalog.SetRemainingStock(productID, product.RemainingStock)
	c.ledger.Reserve(productID)
	return c.lineItem(*product), true, nil
}

// ReleaseUnitItem is ReleaseUnit returning the product's line item as it
// stands right after the call. An unknown product yields ErrProductNotFound.
func (c *InventoryCoordinator) ReleaseUnitItem(productID int64) (models.LineItem, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	product, err := c.catalog.GetByID(productID)
	if err != nil {
		c.log.Debug("release ignored", "product_id", productID, "reason", err.Error())
		return models.LineItem{}, false, err
	}
	if product.RemainingStock >= c.maxStock {
		c.log.Debug("release ignored", "product_id", productID, "reason", "stock full")
		return c.lineItem(*product), false, nil
	}

	product.RemainingStock++
	_ = c.catalog.SetRemainingStock(productID, product.RemainingStock)
	c.ledger.Release(productID)
	return c.lineItem(*product), true, nil
}

// BasketLineItems lists the reserved products in ascending ID order.
// Reserved IDs missing from the catalog are skipped.
func (c *InventoryCoordinator) BasketLineItems() []models.LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.lineItems()
}

// OrderSummary totals the basket. An empty basket totals zero.
func (c *InventoryCoordinator) OrderSummary() models.OrderSummary {
	c.mu.Lock()
	defer c.mu.Unlock()

	return summarize(c.lineItems())
}

// Basket returns the line items and their summary from one consistent view
func (c *InventoryCoordinator) Basket() models.Basket {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := c.lineItems()
	return models.Basket{
		Items:   items,
		Summary: summarize(items),
	}
}

// lineItems must be called with mu held
func (c *InventoryCoordinator) lineItems() []models.LineItem {
	items := make([]models.LineItem, 0)
	for _, id := range c.ledger.DistinctIDs() {
		product, err := c.catalog.GetByID(id)
		if err != nil {
			continue
		}
		items = append(items, c.lineItem(*product))
	}
	return items
}

func (c *InventoryCoordinator) lineItem(product models.Product) models.LineItem {
	return models.LineItem{
		Product:        product,
		RemainingStock: product.RemainingStock,
		Quantity:       c.maxStock - product.RemainingStock,
	}
}

func summarize(items []models.LineItem) models.OrderSummary {
	var summary models.OrderSummary
	for _, item := range items {
		summary.TotalPrice += item.Product.Price * int64(item.Quantity)
		summary.TotalUnits += item.Quantity
	}
	return summary
}
