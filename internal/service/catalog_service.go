package service

import (
	"context"
	"errors"
	"sync"

	"github.com/Lixing-Zhang/kart-challenge/basket-service/internal/models"
)

// RefreshCatalog fetches products and categories concurrently and replaces
// both lists. A failed fetch leaves an empty list behind, the same as a
// store with nothing to sell; the fetch errors are returned joined.
// The basket ledger is kept as is.
func (c *InventoryCoordinator) RefreshCatalog(ctx context.Context) error {
	var (
		wg            sync.WaitGroup
		products      []models.Product
		categories    []models.Category
		productErr    error
		categoriesErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		products, productErr = c.gateway.FetchProducts(ctx)
	}()
	go func() {
		defer wg.Done()
		categories, categoriesErr = c.gateway.FetchCategories(ctx)
	}()
	wg.Wait()

	if productErr != nil {
		c.log.Warn("product fetch failed, catalog emptied", "error", productErr)
		products = nil
	}
	if categoriesErr != nil {
		c.log.Warn("category fetch failed, categories emptied", "error", categoriesErr)
		categories = nil
	}

	c.mu.Lock()
	c.catalog.ReplaceProducts(products)
	c.catalog.ReplaceCategories(categories)
	c.mu.Unlock()

	c.log.Info("catalog refreshed", "products", len(products), "categories", len(categories))

	return errors.Join(productErr, categoriesErr)
}

// ListProducts returns the whole catalog in catalog order
func (c *InventoryCoordinator) ListProducts() []models.Product {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.catalog.Products()
}

// ListCategories returns every known category
func (c *InventoryCoordinator) ListCategories() []models.Category {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.catalog.Categories()
}

// ProductsInCategory returns the products of one category in catalog order
func (c *InventoryCoordinator) ProductsInCategory(categoryID int64) []models.Product {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.catalog.ProductsInCategory(categoryID)
}

// GetProduct returns a product by its ID
func (c *InventoryCoordinator) GetProduct(productID int64) (*models.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.catalog.GetByID(productID)
}
