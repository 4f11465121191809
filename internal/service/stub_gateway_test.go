package service

import (
	"context"
	"sync"

	"github.com/Lixing-Zhang/kart-challenge/basket-service/internal/models"
)

// stubGateway serves a fixed catalog. onFetchProducts runs while a product
// fetch is in flight, before the result is handed back.
type stubGateway struct {
	mu              sync.Mutex
	products        []models.Product
	categories      []models.Category
	productErr      error
	categoriesErr   error
	onFetchProducts func()
	productFetches  int
}

func (g *stubGateway) FetchProducts(ctx context.Context) ([]models.Product, error) {
	g.mu.Lock()
	g.productFetches++
	hook := g.onFetchProducts
	products, err := g.products, g.productErr
	g.mu.Unlock()

	if hook != nil {
		hook()
	}
	if err != nil {
		return nil, err
	}
	return append([]models.Product(nil), products...), nil
}

func (g *stubGateway) FetchCategories(ctx context.Context) ([]models.Category, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.categoriesErr != nil {
		return nil, g.categoriesErr
	}
	return append([]models.Category(nil), g.categories...), nil
}

func (g *stubGateway) fetches() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.productFetches
}

var (
	phones  = models.Category{ID: 1, Name: "Phones"}
	laptops = models.Category{ID: 2, Name: "Laptops"}
)

func testCatalog() []models.Product {
	return []models.Product{
		{ID: 1, Title: "Phone", Price: 100, Category: phones, RemainingStock: models.DefaultMaxStock},
		{ID: 2, Title: "Laptop", Price: 900, Category: laptops, RemainingStock: models.DefaultMaxStock},
		{ID: 3, Title: "Phone Case", Price: 15, Category: phones, RemainingStock: models.DefaultMaxStock},
	}
}
