package handlers

import (
	"context"
	"testing"

	"github.com/Lixing-Zhang/kart-challenge/basket-service/internal/models"
	"github.com/Lixing-Zhang/kart-challenge/basket-service/internal/repository"
	"github.com/Lixing-Zhang/kart-challenge/basket-service/internal/service"
	"github.com/Lixing-Zhang/kart-challenge/basket-service/pkg/logger"
)

type fakeStore struct {
	products   []models.Product
	categories []models.Category
	err        error
}

func (f *fakeStore) FetchProducts(ctx context.Context) ([]models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]models.Product(nil), f.products...), nil
}

func (f *fakeStore) FetchCategories(ctx context.Context) ([]models.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]models.Category(nil), f.categories...), nil
}

func newFakeStore() *fakeStore {
	clothes := models.Category{ID: 1, Name: "Clothes"}
	shoes := models.Category{ID: 4, Name: "Shoes"}
	return &fakeStore{
		categories: []models.Category{clothes, shoes},
		products: []models.Product{
			{ID: 10, Title: "Classic Hoodie", Price: 40, Category: clothes, RemainingStock: models.DefaultMaxStock},
			{ID: 11, Title: "Running Shoes", Price: 120, Category: shoes, RemainingStock: models.DefaultMaxStock},
			{ID: 12, Title: "Cotton T-Shirt", Price: 15, Category: clothes, RemainingStock: models.DefaultMaxStock},
		},
	}
}

// newTestCoordinator returns a coordinator loaded from store
func newTestCoordinator(t *testing.T, store *fakeStore) *service.InventoryCoordinator {
	t.Helper()

	coordinator := service.NewInventoryCoordinator(
		repository.NewCatalogStore(),
		repository.NewBasketLedger(),
		store,
		models.DefaultMaxStock,
		logger.New("error"),
	)
	if err := coordinator.RefreshCatalog(context.Background()); err != nil && store.err == nil {
		t.Fatalf("failed to load catalog: %v", err)
	}
	return coordinator
}
