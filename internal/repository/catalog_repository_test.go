package repository

import (
	"testing"

	"github.com/Lixing-Zhang/kart-challenge/basket-service/internal/models"
)

var (
	electronics = models.Category{ID: 1, Name: "Electronics"}
	clothes     = models.Category{ID: 2, Name: "Clothes"}
)

func seedProducts() []models.Product {
	return []models.Product{
		{ID: 10, Title: "Headphones", Price: 150, Category: electronics, Images: []string{"a.png"}, RemainingStock: 4},
		{ID: 11, Title: "T-Shirt", Price: 20, Category: clothes, RemainingStock: 4},
		{ID: 12, Title: "Keyboard", Price: 80, Category: electronics, RemainingStock: 4},
		{ID: 13, Title: "Jacket", Price: 120, Category: clothes, RemainingStock: 4},
		{ID: 14, Title: "Mouse", Price: 30, Category: electronics, RemainingStock: 4},
	}
}

func TestCatalogStore_ProductsInCategory(t *testing.T) {
	store := NewCatalogStore()
	store.ReplaceProducts(seedProducts())

	tests := []struct {
		name       string
		categoryID int64
		expected   []int64
	}{
		{name: "electronics keeps catalog order", categoryID: 1, expected: []int64{10, 12, 14}},
		{name: "clothes keeps catalog order", categoryID: 2, expected: []int64{11, 13}},
		{name: "unknown category", categoryID: 99, expected: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products := store.ProductsInCategory(tt.categoryID)
			if len(products) != len(tt.expected) {
				t.Fatalf("expected %d products, got %d", len(tt.expected), len(products))
			}
			for i, product := range products {
				if product.ID != tt.expected[i] {
					t.Errorf("position %d: expected product %d, got %d", i, tt.expected[i], product.ID)
				}
				if product.Category.ID != tt.categoryID {
					t.Errorf("product %d has category %d", product.ID, product.Category.ID)
				}
			}
		})
	}
}

func TestCatalogStore_GetByID(t *testing.T) {
	store := NewCatalogStore()
	store.ReplaceProducts(seedProducts())

	product, err := store.GetByID(12)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if product.Title != "Keyboard" {
		t.Errorf("expected Keyboard, got %s", product.Title)
	}

	if _, err := store.GetByID(999); err != ErrProductNotFound {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestCatalogStore_ReplaceProductsIsWholesale(t *testing.T) {
	store := NewCatalogStore()
	store.ReplaceProducts(seedProducts())

	if err := store.SetRemainingStock(10, 1); err != nil {
		t.Fatalf("failed to set stock: %v", err)
	}

	store.ReplaceProducts([]models.Product{
		{ID: 10, Title: "Headphones", Price: 150, Category: electronics, RemainingStock: 4},
	})

	products := store.Products()
	if len(products) != 1 {
		t.Fatalf("expected 1 product after replace, got %d", len(products))
	}
	if products[0].RemainingStock != 4 {
		t.Errorf("expected stock to be reset to 4, got %d", products[0].RemainingStock)
	}
	if _, err := store.GetByID(11); err != ErrProductNotFound {
		t.Errorf("expected product 11 to be gone, got %v", err)
	}
}

func TestCatalogStore_ReturnsCopies(t *testing.T) {
	store := NewCatalogStore()
	store.ReplaceProducts(seedProducts())

	products := store.Products()
	products[0].RemainingStock = 0
	products[0].Images[0] = "changed.png"

	product, _ := store.GetByID(10)
	if product.RemainingStock != 4 {
		t.Errorf("store was mutated through a returned slice: stock %d", product.RemainingStock)
	}
	if product.Images[0] != "a.png" {
		t.Errorf("store was mutated through a returned image list: %s", product.Images[0])
	}
}

func TestCatalogStore_SetRemainingStock_UnknownProduct(t *testing.T) {
	store := NewCatalogStore()
	if err := store.SetRemainingStock(1, 3); err != ErrProductNotFound {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestCatalogStore_Categories(t *testing.T) {
	store := NewCatalogStore()
	if len(store.Categories()) != 0 {
		t.Fatal("expected no categories in a new store")
	}

	store.ReplaceCategories([]models.Category{electronics, clothes})
	categories := store.Categories()
	if len(categories) != 2 || categories[0].ID != 1 || categories[1].ID != 2 {
		t.Errorf("unexpected categories: %+v", categories)
	}
}
