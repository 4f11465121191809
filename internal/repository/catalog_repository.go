package repository

import (
	"errors"

	"github.com/Lixing-Zhang/kart-challenge/basket-service/internal/models"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// CatalogStore holds the products and categories currently known to the store.
// It is not safe for concurrent use; callers serialize access.
type CatalogStore struct {
	products   []models.Product
	categories []models.Category
}

// NewCatalogStore creates an empty catalog store
func NewCatalogStore() *CatalogStore {
	return &CatalogStore{
		products:   make([]models.Product, 0),
		categories: make([]models.Category, 0),
	}
}

// ReplaceProducts overwrites the product list wholesale.
// Stock changes made on the previous list are lost.
func (s *CatalogStore) ReplaceProducts(products []models.Product) {
	s.products = cloneProducts(products)
}

// ReplaceCategories overwrites the category list wholesale
func (s *CatalogStore) ReplaceCategories(categories []models.Category) {
	s.categories = append(make([]models.Category, 0, len(categories)), categories...)
}

// Products returns a copy of every product in catalog order
func (s *CatalogStore) Products() []models.Product {
	return cloneProducts(s.products)
}

// Categories returns a copy of every category in catalog order
func (s *CatalogStore) Categories() []models.Category {
	return append(make([]models.Category, 0, len(s.categories)), s.categories...)
}

// ProductsInCategory returns the products whose category ID matches,
// keeping their relative catalog order
func (s *CatalogStore) ProductsInCategory(categoryID int64) []models.Product {
	products := make([]models.Product, 0)
	for _, product := range s.products {
		if product.Category.ID == categoryID {
			products = append(products, cloneProduct(product))
		}
	}
	return products
}

// GetByID returns a copy of the product with the given ID
func (s *CatalogStore) GetByID(id int64) (*models.Product, error) {
	i := s.indexOf(id)
	if i < 0 {
		return nil, ErrProductNotFound
	}
	product := cloneProduct(s.products[i])
	return &product, nil
}

// SetRemainingStock overwrites the remaining stock of a product in place
func (s *CatalogStore) SetRemainingStock(id int64, stock int) error {
	i := s.indexOf(id)
	if i < 0 {
		return ErrProductNotFound
	}
	s.products[i].RemainingStock = stock
	return nil
}

func (s *CatalogStore) indexOf(id int64) int {
	for i := range s.products {
		if s.products[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneProducts(products []models.Product) []models.Product {
	out := make([]models.Product, len(products))
	for i, product := range products {
		out[i] = cloneProduct(product)
	}
	return out
}

func cloneProduct(p models.Product) models.Product {
	if p.Images != nil {
		p.Images = append([]string(nil), p.Images...)
	}
	return p
}
