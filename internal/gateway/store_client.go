package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Lixing-Zhang/kart-challenge/basket-service/internal/models"
)

const (
	ProductsPath   = "/api/v1/products"
	CategoriesPath = "/api/v1/categories"
	LoginPath      = "/api/v1/auth/login"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected status code")
)

// productPayload is the product shape served by the store API.
// Stock is not part of it.
type productPayload struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Price       int64           `json:"price"`
	Description string          `json:"description"`
	Category    models.Category `json:"category"`
	Images      []string        `json:"images"`
}

// StoreClient fetches the catalog from the remote store API
type StoreClient struct {
	baseURL  string
	client   *http.Client
	maxStock int
}

// NewStoreClient creates a store client. Every fetched product starts with
// maxStock units available.
func NewStoreClient(baseURL string, timeout time.Duration, maxStock int) *StoreClient {
	return &StoreClient{
		baseURL:  strings.TrimRight(baseURL, "/"),
		client:   &http.Client{Timeout: timeout},
		maxStock: maxStock,
	}
}

// FetchProducts handles GET /api/v1/products
func (c *StoreClient) FetchProducts(ctx context.Context) ([]models.Product, error) {
	var payload []productPayload
	if err := c.getJSON(ctx, ProductsPath, &payload); err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	products := make([]models.Product, 0, len(payload))
	for _, p := range payload {
		products = append(products, models.Product{
			ID:             p.ID,
			Title:          p.Title,
			Price:          p.Price,
			Description:    p.Description,
			Category:       p.Category,
			Images:         p.Images,
			RemainingStock: c.maxStock,
		})
	}
	return products, nil
}

// FetchCategories handles GET /api/v1/categories
func (c *StoreClient) FetchCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.getJSON(ctx, CategoriesPath, &categories); err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return categories, nil
}

func (c *StoreClient) getJSON(ctx context.Context, path string, dst interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
