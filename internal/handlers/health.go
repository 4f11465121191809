package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Lixing-Zhang/kart-challenge/basket-service/internal/models"
)

// catalogLister is the part of the coordinator the health check reads
type catalogLister interface {
	ListProducts() []models.Product
}

// HealthHandler provides health check endpoint
type HealthHandler struct {
	catalog catalogLister
	logger  *slog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(catalog catalogLister, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Version     string    `json:"version"`
	CatalogSize int       `json:"catalogSize"`
}

// ServeHTTP handles health check requests.
// An empty catalog is reported as degraded but still answers 200.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	size := len(h.catalog.ListProducts())

	status := "healthy"
	if size == 0 {
		status = "degraded"
	}

	WriteJSON(w, http.StatusOK, HealthResponse{
		Status:      status,
		Timestamp:   time.Now().UTC(),
		Version:     "1.0.0",
		CatalogSize: size,
	}, h.logger)
}
