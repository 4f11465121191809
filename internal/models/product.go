package models

// DefaultMaxStock is the number of units every product starts with when it is
// loaded into the catalog. The remote catalog does not carry stock levels.
const DefaultMaxStock = 4

// Category groups products on the store screen.
// Grouping compares IDs, never values.
type Category struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// Product represents a product offered in the store together with
// the number of units still available for reservation
type Product struct {
	ID             int64    `json:"id"`
	Title          string   `json:"title"`
	Price          int64    `json:"price"`
	Description    string   `json:"description"`
	Category       Category `json:"category"`
	Images         []string `json:"images"`
	RemainingStock int      `json:"remainingStock"`
}
