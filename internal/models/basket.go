package models

import "time"

// LineItem is one row of the basket screen
type LineItem struct {
	Product        Product `json:"product"`
	RemainingStock int     `json:"remainingStock"`
	Quantity       int     `json:"quantity"`
}

// OrderSummary holds the totals shown under the basket
type OrderSummary struct {
	TotalPrice int64 `json:"totalPrice"`
	TotalUnits int   `json:"totalUnits"`
}

// Basket is the basket screen: its line items plus the summary
type Basket struct {
	Items   []LineItem   `json:"items"`
	Summary OrderSummary `json:"summary"`
}

// Receipt records a confirmed purchase as it looked right before the basket
// was reset
type Receipt struct {
	ID          string       `json:"id"`
	Items       []LineItem   `json:"items"`
	Summary     OrderSummary `json:"summary"`
	ConfirmedAt time.Time    `json:"confirmedAt"`
}
