package repository

import "slices"

// BasketLedger records how many units of each product are reserved into the
// basket. It is not safe for concurrent use; callers serialize access.
type BasketLedger struct {
	counts map[int64]int
}

// NewBasketLedger creates an empty ledger
func NewBasketLedger() *BasketLedger {
	return &BasketLedger{
		counts: make(map[int64]int),
	}
}

// Reserve records one more unit of the product
func (l *BasketLedger) Reserve(productID int64) {
	l.counts[productID]++
}

// Release removes one unit of the product. Releasing a product that has no
// reservation is a no-op.
func (l *BasketLedger) Release(productID int64) {
	n, ok := l.counts[productID]
	if !ok {
		return
	}
	if n <= 1 {
		delete(l.counts, productID)
		return
	}
	l.counts[productID] = n - 1
}

// Count returns the number of reserved units of the product
func (l *BasketLedger) Count(productID int64) int {
	return l.counts[productID]
}

// DistinctIDs returns every product with at least one reservation, ascending
func (l *BasketLedger) DistinctIDs() []int64 {
	ids := make([]int64, 0, len(l.counts))
	for id := range l.counts {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Len returns the total number of reserved units
func (l *BasketLedger) Len() int {
	total := 0
	for _, n := range l.counts {
		total += n
	}
	return total
}

// IsEmpty reports whether nothing is reserved
func (l *BasketLedger) IsEmpty() bool {
	return len(l.counts) == 0
}

// Clear drops every reservation
func (l *BasketLedger) Clear() {
	l.counts = make(map[int64]int)
}
