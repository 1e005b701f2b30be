package orderbookv1

// Fill is one execution between an incoming (taker) order and a resting (maker) order.
type Fill struct {
	TakerOrderID int64
	MakerOrderID int64
	TakerSide    Side
	Price        int64
	Quantity     int64
	// MakerFilled is true when the maker order left the book with this fill.
	MakerFilled bool
}

// Report is the per-operation metrics object returned by every mutating
// Book operation. Cascaded stop activations accumulate into the report of
// the operation that caused them.
type Report struct {
	Fills []Fill
	// Executed counts fully executed maker orders plus partial fills.
	Executed int
	// Rebalances counts AVL restructurings across all indexes.
	Rebalances int
	// Triggered counts stop and stop-limit activations.
	Triggered int
	// Rested is the quantity appended to the book by the operation.
	Rested int64
}

// VolumeTraded returns the total quantity across all fills.
func (r *Report) VolumeTraded() int64 {
	var total int64
	for _, f := range r.Fills {
		total += f.Quantity
	}
	return total
}
