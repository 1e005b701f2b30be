package orderbookv1

// PriceLevel is one price point on one side and class of the book.
// It is both a node of a price index tree and the FIFO queue of the
// orders resting at that price.
type PriceLevel struct {
	Price       int64
	Side        Side
	Class       Class
	OrderCount  int
	TotalVolume int64

	// tree links
	Height int
	Parent Handle
	Left   Handle
	Right  Handle

	// queue links, Head is served first
	Head Handle
	Tail Handle
}

// IsEmpty reports whether no order rests at the level.
func (l *PriceLevel) IsEmpty() bool {
	return l.OrderCount == 0
}

// IsLeaf reports whether the level has no children in its tree.
func (l *PriceLevel) IsLeaf() bool {
	return l.Left == Nil && l.Right == Nil
}
