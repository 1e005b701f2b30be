package orderbook

import orderbookv1 "github.com/muhammadchandra19/limit-order-book/internal/domain/orderbook/v1"

// appendOrder pushes the order to the tail of the level's queue.
func (b *Orderbook) appendOrder(lh, oh orderbookv1.Handle) {
	l := b.levels.get(lh)
	o := b.orders.get(oh)

	b.sequence++
	o.Sequence = b.sequence
	o.Level = lh
	o.Prev = l.Tail
	o.Next = orderbookv1.Nil

	if l.Tail == orderbookv1.Nil {
		l.Head = oh
	} else {
		b.orders.get(l.Tail).Next = oh
	}
	l.Tail = oh
	l.OrderCount++
	l.TotalVolume += o.Quantity
}

// removeOrder unlinks the order from its level through its own links and
// returns the level handle. An emptied level must then be removed from its index.
func (b *Orderbook) removeOrder(oh orderbookv1.Handle) orderbookv1.Handle {
	o := b.orders.get(oh)
	lh := o.Level
	l := b.levels.get(lh)

	if o.Prev == orderbookv1.Nil {
		l.Head = o.Next
	} else {
		b.orders.get(o.Prev).Next = o.Next
	}
	if o.Next == orderbookv1.Nil {
		l.Tail = o.Prev
	} else {
		b.orders.get(o.Next).Prev = o.Prev
	}

	l.OrderCount--
	l.TotalVolume -= o.Quantity
	o.Level, o.Prev, o.Next = orderbookv1.Nil, orderbookv1.Nil, orderbookv1.Nil
	return lh
}

// partiallyFillHead reduces the head order and the level volume by qty,
// which must be less than the head order's quantity.
func (b *Orderbook) partiallyFillHead(lh orderbookv1.Handle, qty int64) {
	l := b.levels.get(lh)
	b.orders.get(l.Head).Quantity -= qty
	l.TotalVolume -= qty
}
