package orderbook

import (
	"fmt"

	orderbookv1 "github.com/muhammadchandra19/limit-order-book/internal/domain/orderbook/v1"
)

// Orderbook is an in-memory limit order book for one instrument. It keeps
// four price indexes (buy and sell limits, buy and sell stops) over a shared
// level arena and a global order id table over an order arena.
//
// Orderbook is not safe for concurrent use; callers serialize access.
type Orderbook struct {
	levels   *arena[orderbookv1.PriceLevel]
	orders   *arena[orderbookv1.Order]
	ids      map[int64]orderbookv1.Handle
	indexes  [orderbookv1.SellStopIndex + 1]*priceIndex
	sequence uint64
}

var _ orderbookv1.Book = (*Orderbook)(nil)

// NewOrderbook creates a new empty order book.
func NewOrderbook() *Orderbook {
	return NewOrderbookWithCapacity(0, 0)
}

// NewOrderbookWithCapacity creates an empty order book with room for the
// given number of price levels and orders before the arenas grow.
func NewOrderbookWithCapacity(levels, orders int) *Orderbook {
	b := &Orderbook{
		levels: newArena[orderbookv1.PriceLevel](levels),
		orders: newArena[orderbookv1.Order](orders),
		ids:    make(map[int64]orderbookv1.Handle, orders),
	}
	for _, idx := range []orderbookv1.Index{
		orderbookv1.BuyLimitIndex,
		orderbookv1.SellLimitIndex,
		orderbookv1.BuyStopIndex,
		orderbookv1.SellStopIndex,
	} {
		b.indexes[idx] = newPriceIndex(idx, b.levels)
	}
	return b
}

func (b *Orderbook) limits(side orderbookv1.Side) *priceIndex {
	return b.indexes[orderbookv1.IndexOf(side, orderbookv1.ClassLimit)]
}

func (b *Orderbook) stops(side orderbookv1.Side) *priceIndex {
	return b.indexes[orderbookv1.IndexOf(side, orderbookv1.ClassStop)]
}

// MarketOrder executes qty against the opposite side from the best price
// outward. Quantity left when the opposite side is exhausted is discarded.
func (b *Orderbook) MarketOrder(id int64, side orderbookv1.Side, qty int64) (orderbookv1.Report, error) {
	var m orderbookv1.Report
	if err := validateOrder(side, qty); err != nil {
		return m, err
	}

	b.marketOrder(id, side, qty, &m)
	return m, nil
}

// AddLimitOrder matches the marketable part of the order and rests the remainder at price.
func (b *Orderbook) AddLimitOrder(id int64, side orderbookv1.Side, qty, price int64) (orderbookv1.Report, error) {
	var m orderbookv1.Report
	if err := validateOrder(side, qty, price); err != nil {
		return m, err
	}
	if err := b.checkUnique(id); err != nil {
		return m, err
	}

	b.addLimitOrder(id, side, qty, price, &m)
	return m, nil
}

// CancelLimitOrder removes a resting limit order.
func (b *Orderbook) CancelLimitOrder(id int64) (orderbookv1.Report, error) {
	return b.cancel(id, orderbookv1.KindLimit)
}

// ModifyLimitOrder cancels the order and adds it again with the new quantity
// and price. The order loses its queue position and may trade.
func (b *Orderbook) ModifyLimitOrder(id int64, qty, price int64) (orderbookv1.Report, error) {
	var m orderbookv1.Report
	oh, err := b.lookupKind(id, orderbookv1.KindLimit)
	if err != nil {
		return m, err
	}
	if err := validateOrder(b.orders.get(oh).Side, qty, price); err != nil {
		return m, err
	}

	o := b.deleteOrder(oh, &m)
	b.addLimitOrder(id, o.Side, qty, price, &m)
	return m, nil
}

func (b *Orderbook) marketOrder(id int64, side orderbookv1.Side, qty int64, m *orderbookv1.Report) {
	b.sweep(id, side, qty, 0, false, m)
	b.executeStopOrders(side, m)
}

func (b *Orderbook) addLimitOrder(id int64, side orderbookv1.Side, qty, price int64, m *orderbookv1.Report) {
	remaining := b.sweep(id, side, qty, price, true, m)
	if remaining > 0 {
		b.rest(id, side, orderbookv1.Limit(), remaining, price, m)
	}
	if remaining < qty {
		b.executeStopOrders(side, m)
	}
}

// sweep executes up to qty against the best levels opposite to side. When
// bounded, it stops at the first level that does not cross limit. It
// returns the unfilled quantity.
func (b *Orderbook) sweep(takerID int64, side orderbookv1.Side, qty, limit int64, bounded bool, m *orderbookv1.Report) int64 {
	book := b.limits(side.Opposite())

	for qty > 0 && book.best != orderbookv1.Nil {
		lh := book.best
		l := b.levels.get(lh)
		if bounded && !crosses(side, l.Price, limit) {
			break
		}

		head := b.orders.get(l.Head)
		fill := orderbookv1.Fill{
			TakerOrderID: takerID,
			MakerOrderID: head.ID,
			TakerSide:    side,
			Price:        l.Price,
		}

		if head.Quantity <= qty {
			fill.Quantity = head.Quantity
			fill.MakerFilled = true
			qty -= head.Quantity
			b.deleteOrder(l.Head, m)
		} else {
			fill.Quantity = qty
			b.partiallyFillHead(lh, qty)
			qty = 0
		}

		m.Executed++
		m.Fills = append(m.Fills, fill)
	}
	return qty
}

// crosses reports whether an order of side priced at limit trades against a level at price.
func crosses(side orderbookv1.Side, price, limit int64) bool {
	if side == orderbookv1.Buy {
		return price <= limit
	}
	return price >= limit
}

// rest appends a new order to the level at price in the index for side and
// kind, creating the level if needed.
func (b *Orderbook) rest(id int64, side orderbookv1.Side, kind orderbookv1.OrderKind, qty, price int64, m *orderbookv1.Report) {
	idx := b.indexes[orderbookv1.IndexOf(side, orderbookv1.ClassOf(kind))]
	lh := idx.insert(price, m)

	oh, o := b.orders.alloc()
	o.ID = id
	o.Side = side
	o.Kind = kind
	o.Quantity = qty
	o.Price = price

	b.ids[id] = oh
	b.appendOrder(lh, oh)
	m.Rested += qty
}

func (b *Orderbook) cancel(id int64, kind orderbookv1.KindType) (orderbookv1.Report, error) {
	var m orderbookv1.Report
	oh, err := b.lookupKind(id, kind)
	if err != nil {
		return m, err
	}

	b.deleteOrder(oh, &m)
	return m, nil
}

// deleteOrder unlinks the order, removes its level if emptied, erases it
// from the id table and releases it. It returns a copy of the order.
func (b *Orderbook) deleteOrder(oh orderbookv1.Handle, m *orderbookv1.Report) orderbookv1.Order {
	o := *b.orders.get(oh)

	lh := b.removeOrder(oh)
	if b.levels.get(lh).IsEmpty() {
		b.indexes[orderbookv1.IndexOf(o.Side, orderbookv1.ClassOf(o.Kind))].remove(lh, m)
		b.levels.release(lh)
	}

	delete(b.ids, o.ID)
	b.orders.release(oh)
	return o
}

// lookupKind returns the handle of a resting order of the given kind.
// An order of another kind is reported as not found.
func (b *Orderbook) lookupKind(id int64, kind orderbookv1.KindType) (orderbookv1.Handle, error) {
	oh, ok := b.ids[id]
	if !ok || b.orders.get(oh).Kind.Type != kind {
		return orderbookv1.Nil, fmt.Errorf("%w: %s order %d", orderbookv1.ErrOrderNotFound, kind, id)
	}
	return oh, nil
}

func (b *Orderbook) checkUnique(id int64) error {
	if _, ok := b.ids[id]; ok {
		return fmt.Errorf("%w: %d", orderbookv1.ErrDuplicateOrderID, id)
	}
	return nil
}

func validateOrder(side orderbookv1.Side, qty int64, prices ...int64) error {
	if !side.IsValid() {
		return fmt.Errorf("%w: %s", orderbookv1.ErrInvalidSide, side)
	}
	if qty <= 0 {
		return fmt.Errorf("%w: got %d", orderbookv1.ErrInvalidQuantity, qty)
	}
	for _, price := range prices {
		if price <= 0 {
			return fmt.Errorf("%w: got %d", orderbookv1.ErrInvalidPrice, price)
		}
	}
	return nil
}
