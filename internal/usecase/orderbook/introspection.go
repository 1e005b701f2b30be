package orderbook

import (
	"fmt"

	orderbookv1 "github.com/muhammadchandra19/limit-order-book/internal/domain/orderbook/v1"
	snapshotv1 "github.com/muhammadchandra19/limit-order-book/internal/domain/snapshot/v1"
)

// HighestBuy returns the best bid level.
func (b *Orderbook) HighestBuy() (orderbookv1.LevelInfo, bool) {
	return b.bestOf(orderbookv1.BuyLimitIndex)
}

// LowestSell returns the best ask level.
func (b *Orderbook) LowestSell() (orderbookv1.LevelInfo, bool) {
	return b.bestOf(orderbookv1.SellLimitIndex)
}

// LowestStopBuy returns the buy stop level that triggers first.
func (b *Orderbook) LowestStopBuy() (orderbookv1.LevelInfo, bool) {
	return b.bestOf(orderbookv1.BuyStopIndex)
}

// HighestStopSell returns the sell stop level that triggers first.
func (b *Orderbook) HighestStopSell() (orderbookv1.LevelInfo, bool) {
	return b.bestOf(orderbookv1.SellStopIndex)
}

func (b *Orderbook) bestOf(index orderbookv1.Index) (orderbookv1.LevelInfo, bool) {
	best := b.indexes[index].best
	if best == orderbookv1.Nil {
		return orderbookv1.LevelInfo{}, false
	}
	return b.levelInfo(best), true
}

// Level returns the level resting at price for the given side and class.
func (b *Orderbook) Level(price int64, side orderbookv1.Side, class orderbookv1.Class) (orderbookv1.LevelInfo, error) {
	if !side.IsValid() {
		return orderbookv1.LevelInfo{}, fmt.Errorf("%w: %s", orderbookv1.ErrInvalidSide, side)
	}

	h, ok := b.indexes[orderbookv1.IndexOf(side, class)].lookup(price)
	if !ok {
		notFound := orderbookv1.ErrPriceLevelNotFound
		if class == orderbookv1.ClassStop {
			notFound = orderbookv1.ErrStopLevelNotFound
		}
		return orderbookv1.LevelInfo{}, fmt.Errorf("%w: %s %d", notFound, side, price)
	}
	return b.levelInfo(h), nil
}

func (b *Orderbook) levelInfo(h orderbookv1.Handle) orderbookv1.LevelInfo {
	l := b.levels.get(h)
	info := orderbookv1.LevelInfo{
		Price:       l.Price,
		Side:        l.Side,
		Class:       l.Class,
		OrderCount:  l.OrderCount,
		TotalVolume: l.TotalVolume,
		Height:      l.Height,
	}
	if l.Head != orderbookv1.Nil {
		head := b.orders.get(l.Head)
		info.HeadOrderID = head.ID
		info.HeadQty = head.Quantity
	}
	if l.Parent != orderbookv1.Nil {
		info.ParentPrice = b.levels.get(l.Parent).Price
	}
	if l.Left != orderbookv1.Nil {
		info.LeftPrice = b.levels.get(l.Left).Price
	}
	if l.Right != orderbookv1.Nil {
		info.RightPrice = b.levels.get(l.Right).Price
	}
	return info
}

// Order returns a copy of the resting order with the given id.
func (b *Orderbook) Order(id int64) (orderbookv1.Order, error) {
	oh, ok := b.ids[id]
	if !ok {
		return orderbookv1.Order{}, fmt.Errorf("%w: %d", orderbookv1.ErrOrderNotFound, id)
	}
	return *b.orders.get(oh), nil
}

// Len returns the number of resting orders across all indexes.
func (b *Orderbook) Len() int {
	return len(b.ids)
}

// InOrder returns the level prices of the index in ascending order.
func (b *Orderbook) InOrder(index orderbookv1.Index) []int64 {
	t := b.indexes[index]
	return t.inOrder(t.root, make([]int64, 0, len(t.prices)))
}

// PreOrder returns the level prices of the index in tree pre-order.
func (b *Orderbook) PreOrder(index orderbookv1.Index) []int64 {
	t := b.indexes[index]
	return t.preOrder(t.root, make([]int64, 0, len(t.prices)))
}

// PostOrder returns the level prices of the index in tree post-order.
func (b *Orderbook) PostOrder(index orderbookv1.Index) []int64 {
	t := b.indexes[index]
	return t.postOrder(t.root, make([]int64, 0, len(t.prices)))
}

// Snapshot copies every index, level and queue of the book.
func (b *Orderbook) Snapshot() snapshotv1.Snapshot {
	return snapshotv1.Snapshot{
		BuyLimits:  b.snapshotIndex(orderbookv1.BuyLimitIndex),
		SellLimits: b.snapshotIndex(orderbookv1.SellLimitIndex),
		BuyStops:   b.snapshotIndex(orderbookv1.BuyStopIndex),
		SellStops:  b.snapshotIndex(orderbookv1.SellStopIndex),
		OrderCount: len(b.ids),
	}
}

func (b *Orderbook) snapshotIndex(index orderbookv1.Index) []snapshotv1.Level {
	t := b.indexes[index]
	levels := make([]snapshotv1.Level, 0, len(t.prices))

	for _, price := range b.InOrder(index) {
		l := b.levels.get(t.prices[price])
		level := snapshotv1.Level{
			Price:       l.Price,
			OrderCount:  l.OrderCount,
			TotalVolume: l.TotalVolume,
			Orders:      make([]snapshotv1.BookOrder, 0, l.OrderCount),
		}
		for oh := l.Head; oh != orderbookv1.Nil; {
			o := b.orders.get(oh)
			bookOrder := snapshotv1.BookOrder{
				OrderID:  o.ID,
				Side:     o.Side.String(),
				Kind:     o.Kind.Type.String(),
				Quantity: o.Quantity,
				Price:    o.Price,
			}
			if o.Kind.Type == orderbookv1.KindStopLimit {
				bookOrder.LimitPrice = o.Kind.LimitPrice
			}
			level.Orders = append(level.Orders, bookOrder)
			oh = o.Next
		}
		levels = append(levels, level)
	}
	return levels
}

// Validate checks every structural invariant of the book: AVL balance,
// strict price ordering, cached heights, best level, per-level aggregates,
// queue links and the agreement between the indexes and the id table.
func (b *Orderbook) Validate() error {
	resting, levels := 0, 0

	for _, t := range b.indexes[orderbookv1.BuyLimitIndex:] {
		_, count, err := t.validate(t.root, orderbookv1.Nil, 0, 0, [2]bool{})
		if err != nil {
			return err
		}
		if count != len(t.prices) {
			return fmt.Errorf("%s index: tree has %d levels, price table %d", t.index, count, len(t.prices))
		}

		want := orderbookv1.Nil
		if t.root != orderbookv1.Nil {
			want = t.extreme(t.root)
		}
		if t.best != want {
			return fmt.Errorf("%s index: cached best level is not the extreme", t.index)
		}

		for price, lh := range t.prices {
			n, err := b.validateQueue(t, price, lh)
			if err != nil {
				return err
			}
			resting += n
		}
		levels += len(t.prices)
	}

	if resting != len(b.ids) {
		return fmt.Errorf("indexes hold %d orders, id table %d", resting, len(b.ids))
	}
	if live := b.orders.live(); live != len(b.ids) {
		return fmt.Errorf("order arena holds %d records, id table %d", live, len(b.ids))
	}
	if live := b.levels.live(); live != levels {
		return fmt.Errorf("level arena holds %d records, indexes %d", live, levels)
	}
	return nil
}

func (b *Orderbook) validateQueue(t *priceIndex, price int64, lh orderbookv1.Handle) (int, error) {
	l := b.levels.get(lh)
	if l.OrderCount <= 0 {
		return 0, fmt.Errorf("%s index: empty level %d still indexed", t.index, price)
	}

	count, volume := 0, int64(0)
	prev := orderbookv1.Nil
	for oh := l.Head; oh != orderbookv1.Nil; oh = b.orders.get(oh).Next {
		o := b.orders.get(oh)
		switch {
		case o.Prev != prev:
			return 0, fmt.Errorf("%s index: level %d order %d has wrong prev link", t.index, price, o.ID)
		case o.Level != lh || o.Price != price:
			return 0, fmt.Errorf("%s index: order %d does not belong to level %d", t.index, o.ID, price)
		case orderbookv1.IndexOf(o.Side, orderbookv1.ClassOf(o.Kind)) != t.index:
			return 0, fmt.Errorf("%s index: order %d rests in the wrong index", t.index, o.ID)
		case o.Quantity <= 0:
			return 0, fmt.Errorf("%s index: order %d has quantity %d", t.index, o.ID, o.Quantity)
		case b.ids[o.ID] != oh:
			return 0, fmt.Errorf("%s index: order %d missing from id table", t.index, o.ID)
		}
		count++
		volume += o.Quantity
		prev = oh
	}

	if l.Tail != prev {
		return 0, fmt.Errorf("%s index: level %d has wrong tail", t.index, price)
	}
	if count != l.OrderCount || volume != l.TotalVolume {
		return 0, fmt.Errorf("%s index: level %d caches %d orders/%d volume, queue has %d/%d",
			t.index, price, l.OrderCount, l.TotalVolume, count, volume)
	}
	return count, nil
}
