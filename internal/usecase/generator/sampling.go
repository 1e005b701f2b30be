package generator

import (
	orderbookv1 "github.com/muhammadchandra19/limit-order-book/internal/domain/orderbook/v1"
)

func (g *Generator) takeID() int64 {
	id := g.nextID
	g.nextID++
	return id
}

func (g *Generator) quantity() int64 {
	return 1 + g.rng.Int64N(maxQuantity)
}

func (g *Generator) side() orderbookv1.Side {
	if g.rng.IntN(2) == 1 {
		return orderbookv1.Buy
	}
	return orderbookv1.Sell
}

// normalPrice draws from N(mean, PriceStdDev), truncated to an integer of at least 1.
func (g *Generator) normalPrice(mean float64) int64 {
	return max(int64(mean+g.rng.NormFloat64()*g.cfg.PriceStdDev), 1)
}

// bestPrices returns the best bid and ask, substituting a missing side from
// the other one or from the centre price.
func (g *Generator) bestPrices() (bid, ask int64) {
	b, hasBid := g.book.HighestBuy()
	a, hasAsk := g.book.LowestSell()

	switch {
	case hasBid && hasAsk:
		return b.Price, a.Price
	case hasBid:
		return b.Price, b.Price + 1
	case hasAsk:
		return a.Price - 1, a.Price
	default:
		return g.cfg.CentrePrice, g.cfg.CentrePrice + 1
	}
}

// restingPrice samples a limit price that does not cross the opposite best price.
func (g *Generator) restingPrice(side orderbookv1.Side, mean float64) int64 {
	bid, ask := g.bestPrices()
	for i := 0; i < maxResample; i++ {
		p := g.normalPrice(mean)
		if side == orderbookv1.Buy && p < ask || side == orderbookv1.Sell && p > bid {
			return p
		}
	}
	if side == orderbookv1.Buy {
		return max(ask-1, 1)
	}
	return bid + 1
}

// untriggeredStop samples a stop price beyond the opposite best price so the
// order rests instead of activating at once.
func (g *Generator) untriggeredStop(side orderbookv1.Side) int64 {
	bid, ask := g.bestPrices()
	for i := 0; i < maxResample; i++ {
		p := g.normalPrice(float64(bid))
		if side == orderbookv1.Buy && p > ask || side == orderbookv1.Sell && p < bid {
			return p
		}
	}
	if side == orderbookv1.Buy {
		return ask + 1
	}
	return max(bid-1, 1)
}

// pick returns a random live order of kind while the pool holds more than
// floor ids. Ids of orders that left the book are evicted on the way, and ids
// of stop-limit orders that now rest as limits move to the limit pool.
func (g *Generator) pick(kind orderbookv1.KindType, floor int) (orderbookv1.Order, bool) {
	o, _, ok := g.pickAt(kind, floor)
	return o, ok
}

// take is pick followed by removal of the id from its pool.
func (g *Generator) take(kind orderbookv1.KindType, floor int) (orderbookv1.Order, bool) {
	o, i, ok := g.pickAt(kind, floor)
	if ok {
		g.evict(kind, i)
	}
	return o, ok
}

func (g *Generator) pickAt(kind orderbookv1.KindType, floor int) (orderbookv1.Order, int, bool) {
	pool := g.pools[kind]
	for pool.Size() > floor {
		i := g.rng.IntN(pool.Size())
		id, _ := pool.Get(i)

		o, err := g.book.Order(id)
		if err == nil && o.Kind.Type == kind {
			return o, i, true
		}

		g.evict(kind, i)
		if err == nil {
			g.pools[o.Kind.Type].Add(id)
		}
	}
	return orderbookv1.Order{}, 0, false
}

// evict swap-removes the id at index i.
func (g *Generator) evict(kind orderbookv1.KindType, i int) {
	pool := g.pools[kind]
	last := pool.Size() - 1
	pool.Swap(i, last)
	pool.Remove(last)
}
