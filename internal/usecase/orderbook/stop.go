package orderbook

import orderbookv1 "github.com/muhammadchandra19/limit-order-book/internal/domain/orderbook/v1"

// AddStopOrder rests a stop order at stopPrice, or executes it at once as a
// market order when the opposite best price has already reached stopPrice.
func (b *Orderbook) AddStopOrder(id int64, side orderbookv1.Side, qty, stopPrice int64) (orderbookv1.Report, error) {
	var m orderbookv1.Report
	if err := validateOrder(side, qty, stopPrice); err != nil {
		return m, err
	}
	if err := b.checkUnique(id); err != nil {
		return m, err
	}

	b.addStopOrder(id, side, qty, stopPrice, &m)
	return m, nil
}

// CancelStopOrder removes a resting stop order.
func (b *Orderbook) CancelStopOrder(id int64) (orderbookv1.Report, error) {
	return b.cancel(id, orderbookv1.KindStop)
}

// ModifyStopOrder cancels the stop order and adds it again with the new
// quantity and stop price.
func (b *Orderbook) ModifyStopOrder(id int64, qty, stopPrice int64) (orderbookv1.Report, error) {
	var m orderbookv1.Report
	oh, err := b.lookupKind(id, orderbookv1.KindStop)
	if err != nil {
		return m, err
	}
	if err := validateOrder(b.orders.get(oh).Side, qty, stopPrice); err != nil {
		return m, err
	}

	o := b.deleteOrder(oh, &m)
	b.addStopOrder(id, o.Side, qty, stopPrice, &m)
	return m, nil
}

// AddStopLimitOrder rests a stop-limit order at stopPrice, or adds it at once
// as a limit order at limitPrice when the opposite best price has already
// reached stopPrice.
func (b *Orderbook) AddStopLimitOrder(id int64, side orderbookv1.Side, qty, limitPrice, stopPrice int64) (orderbookv1.Report, error) {
	var m orderbookv1.Report
	if err := validateOrder(side, qty, limitPrice, stopPrice); err != nil {
		return m, err
	}
	if err := b.checkUnique(id); err != nil {
		return m, err
	}

	b.addStopLimitOrder(id, side, qty, limitPrice, stopPrice, &m)
	return m, nil
}

// CancelStopLimitOrder removes a resting stop-limit order.
func (b *Orderbook) CancelStopLimitOrder(id int64) (orderbookv1.Report, error) {
	return b.cancel(id, orderbookv1.KindStopLimit)
}

// ModifyStopLimitOrder cancels the stop-limit order and adds it again with
// the new quantity, limit price and stop price.
func (b *Orderbook) ModifyStopLimitOrder(id int64, qty, limitPrice, stopPrice int64) (orderbookv1.Report, error) {
	var m orderbookv1.Report
	oh, err := b.lookupKind(id, orderbookv1.KindStopLimit)
	if err != nil {
		return m, err
	}
	if err := validateOrder(b.orders.get(oh).Side, qty, limitPrice, stopPrice); err != nil {
		return m, err
	}

	o := b.deleteOrder(oh, &m)
	b.addStopLimitOrder(id, o.Side, qty, limitPrice, stopPrice, &m)
	return m, nil
}

func (b *Orderbook) addStopOrder(id int64, side orderbookv1.Side, qty, stopPrice int64, m *orderbookv1.Report) {
	if b.stopReached(side, stopPrice) {
		m.Triggered++
		b.marketOrder(id, side, qty, m)
		return
	}
	b.rest(id, side, orderbookv1.Stop(), qty, stopPrice, m)
}

func (b *Orderbook) addStopLimitOrder(id int64, side orderbookv1.Side, qty, limitPrice, stopPrice int64, m *orderbookv1.Report) {
	if b.stopReached(side, stopPrice) {
		m.Triggered++
		b.addLimitOrder(id, side, qty, limitPrice, m)
		return
	}
	b.rest(id, side, orderbookv1.StopLimit(limitPrice), qty, stopPrice, m)
}

// stopReached reports whether a new stop at stopPrice is already triggered
// by the current opposite best price. An empty opposite side never triggers.
func (b *Orderbook) stopReached(side orderbookv1.Side, stopPrice int64) bool {
	best, ok := b.limits(side.Opposite()).bestPrice()
	if !ok {
		return false
	}
	if side == orderbookv1.Buy {
		return stopPrice <= best
	}
	return stopPrice >= best
}

// cascadeReady reports whether the best stop level of side must activate.
// An empty opposite side activates every stop on side.
func (b *Orderbook) cascadeReady(side orderbookv1.Side) bool {
	stopPrice, ok := b.stops(side).bestPrice()
	if !ok {
		return false
	}
	best, ok := b.limits(side.Opposite()).bestPrice()
	if !ok {
		return true
	}
	if side == orderbookv1.Buy {
		return stopPrice <= best
	}
	return stopPrice >= best
}

// executeStopOrders activates the head order of the best stop level of side
// while the trigger condition holds. A stop order becomes a market order for
// its remaining quantity; a stop-limit order becomes a limit order under the
// same id and may rest. Every activation removes one order from the stop
// index, so the loop terminates.
func (b *Orderbook) executeStopOrders(side orderbookv1.Side, m *orderbookv1.Report) {
	stops := b.stops(side)

	for b.cascadeReady(side) {
		head := b.levels.get(stops.best).Head
		o := b.deleteOrder(head, m)
		m.Triggered++

		switch o.Kind.Type {
		case orderbookv1.KindStop:
			b.sweep(o.ID, side, o.Quantity, 0, false, m)
		case orderbookv1.KindStopLimit:
			limit := o.Kind.LimitPrice
			if remaining := b.sweep(o.ID, side, o.Quantity, limit, true, m); remaining > 0 {
				b.rest(o.ID, side, orderbookv1.Limit(), remaining, limit, m)
			}
		}
	}
}
