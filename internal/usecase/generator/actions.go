package generator

import (
	commandv1 "github.com/muhammadchandra19/limit-order-book/internal/domain/command/v1"
	orderbookv1 "github.com/muhammadchandra19/limit-order-book/internal/domain/orderbook/v1"
)

func (g *Generator) market() commandv1.Command {
	return commandv1.Command{Type: commandv1.TypeMarket, OrderID: g.takeID(), Side: g.side(), Qty: g.quantity()}
}

func (g *Generator) addLimit() commandv1.Command {
	side := g.side()
	return commandv1.Command{
		Type:       commandv1.TypeAddLimit,
		OrderID:    g.takeID(),
		Side:       side,
		Qty:        g.quantity(),
		LimitPrice: g.restingPrice(side, float64(g.cfg.CentrePrice)),
	}
}

// addMarketLimit prices one tick through the opposite best price.
func (g *Generator) addMarketLimit() commandv1.Command {
	side := g.side()
	bid, ask := g.bestPrices()

	price := max(bid-1, 1)
	if side == orderbookv1.Buy {
		price = ask + 1
	}
	return commandv1.Command{Type: commandv1.TypeAddMarketLimit, OrderID: g.takeID(), Side: side, Qty: g.quantity(), LimitPrice: price}
}

func (g *Generator) cancelLimit() commandv1.Command {
	o, ok := g.take(orderbookv1.KindLimit, g.cfg.MinLimitPool)
	if !ok {
		return g.addLimit()
	}
	return commandv1.Command{Type: commandv1.TypeCancelLimit, OrderID: o.ID, Side: o.Side}
}

func (g *Generator) modifyLimit() commandv1.Command {
	o, ok := g.pick(orderbookv1.KindLimit, g.cfg.MinLimitPool)
	if !ok {
		return g.addLimit()
	}
	bid, _ := g.bestPrices()
	return commandv1.Command{
		Type:       commandv1.TypeModifyLimit,
		OrderID:    o.ID,
		Side:       o.Side,
		Qty:        g.quantity(),
		LimitPrice: g.restingPrice(o.Side, float64(bid)),
	}
}

func (g *Generator) addStop() commandv1.Command {
	side := g.side()
	return commandv1.Command{
		Type:      commandv1.TypeAddStop,
		OrderID:   g.takeID(),
		Side:      side,
		Qty:       g.quantity(),
		StopPrice: g.untriggeredStop(side),
	}
}

func (g *Generator) cancelStop() commandv1.Command {
	o, ok := g.take(orderbookv1.KindStop, g.cfg.MinStopPool)
	if !ok {
		return g.addStop()
	}
	return commandv1.Command{Type: commandv1.TypeCancelStop, OrderID: o.ID, Side: o.Side}
}

func (g *Generator) modifyStop() commandv1.Command {
	o, ok := g.pick(orderbookv1.KindStop, g.cfg.MinStopPool)
	if !ok {
		return g.addStop()
	}
	return commandv1.Command{
		Type:      commandv1.TypeModifyStop,
		OrderID:   o.ID,
		Side:      o.Side,
		Qty:       g.quantity(),
		StopPrice: g.untriggeredStop(o.Side),
	}
}

func (g *Generator) addStopLimit() commandv1.Command {
	side := g.side()
	return g.stopLimitCommand(g.takeID(), side, g.untriggeredStop(side))
}

func (g *Generator) cancelStopLimit() commandv1.Command {
	o, ok := g.take(orderbookv1.KindStopLimit, g.cfg.MinStopPool)
	if !ok {
		return g.addStopLimit()
	}
	return commandv1.Command{Type: commandv1.TypeCancelStopLimit, OrderID: o.ID, Side: o.Side}
}

func (g *Generator) modifyStopLimit() commandv1.Command {
	o, ok := g.pick(orderbookv1.KindStopLimit, g.cfg.MinStopPool)
	if !ok {
		return g.addStopLimit()
	}
	cmd := g.stopLimitCommand(o.ID, o.Side, g.untriggeredStop(o.Side))
	cmd.Type = commandv1.TypeModifyStopLimit
	return cmd
}

// stopLimitCommand places the limit price 1 to 5 ticks beyond stop in the
// direction the order trades.
func (g *Generator) stopLimitCommand(id int64, side orderbookv1.Side, stop int64) commandv1.Command {
	offset := 1 + g.rng.Int64N(maxStopLimitOffset)
	limit := max(stop-offset, 1)
	if side == orderbookv1.Buy {
		limit = stop + offset
	}
	return commandv1.Command{
		Type:       commandv1.TypeAddStopLimit,
		OrderID:    id,
		Side:       side,
		Qty:        g.quantity(),
		LimitPrice: limit,
		StopPrice:  stop,
	}
}
