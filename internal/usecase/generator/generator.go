package generator

import (
	"bufio"
	"context"
	"io"
	"math"
	"math/rand/v2"
	"sort"

	"github.com/emirpasic/gods/v2/lists/arraylist"
	commandv1 "github.com/muhammadchandra19/limit-order-book/internal/domain/command/v1"
	orderbookv1 "github.com/muhammadchandra19/limit-order-book/internal/domain/orderbook/v1"
	"github.com/muhammadchandra19/limit-order-book/pkg/config"
	"github.com/muhammadchandra19/limit-order-book/pkg/errors"
	"github.com/muhammadchandra19/limit-order-book/pkg/logger"
)

const (
	maxQuantity = 1000
	// maxResample bounds the rejection sampling of a price that must fall on
	// one side of the book.
	maxResample = 64
	// maxStopLimitOffset is the largest distance between the stop and limit
	// price of a generated stop-limit order.
	maxStopLimitOffset = 5
)

type action func() commandv1.Command

// Generator produces a synthetic command stream. It applies every command to
// its own book so that prices and cancelled ids follow the live state.
type Generator struct {
	cfg    config.GeneratorConfig
	book   orderbookv1.Book
	rng    *rand.Rand
	logger *logger.Logger

	nextID int64
	pools  map[orderbookv1.KindType]*arraylist.List[int64]

	actions    []action
	cumulative []float64
}

// NewGenerator creates a Generator driving book. A zero seed picks a random one.
func NewGenerator(cfg config.GeneratorConfig, book orderbookv1.Book, log *logger.Logger) *Generator {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	g := &Generator{
		cfg:    cfg,
		book:   book,
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		logger: log,
		nextID: 1,
		pools: map[orderbookv1.KindType]*arraylist.List[int64]{
			orderbookv1.KindLimit:     arraylist.New[int64](),
			orderbookv1.KindStop:      arraylist.New[int64](),
			orderbookv1.KindStopLimit: arraylist.New[int64](),
		},
	}

	weighted := []struct {
		weight float64
		action action
	}{
		{0.025, g.market},
		{0, g.addLimit},
		{0.195, g.cancelLimit},
		{0.295, g.modifyLimit},
		{0.025, g.addMarketLimit},
		{0, g.addStop},
		{0.12, g.cancelStop},
		{0.12, g.modifyStop},
		{0, g.addStopLimit},
		{0.12, g.cancelStopLimit},
		{0.12, g.modifyStopLimit},
	}

	total := 0.0
	for _, w := range weighted {
		total += w.weight
		g.actions = append(g.actions, w.action)
		g.cumulative = append(g.cumulative, total)
	}

	log.Debug("Generator created",
		logger.NewField("seed", seed),
		logger.NewField("centre_price", cfg.CentrePrice),
	)
	return g
}

// WriteInitialOrders writes cfg.InitialOrders limit orders around the centre
// price followed by ten percent as many stop and stop-limit orders.
func (g *Generator) WriteInitialOrders(ctx context.Context, w io.Writer) error {
	bw := bufio.NewWriter(w)
	centre := g.cfg.CentrePrice
	n := g.cfg.InitialOrders

	for i := 0; i < n; i++ {
		price := g.normalPrice(float64(centre))
		side := orderbookv1.Sell
		if price < centre {
			side = orderbookv1.Buy
		}
		cmd := commandv1.Command{Type: commandv1.TypeAddLimit, OrderID: g.takeID(), Side: side, Qty: g.quantity(), LimitPrice: price}
		g.apply(cmd)
		if err := g.emit(ctx, bw, cmd); err != nil {
			return err
		}
	}

	stops := int(math.Floor(float64(n)*1.1)) - n
	for i := 0; i < stops; i++ {
		stop := g.normalPrice(float64(centre))
		side := orderbookv1.Sell
		if stop > centre {
			side = orderbookv1.Buy
		}

		var cmd commandv1.Command
		if g.rng.IntN(2) == 1 {
			cmd = commandv1.Command{Type: commandv1.TypeAddStop, OrderID: g.takeID(), Side: side, Qty: g.quantity(), StopPrice: stop}
		} else {
			cmd = g.stopLimitCommand(g.takeID(), side, stop)
		}
		g.apply(cmd)
		if err := g.emit(ctx, bw, cmd); err != nil {
			return err
		}
	}

	return g.flush(bw)
}

// WriteOrders writes count commands drawn from the action weights.
func (g *Generator) WriteOrders(ctx context.Context, w io.Writer, count int) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < count; i++ {
		if err := g.emit(ctx, bw, g.Next()); err != nil {
			return err
		}
	}
	return g.flush(bw)
}

// Next draws one action, applies it to the book and returns the command.
func (g *Generator) Next() commandv1.Command {
	r := g.rng.Float64()
	i := sort.SearchFloat64s(g.cumulative, r)
	if i >= len(g.actions) {
		i = len(g.actions) - 1
	}

	cmd := g.actions[i]()
	g.apply(cmd)
	return cmd
}

func (g *Generator) emit(ctx context.Context, w *bufio.Writer, cmd commandv1.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := w.WriteString(cmd.String()); err != nil {
		return errors.NewCodeTracer(errors.OrderWriteError).Wrap(err)
	}
	if err := w.WriteByte('\n'); err != nil {
		return errors.NewCodeTracer(errors.OrderWriteError).Wrap(err)
	}
	return nil
}

func (g *Generator) flush(w *bufio.Writer) error {
	if err := w.Flush(); err != nil {
		return errors.NewCodeTracer(errors.OrderWriteError).Wrap(err)
	}
	return nil
}

// apply executes cmd on the book and tracks the id of an order left resting.
func (g *Generator) apply(cmd commandv1.Command) {
	if _, err := commandv1.Apply(g.book, cmd); err != nil {
		g.logger.Warn("Generated command rejected",
			logger.NewField("command", cmd.String()),
			logger.NewField("error", err.Error()),
		)
		return
	}

	switch cmd.Type {
	case commandv1.TypeAddLimit, commandv1.TypeAddMarketLimit, commandv1.TypeAddStop, commandv1.TypeAddStopLimit:
		if o, err := g.book.Order(cmd.OrderID); err == nil {
			g.pools[o.Kind.Type].Add(o.ID)
		}
	}
}
