package orderbookv1

import "fmt"

// Side is the side of the book an order rests on or trades against.
type Side uint8

const (
	// Buy orders rest on the bid side and trade against asks.
	Buy Side = iota + 1
	// Sell orders rest on the ask side and trade against bids.
	Sell
)

// Opposite returns the side an order of this side trades against.
func (s Side) Opposite() Side {
	if s == Buy {
		return Sell
	}
	return Buy
}

// IsValid reports whether s is Buy or Sell.
func (s Side) IsValid() bool {
	return s == Buy || s == Sell
}

func (s Side) String() string {
	switch s {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return fmt.Sprintf("Side(%d)", uint8(s))
	}
}

// KindType tags the variant held by an OrderKind.
type KindType uint8

const (
	// KindLimit is a resting limit order (or a market order, which never rests).
	KindLimit KindType = iota + 1
	// KindStop becomes a market order when its stop price is reached.
	KindStop
	// KindStopLimit becomes a limit order at its limit price when its stop price is reached.
	KindStopLimit
)

func (k KindType) String() string {
	switch k {
	case KindLimit:
		return "limit"
	case KindStop:
		return "stop"
	case KindStopLimit:
		return "stop-limit"
	default:
		return fmt.Sprintf("KindType(%d)", uint8(k))
	}
}

// OrderKind is the tagged variant Limit | Stop | StopLimit{LimitPrice}.
type OrderKind struct {
	Type KindType
	// LimitPrice is only meaningful for KindStopLimit.
	LimitPrice int64
}

// Limit returns the Limit kind.
func Limit() OrderKind { return OrderKind{Type: KindLimit} }

// Stop returns the Stop kind.
func Stop() OrderKind { return OrderKind{Type: KindStop} }

// StopLimit returns the StopLimit kind carrying the price used after activation.
func StopLimit(limitPrice int64) OrderKind {
	return OrderKind{Type: KindStopLimit, LimitPrice: limitPrice}
}

// IsStop reports whether the kind rests in a stop index.
func (k OrderKind) IsStop() bool {
	return k.Type == KindStop || k.Type == KindStopLimit
}

// Class selects the family of indexes an order rests in.
type Class uint8

const (
	// ClassLimit indexes are keyed by limit price.
	ClassLimit Class = iota + 1
	// ClassStop indexes are keyed by stop price.
	ClassStop
)

func (c Class) String() string {
	if c == ClassStop {
		return "stop"
	}
	return "limit"
}

// ClassOf returns the index class for an order kind.
func ClassOf(kind OrderKind) Class {
	if kind.IsStop() {
		return ClassStop
	}
	return ClassLimit
}

// Handle addresses a record in an arena. The zero Handle is never allocated.
type Handle uint32

// Nil is the absent handle.
const Nil Handle = 0

// Order is a single resting unit of liquidity.
type Order struct {
	ID       int64
	Side     Side
	Kind     OrderKind
	Quantity int64
	// Price is the key of the level the order rests in: the limit price for
	// limit orders and the stop price for stop and stop-limit orders.
	Price    int64
	Sequence uint64

	Level Handle
	Prev  Handle
	Next  Handle
}

// LimitPrice returns the price the order trades at once it is a limit order,
// and false for pure stop orders.
func (o *Order) LimitPrice() (int64, bool) {
	switch o.Kind.Type {
	case KindLimit:
		return o.Price, true
	case KindStopLimit:
		return o.Kind.LimitPrice, true
	default:
		return 0, false
	}
}

// StopPrice returns the trigger price of a stop or stop-limit order.
func (o *Order) StopPrice() (int64, bool) {
	if o.Kind.IsStop() {
		return o.Price, true
	}
	return 0, false
}
