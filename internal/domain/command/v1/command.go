package commandv1

import (
	"fmt"
	"strconv"
	"strings"

	orderbookv1 "github.com/muhammadchandra19/limit-order-book/internal/domain/orderbook/v1"
)

// Type is the verb that starts a command line.
type Type string

const (
	TypeMarket          Type = "Market"
	TypeAddLimit        Type = "AddLimit"
	TypeAddMarketLimit  Type = "AddMarketLimit"
	TypeCancelLimit     Type = "CancelLimit"
	TypeModifyLimit     Type = "ModifyLimit"
	TypeAddStop         Type = "AddStop"
	TypeCancelStop      Type = "CancelStop"
	TypeModifyStop      Type = "ModifyStop"
	TypeAddStopLimit    Type = "AddStopLimit"
	TypeCancelStopLimit Type = "CancelStopLimit"
	TypeModifyStopLimit Type = "ModifyStopLimit"
)

// Field names one positional argument of a command.
type Field string

const (
	FieldOrderID    Field = "order_id"
	FieldSide       Field = "side"
	FieldQty        Field = "qty"
	FieldLimitPrice Field = "limit_price"
	FieldStopPrice  Field = "stop_price"
)

var layouts = map[Type][]Field{
	TypeMarket:          {FieldOrderID, FieldSide, FieldQty},
	TypeAddLimit:        {FieldOrderID, FieldSide, FieldQty, FieldLimitPrice},
	TypeAddMarketLimit:  {FieldOrderID, FieldSide, FieldQty, FieldLimitPrice},
	TypeCancelLimit:     {FieldOrderID},
	TypeModifyLimit:     {FieldOrderID, FieldQty, FieldLimitPrice},
	TypeAddStop:         {FieldOrderID, FieldSide, FieldQty, FieldStopPrice},
	TypeCancelStop:      {FieldOrderID},
	TypeModifyStop:      {FieldOrderID, FieldQty, FieldStopPrice},
	TypeAddStopLimit:    {FieldOrderID, FieldSide, FieldQty, FieldLimitPrice, FieldStopPrice},
	TypeCancelStopLimit: {FieldOrderID},
	TypeModifyStopLimit: {FieldOrderID, FieldQty, FieldLimitPrice, FieldStopPrice},
}

// Fields returns the positional arguments expected after the verb.
func (t Type) Fields() ([]Field, bool) {
	fields, ok := layouts[t]
	return fields, ok
}

// IsValid reports whether t is a known verb.
func (t Type) IsValid() bool {
	_, ok := layouts[t]
	return ok
}

// Command is one instruction of an order stream.
type Command struct {
	Type       Type
	OrderID    int64
	Side       orderbookv1.Side
	Qty        int64
	LimitPrice int64
	StopPrice  int64

	// Line is the 1-based position in the source stream, 0 when not read from one.
	Line int
}

// Value returns the argument stored for field.
func (c Command) Value(field Field) int64 {
	switch field {
	case FieldOrderID:
		return c.OrderID
	case FieldSide:
		return FormatSide(c.Side)
	case FieldQty:
		return c.Qty
	case FieldLimitPrice:
		return c.LimitPrice
	case FieldStopPrice:
		return c.StopPrice
	default:
		return 0
	}
}

// String renders the command in the line format read back by the command reader,
// e.g. "AddStopLimit 7 1 40 105 103".
func (c Command) String() string {
	fields, _ := c.Type.Fields()

	var sb strings.Builder
	sb.WriteString(string(c.Type))
	for _, f := range fields {
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatInt(c.Value(f), 10))
	}
	return sb.String()
}

// FormatSide encodes a side as 1 for buy and 0 for sell.
func FormatSide(side orderbookv1.Side) int64 {
	if side == orderbookv1.Buy {
		return 1
	}
	return 0
}

// ParseSide accepts 1/0 and buy/sell in any case.
func ParseSide(s string) (orderbookv1.Side, error) {
	switch strings.ToLower(s) {
	case "1", "buy":
		return orderbookv1.Buy, nil
	case "0", "sell":
		return orderbookv1.Sell, nil
	default:
		return 0, fmt.Errorf("%w: %q", orderbookv1.ErrInvalidSide, s)
	}
}

// Apply executes the command against book.
func Apply(book orderbookv1.Book, c Command) (orderbookv1.Report, error) {
	switch c.Type {
	case TypeMarket:
		return book.MarketOrder(c.OrderID, c.Side, c.Qty)
	case TypeAddLimit, TypeAddMarketLimit:
		return book.AddLimitOrder(c.OrderID, c.Side, c.Qty, c.LimitPrice)
	case TypeCancelLimit:
		return book.CancelLimitOrder(c.OrderID)
	case TypeModifyLimit:
		return book.ModifyLimitOrder(c.OrderID, c.Qty, c.LimitPrice)
	case TypeAddStop:
		return book.AddStopOrder(c.OrderID, c.Side, c.Qty, c.StopPrice)
	case TypeCancelStop:
		return book.CancelStopOrder(c.OrderID)
	case TypeModifyStop:
		return book.ModifyStopOrder(c.OrderID, c.Qty, c.StopPrice)
	case TypeAddStopLimit:
		return book.AddStopLimitOrder(c.OrderID, c.Side, c.Qty, c.LimitPrice, c.StopPrice)
	case TypeCancelStopLimit:
		return book.CancelStopLimitOrder(c.OrderID)
	case TypeModifyStopLimit:
		return book.ModifyStopLimitOrder(c.OrderID, c.Qty, c.LimitPrice, c.StopPrice)
	default:
		return orderbookv1.Report{}, fmt.Errorf("%w: %q", ErrUnknownCommand, c.Type)
	}
}
