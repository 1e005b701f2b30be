package orderbookv1

import snapshotv1 "github.com/muhammadchandra19/limit-order-book/internal/domain/snapshot/v1"

// Book defines the operations of a single-instrument limit order book.
// Implementations are not safe for concurrent use.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=orderbookv1_mock
type Book interface {
	MarketOrder(id int64, side Side, qty int64) (Report, error)
	AddLimitOrder(id int64, side Side, qty, price int64) (Report, error)
	CancelLimitOrder(id int64) (Report, error)
	ModifyLimitOrder(id int64, qty, price int64) (Report, error)
	AddStopOrder(id int64, side Side, qty, stopPrice int64) (Report, error)
	CancelStopOrder(id int64) (Report, error)
	ModifyStopOrder(id int64, qty, stopPrice int64) (Report, error)
	AddStopLimitOrder(id int64, side Side, qty, limitPrice, stopPrice int64) (Report, error)
	CancelStopLimitOrder(id int64) (Report, error)
	ModifyStopLimitOrder(id int64, qty, limitPrice, stopPrice int64) (Report, error)

	HighestBuy() (LevelInfo, bool)
	LowestSell() (LevelInfo, bool)
	LowestStopBuy() (LevelInfo, bool)
	HighestStopSell() (LevelInfo, bool)
	Level(price int64, side Side, class Class) (LevelInfo, error)
	Order(id int64) (Order, error)
	InOrder(index Index) []int64
	PreOrder(index Index) []int64
	PostOrder(index Index) []int64
	Len() int
	Snapshot() snapshotv1.Snapshot
	Validate() error
}

// Index names one of the four price indexes of a Book.
type Index uint8

const (
	// BuyLimitIndex holds resting buy limit orders; its best level is the highest.
	BuyLimitIndex Index = iota + 1
	// SellLimitIndex holds resting sell limit orders; its best level is the lowest.
	SellLimitIndex
	// BuyStopIndex holds buy stop and stop-limit orders; its best level is the lowest.
	BuyStopIndex
	// SellStopIndex holds sell stop and stop-limit orders; its best level is the highest.
	SellStopIndex
)

// IndexOf returns the index holding orders of the given side and class.
func IndexOf(side Side, class Class) Index {
	switch {
	case side == Buy && class == ClassLimit:
		return BuyLimitIndex
	case side == Sell && class == ClassLimit:
		return SellLimitIndex
	case side == Buy:
		return BuyStopIndex
	default:
		return SellStopIndex
	}
}

// Side returns the side of the orders held by the index.
func (i Index) Side() Side {
	if i == BuyLimitIndex || i == BuyStopIndex {
		return Buy
	}
	return Sell
}

// Class returns the class of the orders held by the index.
func (i Index) Class() Class {
	if i == BuyStopIndex || i == SellStopIndex {
		return ClassStop
	}
	return ClassLimit
}

// BestIsHighest reports whether the index's best level is its maximum price.
func (i Index) BestIsHighest() bool {
	return i == BuyLimitIndex || i == SellStopIndex
}

func (i Index) String() string {
	return i.Side().String() + "-" + i.Class().String()
}

// LevelInfo is a read-only view of a PriceLevel. Prices are always
// positive, so a zero ParentPrice, LeftPrice or RightPrice means absent.
type LevelInfo struct {
	Price       int64
	Side        Side
	Class       Class
	OrderCount  int
	TotalVolume int64
	Height      int
	HeadOrderID int64
	HeadQty     int64
	ParentPrice int64
	LeftPrice   int64
	RightPrice  int64
}
