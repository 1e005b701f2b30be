package snapshotv1

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Snapshot is a read-only copy of the book's four indexes at one point in time.
type Snapshot struct {
	BuyLimits  []Level `json:"buyLimits"`
	SellLimits []Level `json:"sellLimits"`
	BuyStops   []Level `json:"buyStops"`
	SellStops  []Level `json:"sellStops"`
	OrderCount int     `json:"orderCount"`
}

// Level is one price level in ascending price order, with its queue from head to tail.
type Level struct {
	Price       int64       `json:"price"`
	OrderCount  int         `json:"orderCount"`
	TotalVolume int64       `json:"totalVolume"`
	Orders      []BookOrder `json:"orders"`
}

// BookOrder represents a resting order with its details.
type BookOrder struct {
	OrderID    int64  `json:"orderID"`
	Side       string `json:"side"`
	Kind       string `json:"kind"`
	Quantity   int64  `json:"quantity"`
	Price      int64  `json:"price"`
	LimitPrice int64  `json:"limitPrice,omitempty"`
}

// Digest returns the hex encoded blake3 hash of every level and queued order.
// Books holding the same orders at the same queue positions share a digest.
func (s Snapshot) Digest() string {
	hasher := blake3.New()

	var buf [8]byte
	writeInt := func(v int64) {
		binary.BigEndian.PutUint64(buf[:], uint64(v))
		_, _ = hasher.Write(buf[:])
	}
	writeString := func(v string) {
		writeInt(int64(len(v)))
		_, _ = hasher.Write([]byte(v))
	}

	for _, levels := range [][]Level{s.BuyLimits, s.SellLimits, s.BuyStops, s.SellStops} {
		writeInt(int64(len(levels)))
		for _, level := range levels {
			writeInt(level.Price)
			writeInt(level.TotalVolume)
			writeInt(int64(len(level.Orders)))
			for _, o := range level.Orders {
				writeInt(o.OrderID)
				writeString(o.Side)
				writeString(o.Kind)
				writeInt(o.Quantity)
				writeInt(o.LimitPrice)
			}
		}
	}

	return hex.EncodeToString(hasher.Sum(nil))
}
