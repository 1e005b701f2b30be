package orderbook

import (
	"testing"

	orderbookv1 "github.com/muhammadchandra19/limit-order-book/internal/domain/orderbook/v1"
	"github.com/muhammadchandra19/limit-order-book/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	buy  = orderbookv1.Buy
	sell = orderbookv1.Sell
)

// addLimits adds one limit order per price with consecutive ids starting at firstID.
func addLimits(t *testing.T, b *Orderbook, side orderbookv1.Side, qty, firstID int64, prices ...int64) {
	t.Helper()
	for i, price := range prices {
		_, err := b.AddLimitOrder(firstID+int64(i), side, qty, price)
		require.NoError(t, err)
	}
	require.NoError(t, b.Validate())
}

func levelAt(t *testing.T, b *Orderbook, price int64, side orderbookv1.Side) orderbookv1.LevelInfo {
	t.Helper()
	info, err := b.Level(price, side, orderbookv1.ClassLimit)
	require.NoError(t, err)
	return info
}

func cancel(t *testing.T, b *Orderbook, id int64) {
	t.Helper()
	_, err := b.CancelLimitOrder(id)
	require.NoError(t, err)
	require.NoError(t, b.Validate())
}

func TestOrderbook_Rotations(t *testing.T) {
	testCases := []struct {
		name      string
		side      orderbookv1.Side
		prices    []int64
		inOrder   []int64
		preOrder  []int64
		postOrder []int64
	}{
		{
			name:      "rr rotate on insert",
			side:      buy,
			prices:    []int64{20, 15, 25, 10, 17, 30, 35},
			inOrder:   []int64{10, 15, 17, 20, 25, 30, 35},
			preOrder:  []int64{20, 15, 10, 17, 30, 25, 35},
			postOrder: []int64{10, 17, 15, 25, 35, 30, 20},
		},
		{
			name:      "ll rotate on insert",
			side:      buy,
			prices:    []int64{20, 15, 25, 10, 22, 30, 5},
			inOrder:   []int64{5, 10, 15, 20, 22, 25, 30},
			preOrder:  []int64{20, 10, 5, 15, 25, 22, 30},
			postOrder: []int64{5, 15, 10, 22, 30, 25, 20},
		},
		{
			name:      "rl rotate on insert",
			side:      buy,
			prices:    []int64{20, 15, 25, 10, 17, 24, 30, 5, 28, 35, 26},
			inOrder:   []int64{5, 10, 15, 17, 20, 24, 25, 26, 28, 30, 35},
			preOrder:  []int64{20, 15, 10, 5, 17, 28, 25, 24, 26, 30, 35},
			postOrder: []int64{5, 10, 17, 15, 24, 26, 25, 35, 30, 28, 20},
		},
		{
			name:      "lr rotate on insert",
			side:      buy,
			prices:    []int64{20, 15, 25, 10, 17, 24, 30, 5, 13, 35, 12},
			inOrder:   []int64{5, 10, 12, 13, 15, 17, 20, 24, 25, 30, 35},
			preOrder:  []int64{20, 13, 10, 5, 12, 15, 17, 25, 24, 30, 35},
			postOrder: []int64{5, 12, 10, 17, 15, 13, 24, 35, 30, 25, 20},
		},
		{
			name:      "rr rotate root on insert",
			side:      sell,
			prices:    []int64{80, 81, 82},
			inOrder:   []int64{80, 81, 82},
			preOrder:  []int64{81, 80, 82},
			postOrder: []int64{80, 82, 81},
		},
		{
			name:      "lr rotate root on insert",
			side:      buy,
			prices:    []int64{80, 78, 79},
			inOrder:   []int64{78, 79, 80},
			preOrder:  []int64{79, 78, 80},
			postOrder: []int64{78, 80, 79},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := NewOrderbook()
			addLimits(t, b, tc.side, 80, 5, tc.prices...)

			index := orderbookv1.IndexOf(tc.side, orderbookv1.ClassLimit)
			assert.Equal(t, tc.inOrder, b.InOrder(index))
			assert.Equal(t, tc.preOrder, b.PreOrder(index))
			assert.Equal(t, tc.postOrder, b.PostOrder(index))

			root := levelAt(t, b, tc.preOrder[0], tc.side)
			assert.Zero(t, root.ParentPrice)
		})
	}
}

func TestOrderbook_RotationLinks(t *testing.T) {
	b := NewOrderbook()
	addLimits(t, b, buy, 80, 5, 20, 15, 25, 10, 17, 30)

	assert.Equal(t, int64(25), levelAt(t, b, 20, buy).RightPrice)
	assert.Equal(t, int64(30), levelAt(t, b, 25, buy).RightPrice)

	report, err := b.AddLimitOrder(11, buy, 80, 35)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Rebalances)

	l25 := levelAt(t, b, 25, buy)
	l30 := levelAt(t, b, 30, buy)
	assert.Equal(t, int64(30), levelAt(t, b, 20, buy).RightPrice)
	assert.Equal(t, int64(30), l25.ParentPrice)
	assert.Zero(t, l25.RightPrice)
	assert.Equal(t, int64(20), l30.ParentPrice)
	assert.Equal(t, int64(25), l30.LeftPrice)
	assert.Equal(t, int64(35), l30.RightPrice)
	assert.Equal(t, 2, l30.Height)
}

func TestOrderbook_RemoveLevel(t *testing.T) {
	t.Run("leaf", func(t *testing.T) {
		b := NewOrderbook()
		addLimits(t, b, buy, 80, 5, 20, 15, 25)

		cancel(t, b, 6)
		assert.Zero(t, levelAt(t, b, 20, buy).LeftPrice)
		_, err := b.Level(15, buy, orderbookv1.ClassLimit)
		assert.ErrorIs(t, err, orderbookv1.ErrPriceLevelNotFound)
	})

	t.Run("two children", func(t *testing.T) {
		b := NewOrderbook()
		addLimits(t, b, buy, 80, 5, 20, 15, 25, 10, 18, 23, 27, 17, 19)

		assert.Equal(t, int64(15), levelAt(t, b, 20, buy).LeftPrice)
		assert.Equal(t, int64(17), levelAt(t, b, 18, buy).LeftPrice)

		cancel(t, b, 6)

		l17 := levelAt(t, b, 17, buy)
		assert.Equal(t, int64(17), levelAt(t, b, 20, buy).LeftPrice)
		assert.Equal(t, int64(17), levelAt(t, b, 10, buy).ParentPrice)
		assert.Zero(t, levelAt(t, b, 18, buy).LeftPrice)
		assert.Equal(t, int64(10), l17.LeftPrice)
		assert.Equal(t, int64(18), l17.RightPrice)
		assert.Equal(t, int64(20), l17.ParentPrice)
	})

	t.Run("two children, right child has no left child", func(t *testing.T) {
		b := NewOrderbook()
		addLimits(t, b, buy, 80, 5, 20, 15, 25, 10, 18, 23, 27)

		cancel(t, b, 7)

		assert.Equal(t, int64(27), levelAt(t, b, 20, buy).RightPrice)
		assert.Equal(t, int64(27), levelAt(t, b, 23, buy).ParentPrice)
		assert.Equal(t, int64(20), levelAt(t, b, 27, buy).ParentPrice)
	})

	t.Run("two children, successor has right child", func(t *testing.T) {
		b := NewOrderbook()
		addLimits(t, b, buy, 80, 3, 224, 220, 228, 218, 221, 226, 231, 217, 225, 229, 233, 230)
		assert.Equal(t, []int64{224, 220, 218, 217, 221, 228, 226, 225, 231, 229, 230, 233}, b.PreOrder(orderbookv1.BuyLimitIndex))

		cancel(t, b, 5)

		assert.Equal(t, []int64{217, 218, 220, 221, 224, 225, 226, 229, 230, 231, 233}, b.InOrder(orderbookv1.BuyLimitIndex))
		assert.Equal(t, []int64{224, 220, 218, 217, 221, 229, 226, 225, 231, 230, 233}, b.PreOrder(orderbookv1.BuyLimitIndex))
		assert.Equal(t, []int64{217, 218, 221, 220, 225, 226, 230, 233, 231, 229, 224}, b.PostOrder(orderbookv1.BuyLimitIndex))
	})

	t.Run("two children, successor has right child, deeper tree", func(t *testing.T) {
		b := NewOrderbook()
		addLimits(t, b, buy, 80, 3, 250, 255, 228, 251, 260, 226, 231, 265, 225, 229, 233, 230)

		cancel(t, b, 5)

		assert.Equal(t, []int64{250, 229, 226, 225, 231, 230, 233, 255, 251, 260, 265}, b.PreOrder(orderbookv1.BuyLimitIndex))
		assert.Equal(t, []int64{225, 226, 230, 233, 231, 229, 251, 265, 260, 255, 250}, b.PostOrder(orderbookv1.BuyLimitIndex))
	})

	t.Run("emptying a tree", func(t *testing.T) {
		b := NewOrderbook()
		addLimits(t, b, buy, 80, 5, 20)

		cancel(t, b, 5)

		_, ok := b.HighestBuy()
		assert.False(t, ok)
		assert.Empty(t, b.InOrder(orderbookv1.BuyLimitIndex))
	})

	t.Run("root with left child only", func(t *testing.T) {
		b := NewOrderbook()
		addLimits(t, b, sell, 80, 5, 20, 15)

		cancel(t, b, 5)

		assert.Equal(t, []int64{15}, b.PreOrder(orderbookv1.SellLimitIndex))
		assert.Zero(t, levelAt(t, b, 15, sell).ParentPrice)
	})

	t.Run("root with right child only", func(t *testing.T) {
		b := NewOrderbook()
		addLimits(t, b, buy, 80, 5, 20, 25)

		cancel(t, b, 5)

		assert.Equal(t, []int64{25}, b.PreOrder(orderbookv1.BuyLimitIndex))
		assert.Zero(t, levelAt(t, b, 25, buy).ParentPrice)
	})

	t.Run("root with two children", func(t *testing.T) {
		b := NewOrderbook()
		addLimits(t, b, buy, 80, 5, 20, 15, 25, 27, 22)

		cancel(t, b, 5)

		l25 := levelAt(t, b, 25, buy)
		assert.Equal(t, int64(22), b.PreOrder(orderbookv1.BuyLimitIndex)[0])
		assert.Equal(t, int64(22), levelAt(t, b, 15, buy).ParentPrice)
		assert.Equal(t, int64(22), l25.ParentPrice)
		assert.Zero(t, l25.LeftPrice)
		assert.Zero(t, levelAt(t, b, 22, buy).ParentPrice)
	})

	t.Run("root with two children, right child has no left child", func(t *testing.T) {
		b := NewOrderbook()
		addLimits(t, b, buy, 80, 5, 20, 15, 25, 27)

		cancel(t, b, 5)

		assert.Equal(t, int64(25), levelAt(t, b, 15, buy).ParentPrice)
		assert.Zero(t, levelAt(t, b, 25, buy).ParentPrice)
	})

	t.Run("root with two children, successor has right child", func(t *testing.T) {
		b := NewOrderbook()
		addLimits(t, b, buy, 80, 5, 228, 226, 231, 225, 229, 233, 230)

		cancel(t, b, 5)

		assert.Equal(t, []int64{229, 226, 225, 231, 230, 233}, b.PreOrder(orderbookv1.BuyLimitIndex))
		assert.Equal(t, []int64{225, 226, 230, 233, 231, 229}, b.PostOrder(orderbookv1.BuyLimitIndex))
	})

	t.Run("best edge moves to subtree extreme", func(t *testing.T) {
		b := NewOrderbook()
		addLimits(t, b, buy, 10, 1, 80, 75, 85, 82)

		cancel(t, b, 3)

		best, ok := b.HighestBuy()
		require.True(t, ok)
		assert.Equal(t, int64(82), best.Price)
	})
}

func TestOrderbook_MarketableLimitOrder(t *testing.T) {
	b := NewOrderbook()

	_, err := b.AddLimitOrder(357, buy, 40, 100)
	require.NoError(t, err)
	report, err := b.AddLimitOrder(222, sell, 35, 100)
	require.NoError(t, err)
	require.NoError(t, b.Validate())

	best, ok := b.HighestBuy()
	require.True(t, ok)
	assert.Equal(t, int64(100), best.Price)
	assert.Equal(t, int64(5), best.TotalVolume)
	assert.Equal(t, int64(5), best.HeadQty)
	assert.Equal(t, int64(357), best.HeadOrderID)

	_, ok = b.LowestSell()
	assert.False(t, ok)

	assert.Equal(t, 1, report.Executed)
	assert.Zero(t, report.Rested)
	require.Len(t, report.Fills, 1)
	assert.Equal(t, orderbookv1.Fill{
		TakerOrderID: 222,
		MakerOrderID: 357,
		TakerSide:    sell,
		Price:        100,
		Quantity:     35,
	}, report.Fills[0])

	_, err = b.Order(222)
	assert.ErrorIs(t, err, orderbookv1.ErrOrderNotFound)
}

func TestOrderbook_LimitOrderSweepsAndRests(t *testing.T) {
	b := NewOrderbook()
	addLimits(t, b, sell, 10, 1, 101, 102, 104)

	report, err := b.AddLimitOrder(10, buy, 25, 102)
	require.NoError(t, err)
	require.NoError(t, b.Validate())

	assert.Equal(t, int64(20), report.VolumeTraded())
	assert.Equal(t, int64(5), report.Rested)
	assert.Equal(t, 2, report.Executed)

	bid, ok := b.HighestBuy()
	require.True(t, ok)
	assert.Equal(t, int64(102), bid.Price)
	assert.Equal(t, int64(5), bid.TotalVolume)

	ask, ok := b.LowestSell()
	require.True(t, ok)
	assert.Equal(t, int64(104), ask.Price)
}

func TestOrderbook_MarketOrder(t *testing.T) {
	testCases := []struct {
		name           string
		qty            int64
		expectedBest   int64
		expectedVolume int64
		expectedFills  int
		bookEmpty      bool
	}{
		{name: "partial fill of head", qty: 3, expectedBest: 100, expectedVolume: 17, expectedFills: 1},
		{name: "exact level", qty: 20, expectedBest: 99, expectedVolume: 10, expectedFills: 2},
		{name: "walks levels", qty: 25, expectedBest: 99, expectedVolume: 5, expectedFills: 3},
		{name: "exhausts book and discards rest", qty: 100, bookEmpty: true, expectedFills: 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := NewOrderbook()
			addLimits(t, b, buy, 10, 1, 100, 100, 99)

			report, err := b.MarketOrder(50, sell, tc.qty)
			require.NoError(t, err)
			require.NoError(t, b.Validate())
			assert.Len(t, report.Fills, tc.expectedFills)
			assert.Zero(t, report.Rested)

			best, ok := b.HighestBuy()
			if tc.bookEmpty {
				assert.False(t, ok)
				assert.Zero(t, b.Len())
				return
			}
			require.True(t, ok)
			assert.Equal(t, tc.expectedBest, best.Price)
			assert.Equal(t, tc.expectedVolume, best.TotalVolume)
		})
	}

	t.Run("empty book", func(t *testing.T) {
		b := NewOrderbook()
		report, err := b.MarketOrder(1, buy, 10)
		require.NoError(t, err)
		assert.Empty(t, report.Fills)
	})
}

func TestOrderbook_PriceTimePriority(t *testing.T) {
	b := NewOrderbook()
	addLimits(t, b, sell, 10, 1, 50, 50, 50, 50)

	cancel(t, b, 3)

	level := levelAt(t, b, 50, sell)
	assert.Equal(t, int64(1), level.HeadOrderID)
	assert.Equal(t, 3, level.OrderCount)
	assert.Equal(t, int64(30), level.TotalVolume)

	report, err := b.MarketOrder(9, buy, 15)
	require.NoError(t, err)
	require.Len(t, report.Fills, 2)
	assert.Equal(t, int64(1), report.Fills[0].MakerOrderID)
	assert.True(t, report.Fills[0].MakerFilled)
	assert.Equal(t, int64(2), report.Fills[1].MakerOrderID)
	assert.False(t, report.Fills[1].MakerFilled)

	snapshot := b.Snapshot()
	require.Len(t, snapshot.SellLimits, 1)
	orders := snapshot.SellLimits[0].Orders
	require.Len(t, orders, 2)
	assert.Equal(t, int64(2), orders[0].OrderID)
	assert.Equal(t, int64(5), orders[0].Quantity)
	assert.Equal(t, int64(4), orders[1].OrderID)
}

func TestOrderbook_ModifyLimitOrder(t *testing.T) {
	t.Run("loses queue position", func(t *testing.T) {
		b := NewOrderbook()
		addLimits(t, b, buy, 5, 1, 100, 100)

		_, err := b.ModifyLimitOrder(1, 7, 100)
		require.NoError(t, err)
		require.NoError(t, b.Validate())

		level := levelAt(t, b, 100, buy)
		assert.Equal(t, int64(2), level.HeadOrderID)
		assert.Equal(t, int64(12), level.TotalVolume)
	})

	t.Run("moves to a new level", func(t *testing.T) {
		b := NewOrderbook()
		addLimits(t, b, buy, 5, 1, 100)

		_, err := b.ModifyLimitOrder(1, 5, 90)
		require.NoError(t, err)
		require.NoError(t, b.Validate())

		assert.Equal(t, []int64{90}, b.InOrder(orderbookv1.BuyLimitIndex))
		o, err := b.Order(1)
		require.NoError(t, err)
		assert.Equal(t, int64(90), o.Price)
	})

	t.Run("crossing price trades", func(t *testing.T) {
		b := NewOrderbook()
		addLimits(t, b, buy, 5, 1, 100)
		addLimits(t, b, sell, 10, 2, 105)

		report, err := b.ModifyLimitOrder(1, 4, 105)
		require.NoError(t, err)
		require.NoError(t, b.Validate())

		assert.Equal(t, int64(4), report.VolumeTraded())
		assert.Equal(t, int64(6), levelAt(t, b, 105, sell).TotalVolume)
		_, err = b.Order(1)
		assert.ErrorIs(t, err, orderbookv1.ErrOrderNotFound)
	})

	t.Run("invalid price leaves order untouched", func(t *testing.T) {
		b := NewOrderbook()
		addLimits(t, b, buy, 5, 1, 100)

		_, err := b.ModifyLimitOrder(1, 5, 0)
		assert.ErrorIs(t, err, orderbookv1.ErrInvalidPrice)
		assert.Equal(t, int64(5), levelAt(t, b, 100, buy).TotalVolume)
	})
}

func TestOrderbook_Errors(t *testing.T) {
	b := NewOrderbook()
	addLimits(t, b, buy, 5, 1, 100)
	_, err := b.AddStopOrder(2, sell, 5, 90)
	require.NoError(t, err)

	testCases := []struct {
		name     string
		call     func() error
		expected error
		code     errors.ErrorCode
	}{
		{
			name:     "cancel unknown id",
			call:     func() error { _, err := b.CancelLimitOrder(42); return err },
			expected: orderbookv1.ErrOrderNotFound,
			code:     errors.OrderNotFound,
		},
		{
			name:     "cancel stop through limit cancel",
			call:     func() error { _, err := b.CancelLimitOrder(2); return err },
			expected: orderbookv1.ErrOrderNotFound,
			code:     errors.OrderNotFound,
		},
		{
			name:     "cancel limit through stop-limit cancel",
			call:     func() error { _, err := b.CancelStopLimitOrder(1); return err },
			expected: orderbookv1.ErrOrderNotFound,
			code:     errors.OrderNotFound,
		},
		{
			name:     "modify unknown stop",
			call:     func() error { _, err := b.ModifyStopOrder(42, 1, 1); return err },
			expected: orderbookv1.ErrOrderNotFound,
			code:     errors.OrderNotFound,
		},
		{
			name:     "zero quantity",
			call:     func() error { _, err := b.AddLimitOrder(3, buy, 0, 100); return err },
			expected: orderbookv1.ErrInvalidQuantity,
			code:     errors.InvalidQuantity,
		},
		{
			name:     "negative stop price",
			call:     func() error { _, err := b.AddStopLimitOrder(3, buy, 1, 100, -4); return err },
			expected: orderbookv1.ErrInvalidPrice,
			code:     errors.InvalidPrice,
		},
		{
			name:     "invalid side",
			call:     func() error { _, err := b.MarketOrder(3, orderbookv1.Side(9), 1); return err },
			expected: orderbookv1.ErrInvalidSide,
			code:     errors.GeneralBadRequestError,
		},
		{
			name:     "duplicate id",
			call:     func() error { _, err := b.AddLimitOrder(1, buy, 1, 99); return err },
			expected: orderbookv1.ErrDuplicateOrderID,
			code:     errors.DuplicateOrderID,
		},
		{
			name:     "missing limit level",
			call:     func() error { _, err := b.Level(7, sell, orderbookv1.ClassLimit); return err },
			expected: orderbookv1.ErrPriceLevelNotFound,
			code:     errors.PriceLevelNotFound,
		},
		{
			name:     "missing stop level",
			call:     func() error { _, err := b.Level(7, sell, orderbookv1.ClassStop); return err },
			expected: orderbookv1.ErrStopLevelNotFound,
			code:     errors.StopLevelNotFound,
		},
	}

	before := b.Snapshot()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.call()
			assert.ErrorIs(t, err, tc.expected)
			assert.Equal(t, tc.code, orderbookv1.CodeOf(err))
			assert.Equal(t, before, b.Snapshot())
		})
	}
	require.NoError(t, b.Validate())
}

func TestOrderbook_RoundTrip(t *testing.T) {
	b := NewOrderbook()
	addLimits(t, b, buy, 10, 1, 95, 96, 97, 98)
	addLimits(t, b, sell, 10, 10, 101, 102, 103)
	_, err := b.AddStopOrder(20, sell, 5, 90)
	require.NoError(t, err)
	_, err = b.AddStopLimitOrder(21, buy, 5, 110, 108)
	require.NoError(t, err)

	before := b.Snapshot()

	testCases := []struct {
		name   string
		add    func() (orderbookv1.Report, error)
		cancel func() (orderbookv1.Report, error)
	}{
		{
			name:   "limit at existing level",
			add:    func() (orderbookv1.Report, error) { return b.AddLimitOrder(30, buy, 3, 96) },
			cancel: func() (orderbookv1.Report, error) { return b.CancelLimitOrder(30) },
		},
		{
			name:   "limit at new level",
			add:    func() (orderbookv1.Report, error) { return b.AddLimitOrder(31, sell, 3, 120) },
			cancel: func() (orderbookv1.Report, error) { return b.CancelLimitOrder(31) },
		},
		{
			name:   "stop",
			add:    func() (orderbookv1.Report, error) { return b.AddStopOrder(32, buy, 3, 115) },
			cancel: func() (orderbookv1.Report, error) { return b.CancelStopOrder(32) },
		},
		{
			name:   "stop-limit",
			add:    func() (orderbookv1.Report, error) { return b.AddStopLimitOrder(33, sell, 3, 85, 88) },
			cancel: func() (orderbookv1.Report, error) { return b.CancelStopLimitOrder(33) },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			report, err := tc.add()
			require.NoError(t, err)
			assert.Equal(t, int64(3), report.Rested)
			assert.Empty(t, report.Fills)

			_, err = tc.cancel()
			require.NoError(t, err)
			require.NoError(t, b.Validate())
			assert.Equal(t, before, b.Snapshot())
		})
	}
}
