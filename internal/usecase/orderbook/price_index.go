package orderbook

import (
	"fmt"

	orderbookv1 "github.com/muhammadchandra19/limit-order-book/internal/domain/orderbook/v1"
)

// priceIndex is an AVL tree of price levels keyed by price, with a
// price lookup table and a cached best level. Four of them share one
// level arena.
type priceIndex struct {
	index  orderbookv1.Index
	levels *arena[orderbookv1.PriceLevel]
	prices map[int64]orderbookv1.Handle
	root   orderbookv1.Handle
	best   orderbookv1.Handle
	// highest is true when the best level is the maximum price.
	highest bool
}

func newPriceIndex(index orderbookv1.Index, levels *arena[orderbookv1.PriceLevel]) *priceIndex {
	return &priceIndex{
		index:   index,
		levels:  levels,
		prices:  make(map[int64]orderbookv1.Handle),
		highest: index.BestIsHighest(),
	}
}

func (t *priceIndex) level(h orderbookv1.Handle) *orderbookv1.PriceLevel {
	return t.levels.get(h)
}

func (t *priceIndex) lookup(price int64) (orderbookv1.Handle, bool) {
	h, ok := t.prices[price]
	return h, ok
}

func (t *priceIndex) empty() bool {
	return t.root == orderbookv1.Nil
}

// bestPrice returns the price of the best level and false if the index is empty.
func (t *priceIndex) bestPrice() (int64, bool) {
	if t.best == orderbookv1.Nil {
		return 0, false
	}
	return t.level(t.best).Price, true
}

// better reports whether price a is more extreme than price b for this index.
func (t *priceIndex) better(a, b int64) bool {
	if t.highest {
		return a > b
	}
	return a < b
}

// insert returns the level at price, creating and balancing it into the tree if absent.
func (t *priceIndex) insert(price int64, m *orderbookv1.Report) orderbookv1.Handle {
	if h, ok := t.prices[price]; ok {
		return h
	}

	h, l := t.levels.alloc()
	l.Price = price
	l.Side = t.index.Side()
	l.Class = t.index.Class()
	l.Height = 1
	t.prices[price] = h

	if t.root == orderbookv1.Nil {
		t.root = h
		t.best = h
		return h
	}

	parent := t.root
	for {
		p := t.level(parent)
		if price < p.Price {
			if p.Left == orderbookv1.Nil {
				p.Left = h
				break
			}
			parent = p.Left
		} else {
			if p.Right == orderbookv1.Nil {
				p.Right = h
				break
			}
			parent = p.Right
		}
	}
	t.level(h).Parent = parent

	if t.better(price, t.level(t.best).Price) {
		t.best = h
	}

	t.retrace(parent, m)
	return h
}

// remove detaches the level from the tree and the price table. The caller
// releases the record afterwards.
func (t *priceIndex) remove(h orderbookv1.Handle, m *orderbookv1.Report) {
	n := *t.level(h)
	delete(t.prices, n.Price)

	var start, replacement orderbookv1.Handle
	if n.Left == orderbookv1.Nil || n.Right == orderbookv1.Nil {
		child := n.Left
		if child == orderbookv1.Nil {
			child = n.Right
		}
		if child != orderbookv1.Nil {
			t.level(child).Parent = n.Parent
		}
		t.replaceChild(n.Parent, h, child)
		start, replacement = n.Parent, child
	} else {
		s := t.minimum(n.Right)
		succ := t.level(s)
		if s != n.Right {
			start = succ.Parent
			t.level(succ.Parent).Left = succ.Right
			if succ.Right != orderbookv1.Nil {
				t.level(succ.Right).Parent = succ.Parent
			}
			succ.Right = n.Right
			t.level(n.Right).Parent = s
		} else {
			start = s
		}
		succ.Left = n.Left
		t.level(n.Left).Parent = s
		succ.Parent = n.Parent
		t.replaceChild(n.Parent, h, s)
		replacement = s
	}

	detached := t.level(h)
	detached.Parent, detached.Left, detached.Right, detached.Height = orderbookv1.Nil, orderbookv1.Nil, orderbookv1.Nil, 0

	if t.best == h {
		switch {
		case replacement != orderbookv1.Nil:
			t.best = t.extreme(replacement)
		default:
			t.best = n.Parent
		}
	}

	t.retrace(start, m)
}

// retrace recomputes heights and rebalances from n up to the root.
func (t *priceIndex) retrace(n orderbookv1.Handle, m *orderbookv1.Report) {
	for n != orderbookv1.Nil {
		t.fixHeight(n)
		n = t.rebalance(n, m)
		n = t.level(n).Parent
	}
}

func (t *priceIndex) height(h orderbookv1.Handle) int {
	if h == orderbookv1.Nil {
		return 0
	}
	return t.level(h).Height
}

func (t *priceIndex) fixHeight(h orderbookv1.Handle) {
	l := t.level(h)
	l.Height = 1 + max(t.height(l.Left), t.height(l.Right))
}

func (t *priceIndex) balanceFactor(h orderbookv1.Handle) int {
	l := t.level(h)
	return t.height(l.Left) - t.height(l.Right)
}

// rebalance restores the AVL invariant at n and returns the root of the subtree.
func (t *priceIndex) rebalance(n orderbookv1.Handle, m *orderbookv1.Report) orderbookv1.Handle {
	switch bf := t.balanceFactor(n); {
	case bf > 1:
		if left := t.level(n).Left; t.balanceFactor(left) < 0 {
			t.rotateLeft(left) // lr
		}
		m.Rebalances++
		return t.rotateRight(n)
	case bf < -1:
		if right := t.level(n).Right; t.balanceFactor(right) > 0 {
			t.rotateRight(right) // rl
		}
		m.Rebalances++
		return t.rotateLeft(n)
	}
	return n
}

// rotateLeft lifts x's right child into x's position (rr).
func (t *priceIndex) rotateLeft(x orderbookv1.Handle) orderbookv1.Handle {
	xl := t.level(x)
	y := xl.Right
	yl := t.level(y)

	xl.Right = yl.Left
	if yl.Left != orderbookv1.Nil {
		t.level(yl.Left).Parent = x
	}
	yl.Parent = xl.Parent
	t.replaceChild(xl.Parent, x, y)
	yl.Left = x
	xl.Parent = y

	t.fixHeight(x)
	t.fixHeight(y)
	return y
}

// rotateRight lifts x's left child into x's position (ll).
func (t *priceIndex) rotateRight(x orderbookv1.Handle) orderbookv1.Handle {
	xl := t.level(x)
	y := xl.Left
	yl := t.level(y)

	xl.Left = yl.Right
	if yl.Right != orderbookv1.Nil {
		t.level(yl.Right).Parent = x
	}
	yl.Parent = xl.Parent
	t.replaceChild(xl.Parent, x, y)
	yl.Right = x
	xl.Parent = y

	t.fixHeight(x)
	t.fixHeight(y)
	return y
}

// replaceChild points parent's link to old at repl, or the root when parent is Nil.
func (t *priceIndex) replaceChild(parent, old, repl orderbookv1.Handle) {
	if parent == orderbookv1.Nil {
		t.root = repl
		return
	}
	p := t.level(parent)
	if p.Left == old {
		p.Left = repl
	} else {
		p.Right = repl
	}
}

func (t *priceIndex) minimum(h orderbookv1.Handle) orderbookv1.Handle {
	for l := t.level(h); l.Left != orderbookv1.Nil; l = t.level(h) {
		h = l.Left
	}
	return h
}

func (t *priceIndex) maximum(h orderbookv1.Handle) orderbookv1.Handle {
	for l := t.level(h); l.Right != orderbookv1.Nil; l = t.level(h) {
		h = l.Right
	}
	return h
}

// extreme returns the best level of the subtree rooted at h.
func (t *priceIndex) extreme(h orderbookv1.Handle) orderbookv1.Handle {
	if t.highest {
		return t.maximum(h)
	}
	return t.minimum(h)
}

func (t *priceIndex) inOrder(h orderbookv1.Handle, out []int64) []int64 {
	if h == orderbookv1.Nil {
		return out
	}
	l := t.level(h)
	out = t.inOrder(l.Left, out)
	out = append(out, l.Price)
	return t.inOrder(l.Right, out)
}

func (t *priceIndex) preOrder(h orderbookv1.Handle, out []int64) []int64 {
	if h == orderbookv1.Nil {
		return out
	}
	l := t.level(h)
	out = append(out, l.Price)
	out = t.preOrder(l.Left, out)
	return t.preOrder(l.Right, out)
}

func (t *priceIndex) postOrder(h orderbookv1.Handle, out []int64) []int64 {
	if h == orderbookv1.Nil {
		return out
	}
	l := t.level(h)
	out = t.postOrder(l.Left, out)
	out = t.postOrder(l.Right, out)
	return append(out, l.Price)
}

// validate checks parent links, strict ordering, cached heights and the
// AVL invariant of the subtree at h, bounded by (lo, hi). It returns the
// subtree height and node count.
func (t *priceIndex) validate(h, parent orderbookv1.Handle, lo, hi int64, bounded [2]bool) (int, int, error) {
	if h == orderbookv1.Nil {
		return 0, 0, nil
	}
	l := t.level(h)
	if l.Parent != parent {
		return 0, 0, fmt.Errorf("%s index: level %d has wrong parent link", t.index, l.Price)
	}
	if (bounded[0] && l.Price <= lo) || (bounded[1] && l.Price >= hi) {
		return 0, 0, fmt.Errorf("%s index: level %d breaks price ordering", t.index, l.Price)
	}
	if t.prices[l.Price] != h {
		return 0, 0, fmt.Errorf("%s index: level %d missing from price table", t.index, l.Price)
	}

	lh, lc, err := t.validate(l.Left, h, lo, l.Price, [2]bool{bounded[0], true})
	if err != nil {
		return 0, 0, err
	}
	rh, rc, err := t.validate(l.Right, h, l.Price, hi, [2]bool{true, bounded[1]})
	if err != nil {
		return 0, 0, err
	}

	height := 1 + max(lh, rh)
	if l.Height != height {
		return 0, 0, fmt.Errorf("%s index: level %d caches height %d, actual %d", t.index, l.Price, l.Height, height)
	}
	if bf := lh - rh; bf > 1 || bf < -1 {
		return 0, 0, fmt.Errorf("%s index: level %d has balance factor %d", t.index, l.Price, bf)
	}
	return height, lc + rc + 1, nil
}
