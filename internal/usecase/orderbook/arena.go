package orderbook

import orderbookv1 "github.com/muhammadchandra19/limit-order-book/internal/domain/orderbook/v1"

// arena stores records addressed by handle. Slot 0 is reserved so the zero
// handle stays orderbookv1.Nil. Released slots are reused.
//
// Pointers returned by get and alloc are invalidated by the next alloc.
type arena[T any] struct {
	items []T
	free  []orderbookv1.Handle
}

func newArena[T any](capacity int) *arena[T] {
	items := make([]T, 1, capacity+1)
	return &arena[T]{items: items}
}

func (a *arena[T]) alloc() (orderbookv1.Handle, *T) {
	if n := len(a.free); n > 0 {
		h := a.free[n-1]
		a.free = a.free[:n-1]
		return h, &a.items[h]
	}

	var zero T
	a.items = append(a.items, zero)
	h := orderbookv1.Handle(len(a.items) - 1)
	return h, &a.items[h]
}

func (a *arena[T]) get(h orderbookv1.Handle) *T {
	return &a.items[h]
}

// release zeroes the record and returns its slot to the free list.
// The record must already be unlinked from every structure.
func (a *arena[T]) release(h orderbookv1.Handle) {
	var zero T
	a.items[h] = zero
	a.free = append(a.free, h)
}

func (a *arena[T]) live() int {
	return len(a.items) - 1 - len(a.free)
}
