// Package carousel implements the manual project slider as a rotating ring.
package carousel

// Ring holds items in display order. Next and Prev rotate it in place.
type Ring[T any] struct {
	items []T
}

// New copies items into a new Ring.
func New[T any](items []T) *Ring[T] {
	return &Ring[T]{items: append([]T(nil), items...)}
}

// Len returns the number of items.
func (r *Ring[T]) Len() int { return len(r.items) }

// Items returns the items in display order.
func (r *Ring[T]) Items() []T {
	return append([]T(nil), r.items...)
}

// Visible returns up to n leading items.
func (r *Ring[T]) Visible(n int) []T {
	if n > len(r.items) {
		n = len(r.items)
	}
	if n < 0 {
		n = 0
	}
	return append([]T(nil), r.items[:n]...)
}

// Next moves the first item to the end.
func (r *Ring[T]) Next() {
	if len(r.items) < 2 {
		return
	}
	first := r.items[0]
	copy(r.items, r.items[1:])
	r.items[len(r.items)-1] = first
}

// Prev moves the last item to the front.
func (r *Ring[T]) Prev() {
	if len(r.items) < 2 {
		return
	}
	last := r.items[len(r.items)-1]
	copy(r.items[1:], r.items[:len(r.items)-1])
	r.items[0] = last
}
