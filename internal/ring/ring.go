package ring

import "iter"

// Ring is a bounded FIFO. Once full, every Push drops the oldest item.
type Ring[T any] struct {
	items []T
	head  int
	size  int
	limit int
}

func New[T any](limit int) Ring[T] {
	if limit < 0 {
		limit = 0
	}
	return Ring[T]{limit: limit}
}

func (r *Ring[T]) Len() int {
	return r.size
}

func (r *Ring[T]) Cap() int {
	return r.limit
}

// Push appends item and reports whether the oldest item was evicted to make
// room for it. A ring with a zero limit keeps nothing.
func (r *Ring[T]) Push(item T) bool {
	if r.limit == 0 {
		return false
	}
	if r.size == r.limit {
		r.items[r.head] = item
		r.head = (r.head + 1) % len(r.items)
		return true
	}
	if r.size == len(r.items) {
		r.items = append(r.linear(), item)
		r.head = 0
		r.size++
		return false
	}
	r.items[(r.head+r.size)%len(r.items)] = item
	r.size++
	return false
}

// Resize changes the limit, dropping items from the front until they fit.
// It returns the number of items dropped.
func (r *Ring[T]) Resize(limit int) int {
	if limit < 0 {
		limit = 0
	}
	var drop int
	if r.size > limit {
		drop = r.size - limit
	}
	list := r.linear()[drop:]
	r.items = append([]T(nil), list...)
	r.head = 0
	r.size = len(r.items)
	r.limit = limit
	return drop
}

func (r *Ring[T]) At(n int) (T, bool) {
	var ret T
	if n < 0 || n >= r.size {
		return ret, false
	}
	return r.items[(r.head+n)%len(r.items)], true
}

func (r *Ring[T]) Clear() {
	r.items = nil
	r.head = 0
	r.size = 0
}

// All yields the items oldest first. Every call starts a fresh traversal.
func (r *Ring[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < r.size; i++ {
			if !yield(i, r.items[(r.head+i)%len(r.items)]) {
				return
			}
		}
	}
}

func (r *Ring[T]) linear() []T {
	list := make([]T, 0, r.size+1)
	for i := 0; i < r.size; i++ {
		list = append(list, r.items[(r.head+i)%len(r.items)])
	}
	return list
}
