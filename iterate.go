package segtree

import "iter"

// ForEach walks leaf values in-order.
//
// Iteration stops early if callback returns false.
func (t *Tree[T]) ForEach(fn func(i int, value T) bool) {
	if t == nil || fn == nil {
		return
	}
	for i := range t.n {
		if !fn(i, t.agg[t.size+i]) {
			return
		}
	}
}

// All returns an iterator over (index, value) pairs in leaf order.
func (t *Tree[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		t.ForEach(yield)
	}
}

// Values returns a copy of the leaf values.
func (t *Tree[T]) Values() []T {
	return collect(t.Len(), t.ForEach)
}

// ForEach walks resolved leaf values in-order.
//
// Every pending action is pushed down to the leaves before the walk starts,
// which makes ForEach O(N). Iteration stops early if callback returns false.
func (t *LazyTree[T, S]) ForEach(fn func(i int, value T) bool) {
	if t == nil || fn == nil {
		return
	}
	t.pushAll()
	for i := range t.n {
		if !fn(i, t.agg[t.size+i]) {
			return
		}
	}
}

// All returns an iterator over resolved (index, value) pairs in leaf order.
func (t *LazyTree[T, S]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		t.ForEach(yield)
	}
}

// Values returns a copy of the resolved leaf values.
func (t *LazyTree[T, S]) Values() []T {
	return collect(t.Len(), t.ForEach)
}

// pushAll resolves every pending action. Parents have smaller heap indices
// than their children, so a forward sweep is top-down.
func (t *LazyTree[T, S]) pushAll() {
	for p := 1; p < t.size; p++ {
		t.push(p)
	}
}

func collect[T any](n int, each func(func(int, T) bool)) []T {
	out := make([]T, 0, n)
	each(func(_ int, v T) bool {
		out = append(out, v)
		return true
	})
	return out
}
