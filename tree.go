package segtree

import "fmt"

// Tree is an array-backed aggregation tree without deferred actions.
//
// Leaves occupy heap indices [size, 2*size); internal node p aggregates its
// children 2p and 2p+1. Leaves beyond the logical length hold Zero().
type Tree[T any] struct {
	cfg  Config[T]
	n    int // logical length
	size int // leaf count, power of two
	log  int // log2(size)
	agg  []T
}

// New builds a tree over a copy of values.
func New[T any](cfg Config[T], values []T) (*Tree[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	t := &Tree[T]{cfg: cfg, n: len(values)}
	t.size, t.log = ceilPow2(t.n)
	t.agg = make([]T, 2*t.size)
	zero := cfg.Monoid.Zero()
	for i := range t.size {
		if i < t.n {
			t.agg[t.size+i] = values[i]
		} else {
			t.agg[t.size+i] = zero
		}
	}
	for p := t.size - 1; p >= 1; p-- {
		t.pull(p)
	}
	t.agg[0] = zero // unused slot
	tracer().Debugf("segtree: built tree of length %d, size %d", t.n, t.size)
	return t, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[T]) Config() Config[T] {
	return t.cfg
}

// Len returns the logical number of leaves.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.n
}

// Size returns the padded number of leaves, a power of two.
func (t *Tree[T]) Size() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Summary returns the aggregate of all leaves.
func (t *Tree[T]) Summary() T {
	return t.agg[1]
}

// Get returns the value at leaf i.
func (t *Tree[T]) Get(i int) (T, error) {
	if err := checkIndex(i, t.n); err != nil {
		var zero T
		return zero, err
	}
	return t.agg[t.size+i], nil
}

// Set overwrites the value at leaf i.
func (t *Tree[T]) Set(i int, value T) error {
	if err := checkIndex(i, t.n); err != nil {
		return err
	}
	p := t.size + i
	t.agg[p] = value
	for p >>= 1; p >= 1; p >>= 1 {
		t.pull(p)
	}
	return nil
}

// Update combines value into leaf i, i.e. leaf i becomes Add(old, value).
func (t *Tree[T]) Update(i int, value T) error {
	if err := checkIndex(i, t.n); err != nil {
		return err
	}
	return t.Set(i, t.cfg.Monoid.Add(t.agg[t.size+i], value))
}

// Query returns the aggregate of leaves in the half-open range [l, r).
// An empty range yields Zero().
func (t *Tree[T]) Query(l, r int) (T, error) {
	if err := checkRange(l, r, t.n); err != nil {
		var zero T
		return zero, err
	}
	m := t.cfg.Monoid
	sml, smr := m.Zero(), m.Zero()
	for l, r = l+t.size, r+t.size; l < r; l, r = l>>1, r>>1 {
		if l&1 == 1 {
			sml = m.Add(sml, t.agg[l])
			l++
		}
		if r&1 == 1 {
			r--
			smr = m.Add(t.agg[r], smr)
		}
	}
	return m.Add(sml, smr), nil
}

// String returns a short description, mainly for debugging.
func (t *Tree[T]) String() string {
	return fmt.Sprintf("Tree(len=%d, size=%d)", t.n, t.size)
}

func (t *Tree[T]) pull(p int) {
	t.agg[p] = t.cfg.Monoid.Add(t.agg[2*p], t.agg[2*p+1])
}
