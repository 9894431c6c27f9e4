package segtree

import "fmt"

// LazyTree is an array-backed aggregation tree with deferred range actions.
//
// For every internal node p the following holds:
//
//	agg[p] == Apply(Add(agg[2p], agg[2p+1]), Scale(pending[p], weight[p]))
//
// i.e. a node's aggregate already reflects its own pending action, while the
// children are stale with respect to it until the action is pushed down.
type LazyTree[T, S any] struct {
	cfg     LazyConfig[T, S]
	n       int // logical length
	size    int // leaf count, power of two
	log     int // log2(size)
	agg     []T
	pending []S   // internal nodes only
	weight  []int // number of leaves below a node
}

// NewLazy builds a lazy tree over a copy of values.
//
// Leaves beyond len(values) up to the next power of two are padded with
// Zero(). They are never addressed by any operation.
func NewLazy[T, S any](cfg LazyConfig[T, S], values []T) (*LazyTree[T, S], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	t := &LazyTree[T, S]{cfg: cfg, n: len(values)}
	t.size, t.log = ceilPow2(t.n)
	t.agg = make([]T, 2*t.size)
	t.pending = make([]S, t.size)
	t.weight = make([]int, 2*t.size)
	zero := cfg.Monoid.Zero()
	for i := range t.size {
		if i < t.n {
			t.agg[t.size+i] = values[i]
		} else {
			t.agg[t.size+i] = zero
		}
		t.weight[t.size+i] = 1
	}
	id := cfg.Action.Identity()
	for p := t.size - 1; p >= 1; p-- {
		t.pending[p] = id
		t.weight[p] = t.weight[2*p] + t.weight[2*p+1]
		t.pull(p)
	}
	t.agg[0] = zero // unused slot
	tracer().Debugf("segtree: built lazy tree of length %d, size %d", t.n, t.size)
	return t, nil
}

// Config returns a copy of the effective tree configuration.
func (t *LazyTree[T, S]) Config() LazyConfig[T, S] {
	return t.cfg
}

// Len returns the logical number of leaves.
func (t *LazyTree[T, S]) Len() int {
	if t == nil {
		return 0
	}
	return t.n
}

// Size returns the padded number of leaves, a power of two.
func (t *LazyTree[T, S]) Size() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Summary returns the aggregate of all leaves. It is O(1).
func (t *LazyTree[T, S]) Summary() T {
	return t.agg[1]
}

// Apply composes action into every leaf of the half-open range [l, r).
//
// Pending actions on both boundary paths are pushed down first. Then the
// action is applied once to each canonical node of the range, and the split
// ancestors are re-aggregated from their children.
func (t *LazyTree[T, S]) Apply(l, r int, action S) error {
	if err := checkRange(l, r, t.n); err != nil {
		return err
	}
	if l == r {
		return nil
	}
	l, r = l+t.size, r+t.size
	t.pushBoundaries(l, r)
	for l2, r2 := l, r; l2 < r2; l2, r2 = l2>>1, r2>>1 {
		if l2&1 == 1 {
			t.applyAt(l2, action)
			l2++
		}
		if r2&1 == 1 {
			r2--
			t.applyAt(r2, action)
		}
	}
	for i := 1; i <= t.log; i++ {
		if ((l >> i) << i) != l {
			t.pull(l >> i)
		}
		if ((r >> i) << i) != r {
			t.pull((r - 1) >> i)
		}
	}
	return nil
}

// Query returns the aggregate of the resolved leaves in the half-open range
// [l, r). An empty range yields Zero().
func (t *LazyTree[T, S]) Query(l, r int) (T, error) {
	if err := checkRange(l, r, t.n); err != nil {
		var zero T
		return zero, err
	}
	m := t.cfg.Monoid
	if l == r {
		return m.Zero(), nil
	}
	l, r = l+t.size, r+t.size
	t.pushBoundaries(l, r)
	sml, smr := m.Zero(), m.Zero()
	for ; l < r; l, r = l>>1, r>>1 {
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
func (t *LazyTree[T, S]) String() string {
	return fmt.Sprintf("LazyTree(len=%d, size=%d)", t.n, t.size)
}

// pushBoundaries pushes pending actions top-down along the paths to heap
// positions l and r-1, stopping above levels where a boundary is aligned to
// a subtree. l and r are leaf positions already offset by size.
func (t *LazyTree[T, S]) pushBoundaries(l, r int) {
	assert(l < r, "pushBoundaries called with empty range")
	for i := t.log; i >= 1; i-- {
		if ((l >> i) << i) != l {
			t.push(l >> i)
		}
		if ((r >> i) << i) != r {
			t.push((r - 1) >> i)
		}
	}
}

// pushPath pushes pending actions top-down along the path to leaf position p.
func (t *LazyTree[T, S]) pushPath(p int) {
	for i := t.log; i >= 1; i-- {
		t.push(p >> i)
	}
}

// push moves the pending action of internal node p into both children.
func (t *LazyTree[T, S]) push(p int) {
	assert(p >= 1 && p < t.size, "push called on non-internal node")
	s := t.pending[p]
	t.applyAt(2*p, s)
	t.applyAt(2*p+1, s)
	t.pending[p] = t.cfg.Action.Identity()
}

// applyAt applies action to the whole subtree at p without touching the
// subtree's descendants.
func (t *LazyTree[T, S]) applyAt(p int, action S) {
	act := t.cfg.Action
	t.agg[p] = act.Apply(t.agg[p], act.Scale(action, t.weight[p]))
	if p < t.size {
		t.pending[p] = act.Compose(t.pending[p], action)
	}
}

// pull re-aggregates internal node p from its children. The pending action
// at p must have been pushed before.
func (t *LazyTree[T, S]) pull(p int) {
	t.agg[p] = t.cfg.Monoid.Add(t.agg[2*p], t.agg[2*p+1])
}
