package segtree

import "fmt"

// Check validates structural tree invariants. eq decides equality of values.
//
// This checker is intentionally strict and is meant to be used in tests.
func (t *Tree[T]) Check(eq func(a, b T) bool) error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrCorruptTree)
	}
	if err := checkLayout(t.n, t.size, t.log, len(t.agg)); err != nil {
		return err
	}
	zero := t.cfg.Monoid.Zero()
	for i := t.n; i < t.size; i++ {
		if !eq(t.agg[t.size+i], zero) {
			return fmt.Errorf("%w: padding leaf %d is not zero", ErrCorruptTree, i)
		}
	}
	for p := 1; p < t.size; p++ {
		if !eq(t.agg[p], t.cfg.Monoid.Add(t.agg[2*p], t.agg[2*p+1])) {
			tracer().Errorf("segtree: stale aggregate at node %d", p)
			return fmt.Errorf("%w: aggregate of node %d does not match children", ErrCorruptTree, p)
		}
	}
	return nil
}

// Check validates structural tree invariants. eq decides equality of values.
//
// Besides layout and weights, it verifies for every internal node p that
// its aggregate equals the aggregate of its children with p's own pending
// action applied. Check does not push anything and leaves the tree untouched.
func (t *LazyTree[T, S]) Check(eq func(a, b T) bool) error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrCorruptTree)
	}
	if err := checkLayout(t.n, t.size, t.log, len(t.agg)); err != nil {
		return err
	}
	if len(t.pending) != t.size || len(t.weight) != 2*t.size {
		return fmt.Errorf("%w: pending/weight storage mismatch (%d, %d) for size %d",
			ErrCorruptTree, len(t.pending), len(t.weight), t.size)
	}
	for p := 2*t.size - 1; p >= 1; p-- {
		want := 1
		if p < t.size {
			want = t.weight[2*p] + t.weight[2*p+1]
		}
		if t.weight[p] != want {
			return fmt.Errorf("%w: weight of node %d is %d, want %d", ErrCorruptTree, p, t.weight[p], want)
		}
	}
	zero := t.cfg.Monoid.Zero()
	for i := t.n; i < t.size; i++ {
		if !eq(t.agg[t.size+i], zero) {
			return fmt.Errorf("%w: padding leaf %d is not zero", ErrCorruptTree, i)
		}
	}
	act := t.cfg.Action
	for p := 1; p < t.size; p++ {
		sum := t.cfg.Monoid.Add(t.agg[2*p], t.agg[2*p+1])
		if !eq(t.agg[p], act.Apply(sum, act.Scale(t.pending[p], t.weight[p]))) {
			tracer().Errorf("segtree: stale aggregate at node %d", p)
			return fmt.Errorf("%w: aggregate of node %d does not match children and pending action",
				ErrCorruptTree, p)
		}
	}
	return nil
}

func checkLayout(n, size, log, aggLen int) error {
	if size < 1 || size&(size-1) != 0 {
		return fmt.Errorf("%w: size %d is not a power of two", ErrCorruptTree, size)
	}
	if 1<<log != size {
		return fmt.Errorf("%w: log %d does not match size %d", ErrCorruptTree, log, size)
	}
	if n < 0 || n > size || (size > 1 && 2*n <= size) {
		return fmt.Errorf("%w: length %d does not fit size %d", ErrCorruptTree, n, size)
	}
	if aggLen != 2*size {
		return fmt.Errorf("%w: aggregate storage %d, want %d", ErrCorruptTree, aggLen, 2*size)
	}
	return nil
}
