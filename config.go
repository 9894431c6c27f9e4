package segtree

import "fmt"

// ValueMonoid defines how values are aggregated up the tree.
//
// For values s, t, u, Add should be associative:
//
//	Add(Add(s, t), u) == Add(s, Add(t, u))
//
// and Zero should be the neutral element:
//
//	Add(Zero(), s) == s == Add(s, Zero())
type ValueMonoid[T any] interface {
	Zero() T
	Add(left, right T) T
}

// ActionMonoid defines how pending range actions are accumulated.
//
// Compose(first, second) denotes "first, then second". It should be
// associative with Identity as its neutral element.
type ActionMonoid[S any] interface {
	Identity() S
	Compose(first, second S) S
}

// Action ties an action monoid to a value type.
//
// Apply applies one action to one aggregate. Scale adapts an action so that
// applying it once to the aggregate of length leaves has the same effect as
// applying the unscaled action to each of the leaves and re-aggregating. For
// idempotent-per-element aggregates (min, max, assignment) Scale is usually the
// identity on s; for sums it multiplies by length.
//
// Scale has to distribute over Compose:
//
//	Scale(Compose(s1, s2), k) == Compose(Scale(s1, k), Scale(s2, k))
type Action[T, S any] interface {
	ActionMonoid[S]
	Apply(value T, action S) T
	Scale(action S, length int) S
}

// Config configures a plain aggregation tree.
type Config[T any] struct {
	// Monoid aggregates values up the tree.
	Monoid ValueMonoid[T]
}

func (cfg Config[T]) normalized() Config[T] {
	return cfg
}

func (cfg Config[T]) validate() error {
	cfg = cfg.normalized()
	if cfg.Monoid == nil {
		return fmt.Errorf("%w: monoid is required", ErrInvalidConfig)
	}
	return nil
}

// LazyConfig configures a lazy aggregation tree.
type LazyConfig[T, S any] struct {
	// Monoid aggregates values up the tree.
	Monoid ValueMonoid[T]
	// Action applies, composes and scales deferred range actions.
	Action Action[T, S]
}

func (cfg LazyConfig[T, S]) normalized() LazyConfig[T, S] {
	return cfg
}

func (cfg LazyConfig[T, S]) validate() error {
	cfg = cfg.normalized()
	if cfg.Monoid == nil {
		return fmt.Errorf("%w: monoid is required", ErrInvalidConfig)
	}
	if cfg.Action == nil {
		return fmt.Errorf("%w: action is required", ErrInvalidConfig)
	}
	return nil
}

// ceilPow2 returns the smallest power of two >= n, and its base-2 logarithm.
// The result is at least 1.
func ceilPow2(n int) (size int, log int) {
	size = 1
	for size < n {
		size <<= 1
		log++
	}
	return size, log
}

// checkRange validates a half-open range [l, r) against logical length n.
func checkRange(l, r, n int) error {
	if l < 0 || r < l || r > n {
		tracer().Debugf("segtree: rejecting range [%d,%d) for length %d", l, r, n)
		return fmt.Errorf("%w: range [%d,%d) not within [0,%d)", ErrIndexOutOfBounds, l, r, n)
	}
	return nil
}

func checkIndex(i, n int) error {
	if i < 0 || i >= n {
		tracer().Debugf("segtree: rejecting index %d for length %d", i, n)
		return fmt.Errorf("%w: index %d not within [0,%d)", ErrIndexOutOfBounds, i, n)
	}
	return nil
}
