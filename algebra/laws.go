package algebra

import (
	"errors"
	"fmt"

	"github.com/npillmayer/segtree"
)

// ErrLawViolated signals that a sample violates one of the algebraic laws a
// lazy tree relies on.
var ErrLawViolated = errors.New("algebra: law violated")

// CheckLaws checks the laws required by segtree.LazyTree on sample values and
// actions:
//
//   - Add is associative and Zero is neutral,
//   - Compose is associative and Identity is neutral,
//   - Apply with Identity is a no-op and Apply respects Compose,
//   - Scale distributes Apply over Add for lengths 1…maxLen,
//   - Scale distributes over Compose.
//
// Actions are never compared directly; two actions count as equal if they
// act equally on every sample value (or window aggregate). eq decides
// equality of values.
//
// CheckLaws is cubic in the number of samples and meant to be run from tests.
// Samples for Min/Max monoids must not contain the neutral bound itself.
func CheckLaws[T, S any](cfg segtree.LazyConfig[T, S], values []T, actions []S, maxLen int,
	eq func(a, b T) bool) error {
	//
	if cfg.Monoid == nil || cfg.Action == nil {
		return fmt.Errorf("%w: monoid and action are required", segtree.ErrInvalidConfig)
	}
	tracer().Debugf("algebra: checking laws on %d values, %d actions", len(values), len(actions))
	m, act := cfg.Monoid, cfg.Action
	violated := func(law string, args ...any) error {
		err := fmt.Errorf("%w: %s %v", ErrLawViolated, law, args)
		tracer().Infof("algebra: %s", err.Error())
		return err
	}
	for _, a := range values {
		if !eq(m.Add(m.Zero(), a), a) || !eq(m.Add(a, m.Zero()), a) {
			return violated("Zero is not neutral for Add", a)
		}
		for _, b := range values {
			for _, c := range values {
				if !eq(m.Add(m.Add(a, b), c), m.Add(a, m.Add(b, c))) {
					return violated("Add is not associative", a, b, c)
				}
			}
		}
	}
	for _, t := range values {
		if !eq(act.Apply(t, act.Identity()), t) {
			return violated("Apply(t, Identity) != t", t)
		}
		for _, s1 := range actions {
			id := act.Identity()
			if !eq(act.Apply(t, act.Compose(id, s1)), act.Apply(t, s1)) ||
				!eq(act.Apply(t, act.Compose(s1, id)), act.Apply(t, s1)) {
				return violated("Identity is not neutral for Compose", t, s1)
			}
			for _, s2 := range actions {
				if !eq(act.Apply(act.Apply(t, s1), s2), act.Apply(t, act.Compose(s1, s2))) {
					return violated("Apply does not respect Compose", t, s1, s2)
				}
				for _, s3 := range actions {
					left := act.Compose(act.Compose(s1, s2), s3)
					right := act.Compose(s1, act.Compose(s2, s3))
					if !eq(act.Apply(t, left), act.Apply(t, right)) {
						return violated("Compose is not associative", t, s1, s2, s3)
					}
				}
			}
		}
	}
	if len(values) == 0 {
		return nil
	}
	for k := 1; k <= maxLen; k++ {
		for start := range values {
			window := make([]T, k)
			for i := range window {
				window[i] = values[(start+i)%len(values)]
			}
			agg := fold(m, window)
			for _, s1 := range actions {
				applied := make([]T, k)
				for i, t := range window {
					applied[i] = act.Apply(t, s1)
				}
				if !eq(act.Apply(agg, act.Scale(s1, k)), fold(m, applied)) {
					return violated("Scale does not distribute Apply over Add", k, window, s1)
				}
				for _, s2 := range actions {
					left := act.Scale(act.Compose(s1, s2), k)
					right := act.Compose(act.Scale(s1, k), act.Scale(s2, k))
					if !eq(act.Apply(agg, left), act.Apply(agg, right)) {
						return violated("Scale does not distribute over Compose", k, s1, s2)
					}
				}
			}
		}
	}
	return nil
}

func fold[T any](m segtree.ValueMonoid[T], values []T) T {
	acc := m.Zero()
	for _, v := range values {
		acc = m.Add(acc, v)
	}
	return acc
}
