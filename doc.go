/*
Package segtree provides array-backed range aggregation trees ("segment trees")
over caller-supplied algebraic structures.

Two flavours are offered:

  - Tree[T] aggregates values of a monoid (T, Add, Zero) and supports point
    updates and range queries.
  - LazyTree[T, S] additionally supports deferred range actions drawn from a
    second monoid (S, Compose, Identity). Actions are applied to aggregates by
    an application map and reconciled with subtree lengths by a scale map.

Both trees are built once from an ordered sequence of values. The tracked index
range is fixed at build time; there is no insertion or deletion of positions.
Every Apply, Query, Get and Set touches O(log N) nodes.

Algebra model:
  - Add must be associative with Zero as its neutral element. Commutativity is
    not required; queries fold from left to right in leaf order.
  - Compose(first, second) must be associative with Identity as its neutral
    element, and must equal applying first, then second.
  - Apply(Apply(t, s1), s2) == Apply(t, Compose(s1, s2)) and
    Apply(t, Identity()) == t.
  - Apply(Add(t1, ..., tk), Scale(s, k)) == Add(Apply(t1, s), ..., Apply(tk, s)).

The trees cannot detect violations of these laws; results are silently wrong
if a caller breaks them. Package algebra ships ready-made instances together
with a law checker which is meant to be run from tests.

Trees are not safe for concurrent use. Clients sharing a tree between
goroutines have to guard every call with a lock of their own.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package segtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'segtree'
func tracer() tracing.Trace {
	return tracing.Select("segtree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
