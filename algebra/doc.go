/*
Package algebra provides pre-manufactured value monoids and range actions for
package segtree, together with a law checker for caller-supplied algebras.

Numeric value monoids (sum, min, max, xor, bitwise or) can be combined with
add, assign or affine range actions.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package algebra

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'segtree'
func tracer() tracing.Trace {
	return tracing.Select("segtree")
}
