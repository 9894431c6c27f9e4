package algebra

import "golang.org/x/exp/constraints"

// Number is the set of numeric types the pre-built instances work on.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum aggregates by addition.
type Sum[N Number] struct{}

// Zero returns 0.
func (Sum[N]) Zero() N { return 0 }

// Add returns left + right.
func (Sum[N]) Add(left, right N) N { return left + right }

// Min aggregates by minimum. Top is the neutral element and has to be an
// upper bound of every value stored in a tree.
type Min[N Number] struct {
	Top N
}

// Zero returns Top.
func (m Min[N]) Zero() N { return m.Top }

// Add returns the smaller of left and right.
func (Min[N]) Add(left, right N) N { return min(left, right) }

// Max aggregates by maximum. Bottom is the neutral element and has to be a
// lower bound of every value stored in a tree.
type Max[N Number] struct {
	Bottom N
}

// Zero returns Bottom.
func (m Max[N]) Zero() N { return m.Bottom }

// Add returns the larger of left and right.
func (Max[N]) Add(left, right N) N { return max(left, right) }

// Xor aggregates by bitwise exclusive or.
type Xor[N constraints.Integer] struct{}

func (Xor[N]) Zero() N             { return 0 }
func (Xor[N]) Add(left, right N) N { return left ^ right }

// BitOr aggregates by bitwise or, e.g. for sets of flags encoded as bitmasks.
type BitOr[N constraints.Integer] struct{}

func (BitOr[N]) Zero() N             { return 0 }
func (BitOr[N]) Add(left, right N) N { return left | right }
