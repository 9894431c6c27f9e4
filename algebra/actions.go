package algebra

import "github.com/npillmayer/segtree"

// AddTo adds a delta to every element of a range of summed values.
type AddTo[N Number] struct{}

func (AddTo[N]) Identity() N                 { return 0 }
func (AddTo[N]) Compose(first, second N) N   { return first + second }
func (AddTo[N]) Apply(value, delta N) N      { return value + delta }
func (AddTo[N]) Scale(delta N, length int) N { return delta * N(length) }

// AddToExtremum adds a delta to every element of a range of minima or
// maxima. Adding shifts an extremum by the same delta, so no scaling applies.
type AddToExtremum[N Number] struct{}

func (AddToExtremum[N]) Identity() N               { return 0 }
func (AddToExtremum[N]) Compose(first, second N) N { return first + second }
func (AddToExtremum[N]) Apply(value, delta N) N    { return value + delta }
func (AddToExtremum[N]) Scale(delta N, _ int) N    { return delta }

// Assignment is a pending assignment. The zero value assigns nothing.
type Assignment[N Number] struct {
	Set   bool
	Value N
}

// Assign returns an assignment of v.
func Assign[N Number](v N) Assignment[N] {
	return Assignment[N]{Set: true, Value: v}
}

// AssignExtremum overwrites every element of a range of minima or maxima.
type AssignExtremum[N Number] struct{}

func (AssignExtremum[N]) Identity() Assignment[N] { return Assignment[N]{} }

// Compose lets the later assignment win.
func (AssignExtremum[N]) Compose(first, second Assignment[N]) Assignment[N] {
	if second.Set {
		return second
	}
	return first
}

func (AssignExtremum[N]) Apply(value N, a Assignment[N]) N {
	if a.Set {
		return a.Value
	}
	return value
}

func (AssignExtremum[N]) Scale(a Assignment[N], _ int) Assignment[N] { return a }

// AssignSum overwrites every element of a range of summed values. The
// aggregate of length k assigned elements is k times the value.
type AssignSum[N Number] struct{}

func (AssignSum[N]) Identity() Assignment[N] { return Assignment[N]{} }

// Compose lets the later assignment win.
func (AssignSum[N]) Compose(first, second Assignment[N]) Assignment[N] {
	if second.Set {
		return second
	}
	return first
}

func (AssignSum[N]) Apply(value N, a Assignment[N]) N {
	if a.Set {
		return a.Value
	}
	return value
}

func (AssignSum[N]) Scale(a Assignment[N], length int) Assignment[N] {
	if !a.Set {
		return a
	}
	return Assignment[N]{Set: true, Value: a.Value * N(length)}
}

// Affine is the map x ↦ Mul·x + Add.
type Affine[N Number] struct {
	Mul, Add N
}

// AffineMap applies affine maps to every element of a range of summed values.
// Affine maps do not commute; Compose(f, g) is g after f.
type AffineMap[N Number] struct{}

func (AffineMap[N]) Identity() Affine[N] { return Affine[N]{Mul: 1} }

func (AffineMap[N]) Compose(f, g Affine[N]) Affine[N] {
	return Affine[N]{Mul: f.Mul * g.Mul, Add: g.Mul*f.Add + g.Add}
}

func (AffineMap[N]) Apply(value N, f Affine[N]) N {
	return f.Mul*value + f.Add
}

// Scale multiplies the constant term, as a sum of k elements receives it k
// times.
func (AffineMap[N]) Scale(f Affine[N], length int) Affine[N] {
	return Affine[N]{Mul: f.Mul, Add: f.Add * N(length)}
}

// SumAdd configures range sums with range add.
func SumAdd[N Number]() segtree.LazyConfig[N, N] {
	return segtree.LazyConfig[N, N]{Monoid: Sum[N]{}, Action: AddTo[N]{}}
}

// MinAdd configures range minima with range add. top must bound all values
// from above.
func MinAdd[N Number](top N) segtree.LazyConfig[N, N] {
	return segtree.LazyConfig[N, N]{Monoid: Min[N]{Top: top}, Action: AddToExtremum[N]{}}
}

// MaxAdd configures range maxima with range add. bottom must bound all values
// from below.
func MaxAdd[N Number](bottom N) segtree.LazyConfig[N, N] {
	return segtree.LazyConfig[N, N]{Monoid: Max[N]{Bottom: bottom}, Action: AddToExtremum[N]{}}
}

// MinAssign configures range minima with range assignment.
func MinAssign[N Number](top N) segtree.LazyConfig[N, Assignment[N]] {
	return segtree.LazyConfig[N, Assignment[N]]{Monoid: Min[N]{Top: top}, Action: AssignExtremum[N]{}}
}

// MaxAssign configures range maxima with range assignment.
func MaxAssign[N Number](bottom N) segtree.LazyConfig[N, Assignment[N]] {
	return segtree.LazyConfig[N, Assignment[N]]{Monoid: Max[N]{Bottom: bottom}, Action: AssignExtremum[N]{}}
}

// SumAssign configures range sums with range assignment.
func SumAssign[N Number]() segtree.LazyConfig[N, Assignment[N]] {
	return segtree.LazyConfig[N, Assignment[N]]{Monoid: Sum[N]{}, Action: AssignSum[N]{}}
}

// SumAffine configures range sums with range affine maps.
func SumAffine[N Number]() segtree.LazyConfig[N, Affine[N]] {
	return segtree.LazyConfig[N, Affine[N]]{Monoid: Sum[N]{}, Action: AffineMap[N]{}}
}
