package segtree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("segtree: invalid configuration")
	// ErrIndexOutOfBounds signals a position or range outside of the tracked leaves.
	ErrIndexOutOfBounds = errors.New("segtree: index out of bounds")
	// ErrCorruptTree signals a violated structural invariant, as reported by Check.
	ErrCorruptTree = errors.New("segtree: tree invariant violated")
)
