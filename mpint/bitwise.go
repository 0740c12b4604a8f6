//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mpint

import (
	"slices"

	"github.com/markkurossi/bignum/arith"
)

// And returns the bitwise AND of the magnitudes of x and y. The signs
// are ignored and the result is non-negative.
func (x Int[W]) And(y Int[W]) Int[W] {
	xa, ya := x.abs(), y.abs()
	z := make([]W, max(len(xa), len(ya)))
	arith.And(z, xa, ya)
	return newInt(false, z)
}

// Or returns the bitwise OR of the magnitudes of x and y. The signs
// are ignored and the result is non-negative.
func (x Int[W]) Or(y Int[W]) Int[W] {
	xa, ya := x.abs(), y.abs()
	z := make([]W, max(len(xa), len(ya)))
	arith.Or(z, xa, ya)
	return newInt(false, z)
}

// Xor returns the bitwise XOR of the magnitudes of x and y. The signs
// are ignored and the result is non-negative.
func (x Int[W]) Xor(y Int[W]) Int[W] {
	xa, ya := x.abs(), y.abs()
	z := make([]W, max(len(xa), len(ya)))
	arith.Xor(z, xa, ya)
	return newInt(false, z)
}

// Not returns the one's complement of every magnitude word of x. The
// sign of x is kept unless the result is zero.
func (x Int[W]) Not() Int[W] {
	z := slices.Clone(x.abs())
	arith.Not(z)
	return newInt(x.neg, z)
}
