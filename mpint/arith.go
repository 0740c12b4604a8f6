//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mpint

import (
	"github.com/markkurossi/bignum/arith"
)

// addAbs returns x+y. The result has room for the carry out of the
// longer operand.
func addAbs[W arith.Word](x, y []W) []W {
	z := make([]W, max(len(x), len(y))+1)
	arith.Add(z, x, y)
	return z
}

// subAbs returns x-y for x >= y.
func subAbs[W arith.Word](x, y []W) []W {
	z := make([]W, max(len(x), len(y)))
	arith.Sub(z, x, y)
	return z
}

// Add returns x+y.
func (x Int[W]) Add(y Int[W]) Int[W] {
	xa := x.abs()
	ya := y.abs()

	if x.neg == y.neg {
		return newInt(x.neg, addAbs(xa, ya))
	}
	switch arith.Cmp(xa, ya) {
	case 1:
		return newInt(x.neg, subAbs(xa, ya))
	case -1:
		return newInt(y.neg, subAbs(ya, xa))
	default:
		return Int[W]{}
	}
}

// Sub returns x-y.
func (x Int[W]) Sub(y Int[W]) Int[W] {
	return x.Add(Int[W]{
		neg: !y.neg,
		mag: y.mag,
	})
}

// Mul returns x*y.
func (x Int[W]) Mul(y Int[W]) Int[W] {
	xa := x.abs()
	ya := y.abs()

	z := make([]W, len(xa)+len(ya))
	arith.Mul(z, xa, ya)
	return newInt(x.neg != y.neg, z)
}

// DivMod returns the quotient x/y and the remainder x%y. The function
// returns ErrDivisionByZero if y is zero. If |x| < |y| the quotient is
// zero and the remainder is x. Otherwise both the quotient and the
// remainder have the sign of x XOR the sign of y; the remainder does
// not follow the sign of the dividend.
func (x Int[W]) DivMod(y Int[W]) (q, r Int[W], err error) {
	ya := y.abs()
	if arith.IsZero(ya) {
		return q, r, ErrDivisionByZero
	}
	xa := x.abs()
	if arith.Cmp(xa, ya) < 0 {
		return Int[W]{}, x.clone(), nil
	}
	qm := make([]W, len(xa))
	rm := make([]W, len(ya))
	arith.Div(qm, rm, xa, ya)

	neg := x.neg != y.neg
	return newInt(neg, qm), newInt(neg, rm), nil
}

// Div returns the quotient x/y. See DivMod for the sign rules.
func (x Int[W]) Div(y Int[W]) (Int[W], error) {
	q, _, err := x.DivMod(y)
	return q, err
}

// Mod returns the remainder x%y. See DivMod for the sign rules.
func (x Int[W]) Mod(y Int[W]) (Int[W], error) {
	_, r, err := x.DivMod(y)
	return r, err
}

// Lsh returns x<<n within the current magnitude width of x. The bits
// shifted past the most significant word are discarded, so Lsh is not
// a multiplication by 2^n. The sign of x is kept.
func (x Int[W]) Lsh(n uint) Int[W] {
	xa := x.abs()
	z := make([]W, len(xa))
	arith.Lsh(z, xa, n)
	return newInt(x.neg, z)
}

// Rsh returns x>>n of the magnitude of x. The bits shifted past the
// least significant word are discarded. The sign of x is kept.
func (x Int[W]) Rsh(n uint) Int[W] {
	xa := x.abs()
	z := make([]W, len(xa))
	arith.Rsh(z, xa, n)
	return newInt(x.neg, z)
}
