//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package numtheory

import (
	"errors"

	"github.com/markkurossi/bignum/arith"
	"github.com/markkurossi/bignum/mpint"
)

var (
	// ErrNegativeExponent is returned if the modular exponentiation
	// is called with a negative exponent.
	ErrNegativeExponent = errors.New("numtheory: negative exponent")
)

// GCD returns the greatest common divisor of a and b with the
// Euclidean algorithm. The result is non-negative and GCD(a, 0) is
// |a|.
func GCD[W arith.Word](a, b mpint.Int[W]) mpint.Int[W] {
	r1 := a.Abs()
	r2 := b.Abs()
	if r1.Cmp(r2) < 0 {
		r1, r2 = r2, r1
	}
	for !r2.IsZero() {
		r, err := r1.Mod(r2)
		if err != nil {
			panic(err)
		}
		r1, r2 = r2, r
	}
	return r1
}

// ModInverse returns the inverse of a modulo m with the extended
// Euclidean algorithm. The function returns false if the inverse does
// not exist: a is not in the range [0, m), or a and m are not
// coprime. The returned inverse is in the range [0, m).
func ModInverse[W arith.Word](a, m mpint.Int[W]) (mpint.Int[W], bool) {
	if a.Sign() < 0 || m.Sign() <= 0 || a.Cmp(m) >= 0 {
		return mpint.Zero[W](), false
	}

	// The invariant r_i = t_i*a (mod m) holds for both pairs.
	r0, r1 := m, a
	t0, t1 := mpint.Zero[W](), mpint.One[W]()

	for !r1.IsZero() {
		q, r, err := r0.DivMod(r1)
		if err != nil {
			panic(err)
		}
		r0, r1 = r1, r
		t0, t1 = t1, t0.Sub(q.Mul(t1))
	}
	if !r0.Equal(mpint.One[W]()) {
		return mpint.Zero[W](), false
	}
	if t0.Sign() < 0 {
		t0 = t0.Add(m)
	}
	return t0, true
}

// reduce returns x mod m in the range [0, m) for a positive m.
func reduce[W arith.Word](x, m mpint.Int[W]) mpint.Int[W] {
	r, err := x.Mod(m)
	if err != nil {
		panic(err)
	}
	if r.Sign() < 0 {
		r = r.Add(m)
	}
	return r
}

// PowMod returns base^exp mod m with the binary square-and-multiply
// algorithm. The result is in the range [0, |m|). The function
// returns mpint.ErrDivisionByZero if m is zero and ErrNegativeExponent
// if exp is negative.
func PowMod[W arith.Word](base, exp, m mpint.Int[W]) (mpint.Int[W], error) {
	if m.IsZero() {
		return mpint.Zero[W](), mpint.ErrDivisionByZero
	}
	if exp.Sign() < 0 {
		return mpint.Zero[W](), ErrNegativeExponent
	}
	m = m.Abs()
	b := reduce(base, m)
	result := reduce(mpint.One[W](), m)

	for i := exp.BitLen() - 1; i >= 0; i-- {
		result = reduce(result.Mul(result), m)
		if exp.Bit(i) == 1 {
			result = reduce(result.Mul(b), m)
		}
	}
	return result, nil
}

// IsEven tests if x is even.
func IsEven[W arith.Word](x mpint.Int[W]) bool {
	r, err := x.Mod(mpint.FromUint64[W](2))
	if err != nil {
		panic(err)
	}
	return r.IsZero()
}

// IsOdd tests if x is odd.
func IsOdd[W arith.Word](x mpint.Int[W]) bool {
	return !IsEven(x)
}
