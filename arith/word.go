//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package arith

import (
	"math/bits"
)

// Word defines the unsigned integer types that can be used as the
// digits of a multi-precision magnitude.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Bits returns the width of the word type W in bits.
func Bits[W Word]() int {
	return bits.Len64(uint64(^W(0)))
}

// Bytes returns the width of the word type W in bytes.
func Bytes[W Word]() int {
	return Bits[W]() / 8
}

// addWW computes z1<<_W + z0 = x+y+c, with c == 0 or 1.
func addWW[W Word](x, y, c W) (z1, z0 W) {
	sum, carry := bits.Add64(uint64(x), uint64(y), uint64(c))
	n := Bits[W]()
	if n == 64 {
		return W(carry), W(sum)
	}
	return W(sum >> n), W(sum)
}

// subWW computes z0 = x-y-c and returns the borrow b, with c == 0 or
// 1.
func subWW[W Word](x, y, c W) (b, z0 W) {
	diff, borrow := bits.Sub64(uint64(x), uint64(y), uint64(c))
	return W(borrow), W(diff)
}

// mulWW computes z1<<_W + z0 = x*y.
func mulWW[W Word](x, y W) (z1, z0 W) {
	hi, lo := bits.Mul64(uint64(x), uint64(y))
	n := Bits[W]()
	if n == 64 {
		return W(hi), W(lo)
	}
	return W(lo >> n), W(lo)
}

// mulAddWWW computes z1<<_W + z0 = x*y + c.
func mulAddWWW[W Word](x, y, c W) (z1, z0 W) {
	z1, z0 = mulWW(x, y)
	var cc W
	cc, z0 = addWW(z0, c, 0)
	z1 += cc
	return
}

// at returns the word of x at the weight position pos, counted from
// the least significant word. Positions outside x are zero.
func at[W Word](x []W, pos int) W {
	if pos < 0 || pos >= len(x) {
		return 0
	}
	return x[len(x)-1-pos]
}
