//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package arith

import (
	"fmt"
	"math/bits"
)

// divWW computes q = (u1<<_W + u0)/v and r = (u1<<_W + u0)%v. The
// caller guarantees u1 < v so the quotient fits in one word.
func divWW[W Word](u1, u0, v W) (q, r W) {
	n := Bits[W]()
	if n == 64 {
		q64, r64 := bits.Div64(uint64(u1), uint64(u0), uint64(v))
		return W(q64), W(r64)
	}
	u := uint64(u1)<<n | uint64(u0)
	return W(u / uint64(v)), W(u % uint64(v))
}

// Div computes the quotient q and remainder r of x/y with long
// division. The divisor y must be nonzero and the magnitude of x must
// be greater than or equal to y; the callers handle the x<y case
// without calling Div. The length of q must be len(x) and the length
// of r must be at least the significant length of y.
//
// The quotient is produced one word at a time, most significant word
// first. Each quotient word is estimated from the two leading words of
// the running remainder and the leading word of the normalized
// divisor, and then corrected: the estimate is never too small and at
// most two too large.
func Div[W Word](q, r, x, y []W) {
	ys := sig(y)
	if len(ys) == 0 {
		panic("arith.Div: division by zero")
	}
	if Cmp(x, ys) < 0 {
		panic("arith.Div: dividend smaller than divisor")
	}
	if len(q) != len(x) {
		panic(fmt.Sprintf("arith.Div: len(q)=%d != len(x)=%d",
			len(q), len(x)))
	}
	if len(r) < len(ys) {
		panic(fmt.Sprintf("arith.Div: len(r)=%d < %d", len(r), len(ys)))
	}
	clear(q)
	clear(r)

	n := len(ys)
	if n == 1 {
		r[len(r)-1] = divW(q, x, ys[0])
		return
	}

	// Normalize so that the leading divisor word has its top bit set.
	s := uint(bits.LeadingZeros64(uint64(ys[0])) - (64 - Bits[W]()))
	v := make([]W, n)
	Lsh(v, ys, s)
	u := make([]W, len(x)+1)
	Lsh(u, x, s)

	for j := 0; j <= len(x)-n; j++ {
		w := u[j : j+n+1]

		var qhat, rhat W
		refine := true
		if w[0] >= v[0] {
			// w[0] == v[0]: qhat = B-1, rhat = w[0]*B + w[1] - qhat*v[0].
			qhat = ^W(0)
			var c W
			c, rhat = addWW(w[0], w[1], 0)
			refine = c == 0
		} else {
			qhat, rhat = divWW(w[0], w[1], v[0])
		}
		for refine {
			ph, pl := mulWW(qhat, v[1])
			if ph < rhat || (ph == rhat && pl <= w[2]) {
				break
			}
			qhat--
			prev := rhat
			rhat += v[0]
			refine = rhat >= prev
		}

		// w -= qhat*v
		var mc, borrow W
		for i := n - 1; i >= 0; i-- {
			var lo W
			mc, lo = mulAddWWW(qhat, v[i], mc)
			borrow, w[i+1] = subWW(w[i+1], lo, borrow)
		}
		borrow, w[0] = subWW(w[0], mc, borrow)

		if borrow != 0 {
			// qhat was one too large; add v back.
			qhat--
			var c W
			for i := n - 1; i >= 0; i-- {
				c, w[i+1] = addWW(w[i+1], v[i], c)
			}
			w[0] += c
		}
		q[j+n-1] = qhat
	}

	rem := u[len(u)-n:]
	Rsh(rem, rem, s)
	copy(r[len(r)-n:], rem)
}

// divW sets q to x/y for a single word divisor y and returns the
// remainder.
func divW[W Word](q, x []W, y W) (rem W) {
	for i, w := range x {
		q[i], rem = divWW(rem, w, y)
	}
	return
}
