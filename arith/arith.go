//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package arith

import (
	"fmt"
)

// sig returns x without its leading zero words. The result is empty
// if x is zero.
func sig[W Word](x []W) []W {
	for i, w := range x {
		if w != 0 {
			return x[i:]
		}
	}
	return x[len(x):]
}

// Norm returns x without its superfluous leading zero words. The
// result keeps at least one word so zero is returned as a single zero
// word. The result shares storage with x.
func Norm[W Word](x []W) []W {
	i := 0
	for i < len(x)-1 && x[i] == 0 {
		i++
	}
	return x[i:]
}

// IsZero tests if all words of x are zero.
func IsZero[W Word](x []W) bool {
	for _, w := range x {
		if w != 0 {
			return false
		}
	}
	return true
}

// Cmp compares the magnitudes x and y and returns -1, 0, 1 if x is
// smaller, equal, or greater than y. Leading zero words do not affect
// the result.
func Cmp[W Word](x, y []W) int {
	x = sig(x)
	y = sig(y)
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := 0; i < len(x); i++ {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Add sets z to x+y and returns the carry out of the most significant
// word of z. The operands are aligned at their least significant
// words. The length of z must be at least max(len(x), len(y)); the
// caller reserves one extra word if the carry must not be lost.
func Add[W Word](z, x, y []W) (c W) {
	if len(z) < len(x) || len(z) < len(y) {
		panic(fmt.Sprintf("arith.Add: len(z)=%d < max(%d,%d)",
			len(z), len(x), len(y)))
	}
	for pos := 0; pos < len(z); pos++ {
		c, z[len(z)-1-pos] = addWW(at(x, pos), at(y, pos), c)
	}
	return
}

// Sub sets z to x-y and returns the borrow out of the most significant
// word of z. The magnitude of x must be greater than or equal to y in
// which case the borrow is 0. The length of z must be at least
// max(len(x), len(y)).
func Sub[W Word](z, x, y []W) (b W) {
	if len(z) < len(x) || len(z) < len(y) {
		panic(fmt.Sprintf("arith.Sub: len(z)=%d < max(%d,%d)",
			len(z), len(x), len(y)))
	}
	for pos := 0; pos < len(z); pos++ {
		b, z[len(z)-1-pos] = subWW(at(x, pos), at(y, pos), b)
	}
	return
}

// Mul sets z to x*y using the schoolbook algorithm. The length of z
// must be len(x)+len(y) which always holds the product.
func Mul[W Word](z, x, y []W) {
	if len(z) != len(x)+len(y) {
		panic(fmt.Sprintf("arith.Mul: len(z)=%d != %d+%d",
			len(z), len(x), len(y)))
	}
	clear(z)
	for j := len(y) - 1; j >= 0; j-- {
		yj := y[j]
		var c W
		for i := len(x) - 1; i >= 0; i-- {
			k := i + j + 1
			hi, lo := mulAddWWW(x[i], yj, c)
			var cc W
			cc, z[k] = addWW(z[k], lo, 0)
			c = hi + cc
		}
		z[j] = c
	}
}

// Inc adds one to x in place and returns the carry out of the most
// significant word.
func Inc[W Word](x []W) W {
	for i := len(x) - 1; i >= 0; i-- {
		x[i]++
		if x[i] != 0 {
			return 0
		}
	}
	return 1
}

// Dec subtracts one from x in place and returns the borrow out of the
// most significant word.
func Dec[W Word](x []W) W {
	for i := len(x) - 1; i >= 0; i-- {
		x[i]--
		if x[i] != ^W(0) {
			return 0
		}
	}
	return 1
}
