//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package arith

import (
	"fmt"
)

func checkBitwise(op string, z, x, y int) {
	if z != max(x, y) {
		panic(fmt.Sprintf("arith.%s: len(z)=%d != max(%d,%d)", op, z, x, y))
	}
}

// And sets z to x&y. The operands are aligned at their least
// significant words and the shorter operand is zero-extended. The
// length of z must be max(len(x), len(y)).
func And[W Word](z, x, y []W) {
	checkBitwise("And", len(z), len(x), len(y))
	for pos := 0; pos < len(z); pos++ {
		z[len(z)-1-pos] = at(x, pos) & at(y, pos)
	}
}

// Or sets z to x|y. The operands are aligned at their least
// significant words and the shorter operand is zero-extended. The
// length of z must be max(len(x), len(y)).
func Or[W Word](z, x, y []W) {
	checkBitwise("Or", len(z), len(x), len(y))
	for pos := 0; pos < len(z); pos++ {
		z[len(z)-1-pos] = at(x, pos) | at(y, pos)
	}
}

// Xor sets z to x^y. The operands are aligned at their least
// significant words and the shorter operand is zero-extended. The
// length of z must be max(len(x), len(y)).
func Xor[W Word](z, x, y []W) {
	checkBitwise("Xor", len(z), len(x), len(y))
	for pos := 0; pos < len(z); pos++ {
		z[len(z)-1-pos] = at(x, pos) ^ at(y, pos)
	}
}

// Not complements all words of x in place.
func Not[W Word](x []W) {
	for i := range x {
		x[i] = ^x[i]
	}
}
