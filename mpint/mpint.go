//
// mpint.go
//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

package mpint

import (
	"errors"
	"math/bits"
	"slices"

	"fortio.org/safecast"
	"github.com/markkurossi/bignum/arith"
)

var (
	// ErrFormat is returned if an integer text representation
	// contains invalid characters.
	ErrFormat = errors.New("mpint: invalid integer format")

	// ErrDivisionByZero is returned if the divisor is zero.
	ErrDivisionByZero = errors.New("mpint: division by zero")
)

// Int implements a signed multi-precision integer with W sized
// words. The zero value is the integer 0.
type Int[W arith.Word] struct {
	neg bool
	mag []W
}

// Int types for the supported word sizes.
type (
	Int8  = Int[uint8]
	Int16 = Int[uint16]
	Int32 = Int[uint32]
	Int64 = Int[uint64]
)

// newInt creates an Int from the magnitude words. The function takes
// the ownership of mag.
func newInt[W arith.Word](neg bool, mag []W) Int[W] {
	mag = arith.Norm(mag)
	if arith.IsZero(mag) {
		return Int[W]{}
	}
	return Int[W]{
		neg: neg,
		mag: mag,
	}
}

// New creates a new Int from the magnitude words, most significant
// word first, and the negativity flag. The words are copied.
func New[W arith.Word](words []W, neg bool) Int[W] {
	return newInt(neg, slices.Clone(words))
}

// Zero returns the integer 0.
func Zero[W arith.Word]() Int[W] {
	return Int[W]{}
}

// One returns the integer 1.
func One[W arith.Word]() Int[W] {
	return Int[W]{
		mag: []W{1},
	}
}

// FromUint64 creates a new Int with the value v.
func FromUint64[W arith.Word](v uint64) Int[W] {
	n := arith.Bits[W]()
	words := 64 / n
	mag := make([]W, words)
	for i := words - 1; i >= 0; i-- {
		mag[i] = W(v)
		if n < 64 {
			v >>= n
		}
	}
	return newInt(false, mag)
}

// FromInt64 creates a new Int with the value v.
func FromInt64[W arith.Word](v int64) Int[W] {
	if v >= 0 {
		return FromUint64[W](uint64(v))
	}
	z := FromUint64[W](uint64(-(v + 1)) + 1)
	z.neg = true
	return z
}

// abs returns the magnitude of x. The zero value returns a fresh
// single zero word.
func (x Int[W]) abs() []W {
	if len(x.mag) == 0 {
		return []W{0}
	}
	return x.mag
}

func (x Int[W]) clone() Int[W] {
	return Int[W]{
		neg: x.neg,
		mag: slices.Clone(x.mag),
	}
}

// Words returns a copy of the magnitude words of x, most significant
// word first.
func (x Int[W]) Words() []W {
	return slices.Clone(x.abs())
}

// Sign returns -1, 0, 1 if x is negative, zero, or positive.
func (x Int[W]) Sign() int {
	if x.IsZero() {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// IsZero tests if x is zero.
func (x Int[W]) IsZero() bool {
	return arith.IsZero(x.mag)
}

// Neg returns -x.
func (x Int[W]) Neg() Int[W] {
	return newInt(!x.neg, slices.Clone(x.abs()))
}

// Abs returns |x|.
func (x Int[W]) Abs() Int[W] {
	return newInt(false, slices.Clone(x.abs()))
}

// BitLen returns the length of the magnitude of x in bits.
func (x Int[W]) BitLen() int {
	mag := x.abs()
	return (len(mag)-1)*arith.Bits[W]() + bits.Len64(uint64(mag[0]))
}

// Bit returns the value of the i'th bit of the magnitude of x. The
// bits outside the magnitude are zero.
func (x Int[W]) Bit(i int) uint {
	u, err := safecast.Conv[uint](i)
	if err != nil {
		return 0
	}
	n := uint(arith.Bits[W]())
	mag := x.abs()
	idx := u / n
	if idx >= uint(len(mag)) {
		return 0
	}
	return uint(mag[uint(len(mag))-1-idx]>>(u%n)) & 1
}

// Uint64 returns the 64 least significant bits of the magnitude of x.
func (x Int[W]) Uint64() uint64 {
	n := arith.Bits[W]()
	var v uint64
	for _, w := range x.abs() {
		if n < 64 {
			v = v<<n | uint64(w)
		} else {
			v = uint64(w)
		}
	}
	return v
}

// Cmp compares x and y and returns -1, 0, 1 if x is smaller, equal,
// or greater than y.
func (x Int[W]) Cmp(y Int[W]) int {
	xs := x.Sign()
	ys := y.Sign()
	if xs != ys {
		if xs < ys {
			return -1
		}
		return 1
	}
	r := arith.Cmp(x.abs(), y.abs())
	if xs < 0 {
		return -r
	}
	return r
}

// CmpAbs compares the magnitudes of x and y.
func (x Int[W]) CmpAbs(y Int[W]) int {
	return arith.Cmp(x.abs(), y.abs())
}

// Equal tests if x and y are equal.
func (x Int[W]) Equal(y Int[W]) bool {
	return x.Cmp(y) == 0
}
