//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

// Package mpint implements signed multi-precision integers on top of
// the arith kernel. An Int is a sign-magnitude value: a negativity
// flag and a magnitude word vector. Int values are immutable; all
// operations return new values which own their storage, so Int values
// can be shared freely between goroutines.
//
// The bitwise operations and the shifts act on the stored magnitude,
// not on a two's complement encoding of the signed value, and the
// shifts are fixed-width: they never grow the magnitude.
package mpint
