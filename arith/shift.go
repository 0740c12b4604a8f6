//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package arith

// Lsh sets z to x<<s. The shift is a fixed-width shift within the
// length of z: x is aligned at its least significant word, and the
// bits shifted past the most significant word of z are discarded. Lsh
// is therefore not a multiplication by 2^s unless z is long enough to
// hold the result.
func Lsh[W Word](z, x []W, s uint) {
	n := uint(Bits[W]())
	ws := int(s / n)
	bs := s % n

	// Descending weights so that z may alias x.
	for pos := len(z) - 1; pos >= 0; pos-- {
		w := at(x, pos-ws) << bs
		if bs != 0 {
			w |= at(x, pos-ws-1) >> (n - bs)
		}
		z[len(z)-1-pos] = w
	}
}

// Rsh sets z to x>>s. The shift is a fixed-width shift: x is aligned
// at its least significant word, the bits shifted past the least
// significant word are discarded, and z receives the len(z) least
// significant words of the result.
func Rsh[W Word](z, x []W, s uint) {
	n := uint(Bits[W]())
	ws := int(s / n)
	bs := s % n

	// Ascending weights so that z may alias x.
	for pos := 0; pos < len(z); pos++ {
		w := at(x, pos+ws) >> bs
		if bs != 0 {
			w |= at(x, pos+ws+1) << (n - bs)
		}
		z[len(z)-1-pos] = w
	}
}
