//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package numtheory

import (
	"errors"
	"fmt"
	"io"

	"fortio.org/safecast"
	"github.com/markkurossi/bignum/arith"
	"github.com/markkurossi/bignum/mpint"
)

var (
	// ErrInvalidRange is returned if a random number range or size is
	// invalid.
	ErrInvalidRange = errors.New("numtheory: invalid range")
)

var smallPrimes = []uint64{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61,
	67, 71, 73, 79, 83, 89, 97, 101, 103, 107, 109, 113, 127, 131, 137,
	139, 149, 151, 157, 163, 167, 173, 179, 181, 191, 193, 197, 199, 211,
	223, 227, 229, 233, 239, 241, 251,
}

// RandomInt returns a uniform random value in the range [0, n). The
// random bits are read from rand.
func RandomInt[W arith.Word](rand io.Reader, n mpint.Int[W]) (
	mpint.Int[W], error) {

	if n.Sign() <= 0 {
		return mpint.Zero[W](), ErrInvalidRange
	}
	bits := n.BitLen()
	buf := make([]byte, (bits+7)/8)
	mask := byte(0xff)
	if b := bits % 8; b != 0 {
		mask = byte(1<<b) - 1
	}
	for {
		if _, err := io.ReadFull(rand, buf); err != nil {
			return mpint.Zero[W](), err
		}
		buf[0] &= mask
		v := mpint.FromBytes[W](buf)
		if v.Cmp(n) < 0 {
			return v, nil
		}
	}
}

// ProbablyPrime tests if n is prime. The function does trial division
// with small primes and then runs rounds Miller-Rabin tests with
// random bases read from rand. A composite n passes the test with a
// probability of at most 4^-rounds.
func ProbablyPrime[W arith.Word](n mpint.Int[W], rounds int,
	rand io.Reader) (bool, error) {

	if n.Sign() <= 0 {
		return false, nil
	}
	for _, p := range smallPrimes {
		pi := mpint.FromUint64[W](p)
		switch n.Cmp(pi) {
		case 0:
			return true, nil
		case -1:
			return false, nil
		}
		r, err := n.Mod(pi)
		if err != nil {
			return false, err
		}
		if r.IsZero() {
			return false, nil
		}
	}

	one := mpint.One[W]()
	nm1 := n.Sub(one)

	// n-1 = d*2^s
	d := nm1
	var s int
	for IsEven(d) {
		d = d.Rsh(1)
		s++
	}

	// Bases in the range [2, n-2].
	baseRange := n.Sub(mpint.FromUint64[W](3))
	two := mpint.FromUint64[W](2)

outer:
	for i := 0; i < rounds; i++ {
		a, err := RandomInt(rand, baseRange)
		if err != nil {
			return false, err
		}
		a = a.Add(two)

		x, err := PowMod(a, d, n)
		if err != nil {
			return false, err
		}
		if x.Equal(one) || x.Equal(nm1) {
			continue
		}
		for j := 1; j < s; j++ {
			x = reduce(x.Mul(x), n)
			if x.Equal(nm1) {
				continue outer
			}
			if x.Equal(one) {
				return false, nil
			}
		}
		return false, nil
	}
	return true, nil
}

// RandomPrime returns a random prime of exactly bits bits. The two
// most significant bits of the prime are set so that the product of
// two such primes has exactly 2*bits bits.
func RandomPrime[W arith.Word](rand io.Reader, bits int) (
	mpint.Int[W], error) {

	if bits < 2 {
		return mpint.Zero[W](), fmt.Errorf("%w: prime size %d bits",
			ErrInvalidRange, bits)
	}
	ubits, err := safecast.Conv[uint](bits)
	if err != nil {
		return mpint.Zero[W](), err
	}
	b := ubits % 8
	if b == 0 {
		b = 8
	}
	buf := make([]byte, (bits+7)/8)

	for {
		if _, err := io.ReadFull(rand, buf); err != nil {
			return mpint.Zero[W](), err
		}
		buf[0] &= byte(int(1<<b) - 1)
		if b >= 2 {
			buf[0] |= 3 << (b - 2)
		} else {
			buf[0] |= 1
			buf[1] |= 0x80
		}
		buf[len(buf)-1] |= 1

		p := mpint.FromBytes[W](buf)
		ok, err := ProbablyPrime(p, 20, rand)
		if err != nil {
			return mpint.Zero[W](), err
		}
		if ok {
			return p, nil
		}
	}
}
