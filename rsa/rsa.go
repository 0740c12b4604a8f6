//
// rsa.go
//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

// Package rsa implements the RSA primitives and the PKCS #1 v1.5
// encryption and signature schemes on top of the mpint integers. All
// modular exponentiations go through numtheory.PowMod.
package rsa

import (
	"errors"
	"fmt"
	"io"

	"github.com/markkurossi/bignum/mpint"
	"github.com/markkurossi/bignum/numtheory"
)

// Int defines the integer type of the RSA key components.
type Int = mpint.Int64

var (
	// ErrMessageTooLong is returned if the message does not fit in
	// the modulus.
	ErrMessageTooLong = errors.New("rsa: message too long for RSA key size")

	// ErrDecryption is returned if the decryption fails. The error
	// does not tell why the decryption failed.
	ErrDecryption = errors.New("rsa: decryption error")

	// ErrVerification is returned if the signature verification
	// fails.
	ErrVerification = errors.New("rsa: verification error")

	// ErrIntegerTooLarge is returned if an integer does not fit in
	// the requested octet string length.
	ErrIntegerTooLarge = errors.New("rsa: integer too large")

	// ErrInvalidKey is returned if the key components are
	// inconsistent.
	ErrInvalidKey = errors.New("rsa: invalid key")
)

// DefaultE is the public exponent of the generated keys.
const DefaultE = 65537

// MinKeyBits is the minimum size of the generated keys.
const MinKeyBits = 64

// PublicKey implements an RSA public key.
type PublicKey struct {
	N Int
	E Int
}

// Size returns the modulus size in bytes.
func (pub *PublicKey) Size() int {
	return (pub.N.BitLen() + 7) / 8
}

// Validate checks the public key components.
func (pub *PublicKey) Validate() error {
	if pub.N.Sign() <= 0 || numtheory.IsEven(pub.N) {
		return fmt.Errorf("%w: modulus %v", ErrInvalidKey, pub.N)
	}
	if pub.E.Cmp(mpint.FromUint64[uint64](3)) < 0 || numtheory.IsEven(pub.E) ||
		pub.E.Cmp(pub.N) >= 0 {
		return fmt.Errorf("%w: public exponent %v", ErrInvalidKey, pub.E)
	}
	return nil
}

// PrivateKey implements an RSA private key.
type PrivateKey struct {
	PublicKey
	D Int
	P Int
	Q Int
}

// Public returns the public key of the private key.
func (priv *PrivateKey) Public() *PublicKey {
	return &PublicKey{
		N: priv.N,
		E: priv.E,
	}
}

// Validate checks the private key components. If the primes are
// known, the function checks that they are the factors of the modulus
// and that the exponents are inverses modulo λ(N).
func (priv *PrivateKey) Validate() error {
	if err := priv.PublicKey.Validate(); err != nil {
		return err
	}
	if priv.D.Sign() <= 0 || priv.D.Cmp(priv.N) >= 0 {
		return fmt.Errorf("%w: private exponent", ErrInvalidKey)
	}
	if priv.P.IsZero() && priv.Q.IsZero() {
		return nil
	}
	if !priv.P.Mul(priv.Q).Equal(priv.N) {
		return fmt.Errorf("%w: N != P*Q", ErrInvalidKey)
	}
	lambda := carmichael(priv.P, priv.Q)
	ed, err := priv.E.Mul(priv.D).Mod(lambda)
	if err != nil {
		return err
	}
	if !ed.Equal(mpint.One[uint64]()) {
		return fmt.Errorf("%w: E*D != 1 mod λ", ErrInvalidKey)
	}
	return nil
}

// Lambda returns the Carmichael function λ(N) of the key. It returns
// zero if the primes are not known.
func (priv *PrivateKey) Lambda() Int {
	if priv.P.IsZero() || priv.Q.IsZero() {
		return Int{}
	}
	return carmichael(priv.P, priv.Q)
}

// carmichael returns λ(pq) = lcm(p-1, q-1).
func carmichael(p, q Int) Int {
	one := mpint.One[uint64]()
	pm1 := p.Sub(one)
	qm1 := q.Sub(one)
	l, err := pm1.Mul(qm1).Div(numtheory.GCD(pm1, qm1))
	if err != nil {
		panic(err)
	}
	return l
}

// GenerateKey generates an RSA key pair of the given bit size with
// the public exponent DefaultE. The random primes are generated from
// rand.
func GenerateKey(rand io.Reader, bits int) (*PrivateKey, error) {
	if bits < MinKeyBits {
		return nil, fmt.Errorf("rsa: key size %d too small", bits)
	}
	e := mpint.FromUint64[uint64](DefaultE)

	for {
		p, err := numtheory.RandomPrime[uint64](rand, bits-bits/2)
		if err != nil {
			return nil, err
		}
		q, err := numtheory.RandomPrime[uint64](rand, bits/2)
		if err != nil {
			return nil, err
		}
		if p.Equal(q) {
			continue
		}
		n := p.Mul(q)
		if n.BitLen() != bits {
			continue
		}
		d, ok := numtheory.ModInverse(e, carmichael(p, q))
		if !ok {
			continue
		}
		return &PrivateKey{
			PublicKey: PublicKey{
				N: n,
				E: e,
			},
			D: d,
			P: p,
			Q: q,
		}, nil
	}
}

// OS2IP converts the octet string x to a non-negative integer.
func OS2IP(x []byte) Int {
	return mpint.FromBytes[uint64](x)
}

// I2OSP converts the non-negative integer x to an octet string of
// length xLen.
func I2OSP(x Int, xLen int) ([]byte, error) {
	if x.Sign() < 0 || len(x.Bytes()) > xLen {
		return nil, ErrIntegerTooLarge
	}
	return x.FillBytes(make([]byte, xLen)), nil
}

// Encrypt implements the RSAEP primitive: c = m^e mod n.
func Encrypt(pub *PublicKey, m Int) (Int, error) {
	if m.Sign() < 0 || m.Cmp(pub.N) >= 0 {
		return Int{}, ErrMessageTooLong
	}
	return numtheory.PowMod(m, pub.E, pub.N)
}

// Decrypt implements the RSADP primitive: m = c^d mod n.
func Decrypt(priv *PrivateKey, c Int) (Int, error) {
	if c.Sign() < 0 || c.Cmp(priv.N) >= 0 {
		return Int{}, ErrDecryption
	}
	return numtheory.PowMod(c, priv.D, priv.N)
}
