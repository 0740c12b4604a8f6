//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package numtheory implements the number-theoretic algorithms that
// the RSA operations need: greatest common divisor, modular inverse,
// modular exponentiation, parity tests, and probabilistic prime
// generation. The algorithms use only the public operations of the
// mpint.Int type.
package numtheory
