//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package arith implements the magnitude-only kernel of the
// multi-precision integers. The functions operate on word vectors
// that store the most significant word first. The callers allocate
// the output vectors; the functions never grow them. All functions
// are generic over the word width so the same kernel serves 8, 16,
// 32, and 64 bit digits.
package arith
