//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

// Package prg implements a deterministic pseudorandom generator. The
// generator expands a seed into a ChaCha20 key stream. It is used for
// reproducible prime and key generation; it is not a replacement for
// crypto/rand when fresh randomness is needed.
package prg

import (
	"golang.org/x/crypto/chacha20"
)

// Reader implements io.Reader returning the ChaCha20 key stream of the
// seed.
type Reader struct {
	cipher *chacha20.Cipher
}

// New creates a new generator from the seed. The seed may be any
// length; it is repeated or trimmed to 32 bytes to form the key. The
// nonce is zero.
func New(seed []byte) *Reader {
	key := make([]byte, chacha20.KeySize)
	if len(seed) > 0 {
		for i := 0; i < len(key); i++ {
			key[i] = seed[i%len(seed)]
		}
	}
	nonce := make([]byte, chacha20.NonceSize)
	c, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		panic(err)
	}
	return &Reader{
		cipher: c,
	}
}

// Read fills p with the next bytes of the key stream. It never fails.
func (r *Reader) Read(p []byte) (int, error) {
	clear(p)
	r.cipher.XORKeyStream(p, p)
	return len(p), nil
}
