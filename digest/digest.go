//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package digest defines the fixed-output hash capability that the
// RSA padding schemes use. A Digest is selected per call site; the
// arithmetic core never uses it directly.
package digest

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"slices"

	"golang.org/x/crypto/sha3"
)

// Digest implements a fixed-output hash function.
type Digest interface {
	// Name returns the algorithm name.
	Name() string

	// Size returns the digest length in bytes.
	Size() int

	// Sum returns the digest of data.
	Sum(data []byte) []byte

	// DigestInfo returns the DER encoded DigestInfo prefix for the
	// PKCS #1 v1.5 signatures. The digest value follows the prefix.
	DigestInfo() []byte
}

type hashDigest struct {
	name   string
	size   int
	new    func() hash.Hash
	prefix []byte
}

func (d *hashDigest) Name() string {
	return d.name
}

func (d *hashDigest) Size() int {
	return d.size
}

func (d *hashDigest) Sum(data []byte) []byte {
	h := d.new()
	h.Write(data)
	return h.Sum(nil)
}

func (d *hashDigest) DigestInfo() []byte {
	return slices.Clone(d.prefix)
}

func (d *hashDigest) String() string {
	return d.name
}

// Supported digests.
var (
	SHA256 Digest = &hashDigest{
		name: "SHA-256",
		size: sha256.Size,
		new:  sha256.New,
		prefix: []byte{
			0x30, 0x31, 0x30, 0x0d, 0x06, 0x09, 0x60, 0x86, 0x48, 0x01,
			0x65, 0x03, 0x04, 0x02, 0x01, 0x05, 0x00, 0x04, 0x20,
		},
	}
	SHA384 Digest = &hashDigest{
		name: "SHA-384",
		size: sha512.Size384,
		new:  sha512.New384,
		prefix: []byte{
			0x30, 0x41, 0x30, 0x0d, 0x06, 0x09, 0x60, 0x86, 0x48, 0x01,
			0x65, 0x03, 0x04, 0x02, 0x02, 0x05, 0x00, 0x04, 0x30,
		},
	}
	SHA512 Digest = &hashDigest{
		name: "SHA-512",
		size: sha512.Size,
		new:  sha512.New,
		prefix: []byte{
			0x30, 0x51, 0x30, 0x0d, 0x06, 0x09, 0x60, 0x86, 0x48, 0x01,
			0x65, 0x03, 0x04, 0x02, 0x03, 0x05, 0x00, 0x04, 0x40,
		},
	}
	SHA3_256 Digest = &hashDigest{
		name: "SHA3-256",
		size: 32,
		new:  sha3.New256,
		prefix: []byte{
			0x30, 0x31, 0x30, 0x0d, 0x06, 0x09, 0x60, 0x86, 0x48, 0x01,
			0x65, 0x03, 0x04, 0x02, 0x08, 0x05, 0x00, 0x04, 0x20,
		},
	}
	SHA3_512 Digest = &hashDigest{
		name: "SHA3-512",
		size: 64,
		new:  sha3.New512,
		prefix: []byte{
			0x30, 0x51, 0x30, 0x0d, 0x06, 0x09, 0x60, 0x86, 0x48, 0x01,
			0x65, 0x03, 0x04, 0x02, 0x0a, 0x05, 0x00, 0x04, 0x40,
		},
	}
)

var digests = []Digest{
	SHA256, SHA384, SHA512, SHA3_256, SHA3_512,
}

// All returns all supported digests.
func All() []Digest {
	return slices.Clone(digests)
}

// ByName returns the digest with the algorithm name.
func ByName(name string) (Digest, error) {
	for _, d := range digests {
		if d.Name() == name {
			return d, nil
		}
	}
	return nil, fmt.Errorf("digest: unknown algorithm '%s'", name)
}
