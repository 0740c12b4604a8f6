//
// encryption_block.go
//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//
// PKCS #1 Encryption-block formatting, RFC 2313.

package pkcs1

import (
	"errors"
	"fmt"
	"io"

	"github.com/markkurossi/bignum/digest"
)

// EncryptionBlockType specifies the encryption block type and how the
// padding is detected.
type EncryptionBlockType byte

// Block types.
const (
	BT0 EncryptionBlockType = iota
	BT1
	BT2
)

const (
	// MinPadLen specifies the minimum padding length.
	MinPadLen = 8
)

var (
	// ErrorInvalidEncryptionBlock error is returned in the encryption
	// block is malformed.
	ErrorInvalidEncryptionBlock = errors.New("invalid encryption block")

	// ErrorDataTooLong error is returned if the data does not fit in
	// the encryption block with MinPadLen of padding.
	ErrorDataTooLong = errors.New("data too long")
)

// NewEncryptionBlock creates a new encryption block with the given
// type and data. The argument blockLen specifies the length of the
// resulting block. The function will return an error if the blockLen
// is too long to contain valid block formatting and MinPadLen of
// padding. A block type BT, a padding string PS, and the data D shall
// be formatted into an octet string EB, the encryption block.
//
//	EB = 00 || BT || PS || 00 || D .           (1)
//
// The BT2 padding is read from rand; rand is not used for BT1.
func NewEncryptionBlock(rand io.Reader, bt EncryptionBlockType,
	blockLen int, data []byte) ([]byte, error) {

	padLen := blockLen - 3 - len(data)
	if padLen < MinPadLen {
		return nil, ErrorDataTooLong
	}

	block := make([]byte, blockLen)
	block[0] = 0
	block[1] = byte(bt)

	switch bt {
	case BT0:
		return nil, errors.New("block type 0 not supported")

	case BT1:
		for i := 0; i < padLen; i++ {
			block[2+i] = 0xff
		}

	case BT2:
		_, err := io.ReadFull(rand, block[2:padLen+2])
		if err != nil {
			return nil, err
		}
		for i := 0; i < padLen; i++ {
			for block[2+i] == 0 {
				_, err := io.ReadFull(rand, block[2+i:2+i+1])
				if err != nil {
					return nil, err
				}
			}
		}

	default:
		return nil, fmt.Errorf("invalid encryption block type %d", bt)
	}
	copy(block[3+padLen:], data)

	return block, nil
}

// ParseEncryptionBlock parses the argument encryption block and
// returns its type and data.
func ParseEncryptionBlock(block []byte) (EncryptionBlockType, []byte, error) {
	if len(block) < 4 {
		return 0, nil, errors.New("truncated encryption block")
	}
	if block[0] != 0 {
		return 0, nil, ErrorInvalidEncryptionBlock
	}
	bt := EncryptionBlockType(block[1])
	switch bt {
	case BT1, BT2:
	default:
		return 0, nil, fmt.Errorf("invalid encryption block type %d", block[1])
	}

	for i := 2; i < len(block); i++ {
		if block[i] == 0 {
			if i-2 < MinPadLen {
				return 0, nil, ErrorInvalidEncryptionBlock
			}
			return bt, block[i+1:], nil
		}
		if bt == BT1 && block[i] != 0xff {
			return 0, nil, ErrorInvalidEncryptionBlock
		}
	}
	return 0, nil, ErrorInvalidEncryptionBlock
}

// EncodeDigestInfo creates the DigestInfo data for a BT1 signature
// block: the DER encoded algorithm identifier of the digest d followed
// by the digest value hashed.
func EncodeDigestInfo(d digest.Digest, hashed []byte) ([]byte, error) {
	if len(hashed) != d.Size() {
		return nil, fmt.Errorf("invalid %s digest length %d, expected %d",
			d.Name(), len(hashed), d.Size())
	}
	return append(d.DigestInfo(), hashed...), nil
}
