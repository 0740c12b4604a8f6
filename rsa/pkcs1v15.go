//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package rsa

import (
	"bytes"
	"errors"
	"io"

	"github.com/markkurossi/bignum/digest"
	"github.com/markkurossi/bignum/pkcs1"
)

// EncryptPKCS1v15 encrypts the message msg with the PKCS #1 v1.5
// scheme. The block padding is read from rand.
func EncryptPKCS1v15(rand io.Reader, pub *PublicKey, msg []byte) (
	[]byte, error) {

	k := pub.Size()
	block, err := pkcs1.NewEncryptionBlock(rand, pkcs1.BT2, k, msg)
	if err != nil {
		if errors.Is(err, pkcs1.ErrorDataTooLong) {
			return nil, ErrMessageTooLong
		}
		return nil, err
	}
	c, err := Encrypt(pub, OS2IP(block))
	if err != nil {
		return nil, err
	}
	return I2OSP(c, k)
}

// DecryptPKCS1v15 decrypts the PKCS #1 v1.5 ciphertext.
func DecryptPKCS1v15(priv *PrivateKey, ciphertext []byte) ([]byte, error) {
	k := priv.Size()
	if len(ciphertext) != k {
		return nil, ErrDecryption
	}
	m, err := Decrypt(priv, OS2IP(ciphertext))
	if err != nil {
		return nil, ErrDecryption
	}
	em, err := I2OSP(m, k)
	if err != nil {
		return nil, ErrDecryption
	}
	bt, data, err := pkcs1.ParseEncryptionBlock(em)
	if err != nil || bt != pkcs1.BT2 {
		return nil, ErrDecryption
	}
	return data, nil
}

func signatureBlock(k int, d digest.Digest, hashed []byte) ([]byte, error) {
	t, err := pkcs1.EncodeDigestInfo(d, hashed)
	if err != nil {
		return nil, err
	}
	block, err := pkcs1.NewEncryptionBlock(nil, pkcs1.BT1, k, t)
	if err != nil {
		if errors.Is(err, pkcs1.ErrorDataTooLong) {
			return nil, ErrMessageTooLong
		}
		return nil, err
	}
	return block, nil
}

// SignPKCS1v15 signs the digest hashed, computed with d, with the
// PKCS #1 v1.5 signature scheme.
func SignPKCS1v15(priv *PrivateKey, d digest.Digest, hashed []byte) (
	[]byte, error) {

	k := priv.Size()
	em, err := signatureBlock(k, d, hashed)
	if err != nil {
		return nil, err
	}
	s, err := Decrypt(priv, OS2IP(em))
	if err != nil {
		return nil, err
	}
	return I2OSP(s, k)
}

// VerifyPKCS1v15 verifies the PKCS #1 v1.5 signature sig of the
// digest hashed. The function returns nil if the signature is valid.
func VerifyPKCS1v15(pub *PublicKey, d digest.Digest, hashed, sig []byte) error {
	k := pub.Size()
	if len(sig) != k {
		return ErrVerification
	}
	m, err := Encrypt(pub, OS2IP(sig))
	if err != nil {
		return ErrVerification
	}
	em, err := I2OSP(m, k)
	if err != nil {
		return ErrVerification
	}
	expected, err := signatureBlock(k, d, hashed)
	if err != nil {
		return ErrVerification
	}
	if !bytes.Equal(em, expected) {
		return ErrVerification
	}
	return nil
}
