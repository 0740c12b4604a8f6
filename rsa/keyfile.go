//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package rsa

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/markkurossi/bignum/mpint"
	"github.com/vmihailenco/msgpack/v5"
)

// keyFile defines the TOML key file format. The integers are stored
// as hexadecimal strings.
type keyFile struct {
	Bits int    `toml:"bits"`
	N    string `toml:"n"`
	E    string `toml:"e"`
	D    string `toml:"d,omitempty"`
	P    string `toml:"p,omitempty"`
	Q    string `toml:"q,omitempty"`
}

func parseField(name, value string) (Int, error) {
	if len(value) == 0 {
		return Int{}, fmt.Errorf("%w: missing field '%s'", ErrInvalidKey, name)
	}
	v, err := mpint.ParseHex[uint64](value)
	if err != nil {
		return Int{}, fmt.Errorf("field '%s': %w", name, err)
	}
	return v, nil
}

func (kf *keyFile) public() (*PublicKey, error) {
	n, err := parseField("n", kf.N)
	if err != nil {
		return nil, err
	}
	e, err := parseField("e", kf.E)
	if err != nil {
		return nil, err
	}
	pub := &PublicKey{
		N: n,
		E: e,
	}
	if kf.Bits != 0 && kf.Bits != n.BitLen() {
		return nil, fmt.Errorf("%w: bits=%d, modulus has %d bits",
			ErrInvalidKey, kf.Bits, n.BitLen())
	}
	return pub, pub.Validate()
}

// WriteTOML writes the public key in the TOML format.
func (pub *PublicKey) WriteTOML(w io.Writer) error {
	return toml.NewEncoder(w).Encode(&keyFile{
		Bits: pub.N.BitLen(),
		N:    pub.N.Hex(),
		E:    pub.E.Hex(),
	})
}

// WriteTOML writes the private key in the TOML format.
func (priv *PrivateKey) WriteTOML(w io.Writer) error {
	kf := &keyFile{
		Bits: priv.N.BitLen(),
		N:    priv.N.Hex(),
		E:    priv.E.Hex(),
		D:    priv.D.Hex(),
	}
	if !priv.P.IsZero() {
		kf.P = priv.P.Hex()
		kf.Q = priv.Q.Hex()
	}
	return toml.NewEncoder(w).Encode(kf)
}

// ReadPublicKeyTOML reads a public key in the TOML format. The private
// key fields are ignored so the function can also read the public key
// of a private key file.
func ReadPublicKeyTOML(r io.Reader) (*PublicKey, error) {
	var kf keyFile
	if _, err := toml.NewDecoder(r).Decode(&kf); err != nil {
		return nil, err
	}
	return kf.public()
}

// ReadPrivateKeyTOML reads a private key in the TOML format.
func ReadPrivateKeyTOML(r io.Reader) (*PrivateKey, error) {
	var kf keyFile
	if _, err := toml.NewDecoder(r).Decode(&kf); err != nil {
		return nil, err
	}
	pub, err := kf.public()
	if err != nil {
		return nil, err
	}
	d, err := parseField("d", kf.D)
	if err != nil {
		return nil, err
	}
	priv := &PrivateKey{
		PublicKey: *pub,
		D:         d,
	}
	if len(kf.P) > 0 || len(kf.Q) > 0 {
		priv.P, err = parseField("p", kf.P)
		if err != nil {
			return nil, err
		}
		priv.Q, err = parseField("q", kf.Q)
		if err != nil {
			return nil, err
		}
	}
	return priv, priv.Validate()
}

// binaryKey defines the msgpack key encoding.
type binaryKey struct {
	N Int `msgpack:"n"`
	E Int `msgpack:"e"`
	D Int `msgpack:"d"`
	P Int `msgpack:"p"`
	Q Int `msgpack:"q"`
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (priv *PrivateKey) MarshalBinary() ([]byte, error) {
	return msgpack.Marshal(&binaryKey{
		N: priv.N,
		E: priv.E,
		D: priv.D,
		P: priv.P,
		Q: priv.Q,
	})
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (priv *PrivateKey) UnmarshalBinary(data []byte) error {
	var bk binaryKey
	if err := msgpack.Unmarshal(data, &bk); err != nil {
		return err
	}
	k := PrivateKey{
		PublicKey: PublicKey{
			N: bk.N,
			E: bk.E,
		},
		D: bk.D,
		P: bk.P,
		Q: bk.Q,
	}
	if err := k.Validate(); err != nil {
		return err
	}
	*priv = k
	return nil
}
