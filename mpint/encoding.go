//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mpint

import (
	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ msgpack.CustomEncoder = Int64{}
	_ msgpack.CustomDecoder = &Int64{}
)

// EncodeMsgpack implements msgpack.CustomEncoder. The value is
// encoded as its sign flag followed by the minimal big-endian bytes of
// its magnitude, so the encoding does not depend on the word size.
func (x Int[W]) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeBool(x.Sign() < 0); err != nil {
		return err
	}
	return enc.EncodeBytes(x.Bytes())
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (x *Int[W]) DecodeMsgpack(dec *msgpack.Decoder) error {
	neg, err := dec.DecodeBool()
	if err != nil {
		return err
	}
	data, err := dec.DecodeBytes()
	if err != nil {
		return err
	}
	v := FromBytes[W](data)
	if neg {
		v = v.Neg()
	}
	*x = v
	return nil
}
