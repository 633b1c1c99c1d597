package bignum

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Nat, Int and Rat implement msgpack.CustomEncoder and msgpack.CustomDecoder.
//
// A Nat is a bin holding its minimal big-endian bytes; zero is an empty bin.
// An Int is a two-element array of a bool (true if negative) and its
// magnitude's bin. A Rat is a str holding its Simple form, "N/D".
var (
	_ msgpack.CustomEncoder = Nat{}
	_ msgpack.CustomDecoder = (*Nat)(nil)
	_ msgpack.CustomEncoder = Int{}
	_ msgpack.CustomDecoder = (*Int)(nil)
	_ msgpack.CustomEncoder = Rat[Int]{}
	_ msgpack.CustomDecoder = (*Rat[Int])(nil)
)

func (n Nat) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeBytes(n.Bytes())
}

func (n *Nat) DecodeMsgpack(dec *msgpack.Decoder) error {
	bts, err := dec.DecodeBytes()
	if err != nil {
		return err
	}
	*n = NatFromBigEndian(bts)
	return nil
}

func (i Int) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(2); err != nil {
		return err
	}
	if err := enc.EncodeBool(i.neg); err != nil {
		return err
	}
	return enc.EncodeBytes(i.mag.Bytes())
}

func (i *Int) DecodeMsgpack(dec *msgpack.Decoder) error {
	ln, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if ln != 2 {
		return fmt.Errorf("bignum: int msgpack array has %d elements, expected 2: %w", ln, ErrInvalidArgument)
	}
	neg, err := dec.DecodeBool()
	if err != nil {
		return err
	}
	bts, err := dec.DecodeBytes()
	if err != nil {
		return err
	}
	*i = mkInt(NatFromBigEndian(bts), neg)
	return nil
}

func (r Rat[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(r.Simple())
}

func (r *Rat[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	v, err := ParseRat[T](s)
	if err != nil {
		return err
	}
	*r = v
	return nil
}
