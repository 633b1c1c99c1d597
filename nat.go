package bignum

import (
	"math/big"
	"math/bits"
)

// Nat is an arbitrary-precision unsigned integer.
//
// Nat is a value type: operations return new values and never modify the
// receiver or their arguments. The zero value is 0 and ready to use. Nat
// values may share limb storage internally, but since that storage is never
// written after construction, sharing is not observable.
type Nat struct {
	// limbs are base-2^32, least significant first, with no trailing zero
	// limb. Zero is the empty slice.
	limbs []uint32
}

func NatFrom64(v uint64) Nat {
	if v == 0 {
		return Nat{}
	}
	if v>>limbBits == 0 {
		return Nat{limbs: []uint32{uint32(v)}}
	}
	return Nat{limbs: []uint32{uint32(v), uint32(v >> limbBits)}}
}

func NatFrom32(v uint32) Nat { return NatFrom64(uint64(v)) }

// NatFromLimbs creates a Nat from base-2^32 limbs, least significant first.
// The slice is copied; trailing zero limbs are permitted and discarded.
func NatFromLimbs(limbs []uint32) Nat {
	return Nat{limbs: cloneLimbs(trim(limbs))}
}

// NatFromBigInt creates a Nat from a big.Int. Negative values are not
// representable; accurate is false and the magnitude is returned.
func NatFromBigInt(v *big.Int) (out Nat, accurate bool) {
	words := v.Bits()
	var limbs []uint32

	switch intSize {
	case 64:
		limbs = make([]uint32, 0, len(words)*2)
		for _, w := range words {
			limbs = append(limbs, uint32(w), uint32(uint64(w)>>limbBits))
		}
	case 32:
		limbs = make([]uint32, len(words))
		for i, w := range words {
			limbs[i] = uint32(w)
		}
	default:
		panic("bignum: unsupported bit size")
	}

	return Nat{limbs: trim(limbs)}, v.Sign() >= 0
}

// Limbs returns a copy of the base-2^32 limbs of n, least significant first.
func (n Nat) Limbs() []uint32 { return cloneLimbs(n.limbs) }

func (n Nat) IsZero() bool { return len(n.limbs) == 0 }

// IntoBigInt copies n into b, allowing memory to be recycled.
func (n Nat) IntoBigInt(b *big.Int) {
	switch intSize {
	case 64:
		words := make([]big.Word, (len(n.limbs)+1)/2)
		for i, l := range n.limbs {
			words[i/2] |= big.Word(uint64(l) << (uint(i%2) * limbBits))
		}
		b.SetBits(words)
	case 32:
		words := make([]big.Word, len(n.limbs))
		for i, l := range n.limbs {
			words[i] = big.Word(l)
		}
		b.SetBits(words)
	default:
		panic("bignum: unsupported bit size")
	}
}

func (n Nat) AsBigInt() *big.Int {
	var v big.Int
	n.IntoBigInt(&v)
	return &v
}

// AsUint64 truncates n to fit in a uint64. See IsUint64() if you want to check
// before you convert.
func (n Nat) AsUint64() uint64 {
	switch len(n.limbs) {
	case 0:
		return 0
	case 1:
		return uint64(n.limbs[0])
	default:
		return uint64(n.limbs[1])<<limbBits | uint64(n.limbs[0])
	}
}

// IsUint64 reports whether n can be represented as a uint64.
func (n Nat) IsUint64() bool { return len(n.limbs) <= 2 }

func (n Nat) Cmp(v Nat) int { return cmpVV(n.limbs, v.limbs) }

func (n Nat) Equal(v Nat) bool { return cmpVV(n.limbs, v.limbs) == 0 }

func (n Nat) GreaterThan(v Nat) bool { return cmpVV(n.limbs, v.limbs) > 0 }

func (n Nat) GreaterOrEqualTo(v Nat) bool { return cmpVV(n.limbs, v.limbs) >= 0 }

func (n Nat) LessThan(v Nat) bool { return cmpVV(n.limbs, v.limbs) < 0 }

func (n Nat) LessOrEqualTo(v Nat) bool { return cmpVV(n.limbs, v.limbs) <= 0 }

func (n Nat) Sign() int {
	if len(n.limbs) == 0 {
		return 0
	}
	return 1
}

func (n Nat) Add(v Nat) Nat { return Nat{limbs: addVV(n.limbs, v.limbs)} }

// Sub returns n - v. v must not be greater than n; this is not checked, and a
// violation produces an unspecified (but canonical) result rather than a
// panic. Use CheckedSub if the ordering is not already known.
func (n Nat) Sub(v Nat) Nat {
	if len(v.limbs) == 0 {
		return n
	}
	return Nat{limbs: subVV(n.limbs, v.limbs)}
}

// CheckedSub returns n - v, or ErrUnderflow if v > n.
func (n Nat) CheckedSub(v Nat) (Nat, error) {
	if n.LessThan(v) {
		return Nat{}, ErrUnderflow
	}
	return n.Sub(v), nil
}

func (n Nat) Inc() Nat { return n.Add(oneNat) }

// Dec returns n - 1. Dec of zero is subject to the same unchecked
// precondition as Sub.
func (n Nat) Dec() Nat { return n.Sub(oneNat) }

func (n Nat) Mul(v Nat) Nat { return Nat{limbs: mulVV(n.limbs, v.limbs)} }

// QuoRem returns the quotient q and remainder r of n/by. If by is zero,
// QuoRem panics with ErrDivisionByZero.
func (n Nat) QuoRem(by Nat) (q, r Nat) {
	if len(by.limbs) == 0 {
		panic(ErrDivisionByZero)
	}
	ql, rl := divVV(n.limbs, by.limbs)
	return Nat{limbs: ql}, Nat{limbs: rl}
}

// Quo returns the quotient n/by. If by is zero, Quo panics with
// ErrDivisionByZero.
func (n Nat) Quo(by Nat) Nat {
	q, _ := n.QuoRem(by)
	return q
}

// Rem returns the remainder n%by. If by is zero, Rem panics with
// ErrDivisionByZero.
func (n Nat) Rem(by Nat) Nat {
	_, r := n.QuoRem(by)
	return r
}

// quoRemWord divides n by a single nonzero word.
func (n Nat) quoRemWord(d uint32) (Nat, uint32) {
	q, r := divVW(n.limbs, d)
	return Nat{limbs: q}, r
}

// Pow returns n**e by square-and-multiply. Pow(0) is 1 for every n, zero
// included.
func (n Nat) Pow(e Nat) Nat {
	result := oneNat
	base := n
	for i, top := 0, e.BitLen(); i < top; i++ {
		if e.Bit(i) == 1 {
			result = result.Mul(base)
		}
		if i+1 < top {
			base = base.Mul(base)
		}
	}
	return result
}

// BitLen returns the index of the highest set bit plus one, or 0 for zero.
func (n Nat) BitLen() int { return bitLenV(n.limbs) }

// OnesCount returns the number of set bits.
func (n Nat) OnesCount() int {
	c := 0
	for _, l := range n.limbs {
		c += bits.OnesCount32(l)
	}
	return c
}

// ByteLen returns the minimum number of bytes needed to hold n.
func (n Nat) ByteLen() int { return (n.BitLen() + 7) / 8 }

// TrailingZeros returns the number of trailing zero bits. Zero has none.
func (n Nat) TrailingZeros() int {
	for i, l := range n.limbs {
		if l != 0 {
			return i*limbBits + bits.TrailingZeros32(l)
		}
	}
	return 0
}

func (n Nat) IsOdd() bool { return len(n.limbs) > 0 && n.limbs[0]&1 == 1 }
