package bignum

import (
	"math"
	"math/bits"
)

const (
	float64Mask  = 0x7FF
	float64Shift = 64 - 11 - 1
	float64Bias  = 1023
)

// frexp64 splits the absolute value of a finite f into a 64-bit mantissa with
// its top bit set and an exponent, such that |f| == mant * 2**(exp-64). This is
// math.Frexp with the mantissa widened to an integer. Zero gives (0, 0).
func frexp64(f float64) (mant uint64, exp int) {
	b := math.Float64bits(f)
	e := int((b >> float64Shift) & float64Mask)
	frac := b & (1<<float64Shift - 1)

	if e == 0 { // subnormal
		if frac == 0 {
			return 0, 0
		}
		lz := bits.LeadingZeros64(frac)
		return frac << uint(lz), -float64Bias - float64Shift + 1 + 64 - lz
	}

	mant = (1<<float64Shift | frac) << (63 - float64Shift)
	return mant, e - float64Bias + 1
}

// NatFromFloat64 creates a Nat from a float64, truncating any fractional
// portion towards zero. The sign of f is ignored, so negative values give
// the truncated magnitude; inRange is false for negative values, NaN and
// infinities (which give 0).
func NatFromFloat64(f float64) (out Nat, inRange bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Nat{}, false
	}
	mant, exp := frexp64(f)
	if mant == 0 {
		return Nat{}, true
	}
	return NatFrom64(mant).Lsh(exp - 64), f >= 0
}

// AsFloat64 returns the float64 nearest to n, rounding half to even, or +Inf
// if n is too large.
func (n Nat) AsFloat64() float64 {
	if n.IsUint64() {
		return float64(n.AsUint64())
	}
	sh := n.BitLen() - 64
	top := n.Rsh(sh).AsUint64()
	if n.TrailingZeros() < sh {
		// Sticky bit: the discarded bits are nonzero, which breaks a tie in
		// the uint64 to float64 rounding.
		top |= 1
	}
	return math.Ldexp(float64(top), sh)
}
