package bignum

import (
	"math/bits"
)

// The functions in this file operate on raw limb vectors: []uint32, least
// significant limb first. Unless stated otherwise, inputs must be trimmed and
// are never modified; results are freshly allocated and trimmed.

func trim(z []uint32) []uint32 {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	if i == 0 {
		return nil
	}
	return z[:i]
}

func cloneLimbs(x []uint32) []uint32 {
	if len(x) == 0 {
		return nil
	}
	z := make([]uint32, len(x))
	copy(z, x)
	return z
}

func cmpVV(x, y []uint32) int {
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func bitLenV(x []uint32) int {
	if len(x) == 0 {
		return 0
	}
	return (len(x)-1)*limbBits + bits.Len32(x[len(x)-1])
}

func addVV(x, y []uint32) []uint32 {
	if len(x) < len(y) {
		x, y = y, x
	}
	if len(x) == 0 {
		return nil
	}
	z := make([]uint32, len(x)+1)
	var carry uint64
	for i := range x {
		sum := uint64(x[i]) + carry
		if i < len(y) {
			sum += uint64(y[i])
		}
		z[i] = uint32(sum)
		carry = sum >> limbBits
	}
	z[len(x)] = uint32(carry)
	return trim(z)
}

// subVV returns x - y. If y > x the final borrow is discarded, which leaves a
// wrapped but still canonical result.
func subVV(x, y []uint32) []uint32 {
	z := make([]uint32, len(x))
	copy(z, x)
	subInPlace(z, y)
	return trim(z)
}

// subInPlace subtracts y from z, limb by limb, for the length of z. Limbs of
// y past len(z) are ignored.
func subInPlace(z, y []uint32) {
	var borrow uint32
	for i := range z {
		var yi uint32
		if i < len(y) {
			yi = y[i]
		}
		z[i], borrow = bits.Sub32(z[i], yi, borrow)
	}
}

// mulVV is schoolbook multiplication. Each partial product plus the running
// column value and carry fits in 64 bits: (2^32-1)^2 + 2*(2^32-1) == 2^64-1.
func mulVV(x, y []uint32) []uint32 {
	if len(x) == 0 || len(y) == 0 {
		return nil
	}
	z := make([]uint32, len(x)+len(y))
	for i, xi := range x {
		if xi == 0 {
			continue
		}
		var carry uint64
		for j, yj := range y {
			t := uint64(z[i+j]) + uint64(xi)*uint64(yj) + carry
			z[i+j] = uint32(t)
			carry = t >> limbBits
		}
		z[i+len(y)] = uint32(carry)
	}
	return trim(z)
}

// mulAddVWW returns x*y + r.
func mulAddVWW(x []uint32, y, r uint32) []uint32 {
	z := make([]uint32, len(x)+1)
	carry := uint64(r)
	for i, xi := range x {
		t := uint64(xi)*uint64(y) + carry
		z[i] = uint32(t)
		carry = t >> limbBits
	}
	z[len(x)] = uint32(carry)
	return trim(z)
}

// divVW divides x by the single limb d, which must be nonzero.
func divVW(x []uint32, d uint32) (q []uint32, r uint32) {
	if len(x) == 0 {
		return nil, 0
	}
	q = make([]uint32, len(x))
	var rem uint32
	for i := len(x) - 1; i >= 0; i-- {
		q[i], rem = bits.Div32(rem, x[i], d)
	}
	return trim(q), rem
}

// shlVU shifts x left by s bits: whole limbs first, then the intra-limb
// remainder with the carry moved into the next limb up.
func shlVU(x []uint32, s uint) []uint32 {
	if len(x) == 0 {
		return nil
	}
	words, sh := int(s/limbBits), s%limbBits
	z := make([]uint32, len(x)+words+1)
	if sh == 0 {
		copy(z[words:], x)
		return trim(z)
	}
	var carry uint32
	for i, xi := range x {
		z[i+words] = xi<<sh | carry
		carry = xi >> (limbBits - sh)
	}
	z[len(x)+words] = carry
	return trim(z)
}

// shrVU shifts x right by s bits, discarding the bits shifted out.
func shrVU(x []uint32, s uint) []uint32 {
	words, sh := int(s/limbBits), s%limbBits
	if words >= len(x) {
		return nil
	}
	src := x[words:]
	z := make([]uint32, len(src))
	if sh == 0 {
		copy(z, src)
		return trim(z)
	}
	for i := range src {
		z[i] = src[i] >> sh
		if i+1 < len(src) {
			z[i] |= src[i+1] << (limbBits - sh)
		}
	}
	return trim(z)
}

func shr1InPlace(z []uint32) {
	var carry uint32
	for i := len(z) - 1; i >= 0; i-- {
		v := z[i]
		z[i] = v>>1 | carry<<(limbBits-1)
		carry = v & 1
	}
}

// divVV is restoring binary long division of x by the nonzero y. The divisor
// is aligned with the top bit of the dividend, backed off by one place if that
// overshoots, then walked down a bit at a time, subtracting wherever the
// running remainder is large enough.
func divVV(x, y []uint32) (q, r []uint32) {
	if cmpVV(x, y) < 0 {
		return nil, cloneLimbs(x)
	}
	if len(y) == 1 {
		qw, rw := divVW(x, y[0])
		if rw != 0 {
			r = []uint32{rw}
		}
		return qw, r
	}

	shift := bitLenV(x) - bitLenV(y)
	scaled := shlVU(y, uint(shift))
	if cmpVV(scaled, x) > 0 {
		shift--
		shr1InPlace(scaled)
		scaled = trim(scaled)
	}

	rem := cloneLimbs(x)
	q = make([]uint32, shift/limbBits+1)
	for bit := shift; bit >= 0; bit-- {
		if cmpVV(rem, scaled) >= 0 {
			subInPlace(rem, scaled)
			rem = trim(rem)
			q[bit/limbBits] |= 1 << uint(bit%limbBits)
		}
		shr1InPlace(scaled)
		scaled = trim(scaled)
	}
	return trim(q), rem
}
