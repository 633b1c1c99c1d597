package bignum

// RandSource is a source of uniformly distributed random bits. *math/rand.Rand
// satisfies it. RandSource implementations need not be safe for concurrent
// use; that is up to the caller.
type RandSource interface {
	Uint64() uint64
}

// RandNat returns a uniformly distributed random Nat in [0, bound). The top
// limb is drawn in [0, top limb of bound] and every lower limb over its full
// range; draws that land at or above bound are thrown away and retried.
// RandNat panics if bound is zero.
func RandNat(source RandSource, bound Nat) Nat {
	if bound.IsZero() {
		panic(ErrInvalidArgument)
	}

	top := len(bound.limbs) - 1
	topMax := bound.limbs[top]
	z := make([]uint32, len(bound.limbs))
	for {
		for i := 0; i < top; i++ {
			z[i] = uint32(source.Uint64())
		}
		z[top] = randUint32n(source, topMax)
		if cmpVV(trim(z), bound.limbs) < 0 {
			return Nat{limbs: cloneLimbs(trim(z))}
		}
	}
}

// randUint32n returns a uniform value in [0, max].
func randUint32n(source RandSource, max uint32) uint32 {
	if max == limbMask {
		return uint32(source.Uint64())
	}
	mask := uint32(1)<<uint(bitLenV([]uint32{max})) - 1
	for {
		v := uint32(source.Uint64()) & mask
		if v <= max {
			return v
		}
	}
}

// RandInt returns a uniformly distributed random Int in [0, bound). RandInt
// panics if bound is not positive.
func RandInt(source RandSource, bound Int) Int {
	if bound.Sign() <= 0 {
		panic(ErrInvalidArgument)
	}
	return IntFromNat(RandNat(source, bound.mag))
}

// DifferenceNat subtracts the smaller of a and b from the larger.
func DifferenceNat(a, b Nat) Nat {
	if a.LessThan(b) {
		return b.Sub(a)
	}
	return a.Sub(b)
}

func LargerNat(a, b Nat) Nat {
	if a.LessThan(b) {
		return b
	}
	return a
}

func SmallerNat(a, b Nat) Nat {
	if b.LessThan(a) {
		return b
	}
	return a
}

// DifferenceInt subtracts the smaller of a and b from the larger.
func DifferenceInt(a, b Int) Int {
	if a.LessThan(b) {
		return b.Sub(a)
	}
	return a.Sub(b)
}
