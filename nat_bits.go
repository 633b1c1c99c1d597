package bignum

func (n Nat) And(v Nat) Nat {
	x, y := n.limbs, v.limbs
	if len(y) < len(x) {
		x, y = y, x
	}
	if len(x) == 0 {
		return Nat{}
	}
	z := make([]uint32, len(x))
	for i := range x {
		z[i] = x[i] & y[i]
	}
	return Nat{limbs: trim(z)}
}

// AndNot returns n &^ v.
func (n Nat) AndNot(v Nat) Nat {
	z := cloneLimbs(n.limbs)
	for i := 0; i < len(z) && i < len(v.limbs); i++ {
		z[i] &^= v.limbs[i]
	}
	return Nat{limbs: trim(z)}
}

func (n Nat) Or(v Nat) Nat {
	x, y := n.limbs, v.limbs
	if len(x) < len(y) {
		x, y = y, x
	}
	z := cloneLimbs(x)
	for i := range y {
		z[i] |= y[i]
	}
	return Nat{limbs: trim(z)}
}

func (n Nat) Xor(v Nat) Nat {
	x, y := n.limbs, v.limbs
	if len(x) < len(y) {
		x, y = y, x
	}
	z := cloneLimbs(x)
	for i := range y {
		z[i] ^= y[i]
	}
	return Nat{limbs: trim(z)}
}

// Lsh returns n << s. A negative s shifts right instead.
func (n Nat) Lsh(s int) Nat {
	switch {
	case s == 0:
		return n
	case s < 0:
		return Nat{limbs: shrVU(n.limbs, uint(-s))}
	default:
		return Nat{limbs: shlVU(n.limbs, uint(s))}
	}
}

// Rsh returns n >> s. A negative s shifts left instead.
func (n Nat) Rsh(s int) Nat {
	switch {
	case s == 0:
		return n
	case s < 0:
		return Nat{limbs: shlVU(n.limbs, uint(-s))}
	default:
		return Nat{limbs: shrVU(n.limbs, uint(s))}
	}
}

// Bit returns the value of the i'th bit of n, which is 0 whenever i is past
// the end of n. Bit panics if i is negative.
func (n Nat) Bit(i int) uint {
	if i < 0 {
		panic("bignum: negative bit index")
	}
	w := i / limbBits
	if w >= len(n.limbs) {
		return 0
	}
	return uint(n.limbs[w]>>uint(i%limbBits)) & 1
}

// SetBit returns a copy of n with the i'th bit set to b (0 or 1), growing the
// value as required.
func (n Nat) SetBit(i int, b uint) Nat {
	if i < 0 {
		panic("bignum: negative bit index")
	}
	w, mask := i/limbBits, uint32(1)<<uint(i%limbBits)
	z := growLimbs(n.limbs, w+1)
	switch b {
	case 0:
		z[w] &^= mask
	case 1:
		z[w] |= mask
	default:
		panic("bignum: set bit value not 0 or 1")
	}
	return Nat{limbs: trim(z)}
}

// FlipBit returns a copy of n with the i'th bit inverted.
func (n Nat) FlipBit(i int) Nat {
	if i < 0 {
		panic("bignum: negative bit index")
	}
	w := i / limbBits
	z := growLimbs(n.limbs, w+1)
	z[w] ^= uint32(1) << uint(i%limbBits)
	return Nat{limbs: trim(z)}
}

// Byte returns the i'th byte of n, counting from the least significant. Bytes
// past the end of n are 0. Byte panics if i is negative.
func (n Nat) Byte(i int) byte {
	if i < 0 {
		panic("bignum: negative byte index")
	}
	w := i / 4
	if w >= len(n.limbs) {
		return 0
	}
	return byte(n.limbs[w] >> (uint(i%4) * 8))
}

// SetByte returns a copy of n with the i'th byte, counting from the least
// significant, replaced by v.
func (n Nat) SetByte(i int, v byte) Nat {
	if i < 0 {
		panic("bignum: negative byte index")
	}
	w, sh := i/4, uint(i%4)*8
	z := growLimbs(n.limbs, w+1)
	z[w] = z[w]&^(0xFF<<sh) | uint32(v)<<sh
	return Nat{limbs: trim(z)}
}

// growLimbs returns a copy of x at least n limbs long.
func growLimbs(x []uint32, n int) []uint32 {
	if n < len(x) {
		n = len(x)
	}
	z := make([]uint32, n)
	copy(z, x)
	return z
}
