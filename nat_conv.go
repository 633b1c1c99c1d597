package bignum

import (
	"fmt"
	"math/bits"
	"strings"
)

// ParseNat creates a Nat from a string of digits in the given base, which
// must be 0 or in [2, 36]. With base 0, a "0x" or "0X" prefix selects base 16
// and anything else is read as decimal; the prefix is also accepted when base
// is 16. Digits above 9 may be in either case.
func ParseNat(s string, base int) (Nat, error) {
	digits, base, err := natPrefix(s, base)
	if err != nil {
		return Nat{}, err
	}
	return parseNatDigits(s, digits, base)
}

func natPrefix(s string, base int) (digits string, b int, err error) {
	if base != 0 && (base < 2 || base > 36) {
		return "", 0, fmt.Errorf("bignum: base %d out of range: %w", base, ErrInvalidArgument)
	}
	digits = s
	if (base == 0 || base == 16) && len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		digits, base = s[2:], 16
	}
	if base == 0 {
		base = 10
	}
	return digits, base, nil
}

func parseNatDigits(orig, digits string, base int) (Nat, error) {
	if digits == "" {
		return Nat{}, fmt.Errorf("bignum: nat string %q invalid: %w", orig, ErrInvalidArgument)
	}

	// Accumulate as many digits as fit in one limb before folding them into
	// the result, so most of the work is single-word arithmetic.
	b := uint32(base)
	chunkMul, chunkLen := b, 1
	for {
		hi, lo := bits.Mul32(chunkMul, b)
		if hi != 0 {
			break
		}
		chunkMul, chunkLen = lo, chunkLen+1
	}

	var z []uint32
	var acc, mul uint32 = 0, 1
	var n int
	for i := 0; i < len(digits); i++ {
		d := digitValue(digits[i])
		if d >= b {
			return Nat{}, fmt.Errorf("bignum: nat string %q invalid: %w", orig, ErrInvalidArgument)
		}
		acc, mul, n = acc*b+d, mul*b, n+1
		if n == chunkLen {
			z = mulAddVWW(z, mul, acc)
			acc, mul, n = 0, 1, 0
		}
	}
	if n > 0 {
		z = mulAddVWW(z, mul, acc)
	}
	return Nat{limbs: z}, nil
}

func digitValue(c byte) uint32 {
	switch {
	case c >= '0' && c <= '9':
		return uint32(c - '0')
	case c >= 'a' && c <= 'z':
		return uint32(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return uint32(c-'A') + 10
	default:
		return 36
	}
}

// MustParseNat is like ParseNat but panics if s cannot be parsed.
func MustParseNat(s string, base int) Nat {
	n, err := ParseNat(s, base)
	if err != nil {
		panic(err)
	}
	return n
}

// Digits renders n in the given base, which must be in [2, 36], left-padded
// with zeros to at least minDigits digits. Letters are lower case.
func (n Nat) Digits(base int, minDigits int) (string, error) {
	if base < 2 || base > 36 {
		return "", fmt.Errorf("bignum: base %d out of range: %w", base, ErrInvalidArgument)
	}
	return string(n.appendDigits(nil, base, minDigits)), nil
}

// Text renders n in the given base. Text panics if base is outside [2, 36],
// as strconv.FormatUint does.
func (n Nat) Text(base int) string {
	s, err := n.Digits(base, 1)
	if err != nil {
		panic(err)
	}
	return s
}

func (n Nat) String() string { return n.Text(10) }

func (n Nat) appendDigits(dst []byte, base int, minDigits int) []byte {
	var out []byte
	if base&(base-1) == 0 {
		out = n.digitsPow2(base)
	} else {
		out = n.digitsDiv(base)
	}
	if minDigits < 1 {
		minDigits = 1
	}
	for i := len(out); i < minDigits; i++ {
		dst = append(dst, '0')
	}
	return append(dst, out...)
}

// digitsPow2 extracts each digit directly as a group of bits, most
// significant group first.
func (n Nat) digitsPow2(base int) []byte {
	if n.IsZero() {
		return nil
	}
	width := bits.TrailingZeros(uint(base))
	ndigits := (n.BitLen() + width - 1) / width
	out := make([]byte, ndigits)
	for i := 0; i < ndigits; i++ {
		var d int
		for j := width - 1; j >= 0; j-- {
			d = d<<1 | int(n.Bit(i*width+j))
		}
		out[ndigits-1-i] = digitChars[d]
	}
	return out
}

// digitsDiv repeatedly divides by the largest power of base that fits in a
// limb, emitting the digits of each remainder, then reverses the result.
func (n Nat) digitsDiv(base int) []byte {
	b := uint32(base)
	chunk, chunkLen := b, 1
	for {
		hi, lo := bits.Mul32(chunk, b)
		if hi != 0 {
			break
		}
		chunk, chunkLen = lo, chunkLen+1
	}

	var out []byte
	cur := n
	for !cur.IsZero() {
		var r uint32
		cur, r = cur.quoRemWord(chunk)
		for i := 0; i < chunkLen; i++ {
			if cur.IsZero() && r == 0 {
				break
			}
			out = append(out, digitChars[r%b])
			r /= b
		}
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Format implements fmt.Formatter. It supports the verbs d, s, v, b, o, O, x
// and X, the '#' flag for base prefixes, the '+' and ' ' sign flags, width
// with the '-' and '0' flags, and precision as a minimum digit count.
func (n Nat) Format(s fmt.State, c rune) {
	formatDigits(s, c, false, n)
}

func formatDigits(s fmt.State, c rune, neg bool, n Nat) {
	var base int
	var prefix string
	switch c {
	case 'd', 's', 'v':
		base = 10
	case 'b':
		base, prefix = 2, "0b"
	case 'o':
		base, prefix = 8, "0"
	case 'O':
		base, prefix = 8, "0o"
	case 'x':
		base, prefix = 16, "0x"
	case 'X':
		base, prefix = 16, "0X"
	default:
		fmt.Fprintf(s, "%%!%c(bignum=%s)", c, n.String())
		return
	}
	if !s.Flag('#') && c != 'O' {
		prefix = ""
	}

	minDigits, _ := s.Precision()
	digits := n.appendDigits(nil, base, minDigits)
	if c == 'X' {
		digits = []byte(strings.ToUpper(string(digits)))
	}

	var sign string
	switch {
	case neg:
		sign = "-"
	case s.Flag('+'):
		sign = "+"
	case s.Flag(' '):
		sign = " "
	}

	width, _ := s.Width()
	pad := width - len(sign) - len(prefix) - len(digits)
	var sb strings.Builder
	switch {
	case pad <= 0:
		sb.WriteString(sign + prefix)
		sb.Write(digits)
	case s.Flag('-'):
		sb.WriteString(sign + prefix)
		sb.Write(digits)
		sb.WriteString(strings.Repeat(" ", pad))
	case s.Flag('0'):
		sb.WriteString(sign + prefix)
		sb.WriteString(strings.Repeat("0", pad))
		sb.Write(digits)
	default:
		sb.WriteString(strings.Repeat(" ", pad))
		sb.WriteString(sign + prefix)
		sb.Write(digits)
	}
	_, _ = s.Write([]byte(sb.String()))
}

// NatFromBigEndian creates a Nat from a big-endian byte slice.
func NatFromBigEndian(buf []byte) Nat {
	z := make([]uint32, (len(buf)+3)/4)
	for i := range buf {
		pos := len(buf) - 1 - i
		z[pos/4] |= uint32(buf[i]) << (uint(pos%4) * 8)
	}
	return Nat{limbs: trim(z)}
}

// NatFromLittleEndian creates a Nat from a little-endian byte slice.
func NatFromLittleEndian(buf []byte) Nat {
	z := make([]uint32, (len(buf)+3)/4)
	for i := range buf {
		z[i/4] |= uint32(buf[i]) << (uint(i%4) * 8)
	}
	return Nat{limbs: trim(z)}
}

// PutBigEndian writes n into all of buf, most significant byte first,
// zero-padding on the left. If n does not fit, its high bytes are silently
// dropped.
func (n Nat) PutBigEndian(buf []byte) {
	for i := range buf {
		buf[len(buf)-1-i] = n.Byte(i)
	}
}

// PutLittleEndian writes n into all of buf, least significant byte first,
// zero-padding on the right. If n does not fit, its high bytes are silently
// dropped.
func (n Nat) PutLittleEndian(buf []byte) {
	for i := range buf {
		buf[i] = n.Byte(i)
	}
}

// Bytes returns the minimal big-endian representation of n. Zero is an empty
// slice.
func (n Nat) Bytes() []byte {
	buf := make([]byte, n.ByteLen())
	n.PutBigEndian(buf)
	return buf
}

func (n Nat) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

func (n *Nat) UnmarshalText(bts []byte) (err error) {
	v, err := ParseNat(string(bts), 0)
	if err != nil {
		return err
	}
	*n = v
	return nil
}

func (n Nat) MarshalJSON() ([]byte, error) {
	return []byte(`"` + n.String() + `"`), nil
}

func (n *Nat) UnmarshalJSON(bts []byte) (err error) {
	bts, err = unquoteJSON(bts, "nat")
	if err != nil {
		return err
	}
	return n.UnmarshalText(bts)
}

func unquoteJSON(bts []byte, kind string) ([]byte, error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return nil, fmt.Errorf("bignum: %s invalid JSON %q: %w", kind, string(bts), ErrInvalidArgument)
		}
		bts = bts[1 : ln-1]
	}
	return bts, nil
}
