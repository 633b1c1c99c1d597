package bignum

import (
	"fmt"
	"math"
	"math/big"

	"fortio.org/safecast"
)

// Int is an arbitrary-precision signed integer, stored as a Nat magnitude and
// a sign. Like Nat, Int is a value type and its zero value is 0.
//
// There is no negative zero: every Int is built through mkInt, which clears
// the sign of a zero magnitude.
type Int struct {
	mag Nat
	neg bool
}

func mkInt(mag Nat, neg bool) Int {
	return Int{mag: mag, neg: neg && !mag.IsZero()}
}

func IntFrom64(v int64) Int {
	if v < 0 {
		// -(v+1) cannot overflow, even for math.MinInt64:
		return mkInt(NatFrom64(uint64(-(v+1))+1), true)
	}
	return mkInt(NatFrom64(uint64(v)), false)
}

func IntFrom32(v int32) Int   { return IntFrom64(int64(v)) }
func IntFromInt(v int) Int    { return IntFrom64(int64(v)) }
func IntFromU64(v uint64) Int { return mkInt(NatFrom64(v), false) }

// IntFromNat creates a non-negative Int with magnitude n.
func IntFromNat(n Nat) Int { return mkInt(n, false) }

// IntFromBigInt creates an Int from a big.Int.
func IntFromBigInt(v *big.Int) Int {
	mag, _ := NatFromBigInt(v)
	return mkInt(mag, v.Sign() < 0)
}

// IntFromFloat64 creates an Int from a float64, truncating any fractional
// portion towards zero. NaN and infinities give 0 with inRange set to false.
func IntFromFloat64(f float64) (out Int, inRange bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Int{}, false
	}
	mag, _ := NatFromFloat64(math.Abs(f))
	return mkInt(mag, f < 0), true
}

// ParseInt creates an Int from an optional leading '+' or '-' followed by
// digits in the given base, as accepted by ParseNat.
func ParseInt(s string, base int) (Int, error) {
	neg := false
	digits := s
	if len(digits) > 0 && (digits[0] == '+' || digits[0] == '-') {
		neg = digits[0] == '-'
		digits = digits[1:]
	}
	digits, base, err := natPrefix(digits, base)
	if err != nil {
		return Int{}, err
	}
	mag, err := parseNatDigits(s, digits, base)
	if err != nil {
		return Int{}, fmt.Errorf("bignum: int string %q invalid: %w", s, ErrInvalidArgument)
	}
	return mkInt(mag, neg), nil
}

// MustParseInt is like ParseInt but panics if s cannot be parsed.
func MustParseInt(s string, base int) Int {
	i, err := ParseInt(s, base)
	if err != nil {
		panic(err)
	}
	return i
}

func (i Int) IsZero() bool { return i.mag.IsZero() }

// Mag returns the magnitude |i| as a Nat.
func (i Int) Mag() Nat { return i.mag }

func (i Int) Sign() int {
	if i.mag.IsZero() {
		return 0
	} else if i.neg {
		return -1
	}
	return 1
}

func (i Int) Neg() Int { return mkInt(i.mag, !i.neg) }

func (i Int) Abs() Int { return Int{mag: i.mag} }

func (i Int) IntoBigInt(b *big.Int) {
	i.mag.IntoBigInt(b)
	if i.neg {
		b.Neg(b)
	}
}

func (i Int) AsBigInt() *big.Int {
	var v big.Int
	i.IntoBigInt(&v)
	return &v
}

// AsInt64 truncates i to fit in an int64, keeping the low 64 bits of its two's
// complement form. See IsInt64() if you want to check before you convert.
func (i Int) AsInt64() int64 {
	u := i.mag.AsUint64()
	if i.neg {
		return -int64(u-1) - 1
	}
	return int64(u)
}

// IsInt64 reports whether i can be represented as an int64.
func (i Int) IsInt64() bool {
	if !i.mag.IsUint64() {
		return false
	}
	u := i.mag.AsUint64()
	if i.neg {
		// The magnitude of math.MinInt64 does not fit in an int64 itself.
		_, err := safecast.Conv[int64](u - 1)
		return err == nil
	}
	_, err := safecast.Conv[int64](u)
	return err == nil
}

func (i Int) AsFloat64() float64 {
	f := i.mag.AsFloat64()
	if i.neg {
		return -f
	}
	return f
}

// Cmp compares i to n and returns:
//
//	-1 if i <  n
//	 0 if i == n
//	+1 if i >  n
func (i Int) Cmp(n Int) int {
	if i.neg != n.neg {
		if i.neg {
			return -1
		}
		return 1
	}
	c := i.mag.Cmp(n.mag)
	if i.neg {
		return -c
	}
	return c
}

func (i Int) Equal(n Int) bool { return i.neg == n.neg && i.mag.Equal(n.mag) }

func (i Int) GreaterThan(n Int) bool { return i.Cmp(n) > 0 }

func (i Int) GreaterOrEqualTo(n Int) bool { return i.Cmp(n) >= 0 }

func (i Int) LessThan(n Int) bool { return i.Cmp(n) < 0 }

func (i Int) LessOrEqualTo(n Int) bool { return i.Cmp(n) <= 0 }

// Add returns i + n. Operands of the same sign add magnitudes; otherwise the
// smaller magnitude is taken from the larger and the result takes the sign
// of the larger.
func (i Int) Add(n Int) Int {
	if i.neg == n.neg {
		return mkInt(i.mag.Add(n.mag), i.neg)
	}
	switch i.mag.Cmp(n.mag) {
	case 0:
		return Int{}
	case 1:
		return mkInt(i.mag.Sub(n.mag), i.neg)
	default:
		return mkInt(n.mag.Sub(i.mag), n.neg)
	}
}

func (i Int) Sub(n Int) Int { return i.Add(n.Neg()) }

func (i Int) Inc() Int { return i.Add(oneInt) }

func (i Int) Dec() Int { return i.Sub(oneInt) }

func (i Int) Mul(n Int) Int { return mkInt(i.mag.Mul(n.mag), i.neg != n.neg) }

// QuoRem returns the quotient q and remainder r of i/by. If by is zero,
// QuoRem panics with ErrDivisionByZero.
//
// The magnitudes are divided first. Then, if the remainder is nonzero and the
// dividend is negative, the quotient's magnitude is increased by one and the
// remainder becomes |by| - r. The sign of by plays no part in that step. The
// quotient is negative when exactly one operand is; the remainder is never
// negative. In all cases:
//
//	by*q + r == i
//	0 <= r < |by|
//
// For example 42/-10 == -4 rem 2, -42/10 == -5 rem 8 and -42/-10 == 5 rem 8.
func (i Int) QuoRem(by Int) (q, r Int) {
	qm, rm := i.mag.QuoRem(by.mag)
	if !rm.IsZero() && i.neg {
		qm = qm.Inc()
		rm = by.mag.Sub(rm)
	}
	return mkInt(qm, i.neg != by.neg), mkInt(rm, false)
}

// Quo returns the quotient of i/by, as defined by QuoRem.
func (i Int) Quo(by Int) Int {
	q, _ := i.QuoRem(by)
	return q
}

// Rem returns the remainder of i/by, as defined by QuoRem. It is never
// negative.
func (i Int) Rem(by Int) Int {
	_, r := i.QuoRem(by)
	return r
}

// Pow returns i**e. Pow(0) is 1 for every i.
func (i Int) Pow(e Nat) Int {
	return mkInt(i.mag.Pow(e), i.neg && e.IsOdd())
}

// Lsh shifts the magnitude of i left by s bits, keeping the sign. A negative s
// shifts right.
func (i Int) Lsh(s int) Int { return mkInt(i.mag.Lsh(s), i.neg) }

// Rsh shifts the magnitude of i right by s bits, keeping the sign, so the
// result is truncated towards zero. A negative s shifts left.
func (i Int) Rsh(s int) Int { return mkInt(i.mag.Rsh(s), i.neg) }

// Digits renders i in the given base with a leading '-' if negative. The
// magnitude is padded to at least minDigits digits.
func (i Int) Digits(base int, minDigits int) (string, error) {
	s, err := i.mag.Digits(base, minDigits)
	if err != nil {
		return "", err
	}
	if i.neg {
		return "-" + s, nil
	}
	return s, nil
}

// Text renders i in the given base. Text panics if base is outside [2, 36].
func (i Int) Text(base int) string {
	s, err := i.Digits(base, 1)
	if err != nil {
		panic(err)
	}
	return s
}

func (i Int) String() string { return i.Text(10) }

// Format implements fmt.Formatter; see Nat.Format.
func (i Int) Format(s fmt.State, c rune) {
	formatDigits(s, c, i.neg, i.mag)
}

func (i Int) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *Int) UnmarshalText(bts []byte) (err error) {
	v, err := ParseInt(string(bts), 0)
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i Int) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

func (i *Int) UnmarshalJSON(bts []byte) (err error) {
	bts, err = unquoteJSON(bts, "int")
	if err != nil {
		return err
	}
	return i.UnmarshalText(bts)
}
