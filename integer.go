package bignum

import (
	"fmt"
	"strconv"
)

// Integer is the arithmetic Rat needs from its component type. It is
// implemented by Nat, Int, Int64 and Uint64.
//
// One and Parse are factories: they ignore their receiver, so they can be
// called on the zero value of T.
type Integer[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T

	// QuoRem must panic with ErrDivisionByZero for a zero divisor. Rat only
	// divides non-negative values, for which all implementations agree.
	QuoRem(T) (q, r T)

	Cmp(T) int
	Sign() int
	IsZero() bool
	Abs() T
	String() string

	One() T
	Parse(s string, base int) (T, error)
}

// GCD returns the greatest common divisor of |a| and |b|. GCD(0, 0) is 0.
func GCD[T Integer[T]](a, b T) T {
	a, b = a.Abs(), b.Abs()
	for !b.IsZero() {
		_, r := a.QuoRem(b)
		a, b = b, r
	}
	return a
}

func (n Nat) One() Nat { return oneNat }

// Abs returns n; it exists so that Nat satisfies Integer.
func (n Nat) Abs() Nat { return n }

func (Nat) Parse(s string, base int) (Nat, error) { return ParseNat(s, base) }

func (i Int) One() Int { return oneInt }

func (Int) Parse(s string, base int) (Int, error) { return ParseInt(s, base) }

// Int64 is an int64 that satisfies Integer, for rationals over machine
// integers. Arithmetic wraps on overflow as it does for int64.
type Int64 int64

func (v Int64) Add(n Int64) Int64 { return v + n }
func (v Int64) Sub(n Int64) Int64 { return v - n }
func (v Int64) Mul(n Int64) Int64 { return v * n }

// QuoRem is truncated division, like Go's / and % operators.
func (v Int64) QuoRem(by Int64) (q, r Int64) {
	if by == 0 {
		panic(ErrDivisionByZero)
	}
	return v / by, v % by
}

func (v Int64) Cmp(n Int64) int {
	if v < n {
		return -1
	} else if v > n {
		return 1
	}
	return 0
}

func (v Int64) Sign() int    { return v.Cmp(0) }
func (v Int64) IsZero() bool { return v == 0 }

// Abs returns |v|. The absolute value of math.MinInt64 wraps to itself.
func (v Int64) Abs() Int64 {
	if v < 0 {
		return -v
	}
	return v
}

func (v Int64) String() string { return strconv.FormatInt(int64(v), 10) }
func (v Int64) One() Int64     { return 1 }

func (Int64) Parse(s string, base int) (Int64, error) {
	i, err := ParseInt(s, base)
	if err != nil {
		return 0, err
	}
	if !i.IsInt64() {
		return 0, fmt.Errorf("bignum: %q overflows int64: %w", s, ErrInvalidArgument)
	}
	return Int64(i.AsInt64()), nil
}

// Uint64 is a uint64 that satisfies Integer, for rationals over machine
// integers. Arithmetic wraps on overflow as it does for uint64; Sub carries
// the same unchecked precondition as Nat.Sub.
type Uint64 uint64

func (v Uint64) Add(n Uint64) Uint64 { return v + n }
func (v Uint64) Sub(n Uint64) Uint64 { return v - n }
func (v Uint64) Mul(n Uint64) Uint64 { return v * n }

func (v Uint64) QuoRem(by Uint64) (q, r Uint64) {
	if by == 0 {
		panic(ErrDivisionByZero)
	}
	return v / by, v % by
}

func (v Uint64) Cmp(n Uint64) int {
	if v < n {
		return -1
	} else if v > n {
		return 1
	}
	return 0
}

func (v Uint64) Sign() int {
	if v == 0 {
		return 0
	}
	return 1
}

func (v Uint64) IsZero() bool   { return v == 0 }
func (v Uint64) Abs() Uint64    { return v }
func (v Uint64) String() string { return strconv.FormatUint(uint64(v), 10) }
func (v Uint64) One() Uint64    { return 1 }

func (Uint64) Parse(s string, base int) (Uint64, error) {
	n, err := ParseNat(s, base)
	if err != nil {
		return 0, err
	}
	if !n.IsUint64() {
		return 0, fmt.Errorf("bignum: %q overflows uint64: %w", s, ErrInvalidArgument)
	}
	return Uint64(n.AsUint64()), nil
}
