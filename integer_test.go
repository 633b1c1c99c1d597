package bignum

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

// Compile-time check that every component type satisfies the constraint.
var (
	_ Integer[Nat]    = Nat{}
	_ Integer[Int]    = Int{}
	_ Integer[Int64]  = Int64(0)
	_ Integer[Uint64] = Uint64(0)
)

func TestGCD(t *testing.T) {
	for idx, tc := range []struct {
		a, b, out int64
	}{
		{0, 0, 0},
		{0, 5, 5},
		{5, 0, 5},
		{12, 18, 6},
		{-12, 18, 6},
		{12, -18, 6},
		{-12, -18, 6},
		{17, 5, 1},
		{1, 1, 1},
	} {
		t.Run(fmt.Sprintf("%d/gcd(%d,%d)", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(fmt.Sprint(tc.out), GCD(i64(tc.a), i64(tc.b)).String())
			tt.MustEqual(Int64(tc.out), GCD(Int64(tc.a), Int64(tc.b)))
			if tc.a >= 0 && tc.b >= 0 {
				tt.MustEqual(fmt.Sprint(tc.out), GCD(n64(uint64(tc.a)), n64(uint64(tc.b))).String())
				tt.MustEqual(Uint64(tc.out), GCD(Uint64(tc.a), Uint64(tc.b)))
			}
		})
	}
}

func TestGCDLarge(t *testing.T) {
	tt := assert.WrapTB(t)
	p := nats("170141183460469231731687303715884105727") // 2**127 - 1
	a := p.Mul(n64(6))
	b := p.Mul(n64(35))
	tt.MustEqual(p.String(), GCD(a, b).String())
}

func testIntegerFactories[T Integer[T]](t *testing.T) {
	tt := assert.WrapTB(t)
	var zero T
	one := zero.One()
	tt.MustEqual("1", one.String())
	tt.MustEqual(1, one.Sign())
	tt.MustAssert(zero.IsZero())
	tt.MustAssert(!one.IsZero())

	v, err := zero.Parse("42", 10)
	tt.MustOK(err)
	tt.MustEqual("42", v.String())

	v, err = one.Parse("2a", 16)
	tt.MustOK(err)
	tt.MustEqual("42", v.String())

	_, err = zero.Parse("4z", 10)
	tt.MustAssert(errors.Is(err, ErrInvalidArgument), "%v", err)

	q, r := v.QuoRem(one.Add(one).Add(one).Add(one).Add(one))
	tt.MustEqual("8", q.String())
	tt.MustEqual("2", r.String())
	tt.MustEqual(0, v.Mul(one).Cmp(v))
	tt.MustAssert(v.Sub(v).IsZero())

	defer func() {
		tt.MustEqual(ErrDivisionByZero, recover())
	}()
	v.QuoRem(zero)
}

func TestIntegerFactories(t *testing.T) {
	t.Run("nat", testIntegerFactories[Nat])
	t.Run("int", testIntegerFactories[Int])
	t.Run("int64", testIntegerFactories[Int64])
	t.Run("uint64", testIntegerFactories[Uint64])
}

func TestIsSigned(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustAssert(isSigned[Int]())
	tt.MustAssert(isSigned[Int64]())
	tt.MustAssert(!isSigned[Nat]())
	tt.MustAssert(!isSigned[Uint64]())
}

func TestInt64(t *testing.T) {
	tt := assert.WrapTB(t)
	q, r := Int64(-42).QuoRem(10)
	tt.MustEqual(Int64(-4), q)
	tt.MustEqual(Int64(-2), r)
	tt.MustEqual(Int64(42), Int64(-42).Abs())
	tt.MustEqual(-1, Int64(-42).Sign())
	tt.MustEqual("-42", Int64(-42).String())

	v, err := Int64(0).Parse("-9223372036854775808", 10)
	tt.MustOK(err)
	tt.MustEqual(Int64(-9223372036854775808), v)

	_, err = Int64(0).Parse("9223372036854775808", 10)
	tt.MustAssert(errors.Is(err, ErrInvalidArgument), "%v", err)
}

func TestUint64(t *testing.T) {
	tt := assert.WrapTB(t)
	v, err := Uint64(0).Parse("18446744073709551615", 10)
	tt.MustOK(err)
	tt.MustEqual(Uint64(maxUint64), v)
	tt.MustEqual("18446744073709551615", v.String())

	_, err = Uint64(0).Parse("18446744073709551616", 10)
	tt.MustAssert(errors.Is(err, ErrInvalidArgument), "%v", err)

	_, err = Uint64(0).Parse("-1", 10)
	tt.MustAssert(errors.Is(err, ErrInvalidArgument), "%v", err)
}
