package bignum

// Rat is a fraction over the integer type T, always held in lowest terms with
// a positive denominator. Rat is a value type; every operation returns a new,
// reduced value.
//
// The zero value is 0/1 and ready to use.
//
// T may be any Integer: Int or Int64 for signed rationals, Nat or Uint64 for
// unsigned ones. Unsigned rationals carry the unchecked precondition of their
// component's Sub: a.Sub(b) requires b <= a.
type Rat[T Integer[T]] struct {
	nm T

	// dn is never negative. The zero value of T is read as 1, so that the zero
	// value of Rat is valid.
	dn T
}

func one[T Integer[T]]() T {
	var z T
	return z.One()
}

// isSigned reports whether T can hold negative values.
func isSigned[T Integer[T]]() bool {
	var z T
	return z.Sub(z.One()).Sign() < 0
}

// NewRat creates the rational nm/dn, reduced to lowest terms with the sign
// moved to the numerator. It returns ErrDivisionByZero if dn is zero.
//
// For Int64, a reduced value that does not fit wraps like int64 arithmetic:
// MinInt64/-1 gives MinInt64/1.
func NewRat[T Integer[T]](nm, dn T) (Rat[T], error) {
	if dn.IsZero() {
		return Rat[T]{}, ErrDivisionByZero
	}
	return reduce(nm, dn), nil
}

// MustRat is like NewRat but panics if dn is zero.
func MustRat[T Integer[T]](nm, dn T) Rat[T] {
	r, err := NewRat(nm, dn)
	if err != nil {
		panic(err)
	}
	return r
}

// RatFrom creates the rational v/1.
func RatFrom[T Integer[T]](v T) Rat[T] {
	return Rat[T]{nm: v, dn: one[T]()}
}

// reduce normalises nm/dn for a nonzero dn. The gcd is divided out before
// the sign moves to the numerator, so a fixed-width T only wraps when the
// reduced value itself is out of range.
func reduce[T Integer[T]](nm, dn T) Rat[T] {
	var zero T
	if nm.IsZero() {
		return Rat[T]{nm: zero, dn: one[T]()}
	}
	g := GCD(nm, dn)
	if g.Cmp(g.One()) != 0 {
		// Both divisions are exact, so the quotient is the same whatever
		// rounding T's QuoRem applies to negative values.
		nm, _ = nm.QuoRem(g)
		dn, _ = dn.QuoRem(g)
	}
	if dn.Sign() < 0 {
		nm, dn = zero.Sub(nm), zero.Sub(dn)
	}
	return Rat[T]{nm: nm, dn: dn}
}

// Num returns the numerator, which carries the sign.
func (r Rat[T]) Num() T { return r.nm }

// Den returns the denominator, which is always positive.
func (r Rat[T]) Den() T {
	if r.dn.IsZero() {
		return one[T]()
	}
	return r.dn
}

func (r Rat[T]) IsZero() bool { return r.nm.IsZero() }

func (r Rat[T]) Sign() int { return r.nm.Sign() }

// IsInt reports whether the denominator is 1.
func (r Rat[T]) IsInt() bool {
	d := r.Den()
	return d.Cmp(d.One()) == 0
}

func (r Rat[T]) Add(v Rat[T]) Rat[T] {
	rd, vd := r.Den(), v.Den()
	return reduce(r.nm.Mul(vd).Add(v.nm.Mul(rd)), rd.Mul(vd))
}

func (r Rat[T]) Sub(v Rat[T]) Rat[T] {
	rd, vd := r.Den(), v.Den()
	return reduce(r.nm.Mul(vd).Sub(v.nm.Mul(rd)), rd.Mul(vd))
}

func (r Rat[T]) Mul(v Rat[T]) Rat[T] {
	return reduce(r.nm.Mul(v.nm), r.Den().Mul(v.Den()))
}

// Quo returns r / v. If v is zero, Quo panics with ErrDivisionByZero.
func (r Rat[T]) Quo(v Rat[T]) Rat[T] {
	if v.nm.IsZero() {
		panic(ErrDivisionByZero)
	}
	return reduce(r.nm.Mul(v.Den()), r.Den().Mul(v.nm))
}

// Inv returns 1/r. If r is zero, Inv panics with ErrDivisionByZero.
func (r Rat[T]) Inv() Rat[T] {
	if r.nm.IsZero() {
		panic(ErrDivisionByZero)
	}
	return reduce(r.Den(), r.nm)
}

// Neg returns -r. For unsigned T, Neg is only meaningful for zero.
func (r Rat[T]) Neg() Rat[T] {
	var zero T
	return Rat[T]{nm: zero.Sub(r.nm), dn: r.Den()}
}

func (r Rat[T]) Abs() Rat[T] {
	return Rat[T]{nm: r.nm.Abs(), dn: r.Den()}
}

// Pow returns r**n. A negative n raises the inverse of r, so Pow panics with
// ErrDivisionByZero if r is zero and n is negative. Pow(0) is 1.
func (r Rat[T]) Pow(n int) Rat[T] {
	if n < 0 {
		return r.Inv().Pow(-n)
	}
	// Powers of coprime values stay coprime, so no reduction is needed.
	return Rat[T]{nm: powT(r.nm, n), dn: powT(r.Den(), n)}
}

func powT[T Integer[T]](x T, n int) T {
	result := x.One()
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(x)
		}
		n >>= 1
		if n > 0 {
			x = x.Mul(x)
		}
	}
	return result
}

// Cmp compares r to v and returns:
//
//	-1 if r <  v
//	 0 if r == v
//	+1 if r >  v
func (r Rat[T]) Cmp(v Rat[T]) int {
	return r.nm.Mul(v.Den()).Cmp(v.nm.Mul(r.Den()))
}

func (r Rat[T]) Equal(v Rat[T]) bool {
	return r.nm.Cmp(v.nm) == 0 && r.Den().Cmp(v.Den()) == 0
}

func (r Rat[T]) LessThan(v Rat[T]) bool { return r.Cmp(v) < 0 }

func (r Rat[T]) GreaterThan(v Rat[T]) bool { return r.Cmp(v) > 0 }

// truncQuoRem divides |nm| by the denominator.
func (r Rat[T]) truncQuoRem() (q, rem T) {
	return r.nm.Abs().QuoRem(r.Den())
}

// Whole returns the integer part of r, truncated towards zero.
func (r Rat[T]) Whole() T {
	q, _ := r.truncQuoRem()
	if r.nm.Sign() < 0 {
		var zero T
		return zero.Sub(q)
	}
	return q
}

// Frac returns the proper fraction r - r.Whole(). It has the same sign as r,
// or is zero.
func (r Rat[T]) Frac() Rat[T] {
	d := r.Den()
	return Rat[T]{nm: r.nm.Sub(r.Whole().Mul(d)), dn: d}
}

// Floor returns the greatest integer not greater than r.
func (r Rat[T]) Floor() T {
	q, rem := r.truncQuoRem()
	if r.nm.Sign() < 0 {
		if !rem.IsZero() {
			q = q.Add(q.One())
		}
		var zero T
		return zero.Sub(q)
	}
	return q
}

// Ceil returns the least integer not less than r.
func (r Rat[T]) Ceil() T {
	q, rem := r.truncQuoRem()
	if r.nm.Sign() < 0 {
		var zero T
		return zero.Sub(q)
	}
	if !rem.IsZero() {
		q = q.Add(q.One())
	}
	return q
}

// Round returns r rounded to the nearest integer, with halves rounded up
// (towards positive infinity): with f = r - r.Floor(), the result is
// r.Floor() + 1 when 2*f >= 1.
func (r Rat[T]) Round() T {
	fl := r.Floor()
	d := r.Den()
	f := r.nm.Sub(fl.Mul(d))
	if f.Add(f).Cmp(d) >= 0 {
		return fl.Add(fl.One())
	}
	return fl
}
