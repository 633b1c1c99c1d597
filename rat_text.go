package bignum

import (
	"fmt"
	"strings"
)

// ParseRat creates a Rat from decimal text in one of the forms "N", "N/D" or
// "W N/D", where W, N and D are unsigned digit strings. An optional leading
// '+' or '-' applies to the whole value, and whitespace may surround each
// component, so "- 1 2/3" and "-1 2/3" are both -5/3.
//
// Malformed text gives an error wrapping ErrInvalidArgument; a zero
// denominator gives one wrapping ErrDivisionByZero. A negative value cannot
// be parsed into an unsigned T.
func ParseRat[T Integer[T]](s string) (Rat[T], error) {
	invalid := fmt.Errorf("bignum: rat string %q invalid: %w", s, ErrInvalidArgument)

	str := strings.TrimSpace(s)
	neg := false
	if str != "" && (str[0] == '+' || str[0] == '-') {
		neg = str[0] == '-'
		str = strings.TrimSpace(str[1:])
	}

	var whole, nm, dn string
	if slash := strings.IndexByte(str, '/'); slash >= 0 {
		left := strings.Fields(str[:slash])
		switch len(left) {
		case 1:
			nm = left[0]
		case 2:
			whole, nm = left[0], left[1]
		default:
			return Rat[T]{}, invalid
		}
		dn = strings.TrimSpace(str[slash+1:])
		if dn == "" {
			return Rat[T]{}, invalid
		}
	} else {
		nm = str
	}

	var zero T
	parts := [3]T{zero, zero, zero.One()}
	for i, part := range [3]string{whole, nm, dn} {
		if part == "" && i != 1 {
			continue
		}
		if !isDecimal(part) {
			return Rat[T]{}, invalid
		}
		v, err := zero.Parse(part, 10)
		if err != nil {
			return Rat[T]{}, err
		}
		parts[i] = v
	}
	if dn != "" && parts[2].IsZero() {
		return Rat[T]{}, fmt.Errorf("bignum: rat string %q: %w", s, ErrDivisionByZero)
	}

	num := parts[0].Mul(parts[2]).Add(parts[1])
	if neg && !num.IsZero() {
		if !isSigned[T]() {
			return Rat[T]{}, invalid
		}
		num = zero.Sub(num)
	}
	return reduce(num, parts[2]), nil
}

// MustParseRat is like ParseRat but panics if s cannot be parsed.
func MustParseRat[T Integer[T]](s string) Rat[T] {
	r, err := ParseRat[T](s)
	if err != nil {
		panic(err)
	}
	return r
}

func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// String renders r as an improper fraction "N/D", or as "N" if r is an
// integer.
func (r Rat[T]) String() string {
	if r.IsInt() {
		return r.nm.String()
	}
	return r.Simple()
}

// Simple renders r as "N/D", even when the denominator is 1.
func (r Rat[T]) Simple() string {
	return r.nm.String() + "/" + r.Den().String()
}

// Mixed renders r as a whole part and a proper fraction, "W N/D". The whole
// part is omitted when it is zero, and the fraction when r is an integer, so
// -5/3 is "-1 2/3", -2/3 is "-2/3" and 6/3 is "2".
func (r Rat[T]) Mixed() string {
	w, f := r.Whole(), r.Frac()
	switch {
	case f.IsZero():
		return w.String()
	case w.IsZero():
		return f.String()
	}
	var sign string
	if r.Sign() < 0 {
		sign = "-"
	}
	return sign + w.Abs().String() + " " + f.nm.Abs().String() + "/" + f.Den().String()
}

func (r Rat[T]) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Rat[T]) UnmarshalText(bts []byte) error {
	v, err := ParseRat[T](string(bts))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

func (r Rat[T]) MarshalJSON() ([]byte, error) {
	return []byte(`"` + r.String() + `"`), nil
}

func (r *Rat[T]) UnmarshalJSON(bts []byte) (err error) {
	bts, err = unquoteJSON(bts, "rat")
	if err != nil {
		return err
	}
	return r.UnmarshalText(bts)
}
