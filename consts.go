package bignum

import (
	"errors"
	"math/big"
)

const (
	limbBits = 32
	limbMask = 1<<limbBits - 1

	// digits used by Digits and accepted by ParseNat, in order of value.
	digitChars = "0123456789abcdefghijklmnopqrstuvwxyz"

	intSize = 32 << (^uint(0) >> 63)
)

var (
	// ErrDivisionByZero is returned by constructors and parsers given a zero
	// divisor or denominator. Arithmetic methods panic with this value.
	ErrDivisionByZero = errors.New("bignum: division by zero")

	// ErrInvalidArgument is wrapped by every parse error and returned for
	// bases outside [2, 36].
	ErrInvalidArgument = errors.New("bignum: invalid argument")

	// ErrUnderflow is returned by Nat.CheckedSub when the result would be
	// negative.
	ErrUnderflow = errors.New("bignum: unsigned underflow")
)

var (
	oneNat = Nat{limbs: []uint32{1}}
	oneInt = Int{mag: oneNat}

	big0 = new(big.Int).SetInt64(0)
	big1 = new(big.Int).SetInt64(1)
)
