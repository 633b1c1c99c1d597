/*
Package bignum provides arbitrary-precision natural numbers (Nat), signed
integers (Int) and reduced fractions over any integer type (Rat).

Nat, Int and Rat are value types; all operations return new values and never
modify their operands. The zero value of each is 0 and ready to use.

Simple example:

	n := MustParseNat("123456789123456789123456789", 10)
	fmt.Println(n.Text(16))
	// Output: 661efdf2e3b19f7c045f15

	r := MustRat(IntFrom64(5), IntFrom64(3)).Add(MustRat(IntFrom64(7), IntFrom64(9)))
	fmt.Println(r, r.Mixed())
	// Output: 22/9 2 4/9

Nat and Int can be created from a variety of sources:

	NatFrom64(v uint64) Nat
	NatFrom32(v uint32) Nat
	NatFromLimbs(limbs []uint32) Nat
	NatFromBigEndian(buf []byte) Nat
	NatFromLittleEndian(buf []byte) Nat
	NatFromBigInt(v *big.Int) (out Nat, accurate bool)
	NatFromFloat64(f float64) (out Nat, inRange bool)
	ParseNat(s string, base int) (Nat, error)

	IntFrom64(v int64) Int
	IntFromNat(n Nat) Int
	IntFromBigInt(v *big.Int) Int
	IntFromFloat64(f float64) (out Int, inRange bool)
	ParseInt(s string, base int) (Int, error)

Int division is Euclidean: the remainder of QuoRem is never negative, so
-42 / 10 is -5 remainder 8.

Rat works over anything that satisfies Integer: Nat, Int, and the machine
integer wrappers Int64 and Uint64.

	NewRat[T](nm, dn T) (Rat[T], error)
	RatFrom[T](v T) Rat[T]
	ParseRat[T](s string) (Rat[T], error)

Nat, Int and Rat support the following formatting and marshalling interfaces:

	- fmt.Formatter (Nat and Int)
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler
	- msgpack.CustomEncoder
	- msgpack.CustomDecoder

Division by zero panics with ErrDivisionByZero, as it does for math/big.
Constructors and parsers return errors instead.
*/
package bignum
