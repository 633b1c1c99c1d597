package bignum

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func limbsBig(x []uint32) *big.Int {
	return NatFromLimbs(x).AsBigInt()
}

func TestTrim(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustAssert(trim(nil) == nil)
	tt.MustAssert(trim([]uint32{0, 0}) == nil)
	tt.MustEqual([]uint32{1}, trim([]uint32{1, 0, 0}))
	tt.MustEqual([]uint32{0, 1}, trim([]uint32{0, 1}))
}

func TestCmpVV(t *testing.T) {
	for idx, tc := range []struct {
		x, y []uint32
		out  int
	}{
		{nil, nil, 0},
		{nil, []uint32{1}, -1},
		{[]uint32{1}, nil, 1},
		{[]uint32{0, 1}, []uint32{maxUint32}, 1},
		{[]uint32{1, 2}, []uint32{2, 2}, -1},
		{[]uint32{2, 2}, []uint32{2, 2}, 0},
	} {
		t.Run(fmt.Sprintf("%d/%v<=>%v", idx, tc.x, tc.y), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, cmpVV(tc.x, tc.y))
		})
	}
}

func TestAddSubVV(t *testing.T) {
	for idx, tc := range []struct {
		x, y, sum []uint32
	}{
		{nil, nil, nil},
		{[]uint32{1}, nil, []uint32{1}},
		{[]uint32{maxUint32}, []uint32{1}, []uint32{0, 1}},
		{[]uint32{maxUint32, maxUint32}, []uint32{maxUint32, maxUint32}, []uint32{maxUint32 - 1, maxUint32, 1}},
		{[]uint32{5, 7}, []uint32{3}, []uint32{8, 7}},
	} {
		t.Run(fmt.Sprintf("%d", idx), func(t *testing.T) {
			tt := assert.WrapTB(t)
			sum := addVV(tc.x, tc.y)
			tt.MustEqual(tc.sum, sum)
			tt.MustAssert(cmpVV(subVV(sum, tc.y), tc.x) == 0)
			tt.MustAssert(cmpVV(subVV(sum, tc.x), tc.y) == 0)
		})
	}
}

func TestMulVV(t *testing.T) {
	tt := assert.WrapTB(t)

	// (2^32-1)^2 is the largest single partial product.
	tt.MustEqual([]uint32{1, maxUint32 - 1}, mulVV([]uint32{maxUint32}, []uint32{maxUint32}))
	tt.MustAssert(mulVV(nil, []uint32{1}) == nil)

	for i := 0; i < 2000; i++ {
		b1, b2 := randomBigNat(globalRNG, 256), randomBigNat(globalRNG, 256)
		n1, n2 := accNatFromBigInt(b1), accNatFromBigInt(b2)
		rb := new(big.Int).Mul(b1, b2)
		tt.MustEqual(rb.String(), limbsBig(mulVV(n1.limbs, n2.limbs)).String(), "failed at index %d", i)
	}
}

func TestMulAddVWW(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual([]uint32{7}, mulAddVWW(nil, 10, 7))
	tt.MustAssert(mulAddVWW(nil, 10, 0) == nil)
	tt.MustEqual([]uint32{maxUint32, maxUint32 - 1}, mulAddVWW([]uint32{maxUint32}, maxUint32, maxUint32-1))
}

func TestShiftVU(t *testing.T) {
	for idx, tc := range []struct {
		x   []uint32
		s   uint
		out []uint32
	}{
		{[]uint32{1}, 0, []uint32{1}},
		{[]uint32{1}, 31, []uint32{1 << 31}},
		{[]uint32{1}, 32, []uint32{0, 1}},
		{[]uint32{1}, 33, []uint32{0, 2}},
		{[]uint32{maxUint32}, 4, []uint32{0xFFFFFFF0, 0xF}},
		{[]uint32{3, 5}, 64, []uint32{0, 0, 3, 5}},
	} {
		t.Run(fmt.Sprintf("%d/%v<<%d", idx, tc.x, tc.s), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, shlVU(tc.x, tc.s))
			tt.MustEqual(tc.x, shrVU(tc.out, tc.s))
		})
	}
}

func TestShrVUPastEnd(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustAssert(shrVU([]uint32{maxUint32, maxUint32}, 64) == nil)
	tt.MustAssert(shrVU([]uint32{maxUint32, 1}, 33) == nil)
	tt.MustAssert(shrVU(nil, 1) == nil)
}

func TestDivVV(t *testing.T) {
	for idx, tc := range []struct {
		x, y string
	}{
		{"0", "1"},
		{"1", "2"},
		{"0x100000000", "0x100000000"},
		{"0xFFFFFFFFFFFFFFFF", "0x100000000"},
		{"0x1000000000000000000000000", "0xFFFFFFFF00000001"},
		{"123456789123456789123456789", "987654321987"},
		{"340282366920938463463374607431768211455", "18446744073709551617"},
	} {
		t.Run(fmt.Sprintf("%d/%s÷%s", idx, tc.x, tc.y), func(t *testing.T) {
			tt := assert.WrapTB(t)
			x, y := nats(tc.x), nats(tc.y)
			q, r := divVV(x.limbs, y.limbs)
			bq, br := new(big.Int).QuoRem(x.AsBigInt(), y.AsBigInt(), new(big.Int))
			tt.MustEqual(bq.String(), limbsBig(q).String())
			tt.MustEqual(br.String(), limbsBig(r).String())
			tt.MustAssert(len(r) == 0 || r[len(r)-1] != 0)
		})
	}
}

func TestDivVVDoesNotModifyInputs(t *testing.T) {
	tt := assert.WrapTB(t)
	x := []uint32{1, 2, 3, 4}
	y := []uint32{5, 6}
	divVV(x, y)
	tt.MustEqual([]uint32{1, 2, 3, 4}, x)
	tt.MustEqual([]uint32{5, 6}, y)
}

var BenchLimbs1, BenchLimbs2 = []uint32{1234, 5678, 9101, 1121}, []uint32{9123, 5678}

func BenchmarkMulVV(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchLimbsResult = mulVV(BenchLimbs1, BenchLimbs2)
	}
}

func BenchmarkDivVV(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchLimbsResult, _ = divVV(BenchLimbs1, BenchLimbs2)
	}
}
