package bignum

import (
	"flag"
	"fmt"
	"log"
	"math/big"
	"math/rand"
	"os"
	"regexp"
	"strings"
	"testing"
	"time"
)

var (
	fuzzIterations  = fuzzDefaultIterations
	fuzzOpsActive   = allFuzzOps
	fuzzTypesActive = allFuzzTypes
	fuzzSeed        int64

	globalRNG *rand.Rand
)

func TestMain(m *testing.M) {
	var ops StringList
	var types StringList

	flag.IntVar(&fuzzIterations, "bignum.fuzziter", fuzzIterations, "Number of iterations to fuzz each op")
	flag.Int64Var(&fuzzSeed, "bignum.fuzzseed", fuzzSeed, "Seed the RNG (0 == current nanotime)")
	flag.Var(&ops, "bignum.fuzzop", "Fuzz op to run (can pass multiple times, or a comma separated list)")
	flag.Var(&types, "bignum.fuzztype", "Fuzz type (nat, int) (can pass multiple)")
	flag.Parse()

	if fuzzSeed == 0 {
		fuzzSeed = time.Now().UnixNano()
	}
	globalRNG = rand.New(rand.NewSource(fuzzSeed))

	if len(ops) > 0 {
		fuzzOpsActive = nil
		for _, op := range ops {
			fuzzOpsActive = append(fuzzOpsActive, fuzzOp(op))
		}
	}

	if len(types) > 0 {
		fuzzTypesActive = nil
		for _, t := range types {
			fuzzTypesActive = append(fuzzTypesActive, fuzzType(t))
		}
	}

	log.Println("rando seed:", fuzzSeed) // classic rando!
	log.Println("active ops:", fuzzOpsActive)
	log.Println("iterations:", fuzzIterations)
	log.Println("integer sz:", intSize)

	code := m.Run()
	os.Exit(code)
}

var trimFloatPattern = regexp.MustCompile(`(\.0+$|(\.\d+[1-9])\0+$)`)

func cleanFloatStr(str string) string {
	return trimFloatPattern.ReplaceAllString(str, "$2")
}

func accNatFromBigInt(b *big.Int) Nat {
	n, acc := NatFromBigInt(b)
	if !acc {
		panic(fmt.Errorf("bignum: inaccurate conversion to Nat in fuzz tester for %s", b))
	}
	return n
}

const (
	maxUint32 = limbMask
	maxUint64 = 1<<64 - 1
)

// Shorthand constructors for table tests.
func n64(v uint64) Nat  { return NatFrom64(v) }
func i64(v int64) Int   { return IntFrom64(v) }
func nats(s string) Nat { return MustParseNat(s, 0) }
func ints(s string) Int { return MustParseInt(s, 0) }

func bigs(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		panic(s)
	}
	return v
}

type StringList []string

func (s StringList) Strings() []string { return s }

func (s *StringList) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}

func (s *StringList) Set(v string) error {
	vs := strings.Split(v, ",")
	for _, vi := range vs {
		vi = strings.TrimSpace(vi)
		if vi != "" {
			*s = append(*s, vi)
		}
	}
	return nil
}

// randomBigNat returns a random value of up to maxBits bits, with every bit
// length equally likely.
func randomBigNat(rng *rand.Rand, maxBits int) *big.Int {
	if rng == nil {
		rng = globalRNG
	}

	var v = new(big.Int)
	bits := rng.Intn(maxBits+1) - 1 // +1 for "0 bits"
	if bits < 0 {
		return v // "-1 bits" == "0"
	}
	v.Rand(rng, new(big.Int).Lsh(big1, uint(bits)))
	v.SetBit(v, bits, 1)
	return v
}

func randomBigInt(rng *rand.Rand, maxBits int) *big.Int {
	if rng == nil {
		rng = globalRNG
	}
	v := randomBigNat(rng, maxBits)
	if rng.Intn(2) == 1 {
		v.Neg(v)
	}
	return v
}
