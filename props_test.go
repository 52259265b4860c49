package bignum

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func genInt() gopter.Gen {
	return gopter.CombineGens(
		gen.SliceOfN(3, gen.UInt64()),
		gen.IntRange(1, 3),
		gen.Bool(),
	).Map(func(vals []interface{}) Int {
		words64 := vals[0].([]uint64)
		ln := vals[1].(int)
		neg := vals[2].(bool)

		words := []uint{}
		for _, w := range words64[:ln] {
			words = append(words, wordsFromUint64(w)...)
		}
		return FromWords(words, neg)
	})
}

func TestProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("addition is commutative", prop.ForAll(
		func(a, b Int) bool {
			return a.Add(b).Equal(b.Add(a))
		},
		genInt(), genInt(),
	))

	properties.Property("addition is associative", prop.ForAll(
		func(a, b, c Int) bool {
			return a.Add(b).Add(c).Equal(a.Add(b.Add(c)))
		},
		genInt(), genInt(), genInt(),
	))

	properties.Property("a + (-a) == 0", prop.ForAll(
		func(a Int) bool {
			return a.Add(a.Neg()).IsZero()
		},
		genInt(),
	))

	properties.Property("a - a == 0", prop.ForAll(
		func(a Int) bool {
			return a.Sub(a).IsZero()
		},
		genInt(),
	))

	properties.Property("add matches big.Int", prop.ForAll(
		func(a, b Int) bool {
			return a.Add(b).AsBigInt().Cmp(new(big.Int).Add(a.AsBigInt(), b.AsBigInt())) == 0
		},
		genInt(), genInt(),
	))

	properties.Property("mul matches big.Int", prop.ForAll(
		func(a, b Int) bool {
			return a.Mul(b).AsBigInt().Cmp(new(big.Int).Mul(a.AsBigInt(), b.AsBigInt())) == 0
		},
		genInt(), genInt(),
	))

	properties.Property("cmp agrees with decimal string ordering", prop.ForAll(
		func(a, b Int) bool {
			return a.Cmp(b) == a.AsBigInt().Cmp(b.AsBigInt())
		},
		genInt(), genInt(),
	))

	properties.Property("parse inverts format", prop.ForAll(
		func(a Int) bool {
			rt, err := FromString(a.String())
			return err == nil && a.Equal(rt)
		},
		genInt(),
	))

	properties.TestingRun(t)
}
