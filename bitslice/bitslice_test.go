package bitslice

import (
	"math/big"
	"math/rand"
)

// bigOf converts a word slice to a big.Int for use as a test oracle.
func bigOf[W Word](s []W) *big.Int {
	wb := wordBits[W]()
	out := new(big.Int)
	word := new(big.Int)
	for idx := len(s) - 1; idx >= 0; idx-- {
		out.Lsh(out, wb)
		out.Or(out, word.SetUint64(uint64(s[idx])))
	}
	return out
}

// wordsOf converts a non-negative big.Int to a canonical word slice.
func wordsOf[W Word](v *big.Int) []W {
	wb := wordBits[W]()
	mask := new(big.Int).Lsh(big.NewInt(1), wb)
	mask.Sub(mask, big.NewInt(1))

	rest := new(big.Int).Set(v)
	word := new(big.Int)
	out := []W{}
	for rest.Sign() > 0 {
		out = append(out, W(word.And(rest, mask).Uint64()))
		rest.Rsh(rest, wb)
	}
	if len(out) == 0 {
		out = []W{0}
	}
	return out
}

func randWords[W Word](rng *rand.Rand, maxLen int) []W {
	out := make([]W, rng.Intn(maxLen)+1)
	for idx := range out {
		if rng.Intn(4) == 0 {
			// All-ones and zero words exercise the carry paths far more
			// often than uniform values do.
			if rng.Intn(2) == 0 {
				out[idx] = ^W(0)
			}
		} else {
			out[idx] = W(rng.Uint64())
		}
	}
	return Shrink(out)
}
