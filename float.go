package bignum

import "math"

// AsFloat64 returns the nearest float64 to i's value. Values beyond the
// float64 range become ±Inf.
func (i Int) AsFloat64() float64 {
	var ib [1]uint
	w := i.words(&ib)

	var out float64
	for idx := len(w) - 1; idx >= 0; idx-- {
		out = out*wordScale + float64(w[idx])
		if math.IsInf(out, 0) {
			break
		}
	}
	if i.isNeg() {
		out = -out
	}
	return out
}

// wordScale is 2^intSize as a float64.
var wordScale = math.Ldexp(1, intSize)
