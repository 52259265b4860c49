package bignum

import (
	"fmt"
	"strconv"

	"github.com/shabbyrobe/go-bignum/bitslice"
)

const digits = "0123456789abcdefghijklmnopqrstuvwxyz"

// String returns the value of i in base 10.
func (i Int) String() string {
	if i.IsZero() {
		return "0"
	}
	if i.IsInline() {
		u := uint64(i.ref.payload())
		if i.isNeg() {
			return "-" + strconv.FormatUint(u, 10)
		}
		return strconv.FormatUint(u, 10)
	}
	return i.Text(10)
}

// Text returns the value of i in the given base, which must be between 2
// and 36. Digits beyond 9 use lowercase letters. Text panics on an
// invalid base.
func (i Int) Text(base int) string {
	if base < 2 || base > 36 {
		panic(InvalidRadixError(base))
	}

	var ib [1]uint
	src := i.words(&ib)
	if bitslice.IsZero(src) {
		return "0"
	}

	num := make([]uint, len(src))
	copy(num, src)
	rem := make([]uint, len(num)+1)
	div := []uint{uint(base)}

	// Digits come out least significant first.
	out := make([]byte, 0, 8)
	for !bitslice.IsZero(num) {
		for idx := range rem {
			rem[idx] = 0
		}
		bitslice.DivOverflowing(num, div, rem)
		out = append(out, digits[rem[0]])
	}
	if i.isNeg() {
		out = append(out, '-')
	}
	for l, r := 0, len(out)-1; l < r; l, r = l+1, r-1 {
		out[l], out[r] = out[r], out[l]
	}
	return string(out)
}

func (i Int) Format(s fmt.State, c rune) {
	// FIXME: This is good enough for now, but not forever.
	i.AsBigInt().Format(s, c)
}
