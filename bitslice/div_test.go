package bitslice

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestDivRem(t *testing.T) {
	for idx, tc := range []struct {
		num, den, q, r []uint8
	}{
		{[]uint8{0}, []uint8{1}, []uint8{0}, []uint8{0}},
		{[]uint8{7}, []uint8{2}, []uint8{3}, []uint8{1}},
		{[]uint8{7}, []uint8{7}, []uint8{1}, []uint8{0}},
		{[]uint8{7}, []uint8{8}, []uint8{0}, []uint8{7}},
		{[]uint8{0, 1}, []uint8{3}, []uint8{0x55}, []uint8{1}},
		{[]uint8{0xFF, 0xFF}, []uint8{0x10}, []uint8{0xFF, 0x0F}, []uint8{0x0F}},
		// Divisor occupying the full width of the slice.
		{[]uint8{0xFF, 0xFF}, []uint8{0xFE, 0xFF}, []uint8{1}, []uint8{1}},
		{[]uint8{0x34, 0x12}, []uint8{0, 1}, []uint8{0x12}, []uint8{0x34}},
	} {
		t.Run(fmt.Sprintf("%d/%v div %v", idx, tc.num, tc.den), func(t *testing.T) {
			tt := assert.WrapTB(t)
			q, r := DivRem(tc.num, tc.den)
			tt.MustEqual(tc.q, q)
			tt.MustEqual(tc.r, r)
		})
	}
}

func TestDivRemByZero(t *testing.T) {
	tt := assert.WrapTB(t)
	defer func() {
		tt.MustAssert(recover() != nil)
	}()
	DivRem([]uint8{1}, []uint8{0})
}

func TestDivOverflowing(t *testing.T) {
	tt := assert.WrapTB(t)

	num := []uint8{0xFF, 0xFF}
	rem := make([]uint8, 3)
	DivOverflowing(num, []uint8{0x10}, rem)
	tt.MustEqual([]uint8{0xFF, 0x0F}, num)
	tt.MustEqual([]uint8{0x0F, 0, 0}, rem)
}

func TestRemOverflowing(t *testing.T) {
	tt := assert.WrapTB(t)

	num := []uint8{0xFF, 0xFF}
	rem := make([]uint8, 3)
	RemOverflowing(num, []uint8{0x10}, rem)
	tt.MustEqual([]uint8{0x0F, 0}, num)
}

func TestDivRemBig(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(3))

	for iter := 0; iter < 2000; iter++ {
		num, den := randWords[uint](rng, 4), randWords[uint](rng, 2)
		if IsZero(den) {
			continue
		}
		eq, er := new(big.Int).QuoRem(bigOf(num), bigOf(den), new(big.Int))
		q, r := DivRem(num, den)
		tt.MustEqual(wordsOf[uint](eq), q, "%v div %v", num, den)
		tt.MustEqual(wordsOf[uint](er), r, "%v rem %v", num, den)
	}
}
