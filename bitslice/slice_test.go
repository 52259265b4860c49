package bitslice

import (
	"fmt"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestShrink(t *testing.T) {
	for idx, tc := range []struct {
		in, out []uint8
	}{
		{[]uint8{0}, []uint8{0}},
		{[]uint8{0, 0, 0}, []uint8{0}},
		{[]uint8{1, 0, 0}, []uint8{1}},
		{[]uint8{0, 1, 0}, []uint8{0, 1}},
		{[]uint8{1, 2, 3}, []uint8{1, 2, 3}},
	} {
		t.Run(fmt.Sprintf("%d/%v", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			out := Shrink(tc.in)
			tt.MustEqual(tc.out, out)
			tt.MustEqual(tc.out, Shrink(out))
		})
	}
}

func TestBitLen(t *testing.T) {
	for idx, tc := range []struct {
		in  []uint8
		out uint
	}{
		{[]uint8{0}, 0},
		{[]uint8{1}, 1},
		{[]uint8{0x80}, 8},
		{[]uint8{0, 1}, 9},
		{[]uint8{0xFF, 0xFF}, 16},
		{[]uint8{5, 0, 0}, 3},
	} {
		t.Run(fmt.Sprintf("%d/%v", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, BitLen(tc.in))
		})
	}
}

func TestBit(t *testing.T) {
	tt := assert.WrapTB(t)

	s := []uint8{0x01, 0x80}
	tt.MustAssert(Bit(s, 0))
	tt.MustAssert(!Bit(s, 1))
	tt.MustAssert(Bit(s, 15))
	tt.MustAssert(!Bit(s, 16))
	tt.MustAssert(!Bit(s, 1000))
}

func TestSetBit(t *testing.T) {
	tt := assert.WrapTB(t)

	s := []uint8{0, 0}
	SetBit(s, 0, true)
	SetBit(s, 9, true)
	tt.MustEqual([]uint8{1, 2}, s)

	SetBit(s, 9, false)
	tt.MustEqual([]uint8{1, 0}, s)
}

func TestSetBitOutOfRange(t *testing.T) {
	tt := assert.WrapTB(t)
	defer func() {
		tt.MustAssert(recover() != nil)
	}()
	SetBit([]uint8{0}, 8, true)
}
