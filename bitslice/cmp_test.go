package bitslice

import (
	"fmt"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestCmp(t *testing.T) {
	for idx, tc := range []struct {
		left, right []uint8
		result      int
	}{
		{[]uint8{0}, []uint8{0}, 0},
		{[]uint8{1}, []uint8{0}, 1},
		{[]uint8{0}, []uint8{1}, -1},
		{[]uint8{5}, []uint8{5}, 0},
		{[]uint8{0, 1}, []uint8{0xFF}, 1},
		{[]uint8{0xFF}, []uint8{0, 1}, -1},
		// Differing lengths with equal values.
		{[]uint8{5, 0, 0}, []uint8{5}, 0},
		{[]uint8{5}, []uint8{5, 0}, 0},
		// The most significant differing word must win even when a lower
		// word orders the other way.
		{[]uint8{0xFF, 1}, []uint8{0, 2}, -1},
		{[]uint8{0, 2}, []uint8{0xFF, 1}, 1},
	} {
		t.Run(fmt.Sprintf("%d/%v,%v", idx, tc.left, tc.right), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.result, Cmp(tc.left, tc.right))
		})
	}
}
