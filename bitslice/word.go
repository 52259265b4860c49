package bitslice

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Word is the capability contract a type must satisfy to back a slice: any
// fixed-width unsigned integer works as a digit of a multi-word magnitude.
// The kernel only ever relies on bit length, overflowing add/sub, widening
// multiply, in-range shifts and ordering.
type Word interface {
	constraints.Unsigned
}

// wordBits returns the number of bits in a word of type W.
func wordBits[W Word]() uint {
	return uint(bits.OnesCount64(uint64(^W(0))))
}

// overflowingAdd returns l + r + carry and the outgoing carry. The result
// wraps; the carry reports that it did.
func overflowingAdd[W Word](l, r W, carry bool) (W, bool) {
	sum := l + r
	c := sum < l
	if carry {
		sum++
		c = c || sum == 0
	}
	return sum, c
}

// overflowingSub returns l - r - borrow and the outgoing borrow.
func overflowingSub[W Word](l, r W, borrow bool) (W, bool) {
	diff := l - r
	b := l < r
	if borrow {
		b = b || diff == 0
		diff--
	}
	return diff, b
}

// wideningMul returns l*r + carry as a (lo, hi) pair. The inputs plus carry
// always fit in two words, so the result cannot overflow.
func wideningMul[W Word](l, r, carry W) (lo, hi W) {
	wb := wordBits[W]()
	if wb < 64 {
		p := uint64(l)*uint64(r) + uint64(carry)
		return W(p), W(p >> wb)
	}
	h, lo64 := bits.Mul64(uint64(l), uint64(r))
	lo64, c := bits.Add64(lo64, uint64(carry), 0)
	return W(lo64), W(h + c)
}

// wordLen is bits.Len for any word width.
func wordLen[W Word](w W) uint {
	return uint(bits.Len64(uint64(w)))
}
