package bitslice

import "github.com/bits-and-blooms/bitset"

// The bitwise family re-implements the kernel one bit at a time on top of a
// bitset.BitSet accumulator. It is far slower than the element-wise family
// and exists as a trusted reference: the logic is a literal transcription of
// pen-and-paper binary arithmetic, which makes it easy to audit and a good
// oracle for cross-checking the carry and mask handling of the fast path.

// fromBits converts the low words*wordBits bits of b into a canonical word
// slice.
func fromBits[W Word](b *bitset.BitSet, words int) []W {
	wb := wordBits[W]()
	out := make([]W, words)
	limit := min(uint(words)*wb, b.Len())
	for idx := uint(0); idx < limit; idx++ {
		if b.Test(idx) {
			out[idx/wb] |= W(1) << (idx % wb)
		}
	}
	return Shrink(out)
}

// BitwiseAdd adds two slices a bit at a time with an explicit full adder.
func BitwiseAdd[W Word](left, right []W) []W {
	wb := wordBits[W]()
	words := max(len(left), len(right)) + 1
	n := uint(words) * wb
	out := bitset.New(n)

	carry := false
	for idx := uint(0); idx < n; idx++ {
		l, r := Bit(left, idx), Bit(right, idx)
		out.SetTo(idx, l != r != carry)
		carry = (l && r) || (carry && (l || r))
	}

	return fromBits[W](out, words)
}

// BitwiseSub subtracts right from left a bit at a time. As for Sub, a final
// borrow means the true result is negative; the magnitude is recovered by
// two's-complement negation over the slice width and negated is true.
func BitwiseSub[W Word](left, right []W) (out []W, negated bool) {
	wb := wordBits[W]()
	words := max(len(left), len(right))
	n := uint(words) * wb
	res := bitset.New(n)

	borrow := false
	for idx := uint(0); idx < n; idx++ {
		l, r := Bit(left, idx), Bit(right, idx)
		res.SetTo(idx, l != r != borrow)
		borrow = (!l && r) || (borrow && l == r)
	}

	if borrow {
		// Flip every bit, then add one.
		carry := true
		for idx := uint(0); idx < n; idx++ {
			b := !res.Test(idx)
			res.SetTo(idx, b != carry)
			carry = carry && b
		}
	}

	return fromBits[W](res, words), borrow
}

// BitwiseMul multiplies two slices by shift-and-add: for every set bit of
// the left operand, the right operand is added into the accumulator at that
// bit offset.
func BitwiseMul[W Word](left, right []W) []W {
	wb := wordBits[W]()
	words := len(left) + len(right)
	out := bitset.New(uint(words) * wb)

	for idx := uint(0); idx < BitLen(left); idx++ {
		if Bit(left, idx) {
			addBitsShifted(out, right, idx)
		}
	}

	return fromBits[W](out, words)
}

// addBitsShifted adds s, shifted left by shift bits, into acc.
func addBitsShifted[W Word](acc *bitset.BitSet, s []W, shift uint) {
	carry := false
	idx := uint(0)
	for ; idx < BitLen(s) || carry; idx++ {
		if shift+idx >= acc.Len() {
			break
		}
		a, b := acc.Test(shift+idx), Bit(s, idx)
		acc.SetTo(shift+idx, a != b != carry)
		carry = (a && b) || (carry && (a || b))
	}
}

// BitwiseDivRem divides num by den using shift-compare-subtract long
// division with a bitset as the running remainder. It panics if den is zero.
func BitwiseDivRem[W Word](num, den []W) (q, r []W) {
	if IsZero(den) {
		panic("bitslice: division by zero")
	}

	wb := wordBits[W]()
	words := max(len(num), len(den))
	n := uint(words)*wb + 1
	rem := bitset.New(n)
	q = make([]W, words)

	for idx := int(BitLen(num)) - 1; idx >= 0; idx-- {
		for bit := n - 1; bit >= 1; bit-- {
			rem.SetTo(bit, rem.Test(bit-1))
		}
		rem.SetTo(0, Bit(num, uint(idx)))

		if cmpBits(rem, den, n) >= 0 {
			subBits(rem, den, n)
			SetBit(q, uint(idx), true)
		}
	}

	return Shrink(q), fromBits[W](rem, words)
}

// cmpBits compares the low n bits of rem against the magnitude den.
func cmpBits[W Word](rem *bitset.BitSet, den []W, n uint) int {
	for idx := int(n) - 1; idx >= 0; idx-- {
		l, r := rem.Test(uint(idx)), Bit(den, uint(idx))
		switch {
		case l && !r:
			return 1
		case !l && r:
			return -1
		}
	}
	return 0
}

// subBits subtracts den from rem in place. The caller must know rem >= den.
func subBits[W Word](rem *bitset.BitSet, den []W, n uint) {
	borrow := false
	for idx := uint(0); idx < n; idx++ {
		l, r := rem.Test(idx), Bit(den, idx)
		rem.SetTo(idx, l != r != borrow)
		borrow = (!l && r) || (borrow && l == r)
	}
}
