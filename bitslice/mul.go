package bitslice

// Mul multiplies two slices into a freshly allocated slice using schoolbook
// multiply-and-accumulate: each pair of words is widening-multiplied and the
// low word rippled into the output, carrying until the carry stops
// propagating. The output is len(left)+len(right) words before
// canonicalization, so the multiply cannot overflow.
func Mul[W Word](left, right []W) []W {
	out := make([]W, len(left)+len(right))

	for idx, l := range left {
		var carry W
		for off, r := range right {
			lo, hi := wideningMul(l, r, carry)
			carry = hi
			addWord(out, idx+off, lo)
		}
		if carry != 0 {
			addWord(out, idx+len(right), carry)
		}
	}

	return Shrink(out)
}

// addWord adds val into s at idx, rippling the carry upward until it stops.
// It reports a carry (or a dropped nonzero word) past the end of s.
func addWord[W Word](s []W, idx int, val W) bool {
	if idx >= len(s) {
		return val != 0
	}

	carry := false
	for idx < len(s) {
		s[idx], carry = overflowingAdd(s[idx], val, false)
		idx++
		if !carry {
			return false
		}
		val = 1
	}
	return carry
}

// MulOverflowing multiplies left by right in place, treating left as a
// fixed-width output, and reports whether any part of the product fell past
// the end of left. Words are consumed from the most significant end first so
// each partial product lands in space the source word has vacated.
func MulOverflowing[W Word](left, right []W) bool {
	overflow := false

	for idx := len(left) - 1; idx >= 0; idx-- {
		l := left[idx]
		left[idx] = 0

		var carry W
		for off, r := range right {
			lo, hi := wideningMul(l, r, carry)
			carry = hi
			if addWord(left, idx+off, lo) {
				overflow = true
			}
		}
		if carry != 0 && addWord(left, idx+len(right), carry) {
			overflow = true
		}
	}

	return overflow
}

// MulWrapping multiplies left by right in place, discarding any overflow.
func MulWrapping[W Word](left, right []W) []W {
	MulOverflowing(left, right)
	return left
}

// MulChecked multiplies left by right in place and reports whether the
// product fit. On overflow left holds the wrapped product.
func MulChecked[W Word](left, right []W) bool {
	return !MulOverflowing(left, right)
}

// MulSaturating multiplies left by right in place, clamping to the all-ones
// magnitude on overflow.
func MulSaturating[W Word](left, right []W) []W {
	if MulOverflowing(left, right) {
		for idx := range left {
			left[idx] = ^W(0)
		}
	}
	return left
}
