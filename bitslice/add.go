package bitslice

// Add adds two slices into a freshly allocated slice, implemented as
// element-wise add and carry. The output is allocated one word longer than
// the larger operand, so the add cannot overflow, and is returned in
// canonical form.
func Add[W Word](left, right []W) []W {
	n := max(len(left), len(right))
	out := make([]W, n+1)

	carry := false
	for idx := 0; idx <= n; idx++ {
		out[idx], carry = overflowingAdd(get(left, idx), get(right, idx), carry)
	}

	return Shrink(out)
}

// AddOverflowing adds right into left in place, treating left as a
// fixed-width output. It reports overflow when a final carry remains or a
// nonzero word would land past the end of left.
func AddOverflowing[W Word](left, right []W) bool {
	n := max(len(left), len(right))

	carry := false
	overflow := false
	for idx := 0; idx < n; idx++ {
		res, c := overflowingAdd(get(left, idx), get(right, idx), carry)
		if idx < len(left) {
			left[idx] = res
		} else if res != 0 {
			overflow = true
		}
		carry = c
	}

	return overflow || carry
}

// AddWrapping adds right into left in place, discarding any overflow.
func AddWrapping[W Word](left, right []W) []W {
	AddOverflowing(left, right)
	return left
}

// AddChecked adds right into left in place and reports whether the result
// fit. On overflow left holds the wrapped result.
func AddChecked[W Word](left, right []W) bool {
	return !AddOverflowing(left, right)
}

// AddSaturating adds right into left in place, clamping to the all-ones
// magnitude on overflow.
func AddSaturating[W Word](left, right []W) []W {
	if AddOverflowing(left, right) {
		for idx := range left {
			left[idx] = ^W(0)
		}
	}
	return left
}
