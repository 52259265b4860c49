package bitslice

// Sub subtracts right from left into a freshly allocated slice, implemented
// as element-wise subtract and borrow. If a borrow remains after the last
// word, the true result is negative: the returned magnitude is then the
// negation of the wrapped difference (see negateOnBorrow), and negated is
// true. Callers combine that flag with the operands' signs to pick the final
// sign; the kernel itself is always unsigned.
func Sub[W Word](left, right []W) (out []W, negated bool) {
	n := max(len(left), len(right))
	out = make([]W, n)

	borrow := false
	for idx := 0; idx < n; idx++ {
		out[idx], borrow = overflowingSub(get(left, idx), get(right, idx), borrow)
	}

	if borrow {
		negateOnBorrow(out)
	}

	return Shrink(out), borrow
}

// negateOnBorrow recovers the magnitude of a subtraction that went below
// zero. The wrapped difference is the two's complement of the magnitude over
// the whole slice, so subtracting every word from zero with a rippling
// borrow restores it.
func negateOnBorrow[W Word](s []W) {
	borrow := false
	for idx := range s {
		s[idx], borrow = overflowingSub(0, s[idx], borrow)
	}
}

// SubOverflowing subtracts right from left in place, treating left as a
// fixed-width output. On borrow, left holds the negated magnitude (as for
// Sub) and the return value is true.
func SubOverflowing[W Word](left, right []W) bool {
	n := max(len(left), len(right))

	borrow := false
	for idx := 0; idx < n; idx++ {
		res, b := overflowingSub(get(left, idx), get(right, idx), borrow)
		setIgnore(left, idx, res)
		borrow = b
	}

	if borrow {
		negateOnBorrow(left)
	}

	return borrow
}

// SubWrapping subtracts right from left in place. The caller must know the
// difference is non-negative; any borrow is discarded.
func SubWrapping[W Word](left, right []W) []W {
	n := max(len(left), len(right))

	borrow := false
	for idx := 0; idx < n; idx++ {
		res, b := overflowingSub(get(left, idx), get(right, idx), borrow)
		setIgnore(left, idx, res)
		borrow = b
	}

	return left
}

// SubChecked subtracts right from left in place and reports whether the
// difference was non-negative.
func SubChecked[W Word](left, right []W) bool {
	return !SubOverflowing(left, right)
}

// SubSaturating subtracts right from left in place, clamping to zero when
// the difference would be negative.
func SubSaturating[W Word](left, right []W) []W {
	if SubOverflowing(left, right) {
		for idx := range left {
			left[idx] = 0
		}
	}
	return left
}
