package bitslice

// DivRem divides num by den, returning the quotient and remainder in
// canonical form. It is binary long division: one bit of the dividend at a
// time is shifted into a running remainder, which is compared against the
// divisor and reduced when it is not smaller, setting the matching quotient
// bit. O(bits * words); deliberately simple rather than fast.
//
// DivRem panics if den is zero. That is a bug in the caller, exactly as it
// is for native integer division.
func DivRem[W Word](num, den []W) (q, r []W) {
	if IsZero(den) {
		panic("bitslice: division by zero")
	}

	n := max(len(num), len(den))
	q = make([]W, n)
	// One extra word so the pre-compare shift cannot drop the remainder's
	// top bit when den occupies its full width.
	r = make([]W, n+1)

	for idx := int(BitLen(num)) - 1; idx >= 0; idx-- {
		ShlWrapping(r, 1)
		SetBit(r, 0, Bit(num, uint(idx)))
		if Cmp(r, den) >= 0 {
			SubWrapping(r, den)
			SetBit(q, uint(idx), true)
		}
	}

	return Shrink(q), Shrink(r)
}

// DivOverflowing divides num by den in place, leaving the quotient in num.
// The caller supplies the remainder scratch buffer, which must be at least
// len(num)+1 words of zeroes; on return it holds the remainder. Division
// never overflows; the bool exists for symmetry with the other families.
func DivOverflowing[W Word](num, den, rem []W) bool {
	if IsZero(den) {
		panic("bitslice: division by zero")
	}

	for idx := int(BitLen(num)) - 1; idx >= 0; idx-- {
		ShlWrapping(rem, 1)
		SetBit(rem, 0, Bit(num, uint(idx)))
		if Cmp(rem, den) >= 0 {
			SubWrapping(rem, den)
			SetBit(num, uint(idx), true)
		} else {
			SetBit(num, uint(idx), false)
		}
	}

	return false
}

// DivWrapping divides num by den in place, leaving the quotient in num.
func DivWrapping[W Word](num, den, rem []W) []W {
	DivOverflowing(num, den, rem)
	return num
}

// DivChecked divides num by den in place and reports whether the quotient
// fit, which it always does.
func DivChecked[W Word](num, den, rem []W) bool {
	return !DivOverflowing(num, den, rem)
}

// RemOverflowing reduces num modulo den in place, using the caller-supplied
// scratch buffer as the working remainder (at least len(num)+1 words of
// zeroes). The bool exists for symmetry and is always false.
func RemOverflowing[W Word](num, den, rem []W) bool {
	if IsZero(den) {
		panic("bitslice: division by zero")
	}

	for idx := int(BitLen(num)) - 1; idx >= 0; idx-- {
		ShlWrapping(rem, 1)
		SetBit(rem, 0, Bit(num, uint(idx)))
		if Cmp(rem, den) >= 0 {
			SubWrapping(rem, den)
		}
	}

	for idx := range num {
		num[idx] = get(rem, idx)
	}

	return false
}

// RemWrapping reduces num modulo den in place.
func RemWrapping[W Word](num, den, rem []W) []W {
	RemOverflowing(num, den, rem)
	return num
}
