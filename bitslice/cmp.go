package bitslice

// Cmp compares two magnitudes lexicographically, conceptually zero-extending
// the shorter one. Words are compared from the most significant index down;
// the first difference decides. The result is -1, 0 or 1 in the manner of
// bytes.Compare. Neither operand needs to be canonical.
func Cmp[W Word](left, right []W) int {
	for idx := max(len(left), len(right)) - 1; idx >= 0; idx-- {
		l, r := get(left, idx), get(right, idx)
		switch {
		case l < r:
			return -1
		case l > r:
			return 1
		}
	}
	return 0
}
