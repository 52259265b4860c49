package bitslice

// And returns the bitwise AND of two magnitudes in canonical form, zero
// extending the shorter operand.
func And[W Word](left, right []W) []W {
	out := make([]W, max(len(left), len(right)))
	for idx := range out {
		out[idx] = get(left, idx) & get(right, idx)
	}
	return Shrink(out)
}

// Or returns the bitwise OR of two magnitudes in canonical form.
func Or[W Word](left, right []W) []W {
	out := make([]W, max(len(left), len(right)))
	for idx := range out {
		out[idx] = get(left, idx) | get(right, idx)
	}
	return Shrink(out)
}

// Xor returns the bitwise XOR of two magnitudes in canonical form.
func Xor[W Word](left, right []W) []W {
	out := make([]W, max(len(left), len(right)))
	for idx := range out {
		out[idx] = get(left, idx) ^ get(right, idx)
	}
	return Shrink(out)
}

// Not inverts every word of s in place. The result is not canonicalized;
// inverting can both create and remove leading zero words.
func Not[W Word](s []W) []W {
	for idx := range s {
		s[idx] = ^s[idx]
	}
	return s
}
