// Package bitslice implements arithmetic over slices of machine words.
//
// A slice represents a non-negative magnitude in little-endian word order:
// index 0 holds the least significant word. The canonical form of a magnitude
// has no redundant most-significant zero words, except zero itself, which is
// exactly one zero word long. Every growing operation returns its result in
// canonical form; in-place operations leave the length of their output buffer
// alone.
//
// Each operation comes in two families: the element-wise family works a word
// at a time using carry and borrow propagation, and the bitwise family (see
// bitwise.go) works a bit at a time and exists as a simple trusted reference.
package bitslice

// Shrink trims a slice to canonical form, dropping most-significant zero
// words. Zero shrinks to a single zero word. Shrink is idempotent.
func Shrink[W Word](s []W) []W {
	if len(s) == 0 {
		return s
	}
	idx := len(s) - 1
	for idx > 0 && s[idx] == 0 {
		idx--
	}
	return s[:idx+1]
}

// IsZero reports whether every word of s is zero.
func IsZero[W Word](s []W) bool {
	for _, w := range s {
		if w != 0 {
			return false
		}
	}
	return true
}

// BitLen returns the position of the highest set bit of s, plus one. An
// all-zero slice has bit length 0.
func BitLen[W Word](s []W) uint {
	for idx := len(s) - 1; idx >= 0; idx-- {
		if s[idx] != 0 {
			return uint(idx)*wordBits[W]() + wordLen(s[idx])
		}
	}
	return 0
}

// Bit returns the bit at position idx, where position 0 is the lowest bit of
// the first word. Positions past the end of the slice read as false.
func Bit[W Word](s []W, idx uint) bool {
	wb := wordBits[W]()
	word := idx / wb
	if word >= uint(len(s)) {
		return false
	}
	return s[word]>>(idx%wb)&1 != 0
}

// SetBit sets the bit at position idx to val. It panics if idx is past the
// end of the slice; that is a bug in the caller.
func SetBit[W Word](s []W, idx uint, val bool) {
	wb := wordBits[W]()
	word := idx / wb
	if word >= uint(len(s)) {
		panic("bitslice: bit index out of range")
	}
	mask := W(1) << (idx % wb)
	if val {
		s[word] |= mask
	} else {
		s[word] &^= mask
	}
}

// get reads the word at idx, zero-extending past the end of the slice.
func get[W Word](s []W, idx int) W {
	if idx < len(s) {
		return s[idx]
	}
	return 0
}

// setIgnore writes the word at idx, dropping writes past the end.
func setIgnore[W Word](s []W, idx int, val W) {
	if idx < len(s) {
		s[idx] = val
	}
}
