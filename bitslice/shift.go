package bitslice

// Shl shifts left by n bits into a freshly allocated slice. Whole words are
// relocated first; for the sub-word part, each word's overflow bits are
// merged into the next output word. The output grows by as many words as the
// shift needs and is returned in canonical form.
func Shl[W Word](s []W, n uint) []W {
	wb := wordBits[W]()
	wordShift := int(n / wb)
	bitShift := n % wb

	out := make([]W, len(s)+wordShift+1)
	if bitShift == 0 {
		copy(out[wordShift:], s)
	} else {
		inv := wb - bitShift
		for idx := len(s) - 1; idx >= 0; idx-- {
			out[idx+wordShift+1] |= s[idx] >> inv
			out[idx+wordShift] = s[idx] << bitShift
		}
	}

	return Shrink(out)
}

// ShlWrapping shifts s left by n bits in place, discarding bits shifted past
// the top of the slice.
func ShlWrapping[W Word](s []W, n uint) []W {
	wb := wordBits[W]()
	wordShift := int(n / wb)
	bitShift := n % wb

	if wordShift >= len(s) {
		for idx := range s {
			s[idx] = 0
		}
		return s
	}

	if bitShift == 0 {
		copy(s[wordShift:], s[:len(s)-wordShift])
	} else {
		inv := wb - bitShift
		for idx := len(s) - 1; idx >= wordShift; idx-- {
			v := s[idx-wordShift] << bitShift
			if idx-wordShift-1 >= 0 {
				v |= s[idx-wordShift-1] >> inv
			}
			s[idx] = v
		}
	}

	for idx := 0; idx < wordShift; idx++ {
		s[idx] = 0
	}
	return s
}

// ShlChecked shifts s left by n bits in place and reports whether no set bit
// was discarded off the top.
func ShlChecked[W Word](s []W, n uint) bool {
	fits := BitLen(s) == 0 || n <= uint(len(s))*wordBits[W]()-BitLen(s)
	ShlWrapping(s, n)
	return fits
}

// Shr shifts right by n bits into a freshly allocated slice, in canonical
// form. Bits shifted past position zero are discarded.
func Shr[W Word](s []W, n uint) []W {
	wb := wordBits[W]()
	wordShift := int(n / wb)
	bitShift := n % wb

	if wordShift >= len(s) {
		return []W{0}
	}

	out := make([]W, len(s)-wordShift)
	if bitShift == 0 {
		copy(out, s[wordShift:])
	} else {
		inv := wb - bitShift
		for idx := range out {
			v := s[idx+wordShift] >> bitShift
			if idx+wordShift+1 < len(s) {
				v |= s[idx+wordShift+1] << inv
			}
			out[idx] = v
		}
	}

	return Shrink(out)
}

// ShrWrapping shifts s right by n bits in place, zero-filling from the top.
func ShrWrapping[W Word](s []W, n uint) []W {
	wb := wordBits[W]()
	wordShift := int(n / wb)
	bitShift := n % wb

	if wordShift >= len(s) {
		for idx := range s {
			s[idx] = 0
		}
		return s
	}

	if bitShift == 0 {
		copy(s, s[wordShift:])
	} else {
		inv := wb - bitShift
		for idx := 0; idx < len(s)-wordShift; idx++ {
			v := s[idx+wordShift] >> bitShift
			if idx+wordShift+1 < len(s) {
				v |= s[idx+wordShift+1] << inv
			}
			s[idx] = v
		}
	}

	for idx := len(s) - wordShift; idx < len(s); idx++ {
		s[idx] = 0
	}
	return s
}

// ShrChecked shifts s right by n bits in place and reports whether no set
// bit was discarded off the bottom.
func ShrChecked[W Word](s []W, n uint) bool {
	fits := true
	for idx := uint(0); idx < n && fits; idx++ {
		fits = !Bit(s, idx)
	}
	ShrWrapping(s, n)
	return fits
}
