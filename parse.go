package bignum

import (
	"github.com/pkg/errors"
	"github.com/shabbyrobe/go-bignum/bitslice"
)

// FromString creates an Int from a base 10 string. An empty string is
// zero. A single leading '+' or '-' is accepted.
func FromString(s string) (Int, error) {
	return FromStringBase(s, 10)
}

// FromStringBase creates an Int from a string in the given base, which
// must be between 2 and 36, or 0. Base 0 infers the base from a "0b",
// "0o" or "0x" prefix, defaulting to 10. Digits beyond 9 may be in
// either case.
func FromStringBase(s string, base int) (Int, error) {
	if base != 0 && (base < 2 || base > 36) {
		return Int{}, InvalidRadixError(base)
	}

	orig := s
	var neg bool
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	if base == 0 {
		base = 10
		if len(s) >= 2 && s[0] == '0' {
			switch s[1] {
			case 'b', 'B':
				base, s = 2, s[2:]
			case 'o', 'O':
				base, s = 8, s[2:]
			case 'x', 'X':
				base, s = 16, s[2:]
			}
		}
	}

	mag := []uint{0}
	mul := []uint{uint(base)}
	for _, c := range s {
		d, ok := digitVal(c)
		if !ok || d >= uint(base) {
			return Int{}, errors.Wrapf(InvalidCharError(c), "parsing %q base %d", orig, base)
		}
		mag = bitslice.Mul(mag, mul)
		mag = bitslice.Add(mag, []uint{d})
	}

	return newFromWords(mag, neg), nil
}

func digitVal(c rune) (uint, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint(c - '0'), true
	case c >= 'a' && c <= 'z':
		return uint(c-'a') + 10, true
	case c >= 'A' && c <= 'Z':
		return uint(c-'A') + 10, true
	}
	return 0, false
}
