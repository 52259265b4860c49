package bignum

import "fmt"

// OutOfRangeError is returned by the As conversions when the value does
// not fit the destination type. Above reports whether the value exceeded
// the destination's maximum; when false, the value was below its minimum.
type OutOfRangeError struct {
	Above bool
}

func (e *OutOfRangeError) Error() string {
	if e.Above {
		return "bignum: value above range of destination type"
	}
	return "bignum: value below range of destination type"
}

func errAbove() error { return &OutOfRangeError{Above: true} }
func errBelow() error { return &OutOfRangeError{Above: false} }

// InvalidRadixError is returned when a parse is attempted with a base
// outside 2 to 36.
type InvalidRadixError uint

func (e InvalidRadixError) Error() string {
	return fmt.Sprintf("bignum: invalid radix %d, expected 2 to 36", uint(e))
}

// InvalidCharError is returned when a parse encounters a character that
// is not a digit of the requested base.
type InvalidCharError rune

func (e InvalidCharError) Error() string {
	return fmt.Sprintf("bignum: invalid character %q in input", rune(e))
}
