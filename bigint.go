package bignum

import (
	"slices"

	"github.com/shabbyrobe/go-bignum/bitslice"
	"github.com/shabbyrobe/go-bignum/intern"
)

const (
	intSize = 32 << (^uint(0) >> 63)

	// maxInline is the largest magnitude that fits inline alongside the tag.
	maxInline = ^uint(0) >> 2
)

// intStore holds every magnitude too large to store inline. It is
// initialized once and lives for the life of the process; slots are revived
// and reused but never reclaimed.
var intStore = intern.New(func(a, b []uint) bool { return slices.Equal(a, b) })

// tag occupies the low two bits of a taggedRef. Bit 0 is the sign, bit 1
// selects interned storage, so the zero tag is an inline non-negative value
// and flipping the sign is an XOR of bit 0.
type tag uint

const (
	tagInline      tag = 0
	tagInlineNeg   tag = 1
	tagInterned    tag = 2
	tagInternedNeg tag = 3
)

func (t tag) inline() bool   { return t&0b10 == 0 }
func (t tag) negative() bool { return t&0b01 != 0 }

// taggedRef packs a tag into the low two bits of a payload. When the tag is
// inline the payload is the magnitude itself; otherwise it is an interner
// id. The packed form is never exposed; use the accessors.
type taggedRef uint

func newTaggedRef(payload uint, t tag) taggedRef {
	if payload > maxInline {
		panic("bignum: tagged payload out of range")
	}
	return taggedRef(payload<<2) | taggedRef(t)
}

func (r taggedRef) payload() uint        { return uint(r) >> 2 }
func (r taggedRef) tag() tag             { return tag(r & 0b11) }
func (r taggedRef) invertNeg() taggedRef { return r ^ 0b01 }

// Int is an arbitrary-precision signed integer. The zero value is a ready to
// use zero.
//
// Int is exactly one machine word: a magnitude of up to intSize-2 bits lives
// inline, anything larger lives in the process-wide interner, refcounted and
// shared between every Int with that magnitude. See the package
// documentation for the Clone/Release protocol.
type Int struct {
	ref taggedRef
}

// words returns i's magnitude as a little-endian word slice in canonical
// form. Inline values are returned in the caller-supplied backing array to
// keep the common path allocation free; interned slices must not be mutated.
func (i Int) words(inline *[1]uint) []uint {
	if i.ref.tag().inline() {
		inline[0] = i.ref.payload()
		return inline[:]
	}
	return intStore.Get(intern.ID(i.ref.payload()))
}

func (i Int) isNeg() bool { return i.ref.tag().negative() }

func newInline(val uint, neg bool) Int {
	t := tagInline
	if neg && val != 0 {
		t = tagInlineNeg
	}
	return Int{newTaggedRef(val, t)}
}

func newInterned(mag []uint, neg bool) Int {
	id := intStore.Add(mag)
	t := tagInterned
	if neg {
		t = tagInternedNeg
	}
	return Int{newTaggedRef(uint(id), t)}
}

// newFromWords wraps a magnitude as an Int, deciding inline versus interned
// storage. mag must be owned by the callee: interning retains it. A negative
// zero request degrades to plain zero.
func newFromWords(mag []uint, neg bool) Int {
	mag = bitslice.Shrink(mag)
	if len(mag) == 0 {
		return newInline(0, false)
	}
	if len(mag) == 1 && mag[0] <= maxInline {
		return newInline(mag[0], neg)
	}
	return newInterned(mag, neg)
}

// FromWords creates an Int from a little-endian word slice magnitude and a
// sign. The slice is copied and need not be canonical. A negative zero
// degrades to zero.
func FromWords(words []uint, neg bool) Int {
	return newFromWords(slices.Clone(words), neg)
}

// IsInline reports whether the value is stored inline.
func (i Int) IsInline() bool { return i.ref.tag().inline() }

// IsInterned reports whether the value is stored in the process interner.
func (i Int) IsInterned() bool { return !i.ref.tag().inline() }

// IsZero reports whether i is zero.
func (i Int) IsZero() bool { return i.ref == 0 }

// Sign returns -1 for negative values, 0 for zero and 1 for positive values.
func (i Int) Sign() int {
	switch {
	case i.ref == 0:
		return 0
	case i.isNeg():
		return -1
	default:
		return 1
	}
}

// Clone returns i with an additional owned reference to any interned
// magnitude. Plain struct copies share the original's reference instead.
func (i Int) Clone() Int {
	if i.IsInterned() {
		intStore.Incr(intern.ID(i.ref.payload()))
	}
	return i
}

// Release drops i's reference to its interned magnitude, if any. Once the
// last reference is dropped the interner slot is dead and may be reused for
// another value; using i afterwards is a bug. Release on an inline value is
// a no-op.
func (i Int) Release() {
	if i.IsInterned() {
		intStore.Decr(intern.ID(i.ref.payload()))
	}
}

// Neg returns -i as a newly owned value. Negating zero returns zero. The
// magnitude is untouched: only the sign bit of the handle flips.
func (i Int) Neg() Int {
	if i.IsZero() {
		return i
	}
	out := i.Clone()
	out.ref = out.ref.invertNeg()
	return out
}

// Abs returns the absolute value of i as a newly owned value.
func (i Int) Abs() Int {
	if i.isNeg() {
		return i.Neg()
	}
	return i.Clone()
}

// Add returns i + n.
func (i Int) Add(n Int) Int {
	var ib, nb [1]uint
	x, y := i.words(&ib), n.words(&nb)

	var mag []uint
	var neg bool
	li, ln := i.isNeg(), n.isNeg()
	switch {
	case li == ln:
		mag = bitslice.Add(x, y)
		neg = li
	case !li:
		mag, neg = bitslice.Sub(x, y)
	default:
		mag, neg = bitslice.Sub(x, y)
		neg = !neg
	}

	return newFromWords(mag, neg)
}

// Sub returns i - n.
func (i Int) Sub(n Int) Int {
	var ib, nb [1]uint
	x, y := i.words(&ib), n.words(&nb)

	var mag []uint
	var neg bool
	li, ln := i.isNeg(), n.isNeg()
	switch {
	case li != ln:
		mag = bitslice.Add(x, y)
		neg = li
	case !li:
		mag, neg = bitslice.Sub(x, y)
	default:
		mag, neg = bitslice.Sub(x, y)
		neg = !neg
	}

	return newFromWords(mag, neg)
}

// Mul returns i * n.
func (i Int) Mul(n Int) Int {
	var ib, nb [1]uint
	mag := bitslice.Mul(i.words(&ib), n.words(&nb))
	return newFromWords(mag, i.isNeg() != n.isNeg())
}

// Quo returns the quotient i / n for n != 0, truncated towards zero. Quo
// panics if n is zero.
func (i Int) Quo(n Int) Int {
	var ib, nb [1]uint
	q, _ := bitslice.DivRem(i.words(&ib), n.words(&nb))
	return newFromWords(q, i.isNeg() != n.isNeg())
}

// Rem returns the remainder i % n for n != 0. The remainder takes the sign
// of the dividend, so i.Equal(i.Quo(n).Mul(n).Add(i.Rem(n))) holds. Rem
// panics if n is zero.
func (i Int) Rem(n Int) Int {
	var ib, nb [1]uint
	_, r := bitslice.DivRem(i.words(&ib), n.words(&nb))
	return newFromWords(r, i.isNeg())
}

// QuoRem returns both results of the division i / n in a single pass. QuoRem
// panics if n is zero.
func (i Int) QuoRem(n Int) (q, r Int) {
	var ib, nb [1]uint
	qm, rm := bitslice.DivRem(i.words(&ib), n.words(&nb))
	return newFromWords(qm, i.isNeg() != n.isNeg()), newFromWords(rm, i.isNeg())
}

// Lsh returns i << n. The sign is preserved.
func (i Int) Lsh(n uint) Int {
	var ib [1]uint
	return newFromWords(bitslice.Shl(i.words(&ib), n), i.isNeg())
}

// Rsh returns i >> n, shifting the magnitude and preserving the sign. Note
// that for negative values this truncates towards zero rather than
// replicating a sign bit.
func (i Int) Rsh(n uint) Int {
	var ib [1]uint
	return newFromWords(bitslice.Shr(i.words(&ib), n), i.isNeg())
}

// And returns the bitwise AND of the two magnitudes with i's sign.
func (i Int) And(n Int) Int {
	var ib, nb [1]uint
	return newFromWords(bitslice.And(i.words(&ib), n.words(&nb)), i.isNeg())
}

// Or returns the bitwise OR of the two magnitudes with i's sign.
func (i Int) Or(n Int) Int {
	var ib, nb [1]uint
	return newFromWords(bitslice.Or(i.words(&ib), n.words(&nb)), i.isNeg())
}

// Xor returns the bitwise XOR of the two magnitudes with i's sign.
func (i Int) Xor(n Int) Int {
	var ib, nb [1]uint
	return newFromWords(bitslice.Xor(i.words(&ib), n.words(&nb)), i.isNeg())
}

// Not inverts every word of the canonical magnitude, keeping the sign.
func (i Int) Not() Int {
	var ib [1]uint
	out := slices.Clone(i.words(&ib))
	bitslice.Not(out)
	return newFromWords(out, i.isNeg())
}

// Pow returns i raised to the power n by square and multiply. Pow panics if
// n is negative; n of zero returns one.
func (i Int) Pow(n Int) Int {
	if n.isNeg() {
		panic("bignum: negative exponent")
	}
	if n.IsZero() {
		return FromUint64(1)
	}

	var nb [1]uint
	exp := n.words(&nb)

	out := FromUint64(1)
	for idx := int(bitslice.BitLen(exp)) - 1; idx >= 0; idx-- {
		sq := out.Mul(out)
		out.Release()
		out = sq
		if bitslice.Bit(exp, uint(idx)) {
			t := out.Mul(i)
			out.Release()
			out = t
		}
	}
	return out
}

// Equal reports whether i and n are the same value. Structurally equal
// values usually share a handle thanks to interning, but two handles may
// still differ after racing inserts, so equal tags fall back to comparing
// magnitudes.
func (i Int) Equal(n Int) bool {
	if i.ref == n.ref {
		return true
	}
	if i.ref.tag() != n.ref.tag() || i.ref.tag().inline() {
		return false
	}
	var ib, nb [1]uint
	return slices.Equal(i.words(&ib), n.words(&nb))
}

// Cmp compares i and n, returning -1, 0 or 1. Negative values order below
// positive ones; equal signs compare by magnitude, reversed when both are
// negative.
func (i Int) Cmp(n Int) int {
	if i.ref == n.ref {
		return 0
	}
	li, ln := i.isNeg(), n.isNeg()
	switch {
	case li && !ln:
		return -1
	case !li && ln:
		return 1
	}

	var ib, nb [1]uint
	c := bitslice.Cmp(i.words(&ib), n.words(&nb))
	if li {
		c = -c
	}
	return c
}

// LessThan reports i < n.
func (i Int) LessThan(n Int) bool { return i.Cmp(n) < 0 }

// GreaterThan reports i > n.
func (i Int) GreaterThan(n Int) bool { return i.Cmp(n) > 0 }
