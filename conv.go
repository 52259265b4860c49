package bignum

import (
	"math"
	"math/big"

	"github.com/shabbyrobe/go-bignum/bitslice"
)

// wordsFromUint64 expands v into little-endian words. On 64-bit platforms
// this is a single word; on 32-bit platforms, up to two.
func wordsFromUint64(v uint64) []uint {
	if intSize == 64 || v <= math.MaxUint32 {
		return []uint{uint(v)}
	}
	return []uint{uint(v & math.MaxUint32), uint(v >> 32)}
}

// FromUint64 creates an Int from a uint64.
func FromUint64(v uint64) Int { return newFromWords(wordsFromUint64(v), false) }

// FromUint32 creates an Int from a uint32.
func FromUint32(v uint32) Int { return FromUint64(uint64(v)) }

// FromUint16 creates an Int from a uint16.
func FromUint16(v uint16) Int { return FromUint64(uint64(v)) }

// FromUint8 creates an Int from a uint8.
func FromUint8(v uint8) Int { return FromUint64(uint64(v)) }

// FromUint creates an Int from a uint.
func FromUint(v uint) Int { return FromUint64(uint64(v)) }

// FromInt64 creates an Int from an int64.
func FromInt64(v int64) Int {
	u := uint64(v)
	if v < 0 {
		u = -u
	}
	return newFromWords(wordsFromUint64(u), v < 0)
}

// FromInt32 creates an Int from an int32.
func FromInt32(v int32) Int { return FromInt64(int64(v)) }

// FromInt16 creates an Int from an int16.
func FromInt16(v int16) Int { return FromInt64(int64(v)) }

// FromInt8 creates an Int from an int8.
func FromInt8(v int8) Int { return FromInt64(int64(v)) }

// FromInt creates an Int from an int.
func FromInt(v int) Int { return FromInt64(int64(v)) }

// magUint64 converts i's magnitude to a uint64, reporting whether it fit.
func (i Int) magUint64() (uint64, bool) {
	var ib [1]uint
	w := i.words(&ib)
	if bitslice.BitLen(w) > 64 {
		return 0, false
	}
	var out uint64
	for idx, word := range w {
		out |= uint64(word) << (idx * intSize)
	}
	return out, true
}

// AsUint64 converts i to a uint64, or reports how it is out of range.
func (i Int) AsUint64() (uint64, error) {
	if i.isNeg() {
		return 0, errBelow()
	}
	u, ok := i.magUint64()
	if !ok {
		return 0, errAbove()
	}
	return u, nil
}

// AsUint32 converts i to a uint32, or reports how it is out of range.
func (i Int) AsUint32() (uint32, error) { return asSmallUint[uint32](i, math.MaxUint32) }

// AsUint16 converts i to a uint16, or reports how it is out of range.
func (i Int) AsUint16() (uint16, error) { return asSmallUint[uint16](i, math.MaxUint16) }

// AsUint8 converts i to a uint8, or reports how it is out of range.
func (i Int) AsUint8() (uint8, error) { return asSmallUint[uint8](i, math.MaxUint8) }

// AsUint converts i to a uint, or reports how it is out of range.
func (i Int) AsUint() (uint, error) { return asSmallUint[uint](i, uint64(^uint(0))) }

func asSmallUint[U uint8 | uint16 | uint32 | uint](i Int, limit uint64) (U, error) {
	u, err := i.AsUint64()
	if err != nil {
		return 0, err
	}
	if u > limit {
		return 0, errAbove()
	}
	return U(u), nil
}

// AsInt64 converts i to an int64, or reports how it is out of range.
func (i Int) AsInt64() (int64, error) {
	u, ok := i.magUint64()
	if !i.isNeg() {
		if !ok || u > math.MaxInt64 {
			return 0, errAbove()
		}
		return int64(u), nil
	}
	if !ok || u > 1<<63 {
		return 0, errBelow()
	}
	if u == 1<<63 {
		return math.MinInt64, nil
	}
	return -int64(u), nil
}

// AsInt32 converts i to an int32, or reports how it is out of range.
func (i Int) AsInt32() (int32, error) { return asSmallInt[int32](i, math.MinInt32, math.MaxInt32) }

// AsInt16 converts i to an int16, or reports how it is out of range.
func (i Int) AsInt16() (int16, error) { return asSmallInt[int16](i, math.MinInt16, math.MaxInt16) }

// AsInt8 converts i to an int8, or reports how it is out of range.
func (i Int) AsInt8() (int8, error) { return asSmallInt[int8](i, math.MinInt8, math.MaxInt8) }

// AsInt converts i to an int, or reports how it is out of range.
func (i Int) AsInt() (int, error) { return asSmallInt[int](i, math.MinInt, math.MaxInt) }

func asSmallInt[I int8 | int16 | int32 | int](i Int, lo, hi int64) (I, error) {
	v, err := i.AsInt64()
	if err != nil {
		return 0, err
	}
	if v > hi {
		return 0, errAbove()
	}
	if v < lo {
		return 0, errBelow()
	}
	return I(v), nil
}

// IntoBigInt sets b to i's value.
func (i Int) IntoBigInt(b *big.Int) {
	var ib [1]uint
	w := i.words(&ib)
	bits := make([]big.Word, len(w))
	for idx, word := range w {
		bits[idx] = big.Word(word)
	}
	b.SetBits(bits)
	if i.isNeg() {
		b.Neg(b)
	}
}

// AsBigInt returns i's value as a math/big Int.
func (i Int) AsBigInt() *big.Int {
	b := new(big.Int)
	i.IntoBigInt(b)
	return b
}

// FromBigInt creates an Int from a math/big Int.
func FromBigInt(v *big.Int) Int {
	bits := v.Bits()
	words := make([]uint, len(bits))
	for idx, word := range bits {
		words[idx] = uint(word)
	}
	if len(words) == 0 {
		words = []uint{0}
	}
	return newFromWords(words, v.Sign() < 0)
}
