/*
Package bignum provides an arbitrary-precision signed integer type, Int,
optimized for rapid copying and minimal memory usage.

An Int is a single machine word. Small values are stored inline in that word;
large values are hash-consed into a process-wide interner and the word holds
their slot id, so structurally equal large values share one allocation.

Int is a value type; all operations return new values:

	a := bignum.FromUint64(math.MaxUint64)
	b := a.Add(a)
	fmt.Println(b)
	// Output: 36893488147419103230

Ints can be created from a variety of sources:

	FromInt8/16/32/64(v) Int
	FromInt(v int) Int
	FromUint8/16/32/64(v) Int
	FromUint(v uint) Int
	FromWords(words []uint, neg bool) Int
	FromString(s string) (Int, error)
	FromStringBase(s string, base int) (Int, error)
	FromBigInt(v *big.Int) Int

Int supports the following formatting and marshalling interfaces:

  - fmt.Formatter
  - fmt.Stringer
  - json.Marshaler
  - json.Unmarshaler
  - encoding.TextMarshaler
  - encoding.TextUnmarshaler

Interned values are reference counted rather than garbage collected: every
constructed Int owns one reference to its interned magnitude. Clone adds a
reference, Release drops one. Releasing the last reference marks the slot
dead so a later value can reuse it; the storage itself is never reclaimed.
Release is optional; skipping it only pins the magnitude in the interner for
the life of the process.
*/
package bignum
