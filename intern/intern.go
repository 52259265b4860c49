// Package intern provides a concurrent, reference-counted value store.
//
// Values are deduplicated: Add returns the id of an existing equal value
// where it can, bumping its refcount, and otherwise claims a slot. Slots
// whose refcount has dropped to zero are dead: their storage is never freed,
// but they are eligible to be overwritten by a later Add. An Add of a value
// equal to a dead slot's old value revives the slot under its original id.
//
// Storage is an append-only list of fixed-size chunks, so slot addresses are
// stable for the life of the interner and Get needs no lock. An Interner is
// expected to live for the life of the process; it never shrinks.
package intern

import (
	"sync"
	"sync/atomic"

	"github.com/shabbyrobe/go-bignum/logger"
)

const chunkSize = 32

// ID identifies a slot in an Interner. IDs are small dense integers and are
// never reused for a different live value while any reference is held.
type ID uint

type slot[T any] struct {
	// mu serializes the inspect-refcount-then-write sequence in Add. Plain
	// increments and decrements of a live slot's refcount don't take it.
	mu   sync.Mutex
	refs atomic.Uint64
	val  T
	has  bool
}

// Interner is a concurrent find-or-insert store of refcounted values.
type Interner[T any] struct {
	eq     func(a, b T) bool
	chunks list[*[chunkSize]slot[T]]
}

// New returns an Interner that deduplicates values using eq.
func New[T any](eq func(a, b T) bool) *Interner[T] {
	return &Interner[T]{eq: eq}
}

// WithCapacity returns an Interner with room for at least capacity values
// pre-allocated. Pre-allocating avoids racing chunk appends under heavy
// concurrent first use.
func WithCapacity[T any](eq func(a, b T) bool, capacity int) *Interner[T] {
	in := New(eq)
	for n := 0; n < (capacity+chunkSize-1)/chunkSize; n++ {
		in.chunks.push(new([chunkSize]slot[T]))
	}
	return in
}

// Add finds or inserts val, returning a stable id. The caller owns one
// reference to the slot; Decr releases it. O(slots) with respect to the
// store size, so avoid calling it in a hot loop.
func (in *Interner[T]) Add(val T) ID {
	for {
		var dead *slot[T]
		var deadID ID

		for ci := 0; ; ci++ {
			cp := in.chunks.get(ci)
			if cp == nil {
				break
			}
			for si := range *cp {
				s := &(*cp)[si]
				s.mu.Lock()
				if s.has && in.eq(s.val, val) {
					// Reviving a dead slot here on purpose: it saves work
					// when a value is rapidly dropped and recreated.
					if s.refs.Load() == 0 {
						s.refs.Store(1)
					} else {
						s.refs.Add(1)
					}
					s.mu.Unlock()
					return ID(ci*chunkSize + si)
				}
				if dead == nil && s.refs.Load() == 0 {
					dead = s
					deadID = ID(ci*chunkSize + si)
				}
				s.mu.Unlock()
			}
		}

		if dead != nil {
			if id, ok := in.claim(dead, deadID, val); ok {
				return id
			}
			// Slot was claimed by a concurrent Add; rescan.
			continue
		}

		ci, cp := in.chunks.push(new([chunkSize]slot[T]))
		log := logger.Logger()
		log.Trace().Int("chunks", ci+1).Msg("interner grew")
		if id, ok := in.claim(&(*cp)[0], ID(ci*chunkSize), val); ok {
			return id
		}
	}
}

// claim overwrites a dead slot with val and gives it one reference. It fails
// if the slot went live since the caller last looked at it, unless it went
// live holding an equal value, in which case that reference is shared.
func (in *Interner[T]) claim(s *slot[T], id ID, val T) (ID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.has && in.eq(s.val, val) {
		if s.refs.Load() == 0 {
			s.refs.Store(1)
		} else {
			s.refs.Add(1)
		}
		return id, true
	}
	if s.refs.Load() != 0 {
		return 0, false
	}
	s.val = val
	s.has = true
	s.refs.Store(1)
	return id, true
}

func (in *Interner[T]) slot(id ID) *slot[T] {
	cp := in.chunks.get(int(id) / chunkSize)
	if cp == nil {
		panic("intern: id out of range")
	}
	return &(*cp)[int(id)%chunkSize]
}

// Get returns the value at id. The caller must hold a reference to the
// slot; Get panics if the slot is dead or the id is out of range, both of
// which indicate a bug in the caller.
func (in *Interner[T]) Get(id ID) T {
	s := in.slot(id)
	if s.refs.Load() == 0 {
		panic("intern: get of dead slot")
	}
	return s.val
}

// TryGet returns the value at id, or false if the slot is dead or the id
// out of range.
func (in *Interner[T]) TryGet(id ID) (T, bool) {
	var zero T
	if int(id)/chunkSize >= in.chunks.len() {
		return zero, false
	}
	s := in.slot(id)
	if s.refs.Load() == 0 {
		return zero, false
	}
	return s.val, true
}

// Incr adds a reference to id's slot. Only callers that already hold a
// reference may call Incr; the slot cannot be concurrently revived while a
// reference is held.
func (in *Interner[T]) Incr(id ID) {
	in.slot(id).refs.Add(1)
}

// Decr drops a reference from id's slot, saturating at zero. A slot at zero
// is dead: its value may be overwritten by a later Add.
func (in *Interner[T]) Decr(id ID) {
	refs := &in.slot(id).refs
	for {
		cur := refs.Load()
		if cur == 0 {
			return
		}
		if refs.CompareAndSwap(cur, cur-1) {
			return
		}
	}
}

// Refcount returns the current reference count of id's slot.
func (in *Interner[T]) Refcount(id ID) uint64 {
	return in.slot(id).refs.Load()
}

// Len returns the number of allocated slots, live or dead.
func (in *Interner[T]) Len() int {
	return in.chunks.len() * chunkSize
}
