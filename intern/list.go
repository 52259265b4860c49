package intern

import "sync/atomic"

// list is an append-only linked list of values, safe for concurrent pushers
// and readers. Nodes are linked with compare-and-swap and never removed, so
// a *T obtained from get stays valid for the life of the list. Indexed
// access walks from the head; the store is expected to hold few nodes.
type node[T any] struct {
	next  atomic.Pointer[node[T]]
	value T
}

type list[T any] struct {
	head atomic.Pointer[node[T]]
}

// push appends a value, returning its index and a stable pointer to the
// stored copy.
func (l *list[T]) push(value T) (int, *T) {
	n := &node[T]{value: value}
	if l.head.CompareAndSwap(nil, n) {
		return 0, &n.value
	}

	cur := l.head.Load()
	idx := 0
	for {
		next := cur.next.Load()
		if next == nil {
			if cur.next.CompareAndSwap(nil, n) {
				return idx + 1, &n.value
			}
			next = cur.next.Load()
		}
		cur = next
		idx++
	}
}

// get returns a stable pointer to the value at idx, or nil if idx is past
// the end of the list.
func (l *list[T]) get(idx int) *T {
	cur := l.head.Load()
	for ; cur != nil && idx > 0; idx-- {
		cur = cur.next.Load()
	}
	if cur == nil {
		return nil
	}
	return &cur.value
}

// len counts the nodes currently linked.
func (l *list[T]) len() int {
	n := 0
	for cur := l.head.Load(); cur != nil; cur = cur.next.Load() {
		n++
	}
	return n
}
