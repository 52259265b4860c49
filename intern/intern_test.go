package intern

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func eqInt(a, b int) bool { return a == b }

func TestAddFindsExisting(t *testing.T) {
	in := New(eqInt)

	id := in.Add(42)
	require.Equal(t, uint64(1), in.Refcount(id))
	require.Equal(t, 42, in.Get(id))

	again := in.Add(42)
	require.Equal(t, id, again)
	require.Equal(t, uint64(2), in.Refcount(id))

	other := in.Add(43)
	require.NotEqual(t, id, other)
}

func TestDeadSlotRevivesUnderSameID(t *testing.T) {
	in := New(eqInt)

	id := in.Add(42)
	in.Decr(id)
	require.Equal(t, uint64(0), in.Refcount(id))

	_, ok := in.TryGet(id)
	require.False(t, ok)

	again := in.Add(42)
	require.Equal(t, id, again)
	require.Equal(t, uint64(1), in.Refcount(id))
	require.Equal(t, 42, in.Get(id))
}

func TestDeadSlotReusedForNewValue(t *testing.T) {
	in := New(eqInt)

	id := in.Add(42)
	in.Decr(id)

	other := in.Add(43)
	require.Equal(t, id, other)
	require.Equal(t, 43, in.Get(other))
}

func TestGetDeadPanics(t *testing.T) {
	in := New(eqInt)

	id := in.Add(42)
	in.Decr(id)
	require.Panics(t, func() { in.Get(id) })
}

func TestTryGetOutOfRange(t *testing.T) {
	in := New(eqInt)
	_, ok := in.TryGet(1000)
	require.False(t, ok)
}

func TestDecrSaturates(t *testing.T) {
	in := New(eqInt)

	id := in.Add(42)
	in.Decr(id)
	in.Decr(id)
	require.Equal(t, uint64(0), in.Refcount(id))
}

func TestWithCapacity(t *testing.T) {
	in := WithCapacity(eqInt, 100)
	require.GreaterOrEqual(t, in.Len(), 100)

	id := in.Add(42)
	require.Equal(t, 42, in.Get(id))
}

func TestGrowsPastOneChunk(t *testing.T) {
	in := New(eqInt)

	ids := map[ID]int{}
	for n := 0; n < chunkSize*3+1; n++ {
		id := in.Add(n)
		ids[id] = n
	}
	require.Len(t, ids, chunkSize*3+1)
	for id, n := range ids {
		require.Equal(t, n, in.Get(id))
	}
}

func TestConcurrentAddNoLostIncrements(t *testing.T) {
	const workers = 8
	const iters = 200

	// Concurrent first use may claim the same value into more than one
	// slot; that is allowed. What is not allowed is losing a reference:
	// every slot's refcount must equal the number of Adds that returned
	// its id.
	in := WithCapacity(eqInt, chunkSize)
	ids := make([][]ID, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			ids[w] = make([]ID, iters)
			for n := 0; n < iters; n++ {
				ids[w][n] = in.Add(7)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	counts := map[ID]uint64{}
	for w := 0; w < workers; w++ {
		for _, id := range ids[w] {
			counts[id]++
		}
	}
	for id, count := range counts {
		require.Equal(t, count, in.Refcount(id))
		require.Equal(t, 7, in.Get(id))
	}
}

func TestConcurrentDistinctValues(t *testing.T) {
	const workers = 8
	const perWorker = 50

	in := New(eqInt)
	ids := make([][]ID, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			ids[w] = make([]ID, perWorker)
			for n := 0; n < perWorker; n++ {
				ids[w][n] = in.Add(w*perWorker + n)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for w := 0; w < workers; w++ {
		for n := 0; n < perWorker; n++ {
			require.Equal(t, w*perWorker+n, in.Get(ids[w][n]))
		}
	}
}

func TestConcurrentIncrDecr(t *testing.T) {
	const workers = 8
	const iters = 500

	in := New(eqInt)
	id := in.Add(42)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for n := 0; n < iters; n++ {
				in.Incr(id)
				in.Decr(id)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	require.Equal(t, uint64(1), in.Refcount(id))
	require.Equal(t, 42, in.Get(id))
}

func TestConcurrentListPush(t *testing.T) {
	const workers = 8
	const perWorker = 100

	var l list[int]
	var total atomic.Int64

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			for n := 0; n < perWorker; n++ {
				idx, p := l.push(w*perWorker + n)
				if *p != w*perWorker+n {
					t.Errorf("pushed value %d landed wrong at %d", w*perWorker+n, idx)
				}
				total.Add(1)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	require.Equal(t, int64(workers*perWorker), total.Load())
	require.Equal(t, workers*perWorker, l.len())

	seen := map[int]bool{}
	for idx := 0; idx < l.len(); idx++ {
		p := l.get(idx)
		require.NotNil(t, p)
		require.False(t, seen[*p])
		seen[*p] = true
	}
}
