package lamport

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTickMonotonic(t *testing.T) {
	c := New()
	var last int64
	for i := 0; i < 100; i++ {
		ts := c.Tick()
		require.Greater(t, ts, last)
		last = ts
	}
}

func TestObserveAdvancesPastIncoming(t *testing.T) {
	c := New()
	c.Tick()
	c.Tick() // local ts = 2

	got := c.Observe(10)
	require.Equal(t, int64(11), got)
	require.Equal(t, int64(11), c.Read())
}

func TestObserveNeverGoesBackwards(t *testing.T) {
	c := New()
	c.Observe(5) // ts = 6
	got := c.Observe(1)
	require.Equal(t, int64(7), got, "an older incoming timestamp must still advance, never rewind, the clock")
}

func TestConcurrentTicksAreUnique(t *testing.T) {
	c := New()
	const n = 500
	seen := make(chan int64, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seen <- c.Tick()
		}()
	}
	wg.Wait()
	close(seen)

	values := make(map[int64]bool)
	for v := range seen {
		require.False(t, values[v], "duplicate timestamp %d under concurrent Tick", v)
		values[v] = true
	}
	require.Len(t, values, n)
}
