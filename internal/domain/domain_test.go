package domain

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew verifies allocation size and the initial alive state
func TestNew(t *testing.T) {
	t.Run("bound 10 has nine positions", func(t *testing.T) {
		d, err := New(10)
		require.NoError(t, err)

		assert.Equal(t, 9, d.Len())
		assert.Equal(t, 10, d.Bound())
		for i := 0; i < d.Len(); i++ {
			assert.Equal(t, int64(i+2), d.Value(i))
			assert.True(t, d.Alive(i))
		}
	})

	t.Run("bound 2 has a single position", func(t *testing.T) {
		d, err := New(2)
		require.NoError(t, err)

		assert.Equal(t, 1, d.Len())
		assert.Equal(t, []int{2}, d.Primes())
	})

	t.Run("bounds below 2 are rejected", func(t *testing.T) {
		for _, n := range []int{1, 0, -5} {
			d, err := New(n)
			assert.Nil(t, d)
			assert.ErrorIs(t, err, ErrInvalidBound)
		}
	})
}

// TestEliminate verifies elimination and its idempotence
func TestEliminate(t *testing.T) {
	d, err := New(10)
	require.NoError(t, err)

	d.Eliminate(2) // 4
	assert.False(t, d.Alive(2))
	assert.Equal(t, Sentinel, d.Value(2))

	before := d.Snapshot()
	d.Eliminate(2)
	assert.Equal(t, before, d.Snapshot(), "eliminating twice must be a no-op")

	// Neighbours are untouched
	assert.True(t, d.Alive(1))
	assert.True(t, d.Alive(3))
}

// TestPrimesAndIsPrime checks the read side used by the report
func TestPrimesAndIsPrime(t *testing.T) {
	d, err := New(10)
	require.NoError(t, err)

	for _, v := range []int{4, 6, 8, 9, 10} {
		d.Eliminate(v - 2)
	}

	assert.Equal(t, []int{2, 3, 5, 7}, d.Primes())

	assert.True(t, d.IsPrime(7))
	assert.False(t, d.IsPrime(9))
	assert.False(t, d.IsPrime(10))

	// Out of range values are never prime
	assert.False(t, d.IsPrime(1))
	assert.False(t, d.IsPrime(11))
	assert.False(t, d.IsPrime(-3))
}

// TestSnapshotIsCopy ensures a snapshot is detached from the domain
func TestSnapshotIsCopy(t *testing.T) {
	d, err := New(5)
	require.NoError(t, err)

	snap := d.Snapshot()
	snap[0] = 99

	assert.Equal(t, int64(2), d.Value(0))
	assert.Equal(t, []int64{2, 3, 4, 5}, d.Snapshot())
}

// TestConcurrentReadWrite exercises lock-free reads racing a writer.
// Run with -race: every access goes through an atomic.
func TestConcurrentReadWrite(t *testing.T) {
	d, err := New(1000)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < d.Len(); i++ {
				v := d.Value(i)
				if v != Sentinel && v != int64(i+2) {
					t.Errorf("position %d holds unexpected value %d", i, v)
				}
			}
		}()
	}

	for i := 0; i < d.Len(); i += 2 {
		d.Eliminate(i)
	}
	wg.Wait()

	for i := 0; i < d.Len(); i++ {
		assert.Equal(t, i%2 == 1, d.Alive(i))
	}
}
