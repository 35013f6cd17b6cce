package domain

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// Sentinel marks a position whose value has been eliminated as composite.
const Sentinel int64 = 0

// ErrInvalidBound is returned when the sieve bound is below 2
var ErrInvalidBound = errors.New("sieve bound must be at least 2")

// Domain is the shared candidate array for a sieve run.
// Position i represents the integer i+2, so a domain for bound n has
// exactly n-1 positions.
//
// Each position is an atomic value. Readers never take a lock; the single
// writer (the coordinator) stores Sentinel while holding the work queue's
// mutex. A reader may observe a value that is about to be eliminated, which
// only leads to the same position being reported composite again.
type Domain struct {
	values []atomic.Int64 // Candidate values, Sentinel once eliminated
	bound  int            // Upper bound n, inclusive
}

// New allocates a domain for the integers 2..n with every position alive
func New(n int) (*Domain, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBound, n)
	}

	d := &Domain{
		values: make([]atomic.Int64, n-1),
		bound:  n,
	}
	for i := range d.values {
		d.values[i].Store(int64(i + 2))
	}
	return d, nil
}

// Len returns the number of positions
func (d *Domain) Len() int {
	return len(d.values)
}

// Bound returns the inclusive upper bound n
func (d *Domain) Bound() int {
	return d.bound
}

// Value returns the current value at position i
// The result is either i+2 or Sentinel.
func (d *Domain) Value(i int) int64 {
	return d.values[i].Load()
}

// Alive reports whether position i has not been eliminated
func (d *Domain) Alive(i int) bool {
	return d.values[i].Load() != Sentinel
}

// Eliminate marks position i as composite
// Eliminating an already eliminated position leaves the domain unchanged.
func (d *Domain) Eliminate(i int) {
	d.values[i].Store(Sentinel)
}

// Primes returns the surviving values in ascending order
func (d *Domain) Primes() []int {
	var primes []int
	for i := range d.values {
		if v := d.values[i].Load(); v != Sentinel {
			primes = append(primes, int(v))
		}
	}
	return primes
}

// IsPrime reports whether v survived the sieve
// Values outside [2, n] are never prime by this definition.
func (d *Domain) IsPrime(v int) bool {
	if v < 2 || v > d.bound {
		return false
	}
	return d.Alive(v - 2)
}

// Snapshot returns a copy of every position's value
func (d *Domain) Snapshot() []int64 {
	out := make([]int64, len(d.values))
	for i := range d.values {
		out[i] = d.values[i].Load()
	}
	return out
}
