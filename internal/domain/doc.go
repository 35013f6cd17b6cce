// Package domain holds the candidate array shared by every goroutine in a
// sieve run.
//
// # Layout
//
// A Domain for bound n has n-1 positions. Position i starts out holding the
// integer i+2 and is overwritten with Sentinel once some divisor pass proves
// it composite:
//
//	position:  0  1  2  3  4  5  6  7  8
//	value:     2  3  0  5  0  7  0  0  0   (n = 10, after sieving)
//
// # Concurrency
//
// Workers read positions while the coordinator writes them. There is no lock
// on the array itself; every position is an atomic.Int64 so reads and writes
// are individually well defined. Correctness does not depend on a reader
// seeing the latest write:
//
//   - Elimination is idempotent and addressed by position, so the order in
//     which eliminations land does not matter.
//   - A stale "alive" read makes a worker report a composite that is already
//     known, which costs a redundant store and nothing else.
//   - A prime p is only divisible by itself among divisors 2..p, and scanning
//     skips the position whose value equals the divisor, so a prime can never
//     be reported.
//
// # Usage
//
//	d, err := domain.New(30)
//	if err != nil {
//	    return err
//	}
//	d.Eliminate(2) // 4 is composite
//	d.IsPrime(4)   // false
package domain
