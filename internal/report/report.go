// Package report renders the result of a finished sieve run.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/exp/slices"

	"github.com/dreamware/primesift/internal/domain"
)

// Summary is the outcome of a run in plain values
type Summary struct {
	Primes       []int // Surviving values, ascending
	Bound        int   // Sieve bound n
	Count        int   // len(Primes)
	BoundIsPrime bool  // Whether n itself survived
}

// Summarize reads a finalized domain
// The domain must not be modified while this runs.
func Summarize(d *domain.Domain) Summary {
	primes := d.Primes()
	_, found := slices.BinarySearch(primes, d.Bound())
	return Summary{
		Primes:       primes,
		Bound:        d.Bound(),
		Count:        len(primes),
		BoundIsPrime: found,
	}
}

// Write prints the primes on one line followed by a verdict on n:
//
//	Primes: 2 3 5 7
//	[10] is not a prime.
func Write(w io.Writer, d *domain.Domain) error {
	s := Summarize(d)
	bw := bufio.NewWriter(w)

	bw.WriteString("Primes:")
	for _, p := range s.Primes {
		bw.WriteByte(' ')
		bw.WriteString(strconv.Itoa(p))
	}
	bw.WriteByte('\n')

	verdict := "is not a prime"
	if s.BoundIsPrime {
		verdict = "is a prime"
	}
	fmt.Fprintf(bw, "[%d] %s.\n", s.Bound, verdict)

	return bw.Flush()
}
