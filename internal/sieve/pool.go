package sieve

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dreamware/primesift/internal/domain"
)

// DefaultChunkSize is used when WithChunkSize is not given
const DefaultChunkSize = 64

// ErrInvalidOption is returned by NewPool for unusable settings
var ErrInvalidOption = errors.New("invalid pool option")

// Option configures a Pool
type Option func(*Pool)

// WithWorkers sets the number of worker goroutines
func WithWorkers(n int) Option {
	return func(p *Pool) { p.workers = n }
}

// WithChunkSize sets the number of positions per chunk
func WithChunkSize(n int) Option {
	return func(p *Pool) { p.chunkSize = n }
}

// WithRunID sets the identifier used in logs and the Result.
// A random ID is generated when unset.
func WithRunID(id uuid.UUID) Option {
	return func(p *Pool) { p.runID = id }
}

// Result describes a completed run
type Result struct {
	RunID   uuid.UUID     // Identifier of the run
	Stats   StatsSnapshot // Final counters
	Elapsed time.Duration // Wall time from first worker start to last join
}

// Pool runs one parallel sieve over a domain with a fixed set of workers.
// A Pool is single-use: Run sieves once and later calls return the same Result.
type Pool struct {
	domain    *domain.Domain
	queue     *WorkQueue
	slots     []*WorkSlot
	divisors  []int
	stats     *Stats
	runID     uuid.UUID
	workers   int
	chunkSize int

	wg     sync.WaitGroup
	once   sync.Once
	result Result
}

// NewPool validates the options and allocates one slot per worker.
// No goroutine is started until Run.
func NewPool(d *domain.Domain, opts ...Option) (*Pool, error) {
	if d == nil {
		return nil, fmt.Errorf("%w: domain is nil", ErrInvalidOption)
	}

	p := &Pool{
		domain:    d,
		workers:   1,
		chunkSize: DefaultChunkSize,
		stats:     &Stats{},
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.workers < 1 {
		return nil, fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidOption, p.workers)
	}
	if p.chunkSize < 1 {
		return nil, fmt.Errorf("%w: chunk size must be at least 1, got %d", ErrInvalidOption, p.chunkSize)
	}
	if p.runID == uuid.Nil {
		p.runID = uuid.New()
	}

	p.queue = NewWorkQueue()
	p.divisors = Divisors(d.Bound())

	// A chunk never holds more positions than the domain
	capacity := min(p.chunkSize, d.Len())
	p.slots = make([]*WorkSlot, p.workers)
	for i := range p.slots {
		p.slots[i] = newWorkSlot(i, capacity, &p.queue.mu)
	}

	return p, nil
}

// Run starts the workers, coordinates every divisor pass in the calling
// goroutine, and returns once every worker has exited. The domain is final
// when Run returns.
func (p *Pool) Run() Result {
	p.once.Do(func() {
		start := time.Now()
		log.Printf("run %s: sieving 2..%d with %d workers, chunk size %d, %d passes",
			p.runID, p.domain.Bound(), p.workers, p.chunkSize, len(p.divisors))

		for _, slot := range p.slots {
			p.wg.Add(1)
			go func(s *WorkSlot) {
				defer p.wg.Done()
				p.work(s)
			}(slot)
		}

		p.coordinate()
		p.wg.Wait()

		p.result = Result{
			RunID:   p.runID,
			Stats:   p.Stats(),
			Elapsed: time.Since(start),
		}
		log.Printf("run %s: finished in %v (%d chunks, %d eliminations)",
			p.runID, p.result.Elapsed, p.result.Stats.Chunks, p.result.Stats.Eliminated)
	})
	return p.result
}

// Stats returns the current counters. Safe to call while Run is in progress.
func (p *Pool) Stats() StatsSnapshot {
	return p.stats.snapshot(len(p.divisors))
}

// RunID returns the run identifier
func (p *Pool) RunID() uuid.UUID {
	return p.runID
}

// Sieve allocates a domain for bound n and sieves it with workers goroutines
// and chunkSize positions per chunk.
func Sieve(n, workers, chunkSize int) (*domain.Domain, Result, error) {
	d, err := domain.New(n)
	if err != nil {
		return nil, Result{}, err
	}

	p, err := NewPool(d, WithWorkers(workers), WithChunkSize(chunkSize))
	if err != nil {
		return nil, Result{}, err
	}

	return d, p.Run(), nil
}
