package sieve

import (
	"fmt"
	"sync"

	"github.com/dreamware/primesift/internal/domain"
)

// Status is the handoff state of a WorkSlot
type Status int

const (
	// statusNew is the state of a slot that has never registered
	statusNew Status = iota
	// StatusIdle means the slot is in the queue waiting for work
	StatusIdle
	// StatusAssigned means the coordinator has handed the slot a chunk
	StatusAssigned
	// statusConsumed means the worker picked up its assignment
	statusConsumed
	// StatusStop tells the worker to exit
	StatusStop
)

func (s Status) String() string {
	switch s {
	case statusNew:
		return "new"
	case StatusIdle:
		return "idle"
	case StatusAssigned:
		return "assigned"
	case statusConsumed:
		return "consumed"
	case StatusStop:
		return "stop"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// WorkSlot is the per-worker record used to hand a chunk to a worker and
// carry its findings back to the coordinator.
//
// A slot is owned by its worker while scanning and by the coordinator from
// the moment it is dequeued until it is signalled again. The wake condition
// shares the queue mutex, so status changes and the handoff are one critical
// section; the other fields need no lock of their own.
type WorkSlot struct {
	ID int // Worker index, stable for the pool's lifetime

	divisor int64      // Current divisor pass
	chunk   Chunk      // Assigned range
	found   []int      // Positions found to be multiples of divisor
	status  Status     // Handoff state, guarded by the queue mutex
	wake    *sync.Cond // Signalled by the coordinator on assign or stop
}

// newWorkSlot creates a slot whose wake condition is bound to mu.
// found is preallocated to capacity positions and never shrinks.
func newWorkSlot(id, capacity int, mu *sync.Mutex) *WorkSlot {
	return &WorkSlot{
		ID:    id,
		found: make([]int, 0, capacity),
		wake:  sync.NewCond(mu),
	}
}

// assign hands the slot a new divisor and chunk.
// The caller holds the queue mutex and has already harvested found.
func (s *WorkSlot) assign(divisor int64, c Chunk) {
	s.divisor = divisor
	s.chunk = c
	s.found = s.found[:0]
	s.status = StatusAssigned
}

// scan records every position in the assigned chunk whose value is a
// multiple of the divisor. The domain is only read.
// Returns the number of positions examined.
func (s *WorkSlot) scan(d *domain.Domain) int {
	for i := s.chunk.Low; i < s.chunk.High; i++ {
		v := d.Value(i)
		if v == domain.Sentinel || v == s.divisor {
			continue
		}
		if v%s.divisor == 0 {
			s.found = append(s.found, i)
		}
	}
	return s.chunk.Len()
}
