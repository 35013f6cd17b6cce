package sieve

import (
	"log"
	"sync/atomic"
)

// coordinate drives every divisor pass and then stops every worker.
//
// For each divisor the domain is split into chunks handed out in ascending
// order to whichever slot is at the head of the queue. A slot's findings
// from its previous chunk are harvested into the domain before it is
// reassigned, all while the queue mutex is held; this makes the coordinator
// the only writer of the domain.
//
// Chunks may complete out of order, so findings land in whatever order
// slots return. Elimination is idempotent and addressed by position, which
// makes the order irrelevant. A later pass may also read a value that an
// earlier pass has found but not yet harvested; it then reports a known
// composite again.
//
// There is no timeout: a worker that never re-registers stalls the run.
func (p *Pool) coordinate() {
	q := p.queue
	length := p.domain.Len()

	for _, k := range p.divisors {
		for low := 0; low < length; {
			c := chunkAt(low, length, p.chunkSize)

			q.mu.Lock()
			slot := q.dequeueLocked()
			p.harvest(slot)
			slot.assign(int64(k), c)
			slot.wake.Signal()
			q.mu.Unlock()

			atomic.AddUint64(&p.stats.Chunks, 1)
			low = c.High
		}
		atomic.AddUint64(&p.stats.Passes, 1)
	}

	p.drain()
}

// drain delivers Stop to every worker exactly once.
//
// Workers still scanning when the last chunk is handed out re-register
// afterwards, so the loop keeps dequeuing until it has seen one slot per
// worker rather than emptying the queue once. Each slot is harvested first;
// its final findings would otherwise be lost.
func (p *Pool) drain() {
	q := p.queue
	for stopped := 0; stopped < len(p.slots); stopped++ {
		q.mu.Lock()
		slot := q.dequeueLocked()
		p.harvest(slot)
		slot.status = StatusStop
		slot.wake.Signal()
		q.mu.Unlock()

		atomic.AddUint64(&p.stats.Stops, 1)
	}
	log.Printf("run %s: stop delivered to %d workers", p.runID, len(p.slots))
}

// harvest applies a slot's findings to the domain and empties them.
// The caller holds the queue mutex.
func (p *Pool) harvest(slot *WorkSlot) {
	for _, i := range slot.found {
		p.domain.Eliminate(i)
	}
	atomic.AddUint64(&p.stats.Eliminated, uint64(len(slot.found)))
	slot.found = slot.found[:0]
}
