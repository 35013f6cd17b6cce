package sieve

import "sync/atomic"

// work is the worker loop for one slot.
//
// Each iteration registers the slot as idle and sleeps on its wake condition
// until the coordinator assigns a chunk or delivers Stop. The assignment is
// marked consumed before the mutex is released, so a spurious or repeated
// wake sends the worker back to sleep instead of scanning twice. Scanning
// runs without the mutex; the coordinator does not touch the slot again
// until it is re-registered.
func (p *Pool) work(slot *WorkSlot) {
	q := p.queue
	for {
		q.mu.Lock()
		slot.status = StatusIdle
		q.enqueueLocked(slot)
		for slot.status == StatusIdle {
			slot.wake.Wait()
		}
		status := slot.status
		if status == StatusAssigned {
			slot.status = statusConsumed
		}
		q.mu.Unlock()

		if status == StatusStop {
			return
		}

		scanned := slot.scan(p.domain)
		atomic.AddUint64(&p.stats.Scanned, uint64(scanned))
		atomic.AddUint64(&p.stats.Found, uint64(len(slot.found)))
	}
}
