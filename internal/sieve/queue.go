package sieve

import "sync"

// WorkQueue is the FIFO of idle slots shared by the coordinator and workers.
//
// mu guards the queue itself, every slot's status, and the domain writes the
// coordinator performs while harvesting. nonEmpty wakes a dequeuer blocked on
// an empty queue.
type WorkQueue struct {
	mu       sync.Mutex
	nonEmpty *sync.Cond
	slots    []*WorkSlot
}

// NewWorkQueue returns an empty queue
func NewWorkQueue() *WorkQueue {
	q := &WorkQueue{}
	q.nonEmpty = sync.NewCond(&q.mu)
	return q
}

// Enqueue appends slot to the tail and wakes a blocked dequeuer
func (q *WorkQueue) Enqueue(slot *WorkSlot) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.enqueueLocked(slot)
}

// Dequeue blocks until a slot is available, then removes and returns the head
func (q *WorkQueue) Dequeue() *WorkSlot {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dequeueLocked()
}

// Len returns the number of idle slots currently queued
func (q *WorkQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.slots)
}

// enqueueLocked requires q.mu.
// Signal is unconditional: it is a no-op without waiters and keeps a second
// dequeuer from sleeping on a non-empty queue.
func (q *WorkQueue) enqueueLocked(slot *WorkSlot) {
	q.slots = append(q.slots, slot)
	q.nonEmpty.Signal()
}

// dequeueLocked requires q.mu and may release it while waiting
func (q *WorkQueue) dequeueLocked() *WorkSlot {
	for len(q.slots) == 0 {
		q.nonEmpty.Wait()
	}
	slot := q.slots[0]
	q.slots[0] = nil
	q.slots = q.slots[1:]
	return slot
}
