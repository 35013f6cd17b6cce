// Package sieve implements a parallel sieve of Eratosthenes driven by a
// single coordinator and a fixed pool of worker goroutines.
//
// # Overview
//
// The coordinator walks the divisor passes 2..floor(sqrt(n)). Each pass is
// split into fixed-size chunks of domain positions. Chunks are handed to
// whichever worker is idle, and a worker's findings are folded back into the
// domain only by the coordinator, just before that worker is given its next
// chunk.
//
// # Architecture
//
//	            ┌──────────────────────┐
//	            │     Coordinator      │
//	            │  dequeue → harvest   │
//	            │  → assign → signal   │
//	            └──────────┬───────────┘
//	                       │ WorkQueue (FIFO of idle slots,
//	                       │ one mutex, one cond)
//	      ┌────────────────┼────────────────┐
//	      │                │                │
//	┌─────┴─────┐    ┌─────┴─────┐    ┌─────┴─────┐
//	│ Worker 0  │    │ Worker 1  │    │ Worker N  │
//	│ WorkSlot  │    │ WorkSlot  │    │ WorkSlot  │
//	└───────────┘    └───────────┘    └───────────┘
//
// # Handoff protocol
//
// A worker's only way to get work is to register its slot in the WorkQueue
// and sleep on the slot's condition. The coordinator's only way to emit work
// is to dequeue a registered slot. Both conditions share the queue mutex, so
// at any instant exactly one side owns a slot:
//
//  1. Worker: lock, status = Idle, enqueue, wait while Idle
//  2. Coordinator: lock, dequeue (waits if empty), harvest found into the
//     domain, assign divisor and chunk, status = Assigned, signal, unlock
//  3. Worker: wakes, marks the assignment consumed, unlocks, scans
//  4. Back to 1
//
// When every pass has been handed out the coordinator dequeues once per
// worker, harvesting and delivering Stop each time, then joins the workers.
//
// # Concurrency notes
//
//   - The domain has a single writer, the coordinator, which writes only
//     with the queue mutex held.
//   - Workers read the domain without the mutex through per-position
//     atomics. A stale read only causes a redundant finding.
//   - Cancellation is cooperative via Stop; there are no timeouts. A worker
//     that never re-registers stalls the run.
//
// # Usage
//
//	d, res, err := sieve.Sieve(100, 4, 16)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(d.Primes(), res.Elapsed)
package sieve
