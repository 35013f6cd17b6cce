package sieve

import "sync/atomic"

// Stats tracks scheduler counters for a run.
// Fields are updated with atomic operations from the coordinator and workers.
type Stats struct {
	Passes     uint64 // Divisor passes fully handed out
	Chunks     uint64 // Chunks dispatched to workers
	Scanned    uint64 // Positions examined by workers
	Found      uint64 // Multiples reported by workers
	Eliminated uint64 // Findings harvested into the domain, repeats included
	Stops      uint64 // Stop signals delivered
}

// StatsSnapshot is a point-in-time copy of Stats plus the run's totals
type StatsSnapshot struct {
	Passes      uint64
	TotalPasses uint64
	Chunks      uint64
	Scanned     uint64
	Found       uint64
	Eliminated  uint64
	Stops       uint64
}

// snapshot reads every counter atomically
func (s *Stats) snapshot(totalPasses int) StatsSnapshot {
	return StatsSnapshot{
		Passes:      atomic.LoadUint64(&s.Passes),
		TotalPasses: uint64(totalPasses),
		Chunks:      atomic.LoadUint64(&s.Chunks),
		Scanned:     atomic.LoadUint64(&s.Scanned),
		Found:       atomic.LoadUint64(&s.Found),
		Eliminated:  atomic.LoadUint64(&s.Eliminated),
		Stops:       atomic.LoadUint64(&s.Stops),
	}
}

// Percent returns the share of divisor passes handed out, 0 to 100.
// A run with no passes counts as complete.
func (s StatsSnapshot) Percent() float64 {
	if s.TotalPasses == 0 {
		return 100
	}
	return float64(s.Passes) * 100 / float64(s.TotalPasses)
}
