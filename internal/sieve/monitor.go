package sieve

import (
	"context"
	"log"
	"sync"
	"time"
)

// ProgressMonitor periodically logs the counters of a running pool.
// It only observes: it never interrupts or times out a run.
// Thread-safe: Last may be called while Start is running.
type ProgressMonitor struct {
	logf     func(format string, args ...any) // Output sink, log.Printf by default
	ctx      context.Context                  // Internal context for Stop
	cancel   context.CancelFunc               // Cancels ctx
	last     StatsSnapshot                    // Most recent snapshot reported
	interval time.Duration                    // Time between reports
	ticks    int                              // Reports emitted so far
	mu       sync.RWMutex                     // Protects last and ticks
	wg       sync.WaitGroup                   // Tracks the Start goroutine
}

// NewProgressMonitor creates a monitor that reports every interval.
//
// Example:
//
//	monitor := NewProgressMonitor(time.Second)
//	go monitor.Start(ctx, pool.Stats)
//	pool.Run()
//	monitor.Stop()
func NewProgressMonitor(interval time.Duration) *ProgressMonitor {
	ctx, cancel := context.WithCancel(context.Background())
	return &ProgressMonitor{
		logf:     log.Printf,
		ctx:      ctx,
		cancel:   cancel,
		interval: interval,
	}
}

// SetLogFunc replaces the output sink. Call before Start.
func (m *ProgressMonitor) SetLogFunc(logf func(format string, args ...any)) {
	m.logf = logf
}

// Start reports progress from provider on every tick.
// It blocks until ctx is canceled or Stop is called.
func (m *ProgressMonitor) Start(ctx context.Context, provider func() StatsSnapshot) {
	m.wg.Add(1)
	defer m.wg.Done()

	if ctx == nil {
		ctx = m.ctx
	}

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.report(provider())
		case <-ctx.Done():
			return
		case <-m.ctx.Done():
			return
		}
	}
}

// Stop cancels the monitor and waits for Start to return
func (m *ProgressMonitor) Stop() {
	m.cancel()
	m.wg.Wait()
}

// Last returns the most recent snapshot reported and how many reports were made
func (m *ProgressMonitor) Last() (StatsSnapshot, int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.last, m.ticks
}

func (m *ProgressMonitor) report(s StatsSnapshot) {
	m.mu.Lock()
	m.last = s
	m.ticks++
	m.mu.Unlock()

	m.logf("progress: pass %d/%d (%.1f%%), %d chunks, %d positions scanned, %d eliminations",
		s.Passes, s.TotalPasses, s.Percent(), s.Chunks, s.Scanned, s.Eliminated)
}
