// Package runstats measures wall time and memory for a single solver run.
//
// Memory is reported as the number of heap bytes allocated between Start and
// Stop (runtime.MemStats.TotalAlloc delta), an upper bound on the peak live
// heap growth of a single-goroutine run.
package runstats

import (
	"runtime"
	"time"
)

// Stats is the outcome of one measured run.
type Stats struct {
	Elapsed         time.Duration
	PeakMemoryBytes uint64
}

// Meter records a start point. Use Start to obtain one.
type Meter struct {
	began      time.Time
	allocStart uint64
}

// Start samples the allocator and the clock.
func Start() *Meter {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return &Meter{began: time.Now(), allocStart: ms.TotalAlloc}
}

// Stop returns the elapsed time and bytes allocated since Start.
// The clock is read before the allocator so ReadMemStats is not timed.
func (m *Meter) Stop() Stats {
	elapsed := time.Since(m.began)
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	var used uint64
	if ms.TotalAlloc > m.allocStart {
		used = ms.TotalAlloc - m.allocStart
	}
	return Stats{Elapsed: elapsed, PeakMemoryBytes: used}
}
