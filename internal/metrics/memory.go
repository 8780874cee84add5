package metrics

import (
	"runtime"
	"time"
)

// MemorySnapshot is a reading of the Go runtime's allocation counters.
type MemorySnapshot struct {
	HeapAlloc    uint64
	Sys          uint64
	TotalAlloc   uint64
	Mallocs      uint64
	NumGC        uint32
	PauseTotalNs uint64
}

// MemoryDelta is the allocation activity between two snapshots, typically
// the start and the end of one integration run.
type MemoryDelta struct {
	// Allocated is the number of bytes allocated during the window.
	Allocated uint64
	// Mallocs is the number of heap objects allocated during the window.
	Mallocs uint64
	// GCCycles is the number of collections completed during the window.
	GCCycles uint32
	// GCPause is the total stop-the-world pause during the window.
	GCPause time.Duration
	// HeapInUse is the live heap at the end of the window.
	HeapInUse uint64
	// Reserved is the memory obtained from the OS at the end of the window.
	Reserved uint64
}

// MemoryCollector brackets a run with runtime memory readings.
type MemoryCollector struct {
	read  func(*runtime.MemStats)
	start MemorySnapshot
}

// NewMemoryCollector creates a collector reading the live runtime.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{read: runtime.ReadMemStats}
}

// Snapshot reads the current counters.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	mc.read(&m)
	return MemorySnapshot{
		HeapAlloc:    m.HeapAlloc,
		Sys:          m.Sys,
		TotalAlloc:   m.TotalAlloc,
		Mallocs:      m.Mallocs,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
	}
}

// Begin records the start of the measured window.
func (mc *MemoryCollector) Begin() {
	mc.start = mc.Snapshot()
}

// End returns the activity since Begin.
func (mc *MemoryCollector) End() MemoryDelta {
	return mc.Snapshot().Since(mc.start)
}

// Since returns the activity between before and s. Cumulative counters that
// appear to go backwards yield zero.
func (s MemorySnapshot) Since(before MemorySnapshot) MemoryDelta {
	return MemoryDelta{
		Allocated: sub(s.TotalAlloc, before.TotalAlloc),
		Mallocs:   sub(s.Mallocs, before.Mallocs),
		GCCycles:  uint32(sub(uint64(s.NumGC), uint64(before.NumGC))),
		GCPause:   time.Duration(sub(s.PauseTotalNs, before.PauseTotalNs)),
		HeapInUse: s.HeapAlloc,
		Reserved:  s.Sys,
	}
}

func sub(after, before uint64) uint64 {
	if after < before {
		return 0
	}
	return after - before
}
