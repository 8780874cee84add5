// Package sysmon samples system-wide CPU and memory usage around a run.
package sysmon

import (
	"errors"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats is the system-wide usage over one measured window.
type Stats struct {
	// CPUPercent is the busy share of all CPUs since the window began, 0..100.
	CPUPercent float64
	// MemPercent is the used share of physical memory at the end, 0..100.
	MemPercent float64
	// MemUsed is the used physical memory at the end, in bytes.
	MemUsed uint64
	// Window is the wall-clock length of the window.
	Window time.Duration
}

// Samplers, replaced in tests.
var (
	cpuPercent    = cpu.Percent
	virtualMemory = mem.VirtualMemory
)

// Window measures system usage between Start and Stop.
type Window struct {
	began time.Time
}

// Start primes the CPU counters so that the percentage reported by Stop
// covers only the time since this call.
func Start() *Window {
	// With a zero interval gopsutil reports usage since its previous call.
	_, _ = cpuPercent(0, false)
	return &Window{began: time.Now()}
}

// Stop samples usage since Start. Readings that fail are left at zero and
// their errors are joined in the returned error.
func (w *Window) Stop() (Stats, error) {
	s := Stats{Window: time.Since(w.began)}
	var errs []error

	pcts, err := cpuPercent(0, false)
	switch {
	case err != nil:
		errs = append(errs, fmt.Errorf("cpu percent: %w", err))
	case len(pcts) > 0:
		s.CPUPercent = pcts[0]
	}

	vmem, err := virtualMemory()
	switch {
	case err != nil:
		errs = append(errs, fmt.Errorf("virtual memory: %w", err))
	case vmem != nil:
		s.MemPercent = vmem.UsedPercent
		s.MemUsed = vmem.Used
	}
	return s, errors.Join(errs...)
}
