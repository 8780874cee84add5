// Package cpu exposes the processor-level facilities the parallel driver
// needs: per-thread and per-process CPU clocks, and locking a worker to its
// own OS thread, optionally pinned to one core.
//
// Every facility degrades instead of failing: clocks read zero and pinning
// becomes a plain thread lock when the platform lacks support.
package cpu
