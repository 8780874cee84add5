// Package orchestration runs the midpoint-rule kernel either once over the
// whole problem or across a fixed set of worker threads, and aggregates the
// partial results. It decouples the drivers from presentation via the
// WorkerReporter and ResultPresenter interfaces.
package orchestration
