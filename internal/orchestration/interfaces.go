//go:generate mockgen -destination=mocks/mock_orchestration.go -package=mocks github.com/agbru/numint/internal/orchestration Integrator,WorkerReporter

package orchestration

import (
	"io"

	"github.com/agbru/numint/internal/quadrature"
)

// Integrator evaluates a quadrature rule over one contiguous range.
// Implementations must not share mutable state between calls, since the
// parallel driver invokes Integrate from several threads at once.
type Integrator interface {
	// Name identifies the rule in diagnostics.
	Name() string
	// Integrate returns the rule's sum over r.
	Integrate(r quadrature.Range) float64
}

// WorkerReporter receives each worker's partial result as soon as that worker
// finishes, before the barrier releases. Calls arrive concurrently from the
// worker threads in no particular order.
type WorkerReporter interface {
	ReportPartial(p quadrature.PartialResult)
}

// WorkerReporterFunc is a function adapter that implements WorkerReporter.
type WorkerReporterFunc func(p quadrature.PartialResult)

// ReportPartial calls the underlying function.
func (f WorkerReporterFunc) ReportPartial(p quadrature.PartialResult) {
	f(p)
}

// NullWorkerReporter discards partial results.
// Useful for testing.
type NullWorkerReporter struct{}

// ReportPartial does nothing.
func (NullWorkerReporter) ReportPartial(quadrature.PartialResult) {}

// MultiReporter forwards each partial result to every non-nil reporter, in
// argument order.
func MultiReporter(reporters ...WorkerReporter) WorkerReporter {
	active := make([]WorkerReporter, 0, len(reporters))
	for _, r := range reporters {
		if r != nil {
			active = append(active, r)
		}
	}
	switch len(active) {
	case 0:
		return NullWorkerReporter{}
	case 1:
		return active[0]
	}
	return WorkerReporterFunc(func(p quadrature.PartialResult) {
		for _, r := range active {
			r.ReportPartial(p)
		}
	})
}

// ResultPresenter renders the final result block of a run.
type ResultPresenter interface {
	PresentResult(res RunResult, out io.Writer)
}
