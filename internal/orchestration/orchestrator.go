package orchestration

import (
	"context"
	"errors"
	"runtime/debug"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/numint/internal/cpu"
	apperrors "github.com/agbru/numint/internal/errors"
	"github.com/agbru/numint/internal/logging"
	"github.com/agbru/numint/internal/quadrature"
)

const tracerName = "github.com/agbru/numint/internal/orchestration"

// RunResult is the aggregate outcome of one run of either driver.
type RunResult struct {
	// Value is the aggregate integral.
	Value float64
	// Intervals is the requested total interval count of the problem.
	Intervals int
	// Threads is the worker count, or zero for a sequential run.
	Threads int
	// Partials holds one entry per worker, indexed by worker id.
	Partials []quadrature.PartialResult
	// Ranges holds the range assigned to each worker, indexed by worker id.
	Ranges []quadrature.Range
	// Faults lists the worker faults recovered during the run, in worker order.
	Faults []error
	// Elapsed is the wall-clock time of the computation.
	Elapsed time.Duration
	// ProcessCPU is the process CPU time consumed during the computation.
	ProcessCPU time.Duration
	// Finished is the local time at which the run completed.
	Finished time.Time
}

// Parallel reports whether the result came from the parallel driver.
func (r RunResult) Parallel() bool {
	return r.Threads > 0
}

// FaultedWorkers returns the ids of the workers that faulted, in worker order.
func (r RunResult) FaultedWorkers() []int {
	ids := make([]int, 0, len(r.Faults))
	for _, err := range r.Faults {
		var werr apperrors.WorkerError
		if errors.As(err, &werr) {
			ids = append(ids, werr.WorkerID)
		}
	}
	return ids
}

// SequentialOptions configures ExecuteSequential.
type SequentialOptions struct {
	// Logger receives debug diagnostics. Nil discards them.
	Logger logging.Logger
	// TracerProvider receives the run span. Nil uses the global provider.
	TracerProvider trace.TracerProvider
}

// ParallelOptions configures ExecuteParallel.
type ParallelOptions struct {
	// Reporter receives each partial result as its worker finishes.
	// Nil discards them.
	Reporter WorkerReporter
	// Logger records worker faults. Nil discards them.
	Logger logging.Logger
	// Pin restricts worker i to CPU core i modulo the core count.
	Pin bool
	// TracerProvider receives the run and worker spans. Nil uses the global
	// provider.
	TracerProvider trace.TracerProvider
}

// tracer returns the package tracer from tp, or from the global provider.
func tracer(tp trace.TracerProvider) trace.Tracer {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return tp.Tracer(tracerName)
}

// ExecuteSequential integrates the whole problem with a single call on the
// calling goroutine and times it with the monotonic clock.
//
// Parameters:
//   - ctx: Carries the trace span; the computation is never cancelled.
//   - integrator: The quadrature rule.
//   - problem: The problem to integrate.
//   - opts: Logging and tracing options.
//
// Returns:
//   - RunResult: The result with Threads set to zero.
func ExecuteSequential(ctx context.Context, integrator Integrator, problem quadrature.Problem, opts SequentialOptions) RunResult {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	_, span := tracer(opts.TracerProvider).Start(ctx, "orchestration.ExecuteSequential",
		trace.WithAttributes(
			attribute.String("rule", integrator.Name()),
			attribute.Int("intervals", problem.Intervals),
		))
	defer span.End()

	logger.Debug("sequential run starting", logging.Int("intervals", problem.Intervals))
	cpuStart := cpu.ProcessTime()
	startTime := time.Now()
	value := integrator.Integrate(problem.Range())
	elapsed := time.Since(startTime)

	res := RunResult{
		Value:      value,
		Intervals:  problem.Intervals,
		Elapsed:    elapsed,
		ProcessCPU: cpu.ProcessTime() - cpuStart,
		Finished:   time.Now(),
	}
	logger.Debug("sequential run finished", logging.Float64("elapsed_seconds", elapsed.Seconds()))
	return res
}

// workerSlot is the exclusively-owned result cell of one worker.
type workerSlot struct {
	partial quadrature.PartialResult
	err     error
}

// ExecuteParallel splits the problem into threads contiguous ranges and
// integrates each on its own OS thread.
//
// Every worker writes only its own slot; after all workers have finished the
// slots are summed in worker order, so the aggregate does not depend on the
// order in which workers complete. A worker that panics contributes zero, is
// logged, and never prevents the other workers from being aggregated.
//
// Parameters:
//   - ctx: Carries the trace spans; the computation is never cancelled.
//   - integrator: The quadrature rule, shared by all workers.
//   - problem: The problem to integrate.
//   - threads: The worker count. Must be positive.
//   - opts: Reporting, logging and pinning options.
//
// Returns:
//   - RunResult: The aggregate, with per-worker partials and faults.
func ExecuteParallel(ctx context.Context, integrator Integrator, problem quadrature.Problem, threads int, opts ParallelOptions) RunResult {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	reporter := opts.Reporter
	if reporter == nil {
		reporter = NullWorkerReporter{}
	}

	tr := tracer(opts.TracerProvider)
	ctx, span := tr.Start(ctx, "orchestration.ExecuteParallel",
		trace.WithAttributes(
			attribute.String("rule", integrator.Name()),
			attribute.Int("intervals", problem.Intervals),
			attribute.Int("threads", threads),
		))
	defer span.End()

	logger.Debug("parallel run starting",
		logging.Int("intervals", problem.Intervals), logging.Int("threads", threads))
	cpuStart := cpu.ProcessTime()
	startTime := time.Now()

	ranges := quadrature.Partition(problem, threads)
	slots := make([]workerSlot, threads)

	var g errgroup.Group
	for i, r := range ranges {
		idx, rng := i, r
		g.Go(func() error {
			slots[idx] = runWorker(ctx, tr, integrator, idx, rng, opts.Pin, reporter)
			return nil
		})
	}
	_ = g.Wait()

	res := RunResult{
		Intervals: problem.Intervals,
		Threads:   threads,
		Partials:  make([]quadrature.PartialResult, threads),
		Ranges:    ranges,
	}
	for i := range slots {
		if err := slots[i].err; err != nil {
			fields := []logging.Field{logging.Int("worker_id", i)}
			if werr, ok := err.(apperrors.WorkerError); ok {
				fields = append(fields, logging.String("stack", string(werr.Stack)))
			}
			logger.Error("worker failed", err, fields...)
			span.RecordError(err, trace.WithAttributes(attribute.Int("worker.id", i)))
			res.Faults = append(res.Faults, err)
		}
		res.Partials[i] = slots[i].partial
		res.Value += slots[i].partial.Value
	}
	res.Elapsed = time.Since(startTime)
	res.ProcessCPU = cpu.ProcessTime() - cpuStart
	res.Finished = time.Now()

	if len(res.Faults) > 0 {
		span.SetStatus(codes.Error, "worker faults recorded")
	}
	logger.Debug("parallel run finished",
		logging.Float64("elapsed_seconds", res.Elapsed.Seconds()),
		logging.Int("faults", len(res.Faults)))
	return res
}

// runWorker integrates one range on a locked OS thread, measures the thread's
// CPU time, and reports the partial result. A panic is converted into a
// WorkerError and the slot's value is left at zero.
func runWorker(ctx context.Context, tr trace.Tracer, integrator Integrator, id int, r quadrature.Range, pin bool, reporter WorkerReporter) (slot workerSlot) {
	unlock := cpu.LockWorker(id, pin)
	defer unlock()

	_, span := tr.Start(ctx, "orchestration.worker",
		trace.WithAttributes(
			attribute.Int("worker.id", id),
			attribute.Int("worker.intervals", r.Intervals),
			attribute.Float64("worker.lower", r.Lower),
		))
	defer span.End()

	defer func() {
		if rec := recover(); rec != nil {
			werr := apperrors.NewWorkerError(id, rec, debug.Stack())
			span.RecordError(werr)
			span.SetStatus(codes.Error, "worker panicked")
			slot = workerSlot{partial: quadrature.PartialResult{WorkerID: id}, err: werr}
		}
	}()

	cpuStart := cpu.ThreadTime()
	value := integrator.Integrate(r)
	cpuUsed := cpu.ThreadTime() - cpuStart

	slot.partial = quadrature.PartialResult{
		WorkerID: id,
		Value:    value,
		CPUTime:  cpuUsed.Seconds(),
	}
	reporter.ReportPartial(slot.partial)
	return slot
}
