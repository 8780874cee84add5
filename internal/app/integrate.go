package app

import (
	"context"
	"io"

	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/numint/internal/cli"
	"github.com/agbru/numint/internal/config"
	apperrors "github.com/agbru/numint/internal/errors"
	"github.com/agbru/numint/internal/logging"
	"github.com/agbru/numint/internal/metrics"
	"github.com/agbru/numint/internal/orchestration"
	"github.com/agbru/numint/internal/sysmon"
)

// runIntegrate runs the driver, prints the result block and the optional
// diagnostics. Worker faults are logged by the orchestrator and do not change
// the exit code.
func (a *Application) runIntegrate(ctx context.Context, tp trace.TracerProvider, out io.Writer) int {
	var runMetrics *metrics.RunMetrics
	if a.Config.Metrics {
		runMetrics = metrics.NewRunMetrics()
	}
	measure := a.Config.Details || a.Config.Metrics

	a.Logger.Debug("run configured",
		logging.String("mode", a.Config.Mode.String()),
		logging.String("rule", a.Integrator.Name()),
		logging.Int("threads", a.Config.Threads))

	var memory *metrics.MemoryCollector
	var window *sysmon.Window
	if measure {
		memory = metrics.NewMemoryCollector()
		window = sysmon.Start()
		memory.Begin()
	}

	stopSpinner := cli.StartSpinner(a.Config.Spinner, a.ErrWriter, "Integrating...")
	var res orchestration.RunResult
	switch a.Config.Mode {
	case config.ModeParallel:
		reporter := orchestration.MultiReporter(cli.NewWorkerLineReporter(out), metricsReporter(runMetrics))
		res = orchestration.ExecuteParallel(ctx, a.Integrator, a.Problem, a.Config.Threads, orchestration.ParallelOptions{
			Reporter:       reporter,
			Logger:         a.Logger,
			Pin:            a.Config.Pin,
			TracerProvider: tp,
		})
	default:
		res = orchestration.ExecuteSequential(ctx, a.Integrator, a.Problem, orchestration.SequentialOptions{
			Logger:         a.Logger,
			TracerProvider: tp,
		})
	}
	stopSpinner()

	var usage metrics.ResourceUsage
	var sys sysmon.Stats
	if measure {
		usage.Memory = memory.End()
		var err error
		if sys, err = window.Stop(); err != nil {
			a.Logger.Debug("system sample incomplete", logging.Err(err))
		}
		usage.SystemCPUPercent = sys.CPUPercent
		usage.SystemMemPercent = sys.MemPercent
		a.Logger.Debug("run resources",
			logging.Uint64("allocated_bytes", usage.Memory.Allocated),
			logging.Uint64("mallocs", usage.Memory.Mallocs),
			logging.Float64("system_cpu_percent", sys.CPUPercent))
	}

	cli.CLIResultPresenter{}.PresentResult(res, out)

	if a.Config.Details {
		cli.DisplayDetails(res, usage.Memory, sys, a.ErrWriter)
	}

	if runMetrics != nil {
		runMetrics.ObserveRun(metrics.RunSummary{
			Value:             res.Value,
			Intervals:         res.Intervals,
			Threads:           res.Threads,
			Faults:            len(res.Faults),
			ElapsedSeconds:    res.Elapsed.Seconds(),
			ProcessCPUSeconds: res.ProcessCPU.Seconds(),
			Resources:         usage,
		})
		if err := runMetrics.WriteText(a.ErrWriter); err != nil {
			a.Logger.Error("metrics dump failed", err)
			return apperrors.ExitErrorGeneric
		}
	}

	if n := len(res.Faults); n > 0 {
		a.Logger.Debug("run finished with worker faults", logging.Int("faults", n))
	}
	return apperrors.ExitSuccess
}

// metricsReporter returns m as a worker reporter, or nil when m is nil.
func metricsReporter(m *metrics.RunMetrics) orchestration.WorkerReporter {
	if m == nil {
		return nil
	}
	return m
}
