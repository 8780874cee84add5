package metrics

import (
	"fmt"
	"io"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"

	"github.com/agbru/numint/internal/quadrature"
)

const namespace = "numint"

// RunMetrics holds the Prometheus metrics of a run. Each instance owns its
// registry, so several instances can coexist in one process.
type RunMetrics struct {
	registry *prometheus.Registry

	result        prometheus.Gauge
	intervals     prometheus.Gauge
	threads       prometheus.Gauge
	elapsed       prometheus.Gauge
	processCPU    prometheus.Gauge
	faults        prometheus.Counter
	workerPartial *prometheus.GaugeVec
	workerCPU     *prometheus.GaugeVec
	workersDone   prometheus.Counter
	allocated     prometheus.Gauge
	gcCycles      prometheus.Gauge
	systemCPU     prometheus.Gauge
	systemMemory  prometheus.Gauge
}

// NewRunMetrics creates the run metrics and registers them, together with the
// Go runtime collector, on a fresh registry.
func NewRunMetrics() *RunMetrics {
	m := &RunMetrics{
		registry: prometheus.NewRegistry(),
		result: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "result",
			Help:      "Aggregate value of the integral.",
		}),
		intervals: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "intervals",
			Help:      "Requested number of intervals.",
		}),
		threads: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "threads",
			Help:      "Number of worker threads, zero for a sequential run.",
		}),
		elapsed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "elapsed_seconds",
			Help:      "Wall-clock duration of the computation.",
		}),
		processCPU: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "process_cpu_seconds",
			Help:      "Process CPU time consumed by the computation.",
		}),
		faults: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "worker_faults_total",
			Help:      "Workers that faulted and contributed zero.",
		}),
		workerPartial: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "worker_partial",
			Help:      "Partial result of each worker.",
		}, []string{"worker"}),
		workerCPU: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "worker_cpu_seconds",
			Help:      "Thread CPU time used by each worker.",
		}, []string{"worker"}),
		workersDone: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "workers_completed_total",
			Help:      "Workers that reported a partial result.",
		}),
		allocated: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "run_allocated_bytes",
			Help:      "Bytes allocated by the process during the computation.",
		}),
		gcCycles: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "run_gc_cycles",
			Help:      "Garbage collections completed during the computation.",
		}),
		systemCPU: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "system_cpu_percent",
			Help:      "System-wide CPU busy share over the computation window.",
		}),
		systemMemory: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "system_memory_percent",
			Help:      "System-wide used memory share after the computation.",
		}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		m.result, m.intervals, m.threads, m.elapsed, m.processCPU,
		m.faults, m.workerPartial, m.workerCPU, m.workersDone,
		m.allocated, m.gcCycles, m.systemCPU, m.systemMemory,
	)
	return m
}

// ReportPartial records one worker's partial result. It is safe for
// concurrent use and lets RunMetrics act as a worker reporter.
func (m *RunMetrics) ReportPartial(p quadrature.PartialResult) {
	label := strconv.Itoa(p.WorkerID)
	m.workerPartial.WithLabelValues(label).Set(p.Value)
	m.workerCPU.WithLabelValues(label).Set(p.CPUTime)
	m.workersDone.Inc()
}

// RunSummary is the aggregate information recorded by ObserveRun.
type RunSummary struct {
	Value             float64
	Intervals         int
	Threads           int
	Faults            int
	ElapsedSeconds    float64
	ProcessCPUSeconds float64
	// Resources is the memory and system usage of the run window.
	Resources ResourceUsage
}

// ResourceUsage is the resource consumption of one run window.
type ResourceUsage struct {
	Memory           MemoryDelta
	SystemCPUPercent float64
	SystemMemPercent float64
}

// ObserveRun records the aggregate outcome of a run.
func (m *RunMetrics) ObserveRun(s RunSummary) {
	m.result.Set(s.Value)
	m.intervals.Set(float64(s.Intervals))
	m.threads.Set(float64(s.Threads))
	m.elapsed.Set(s.ElapsedSeconds)
	m.processCPU.Set(s.ProcessCPUSeconds)
	m.faults.Add(float64(s.Faults))
	m.allocated.Set(float64(s.Resources.Memory.Allocated))
	m.gcCycles.Set(float64(s.Resources.Memory.GCCycles))
	m.systemCPU.Set(s.Resources.SystemCPUPercent)
	m.systemMemory.Set(s.Resources.SystemMemPercent)
}

// Gather returns the current metric families, sorted by name.
func (m *RunMetrics) Gather() ([]*dto.MetricFamily, error) {
	return m.registry.Gather()
}

// WriteText writes every metric family in the Prometheus text exposition
// format.
func (m *RunMetrics) WriteText(w io.Writer) error {
	families, err := m.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("writing metric family %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
