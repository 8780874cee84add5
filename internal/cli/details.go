package cli

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/agbru/numint/internal/cpu"
	"github.com/agbru/numint/internal/format"
	"github.com/agbru/numint/internal/metrics"
	"github.com/agbru/numint/internal/orchestration"
	"github.com/agbru/numint/internal/sysmon"
	"github.com/agbru/numint/internal/ui"
)

// Detail section titles.
const (
	workersTitle   = "Workers"
	resourcesTitle = "Resources"
)

// DisplayDetails writes the per-worker table and the resource usage of a run
// to out. Faulted workers are marked in the status column.
//
// Parameters:
//   - res: The finished run.
//   - mem: The allocation activity of the run window.
//   - sys: The system-wide usage over the run window.
//   - out: The destination, normally the error stream.
func DisplayDetails(res orchestration.RunResult, mem metrics.MemoryDelta, sys sysmon.Stats, out io.Writer) {
	if res.Parallel() {
		fmt.Fprintln(out, ui.Heading(workersTitle))
		displayWorkerTable(res, out)
	}

	fmt.Fprintln(out, ui.Heading(resourcesTitle))
	fmt.Fprintf(out, "  Wall time:       %s%s%s\n", ui.ColorPrimary(), format.FormatExecutionDuration(res.Elapsed), ui.ColorReset())
	fmt.Fprintf(out, "  Process CPU:     %s%s%s\n", ui.ColorPrimary(), format.FormatExecutionDuration(res.ProcessCPU), ui.ColorReset())
	if res.Elapsed > 0 {
		fmt.Fprintf(out, "  CPU/wall ratio:  %s%.2f%s\n", ui.ColorYellow(), float64(res.ProcessCPU)/float64(res.Elapsed), ui.ColorReset())
	}
	DisplayMemoryStats(mem, out)
	fmt.Fprintf(out, "  System CPU:      %s%.1f%%%s over %s\n", ui.ColorInfo(), sys.CPUPercent, ui.ColorReset(), format.FormatExecutionDuration(sys.Window))
	fmt.Fprintf(out, "  System memory:   %s%.1f%%%s\n", ui.ColorInfo(), sys.MemPercent, ui.ColorReset())
}

// displayWorkerTable renders one row per worker.
func displayWorkerTable(res orchestration.RunResult, out io.Writer) {
	faulted := make(map[int]bool, len(res.Faults))
	for _, id := range res.FaultedWorkers() {
		faulted[id] = true
	}

	threadClock := cpu.ThreadTimeSupported()

	table := tablewriter.NewWriter(out)
	table.Header("Worker", "Lower", "Upper", "Intervals", "Width", "Partial", "CPU (s)", "Status")
	for i, p := range res.Partials {
		var lower, upper, width float64
		var intervals int
		if i < len(res.Ranges) {
			r := res.Ranges[i]
			lower, upper, width, intervals = r.Lower, r.Upper(), r.Width, r.Intervals
		}
		cpuCell := "n/a"
		if threadClock {
			cpuCell = format.FormatCPUSeconds(p.CPUTime)
		}
		status := ui.ColorGreen() + "ok" + ui.ColorReset()
		if faulted[i] {
			status = ui.ColorRed() + "fault" + ui.ColorReset()
		}
		_ = table.Append(
			fmt.Sprintf("%d", p.WorkerID),
			fmt.Sprintf("%.10f", lower),
			fmt.Sprintf("%.10f", upper),
			fmt.Sprintf("%d", intervals),
			fmt.Sprintf("%.3e", width),
			format.FormatPartial(p.Value),
			cpuCell,
			status,
		)
	}
	if err := table.Render(); err != nil {
		fmt.Fprintf(out, "%sError rendering worker table: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
	}
}

// DisplayMemoryStats shows the allocation activity of a run.
func DisplayMemoryStats(mem metrics.MemoryDelta, out io.Writer) {
	fmt.Fprintf(out, "  Allocated:       %s (%d objects)\n", format.FormatBytes(mem.Allocated), mem.Mallocs)
	fmt.Fprintf(out, "  Heap in use:     %s\n", format.FormatBytes(mem.HeapInUse))
	fmt.Fprintf(out, "  Reserved:        %s\n", format.FormatBytes(mem.Reserved))
	fmt.Fprintf(out, "  GC cycles:       %d\n", mem.GCCycles)
	fmt.Fprintf(out, "  GC pause total:  %s\n", format.FormatExecutionDuration(mem.GCPause))
}
