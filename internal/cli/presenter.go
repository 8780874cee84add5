package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/agbru/numint/internal/format"
	"github.com/agbru/numint/internal/orchestration"
	"github.com/agbru/numint/internal/quadrature"
)

// Separator closes every result block.
const Separator = "----------"

// CLIResultPresenter implements orchestration.ResultPresenter for the
// command line.
type CLIResultPresenter struct{}

// Verify interface compliance.
var _ orchestration.ResultPresenter = CLIResultPresenter{}

// PresentResult writes the result block of res to out.
func (CLIResultPresenter) PresentResult(res orchestration.RunResult, out io.Writer) {
	DisplayResult(res, out)
}

// FormatResultBlock renders the result block of a run. The thread count line
// is present only for parallel runs.
//
// Parameters:
//   - res: The finished run.
//
// Returns:
//   - string: The block, one value per line, ending with the separator.
func FormatResultBlock(res orchestration.RunResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The result = %s\n", format.FormatResult(res.Value))
	fmt.Fprintf(&b, "Number of intervals = %d\n", res.Intervals)
	if res.Parallel() {
		fmt.Fprintf(&b, "Number of threads = %d\n", res.Threads)
	}
	fmt.Fprintln(&b, format.FormatTimestamp(res.Finished))
	fmt.Fprintf(&b, "Elapsed time = %s seconds\n", format.FormatElapsedSeconds(res.Elapsed))
	fmt.Fprintln(&b, Separator)
	return b.String()
}

// DisplayResult writes the result block of res to out in a single write.
func DisplayResult(res orchestration.RunResult, out io.Writer) {
	_, _ = io.WriteString(out, FormatResultBlock(res))
}

// FormatWorkerLine renders the line a worker prints when it finishes.
func FormatWorkerLine(p quadrature.PartialResult) string {
	return fmt.Sprintf("Thread %d partial result = %s (Processor time used = %s)\n",
		p.WorkerID, format.FormatPartial(p.Value), format.FormatCPUSeconds(p.CPUTime))
}

// WorkerLineReporter prints one line per finished worker. It is safe for
// concurrent use; each line is written whole.
type WorkerLineReporter struct {
	mu  sync.Mutex
	out io.Writer
}

// Verify interface compliance.
var _ orchestration.WorkerReporter = (*WorkerLineReporter)(nil)

// NewWorkerLineReporter returns a reporter writing to out.
func NewWorkerLineReporter(out io.Writer) *WorkerLineReporter {
	return &WorkerLineReporter{out: out}
}

// ReportPartial writes the worker's line.
func (r *WorkerLineReporter) ReportPartial(p quadrature.PartialResult) {
	line := FormatWorkerLine(p)
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = io.WriteString(r.out, line)
}
