package cli

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/agbru/numint/internal/orchestration"
	"github.com/agbru/numint/internal/quadrature"
)

var finished = time.Date(2026, 10, 19, 14, 3, 7, 512034871, time.Local)

func TestFormatResultBlock(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		res  orchestration.RunResult
		want string
	}{
		{
			name: "sequential",
			res: orchestration.RunResult{
				Value:     1.0000000000000002,
				Intervals: 1_000_000_000,
				Elapsed:   3141592653 * time.Nanosecond,
				Finished:  finished,
			},
			want: "The result = 1.0000000000\n" +
				"Number of intervals = 1000000000\n" +
				"2026-10-19T14:03:07.512034871\n" +
				"Elapsed time = 3.1415927 seconds\n" +
				"----------\n",
		},
		{
			name: "parallel",
			res: orchestration.RunResult{
				Value:     0.99999999999,
				Intervals: 1_000_000_000,
				Threads:   4,
				Elapsed:   250 * time.Millisecond,
				Finished:  finished,
			},
			want: "The result = 1.0000000000\n" +
				"Number of intervals = 1000000000\n" +
				"Number of threads = 4\n" +
				"2026-10-19T14:03:07.512034871\n" +
				"Elapsed time = 0.2500000 seconds\n" +
				"----------\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatResultBlock(tt.res); got != tt.want {
				t.Errorf("FormatResultBlock() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestCLIResultPresenter_PresentResult(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	res := orchestration.RunResult{Value: 0.5, Intervals: 10, Threads: 2, Finished: finished}
	CLIResultPresenter{}.PresentResult(res, &buf)
	if buf.String() != FormatResultBlock(res) {
		t.Errorf("PresentResult wrote %q", buf.String())
	}
}

func TestFormatWorkerLine(t *testing.T) {
	t.Parallel()
	got := FormatWorkerLine(quadrature.PartialResult{WorkerID: 3, Value: 0.29289321881345, CPUTime: 1.23456})
	want := "Thread 3 partial result = 0.29289321881345 (Processor time used = 1.235)\n"
	if got != want {
		t.Errorf("FormatWorkerLine() = %q, want %q", got, want)
	}
}

func TestWorkerLineReporter_ConcurrentLinesStayWhole(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	reporter := NewWorkerLineReporter(&buf)

	const workers = 32
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			reporter.ReportPartial(quadrature.PartialResult{WorkerID: id, Value: float64(id) / 100, CPUTime: 0.001})
		}(i)
	}
	wg.Wait()

	line := regexp.MustCompile(`^Thread (\d+) partial result = \d+\.\d{14} \(Processor time used = \d+\.\d{3}\)$`)
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != workers {
		t.Fatalf("got %d lines, want %d", len(lines), workers)
	}
	seen := make(map[string]bool)
	for _, l := range lines {
		m := line.FindStringSubmatch(l)
		if m == nil {
			t.Fatalf("malformed line %q", l)
		}
		seen[m[1]] = true
	}
	for i := 0; i < workers; i++ {
		if !seen[fmt.Sprint(i)] {
			t.Errorf("missing line for worker %d", i)
		}
	}
}
