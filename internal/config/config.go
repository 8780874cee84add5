// Package config defines the application configuration and its parsing from
// command-line flags and NUMINT_ environment variables.
package config

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	apperrors "github.com/agbru/numint/internal/errors"
	"github.com/agbru/numint/internal/logging"
)

// EnvPrefix is the prefix of every environment variable read by the
// application.
const EnvPrefix = "NUMINT_"

// Mode selects which driver runs.
type Mode int

const (
	// ModeSequential integrates the whole problem in one call.
	ModeSequential Mode = iota
	// ModeParallel splits the problem across a fixed number of workers.
	ModeParallel
)

// String returns the mode name used in logs.
func (m Mode) String() string {
	switch m {
	case ModeSequential:
		return "sequential"
	case ModeParallel:
		return "parallel"
	default:
		return "mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// MissingThreadsMessage is reported when the worker count is absent or is not
// an integer.
const MissingThreadsMessage = "Number of threads must be passed as an argument"

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// Mode selects the sequential or the parallel driver.
	Mode Mode
	// Threads is the worker count of the parallel driver; zero in sequential mode.
	Threads int
	// Details writes a per-worker table and resource usage to the error stream.
	Details bool
	// Spinner shows a progress spinner on the error stream while computing.
	Spinner bool
	// Metrics dumps the run's Prometheus metrics to the error stream.
	Metrics bool
	// Pin restricts each worker thread to one CPU core.
	Pin bool
	// LogLevel is the minimum level of diagnostic log entries.
	LogLevel string
	// NoColor disables ANSI colors in diagnostics.
	NoColor bool
	// Trace exports the run's OpenTelemetry spans to the error stream.
	Trace bool
}

// ParseConfig parses the command-line arguments for the given mode.
//
// The parallel driver takes exactly one positional argument, the worker count.
// A missing or non-integer argument, or a count that is not positive, is a
// configuration error; the message is written to errWriter and nothing is
// computed. Flags must precede the positional argument.
//
// Parameters:
//   - programName: The name shown in usage output.
//   - args: The arguments without the program name.
//   - errWriter: The writer for usage and error messages.
//   - mode: The driver the configuration is for.
//
// Returns:
//   - AppConfig: The parsed configuration.
//   - error: flag.ErrHelp when help was requested, a ConfigError otherwise.
func ParseConfig(programName string, args []string, errWriter io.Writer, mode Mode) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)
	fs.Usage = func() {
		if mode == ModeParallel {
			fmt.Fprintf(errWriter, "Usage: %s [flags] <threads>\n\n", programName)
		} else {
			fmt.Fprintf(errWriter, "Usage: %s [flags]\n\n", programName)
		}
		fmt.Fprintf(errWriter, "Integrates cos(x) over [0, pi/2] with the midpoint rule.\n\nFlags:\n")
		fs.PrintDefaults()
	}

	cfg := AppConfig{Mode: mode}
	fs.BoolVar(&cfg.Details, "details", false, "Write per-worker details and resource usage to stderr.")
	fs.BoolVar(&cfg.Details, "d", false, "Shorthand for --details.")
	fs.BoolVar(&cfg.Spinner, "spinner", false, "Show a progress spinner on stderr while computing.")
	fs.BoolVar(&cfg.Metrics, "metrics", false, "Dump Prometheus metrics for the run to stderr.")
	fs.StringVar(&cfg.LogLevel, "log-level", "warn", "Minimum log level (debug, info, warn, error).")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored diagnostics.")
	fs.BoolVar(&cfg.Trace, "trace", false, "Export run and worker trace spans to stderr.")
	if mode == ModeParallel {
		fs.BoolVar(&cfg.Pin, "pin", false, "Pin each worker thread to one CPU core.")
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return cfg, err
		}
		return cfg, apperrors.NewConfigError("%v", err)
	}

	applyEnvOverrides(&cfg, fs)

	if mode == ModeParallel {
		threads, err := parseThreads(fs.Args())
		if err != nil {
			fmt.Fprintln(errWriter, err)
			return cfg, err
		}
		cfg.Threads = threads
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(errWriter, err)
		return cfg, err
	}
	return cfg, nil
}

// parseThreads reads the worker count from the positional arguments.
func parseThreads(positional []string) (int, error) {
	if len(positional) == 0 {
		return 0, apperrors.NewConfigError(MissingThreadsMessage)
	}
	threads, err := strconv.Atoi(strings.TrimSpace(positional[0]))
	if err != nil {
		return 0, apperrors.NewConfigError(MissingThreadsMessage)
	}
	return threads, nil
}

// Validate checks the configuration for semantic errors.
func (c AppConfig) Validate() error {
	if c.Mode == ModeParallel && c.Threads <= 0 {
		return apperrors.NewConfigError("%v", apperrors.ValidationError{
			Field:   "threads",
			Message: fmt.Sprintf("must be a positive integer, got %d", c.Threads),
		})
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return apperrors.NewConfigError("%v", apperrors.ValidationError{
			Field:   "log-level",
			Message: err.Error(),
		})
	}
	return nil
}
