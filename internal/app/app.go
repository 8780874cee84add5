package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"path/filepath"

	"github.com/agbru/numint/internal/config"
	apperrors "github.com/agbru/numint/internal/errors"
	"github.com/agbru/numint/internal/logging"
	"github.com/agbru/numint/internal/orchestration"
	"github.com/agbru/numint/internal/quadrature"
	"github.com/agbru/numint/internal/ui"
)

// Application represents one numint process.
type Application struct {
	Config     config.AppConfig
	Integrator orchestration.Integrator
	Problem    quadrature.Problem
	Logger     logging.Logger
	ErrWriter  io.Writer

	mode config.Mode
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithMode selects the sequential or the parallel driver.
func WithMode(m config.Mode) AppOption {
	return func(a *Application) { a.mode = m }
}

// WithProblem replaces the default problem.
func WithProblem(p quadrature.Problem) AppOption {
	return func(a *Application) { a.Problem = p }
}

// WithIntegrator replaces the midpoint cosine rule.
func WithIntegrator(i orchestration.Integrator) AppOption {
	return func(a *Application) { a.Integrator = i }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application by parsing command-line arguments. args[0]
// is the program name.
//
// Returns flag.ErrHelp when help was requested, and a ConfigError when the
// arguments are invalid; in both cases the message has already been written
// to errWriter.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{
		ErrWriter: errWriter,
		Problem:   quadrature.DefaultProblem,
		mode:      config.ModeSequential,
	}
	for _, opt := range opts {
		opt(app)
	}
	if app.Integrator == nil {
		app.Integrator = quadrature.Cosine
	}
	if app.Logger == nil {
		app.Logger = logging.NewLogger(errWriter, "numint")
	}

	programName := "numint"
	var cmdArgs []string
	if len(args) > 0 {
		programName = filepath.Base(args[0])
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, app.mode)
	if err != nil {
		return nil, err
	}
	app.Config = cfg
	return app, nil
}

// Run executes the configured driver and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if level, err := logging.ParseLevel(a.Config.LogLevel); err == nil {
		logging.SetLevel(level)
	}
	ui.InitTheme(a.Config.NoColor)

	tp, shutdown, err := newTracerProvider(a.Config.Trace, a.ErrWriter)
	if err != nil {
		a.Logger.Error("tracing setup failed", err)
		return apperrors.ExitErrorGeneric
	}
	code := a.runIntegrate(ctx, tp, out)
	if err := shutdown(context.Background()); err != nil {
		a.Logger.Error("trace export failed", err)
	}
	return code
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
