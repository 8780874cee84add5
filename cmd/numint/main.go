// Command numint integrates cos(x) over [0, pi/2] with the midpoint rule on
// a single thread.
package main

import (
	"context"
	"os"

	"github.com/agbru/numint/internal/app"
	"github.com/agbru/numint/internal/config"
	apperrors "github.com/agbru/numint/internal/errors"
	"github.com/agbru/numint/internal/logging"
)

func main() {
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		return
	}

	application, err := app.New(os.Args, os.Stderr, app.WithLogger(logging.NewDefaultLogger()), app.WithMode(config.ModeSequential))
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(apperrors.ExitSuccess)
		}
		os.Exit(apperrors.ExitCode(err))
	}

	os.Exit(application.Run(context.Background(), os.Stdout))
}
