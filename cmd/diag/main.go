// Command diag reports how the debug package is configured, and the capabilities of declared types.
package main

import (
	"context"
	"errors"
	"github.com/saylorsolutions/diag/internal/cli"
	"github.com/saylorsolutions/diag/internal/env"
	"io"
	"log/slog"
	"os"
)

func main() {
	logger := newLogger(os.Stderr)
	ctx := interruptContext(context.Background())
	app := newApp(ctx, logger)
	if err := app.Exec(os.Args[1:]); err != nil {
		if errors.Is(err, new(cli.UsageError)) {
			os.Exit(2)
		}
		logger.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

// newLogger writes text records to w at the level given by DIAG_LOG_LEVEL, or info.
func newLogger(w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(env.Val(env.Key("log_level"), "info"))); err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newApp(ctx context.Context, logger *slog.Logger) *cli.CommandSet {
	app := cli.NewCommandSet("diag", "Inspects debug instrumentation and type capabilities.")
	app.AddCommand("mode", "Prints whether debug checks are instrumented or stripped, and how failures are reported", "m").
		Usage("mode").
		Does(modeCommand)
	caps := app.AddCommand("caps", "Prints the resolved copy and move capabilities of struct types", "c").
		Usage("caps [--all] [--tags TAGS] [--tests] PATTERN...")
	caps.Flags().Bool("all", false, "Includes types without declarators or restrictions")
	caps.Flags().StringSlice("tags", nil, "Build tags used to load packages")
	caps.Flags().Bool("tests", false, "Includes types declared in test files")
	caps.Does(capsCommand(ctx, logger))
	return app
}
