package main

import (
	"context"
	"fmt"
	"github.com/charmbracelet/lipgloss"
	"github.com/saylorsolutions/diag/capability"
	"github.com/saylorsolutions/diag/debug"
	"github.com/saylorsolutions/diag/internal/cli"
	"github.com/saylorsolutions/diag/internal/loader"
	flag "github.com/spf13/pflag"
	"log/slog"
	"path/filepath"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	faintStyle  = lipgloss.NewStyle().Faint(true)
	stateStyles = map[capability.State]lipgloss.Style{
		capability.Implicit:   faintStyle,
		capability.Defaulted:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		capability.Forbidden:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		capability.Suppressed: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	}
)

func modeCommand(flags *flag.FlagSet, printer *cli.Printer) error {
	if err := cli.NoArgs(flags.Args()); err != nil {
		return err
	}
	mode := "stripped"
	if debug.Enabled {
		mode = "instrumented"
	}
	cfg := debug.ReporterConfig()
	printer.Printf("%s %s\n", printer.Style(headerStyle, "mode:     "), mode)
	printer.Printf("%s %d\n", printer.Style(headerStyle, "exit code:"), cfg.ExitCode)
	printer.Printf("%s %t\n", printer.Style(headerStyle, "traceback:"), cfg.Traceback)
	return nil
}

func capsCommand(ctx context.Context, logger *slog.Logger) cli.CommandFunc {
	return func(flags *flag.FlagSet, printer *cli.Printer) error {
		if err := cli.RequireArgs(flags.Args(), 1); err != nil {
			return err
		}
		cfg := loader.Config{
			Tags:   cli.StringSlice(flags, "tags"),
			Tests:  cli.Bool(flags, "tests"),
			Logger: logger,
		}
		pkgs, err := loader.Load(ctx, cfg, flags.Args()...)
		if err != nil {
			if len(pkgs) == 0 {
				return err
			}
			logger.Warn("Some packages could not be loaded, types may be missing", "error", err)
		}
		types := loader.Types(pkgs, cli.Bool(flags, "all"))
		if len(types) == 0 {
			logger.Info("No matching types found")
			return nil
		}
		var lastPkg string
		for _, t := range types {
			if t.Package != lastPkg {
				if len(lastPkg) > 0 {
					printer.Println()
				}
				printer.Println(printer.Style(headerStyle, t.Package))
				lastPkg = t.Package
			}
			printType(printer, t)
		}
		return nil
	}
}

func printType(printer *cli.Printer, t loader.Type) {
	location := ""
	if t.Pos.IsValid() {
		location = fmt.Sprintf(" (%s:%d)", filepath.Base(t.Pos.Filename), t.Pos.Line)
	}
	printer.Printf("  %s%s\n", t.Name, printer.Style(faintStyle, location))
	for _, op := range capability.AllOps {
		entry := t.Matrix.Entry(op)
		state := fmt.Sprintf("%-10s", entry.State)
		printer.Printf("    %-12s %s %s\n", op, printer.Style(stateStyles[entry.State], state), entry.Explain(op))
	}
}
