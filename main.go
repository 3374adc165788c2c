// Package main provides the zombiemd CLI entrypoint.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"

	"github.com/lukemcguire/zombiemd/checker"
	"github.com/lukemcguire/zombiemd/config"
	"github.com/lukemcguire/zombiemd/logx"
	"github.com/lukemcguire/zombiemd/markdown"
	"github.com/lukemcguire/zombiemd/result"
	"github.com/lukemcguire/zombiemd/tui"
)

// exitInterrupted is returned when the user quits the TUI before the run completes.
const exitInterrupted = 130

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the CLI and returns the process exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Parse("zombiemd", args, stderr)
	if errors.Is(err, config.ErrHelp) {
		return 0
	}
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	format := resolveFormat(cfg, stdout)

	logOut := stderr
	if format == config.FormatTUI {
		logOut = io.Discard
	}
	logger, err := logx.New(logOut, cfg.LogLevel)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	targets, err := collectTargets(cfg, logger)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	c := checker.New(cfg.CheckerConfig(), nil, logger)
	if cfg.RespectRobots {
		targets, _ = c.FilterAllowed(ctx, targets)
	}

	var res *result.Result
	switch format {
	case config.FormatTUI:
		var interrupted bool
		res, interrupted, err = runTUI(ctx, c, targets, stdout)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		if interrupted {
			return exitInterrupted
		}
	case config.FormatJSON:
		res = c.Run(ctx, targets, nil)
		err = result.WriteJSON(stdout, res.Links)
	case config.FormatCSV:
		res = c.Run(ctx, targets, nil)
		err = result.WriteCSV(stdout, res.Links)
	default:
		res = c.Run(ctx, targets, func(link result.LinkResult) {
			result.PrintResult(stdout, link)
		})
		result.PrintDone(stdout, res)
	}
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if cfg.FailOnBroken && len(res.BrokenLinks()) > 0 {
		return 1
	}
	return 0
}

// resolveFormat settles "auto" and falls back to text when verbose logging
// would fight the TUI for the terminal.
func resolveFormat(cfg config.Config, stdout io.Writer) string {
	format := cfg.Format
	if format == config.FormatAuto {
		format = config.FormatText
		if f, ok := stdout.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			format = config.FormatTUI
		}
	}
	if format == config.FormatTUI && logx.IsVerbose(cfg.LogLevel) {
		format = config.FormatText
	}
	return format
}

// collectTargets extracts links from every input document into one
// deduplicated set. Strings that are not checkable URLs are logged and skipped.
func collectTargets(cfg config.Config, logger *pterm.Logger) (*checker.TargetSet, error) {
	base, err := cfg.Base()
	if err != nil {
		return nil, err
	}

	targets := checker.NewTargetSet(base)
	for _, path := range cfg.Files {
		links, err := markdown.ExtractFile(path)
		if err != nil {
			return nil, err
		}
		for _, raw := range links {
			if _, err := targets.Add(raw, path); err != nil {
				logger.Debug("skipping link", logger.Args("link", raw, "source", path, "reason", err))
			}
		}
	}
	return targets, nil
}

// runTUI drives the Bubble Tea progress view until the run finishes or the
// user quits.
func runTUI(ctx context.Context, c *checker.Checker, targets *checker.TargetSet, stdout io.Writer) (*result.Result, bool, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	progressCh := make(chan checker.CheckEvent, 100)
	model := tui.NewModel(ctx, cancel, c, targets, progressCh)
	program := tea.NewProgram(model, tea.WithOutput(stdout))

	finalModel, err := program.Run()
	if err != nil {
		return nil, false, fmt.Errorf("run tui: %w", err)
	}

	final, ok := finalModel.(tui.Model)
	if !ok || final.Interrupted() || final.GetResult() == nil {
		return nil, true, nil
	}
	return final.GetResult(), false, nil
}
