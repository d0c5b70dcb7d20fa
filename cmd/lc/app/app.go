/*
Package app provides the application container for the line counter.
It wires configuration, discovery, the worker pool, progress reporting
and output formatting together and owns the run lifecycle.

Usage:

	application := app.New(cfg)
	defer application.Shutdown()

	if err := application.Run(path); err != nil {
	    // only configuration problems, unreadable roots and
	    // cancellation end up here; per-file failures never do
	}
*/
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/Peter-Juhasz/line-counter/internal/config"
	"github.com/Peter-Juhasz/line-counter/pkg/grouping"
	"github.com/Peter-Juhasz/line-counter/pkg/logger"
	"github.com/Peter-Juhasz/line-counter/pkg/output"
	"github.com/Peter-Juhasz/line-counter/pkg/pattern"
	"github.com/Peter-Juhasz/line-counter/pkg/progress"
	"github.com/Peter-Juhasz/line-counter/pkg/scan"
	"github.com/Peter-Juhasz/line-counter/pkg/tally"
	"github.com/Peter-Juhasz/line-counter/pkg/worker"
)

// App ties configuration, logging and the filesystem together and owns
// the lifecycle of a single counting run.
type App struct {
	config config.Config
	fs     afero.Fs
	log    logger.Logger

	stdout io.Writer
	stderr io.Writer

	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a new application instance backed by the OS filesystem
func New(cfg config.Config) *App {
	ctx, cancel := context.WithCancel(context.Background())

	a := &App{
		config: cfg,
		fs:     afero.NewOsFs(),
		stdout: os.Stdout,
		stderr: os.Stderr,
		ctx:    ctx,
		cancel: cancel,
	}

	a.log = logger.NewLogger(logger.Config{
		Verbosity: cfg.Verbose,
		Output:    a.stderr,
	})

	a.setupSignalHandling()

	a.log.WithFields(logger.Fields{
		"threads": cfg.Threads,
		"verbose": cfg.Verbose,
	}).Debug("Application ready")

	return a
}

// Run executes one complete scan and renders the summary. Files that
// vanish or fail mid-read are reported on the diagnostic stream and do
// not fail the run.
func (a *App) Run(root string) error {
	start := time.Now()

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("cannot resolve %s: %w", root, err)
	}

	matcher, err := pattern.New(a.config.Pattern, a.config.Excludes)
	if err != nil {
		return err
	}

	strategy, err := grouping.ParseStrategy(a.config.GroupBy)
	if err != nil {
		return err
	}

	keyFn, err := grouping.Resolve(strategy)
	if err != nil {
		return err
	}

	format, err := output.ParseFormat(a.config.Output)
	if err != nil {
		return err
	}

	a.log.WithFields(logger.Fields{
		"root":    absRoot,
		"pattern": matcher.Pattern(),
		"groupBy": string(strategy),
		"threads": a.config.Threads,
	}).Info("Starting run")

	discoverer := scan.NewDiscoverer(a.fs, matcher, a.log)
	discovered, err := discoverer.Discover(a.ctx, absRoot)
	if err != nil {
		return err
	}

	formatter := output.NewFormatter(output.Config{
		Format:     format,
		WithStats:  a.config.Stats,
		WithColors: a.useColors(),
	}, a.log)

	// The echo lines belong to the table presentation; json and yaml
	// documents carry the same parameters themselves.
	if format == output.FormatTable {
		formatter.WritePreamble(a.stdout, absRoot, matcher.Pattern(), len(discovered.Paths))
	}

	pool, err := worker.NewPool(worker.Config{
		Workers:    a.config.Threads,
		BufferSize: a.config.BufferLength,
		RateLimit:  a.config.RateLimit,
	}, a.fs, a.log)
	if err != nil {
		return err
	}

	queue := scan.NewQueue(discovered.Paths)
	reporter := a.startProgress(pool, int64(len(discovered.Paths)))

	counted, err := pool.Run(a.ctx, queue, keyFn)
	if reporter != nil {
		reporter.Stop()
	}
	if err != nil {
		return err
	}

	summary := output.Summary{
		Root:     absRoot,
		Pattern:  matcher.Pattern(),
		Grouping: strategy,
		Rows:     tally.BuildSummary(counted.Groups),
		Failures: len(counted.Failures),
		Duration: time.Since(start),
	}

	rendered, err := formatter.Format(summary)
	if err != nil {
		return err
	}

	if err := a.writeOutput(rendered); err != nil {
		return err
	}

	files, lines := tally.Totals(summary.Rows)
	a.log.WithFields(logger.Fields{
		"files":    files,
		"lines":    lines,
		"failures": summary.Failures,
		"duration": summary.Duration.String(),
	}).Info("Run completed")

	return nil
}

// Shutdown cancels any in-flight work
func (a *App) Shutdown() {
	a.cancel()
}

// useColors reports whether ANSI colors should reach the summary
// stream: never for files, never when stdout is redirected.
func (a *App) useColors() bool {
	if a.config.NoColor || a.config.OutputFile != "" {
		return false
	}
	return progress.IsTerminal(a.stdout)
}

// startProgress attaches a live progress line to the pool, or returns
// nil when progress is disabled or stderr is not a terminal.
func (a *App) startProgress(pool *worker.Pool, total int64) *progress.Reporter {
	if a.config.NoProgress || !progress.IsTerminal(a.stderr) {
		return nil
	}

	reporter := progress.New(progress.Config{
		Writer:  a.stderr,
		NoColor: a.config.NoColor,
	}, a.log)

	reporter.Start(func() progress.Status {
		stats := pool.Stats()
		return progress.Status{
			Processed: stats.FilesProcessed,
			Total:     total,
			Lines:     stats.LinesCounted,
			Failures:  stats.Failures,
		}
	})

	return reporter
}

// writeOutput writes the rendered summary to the configured destination
func (a *App) writeOutput(content string) error {
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}

	if a.config.OutputFile == "" {
		_, err := io.WriteString(a.stdout, content)
		return err
	}

	a.log.WithFields(logger.Fields{
		"path": a.config.OutputFile,
	}).Debug("Writing output file")

	if err := afero.WriteFile(a.fs, a.config.OutputFile, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	a.log.WithFields(logger.Fields{
		"path": a.config.OutputFile,
	}).Info("Output written")

	return nil
}
