/*
Package progress renders a single-line progress display for the
counting phase. A Reporter polls a status function on a fixed tick and
redraws the line in place; it is meant for stderr, so the summary on
stdout stays machine-readable.

The caller decides whether to show progress at all, typically only
when the writer is an interactive terminal:

	if progress.IsTerminal(os.Stderr) {
		r := progress.New(progress.Config{}, log)
		r.Start(func() progress.Status {
			s := pool.Stats()
			return progress.Status{
				Processed: s.FilesProcessed,
				Total:     total,
				Lines:     s.LinesCounted,
				Failures:  s.Failures,
			}
		})
		defer r.Stop()
	}
*/
package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/Peter-Juhasz/line-counter/pkg/logger"
	"golang.org/x/term"
)

// Status is a point-in-time snapshot rendered as one progress line.
type Status struct {
	// Processed is the number of files handled so far.
	Processed int64

	// Total is the number of files in the batch.
	Total int64

	// Lines is the number of newlines counted so far.
	Lines int64

	// Failures is the number of files that could not be read.
	Failures int64
}

// Config holds the configuration for the progress display.
type Config struct {
	// Writer receives the progress line. Defaults to os.Stderr.
	Writer io.Writer

	// RefreshRate defines how often the display updates.
	RefreshRate time.Duration

	// Width is the total line width (0 = auto-detect, fallback 80).
	Width int

	// NoColor disables colored output.
	NoColor bool
}

// Reporter periodically renders the progress line. Start launches the
// render loop; Stop halts it and clears the line.
type Reporter struct {
	config Config
	log    logger.Logger
	writer io.Writer
	width  int

	mu       sync.Mutex
	started  bool
	stopped  bool
	stopChan chan struct{}
	doneChan chan struct{}
}

// New creates a progress Reporter.
func New(config Config, log logger.Logger) *Reporter {
	if config.Writer == nil {
		config.Writer = os.Stderr
	}
	if config.RefreshRate == 0 {
		config.RefreshRate = 100 * time.Millisecond
	}

	r := &Reporter{
		config:   config,
		log:      log,
		writer:   config.Writer,
		stopChan: make(chan struct{}),
		doneChan: make(chan struct{}),
	}

	if config.Width > 0 {
		r.width = config.Width
	} else {
		r.width = terminalWidth(config.Writer)
	}

	return r
}

// Start begins rendering. The poll function is called on every tick
// and must be safe to call from another goroutine.
func (r *Reporter) Start(poll func() Status) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.started {
		return
	}
	r.started = true

	r.log.WithFields(logger.Fields{
		"refresh": r.config.RefreshRate.String(),
		"width":   r.width,
	}).Debug("Starting progress display")

	go r.renderLoop(poll)
}

// Stop halts the render loop and clears the progress line. Safe to
// call more than once.
func (r *Reporter) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.started || r.stopped {
		return
	}
	r.stopped = true

	close(r.stopChan)
	<-r.doneChan

	r.clearLine()
}

func (r *Reporter) renderLoop(poll func() Status) {
	ticker := time.NewTicker(r.config.RefreshRate)
	defer ticker.Stop()
	defer close(r.doneChan)

	for {
		select {
		case <-r.stopChan:
			return
		case <-ticker.C:
			r.render(poll())
		}
	}
}

func (r *Reporter) render(s Status) {
	r.clearLine()
	fmt.Fprint(r.writer, formatLine(s, r.width, r.config.NoColor))
}

func (r *Reporter) clearLine() {
	if IsTerminal(r.writer) {
		fmt.Fprint(r.writer, "\r\033[K")
	} else {
		fmt.Fprint(r.writer, "\r")
	}
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

func terminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return 80
}
