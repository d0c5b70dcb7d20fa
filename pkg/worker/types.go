package worker

import (
	"fmt"
	"time"
)

// FailureKind classifies per-file failures reported by workers.
type FailureKind string

const (
	// FailureNotFound marks a file that vanished between discovery and
	// counting.
	FailureNotFound FailureKind = "not_found"

	// FailureRead marks any other I/O error while opening or reading.
	FailureRead FailureKind = "read"
)

// FileError describes one file the pool could not count. Per-file
// failures are reported and skipped; they never abort the batch and
// never change the process exit status.
type FileError struct {
	Path string
	Kind FailureKind
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Stats provides runtime statistics about the pool, safe to read while
// workers are running.
type Stats struct {
	// FilesProcessed is the number of files dequeued and classified so
	// far, including ones that later failed to read.
	FilesProcessed int64

	// LinesCounted is the number of newlines counted so far.
	LinesCounted int64

	// Failures is the number of files that could not be read.
	Failures int64

	// QueuedFiles is the number of files still waiting in the queue.
	QueuedFiles int

	// ActiveWorkers is the number of workers still draining the queue.
	ActiveWorkers int

	// Uptime is how long the pool has existed.
	Uptime time.Duration
}
