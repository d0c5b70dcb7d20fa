/*
Package worker runs the counting phase: a fixed pool of workers drains
the discovery queue, classifies each file into its group, counts its
lines and accumulates into a private per-worker tally. A worker that
finds the queue empty merges its private tally into the shared
accumulator and exits. Run returns only after every worker has merged,
so the result it hands back is never read concurrently.

Basic usage:

	pool, err := worker.NewPool(worker.Config{
		Workers:    4,
		BufferSize: 4096,
	}, fs, log)
	if err != nil {
		return err
	}

	result, err := pool.Run(ctx, queue, keyFn)
*/
package worker

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Peter-Juhasz/line-counter/pkg/counter"
	"github.com/Peter-Juhasz/line-counter/pkg/grouping"
	"github.com/Peter-Juhasz/line-counter/pkg/logger"
	"github.com/Peter-Juhasz/line-counter/pkg/scan"
	"github.com/Peter-Juhasz/line-counter/pkg/tally"
	"github.com/spf13/afero"
	"golang.org/x/time/rate"
)

// Config holds the configuration for the worker pool.
type Config struct {
	// Workers is the number of concurrent workers draining the queue.
	Workers int

	// BufferSize is the read chunk size for each worker's private line
	// counter.
	BufferSize int

	// RateLimit caps counted files per second across the whole pool
	// (0 for unlimited).
	RateLimit int
}

// Result is the outcome of a pool run.
type Result struct {
	// Groups holds the merged tallies of every worker.
	Groups map[string]tally.Tally

	// Failures lists the files that could not be read, in no
	// particular order.
	Failures []FileError
}

// Pool coordinates the workers for one counting run.
type Pool struct {
	config  Config
	fs      afero.Fs
	log     logger.Logger
	limiter *rate.Limiter

	queue     atomic.Pointer[scan.Queue]
	startTime time.Time

	filesProcessed atomic.Int64
	linesCounted   atomic.Int64
	failures       atomic.Int64
	activeWorkers  atomic.Int32

	failMu sync.Mutex
	fails  []FileError
}

// NewPool creates a worker pool with the given configuration.
func NewPool(config Config, fsys afero.Fs, log logger.Logger) (*Pool, error) {
	if err := validateConfig(config); err != nil {
		return nil, err
	}

	var limiter *rate.Limiter
	if config.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(config.RateLimit), 1)
	}

	return &Pool{
		config:    config,
		fs:        fsys,
		log:       log,
		limiter:   limiter,
		startTime: time.Now(),
	}, nil
}

// validateConfig checks if the pool configuration is valid.
func validateConfig(config Config) error {
	if config.Workers <= 0 {
		return fmt.Errorf("number of workers must be positive")
	}
	if config.BufferSize <= 0 {
		return fmt.Errorf("buffer size must be positive")
	}
	if config.RateLimit < 0 {
		return fmt.Errorf("rate limit must be non-negative")
	}
	return nil
}

// Run drains the queue with the configured number of workers and
// returns the merged tallies. The queue must be fully populated before
// Run is called; workers never wait for more work. Run blocks until
// every worker has merged, so the merge phase and the summary phase
// cannot overlap.
func (p *Pool) Run(ctx context.Context, queue *scan.Queue, keyFn grouping.KeyFunc) (Result, error) {
	if keyFn == nil {
		return Result{}, fmt.Errorf("grouping function must not be nil")
	}

	p.queue.Store(queue)

	p.log.WithFields(logger.Fields{
		"workers":    p.config.Workers,
		"bufferSize": p.config.BufferSize,
		"files":      queue.Len(),
	}).Info("Starting workers")

	acc := tally.NewAccumulator()

	var wg sync.WaitGroup
	for i := 0; i < p.config.Workers; i++ {
		c, err := counter.New(p.fs, p.config.BufferSize)
		if err != nil {
			return Result{}, fmt.Errorf("failed to create counter: %w", err)
		}

		wg.Add(1)
		go p.worker(ctx, i, c, queue, keyFn, acc, &wg)
	}

	// The merge barrier: no tally is read until every worker is done.
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	p.failMu.Lock()
	failures := make([]FileError, len(p.fails))
	copy(failures, p.fails)
	p.failMu.Unlock()

	result := Result{
		Groups:   acc.Snapshot(),
		Failures: failures,
	}

	p.log.WithFields(logger.Fields{
		"files":    p.filesProcessed.Load(),
		"lines":    p.linesCounted.Load(),
		"failures": p.failures.Load(),
		"groups":   len(result.Groups),
		"duration": time.Since(p.startTime).String(),
	}).Info("Counting completed")

	return result, nil
}

// Stats returns a point-in-time view of the pool. Safe to call from
// another goroutine while Run is in progress.
func (p *Pool) Stats() Stats {
	s := Stats{
		FilesProcessed: p.filesProcessed.Load(),
		LinesCounted:   p.linesCounted.Load(),
		Failures:       p.failures.Load(),
		ActiveWorkers:  int(p.activeWorkers.Load()),
		Uptime:         time.Since(p.startTime),
	}

	if q := p.queue.Load(); q != nil {
		s.QueuedFiles = q.Len()
	}

	return s
}

// worker drains the queue until it is empty, then merges its private
// tally exactly once.
func (p *Pool) worker(ctx context.Context, id int, c *counter.Counter, queue *scan.Queue, keyFn grouping.KeyFunc, acc *tally.Accumulator, wg *sync.WaitGroup) {
	defer wg.Done()

	p.activeWorkers.Add(1)
	defer p.activeWorkers.Add(-1)

	log := p.log.WithFields(logger.Fields{"worker": id})

	private := tally.NewSet()
	defer acc.Merge(private)

	for {
		if ctx.Err() != nil {
			log.Debug("Worker cancelled")
			return
		}

		path, ok := queue.TryDequeue()
		if !ok {
			log.Debug("Queue exhausted")
			return
		}

		// The file counts toward its group as soon as it is
		// classified, whether or not it can still be read.
		key := keyFn(path)
		private.AddFile(key)
		p.filesProcessed.Add(1)

		if p.limiter != nil {
			if err := p.limiter.Wait(ctx); err != nil {
				return
			}
		}

		lines, err := c.Count(ctx, path)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return
			}
			p.recordFailure(log, path, err)
			continue
		}

		private.AddLines(key, lines)
		p.linesCounted.Add(lines)

		log.WithFields(logger.Fields{
			"path":  path,
			"group": key,
			"lines": lines,
		}).Trace("File counted")
	}
}

// recordFailure logs a per-file failure and keeps it for the run
// result. NotFound is expected when files are deleted mid-scan and is
// logged less severely than a read error.
func (p *Pool) recordFailure(log logger.Logger, path string, err error) {
	kind := FailureRead
	if errors.Is(err, fs.ErrNotExist) {
		kind = FailureNotFound
	}

	p.failures.Add(1)

	p.failMu.Lock()
	p.fails = append(p.fails, FileError{Path: path, Kind: kind, Err: err})
	p.failMu.Unlock()

	fields := logger.Fields{
		"path":  path,
		"error": err.Error(),
	}

	if kind == FailureNotFound {
		log.WithFields(fields).Warn("File vanished before counting")
		return
	}
	log.WithFields(fields).Error("Failed to count file")
}
