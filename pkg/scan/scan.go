/*
Package scan provides pattern-based file discovery over a directory tree
and the work queue the discovered paths are drained from.

Discovery walks the tree once, prunes excluded directories without
descending into them, and collects every file that qualifies under the
configured include and exclude patterns. Unreadable directories are
recorded and skipped; they never abort the walk.

Basic usage:

	m, _ := pattern.New("**", nil)
	d := scan.NewDiscoverer(fs, m, log)

	result, err := d.Discover(ctx, "/path/to/project")
	if err != nil {
		return err
	}

	queue := scan.NewQueue(result.Paths)
*/
package scan

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Peter-Juhasz/line-counter/pkg/logger"
	"github.com/Peter-Juhasz/line-counter/pkg/pattern"
	"github.com/spf13/afero"
)

// Result contains the outcome of a discovery walk.
type Result struct {
	// Paths holds every qualifying file, rooted at the scan root.
	Paths []string

	// Errors maps paths that could not be read during the walk to the
	// error encountered there. These subtrees were skipped, not fatal.
	Errors map[string]error
}

// Discoverer walks a directory tree and collects the files that match
// the configured patterns.
type Discoverer struct {
	fs      afero.Fs
	matcher *pattern.Matcher
	log     logger.Logger
}

// NewDiscoverer creates a Discoverer over the given filesystem.
func NewDiscoverer(fs afero.Fs, matcher *pattern.Matcher, log logger.Logger) *Discoverer {
	return &Discoverer{
		fs:      fs,
		matcher: matcher,
		log:     log,
	}
}

// Discover walks the tree under root and returns the qualifying files.
// The root must be an existing directory; anything else fails before
// any scanning begins. Per-directory read failures are recorded in
// Result.Errors and the walk continues with the siblings.
func (d *Discoverer) Discover(ctx context.Context, root string) (Result, error) {
	result := Result{
		Errors: make(map[string]error),
	}

	info, err := d.fs.Stat(root)
	if err != nil {
		return result, fmt.Errorf("cannot scan %s: %w", root, err)
	}
	if !info.IsDir() {
		return result, fmt.Errorf("cannot scan %s: not a directory", root)
	}

	d.log.WithFields(logger.Fields{
		"root":    root,
		"pattern": d.matcher.Pattern(),
	}).Info("Starting discovery")

	walkErr := afero.Walk(d.fs, root, func(p string, info os.FileInfo, err error) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if err != nil {
			// A directory that cannot be read, or a path that vanished
			// mid-walk. The subtree is skipped; siblings keep scanning.
			d.log.WithFields(logger.Fields{
				"path":  p,
				"error": err.Error(),
			}).Warn("Skipping unreadable path")
			result.Errors[p] = err
			return nil
		}

		rel, relErr := filepath.Rel(root, p)
		if relErr != nil || rel == "." {
			return nil
		}

		if info.IsDir() {
			if d.matcher.Excluded(rel) {
				d.log.WithFields(logger.Fields{
					"path": rel,
				}).Debug("Directory pruned")
				return filepath.SkipDir
			}
			return nil
		}

		if !info.Mode().IsRegular() {
			return nil
		}

		if d.matcher.Match(rel) {
			d.log.WithFields(logger.Fields{
				"path": rel,
			}).Trace("File matched")
			result.Paths = append(result.Paths, p)
		}

		return nil
	})
	if walkErr != nil {
		return result, fmt.Errorf("discovery failed: %w", walkErr)
	}

	d.log.WithFields(logger.Fields{
		"files":  len(result.Paths),
		"errors": len(result.Errors),
	}).Info("Discovery completed")

	return result, nil
}
