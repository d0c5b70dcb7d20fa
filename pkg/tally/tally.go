/*
Package tally holds the per-group counters and their aggregation.

Each worker accumulates into a private Set with no synchronization,
then merges that Set into the shared Accumulator exactly once, when it
finishes. The Accumulator is read only after every worker has merged,
so the merge phase and the summary phase never overlap.
*/
package tally

import "sync"

// Tally is the pair of counters kept for one group key. Files counts
// every file classified under the key; Lines counts newlines from the
// files that were read successfully.
type Tally struct {
	Files int64
	Lines int64
}

// Set maps group keys to tallies. A Set is owned by a single worker
// while it runs and must not be shared.
type Set map[string]Tally

// NewSet returns an empty private tally set.
func NewSet() Set {
	return make(Set)
}

// AddFile records one file under key, creating the entry if absent.
// Files are recorded as soon as they are classified, before any line
// counting is attempted.
func (s Set) AddFile(key string) {
	t := s[key]
	t.Files++
	s[key] = t
}

// AddLines adds a successful line count under key.
func (s Set) AddLines(key string, lines int64) {
	t := s[key]
	t.Lines += lines
	s[key] = t
}

// Accumulator collects the merged result of all workers.
type Accumulator struct {
	mu     sync.Mutex
	groups map[string]Tally
}

// NewAccumulator returns an empty Accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{
		groups: make(map[string]Tally),
	}
}

// Merge folds one worker's private Set into the shared result. Safe for
// concurrent callers; each call is a single critical section, so two
// merges never interleave their key updates.
func (a *Accumulator) Merge(private Set) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for key, t := range private {
		cur := a.groups[key]
		cur.Files += t.Files
		cur.Lines += t.Lines
		a.groups[key] = cur
	}
}

// Snapshot returns a copy of the merged tallies. Call it only after all
// workers have finished merging.
func (a *Accumulator) Snapshot() map[string]Tally {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make(map[string]Tally, len(a.groups))
	for key, t := range a.groups {
		out[key] = t
	}
	return out
}
