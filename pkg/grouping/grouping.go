// Package grouping classifies file paths into the buckets that counts
// are aggregated under, either by extension or by containing directory.
package grouping

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Strategy selects how files are bucketed in the summary.
type Strategy string

const (
	// ByExtension groups files by extension, including the leading dot.
	// Files without an extension share the empty key.
	ByExtension Strategy = "extension"

	// ByDirectory groups files by their containing directory.
	ByDirectory Strategy = "directory"
)

// KeyFunc derives the group key for one file path. Keys are lowercased,
// so grouping is case-insensitive throughout.
type KeyFunc func(path string) string

// ParseStrategy normalizes a user-supplied grouping name. Both the full
// name and a short form are accepted.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(s) {
	case string(ByExtension), "ext":
		return ByExtension, nil
	case string(ByDirectory), "dir":
		return ByDirectory, nil
	}
	return "", fmt.Errorf("unsupported grouping %q (expected %q or %q)", s, ByExtension, ByDirectory)
}

// Resolve turns a Strategy into the key function injected into each
// worker. The strategy branch happens once here, not per file.
func Resolve(s Strategy) (KeyFunc, error) {
	switch s {
	case ByExtension:
		return extensionKey, nil
	case ByDirectory:
		return directoryKey, nil
	}
	return nil, fmt.Errorf("unsupported grouping %q (expected %q or %q)", s, ByExtension, ByDirectory)
}

// Label returns the summary column heading for the strategy.
func (s Strategy) Label() string {
	if s == ByDirectory {
		return "Directory"
	}
	return "Extension"
}

func extensionKey(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

func directoryKey(path string) string {
	return strings.ToLower(filepath.Dir(path))
}
