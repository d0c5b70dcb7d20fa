package config

import (
	"fmt"
	"runtime"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// Config is the resolved runtime configuration of a single run.
type Config struct {
	// Pattern is the include glob applied to paths relative to the scan root
	Pattern string

	// Excludes is a list of additional exclude patterns
	Excludes []string

	// GroupBy selects the aggregation key (extension or directory)
	GroupBy string

	// BufferLength is the size of the read buffer in bytes
	BufferLength int

	// Threads is the number of concurrent workers draining the work queue
	Threads int

	// RateLimit is the maximum number of file reads per second (0 for unlimited)
	RateLimit int

	// Output specifies the output format (table, json, or yaml)
	Output string

	// OutputFile is the path to write the summary (empty for stdout)
	OutputFile string

	// Stats appends run statistics to the rendered summary
	Stats bool

	// NoProgress turns off the live progress line
	NoProgress bool

	// NoColor turns off ANSI colors in the rendered table
	NoColor bool

	// Verbose is the count of -v flags given
	Verbose int
}

var (
	groupings     = []string{"extension", "directory"}
	outputFormats = []string{"table", "json", "yaml"}
)

// envKeys lists every setting readable from the environment with the
// LC_ prefix, e.g. LC_GROUP_BY or LC_BUFFER_LENGTH.
var envKeys = []string{
	"pattern", "exclude", "group_by", "buffer_length", "threads",
	"rate_limit", "output", "output_file", "stats", "no_progress",
	"no_color", "verbose",
}

// Load resolves settings from the environment and validates the result.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("pattern", DefaultPattern)
	v.SetDefault("group_by", DefaultGroupBy)
	v.SetDefault("buffer_length", DefaultBufferLength)
	v.SetDefault("threads", DefaultThreads)
	v.SetDefault("rate_limit", 0)
	v.SetDefault("output", DefaultOutput)
	v.SetDefault("stats", false)
	v.SetDefault("no_progress", false)
	v.SetDefault("no_color", false)
	v.SetDefault("verbose", 0)

	v.SetEnvPrefix("LC")
	v.AutomaticEnv()
	for _, key := range envKeys {
		v.BindEnv(key)
	}

	// LC_VERBOSE holds a string of v's; its count is the level.
	if raw := v.GetString("verbose"); raw != "" {
		v.Set("verbose", strings.Count(raw, "v"))
	}

	cfg := Config{
		Pattern:      v.GetString("pattern"),
		GroupBy:      strings.ToLower(v.GetString("group_by")),
		BufferLength: v.GetInt("buffer_length"),
		Threads:      v.GetInt("threads"),
		RateLimit:    v.GetInt("rate_limit"),
		Output:       strings.ToLower(v.GetString("output")),
		OutputFile:   v.GetString("output_file"),
		Stats:        v.GetBool("stats"),
		NoProgress:   v.GetBool("no_progress"),
		NoColor:      v.GetBool("no_color"),
		Verbose:      v.GetInt("verbose"),
	}

	// Zero threads means one worker per CPU core.
	if cfg.Threads == 0 {
		cfg.Threads = runtime.NumCPU()
	}

	if raw := v.GetString("exclude"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			if pattern := strings.TrimSpace(part); pattern != "" {
				cfg.Excludes = append(cfg.Excludes, pattern)
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if !slices.Contains(groupings, c.GroupBy) {
		return fmt.Errorf("unsupported grouping %q (expected extension or directory)", c.GroupBy)
	}

	if c.Threads < 0 {
		return fmt.Errorf("threads cannot be negative, got %d", c.Threads)
	}

	if c.BufferLength <= 0 {
		return fmt.Errorf("buffer length must be positive, got %d", c.BufferLength)
	}

	if c.RateLimit < 0 {
		return fmt.Errorf("rate limit cannot be negative, got %d", c.RateLimit)
	}

	if !slices.Contains(outputFormats, c.Output) {
		return fmt.Errorf("unsupported output format %q (expected table, json or yaml)", c.Output)
	}

	return nil
}

// String renders the configuration for debug logging.
func (c Config) String() string {
	return fmt.Sprintf(
		"Config{Pattern: %s, Excludes: %v, GroupBy: %s, BufferLength: %d, "+
			"Threads: %d, RateLimit: %d, Output: %s, OutputFile: %s, "+
			"Stats: %v, NoProgress: %v, NoColor: %v, Verbose: %d}",
		c.Pattern, c.Excludes, c.GroupBy, c.BufferLength,
		c.Threads, c.RateLimit, c.Output, c.OutputFile,
		c.Stats, c.NoProgress, c.NoColor, c.Verbose,
	)
}
