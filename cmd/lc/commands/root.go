/*
Package commands implements the CLI command structure for the line
counter. The root command runs a complete scan; configuration comes
from LC_-prefixed environment variables with explicitly set flags
winning over the environment.
*/
package commands

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Peter-Juhasz/line-counter/cmd/lc/app"
	"github.com/Peter-Juhasz/line-counter/internal/config"
)

// Options holds the command-line options for the root command
type Options struct {
	pattern      string
	excludes     []string
	groupBy      string
	bufferLength int
	threads      int
	rateLimit    int
	output       string
	outputFile   string
	stats        bool
	noProgress   bool
	noColor      bool
	verbosity    int
}

// NewRootCommand builds the lc command tree.
func NewRootCommand() *cobra.Command {
	opts := &Options{}

	rootCmd := &cobra.Command{
		Use:   "lc [flags] [path]",
		Short: "Count lines grouped by extension or directory",
		Long: `lc recursively scans a directory, filters files with include and
exclude glob patterns, counts newline bytes in every matching file and
prints a summary grouped by file extension or containing directory,
sorted by descending line count.

A built-in exclusion list keeps version control metadata, build
outputs, binaries and archives out of the scan.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}

			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}

			application := app.New(cfg)
			defer application.Shutdown()

			return application.Run(root)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.pattern, "pattern", "p", config.DefaultPattern,
		"include glob pattern, relative to the scan root")
	flags.StringArrayVarP(&opts.excludes, "exclude", "x", nil,
		"exclude glob pattern (can be specified multiple times)")
	flags.StringVarP(&opts.groupBy, "group-by", "g", config.DefaultGroupBy,
		"grouping strategy: extension|directory")
	flags.IntVarP(&opts.bufferLength, "buffer-length", "b", config.DefaultBufferLength,
		"read buffer size in bytes")
	flags.IntVarP(&opts.threads, "threads", "t", config.DefaultThreads,
		"number of concurrent workers (0 = CPU cores)")
	flags.IntVar(&opts.rateLimit, "rate-limit", 0,
		"maximum file reads per second (0 = unlimited)")
	flags.StringVarP(&opts.output, "output", "o", config.DefaultOutput,
		"output format: table|json|yaml")
	flags.StringVarP(&opts.outputFile, "file", "f", "",
		"write the summary to a file instead of stdout")
	flags.BoolVar(&opts.stats, "stats", false,
		"append run statistics to the summary")
	flags.BoolVar(&opts.noProgress, "no-progress", false,
		"disable progress reporting")
	flags.BoolVar(&opts.noColor, "no-color", false,
		"disable colored output")
	flags.CountVarP(&opts.verbosity, "verbose", "v",
		"verbose output (can be used multiple times)")

	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// loadConfig merges environment configuration with explicit flags.
// A flag the user actually set wins over its environment variable.
func loadConfig(cmd *cobra.Command, opts *Options) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load configuration: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("pattern") {
		cfg.Pattern = opts.pattern
	}
	if flags.Changed("exclude") {
		cfg.Excludes = opts.excludes
	}
	if flags.Changed("group-by") {
		cfg.GroupBy = strings.ToLower(opts.groupBy)
	}
	if flags.Changed("buffer-length") {
		cfg.BufferLength = opts.bufferLength
	}
	if flags.Changed("threads") {
		cfg.Threads = opts.threads
		if cfg.Threads == 0 {
			cfg.Threads = runtime.NumCPU()
		}
	}
	if flags.Changed("rate-limit") {
		cfg.RateLimit = opts.rateLimit
	}
	if flags.Changed("output") {
		cfg.Output = strings.ToLower(opts.output)
	}
	if flags.Changed("file") {
		cfg.OutputFile = opts.outputFile
	}
	if flags.Changed("stats") {
		cfg.Stats = opts.stats
	}
	if flags.Changed("no-progress") {
		cfg.NoProgress = opts.noProgress
	}
	if flags.Changed("no-color") {
		cfg.NoColor = opts.noColor
	}
	if opts.verbosity > 0 {
		cfg.Verbose = opts.verbosity
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}
