// Package config loads and validates the settings of the line counter.
// Settings come from LC_ environment variables with command-line flags
// layered on top; Load resolves both into an immutable Config.
//
// # Environment Variables
//
//	LC_PATTERN        Include glob pattern (default: "**")
//	LC_EXCLUDE        Comma-separated exclude patterns
//	LC_GROUP_BY       Grouping strategy: extension|directory
//	LC_BUFFER_LENGTH  Read buffer size in bytes (default: 4096)
//	LC_THREADS        Number of concurrent workers (default: 1, 0 = CPU cores)
//	LC_RATE_LIMIT     Maximum file reads per second (0 for unlimited)
//	LC_OUTPUT         Output format: table|json|yaml
//	LC_OUTPUT_FILE    Output file path (empty for stdout)
//	LC_STATS          Append run statistics to the summary (true/false)
//	LC_NO_PROGRESS    Disable progress reporting (true/false)
//	LC_NO_COLOR       Disable colored output (true/false)
//	LC_VERBOSE        Verbosity level (number of 'v's)
//
// A flag given explicitly wins over its environment variable.
//
// # Exclude Patterns
//
// LC_EXCLUDE and the --exclude flag take glob patterns matched against
// paths relative to the scan root:
//
// Directory patterns:
//   - "**/node_modules"  - Exclude the directory anywhere in the tree
//   - "build"            - Exclude directories named build at any depth
//   - "src/test/*"       - Exclude all entries of a specific directory
//
// File patterns:
//   - "**/*.log"         - Exclude by extension anywhere
//   - "*.tmp"            - Exclude temporary files at any depth
//   - "**/package.json"  - Exclude a specific file name anywhere
//
// Commas separate multiple patterns:
//
//	LC_EXCLUDE="**/node_modules,**/.git,**/*.log"
//
// A built-in exclusion list (version control metadata, build outputs,
// binaries, archives) is always applied in addition to user patterns.
//
// # Validation
//
// Load rejects a grouping other than extension or directory, an output
// format other than table, json or yaml, a non-positive buffer length,
// and a negative thread count or rate limit. A rejected configuration
// is fatal: the error is reported and the process exits before any
// scanning starts. Zero threads is not an error; it resolves to one
// worker per CPU core.
//
// The Config returned by Load is a plain value and is never modified
// afterwards, so it can be read from any goroutine.
package config
