package config

import (
	"os"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	// Tests must not see LC_ variables from the outer environment.
	cleanup := func() {
		for _, key := range envKeys {
			os.Unsetenv("LC_" + strings.ToUpper(key))
		}
	}

	tests := []struct {
		name     string
		envVars  map[string]string
		expected Config
		wantErr  bool
		errMsg   string
	}{
		{
			name: "default configuration",
			expected: Config{
				Pattern:      "**",
				GroupBy:      "extension",
				BufferLength: 4096,
				Threads:      1,
				RateLimit:    0,
				Output:       "table",
				Verbose:      0,
			},
		},
		{
			name: "configuration from environment variables",
			envVars: map[string]string{
				"LC_PATTERN":       "**/*.go",
				"LC_EXCLUDE":       "**/vendor,**/*.min.js",
				"LC_GROUP_BY":      "directory",
				"LC_BUFFER_LENGTH": "8192",
				"LC_THREADS":       "4",
				"LC_RATE_LIMIT":    "100",
				"LC_OUTPUT":        "json",
				"LC_OUTPUT_FILE":   "summary.json",
				"LC_STATS":         "true",
				"LC_NO_PROGRESS":   "true",
				"LC_NO_COLOR":      "true",
				"LC_VERBOSE":       "vv",
			},
			expected: Config{
				Pattern:      "**/*.go",
				Excludes:     []string{"**/vendor", "**/*.min.js"},
				GroupBy:      "directory",
				BufferLength: 8192,
				Threads:      4,
				RateLimit:    100,
				Output:       "json",
				OutputFile:   "summary.json",
				Stats:        true,
				NoProgress:   true,
				NoColor:      true,
				Verbose:      2,
			},
		},
		{
			name: "threads zero resolves to cpu count",
			envVars: map[string]string{
				"LC_THREADS": "0",
			},
			expected: Config{
				Pattern:      "**",
				GroupBy:      "extension",
				BufferLength: 4096,
				Threads:      runtime.NumCPU(),
				Output:       "table",
			},
		},
		{
			name: "negative threads rejected",
			envVars: map[string]string{
				"LC_THREADS": "-1",
			},
			wantErr: true,
			errMsg:  "threads cannot be negative",
		},
		{
			name: "unknown grouping rejected",
			envVars: map[string]string{
				"LC_GROUP_BY": "size",
			},
			wantErr: true,
			errMsg:  `unsupported grouping "size"`,
		},
		{
			name: "grouping is case insensitive",
			envVars: map[string]string{
				"LC_GROUP_BY": "Directory",
			},
			expected: Config{
				Pattern:      "**",
				GroupBy:      "directory",
				BufferLength: 4096,
				Threads:      1,
				Output:       "table",
			},
		},
		{
			name: "unknown output format rejected",
			envVars: map[string]string{
				"LC_OUTPUT": "xml",
			},
			wantErr: true,
			errMsg:  `unsupported output format "xml"`,
		},
		{
			name: "zero buffer length rejected",
			envVars: map[string]string{
				"LC_BUFFER_LENGTH": "0",
			},
			wantErr: true,
			errMsg:  "buffer length must be positive",
		},
		{
			name: "negative buffer length rejected",
			envVars: map[string]string{
				"LC_BUFFER_LENGTH": "-1",
			},
			wantErr: true,
			errMsg:  "buffer length must be positive",
		},
		{
			name: "negative rate limit rejected",
			envVars: map[string]string{
				"LC_RATE_LIMIT": "-1",
			},
			wantErr: true,
			errMsg:  "rate limit cannot be negative",
		},
		{
			name: "exclude patterns with spaces",
			envVars: map[string]string{
				"LC_EXCLUDE": "**/node_modules, **/.git, **/*.tmp",
			},
			expected: Config{
				Pattern:      "**",
				Excludes:     []string{"**/node_modules", "**/.git", "**/*.tmp"},
				GroupBy:      "extension",
				BufferLength: 4096,
				Threads:      1,
				Output:       "table",
			},
		},
		{
			name: "multiple verbosity levels",
			envVars: map[string]string{
				"LC_VERBOSE": "vvv",
			},
			expected: Config{
				Pattern:      "**",
				GroupBy:      "extension",
				BufferLength: 4096,
				Threads:      1,
				Output:       "table",
				Verbose:      3,
			},
		},
		{
			name: "boolean parsing - various true values",
			envVars: map[string]string{
				"LC_NO_PROGRESS": "true",
				"LC_NO_COLOR":    "1",
			},
			expected: Config{
				Pattern:      "**",
				GroupBy:      "extension",
				BufferLength: 4096,
				Threads:      1,
				Output:       "table",
				NoProgress:   true,
				NoColor:      true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanup()
			for k, v := range tt.envVars {
				os.Setenv(k, v)
			}

			cfg, err := Load()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected.Pattern, cfg.Pattern)
			assert.Equal(t, tt.expected.Excludes, cfg.Excludes)
			assert.Equal(t, tt.expected.GroupBy, cfg.GroupBy)
			assert.Equal(t, tt.expected.BufferLength, cfg.BufferLength)
			assert.Equal(t, tt.expected.Threads, cfg.Threads)
			assert.Equal(t, tt.expected.RateLimit, cfg.RateLimit)
			assert.Equal(t, tt.expected.Output, cfg.Output)
			assert.Equal(t, tt.expected.OutputFile, cfg.OutputFile)
			assert.Equal(t, tt.expected.Stats, cfg.Stats)
			assert.Equal(t, tt.expected.NoProgress, cfg.NoProgress)
			assert.Equal(t, tt.expected.NoColor, cfg.NoColor)
			assert.Equal(t, tt.expected.Verbose, cfg.Verbose)
		})
	}

	cleanup()
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid configuration",
			config: Config{
				Pattern:      "**",
				GroupBy:      "extension",
				BufferLength: 4096,
				Threads:      4,
				Output:       "json",
			},
			wantErr: false,
		},
		{
			name: "unsupported grouping",
			config: Config{
				Pattern:      "**",
				GroupBy:      "modtime",
				BufferLength: 4096,
				Threads:      4,
				Output:       "table",
			},
			wantErr: true,
			errMsg:  "unsupported grouping",
		},
		{
			name: "negative threads",
			config: Config{
				Pattern:      "**",
				GroupBy:      "extension",
				BufferLength: 4096,
				Threads:      -1,
				Output:       "table",
			},
			wantErr: true,
			errMsg:  "threads cannot be negative",
		},
		{
			name: "invalid buffer length",
			config: Config{
				Pattern:      "**",
				GroupBy:      "extension",
				BufferLength: 0,
				Threads:      4,
				Output:       "table",
			},
			wantErr: true,
			errMsg:  "buffer length must be positive",
		},
		{
			name: "negative rate limit",
			config: Config{
				Pattern:      "**",
				GroupBy:      "extension",
				BufferLength: 4096,
				Threads:      4,
				RateLimit:    -1,
				Output:       "table",
			},
			wantErr: true,
			errMsg:  "rate limit cannot be negative",
		},
		{
			name: "unknown output format",
			config: Config{
				Pattern:      "**",
				GroupBy:      "extension",
				BufferLength: 4096,
				Threads:      4,
				Output:       "csv",
			},
			wantErr: true,
			errMsg:  `unsupported output format "csv"`,
		},
		{
			name: "empty output file means stdout",
			config: Config{
				Pattern:      "**",
				GroupBy:      "extension",
				BufferLength: 4096,
				Threads:      4,
				Output:       "table",
				OutputFile:   "",
			},
			wantErr: false,
		},
		{
			name: "verbosity has no upper bound",
			config: Config{
				Pattern:      "**",
				GroupBy:      "extension",
				BufferLength: 4096,
				Threads:      4,
				Output:       "table",
				Verbose:      4,
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
