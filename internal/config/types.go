package config

// Constants for configuration defaults
const (
	// DefaultPattern includes every file under the scan root
	DefaultPattern = "**"

	// DefaultGroupBy aggregates counts by file extension
	DefaultGroupBy = "extension"

	// DefaultBufferLength is the default read buffer size in bytes
	DefaultBufferLength = 4096

	// DefaultThreads is the default worker count; counting is sequential
	// unless more workers are requested
	DefaultThreads = 1

	// DefaultOutput renders the summary as a table
	DefaultOutput = "table"
)
