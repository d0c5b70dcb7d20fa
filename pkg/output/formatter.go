// Package output renders aggregated line counts in table, json or yaml
// form. The table format is meant for humans; json and yaml carry the
// same data plus the scan parameters for machine consumption.
package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/Peter-Juhasz/line-counter/pkg/grouping"
	"github.com/Peter-Juhasz/line-counter/pkg/logger"
	"github.com/Peter-Juhasz/line-counter/pkg/tally"
)

// Format represents the output format type.
type Format string

const (
	// FormatTable renders an aligned table for terminals.
	FormatTable Format = "table"
	// FormatJSON renders the summary as indented JSON.
	FormatJSON Format = "json"
	// FormatYAML renders the summary as YAML.
	FormatYAML Format = "yaml"
)

// ParseFormat converts a user supplied format name into a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "table", "":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format %q (expected table, json or yaml)", s)
	}
}

// Config holds formatter configuration options.
type Config struct {
	Format     Format
	WithStats  bool
	WithColors bool
}

// Summary is everything a formatter needs to render one completed scan.
type Summary struct {
	Root     string
	Pattern  string
	Grouping grouping.Strategy
	Rows     []tally.Row
	Failures int
	Duration time.Duration
}

// Formatter renders summaries according to its configuration.
type Formatter struct {
	config Config
	log    logger.Logger
}

// NewFormatter creates a Formatter with the given configuration.
func NewFormatter(config Config, log logger.Logger) *Formatter {
	return &Formatter{
		config: config,
		log:    log,
	}
}

// Format renders the summary in the configured output format.
func (f *Formatter) Format(s Summary) (string, error) {
	f.log.WithFields(logger.Fields{
		"format": string(f.config.Format),
		"groups": len(s.Rows),
	}).Debug("Formatting summary")

	switch f.config.Format {
	case FormatTable:
		return f.formatTable(s), nil
	case FormatJSON:
		return f.formatJSON(s)
	case FormatYAML:
		return f.formatYAML(s)
	default:
		return "", fmt.Errorf("unsupported format: %s", f.config.Format)
	}
}

// WritePreamble echoes the effective scan parameters before counting
// starts. Only the table format uses it; json and yaml embed the same
// information in the document itself.
func (f *Formatter) WritePreamble(w io.Writer, root, pattern string, discovered int) {
	label := color.New(color.FgCyan, color.Bold)
	if f.config.WithColors {
		label.EnableColor()
	} else {
		label.DisableColor()
	}

	fmt.Fprintf(w, "%s %s\n", label.Sprint("Directory:"), root)
	fmt.Fprintf(w, "%s %s\n", label.Sprint("Pattern:"), pattern)
	fmt.Fprintf(w, "%s %s\n\n", label.Sprint("Files:"), humanize.Comma(int64(discovered)))
}
