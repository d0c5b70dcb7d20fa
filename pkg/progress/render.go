package progress

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// formatLine builds the progress line for one status snapshot, fitted
// to the given width.
func formatLine(s Status, width int, noColor bool) string {
	var ratio float64
	if s.Total > 0 {
		ratio = float64(s.Processed) / float64(s.Total)
	}
	if ratio > 1 {
		ratio = 1
	}

	suffix := fmt.Sprintf(" %3.0f%% | %s/%s files | %s lines",
		ratio*100,
		humanize.Comma(s.Processed),
		humanize.Comma(s.Total),
		humanize.Comma(s.Lines))
	if s.Failures > 0 {
		suffix += fmt.Sprintf(" | %s failed", humanize.Comma(s.Failures))
	}

	barWidth := width - len(suffix) - 2
	if barWidth < 10 {
		barWidth = 10
	}

	filled := int(float64(barWidth) * ratio)
	if filled > barWidth {
		filled = barWidth
	}

	var bar strings.Builder
	bar.WriteString("[")

	if !noColor {
		bar.WriteString("\033[32m")
	}

	bar.WriteString(strings.Repeat("=", filled))
	if filled < barWidth {
		bar.WriteString(">")
		bar.WriteString(strings.Repeat(" ", barWidth-filled-1))
	}

	if !noColor {
		bar.WriteString("\033[0m")
	}

	bar.WriteString("]")
	bar.WriteString(suffix)

	return bar.String()
}
