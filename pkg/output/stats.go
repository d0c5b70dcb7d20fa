package output

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/Peter-Juhasz/line-counter/pkg/logger"
	"github.com/Peter-Juhasz/line-counter/pkg/tally"
)

// stats holds aggregate statistics about a completed scan
type stats struct {
	TotalFiles  int64  `json:"totalFiles" yaml:"totalFiles"`
	TotalLines  int64  `json:"totalLines" yaml:"totalLines"`
	FailedFiles int    `json:"failedFiles" yaml:"failedFiles"`
	Groups      int    `json:"groups" yaml:"groups"`
	Duration    string `json:"duration" yaml:"duration"`
}

func (f *Formatter) calculateStats(s Summary) *stats {
	f.log.Debug("Calculating scan statistics")

	files, lines := tally.Totals(s.Rows)

	st := &stats{
		TotalFiles:  files,
		TotalLines:  lines,
		FailedFiles: s.Failures,
		Groups:      len(s.Rows),
		Duration:    s.Duration.Round(time.Millisecond).String(),
	}

	f.log.WithFields(logger.Fields{
		"files":    st.TotalFiles,
		"lines":    st.TotalLines,
		"failures": st.FailedFiles,
		"groups":   st.Groups,
	}).Debug("Statistics ready")

	return st
}

func (f *Formatter) formatStats(s Summary) string {
	st := f.calculateStats(s)

	var builder strings.Builder
	builder.WriteString("Statistics:\n")
	builder.WriteString(fmt.Sprintf("  Total Files: %s\n", humanize.Comma(st.TotalFiles)))
	builder.WriteString(fmt.Sprintf("  Total Lines: %s\n", humanize.Comma(st.TotalLines)))
	builder.WriteString(fmt.Sprintf("  Failed Files: %d\n", st.FailedFiles))
	builder.WriteString(fmt.Sprintf("  Groups: %d\n", st.Groups))
	builder.WriteString(fmt.Sprintf("  Duration: %s\n", st.Duration))

	return builder.String()
}
