package output

import (
	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/Peter-Juhasz/line-counter/pkg/tally"
)

// emptyGroupLabel stands in for files without an extension when
// grouping by extension.
const emptyGroupLabel = "(none)"

func (f *Formatter) formatTable(s Summary) string {
	f.log.Debug("Rendering table output")

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleRounded)
	tbl.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Number: 3, Align: text.AlignRight, AlignFooter: text.AlignRight},
	})

	tbl.AppendHeader(table.Row{s.Grouping.Label(), "Files", "Lines"})

	for _, row := range s.Rows {
		group := row.Group
		if group == "" {
			group = emptyGroupLabel
		}

		tbl.AppendRow(table.Row{group, humanize.Comma(row.Files), humanize.Comma(row.Lines)})
	}

	files, lines := tally.Totals(s.Rows)
	tbl.AppendFooter(table.Row{"Total", humanize.Comma(files), humanize.Comma(lines)})

	out := tbl.Render() + "\n"
	if f.config.WithStats {
		out += "\n" + f.formatStats(s)
	}

	return out
}
