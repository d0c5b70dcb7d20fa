package tally

import "sort"

// Row is one line of the final summary, immutable once built.
type Row struct {
	Group string `json:"group" yaml:"group"`
	Files int64  `json:"files" yaml:"files"`
	Lines int64  `json:"lines" yaml:"lines"`
}

// BuildSummary turns merged tallies into rows sorted by line count,
// descending. Groups with equal line counts come out in key order, so
// repeated runs over an unchanged tree render identically.
func BuildSummary(groups map[string]Tally) []Row {
	rows := make([]Row, 0, len(groups))
	for key, t := range groups {
		rows = append(rows, Row{
			Group: key,
			Files: t.Files,
			Lines: t.Lines,
		})
	}

	// Map iteration order is random; fix the tie order before the
	// primary sort.
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Group < rows[j].Group
	})
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Lines > rows[j].Lines
	})

	return rows
}

// Totals sums file and line counts across all rows.
func Totals(rows []Row) (files, lines int64) {
	for _, r := range rows {
		files += r.Files
		lines += r.Lines
	}
	return files, lines
}
