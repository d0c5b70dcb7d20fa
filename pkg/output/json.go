package output

import (
	"encoding/json"
	"time"

	"github.com/Peter-Juhasz/line-counter/pkg/logger"
	"github.com/Peter-Juhasz/line-counter/pkg/tally"
)

// document represents the complete machine readable output. The same
// struct backs both the json and yaml formats.
type document struct {
	Root       string      `json:"root" yaml:"root"`
	Pattern    string      `json:"pattern" yaml:"pattern"`
	Grouping   string      `json:"grouping" yaml:"grouping"`
	Groups     []tally.Row `json:"groups" yaml:"groups"`
	Statistics *stats      `json:"statistics,omitempty" yaml:"statistics,omitempty"`
	Generated  time.Time   `json:"generated" yaml:"generated"`
}

func (f *Formatter) buildDocument(s Summary) *document {
	doc := &document{
		Root:      s.Root,
		Pattern:   s.Pattern,
		Grouping:  string(s.Grouping),
		Groups:    s.Rows,
		Generated: time.Now(),
	}

	if doc.Groups == nil {
		doc.Groups = []tally.Row{}
	}

	if f.config.WithStats {
		f.log.Debug("Attaching statistics to output")
		doc.Statistics = f.calculateStats(s)
	}

	return doc
}

func (f *Formatter) formatJSON(s Summary) (string, error) {
	f.log.Debug("Rendering JSON output")

	bytes, err := json.MarshalIndent(f.buildDocument(s), "", "  ")
	if err != nil {
		f.log.WithFields(logger.Fields{
			"error": err,
		}).Error("Could not marshal JSON")
		return "", err
	}

	return string(bytes), nil
}
