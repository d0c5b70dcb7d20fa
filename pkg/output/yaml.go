package output

import (
	"gopkg.in/yaml.v3"

	"github.com/Peter-Juhasz/line-counter/pkg/logger"
)

func (f *Formatter) formatYAML(s Summary) (string, error) {
	f.log.Debug("Rendering YAML output")

	bytes, err := yaml.Marshal(f.buildDocument(s))
	if err != nil {
		f.log.WithFields(logger.Fields{
			"error": err,
		}).Error("Could not marshal YAML")
		return "", err
	}

	return string(bytes), nil
}
