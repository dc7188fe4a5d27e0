package utils

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

// DefaultYAMLIndent is the indentation used by ConvertToYAML.
const DefaultYAMLIndent = 2

// ConvertToYAML encodes data as a YAML document.
func ConvertToYAML(data any) (string, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(DefaultYAMLIndent)

	if err := encoder.Encode(data); err != nil {
		return "", err
	}
	if err := encoder.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
