package presets

import (
	"github.com/go-viper/mapstructure/v2"
)

// targetOptions holds the target options the presets read.
type targetOptions struct {
	Main          string `mapstructure:"main"`
	Config        string `mapstructure:"config"`
	CypressConfig string `mapstructure:"cypressConfig"`
	EslintConfig  string `mapstructure:"eslintConfig"`
}

// decodeOptions reads the known options of a target. Options of an unexpected
// type are left empty.
func decodeOptions(options map[string]any) targetOptions {
	var out targetOptions
	if len(options) == 0 {
		return out
	}
	for key, value := range options {
		single := map[string]any{key: value}
		// Decode key by key so one malformed option does not hide the others.
		_ = mapstructure.Decode(single, &out)
	}
	return out
}
