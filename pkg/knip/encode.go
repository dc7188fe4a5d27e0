package knip

import (
	"fmt"

	errUtils "github.com/cloudposse/nx-knip/errors"
	u "github.com/cloudposse/nx-knip/pkg/utils"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Encode renders cfg as a knip configuration file in the given format.
// Keys are sorted, so equal configurations always encode to the same bytes.
func Encode(cfg Config, format string) (string, error) {
	var (
		out string
		err error
	)
	switch format {
	case FormatJSON, "":
		out, err = u.ConvertToJSON(cfg.ToAny())
		out += "\n"
	case FormatYAML, "yml":
		out, err = u.ConvertToYAML(cfg.ToAny())
	default:
		return "", errUtils.Build(fmt.Errorf("%w: %q", errUtils.ErrUnsupportedFormat, format)).
			WithHintf("Use %q or %q", FormatJSON, FormatYAML).
			Err()
	}
	if err != nil {
		return "", errUtils.Wrap(errUtils.ErrEncodeOutput, err).Err()
	}
	return out, nil
}
