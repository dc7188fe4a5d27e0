package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertToYAML(t *testing.T) {
	out, err := ConvertToYAML(map[string]any{
		"vitest": map[string]any{"entry": []string{"**/*.spec.ts"}},
		"entry":  []string{"src/main.ts!"},
	})
	require.NoError(t, err)

	expected := "entry:\n" +
		"  - src/main.ts!\n" +
		"vitest:\n" +
		"  entry:\n" +
		"    - '**/*.spec.ts'\n"
	assert.Equal(t, expected, out)
}
