package knip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/cloudposse/nx-knip/errors"
)

func TestFromAny(t *testing.T) {
	tests := []struct {
		name     string
		input    map[string]any
		expected Config
		wantErr  string
	}{
		{
			name:     "nil input",
			input:    nil,
			expected: Config{},
		},
		{
			name: "decoded JSON",
			input: map[string]any{
				"entry":  []any{"a.ts", "b.ts"},
				"vitest": map[string]any{"config": []any{"vite.config.ts"}},
				"skip":   nil,
			},
			expected: Config{
				"entry":  List("a.ts", "b.ts"),
				"vitest": Mapping{"config": List("vite.config.ts")},
			},
		},
		{
			name: "typed go values",
			input: map[string]any{
				"ignore": []string{"tmp/**"},
				"paths":  map[string][]string{"@org/a": {"libs/a/src/index.ts"}},
			},
			expected: Config{
				"ignore": List("tmp/**"),
				"paths":  Mapping{"@org/a": List("libs/a/src/index.ts")},
			},
		},
		{
			name: "yaml style keys",
			input: map[string]any{
				"eslint": map[any]any{"config": []any{".eslintrc.json"}},
			},
			expected: Config{"eslint": Mapping{"config": List(".eslintrc.json")}},
		},
		{
			name:     "empty list",
			input:    map[string]any{"ignore": []any{}},
			expected: Config{"ignore": StringList{}},
		},
		{
			name:    "non string list item",
			input:   map[string]any{"vitest": map[string]any{"entry": []any{"a", 1}}},
			wantErr: "vitest.entry[1] must be a string",
		},
		{
			name:    "scalar value",
			input:   map[string]any{"rules": map[string]any{"files": "error"}},
			wantErr: "rules.files must be a list of strings or a mapping",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromAny(tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, errUtils.ErrInvalidFragment)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestToAny(t *testing.T) {
	cfg := Config{
		"entry":  List("a"),
		"ignore": StringList(nil),
		"vitest": Mapping{"config": List("b")},
	}

	assert.Equal(t, map[string]any{
		"entry":  []string{"a"},
		"ignore": []string{},
		"vitest": map[string]any{"config": []string{"b"}},
	}, cfg.ToAny())
}

func TestJSONRoundTrip(t *testing.T) {
	cfg := Config{
		"vitest": Mapping{"config": List("b")},
		"entry":  List("a"),
		"ignore": StringList(nil),
	}

	data, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"entry":["a"],"ignore":[],"vitest":{"config":["b"]}}`, string(data))
	assert.Equal(t, `{"entry":["a"],"ignore":[],"vitest":{"config":["b"]}}`, string(data), "keys are sorted")

	var decoded Config
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, Config{
		"entry":  List("a"),
		"ignore": StringList{},
		"vitest": Mapping{"config": List("b")},
	}, decoded)
}

func TestUnmarshalJSONRejectsNumbers(t *testing.T) {
	var decoded Config
	err := decoded.UnmarshalJSON([]byte(`{"entry":[1]}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, errUtils.ErrInvalidFragment)

	err = json.Unmarshal([]byte(`{"entry":[1]}`), &decoded)
	assert.Error(t, err)
}
