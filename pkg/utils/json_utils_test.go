package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertToJSON(t *testing.T) {
	out, err := ConvertToJSON(map[string]any{
		"b": []string{"x"},
		"a": map[string]any{"d": 1, "c": true},
	})
	require.NoError(t, err)

	expected := `{
  "a": {
    "c": true,
    "d": 1
  },
  "b": [
    "x"
  ]
}`
	assert.Equal(t, expected, out)
}

func TestReadJSONFile(t *testing.T) {
	type manifest struct {
		Executors map[string]struct {
			Implementation string `json:"implementation"`
		} `json:"executors"`
	}

	dir := t.TempDir()
	valid := filepath.Join(dir, "executors.json")
	require.NoError(t, os.WriteFile(valid, []byte(`{"executors":{"build":{"implementation":"./src/build"}}}`), 0o644))
	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{"executors":`), 0o644))

	got, err := ReadJSONFile[manifest](valid)
	require.NoError(t, err)
	assert.Equal(t, "./src/build", got.Executors["build"].Implementation)

	_, err = ReadJSONFile[manifest](broken)
	assert.Error(t, err)

	got, ok := SafeReadJSONFile[manifest](valid)
	assert.True(t, ok)
	assert.Len(t, got.Executors, 1)

	got, ok = SafeReadJSONFile[manifest](broken)
	assert.False(t, ok)
	assert.Empty(t, got.Executors)

	_, ok = SafeReadJSONFile[manifest](filepath.Join(dir, "missing.json"))
	assert.False(t, ok)
}

func TestReadJSONCFile(t *testing.T) {
	type tsconfig struct {
		CompilerOptions struct {
			Paths map[string][]string `json:"paths"`
		} `json:"compilerOptions"`
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "tsconfig.base.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
  // generated by Nx
  "compilerOptions": {
    /* aliases */
    "paths": {
      "@org/ui": ["libs/ui/src/index.ts",],
    },
  },
}`), 0o644))

	_, err := ReadJSONFile[tsconfig](path)
	assert.Error(t, err)

	got, err := ReadJSONCFile[tsconfig](path)
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{"@org/ui": {"libs/ui/src/index.ts"}}, got.CompilerOptions.Paths)

	got, ok := SafeReadJSONFile[tsconfig](path)
	assert.True(t, ok)
	assert.Len(t, got.CompilerOptions.Paths, 1)

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{ // unterminated`), 0o644))
	_, err = ReadJSONCFile[tsconfig](broken)
	assert.Error(t, err)
}
