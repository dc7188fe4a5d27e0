package utils

import (
	"bytes"
	stdjson "encoding/json"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/tailscale/hujson"
)

// Map keys are sorted so encoded output is stable across runs.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

const jsonIndent = "  "

// ConvertToJSON encodes data as indented JSON.
// jsoniter's own indentation is wrong for nested values, so the compact output is re-indented.
func ConvertToJSON(data any) (string, error) {
	j, err := json.Marshal(data)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := stdjson.Indent(&buf, j, "", jsonIndent); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ReadJSONFile decodes the JSON file at path into T.
func ReadJSONFile[T any](path string) (T, error) {
	var out T
	data, err := os.ReadFile(path)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, err
	}
	return out, nil
}

// ReadJSONCFile is ReadJSONFile for files that may contain comments and
// trailing commas, such as tsconfig.json and Nx plugin manifests.
func ReadJSONCFile[T any](path string) (T, error) {
	var out T
	data, err := os.ReadFile(path)
	if err != nil {
		return out, err
	}
	data, err = hujson.Standardize(data)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, err
	}
	return out, nil
}

// SafeReadJSONFile is ReadJSONCFile for optional files: a missing or malformed
// file yields the zero value and false instead of an error.
func SafeReadJSONFile[T any](path string) (T, bool) {
	out, err := ReadJSONCFile[T](path)
	if err != nil {
		var zero T
		return zero, false
	}
	return out, true
}
