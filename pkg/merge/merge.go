// Package merge folds knip configuration fragments into one configuration.
package merge

import (
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/cloudposse/nx-knip/pkg/knip"
)

// Configs merges plugin outputs in order. None outputs contribute nothing.
//
// Lists present under the same key in several fragments are concatenated and
// deduplicated, keeping the first occurrence. Mappings are merged recursively.
// When the shapes disagree the later fragment wins.
// The inputs are never modified and the result shares no memory with them.
func Configs(outputs ...knip.Output) knip.Config {
	result := knip.Config{}
	for _, output := range outputs {
		if output.IsNone() {
			continue
		}
		mergeInto(result, output.OrEmpty())
	}
	return result
}

// Fragments merges configurations in order. Nil configurations are skipped.
func Fragments(configs ...knip.Config) knip.Config {
	result := knip.Config{}
	for _, cfg := range configs {
		if cfg != nil {
			mergeInto(result, cfg)
		}
	}
	return result
}

// mergeInto merges src into dst. dst must be owned by the caller.
func mergeInto(dst, src knip.Mapping) {
	for key, value := range src {
		if value == nil {
			continue
		}
		existing, ok := dst[key]
		if !ok || existing == nil {
			dst[key] = value.Clone()
			continue
		}
		dst[key] = mergeValues(existing, value)
	}
}

func mergeValues(dst, src knip.Value) knip.Value {
	switch d := dst.(type) {
	case knip.StringList:
		if s, ok := src.(knip.StringList); ok {
			return union(d, s)
		}
	case knip.Mapping:
		if s, ok := src.(knip.Mapping); ok {
			mergeInto(d, s)
			return d
		}
	}
	return src.Clone()
}

func union(a, b knip.StringList) knip.StringList {
	combined := make([]string, 0, len(a)+len(b))
	combined = append(combined, a...)
	combined = append(combined, b...)
	return lo.Uniq(combined)
}

// ShapeConflicts lists the dotted key paths where two fragments disagree on
// whether a value is a list or a mapping. Merging resolves those by letting the
// later fragment win; the paths are returned sorted for reporting.
func ShapeConflicts(configs ...knip.Config) []string {
	shapes := map[string]string{}
	conflicts := map[string]struct{}{}
	for _, cfg := range configs {
		collectShapes(cfg, nil, shapes, conflicts)
	}
	paths := lo.Keys(conflicts)
	sort.Strings(paths)
	return paths
}

func collectShapes(m knip.Mapping, prefix []string, shapes map[string]string, conflicts map[string]struct{}) {
	for key, value := range m {
		path := append(prefix[:len(prefix):len(prefix)], key)
		joined := strings.Join(path, ".")

		var shape string
		switch value.(type) {
		case knip.StringList:
			shape = "list"
		case knip.Mapping:
			shape = "mapping"
		default:
			continue
		}

		if seen, ok := shapes[joined]; ok && seen != shape {
			conflicts[joined] = struct{}{}
			shapes[joined] = shape
			continue
		}
		shapes[joined] = shape

		if nested, ok := value.(knip.Mapping); ok {
			collectShapes(nested, path, shapes, conflicts)
		}
	}
}
