package workspace

import (
	"dario.cat/mergo"
	"github.com/samber/lo"

	"github.com/cloudposse/nx-knip/pkg/schema"
)

// applyTargetDefaults fills the unset parts of target from nx.json targetDefaults.
// Defaults keyed by the executor take precedence over defaults keyed by the target name.
// Name-keyed defaults for a different executor are ignored.
// Values set on the target always win. Options merge one level deep, like Nx:
// a top-level option on the target replaces the default value whole.
func applyTargetDefaults(name string, target schema.Target, defaults map[string]schema.Target) (schema.Target, error) {
	def, ok := lookupTargetDefaults(name, target, defaults)
	if !ok {
		return cloneTarget(target), nil
	}

	options := mergeOptions(def.Options, target.Options)

	merged := cloneTarget(target)
	merged.Options, def.Options = nil, nil
	if err := mergo.Merge(&merged, def); err != nil {
		return schema.Target{}, err
	}
	merged.Options = options
	return merged, nil
}

func mergeOptions(defaults, options map[string]any) map[string]any {
	if defaults == nil && options == nil {
		return nil
	}
	return deepCopyMap(lo.Assign(defaults, options))
}

func lookupTargetDefaults(name string, target schema.Target, defaults map[string]schema.Target) (schema.Target, bool) {
	if target.Executor != "" {
		if def, ok := defaults[target.Executor]; ok {
			return def, true
		}
	}
	def, ok := defaults[name]
	if !ok {
		return schema.Target{}, false
	}
	if def.Executor != "" && target.Executor != "" && def.Executor != target.Executor {
		return schema.Target{}, false
	}
	return def, true
}

func cloneTarget(t schema.Target) schema.Target {
	out := t
	if t.Options != nil {
		out.Options = deepCopyMap(t.Options)
	}
	return out
}

func deepCopyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = deepCopyValue(v)
	}
	return out
}

func deepCopyValue(v any) any {
	switch typed := v.(type) {
	case map[string]any:
		return deepCopyMap(typed)
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = deepCopyValue(item)
		}
		return out
	default:
		return v
	}
}
