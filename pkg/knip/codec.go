package knip

import (
	"fmt"
	"slices"
	"strings"

	jsoniter "github.com/json-iterator/go"

	errUtils "github.com/cloudposse/nx-knip/errors"
)

// Sorted map keys keep the encoded output byte-for-byte stable.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FromAny converts loosely typed data (decoded JSON or YAML) into a Config.
// Lists must contain only strings; nil values are dropped.
func FromAny(data map[string]any) (Config, error) {
	return fromMap(data, nil)
}

func fromMap(data map[string]any, path []string) (Mapping, error) {
	out := make(Mapping, len(data))
	for key, raw := range data {
		v, err := fromValue(raw, append(slices.Clip(path), key))
		if err != nil {
			return nil, err
		}
		if v != nil {
			out[key] = v
		}
	}
	return out, nil
}

func fromValue(raw any, path []string) (Value, error) {
	switch typed := raw.(type) {
	case nil:
		return nil, nil
	case []string:
		return StringList(typed).Clone(), nil
	case []any:
		list := make(StringList, 0, len(typed))
		for i, item := range typed {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s[%d] must be a string, got %T", errUtils.ErrInvalidFragment, strings.Join(path, "."), i, item)
			}
			list = append(list, s)
		}
		return list, nil
	case map[string]any:
		return fromMap(typed, path)
	case map[string][]string:
		m := make(Mapping, len(typed))
		for k, v := range typed {
			m[k] = StringList(v).Clone()
		}
		return m, nil
	case map[any]any:
		converted := make(map[string]any, len(typed))
		for k, v := range typed {
			converted[fmt.Sprintf("%v", k)] = v
		}
		return fromMap(converted, path)
	default:
		return nil, fmt.Errorf("%w: %s must be a list of strings or a mapping, got %T", errUtils.ErrInvalidFragment, strings.Join(path, "."), raw)
	}
}

// ToAny converts the mapping into plain maps and string slices.
func (m Mapping) ToAny() map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		switch typed := v.(type) {
		case StringList:
			if typed == nil {
				out[k] = []string{}
				continue
			}
			out[k] = []string(typed)
		case Mapping:
			out[k] = typed.ToAny()
		}
	}
	return out
}

// MarshalJSON encodes the mapping with sorted keys.
func (m Mapping) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.ToAny())
}

// UnmarshalJSON decodes a JSON object into the mapping.
func (m *Mapping) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	decoded, err := FromAny(raw)
	if err != nil {
		return err
	}
	*m = decoded
	return nil
}

// MarshalJSON encodes a nil list as an empty array.
func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// MarshalYAML hands plain maps to the YAML encoder, which sorts keys.
func (m Mapping) MarshalYAML() (any, error) {
	return m.ToAny(), nil
}
