// Package knip models knip configuration fragments.
//
// A configuration is a Mapping from section names to Values, where a Value is
// either a StringList (globs or paths) or a nested Mapping of the same shape.
package knip

import (
	"slices"
)

// Value is a section body: StringList or Mapping.
type Value interface {
	// Clone returns a deep copy.
	Clone() Value

	isValue()
}

// StringList is a list of globs or paths.
type StringList []string

// Mapping is a nested section. A nil Value under a key is the same as a missing key.
type Mapping map[string]Value

// Config is a whole (partial) knip configuration.
type Config = Mapping

// List is shorthand for StringList{items...}.
func List(items ...string) StringList {
	return StringList(items)
}

func (StringList) isValue() {}

func (Mapping) isValue() {}

// Clone returns a copy of the list. A nil list stays nil.
func (l StringList) Clone() Value {
	return slices.Clone(l)
}

// Clone returns a deep copy of the mapping, dropping nil values.
func (m Mapping) Clone() Value {
	return m.CloneMapping()
}

// CloneMapping is Clone without the interface conversion.
func (m Mapping) CloneMapping() Mapping {
	out := make(Mapping, len(m))
	for k, v := range m {
		if v == nil {
			continue
		}
		out[k] = v.Clone()
	}
	return out
}

// Section returns the value stored under key and whether it is present.
func (m Mapping) Section(key string) (Value, bool) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// Strings returns the list stored under the dot-free path of keys.
func (m Mapping) Strings(path ...string) (StringList, bool) {
	v, ok := m.lookup(path)
	if !ok {
		return nil, false
	}
	l, ok := v.(StringList)
	return l, ok
}

// Mapping returns the nested mapping stored under the path of keys.
func (m Mapping) Mapping(path ...string) (Mapping, bool) {
	v, ok := m.lookup(path)
	if !ok {
		return nil, false
	}
	nested, ok := v.(Mapping)
	return nested, ok
}

func (m Mapping) lookup(path []string) (Value, bool) {
	if len(path) == 0 {
		return m, true
	}
	var current Value = m
	for _, key := range path {
		mapping, ok := current.(Mapping)
		if !ok {
			return nil, false
		}
		current, ok = mapping.Section(key)
		if !ok {
			return nil, false
		}
	}
	return current, true
}
