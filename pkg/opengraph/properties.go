package opengraph

import (
	"fmt"
	"maps"
	"slices"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Properties is a flat, insertion-ordered bag of key-value attributes attached
// to a node or edge. Values are restricted to what the OpenGraph schema can
// carry: JSON scalars and homogeneous arrays of one scalar type. The order of
// first insertion is preserved through serialization so that output is
// reproducible; overwriting an existing key keeps its original position.
//
// The zero value is not usable - use [NewProperties].
type Properties struct {
	values *orderedmap.OrderedMap[string, any]
}

// NewProperties creates an empty property bag.
func NewProperties() *Properties {
	return &Properties{values: orderedmap.New[string, any]()}
}

// PropertyMap builds a property bag from a plain map, inserting keys in sorted
// order for determinism. It returns an error if any key or value is invalid.
func PropertyMap(m map[string]any) (*Properties, error) {
	p := NewProperties()
	for _, k := range sortedKeys(m) {
		if err := p.Set(k, m[k]); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Set stores a value under key, overwriting any previous value. Returns
// ErrInvalidPropertyKey if key is empty, or ErrInvalidValueKind if value is
// not a schema-representable scalar or homogeneous array.
func (p *Properties) Set(key string, value any) error {
	if key == "" {
		return ErrInvalidPropertyKey
	}
	if !validPropertyValue(value) {
		return fmt.Errorf("%w: %q has type %T", ErrInvalidValueKind, key, value)
	}
	p.values.Set(key, value)
	return nil
}

// Get returns the value stored under key and whether it exists.
func (p *Properties) Get(key string) (any, bool) {
	if p == nil || p.values == nil {
		return nil, false
	}
	return p.values.Get(key)
}

// Has reports whether key exists.
func (p *Properties) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

// Remove deletes key if present. Removing an absent key is a no-op.
func (p *Properties) Remove(key string) {
	if p != nil && p.values != nil {
		p.values.Delete(key)
	}
}

// Clear removes all properties.
func (p *Properties) Clear() {
	if p == nil {
		return
	}
	p.values = orderedmap.New[string, any]()
}

// Len returns the number of properties.
func (p *Properties) Len() int {
	if p == nil || p.values == nil {
		return 0
	}
	return p.values.Len()
}

// Keys returns the property keys in insertion order.
func (p *Properties) Keys() []string {
	if p == nil || p.values == nil {
		return nil
	}
	keys := make([]string, 0, p.values.Len())
	for pair := p.values.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// ToMap returns the properties as a plain map. The result is a copy; mutating
// it does not affect the bag. Iteration order of the returned map is
// unspecified - use [Properties.Keys] where order matters.
func (p *Properties) ToMap() map[string]any {
	m := make(map[string]any, p.Len())
	if p == nil || p.values == nil {
		return m
	}
	for pair := p.values.Oldest(); pair != nil; pair = pair.Next() {
		m[pair.Key] = pair.Value
	}
	return m
}

// MarshalJSON encodes the bag as a JSON object with keys in insertion order.
// A nil or empty bag encodes as {}.
func (p *Properties) MarshalJSON() ([]byte, error) {
	if p == nil || p.values == nil || p.values.Len() == 0 {
		return []byte("{}"), nil
	}
	return p.values.MarshalJSON()
}

// UnmarshalJSON decodes a JSON object, preserving document key order and
// validating every value at the boundary.
func (p *Properties) UnmarshalJSON(data []byte) error {
	decoded := orderedmap.New[string, any]()
	if err := decoded.UnmarshalJSON(data); err != nil {
		return err
	}
	p.values = orderedmap.New[string, any]()
	for pair := decoded.Oldest(); pair != nil; pair = pair.Next() {
		if err := p.Set(pair.Key, pair.Value); err != nil {
			return err
		}
	}
	return nil
}

// scalarKind classifies a value by its JSON type. Arrays must be homogeneous
// in these terms: mixing int and float64 is fine (both are JSON numbers),
// mixing strings and numbers is not.
type scalarKind int

const (
	kindInvalid scalarKind = iota
	kindNull
	kindString
	kindBool
	kindNumber
)

func scalarKindOf(v any) scalarKind {
	switch v.(type) {
	case nil:
		return kindNull
	case string:
		return kindString
	case bool:
		return kindBool
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return kindNumber
	}
	return kindInvalid
}

func validPropertyValue(v any) bool {
	if scalarKindOf(v) != kindInvalid {
		return true
	}
	switch arr := v.(type) {
	case []string, []bool,
		[]int, []int32, []int64,
		[]float32, []float64:
		return true
	case []any:
		return homogeneous(arr)
	}
	return false
}

func homogeneous(arr []any) bool {
	if len(arr) == 0 {
		return true
	}
	first := scalarKindOf(arr[0])
	if first == kindInvalid || first == kindNull {
		return false
	}
	for _, item := range arr[1:] {
		if scalarKindOf(item) != first {
			return false
		}
	}
	return true
}

func sortedKeys(m map[string]any) []string {
	return slices.Sorted(maps.Keys(m))
}
