// Package yaml builds treedec value trees from YAML input using gopkg.in/yaml.v3.
package yaml

import (
	"fmt"
	"io"

	yamlv3 "gopkg.in/yaml.v3"

	treedec "github.com/treedec/treedec"
)

// Bytes parses one YAML document from b into a Value.
func Bytes(b []byte) (treedec.Value, error) {
	var raw any
	if err := yamlv3.Unmarshal(b, &raw); err != nil {
		return treedec.Value{}, fmt.Errorf("yaml source: %w", err)
	}
	return treedec.FromAny(normalize(raw))
}

// Reader parses one YAML document from r into a Value.
func Reader(r io.Reader) (treedec.Value, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return treedec.Value{}, fmt.Errorf("yaml source: %w", err)
	}
	return Bytes(b)
}

// normalize rewrites map[any]any mappings (produced for non-scalar or mixed
// YAML keys) into map[string]any where every key is a string, so FromAny can
// classify them as keyed containers.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, child := range t {
			t[k] = normalize(child)
		}
		return t
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, child := range t {
			ks, ok := k.(string)
			if !ok {
				// leave as-is; FromAny reports the unsupported type
				return t
			}
			m[ks] = normalize(child)
		}
		return m
	case []any:
		for i, child := range t {
			t[i] = normalize(child)
		}
		return t
	default:
		return v
	}
}
