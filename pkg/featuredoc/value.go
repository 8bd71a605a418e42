package featuredoc

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// decodeValue decodes a raw entry value with the TOML decoder.
func decodeValue(raw string) (any, error) {
	var doc struct {
		V any `toml:"v"`
	}
	if _, err := toml.Decode("v = "+raw, &doc); err != nil {
		return nil, err
	}
	return doc.V, nil
}

// decodeFeatureRefs decodes a feature value, which must be an array of
// strings naming other features or dependency features.
func decodeFeatureRefs(raw string) ([]string, error) {
	v, err := decodeValue(raw)
	if err != nil {
		return nil, err
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("expected an array, got %T", v)
	}
	refs := make([]string, 0, len(arr))
	for _, item := range arr {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("expected a string, got %T", item)
		}
		refs = append(refs, s)
	}
	return refs, nil
}

// isOptional reports whether a decoded dependency value is an inline table
// carrying optional = true.
func isOptional(v any) bool {
	t, ok := v.(map[string]any)
	if !ok {
		return false
	}
	b, ok := t["optional"].(bool)
	return ok && b
}
