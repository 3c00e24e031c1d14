package objects

import (
	"fmt"
	"math"

	"github.com/goccy/go-yaml"
)

// MarshalYAML encodes the Object as a YAML mapping with keys in insertion
// order.
func (o Object) MarshalYAML() (any, error) {
	ms := make(yaml.MapSlice, 0, len(o.keys))
	for _, k := range o.keys {
		ms = append(ms, yaml.MapItem{Key: k, Value: o.values[k]})
	}
	return ms, nil
}

// ToYAML serialises c as YAML. Objects keep their key order.
func ToYAML(c any) (string, error) {
	b, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	return string(b), nil
}

// FromYAML decodes a YAML document. Mappings decode to [Object] in document
// order with keys rendered as strings, sequences to []any and integers that
// fit to int.
func FromYAML(data []byte) (any, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return fromYAMLValue(v), nil
}

func fromYAMLValue(v any) any {
	switch x := v.(type) {
	case yaml.MapSlice:
		o := newObject(len(x))
		for _, item := range x {
			o.put(fmt.Sprint(item.Key), fromYAMLValue(item.Value))
		}
		return o
	case []any:
		out := make([]any, len(x))
		for i, item := range x {
			out[i] = fromYAMLValue(item)
		}
		return out
	case uint64:
		if x <= math.MaxInt {
			return int(x)
		}
	case int64:
		if x >= math.MinInt && x <= math.MaxInt {
			return int(x)
		}
	}
	return v
}
