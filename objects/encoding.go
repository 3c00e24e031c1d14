package objects

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// MarshalJSON encodes the Object as a JSON object with keys in insertion
// order.
func (o Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := marshal(o.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, keeping the document's key order.
// Nested objects become Objects and arrays become []any.
func (o *Object) UnmarshalJSON(data []byte) error {
	v, err := FromJSON(data)
	if err != nil {
		return err
	}
	decoded, ok := v.(Object)
	if !ok {
		return fmt.Errorf("%w: expected an object, got %T", ErrInvalidJSON, v)
	}
	*o = decoded
	return nil
}

// ToJSON serialises c as compact JSON. Objects keep their key order; plain
// maps are emitted with sorted keys by encoding/json. <, > and & are
// written as is.
//
//	objects.ToJSON(objects.New(
//	    objects.Entry{Key: "foo", Value: "bar"},
//	    objects.Entry{Key: "bis", Value: "ter"},
//	)) // {"foo":"bar","bis":"ter"}
func ToJSON(c any) (string, error) {
	b, err := marshal(c)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	return string(b), nil
}

// marshal is json.Marshal without HTML escaping.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// ToPrettyJSON serialises c as indented JSON.
func ToPrettyJSON(c any) (string, error) {
	b, err := marshal(c)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	return string(pretty.Pretty(b)), nil
}

// FromJSON decodes a JSON document. Objects decode to [Object] in document
// key order, arrays to []any, integral numbers that fit to int and other
// numbers to float64.
func FromJSON(data []byte) (any, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	return fromResult(gjson.ParseBytes(data)), nil
}

func fromResult(r gjson.Result) any {
	switch r.Type {
	case gjson.Null:
		return nil
	case gjson.False:
		return false
	case gjson.True:
		return true
	case gjson.String:
		return r.Str
	case gjson.Number:
		return fromNumber(r)
	}
	if r.IsArray() {
		out := make([]any, 0)
		r.ForEach(func(_, v gjson.Result) bool {
			out = append(out, fromResult(v))
			return true
		})
		return out
	}
	o := newObject(0)
	r.ForEach(func(k, v gjson.Result) bool {
		o.put(k.Str, fromResult(v))
		return true
	})
	return o
}

func fromNumber(r gjson.Result) any {
	raw := strings.TrimSpace(r.Raw)
	if !strings.ContainsAny(raw, ".eE") {
		if i, err := strconv.ParseInt(raw, 10, 64); err == nil && i >= math.MinInt && i <= math.MaxInt {
			return int(i)
		}
	}
	return r.Num
}
