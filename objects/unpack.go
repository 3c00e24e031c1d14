package objects

import (
	"fmt"
	"reflect"
)

// ToObject coerces v into an Object:
//
//   - an Object is returned as is
//   - maps become Objects with sorted keys
//   - sequences are keyed "0", "1", …
//   - structs and struct pointers expose their exported fields (json tag
//     names honoured) in declaration order
//   - nil becomes an empty Object
//   - any other scalar is wrapped as {"scalar": v}
func ToObject(v any) Object {
	switch x := v.(type) {
	case Object:
		return x
	case *Object:
		if x == nil {
			return Object{}
		}
		return *x
	case map[string]any:
		return FromMap(x)
	case nil:
		return Object{}
	}
	if !isContainer(v) {
		return New(Entry{Key: "scalar", Value: v})
	}
	return New(entries(v)...)
}

// Unpack exposes the contents of a wrapper object. With an attribute it
// returns the value at that path; otherwise it returns the value of the
// first entry. The result is always coerced with [ToObject], so an empty
// input without an attribute yields an empty Object.
//
//	multi := objects.New(objects.Entry{Key: "attributes", Value: map[string]any{"name": "foo"}})
//	objects.Unpack(multi)               // {"name":"foo"}
//	objects.Unpack(multi, "attributes") // {"name":"foo"}
func Unpack(v any, attribute ...string) Object {
	view := ToObject(v)
	if len(attribute) > 0 && attribute[0] != "" {
		return ToObject(Get(view, attribute[0]))
	}
	first, ok := view.First()
	if !ok {
		return Object{}
	}
	return ToObject(first.Value)
}

// Methods returns the exported method names of v's concrete type, including
// methods promoted from embedded types and those declared on the pointer
// receiver. Names are in the lexicographic order reported by the runtime.
// A nil v has no methods.
func Methods(v any) []string {
	t := reflect.TypeOf(v)
	if t == nil {
		return []string{}
	}
	if t.Kind() != reflect.Pointer {
		t = reflect.PointerTo(t)
	}
	out := make([]string, t.NumMethod())
	for i := range out {
		out[i] = t.Method(i).Name
	}
	return out
}

// ToNative deep-converts Objects into map[string]any, leaving []any and
// map[string]any containers with their children converted. It is the shape
// expected by libraries that walk plain decoded JSON.
func ToNative(v any) any {
	switch x := v.(type) {
	case Object:
		out := make(map[string]any, x.Len())
		for k, val := range x.All() {
			out[k] = ToNative(val)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, val := range x {
			out[k] = ToNative(val)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, val := range x {
			out[i] = ToNative(val)
		}
		return out
	}
	return v
}

// Clone deep-copies Objects, map[string]any and []any containers. Other
// values, including typed maps and structs, are shared with v.
func Clone(v any) any {
	switch x := v.(type) {
	case Object:
		o := newObject(x.Len())
		for k, val := range x.All() {
			o.put(k, Clone(val))
		}
		return o
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, val := range x {
			out[k] = Clone(val)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, val := range x {
			out[i] = Clone(val)
		}
		return out
	}
	return v
}

// Keys returns the keys of c in iteration order. Sequence indexes are
// rendered as decimal strings.
func Keys(c any) []string {
	items := entries(c)
	out := make([]string, len(items))
	for i, e := range items {
		out[i] = e.Key
	}
	return out
}

// Values returns the values of c in iteration order.
func Values(c any) []any {
	items := entries(c)
	out := make([]any, len(items))
	for i, e := range items {
		out[i] = e.Value
	}
	return out
}

// Replace removes the entry at path old and stores v at path key,
// returning the authoritative root.
//
//	objects.Replace(o, "foo", "notfoo", "notbar")
func Replace(c any, old, key string, v any) any {
	return Set(Remove(c, old), key, v)
}

// Group buckets the elements of c by a grouping value computed like a
// [Sort] key (path string, func(any) any, or nil for the element itself).
// Bucket keys are the fmt representation of the grouping value, in order of
// first appearance; each bucket is a []any.
func Group(c any, by any) Object {
	o := newObject(0)
	for _, e := range entries(c) {
		k := groupKey(sortKey(e.Value, by))
		bucket, _ := o.values[k].([]any)
		o.put(k, append(bucket, e.Value))
	}
	return o
}

func groupKey(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
