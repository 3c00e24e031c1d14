package objects

import (
	"iter"
	"sort"

	"github.com/hasbyte1/go-underscore/dispatch"
)

// Entry is a single key/value pair of an [Object].
type Entry struct {
	Key   string
	Value any
}

// Object is an ordered key→value record with value semantics.
//
// Keys keep their insertion order, which drives iteration, [Object.Keys],
// JSON and YAML encoding. Builders such as [Object.With] and
// [Object.Without] return a modified copy and never touch the receiver,
// so an Object can be shared freely once built:
//
//	o := objects.New(objects.Entry{Key: "foo", Value: "bar"})
//	o2 := o.With("bis", "ter") // o still has one key
//
// The zero value is an empty Object ready to use.
type Object struct {
	keys   []string
	values map[string]any
}

// New creates an Object from entries. Later duplicates overwrite the value
// of an earlier key without moving it.
func New(entries ...Entry) Object {
	o := newObject(len(entries))
	for _, e := range entries {
		o.put(e.Key, e.Value)
	}
	return o
}

// FromMap creates an Object from m with its keys in sorted order.
// The map is copied shallowly.
func FromMap(m map[string]any) Object {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	o := newObject(len(keys))
	for _, k := range keys {
		o.put(k, m[k])
	}
	return o
}

func newObject(capacity int) Object {
	return Object{
		keys:   make([]string, 0, capacity),
		values: make(map[string]any, capacity),
	}
}

// put assigns in place. Only used while an Object is under construction.
func (o *Object) put(key string, value any) {
	if o.values == nil {
		o.values = make(map[string]any)
	}
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

func (o Object) clone(extra int) Object {
	c := newObject(len(o.keys) + extra)
	c.keys = append(c.keys, o.keys...)
	for k, v := range o.values {
		c.values[k] = v
	}
	return c
}

// Kind reports [dispatch.Record] so an Object always routes to the
// Objects handler-set.
func (o Object) Kind() dispatch.Kind { return dispatch.Record }

// Len returns the number of keys.
func (o Object) Len() int { return len(o.keys) }

// IsEmpty reports whether the Object has no keys.
func (o Object) IsEmpty() bool { return len(o.keys) == 0 }

// Get returns the value stored under key and whether it exists.
func (o Object) Get(key string) (any, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Has reports whether key exists.
func (o Object) Has(key string) bool {
	_, ok := o.values[key]
	return ok
}

// With returns a copy of o with key set to value. An existing key keeps its
// position; a new key is appended.
func (o Object) With(key string, value any) Object {
	c := o.clone(1)
	c.put(key, value)
	return c
}

// Without returns a copy of o without the given keys.
func (o Object) Without(keys ...string) Object {
	drop := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}
	c := newObject(len(o.keys))
	for _, k := range o.keys {
		if _, skip := drop[k]; !skip {
			c.put(k, o.values[k])
		}
	}
	return c
}

// Keys returns the keys in insertion order.
func (o Object) Keys() []string {
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Values returns the values in key order.
func (o Object) Values() []any {
	out := make([]any, len(o.keys))
	for i, k := range o.keys {
		out[i] = o.values[k]
	}
	return out
}

// Entries returns the key/value pairs in order.
func (o Object) Entries() []Entry {
	out := make([]Entry, len(o.keys))
	for i, k := range o.keys {
		out[i] = Entry{Key: k, Value: o.values[k]}
	}
	return out
}

// All iterates over the entries in order.
func (o Object) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, k := range o.keys {
			if !yield(k, o.values[k]) {
				return
			}
		}
	}
}

// First returns the first entry, or false when o is empty.
func (o Object) First() (Entry, bool) {
	if len(o.keys) == 0 {
		return Entry{}, false
	}
	k := o.keys[0]
	return Entry{Key: k, Value: o.values[k]}, true
}

// ToMap returns a shallow map copy. Key order is lost.
func (o Object) ToMap() map[string]any {
	out := make(map[string]any, len(o.keys))
	for k, v := range o.values {
		out[k] = v
	}
	return out
}

// Equal reports whether o and other hold the same keys with equal values.
// Key order is ignored; values are compared with [Equal].
func (o Object) Equal(other Object) bool {
	if len(o.keys) != len(other.keys) {
		return false
	}
	for k, v := range o.values {
		w, ok := other.values[k]
		if !ok || !Equal(v, w) {
			return false
		}
	}
	return true
}

// String returns the compact JSON form, or "{}" if a value cannot be encoded.
func (o Object) String() string {
	b, err := o.MarshalJSON()
	if err != nil {
		return "{}"
	}
	return string(b)
}
