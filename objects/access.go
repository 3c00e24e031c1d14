package objects

import (
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Node-level access shared by the path resolver and the collection helpers.
//
// The common container types (Object, map[string]any, []any) are handled by
// type switches. Typed slices, string-keyed maps, structs and pointers to
// structs go through reflection so that callers can work with their own
// types without converting them first.

// child returns the value stored under key in node.
func child(node any, key string) (any, bool) {
	switch n := node.(type) {
	case Object:
		return n.Get(key)
	case map[string]any:
		v, ok := n[key]
		return v, ok
	case []any:
		i, ok := index(key, len(n))
		if !ok {
			return nil, false
		}
		return n[i], true
	case nil:
		return nil, false
	}
	return childValue(reflect.ValueOf(node), key)
}

func childValue(rv reflect.Value, key string) (any, bool) {
	rv = indirect(rv)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		v := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
		if !v.IsValid() {
			return nil, false
		}
		return v.Interface(), true
	case reflect.Slice, reflect.Array:
		i, ok := index(key, rv.Len())
		if !ok {
			return nil, false
		}
		return rv.Index(i).Interface(), true
	case reflect.Struct:
		f, ok := fieldByKey(rv, key)
		if !ok {
			return nil, false
		}
		return f.Interface(), true
	}
	return nil, false
}

// index parses key as a position inside a sequence of length n.
func index(key string, n int) (int, bool) {
	i, err := strconv.Atoi(key)
	if err != nil || i < 0 || i >= n {
		return 0, false
	}
	return i, true
}

// isContainer reports whether node has children that can be addressed.
func isContainer(node any) bool {
	switch node.(type) {
	case Object, map[string]any, []any:
		return true
	case nil:
		return false
	}
	switch indirect(reflect.ValueOf(node)).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		return true
	}
	return false
}

// isWritable reports whether assign can store into node.
func isWritable(node any) bool {
	switch n := node.(type) {
	case Object, map[string]any, []any:
		return true
	case nil:
		return false
	default:
		rv := reflect.ValueOf(n)
		switch rv.Kind() {
		case reflect.Map:
			return !rv.IsNil() && rv.Type().Key().Kind() == reflect.String
		case reflect.Pointer:
			return !rv.IsNil() && rv.Elem().Kind() == reflect.Struct
		}
	}
	return false
}

// writableNode returns node when assign can store into it, or a writable
// copy of a container that cannot be updated in place.
func writableNode(node any) (any, bool) {
	if isWritable(node) {
		return node, true
	}
	return writableCopy(node)
}

// writableCopy copies the children of a typed slice, array or struct value
// into a []any or an Object. Text and other values have no copy.
func writableCopy(node any) (any, bool) {
	if _, ok := node.([]byte); ok {
		return nil, false
	}
	rv := indirect(reflect.ValueOf(node))
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out, true
	case reflect.Struct:
		fields := entriesOfValue(rv)
		o := newObject(len(fields))
		for _, e := range fields {
			o.put(e.Key, e.Value)
		}
		return o, true
	}
	return nil, false
}

// emptyLike returns a fresh intermediate container for a write under parent.
func emptyLike(parent any) any {
	if _, ok := parent.(Object); ok {
		return Object{}
	}
	return map[string]any{}
}

// assign stores value under key and returns the authoritative node. Maps,
// in-range slice positions and struct pointers are updated in place; an
// Object is rebuilt; writing at index len(slice) appends.
func assign(node any, key string, value any) any {
	switch n := node.(type) {
	case Object:
		return n.With(key, value)
	case map[string]any:
		n[key] = value
		return n
	case []any:
		i, err := strconv.Atoi(key)
		switch {
		case err != nil || i < 0 || i > len(n):
			return n
		case i == len(n):
			return append(n, value)
		}
		n[i] = value
		return n
	}
	assignValue(reflect.ValueOf(node), key, value)
	return node
}

func assignValue(rv reflect.Value, key string, value any) {
	switch rv.Kind() {
	case reflect.Map:
		if rv.IsNil() || rv.Type().Key().Kind() != reflect.String {
			return
		}
		if v, ok := convertTo(value, rv.Type().Elem()); ok {
			rv.SetMapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()), v)
		}
	case reflect.Pointer:
		if rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
			return
		}
		f, ok := fieldByKey(rv.Elem(), key)
		if !ok || !f.CanSet() {
			return
		}
		if v, ok := convertTo(value, f.Type()); ok {
			f.Set(v)
		}
	}
}

// unset deletes key from node and returns the authoritative node.
func unset(node any, key string) any {
	switch n := node.(type) {
	case Object:
		if !n.Has(key) {
			return n
		}
		return n.Without(key)
	case map[string]any:
		delete(n, key)
		return n
	case []any:
		i, ok := index(key, len(n))
		if !ok {
			return n
		}
		out := make([]any, 0, len(n)-1)
		out = append(out, n[:i]...)
		return append(out, n[i+1:]...)
	case nil:
		return nil
	}
	rv := reflect.ValueOf(node)
	if rv.Kind() == reflect.Map && !rv.IsNil() && rv.Type().Key().Kind() == reflect.String {
		rv.SetMapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()), reflect.Value{})
	}
	return node
}

// entries lists the children of node in iteration order: insertion order
// for Objects and structs, sorted keys for maps, index order for sequences.
// Scalars have no entries.
func entries(node any) []Entry {
	switch n := node.(type) {
	case Object:
		return n.Entries()
	case map[string]any:
		return FromMap(n).Entries()
	case []any:
		out := make([]Entry, len(n))
		for i, v := range n {
			out[i] = Entry{Key: strconv.Itoa(i), Value: v}
		}
		return out
	case nil:
		return nil
	}
	return entriesOfValue(reflect.ValueOf(node))
}

func entriesOfValue(rv reflect.Value) []Entry {
	rv = indirect(rv)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil
		}
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		out := make([]Entry, len(keys))
		for i, k := range keys {
			out[i] = Entry{Key: k.String(), Value: rv.MapIndex(k).Interface()}
		}
		return out
	case reflect.Slice, reflect.Array:
		out := make([]Entry, rv.Len())
		for i := range out {
			out[i] = Entry{Key: strconv.Itoa(i), Value: rv.Index(i).Interface()}
		}
		return out
	case reflect.Struct:
		fields := structFields(rv.Type())
		out := make([]Entry, 0, len(fields))
		for _, f := range fields {
			v, err := rv.FieldByIndexErr(f.index)
			if err != nil {
				continue
			}
			out = append(out, Entry{Key: f.name, Value: v.Interface()})
		}
		return out
	}
	return nil
}

// isSequence reports whether node is an index-addressed container.
func isSequence(node any) bool {
	switch node.(type) {
	case []any:
		return true
	case Object, map[string]any, nil, string, []byte:
		return false
	}
	switch reflect.ValueOf(node).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	}
	return false
}

func indirect(rv reflect.Value) reflect.Value {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}

func convertTo(value any, t reflect.Type) (reflect.Value, bool) {
	if value == nil {
		switch t.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice:
			return reflect.Zero(t), true
		}
		return reflect.Value{}, false
	}
	v := reflect.ValueOf(value)
	if v.Type().AssignableTo(t) {
		return v, true
	}
	if v.Type().ConvertibleTo(t) && v.Kind() != reflect.String && t.Kind() != reflect.String {
		return v.Convert(t), true
	}
	return reflect.Value{}, false
}

type structField struct {
	name  string
	index []int
}

// structFields lists the exported fields of t in declaration order, named by
// their json tag when present. Fields tagged `json:"-"` are skipped and
// promoted fields of embedded structs are included.
func structFields(t reflect.Type) []structField {
	var out []structField
	for _, f := range reflect.VisibleFields(t) {
		if !f.IsExported() || f.Anonymous {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("json"); ok {
			tagName, _, _ := strings.Cut(tag, ",")
			if tagName == "-" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
		}
		out = append(out, structField{name: name, index: f.Index})
	}
	return out
}

func fieldByKey(rv reflect.Value, key string) (reflect.Value, bool) {
	for _, f := range structFields(rv.Type()) {
		if f.name == key {
			v, err := rv.FieldByIndexErr(f.index)
			if err != nil {
				return reflect.Value{}, false
			}
			return v, true
		}
	}
	return reflect.Value{}, false
}
