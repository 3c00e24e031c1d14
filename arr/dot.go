package arr

import (
	"github.com/hasbyte1/go-underscore/objects"
)

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation helpers
//
// Dot and Undot convert between nested documents and single-level Objects
// whose keys are dot-separated paths. Only, Except and Merge work on paths
// as well, so that
//
//	Only(doc, "user.name")
//
// keeps the nested shape {"user":{"name":…}} rather than a flat key.
// ─────────────────────────────────────────────────────────────────────────────

// Dot flattens c into a single-level Object keyed by dot-notation paths.
// Sequence positions become numeric segments. Empty containers are kept as
// leaf values so that Undot can restore them.
//
//	Dot(map[string]any{"a": map[string]any{"b": 1}, "c": []any{"x"}})
//	// → {"a.b":1,"c.0":"x"}
func Dot(c any, prefix ...string) objects.Object {
	var out []objects.Entry
	p := ""
	if len(prefix) > 0 {
		p = prefix[0]
	}
	dotFlatten(p, objects.ToObject(c), &out)
	return objects.New(out...)
}

func dotFlatten(prefix string, node objects.Object, out *[]objects.Entry) {
	for k, v := range node.All() {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := nestable(v); ok && !nested.IsEmpty() {
			dotFlatten(key, nested, out)
			continue
		}
		*out = append(*out, objects.Entry{Key: key, Value: v})
	}
}

// nestable reports whether Dot descends into v, returning its children.
func nestable(v any) (objects.Object, bool) {
	switch v.(type) {
	case objects.Object, map[string]any, []any:
		return objects.ToObject(v), true
	}
	return objects.Object{}, false
}

// Undot expands a flat dot-notation container into nested Objects.
// Keys are applied in iteration order, so a later "a.b" replaces an earlier
// scalar "a".
//
//	Undot(map[string]any{"a.b": 1, "a.c": 2})
//	// → {"a":{"b":1,"c":2}}
func Undot(c any) objects.Object {
	var root any = objects.Object{}
	for k, v := range objects.ToObject(c).All() {
		root = objects.Set(root, k, v)
	}
	return root.(objects.Object)
}

// Only returns an Object holding just the given paths of c, in the order the
// paths are listed. Missing paths are skipped.
func Only(c any, paths ...string) objects.Object {
	var out any = objects.Object{}
	for _, p := range paths {
		if !objects.Has(c, p) {
			continue
		}
		out = objects.Set(out, p, objects.Clone(objects.Get(c, p)))
	}
	return out.(objects.Object)
}

// Except returns a deep copy of c without the given paths.
func Except(c any, paths ...string) objects.Object {
	var out any = objects.Clone(objects.ToObject(c))
	for _, p := range paths {
		out = objects.Remove(out, p)
	}
	return out.(objects.Object)
}

// Merge returns dst with the entries of src merged in. Values in src win for
// matching keys; nested keyed containers are merged recursively and
// sequences are replaced. Neither input is modified.
func Merge(dst, src any) objects.Object {
	out := objects.ToObject(objects.Clone(dst))
	for k, srcVal := range objects.ToObject(src).All() {
		if dstVal, ok := out.Get(k); ok && isKeyed(dstVal) && isKeyed(srcVal) {
			out = out.With(k, Merge(dstVal, srcVal))
			continue
		}
		out = out.With(k, objects.Clone(srcVal))
	}
	return out
}

func isKeyed(v any) bool {
	switch v.(type) {
	case objects.Object, map[string]any:
		return true
	}
	return false
}
