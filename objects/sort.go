package objects

import (
	"sort"
	"strings"
)

// Sort returns the elements of c ordered by a sort key.
//
// by selects the key: a path string resolved with [Get], a func(any) any
// accessor, or nil to sort by the elements themselves. order is "asc"
// (default) or "desc", case-insensitive. The sort is stable in both
// directions: elements with equal keys keep their original relative order.
//
// Sequences yield a new []any. Objects and maps yield an Object whose keys
// follow the sorted order. c is never modified.
//
//	objects.Sort(people, "child.sort", "desc")
//	objects.Sort(people, func(p any) any { return objects.Get(p, "age") })
func Sort(c any, by any, order ...string) any {
	desc := len(order) > 0 && strings.EqualFold(order[0], "desc")

	type keyed struct {
		entry Entry
		key   any
	}
	items := entries(c)
	sorted := make([]keyed, len(items))
	for i, e := range items {
		sorted[i] = keyed{entry: e, key: sortKey(e.Value, by)}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		c := sortCompare(sorted[i].key, sorted[j].key)
		if desc {
			return c > 0
		}
		return c < 0
	})

	if isSequence(c) || !isContainer(c) {
		out := make([]any, len(sorted))
		for i, k := range sorted {
			out[i] = k.entry.Value
		}
		return out
	}
	o := newObject(len(sorted))
	for _, k := range sorted {
		o.put(k.entry.Key, k.entry.Value)
	}
	return o
}

func sortKey(v any, by any) any {
	switch by := by.(type) {
	case nil:
		return v
	case string:
		if by == "" {
			return v
		}
		return Get(v, by)
	case func(any) any:
		return by(v)
	}
	return v
}
