// Package objects provides path-addressed access, filtering, sorting and
// aggregation over mapping-like structures, modelled after Underscore's
// CollectionMethods and ObjectsMethods.
//
// # Containers
//
// Every function accepts an arbitrary value and works uniformly over:
//
//   - [Object], an ordered key→value record with value semantics
//   - map[string]any and other string-keyed maps (iterated in key order)
//   - []any and other slices or arrays (iterated in index order)
//   - structs and struct pointers (exported fields, json tag names honoured)
//
// Anything else is a scalar with no children.
//
// # Paths
//
// Nested values are addressed with dot-notation paths. Sequence elements are
// addressed by decimal index and "*" fans out over every child:
//
//	m := map[string]any{
//	    "users": []any{
//	        map[string]any{"name": "Alice", "age": 31},
//	        map[string]any{"name": "Bob", "age": 27},
//	    },
//	}
//	objects.Get(m, "users.0.name")       // "Alice"
//	objects.Get(m, "users.*.name")       // []any{"Alice", "Bob"}
//	objects.Get(m, "users.9.name", "?")  // "?"
//	m = objects.Set(m, "meta.count", 2).(map[string]any)
//	m = objects.Remove(m, "users.1").(map[string]any)
//
// Reads never fail: a missing segment yields the supplied default. Writes
// return the authoritative root; maps are updated in place while an Object
// is rebuilt, so always use the return value. Use [NewResolver] for a
// different delimiter or wildcard.
//
// # Querying
//
//	objects.FilterBy(items, "value", 2000, objects.OpLess)
//	objects.FindBy(items, "name", "baz")
//	objects.Sort(items, "child.sort", "desc")
//	objects.Pluck(items, "name")
//
// Comparison rules are documented on [Compare]; [Sort] uses a total order
// over value classes and is stable in both directions.
//
// # Serialisation
//
// [ToJSON] produces compact JSON preserving Object key order; [FromJSON] and
// [FromYAML] decode documents into Objects without losing key order.
// [RawGet], [RawSet] and [RawRemove] apply the same paths to JSON bytes.
package objects
