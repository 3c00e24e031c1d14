// Package arr provides helpers for the Arrays handler-set: flattening
// nested documents into dot-notation keys and back, picking and dropping
// paths, recursive merges, chunking and JSONPath queries.
//
// Every helper accepts the dynamic containers understood by package objects
// ([objects.Object], map[string]any, []any and their typed or struct
// equivalents) and never modifies its input.
//
// # Dot notation
//
//	doc := map[string]any{
//	    "user": map[string]any{
//	        "name":    "Alice",
//	        "address": map[string]any{"city": "London"},
//	    },
//	}
//	flat := arr.Dot(doc)      // {"user.address.city":"London","user.name":"Alice"}
//	arr.Undot(flat)           // nested again, as Objects
//	arr.Only(doc, "user.name") // {"user":{"name":"Alice"}}
//
// # Querying
//
// [Query] evaluates an RFC 9535 JSONPath expression:
//
//	names, err := arr.Query(doc, "$.users[?@.age > 30].name")
package arr
