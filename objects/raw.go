package objects

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Path helpers for serialised JSON documents. They accept the same
// dot-notation paths as [Get], [Set] and [Remove] but edit the bytes
// directly, leaving untouched parts of the document as they were.

// RawGet returns the decoded value at path inside the JSON document doc.
// A wildcard segment fans out over array elements.
func RawGet(doc []byte, path string) (any, bool) {
	res := gjson.GetBytes(doc, rawPath(path, true))
	if !res.Exists() {
		return nil, false
	}
	return fromResult(res), true
}

// RawSet stores v at path inside doc, creating missing objects.
func RawSet(doc []byte, path string, v any) ([]byte, error) {
	if len(doc) == 0 {
		doc = []byte("{}")
	}
	out, err := sjson.SetBytes(doc, rawPath(path, false), v)
	if err != nil {
		return nil, fmt.Errorf("%w: set %q: %v", ErrInvalidJSON, path, err)
	}
	return out, nil
}

// RawRemove deletes path from doc. A missing path leaves doc unchanged.
func RawRemove(doc []byte, path string) ([]byte, error) {
	out, err := sjson.DeleteBytes(doc, rawPath(path, false))
	if err != nil {
		return nil, fmt.Errorf("%w: remove %q: %v", ErrInvalidJSON, path, err)
	}
	return out, nil
}

// rawPath escapes every segment for the gjson/sjson path syntax. For
// queries an inner wildcard becomes gjson's array fan-out "#"; a trailing
// wildcard is dropped because the array itself already holds every child.
func rawPath(path string, query bool) string {
	segments := strings.Split(path, ".")
	out := make([]string, 0, len(segments))
	for i, seg := range segments {
		if query && seg == "*" {
			if i == len(segments)-1 {
				continue
			}
			out = append(out, "#")
			continue
		}
		out = append(out, gjson.Escape(seg))
	}
	return strings.Join(out, ".")
}
