package arr

import (
	"encoding/json"
	"fmt"

	"github.com/theory/jsonpath"
)

// Query selects the nodes of c matched by the RFC 9535 JSONPath expression
// expr, in document order. c is first normalised to its JSON form, so the
// results are plain decoded JSON: map[string]any, []any, float64, string,
// bool and nil. No match yields an empty slice.
//
//	Query(doc, "$.users[*].name")
//	Query(doc, "$..price")
//	Query(doc, "$.users[?@.age >= 18]")
func Query(c any, expr string) ([]any, error) {
	path, err := jsonpath.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidQuery, expr, err)
	}
	data, err := normalise(c)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
	}
	nodes := path.Select(data)
	out := make([]any, 0, len(nodes))
	return append(out, nodes...), nil
}

// normalise converts c into the value encoding/json would decode from its
// serialised form.
func normalise(c any) (any, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return v, nil
}
