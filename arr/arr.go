package arr

import (
	"fmt"

	"github.com/hasbyte1/go-underscore/dispatch"
	"github.com/hasbyte1/go-underscore/objects"
)

// ─────────────────────────────────────────────────────────────────────────────
// Searching
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element of c, optionally the first one matching
// fns[0]. It returns nil and false when c is empty or nothing matches.
func First(c any, fns ...func(any) bool) (any, bool) {
	for _, v := range objects.Values(c) {
		if len(fns) == 0 || fns[0](v) {
			return v, true
		}
	}
	return nil, false
}

// Last returns the last element of c, optionally the last one matching
// fns[0]. It returns nil and false when c is empty or nothing matches.
func Last(c any, fns ...func(any) bool) (any, bool) {
	values := objects.Values(c)
	for i := len(values) - 1; i >= 0; i-- {
		if len(fns) == 0 || fns[0](values[i]) {
			return values[i], true
		}
	}
	return nil, false
}

// ─────────────────────────────────────────────────────────────────────────────
// Restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Flatten collects the leaf values of c in iteration order, descending into
// nested sequences, maps and Objects. A positive depth limits how many
// levels are unwrapped; Flatten(c, 1) only unwraps the direct children.
//
//	Flatten([]any{1, []any{2, []any{3}}})    // → [1 2 3]
//	Flatten([]any{1, []any{2, []any{3}}}, 1) // → [1 2 [3]]
func Flatten(c any, depth ...int) []any {
	limit := 0
	if len(depth) > 0 {
		limit = depth[0]
	}
	out := make([]any, 0)
	var flatten func(v any, level int)
	flatten = func(v any, level int) {
		for _, elem := range objects.Values(v) {
			if isNested(elem) && (limit <= 0 || level < limit) {
				flatten(elem, level+1)
				continue
			}
			out = append(out, elem)
		}
	}
	flatten(c, 0)
	return out
}

func isNested(v any) bool {
	if _, ok := v.(objects.Object); ok {
		return true
	}
	k, err := dispatch.KindOf(v)
	if err != nil {
		return false
	}
	return k == dispatch.Sequence || k == dispatch.Mapping
}

// Chunk splits c into consecutive groups of size elements; the last group
// may be shorter. Sequences yield []any chunks, keyed containers yield
// Object chunks that keep their keys. Scalars have no elements.
//
//	Chunk([]any{1, 2, 3, 4, 5}, 2) // → [[1 2] [3 4] [5]]
func Chunk(c any, size int) ([]any, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChunkSize, size)
	}
	keys, values := objects.Keys(c), objects.Values(c)
	keyed := isKeyedContainer(c)
	chunks := make([]any, 0, (len(values)+size-1)/size)
	for i := 0; i < len(values); i += size {
		end := min(i+size, len(values))
		if !keyed {
			part := make([]any, end-i)
			copy(part, values[i:end])
			chunks = append(chunks, part)
			continue
		}
		part := make([]objects.Entry, 0, end-i)
		for j := i; j < end; j++ {
			part = append(part, objects.Entry{Key: keys[j], Value: values[j]})
		}
		chunks = append(chunks, objects.New(part...))
	}
	return chunks, nil
}

func isKeyedContainer(c any) bool {
	if _, ok := c.(objects.Object); ok {
		return true
	}
	k, err := dispatch.KindOf(c)
	return err == nil && (k == dispatch.Mapping || k == dispatch.Record)
}
