package objects

import (
	"fmt"
	"slices"
	"strings"
)

// PathOptions configures how a [Resolver] splits and expands paths.
type PathOptions struct {
	// Delimiter separates path segments. Default ".".
	Delimiter string

	// Wildcard is the segment that fans out over every child. Default "*".
	Wildcard string
}

// DefaultPathOptions returns the options used by the package-level
// functions: "." as delimiter and "*" as wildcard.
func DefaultPathOptions() PathOptions {
	return PathOptions{Delimiter: ".", Wildcard: "*"}
}

// Resolver reads and writes nested containers addressed by delimited paths.
// A Resolver holds no mutable state and is safe for concurrent use; the
// containers passed to it are not.
type Resolver struct {
	opts PathOptions
}

// NewResolver validates opts and returns a Resolver.
// It returns [ErrInvalidOption] when the delimiter or wildcard is empty or
// when they are equal.
func NewResolver(opts PathOptions) (*Resolver, error) {
	if opts.Delimiter == "" {
		return nil, fmt.Errorf("%w: delimiter must not be empty", ErrInvalidOption)
	}
	if opts.Wildcard == "" {
		return nil, fmt.Errorf("%w: wildcard must not be empty", ErrInvalidOption)
	}
	if opts.Delimiter == opts.Wildcard {
		return nil, fmt.Errorf("%w: delimiter and wildcard must differ (both %q)", ErrInvalidOption, opts.Delimiter)
	}
	return &Resolver{opts: opts}, nil
}

var std = &Resolver{opts: DefaultPathOptions()}

// Options returns the options the Resolver was built with.
func (r *Resolver) Options() PathOptions { return r.opts }

func (r *Resolver) split(path string) []string {
	return strings.Split(path, r.opts.Delimiter)
}

// ─────────────────────────────────────────────────────────────────────────────
// Reading
// ─────────────────────────────────────────────────────────────────────────────

// Get returns the value at path inside c, or def[0] (nil when omitted) if
// any segment is missing. A default of type func() any is only invoked when
// it is needed.
//
// A key equal to the whole path is matched before the path is split, so
// keys that contain the delimiter stay reachable. A wildcard segment
// collects the remainder of the path across every child and returns the
// found values as []any. An empty path returns c itself.
func (r *Resolver) Get(c any, path string, def ...any) any {
	if path == "" {
		return c
	}
	if v, ok := r.lookup(c, path); ok {
		return v
	}
	return fallback(def)
}

// Has reports whether path resolves inside c.
func (r *Resolver) Has(c any, path string) bool {
	if path == "" {
		return false
	}
	_, ok := r.lookup(c, path)
	return ok
}

func (r *Resolver) lookup(c any, path string) (any, bool) {
	if v, ok := child(c, path); ok {
		return v, true
	}
	return r.walk(c, r.split(path))
}

func (r *Resolver) walk(node any, segments []string) (any, bool) {
	for i, seg := range segments {
		if seg == r.opts.Wildcard {
			return r.expand(node, segments[i+1:])
		}
		v, ok := child(node, seg)
		if !ok {
			return nil, false
		}
		node = v
	}
	return node, true
}

func (r *Resolver) expand(node any, rest []string) (any, bool) {
	if !isContainer(node) {
		return nil, false
	}
	nested := slices.Contains(rest, r.opts.Wildcard)
	out := make([]any, 0)
	for _, e := range entries(node) {
		if len(rest) == 0 {
			out = append(out, e.Value)
			continue
		}
		v, ok := r.walk(e.Value, rest)
		if !ok {
			continue
		}
		if inner, isList := v.([]any); nested && isList {
			out = append(out, inner...)
			continue
		}
		out = append(out, v)
	}
	return out, true
}

func fallback(def []any) any {
	if len(def) == 0 {
		return nil
	}
	if fn, ok := def[0].(func() any); ok {
		return fn()
	}
	return def[0]
}

// ─────────────────────────────────────────────────────────────────────────────
// Writing
// ─────────────────────────────────────────────────────────────────────────────

// Set stores v at path inside c and returns the authoritative root.
//
// Missing or scalar intermediate segments are replaced by empty containers:
// an Object under an Object parent, a map[string]any otherwise. Maps,
// in-range slice positions and struct pointers are updated in place; Object
// roots are rebuilt, and writing at index len(slice) appends, so callers
// must always use the returned value. Existing containers that cannot be
// written in place (typed slices, arrays and struct values) are replaced by
// a copy holding the same children: a []any for sequences, an Object of the
// fields for structs. A nil root becomes a new map[string]any; other scalar
// roots and an empty path are returned unchanged. A wildcard segment writes
// through every existing child.
func (r *Resolver) Set(c any, path string, v any) any {
	if path == "" {
		return c
	}
	if c == nil {
		c = map[string]any{}
	}
	if !isWritable(c) {
		cp, ok := writableCopy(c)
		if !ok {
			return c
		}
		c = cp
	}
	return r.setPath(c, r.split(path), v)
}

func (r *Resolver) setPath(node any, segments []string, v any) any {
	seg, rest := segments[0], segments[1:]
	if seg == r.opts.Wildcard {
		for _, e := range entries(node) {
			if len(rest) == 0 {
				node = assign(node, e.Key, v)
			} else if next, ok := writableNode(e.Value); ok {
				node = assign(node, e.Key, r.setPath(next, rest, v))
			}
		}
		return node
	}
	if len(rest) == 0 {
		return assign(node, seg, v)
	}
	next, ok := child(node, seg)
	switch {
	case !ok || !isContainer(next):
		next = emptyLike(node)
	default:
		if next, ok = writableNode(next); !ok {
			return node
		}
	}
	return assign(node, seg, r.setPath(next, rest, v))
}

// SetAndGet stores def at path only when the path is absent, then returns
// the authoritative root and the value now at path.
func (r *Resolver) SetAndGet(c any, path string, def any) (any, any) {
	if !r.Has(c, path) {
		c = r.Set(c, path, def)
	}
	return c, r.Get(c, path)
}

// Remove deletes the entry at path and returns the authoritative root.
// Removing a path that does not exist is a no-op. Removing from a slice
// yields a new, shorter slice.
func (r *Resolver) Remove(c any, path string) any {
	if path == "" || c == nil {
		return c
	}
	return r.removePath(c, r.split(path))
}

func (r *Resolver) removePath(node any, segments []string) any {
	seg, rest := segments[0], segments[1:]
	if seg == r.opts.Wildcard {
		if len(rest) == 0 {
			// backwards so sequence indexes stay valid while shifting
			items := entries(node)
			for i := len(items) - 1; i >= 0; i-- {
				node = unset(node, items[i].Key)
			}
			return node
		}
		for _, e := range entries(node) {
			if next, ok := writableNode(e.Value); ok {
				node = assign(node, e.Key, r.removePath(next, rest))
			}
		}
		return node
	}
	if len(rest) == 0 {
		return unset(node, seg)
	}
	next, ok := child(node, seg)
	if !ok {
		return node
	}
	if !isWritable(next) {
		// copy only when there is something to remove
		if _, found := r.walk(next, rest); !found {
			return node
		}
		if next, ok = writableNode(next); !ok {
			return node
		}
	}
	return assign(node, seg, r.removePath(next, rest))
}

// ─────────────────────────────────────────────────────────────────────────────
// Package-level shortcuts using DefaultPathOptions
// ─────────────────────────────────────────────────────────────────────────────

// Get returns the value at the dot-notation path inside c, or def[0].
//
//	objects.Get(m, "user.address.city")        // "London"
//	objects.Get(m, "user.missing", "default")  // "default"
//	objects.Get(users, "*.name")               // []any{"Alice", "Bob"}
func Get(c any, path string, def ...any) any { return std.Get(c, path, def...) }

// Has reports whether the dot-notation path resolves inside c.
func Has(c any, path string) bool { return std.Has(c, path) }

// Set stores v at the dot-notation path and returns the authoritative root.
//
//	o = objects.Set(o, "foo.bar.bis", "ter").(objects.Object)
func Set(c any, path string, v any) any { return std.Set(c, path, v) }

// SetAndGet stores def at path when absent and returns (root, value).
func SetAndGet(c any, path string, def any) (any, any) { return std.SetAndGet(c, path, def) }

// Remove deletes the dot-notation path and returns the authoritative root.
func Remove(c any, path string) any { return std.Remove(c, path) }
