package repository

import (
	"fmt"
	"sort"

	"github.com/hasbyte1/go-underscore/dispatch"
	"github.com/hasbyte1/go-underscore/objects"
)

// Repository holds a subject together with the handler-set that services
// it. A Repository is immutable: Do and the fluent helpers return a new
// value, so a Repository may be shared between goroutines.
type Repository struct {
	handler dispatch.HandlerSet
	subject any
	err     error
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// From wraps subject in a Repository of its handler-set.
// It fails with a [*dispatch.UnknownTypeError] when subject cannot be
// classified.
func From(subject any) (*Repository, error) {
	h, err := dispatch.Resolve(subject)
	if err != nil {
		return nil, err
	}
	return &Repository{handler: h, subject: subject}, nil
}

// MustFrom is like [From] but panics on unknown types.
func MustFrom(subject any) *Repository {
	r, err := From(subject)
	if err != nil {
		panic(err)
	}
	return r
}

// New returns a Repository of handler-set h holding its default subject:
// an empty Object for Objects, an empty []any for Arrays, "" for Strings,
// 0 for Number and a no-op func() any for Functions.
func New(h dispatch.HandlerSet) (*Repository, error) {
	var subject any
	switch h {
	case dispatch.Objects:
		subject = objects.Object{}
	case dispatch.Arrays:
		subject = []any{}
	case dispatch.Strings:
		subject = ""
	case dispatch.Numbers:
		subject = 0
	case dispatch.Functions:
		subject = func() any { return nil }
	default:
		return nil, fmt.Errorf("%w: unknown handler-set %q", ErrInvalidArgument, h)
	}
	return &Repository{handler: h, subject: subject}, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Obtain returns the wrapped subject.
func (r *Repository) Obtain() any { return r.subject }

// Handler returns the handler-set servicing the subject.
func (r *Repository) Handler() dispatch.HandlerSet { return r.handler }

// Err returns the first error recorded by a [Repository.Do] chain.
func (r *Repository) Err() error { return r.err }

// IsEmpty reports whether the subject is empty for its handler-set: no
// elements for Arrays and Objects, "" for Strings, zero for Number and nil
// for Functions.
func (r *Repository) IsEmpty() bool {
	switch r.handler {
	case dispatch.Arrays, dispatch.Objects:
		return len(objects.Values(r.subject)) == 0
	case dispatch.Numbers:
		f, _ := objects.Float(r.subject)
		return f == 0
	case dispatch.Strings:
		s, _ := text(r.subject)
		return s == ""
	}
	return r.subject == nil
}

// String renders the subject: Strings as themselves, everything else as
// compact JSON, falling back to fmt formatting for values JSON cannot hold.
func (r *Repository) String() string {
	if r.handler == dispatch.Strings {
		s, _ := text(r.subject)
		return s
	}
	s, err := objects.ToJSON(r.subject)
	if err != nil {
		return fmt.Sprint(r.subject)
	}
	return s
}

// Methods lists the names callable on r: built-in methods of its
// handler-set plus registered extensions, sorted and without duplicates.
func (r *Repository) Methods() []string {
	seen := make(map[string]struct{})
	for name := range builtins[r.handler] {
		seen[name] = struct{}{}
	}
	for _, name := range extensionNames(r.handler) {
		seen[name] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ─────────────────────────────────────────────────────────────────────────────
// Calling methods
// ─────────────────────────────────────────────────────────────────────────────

// Call invokes method name on the subject and returns its raw result.
// Extensions registered for the handler-set win over built-in methods.
func (r *Repository) Call(name string, args ...any) (any, error) {
	if name == "" {
		return nil, ErrEmptyMethodName
	}
	if fn, ok := extension(r.handler, name); ok {
		return fn(r.subject, args...)
	}
	if fn, ok := builtins[r.handler][name]; ok {
		return fn(r.subject, args...)
	}
	return nil, fmt.Errorf("%w: %s.%s", ErrMethodNotFound, r.handler, name)
}

// Do invokes method name and wraps the result in a new Repository of the
// result's handler-set. Once a call fails, Do returns the failed Repository
// unchanged and the error is reported by [Repository.Err].
func (r *Repository) Do(name string, args ...any) *Repository {
	if r.err != nil {
		return r
	}
	v, err := r.Call(name, args...)
	if err != nil {
		return &Repository{handler: r.handler, subject: r.subject, err: err}
	}
	h, err := dispatch.Resolve(v)
	if err != nil {
		return &Repository{handler: r.handler, subject: r.subject, err: fmt.Errorf("%s: %w", name, err)}
	}
	return &Repository{handler: h, subject: v}
}

// ─────────────────────────────────────────────────────────────────────────────
// Fluent path helpers
// ─────────────────────────────────────────────────────────────────────────────

// Get returns the value at path inside the subject, or def[0].
func (r *Repository) Get(path string, def ...any) any {
	return objects.Get(r.subject, path, def...)
}

// Set returns a Repository whose subject has v stored at path.
func (r *Repository) Set(path string, v any) *Repository {
	return r.Do("set", path, v)
}

// Remove returns a Repository whose subject no longer has path.
func (r *Repository) Remove(path string) *Repository {
	return r.Do("remove", path)
}
