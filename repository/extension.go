package repository

import (
	"fmt"
	"sort"
	"sync"

	"github.com/hasbyte1/go-underscore/dispatch"
)

// MethodFunc is the signature of every repository method, built-in or
// registered. subject is the wrapped value; args are the call arguments.
type MethodFunc func(subject any, args ...any) (any, error)

// extensions is the package-level, goroutine-safe extension store, keyed by
// handler-set and then by method name.
var extensions struct {
	mu      sync.RWMutex
	methods map[dispatch.HandlerSet]map[string]MethodFunc
}

func init() {
	extensions.methods = make(map[dispatch.HandlerSet]map[string]MethodFunc)
}

// Extend registers fn as method name of handler-set h. An existing
// extension with that name is replaced. Safe to call from multiple
// goroutines.
//
//	repository.Extend(dispatch.Arrays, "sum", func(s any, _ ...any) (any, error) {
//	    total := 0.0
//	    for _, v := range objects.Values(s) {
//	        f, _ := objects.Float(v)
//	        total += f
//	    }
//	    return total, nil
//	})
func Extend(h dispatch.HandlerSet, name string, fn MethodFunc) error {
	switch {
	case name == "":
		return ErrEmptyMethodName
	case fn == nil:
		return fmt.Errorf("%w: %q", ErrNilMethod, name)
	case !h.Valid():
		return fmt.Errorf("%w: unknown handler-set %q", ErrInvalidArgument, h)
	}
	extensions.mu.Lock()
	defer extensions.mu.Unlock()
	if extensions.methods[h] == nil {
		extensions.methods[h] = make(map[string]MethodFunc)
	}
	extensions.methods[h][name] = fn
	return nil
}

// HasExtension reports whether name is registered for handler-set h.
func HasExtension(h dispatch.HandlerSet, name string) bool {
	_, ok := extension(h, name)
	return ok
}

// FlushExtensions removes all registered extensions.
// Intended for use in tests.
func FlushExtensions() {
	extensions.mu.Lock()
	defer extensions.mu.Unlock()
	extensions.methods = make(map[dispatch.HandlerSet]map[string]MethodFunc)
}

func extension(h dispatch.HandlerSet, name string) (MethodFunc, bool) {
	extensions.mu.RLock()
	defer extensions.mu.RUnlock()
	fn, ok := extensions.methods[h][name]
	return fn, ok
}

func extensionNames(h dispatch.HandlerSet) []string {
	extensions.mu.RLock()
	defer extensions.mu.RUnlock()
	names := make([]string, 0, len(extensions.methods[h]))
	for name := range extensions.methods[h] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
