package dispatch

import (
	"errors"
	"fmt"
)

// ErrUnknownType is returned when a value's kind cannot be classified.
//
//	if _, err := dispatch.Resolve(f); errors.Is(err, dispatch.ErrUnknownType) {
//	    // f is a resource handle
//	}
var ErrUnknownType = errors.New("dispatch: unknown type")

// UnknownTypeError reports the Go type that could not be classified.
// It unwraps to [ErrUnknownType].
type UnknownTypeError struct {
	Type string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("dispatch: the type %s is not supported", e.Type)
}

// Unwrap returns [ErrUnknownType].
func (e *UnknownTypeError) Unwrap() error { return ErrUnknownType }
