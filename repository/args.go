package repository

import (
	"fmt"
	"reflect"

	"github.com/hasbyte1/go-underscore/objects"
)

// Argument helpers shared by the method tables. Positions are zero-based
// and errors name the method and position.

func argError(method string, i int, want string, got any) error {
	return fmt.Errorf("%w: %s expects %s at position %d, got %T", ErrInvalidArgument, method, want, i, got)
}

func arg(method string, args []any, i int) (any, error) {
	if i >= len(args) {
		return nil, fmt.Errorf("%w: %s needs at least %d arguments", ErrInvalidArgument, method, i+1)
	}
	return args[i], nil
}

func stringArg(method string, args []any, i int) (string, error) {
	v, err := arg(method, args, i)
	if err != nil {
		return "", err
	}
	s, ok := text(v)
	if !ok {
		return "", argError(method, i, "a string", v)
	}
	return s, nil
}

// optString returns def when position i is absent or nil.
func optString(method string, args []any, i int, def string) (string, error) {
	if i >= len(args) || args[i] == nil {
		return def, nil
	}
	return stringArg(method, args, i)
}

func intArg(method string, args []any, i int) (int, error) {
	v, err := arg(method, args, i)
	if err != nil {
		return 0, err
	}
	f, ok := objects.Float(v)
	if !ok || f != float64(int(f)) {
		return 0, argError(method, i, "an integer", v)
	}
	return int(f), nil
}

// optInt returns def when position i is absent or nil.
func optInt(method string, args []any, i int, def int) (int, error) {
	if i >= len(args) || args[i] == nil {
		return def, nil
	}
	return intArg(method, args, i)
}

func floatArg(method string, args []any, i int) (float64, error) {
	v, err := arg(method, args, i)
	if err != nil {
		return 0, err
	}
	f, ok := objects.Float(v)
	if !ok {
		return 0, argError(method, i, "a number", v)
	}
	return f, nil
}

// operatorArg parses an optional comparison operator; absent means the
// objects default.
func operatorArg(method string, args []any, i int) ([]objects.Operator, error) {
	if i >= len(args) || args[i] == nil {
		return nil, nil
	}
	s, err := stringArg(method, args, i)
	if err != nil {
		return nil, err
	}
	op, err := objects.ParseOperator(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidArgument, method, err)
	}
	return []objects.Operator{op}, nil
}

// stringsArg collects positions i.. as strings; a single []string argument
// is accepted as well.
func stringsArg(method string, args []any, i int) ([]string, error) {
	if i < len(args) {
		if list, ok := args[i].([]string); ok && i == len(args)-1 {
			return list, nil
		}
	}
	out := make([]string, 0, len(args))
	for j := i; j < len(args); j++ {
		s, err := stringArg(method, args, j)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// text accepts string-like values: string, []byte and named string types
// such as objects.Operator.
func text(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case []byte:
		return string(s), true
	case nil:
		return "", false
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}
