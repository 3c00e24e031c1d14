package repository

import (
	"fmt"
	"reflect"
	"sync"
)

var functionMethods = table{
	"call": func(s any, args ...any) (any, error) {
		return invoke(s, args)
	},
	"once": func(s any, _ ...any) (any, error) {
		var (
			once   sync.Once
			result any
			err    error
		)
		return func(args ...any) (any, error) {
			once.Do(func() { result, err = invoke(s, args) })
			return result, err
		}, nil
	},
}

var errorType = reflect.TypeFor[error]()

// invoke calls fn with args. The common callable shapes are called
// directly; any other function goes through reflection, where a trailing
// error result is returned as the call error.
func invoke(fn any, args []any) (any, error) {
	switch f := fn.(type) {
	case func():
		f()
		return nil, nil
	case func() any:
		return f(), nil
	case func(any) any:
		return f(first(args)), nil
	case func(...any) any:
		return f(args...), nil
	case func(any) (any, error):
		return f(first(args))
	case func(...any) (any, error):
		return f(args...)
	}
	return invokeValue(fn, args)
}

func first(args []any) any {
	if len(args) == 0 {
		return nil
	}
	return args[0]
}

func invokeValue(fn any, args []any) (any, error) {
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return nil, fmt.Errorf("%w: %T is not callable", ErrInvalidArgument, fn)
	}
	t := rv.Type()
	if t.IsVariadic() {
		if len(args) < t.NumIn()-1 {
			return nil, fmt.Errorf("%w: %s takes at least %d arguments, got %d", ErrInvalidArgument, t, t.NumIn()-1, len(args))
		}
	} else if len(args) != t.NumIn() {
		return nil, fmt.Errorf("%w: %s takes %d arguments, got %d", ErrInvalidArgument, t, t.NumIn(), len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, a := range args {
		pt := paramType(t, i)
		if a == nil {
			in[i] = reflect.Zero(pt)
			continue
		}
		v := reflect.ValueOf(a)
		switch {
		case v.Type().AssignableTo(pt):
		case v.Type().ConvertibleTo(pt) && v.Kind() != reflect.String && pt.Kind() != reflect.String:
			v = v.Convert(pt)
		default:
			return nil, fmt.Errorf("%w: %s argument %d wants %s, got %T", ErrInvalidArgument, t, i, pt, a)
		}
		in[i] = v
	}

	out := rv.Call(in)
	if n := len(out); n > 0 && t.Out(n-1) == errorType {
		var err error
		if e := out[n-1].Interface(); e != nil {
			err = e.(error)
		}
		out = out[:n-1]
		if len(out) == 0 {
			return nil, err
		}
		return out[0].Interface(), err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0].Interface(), nil
}

func paramType(t reflect.Type, i int) reflect.Type {
	if t.IsVariadic() && i >= t.NumIn()-1 {
		return t.In(t.NumIn() - 1).Elem()
	}
	return t.In(i)
}
