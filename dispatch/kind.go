package dispatch

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
)

// Kind is the closed set of value shapes the dispatcher distinguishes.
type Kind string

const (
	Null     = Kind("null")
	Bool     = Kind("bool")
	Number   = Kind("number")
	Text     = Kind("text")
	Sequence = Kind("sequence")
	Mapping  = Kind("mapping")
	Record   = Kind("record")
	Callable = Kind("callable")
)

// HandlerSet names the method table responsible for a value.
type HandlerSet string

const (
	Strings   = HandlerSet("Strings")
	Numbers   = HandlerSet("Number")
	Arrays    = HandlerSet("Arrays")
	Objects   = HandlerSet("Objects")
	Functions = HandlerSet("Functions")
)

// HandlerSets returns every handler-set in a fixed order.
func HandlerSets() []HandlerSet {
	return []HandlerSet{Strings, Numbers, Arrays, Objects, Functions}
}

// String implements fmt.Stringer.
func (h HandlerSet) String() string { return string(h) }

// Valid reports whether h is one of the known handler-sets.
func (h HandlerSet) Valid() bool {
	switch h {
	case Strings, Numbers, Arrays, Objects, Functions:
		return true
	}
	return false
}

// HandlerSet returns the handler-set servicing values of kind k.
func (k Kind) HandlerSet() HandlerSet {
	switch k {
	case Callable:
		return Functions
	case Number:
		return Numbers
	case Sequence, Mapping:
		return Arrays
	case Record:
		return Objects
	default:
		return Strings
	}
}

// Classifier is implemented by types that report their own Kind.
type Classifier interface {
	Kind() Kind
}

// Resolve returns the handler-set for v.
// It fails with an [*UnknownTypeError] when v cannot be classified.
func Resolve(v any) (HandlerSet, error) {
	k, err := KindOf(v)
	if err != nil {
		return "", err
	}
	return k.HandlerSet(), nil
}

// MustResolve is like [Resolve] but panics on unknown types.
func MustResolve(v any) HandlerSet {
	h, err := Resolve(v)
	if err != nil {
		panic(err)
	}
	return h
}

// KindOf classifies v. Callables are checked before numbers, numbers before
// containers, containers before records and records before text.
func KindOf(v any) (Kind, error) {
	switch v := v.(type) {
	case nil:
		return Null, nil
	case Classifier:
		return v.Kind(), nil
	case func(), func() any, func(any) any, func(...any) any,
		func(any) (any, error), func(...any) (any, error):
		return Callable, nil
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, json.Number:
		return Number, nil
	case []any, []string, []int, []float64, []map[string]any:
		return Sequence, nil
	case map[string]any, map[string]string:
		return Mapping, nil
	case string, []byte:
		return Text, nil
	case bool:
		return Bool, nil
	case io.Closer:
		if isHandle(reflect.ValueOf(v)) {
			return "", &UnknownTypeError{Type: fmt.Sprintf("%T", v)}
		}
	}
	return kindOfValue(reflect.ValueOf(v))
}

// isHandle reports whether rv is a non-nil pointer to a struct without
// exported fields, the shape of *os.File and connection types. Closers
// that expose fields are classified like any other record.
func isHandle(rv reflect.Value) bool {
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return false
	}
	t := rv.Elem().Type()
	for i := range t.NumField() {
		if t.Field(i).IsExported() {
			return false
		}
	}
	return true
}

// kindOfValue handles named and composite types by their underlying kind.
func kindOfValue(rv reflect.Value) (Kind, error) {
	switch rv.Kind() {
	case reflect.Func:
		return Callable, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return Number, nil
	case reflect.Slice, reflect.Array:
		return Sequence, nil
	case reflect.Map:
		return Mapping, nil
	case reflect.Struct:
		return Record, nil
	case reflect.String:
		return Text, nil
	case reflect.Bool:
		return Bool, nil
	case reflect.Pointer:
		if rv.IsNil() {
			return Null, nil
		}
		return KindOf(rv.Elem().Interface())
	}
	return "", &UnknownTypeError{Type: rv.Type().String()}
}
