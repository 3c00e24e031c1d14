package objects

import (
	"cmp"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"
)

// Operator is a comparison tag used by [FilterBy] and [FindBy].
type Operator string

const (
	OpEqual          = Operator("eq")
	OpNotEqual       = Operator("ne")
	OpLess           = Operator("lt")
	OpGreater        = Operator("gt")
	OpLessOrEqual    = Operator("lte")
	OpGreaterOrEqual = Operator("gte")
	OpContains       = Operator("contains")
	OpNotContains    = Operator("notContains")
	OpNewer          = Operator("newer")
	OpOlder          = Operator("older")
)

// Valid reports whether op is a known operator.
func (op Operator) Valid() bool {
	switch op {
	case OpEqual, OpNotEqual, OpLess, OpGreater, OpLessOrEqual, OpGreaterOrEqual,
		OpContains, OpNotContains, OpNewer, OpOlder:
		return true
	}
	return false
}

// ParseOperator converts a tag such as "lte" into an Operator.
// The empty string parses as [OpEqual].
func ParseOperator(s string) (Operator, error) {
	if s == "" {
		return OpEqual, nil
	}
	op := Operator(s)
	if !op.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownOperator, s)
	}
	return op, nil
}

// Compare evaluates "actual op expected".
//
// Numbers of any Go numeric type (and json.Number) compare by value, so
// int(5), int64(5) and 5.0 are equal. Strings compare lexically, bools as
// false < true and time.Time chronologically. Ordinal operators across
// incompatible kinds, or involving nil, are false rather than an error.
// contains and notContains test whether actual is a member of expected,
// which is treated as a one-element list when it is not a sequence.
// newer and older compare timestamps given as time.Time or as strings in
// RFC 3339, time.DateTime or time.DateOnly layout.
func Compare(actual, expected any, op Operator) bool {
	switch op {
	case OpEqual:
		return Equal(actual, expected)
	case OpNotEqual:
		return !Equal(actual, expected)
	case OpLess:
		c, ok := order(actual, expected)
		return ok && c < 0
	case OpGreater:
		c, ok := order(actual, expected)
		return ok && c > 0
	case OpLessOrEqual:
		c, ok := order(actual, expected)
		return ok && c <= 0
	case OpGreaterOrEqual:
		c, ok := order(actual, expected)
		return ok && c >= 0
	case OpContains:
		return member(actual, expected)
	case OpNotContains:
		return !member(actual, expected)
	case OpNewer, OpOlder:
		a, ok := toTime(actual)
		if !ok {
			return false
		}
		b, ok := toTime(expected)
		if !ok {
			return false
		}
		if op == OpNewer {
			return a.After(b)
		}
		return a.Before(b)
	}
	return false
}

// Equal reports structural equality with numeric normalisation.
// Objects compare key-order-insensitively, and an Object equals a
// map[string]any holding the same entries.
func Equal(a, b any) bool {
	if x, ok := toNumber(a); ok {
		y, ok := toNumber(b)
		return ok && x.compare(y) == 0
	}
	if x, ok := keyed(a); ok {
		y, ok := keyed(b)
		return ok && x.Equal(y)
	}
	switch x := a.(type) {
	case []any:
		y, ok := b.([]any)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case time.Time:
		y, ok := b.(time.Time)
		return ok && x.Equal(y)
	}
	return reflect.DeepEqual(a, b)
}

func keyed(v any) (Object, bool) {
	switch x := v.(type) {
	case Object:
		return x, true
	case map[string]any:
		return FromMap(x), true
	}
	return Object{}, false
}

// order compares two values of the same class. ok is false when the values
// are not mutually ordered.
func order(a, b any) (int, bool) {
	if x, ok := toNumber(a); ok {
		y, ok := toNumber(b)
		if !ok {
			return 0, false
		}
		return x.compare(y), true
	}
	switch x := a.(type) {
	case string:
		y, ok := b.(string)
		return strings.Compare(x, y), ok
	case bool:
		y, ok := b.(bool)
		return cmp.Compare(boolRank(x), boolRank(y)), ok
	case time.Time:
		y, ok := b.(time.Time)
		return x.Compare(y), ok
	}
	return 0, false
}

// sortCompare is a total order used by [Sort]: values are ranked by class
// (nil < bool < number < string < time < anything else) and then compared
// within the class. Unordered values of the last class tie.
func sortCompare(a, b any) int {
	if c := cmp.Compare(classRank(a), classRank(b)); c != 0 {
		return c
	}
	c, _ := order(a, b)
	return c
}

func classRank(v any) int {
	if v == nil {
		return 0
	}
	if _, ok := toNumber(v); ok {
		return 2
	}
	switch v.(type) {
	case bool:
		return 1
	case string:
		return 3
	case time.Time:
		return 4
	}
	return 5
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

func member(v, list any) bool {
	if !isSequence(list) {
		return Equal(v, list)
	}
	for _, e := range entries(list) {
		if Equal(v, e.Value) {
			return true
		}
	}
	return false
}

// Float converts any Go numeric value or json.Number to float64.
func Float(v any) (float64, bool) {
	n, ok := toNumber(v)
	if !ok {
		return 0, false
	}
	return n.float(), true
}

// number holds a numeric value exactly when it is integral and fits in an
// int64, and as a float64 otherwise.
type number struct {
	i     int64
	f     float64
	isInt bool
}

func (n number) float() float64 {
	if n.isInt {
		return float64(n.i)
	}
	return n.f
}

func (n number) compare(m number) int {
	if n.isInt && m.isInt {
		return cmp.Compare(n.i, m.i)
	}
	return cmp.Compare(n.float(), m.float())
}

func toNumber(v any) (number, bool) {
	switch n := v.(type) {
	case int:
		return number{i: int64(n), isInt: true}, true
	case int64:
		return number{i: n, isInt: true}, true
	case float64:
		return number{f: n}, true
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return number{i: i, isInt: true}, true
		}
		if f, err := n.Float64(); err == nil {
			return number{f: f}, true
		}
		return number{}, false
	case nil, string, bool:
		return number{}, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return number{i: rv.Int(), isInt: true}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return number{f: float64(u)}, true
		}
		return number{i: int64(u), isInt: true}, true
	case reflect.Float32, reflect.Float64:
		return number{f: rv.Float()}, true
	}
	return number{}, false
}

var timeLayouts = []string{time.RFC3339Nano, time.RFC3339, time.DateTime, time.DateOnly}

func toTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case *time.Time:
		if t == nil {
			return time.Time{}, false
		}
		return *t, true
	case string:
		for _, layout := range timeLayouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed, true
			}
		}
	}
	return time.Time{}, false
}
