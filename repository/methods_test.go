package repository_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/hasbyte1/go-underscore/arr"
	"github.com/hasbyte1/go-underscore/objects"
	"github.com/hasbyte1/go-underscore/repository"
)

func call(t *testing.T, subject any, name string, args ...any) any {
	t.Helper()
	v, err := repository.MustFrom(subject).Call(name, args...)
	if err != nil {
		t.Fatalf("%s(%v): %v", name, args, err)
	}
	return v
}

// ─── Collections ──────────────────────────────────────────────────────────────

func TestCollectionMethods(t *testing.T) {
	a := rows()
	if got := call(t, a, "filterBy", "value", 2000, "lt").([]any); len(got) != 1 {
		t.Fatalf("filterBy lt = %v", got)
	}
	if got := call(t, a, "findBy", "name", "nobody").(objects.Object); !got.IsEmpty() {
		t.Fatalf("findBy without match = %v", got)
	}
	assertEqual(t, call(t, a, "pluck", "id"), []any{123, 456, 499, 789})
	if n := call(t, a, "size"); n != 4 {
		t.Fatalf("size = %v", n)
	}
	g := call(t, a, "group", "group").(objects.Object)
	assertSlice(t, g.Keys(), []string{"primary", "secondary"})
	if has := call(t, a, "has", "0.name"); has != true {
		t.Fatal("has 0.name should be true")
	}
	if s := call(t, objects.New(objects.Entry{Key: "a", Value: 1}), "toJSON"); s != `{"a":1}` {
		t.Fatalf("toJSON = %v", s)
	}
}

func TestCollectionSortByAccessor(t *testing.T) {
	got := call(t, rows(), "sort", func(v any) any { return objects.Get(v, "id") }, "desc")
	assertEqual(t, objects.Pluck(got, "id"), []any{789, 499, 456, 123})
}

func TestSetAndGetMethod(t *testing.T) {
	src := map[string]any{"a": 1}
	if v := call(t, src, "setAndGet", "b", 2); v != 2 {
		t.Fatalf("setAndGet absent = %v", v)
	}
	if v := call(t, src, "setAndGet", "a", 9); v != 1 {
		t.Fatalf("setAndGet present = %v", v)
	}
	if _, ok := src["b"]; ok {
		t.Fatal("setAndGet modified the subject")
	}
}

func TestReplaceMethod(t *testing.T) {
	o := objects.New(
		objects.Entry{Key: "foo", Value: "bar"},
		objects.Entry{Key: "bis", Value: "ter"},
	)
	got := call(t, o, "replace", "foo", "notfoo", "notbar")
	assertEqual(t, got, map[string]any{"notfoo": "notbar", "bis": "ter"})
}

func TestObjectMethods(t *testing.T) {
	multi := objects.New(objects.Entry{Key: "attributes", Value: map[string]any{"name": "foo", "age": 18}})
	got := call(t, multi, "unpack").(objects.Object)
	if v, _ := got.Get("name"); v != "foo" {
		t.Fatalf("unpack = %v", got)
	}
	names := call(t, account{}, "methods").([]string)
	if len(names) != 0 {
		t.Fatalf("methods(account) = %v; want none", names)
	}
	o := call(t, account{Name: "Ada"}, "toObject").(objects.Object)
	if v, _ := o.Get("name"); v != "Ada" {
		t.Fatalf("toObject = %v", o)
	}
}

// ─── Arrays ───────────────────────────────────────────────────────────────────

func TestArrayMethods(t *testing.T) {
	list := []any{1, []any{2, 3}, 4}
	if v := call(t, list, "first"); v != 1 {
		t.Fatalf("first = %v", v)
	}
	if v := call(t, list, "last", func(v any) bool { _, ok := v.([]any); return ok }); !objects.Equal(v, []any{2, 3}) {
		t.Fatalf("last predicate = %v", v)
	}
	assertEqual(t, call(t, list, "flatten"), []any{1, 2, 3, 4})
	assertEqual(t, call(t, []any{1, 2, 3}, "chunk", 2), []any{[]any{1, 2}, []any{3}})

	doc := map[string]any{"a": map[string]any{"b": 1, "c": 2}}
	assertSlice(t, call(t, doc, "dot").(objects.Object).Keys(), []string{"a.b", "a.c"})
	assertEqual(t, call(t, map[string]any{"a.b": 1}, "undot"), map[string]any{"a": map[string]any{"b": 1}})
	assertEqual(t, call(t, doc, "only", "a.b"), map[string]any{"a": map[string]any{"b": 1}})
	assertEqual(t, call(t, doc, "except", []string{"a.b"}), map[string]any{"a": map[string]any{"c": 2}})
	assertEqual(t, call(t, doc, "merge", map[string]any{"a": map[string]any{"d": 3}}),
		map[string]any{"a": map[string]any{"b": 1, "c": 2, "d": 3}})
	assertEqual(t, call(t, doc, "query", "$.a.c"), []any{2})
}

func TestArrayMethodErrors(t *testing.T) {
	r := repository.MustFrom([]any{1, 2})
	if _, err := r.Call("chunk", 0); !errors.Is(err, arr.ErrInvalidChunkSize) {
		t.Fatalf("chunk 0 error = %v", err)
	}
	if _, err := r.Call("chunk", 1.5); !errors.Is(err, repository.ErrInvalidArgument) {
		t.Fatalf("chunk 1.5 error = %v", err)
	}
	if _, err := r.Call("query", "$["); !errors.Is(err, arr.ErrInvalidQuery) {
		t.Fatalf("query error = %v", err)
	}
	if _, err := r.Call("first", "not a func"); !errors.Is(err, repository.ErrInvalidArgument) {
		t.Fatalf("first error = %v", err)
	}
}

// ─── Strings ──────────────────────────────────────────────────────────────────

func TestStringMethods(t *testing.T) {
	if n := call(t, "héllo", "length"); n != 5 {
		t.Fatalf("length = %v; want 5", n)
	}
	if s := call(t, "Hello World", "lower"); s != "hello world" {
		t.Fatalf("lower = %v", s)
	}
	if s := call(t, "straße", "upper"); s != "STRASSE" {
		t.Fatalf("upper = %v", s)
	}
	if s := call(t, "hello wide world", "title"); s != "Hello Wide World" {
		t.Fatalf("title = %v", s)
	}
	if s := call(t, "İSTANBUL", "lower", "tr"); s != "istanbul" {
		t.Fatalf("lower tr = %v", s)
	}
	assertSlice(t, call(t, "  a  b c ", "words").([]string), []string{"a", "b", "c"})
	assertSlice(t, call(t, "a,b,c", "explode", ",").([]string), []string{"a", "b", "c"})
	assertSlice(t, call(t, "a,b,c", "explode", ",", 2).([]string), []string{"a", "b,c"})
}

func TestStringMethodErrors(t *testing.T) {
	r := repository.MustFrom("x")
	if _, err := r.Call("lower", "not-a-language-tag-!"); !errors.Is(err, repository.ErrInvalidArgument) {
		t.Fatalf("lower bad tag error = %v", err)
	}
	if _, err := r.Call("explode"); !errors.Is(err, repository.ErrInvalidArgument) {
		t.Fatalf("explode without separator error = %v", err)
	}
}

// ─── Numbers ──────────────────────────────────────────────────────────────────

func TestNumberMethods(t *testing.T) {
	cases := []struct {
		subject any
		method  string
		args    []any
		want    any
	}{
		{-2.5, "abs", nil, 2.5},
		{1.2, "ceil", nil, 2.0},
		{1.8, "floor", nil, 1.0},
		{7, "floor", nil, 7.0},
		{3.14159, "round", []any{2}, 3.14},
		{2.5, "round", nil, 3.0},
		{5, "between", []any{1, 10}, true},
		{10, "between", []any{1, 10}, true},
		{11, "between", []any{1, 10}, false},
	}
	for _, tc := range cases {
		if got := call(t, tc.subject, tc.method, tc.args...); got != tc.want {
			t.Fatalf("%v.%s(%v) = %v; want %v", tc.subject, tc.method, tc.args, got, tc.want)
		}
	}
	if _, err := repository.MustFrom(5).Call("between", "a", 2); !errors.Is(err, repository.ErrInvalidArgument) {
		t.Fatalf("between(a) error = %v", err)
	}
}

// ─── Functions ────────────────────────────────────────────────────────────────

func TestFunctionCall(t *testing.T) {
	add := func(a, b int) int { return a + b }
	if v := call(t, add, "call", 2, 3); v != 5 {
		t.Fatalf("call add = %v", v)
	}
	join := func(parts ...any) any { return fmt.Sprint(parts...) }
	if v := call(t, join, "call", "a", "b"); v != "ab" {
		t.Fatalf("call join = %v", v)
	}
	format := func(prefix string, n ...int) string { return fmt.Sprint(prefix, len(n)) }
	if v := call(t, format, "call", "n=", 1, 2, 3); v != "n=3" {
		t.Fatalf("call variadic = %v", v)
	}

	boom := errors.New("boom")
	failing := func() (int, error) { return 0, boom }
	if _, err := repository.MustFrom(failing).Call("call"); !errors.Is(err, boom) {
		t.Fatalf("call failing error = %v", err)
	}
	if _, err := repository.MustFrom(add).Call("call", 1); !errors.Is(err, repository.ErrInvalidArgument) {
		t.Fatalf("call arity error = %v", err)
	}
	if _, err := repository.MustFrom(add).Call("call", "x", 1); !errors.Is(err, repository.ErrInvalidArgument) {
		t.Fatalf("call type error = %v", err)
	}
}

func TestFunctionOnce(t *testing.T) {
	calls := 0
	counter := func() any {
		calls++
		return calls
	}
	once := call(t, counter, "once").(func(...any) (any, error))
	for range 3 {
		v, err := once()
		if err != nil || v != 1 {
			t.Fatalf("once() = %v, %v; want 1", v, err)
		}
	}
	if calls != 1 {
		t.Fatalf("underlying function ran %d times; want 1", calls)
	}
}
