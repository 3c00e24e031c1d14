package objects_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/hasbyte1/go-underscore/objects"
)

// ─────────────────────────────────────────────────────────────────────────────
// JSON
// ─────────────────────────────────────────────────────────────────────────────

func TestToJSON(t *testing.T) {
	got, err := objects.ToJSON(fooBis())
	if err != nil {
		t.Fatal(err)
	}
	if got != `{"foo":"bar","bis":"ter"}` {
		t.Fatalf("ToJSON = %s", got)
	}

	nested := objects.New(
		objects.Entry{Key: "z", Value: []any{1, objects.New(objects.Entry{Key: "b", Value: nil}, objects.Entry{Key: "a", Value: true})}},
		objects.Entry{Key: "a", Value: "x"},
	)
	got, _ = objects.ToJSON(nested)
	if got != `{"z":[1,{"b":null,"a":true}],"a":"x"}` {
		t.Fatalf("ToJSON nested = %s", got)
	}

	if got, _ := objects.ToJSON(objects.Object{}); got != "{}" {
		t.Fatalf("ToJSON empty = %s", got)
	}
}

func TestToJSONKeepsHTMLCharacters(t *testing.T) {
	o := objects.New(
		objects.Entry{Key: "u", Value: "a<b>&c/d"},
		objects.Entry{Key: "list", Value: []any{objects.New(objects.Entry{Key: "<k>", Value: "&"})}},
	)
	got, err := objects.ToJSON(o)
	if err != nil {
		t.Fatal(err)
	}
	if got != `{"u":"a<b>&c/d","list":[{"<k>":"&"}]}` {
		t.Fatalf("ToJSON = %s", got)
	}
	if got, _ := objects.ToJSON(map[string]any{"h": "<p>"}); got != `{"h":"<p>"}` {
		t.Fatalf("ToJSON map = %s", got)
	}
	if got, _ := objects.ToPrettyJSON(map[string]any{"a": "x&y"}); got != "{\n  \"a\": \"x&y\"\n}\n" {
		t.Fatalf("ToPrettyJSON = %q", got)
	}
}

func TestToJSONUnencodable(t *testing.T) {
	if _, err := objects.ToJSON(func() {}); !errors.Is(err, objects.ErrEncoding) {
		t.Fatalf("ToJSON(func) error = %v; want ErrEncoding", err)
	}
	o := objects.New(objects.Entry{Key: "f", Value: make(chan int)})
	if _, err := objects.ToJSON(o); !errors.Is(err, objects.ErrEncoding) {
		t.Fatalf("ToJSON(chan value) error = %v; want ErrEncoding", err)
	}
}

func TestFromJSON(t *testing.T) {
	v, err := objects.FromJSON([]byte(`{"z":1,"a":{"y":2.5,"b":[1,"x",null,true]}}`))
	if err != nil {
		t.Fatal(err)
	}
	o, ok := v.(objects.Object)
	if !ok {
		t.Fatalf("FromJSON = %T; want objects.Object", v)
	}
	assertSlice(t, o.Keys(), []string{"z", "a"})
	if z, _ := o.Get("z"); z != 1 {
		t.Fatalf("z = %#v; want int 1", z)
	}
	if y := objects.Get(o, "a.y"); y != 2.5 {
		t.Fatalf("a.y = %#v; want 2.5", y)
	}
	assertSlice(t, objects.Get(o, "a").(objects.Object).Keys(), []string{"y", "b"})
	assertEqual(t, objects.Get(o, "a.b"), []any{1, "x", nil, true})
}

func TestFromJSONInvalid(t *testing.T) {
	for _, doc := range []string{"", "{", `{"a":}`, "nope"} {
		if _, err := objects.FromJSON([]byte(doc)); !errors.Is(err, objects.ErrInvalidJSON) {
			t.Fatalf("FromJSON(%q) error = %v; want ErrInvalidJSON", doc, err)
		}
	}
}

func TestJSONRoundTripKeepsOrder(t *testing.T) {
	const doc = `{"foo":"bar","bis":"ter","n":{"k":[1,2]}}`
	v, err := objects.FromJSON([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	got, err := objects.ToJSON(v)
	if err != nil {
		t.Fatal(err)
	}
	if got != doc {
		t.Fatalf("round trip = %s; want %s", got, doc)
	}
}

func TestObjectUnmarshalJSON(t *testing.T) {
	var o objects.Object
	if err := json.Unmarshal([]byte(`{"b":1,"a":2}`), &o); err != nil {
		t.Fatal(err)
	}
	assertSlice(t, o.Keys(), []string{"b", "a"})

	var wrapped struct {
		Data objects.Object `json:"data"`
	}
	if err := json.Unmarshal([]byte(`{"data":{"foo":"bar","bis":"ter"}}`), &wrapped); err != nil {
		t.Fatal(err)
	}
	assertEqual(t, wrapped.Data, fooBis())

	if err := json.Unmarshal([]byte(`[1,2]`), &o); !errors.Is(err, objects.ErrInvalidJSON) {
		t.Fatalf("Unmarshal array into Object error = %v; want ErrInvalidJSON", err)
	}
}

func TestToPrettyJSON(t *testing.T) {
	got, err := objects.ToPrettyJSON(fooBis())
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"foo\": \"bar\",\n  \"bis\": \"ter\"\n}\n"
	if got != want {
		t.Fatalf("ToPrettyJSON = %q; want %q", got, want)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// YAML
// ─────────────────────────────────────────────────────────────────────────────

func TestToYAML(t *testing.T) {
	got, err := objects.ToYAML(fooBis())
	if err != nil {
		t.Fatal(err)
	}
	if got != "foo: bar\nbis: ter\n" {
		t.Fatalf("ToYAML = %q", got)
	}
}

func TestFromYAML(t *testing.T) {
	v, err := objects.FromYAML([]byte("zeta: 1\nalpha:\n  - x\n  - 2\nnested:\n  b: true\n  a: 1.5\n"))
	if err != nil {
		t.Fatal(err)
	}
	o := v.(objects.Object)
	assertSlice(t, o.Keys(), []string{"zeta", "alpha", "nested"})
	if z, _ := o.Get("zeta"); z != 1 {
		t.Fatalf("zeta = %#v; want int 1", z)
	}
	assertEqual(t, objects.Get(o, "alpha"), []any{"x", 2})
	assertSlice(t, objects.Get(o, "nested").(objects.Object).Keys(), []string{"b", "a"})
	if objects.Get(o, "nested.a") != 1.5 {
		t.Fatalf("nested.a = %v", objects.Get(o, "nested.a"))
	}
}

func TestFromYAMLInvalid(t *testing.T) {
	if _, err := objects.FromYAML([]byte("a: [1, 2\n")); !errors.Is(err, objects.ErrInvalidYAML) {
		t.Fatalf("FromYAML error = %v; want ErrInvalidYAML", err)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Raw documents
// ─────────────────────────────────────────────────────────────────────────────

func TestRawGet(t *testing.T) {
	doc := []byte(`{"users":[{"name":"a"},{"name":"b"}],"meta":{"v.1":true}}`)

	v, ok := objects.RawGet(doc, "users.1.name")
	if !ok || v != "b" {
		t.Fatalf("RawGet users.1.name = %v, %v", v, ok)
	}
	v, _ = objects.RawGet(doc, "users.*.name")
	assertEqual(t, v, []any{"a", "b"})

	if _, ok := objects.RawGet(doc, "users.9.name"); ok {
		t.Fatal("RawGet should report a missing path")
	}
	if _, ok := objects.RawGet(doc, "meta.v.1"); ok {
		t.Fatal("segments are split on the delimiter")
	}
}

func TestRawSetAndRemove(t *testing.T) {
	doc, err := objects.RawSet(nil, "foo.bar", "baz")
	if err != nil {
		t.Fatal(err)
	}
	if string(doc) != `{"foo":{"bar":"baz"}}` {
		t.Fatalf("RawSet = %s", doc)
	}
	doc, _ = objects.RawSet(doc, "foo.n", 1)
	if string(doc) != `{"foo":{"bar":"baz","n":1}}` {
		t.Fatalf("RawSet sibling = %s", doc)
	}
	doc, err = objects.RawRemove(doc, "foo.bar")
	if err != nil {
		t.Fatal(err)
	}
	if string(doc) != `{"foo":{"n":1}}` {
		t.Fatalf("RawRemove = %s", doc)
	}
	same, _ := objects.RawRemove(doc, "missing.key")
	if string(same) != string(doc) {
		t.Fatalf("RawRemove missing = %s", same)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Checksum / Unique
// ─────────────────────────────────────────────────────────────────────────────

func TestChecksumIgnoresKeyOrder(t *testing.T) {
	a, err := objects.Checksum(fooBis())
	if err != nil {
		t.Fatal(err)
	}
	b, _ := objects.Checksum(map[string]any{"bis": "ter", "foo": "bar"})
	if a != b {
		t.Fatalf("checksums differ: %s vs %s", a, b)
	}
	if len(a) != 64 {
		t.Fatalf("checksum length = %d; want 64 hex chars", len(a))
	}
	c, _ := objects.Checksum(fooBis().With("foo", "other"))
	if a == c {
		t.Fatal("different values share a checksum")
	}
	if _, err := objects.Checksum(func() {}); !errors.Is(err, objects.ErrEncoding) {
		t.Fatalf("Checksum(func) error = %v; want ErrEncoding", err)
	}
}

func TestUnique(t *testing.T) {
	got := objects.Unique([]any{
		fooBis(),
		map[string]any{"bis": "ter", "foo": "bar"},
		"x",
		"x",
		1,
		func() {},
	})
	if len(got) != 4 {
		t.Fatalf("Unique = %v; want 4 elements", got)
	}
	assertEqual(t, got[0], fooBis())
	if got[1] != "x" || got[2] != 1 {
		t.Fatalf("Unique order = %v", got)
	}
}
