package arr_test

import (
	"errors"
	"testing"

	"github.com/hasbyte1/go-underscore/arr"
	"github.com/hasbyte1/go-underscore/objects"
)

// ─── First / Last ─────────────────────────────────────────────────────────────

func TestFirst(t *testing.T) {
	v, ok := arr.First([]any{10, 20, 30})
	if !ok || v != 10 {
		t.Fatalf("First = %v, %v; want 10, true", v, ok)
	}
	if _, ok := arr.First([]any{}); ok {
		t.Fatal("First on empty should return false")
	}
	if _, ok := arr.First("scalar"); ok {
		t.Fatal("First on a scalar should return false")
	}
}

func TestFirstWithPredicate(t *testing.T) {
	v, ok := arr.First([]int{1, 2, 3, 4}, func(n any) bool { return n.(int) > 2 })
	if !ok || v != 3 {
		t.Fatalf("First predicate = %v, %v; want 3, true", v, ok)
	}
}

func TestLast(t *testing.T) {
	v, ok := arr.Last([]any{10, 20, 30})
	if !ok || v != 30 {
		t.Fatalf("Last = %v, %v; want 30, true", v, ok)
	}
	o := objects.New(objects.Entry{Key: "a", Value: 1}, objects.Entry{Key: "b", Value: 2})
	if v, _ := arr.Last(o); v != 2 {
		t.Fatalf("Last(Object) = %v; want 2", v)
	}
}

func TestLastWithPredicate(t *testing.T) {
	v, ok := arr.Last([]any{1, 2, 3, 4}, func(n any) bool { return n.(int) < 3 })
	if !ok || v != 2 {
		t.Fatalf("Last predicate = %v, %v; want 2, true", v, ok)
	}
	if _, ok := arr.Last([]any{1}, func(any) bool { return false }); ok {
		t.Fatal("Last without match should return false")
	}
}

// ─── Flatten ──────────────────────────────────────────────────────────────────

func TestFlatten(t *testing.T) {
	in := []any{1, []any{2, []any{3, []int{4}}}, map[string]any{"b": 6, "a": 5}}
	assertEqual(t, arr.Flatten(in), []any{1, 2, 3, 4, 5, 6})
}

func TestFlattenDepth(t *testing.T) {
	in := []any{1, []any{2, []any{3}}}
	assertEqual(t, arr.Flatten(in, 1), []any{1, 2, []any{3}})
	assertEqual(t, arr.Flatten(in, 2), []any{1, 2, 3})
}

func TestFlattenEmpty(t *testing.T) {
	if got := arr.Flatten(nil); len(got) != 0 {
		t.Fatalf("Flatten(nil) = %v; want empty", got)
	}
}

// ─── Chunk ────────────────────────────────────────────────────────────────────

func TestChunk(t *testing.T) {
	chunks, err := arr.Chunk([]any{1, 2, 3, 4, 5}, 2)
	if err != nil {
		t.Fatal(err)
	}
	assertEqual(t, chunks, []any{[]any{1, 2}, []any{3, 4}, []any{5}})
}

func TestChunkKeepsKeys(t *testing.T) {
	o := objects.New(
		objects.Entry{Key: "a", Value: 1},
		objects.Entry{Key: "b", Value: 2},
		objects.Entry{Key: "c", Value: 3},
	)
	chunks, err := arr.Chunk(o, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(chunks) != 2 {
		t.Fatalf("Chunk count = %d; want 2", len(chunks))
	}
	assertSlice(t, chunks[0].(objects.Object).Keys(), []string{"a", "b"})
	assertSlice(t, chunks[1].(objects.Object).Keys(), []string{"c"})
}

func TestChunkInvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		if _, err := arr.Chunk([]any{1}, size); !errors.Is(err, arr.ErrInvalidChunkSize) {
			t.Fatalf("Chunk(size=%d) error = %v; want ErrInvalidChunkSize", size, err)
		}
	}
	chunks, err := arr.Chunk([]any{}, 3)
	if err != nil || len(chunks) != 0 {
		t.Fatalf("Chunk(empty) = %v, %v", chunks, err)
	}
}
