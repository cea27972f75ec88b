package compare

import (
	"bytes"
	"testing"
)

func TestReferenceInsertAndSearch(t *testing.T) {
	ref := NewReference()
	ref.Insert([]byte("a"), []byte("1"))
	ref.Insert([]byte("b"), []byte("2"))

	v, ok := ref.Search([]byte("a"))
	if !ok || string(v) != "1" {
		t.Fatalf("search(a): got %q, %v", v, ok)
	}

	ref.Insert([]byte("a"), []byte("overwritten"))
	v, ok = ref.Search([]byte("a"))
	if !ok || string(v) != "overwritten" {
		t.Fatalf("expected overwrite, got %q, %v", v, ok)
	}

	ref.Delete([]byte("b"))
	if _, ok := ref.Search([]byte("b")); ok {
		t.Fatalf("expected b absent after delete")
	}
	if ref.Len() != 1 {
		t.Fatalf("expected 1 live key, got %d", ref.Len())
	}
}

func TestReferenceKeysSorted(t *testing.T) {
	ref := NewReference()
	for _, k := range []string{"zeta", "alpha", "mu", "beta"} {
		ref.Insert([]byte(k), []byte(k))
	}

	keys := ref.Keys()
	for i := 1; i < len(keys); i++ {
		if bytes.Compare(keys[i-1], keys[i]) >= 0 {
			t.Fatalf("keys not sorted: %q >= %q", keys[i-1], keys[i])
		}
	}
	if len(keys) != 4 {
		t.Fatalf("expected 4 keys, got %d", len(keys))
	}
}
