package bptree

import (
	"bytes"
	"fmt"
	"math/rand"
	"testing"
)

// TestModelEquivalence covers spec §8 invariants 1 (model equivalence) and 2
// (persistence round-trip): a random sequence of inserts/deletes is mirrored
// against a plain Go map, and every still-live key must read back its most
// recently inserted value.
func TestModelEquivalence(t *testing.T) {
	tr := openTestTree(t, 8)
	model := make(map[string]string)
	rng := rand.New(rand.NewSource(1))

	const universe = 500
	for i := 0; i < 5000; i++ {
		key := fmt.Sprintf("key-%04d", rng.Intn(universe))
		if rng.Intn(3) == 0 {
			delete(model, key)
			mustDelete(t, tr, key)
		} else {
			value := fmt.Sprintf("v%d", rng.Int())
			model[key] = value
			mustInsert(t, tr, key, value)
		}

		if rng.Intn(50) != 0 {
			continue
		}
		for k, want := range model {
			expectFound(t, tr, k, want)
		}
	}

	for k, want := range model {
		expectFound(t, tr, k, want)
	}
}

// TestFillBoundsAndBalance covers spec §8 invariants 3 (fill bounds) and 4
// (balance): after a large random workload, every non-root node holds
// between ceil(d/2)-1 and d-1 keys (root excepted), and every leaf sits at
// the same depth.
func TestFillBoundsAndBalance(t *testing.T) {
	const degree = 6
	tr := openTestTree(t, degree)

	rng := rand.New(rand.NewSource(2))
	live := make(map[string]bool)
	for i := 0; i < 3000; i++ {
		key := fmt.Sprintf("k%05d", rng.Intn(1000))
		mustInsert(t, tr, key, key)
		live[key] = true
	}

	if tr.root == nil {
		t.Fatalf("expected a root after inserts")
	}
	root, err := tr.pager.Read(*tr.root)
	if err != nil {
		t.Fatalf("read root: %v", err)
	}

	leafDepths := map[int]bool{}
	var walk func(n *node, depth int) error
	walk = func(n *node, depth int) error {
		if n != root {
			min := (degree+1)/2 - 1
			if len(n.keys) < min || len(n.keys) > degree-1 {
				return fmt.Errorf("node at depth %d holds %d keys, outside [%d, %d]", depth, len(n.keys), min, degree-1)
			}
		}
		if n.kind == kindLeaf {
			leafDepths[depth] = true
			return nil
		}
		for _, childOffset := range n.children {
			child, err := tr.pager.Read(childOffset)
			if err != nil {
				return err
			}
			if err := walk(child, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(root, 0); err != nil {
		t.Fatal(err)
	}
	if len(leafDepths) != 1 {
		t.Fatalf("expected all leaves at one depth, got depths %v", leafDepths)
	}
}

// TestKeyOrder covers spec §8 invariant 5: an in-order traversal visits keys
// in strictly increasing order.
func TestKeyOrder(t *testing.T) {
	tr := openTestTree(t, 5)
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 2000; i++ {
		key := fmt.Sprintf("k%05d", rng.Intn(800))
		mustInsert(t, tr, key, key)
	}

	var keys [][]byte
	var walk func(offset Offset) error
	walk = func(offset Offset) error {
		n, err := tr.pager.Read(offset)
		if err != nil {
			return err
		}
		if n.kind == kindLeaf {
			keys = append(keys, n.keys...)
			return nil
		}
		for _, childOffset := range n.children {
			if err := walk(childOffset); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(*tr.root); err != nil {
		t.Fatal(err)
	}

	for i := 1; i < len(keys); i++ {
		if bytes.Compare(keys[i-1], keys[i]) >= 0 {
			t.Fatalf("keys out of order at %d: %q >= %q", i, keys[i-1], keys[i])
		}
	}
}

// TestEmptyState covers spec §8 invariant 6: deleting every inserted key
// leaves is_empty() true.
func TestEmptyState(t *testing.T) {
	tr := openTestTree(t, 4)
	rng := rand.New(rand.NewSource(4))

	var keys []string
	for i := 0; i < 300; i++ {
		key := fmt.Sprintf("k%04d", i)
		keys = append(keys, key)
		mustInsert(t, tr, key, key)
	}
	rng.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	for _, key := range keys {
		mustDelete(t, tr, key)
	}

	empty, err := tr.IsEmpty()
	if err != nil {
		t.Fatalf("is_empty: %v", err)
	}
	if !empty {
		t.Fatalf("expected tree empty after deleting every key")
	}
}

// TestEncodedNodeFitsPageSize covers spec §8 invariant 7: every encoded node
// fits in PageSize. Oversized nodes are rejected at encode time, so driving
// the tree through a large workload and confirming no error occurred is
// sufficient evidence the invariant held throughout.
func TestEncodedNodeFitsPageSize(t *testing.T) {
	tr := openTestTree(t, 16)
	for i := 0; i < 2000; i++ {
		key := fmt.Sprintf("k%05d", i)
		if err := tr.Insert([]byte(key), []byte(key)); err != nil {
			t.Fatalf("insert %q: %v (likely ErrOversizedNode)", key, err)
		}
	}
}
