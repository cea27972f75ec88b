// Package compare provides in-memory reference structures for the
// disk-backed engine: a trivial map-backed oracle for model-equivalence
// checks, and an in-memory B+Tree
// baseline (adapted from the corpus's bplustree.BPlusTree) for the bench
// command's latency comparison.
package compare

import "sort"

// Reference is a minimal, obviously-correct key/value store for the
// oracle side of model-equivalence checks (spec §8): whatever the
// disk-backed tree does, Reference does the same thing via the simplest
// possible Go data structure, so a divergence points at the tree, not at a
// second copy of its own bugs.
type Reference struct {
	data map[string][]byte
}

// NewReference constructs an empty oracle.
func NewReference() *Reference {
	return &Reference{data: make(map[string][]byte)}
}

// Insert adds or overwrites key with value.
func (r *Reference) Insert(key, value []byte) {
	r.data[string(key)] = append([]byte{}, value...)
}

// Delete removes key if present; a no-op otherwise.
func (r *Reference) Delete(key []byte) {
	delete(r.data, string(key))
}

// Search returns the value for key, or (nil, false) if absent.
func (r *Reference) Search(key []byte) ([]byte, bool) {
	v, ok := r.data[string(key)]
	return v, ok
}

// Len returns the number of live keys.
func (r *Reference) Len() int {
	return len(r.data)
}

// Keys returns all live keys in ascending lexicographic order, matching the
// order the disk-backed tree's in-order traversal must produce.
func (r *Reference) Keys() [][]byte {
	keys := make([][]byte, 0, len(r.data))
	for k := range r.data {
		keys = append(keys, []byte(k))
	}
	sort.Slice(keys, func(i, j int) bool {
		return string(keys[i]) < string(keys[j])
	})
	return keys
}
