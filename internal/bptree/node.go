package bptree

// kind tags which of the two node shapes a node holds. The engine never
// mixes them: sibling operations require both sides to share a kind, and a
// mismatch is an invariant violation (see spec §9 "Variant dispatch").
type kind uint8

const (
	kindLeaf kind = iota
	kindInternal
)

// node is the tagged Leaf/Internal union described in spec §3. Only the
// fields relevant to kind are populated; the codec writes/reads exactly the
// fields a given kind declares.
type node struct {
	kind kind

	// keys is used by both kinds: the leaf's key sequence, or the
	// internal's routing-key sequence.
	keys [][]byte

	// values is populated only for kindLeaf, parallel to keys.
	values [][]byte

	// children is populated only for kindInternal: len(children) ==
	// len(keys)+1.
	children []Offset

	// offset is this node's own page offset, if it has been written. It
	// exists purely for debugging/diagnostics (spec §3): the tree never
	// reads it to navigate.
	offset *Offset
}

func newLeaf() *node {
	return &node{kind: kindLeaf}
}

func newInternal() *node {
	return &node{kind: kindInternal}
}

// isEmpty reports whether the node holds zero keys (and, for leaves, zero
// values). An empty leaf root is still a valid root (spec §9, open question
// 3); an empty internal node only ever appears transiently mid-rebalance.
func (n *node) isEmpty() bool {
	switch n.kind {
	case kindLeaf:
		return len(n.keys) == 0 && len(n.values) == 0
	case kindInternal:
		return len(n.keys) == 0 && len(n.children) == 0
	default:
		return true
	}
}

// canBorrow reports whether n holds at least ceil(d/2) keys and so may
// donate one to an underfull sibling during rebalance. A donor keeps at
// least ceil(d/2)-1 keys and is never emptied; for even d that is one below
// the underflow threshold, and the donor is not rebalanced afterwards.
func (n *node) canBorrow(degree int) bool {
	return len(n.keys) >= (degree+1)/2
}

// underflowed reports whether n has fewer than the minimum number of keys
// for a non-root node (spec §9, open question 4: `len(keys) < d/2`).
func (n *node) underflowed(degree int) bool {
	return len(n.keys) < degree/2
}

// ─── kind dispatch ──────────────────────────────────────────────────────────
//
// These three functions are the "Node" dispatch layer from spec §3/§9: a
// two-case tagged sum where sibling operations assume matching kinds and a
// mismatch is an invariant violation, never an error return.

func nodeInsert(n *node, pager *Pager, key, value []byte, degree int) ([]byte, *node, bool, error) {
	switch n.kind {
	case kindLeaf:
		return leafInsert(n, pager, key, value, degree)
	case kindInternal:
		return internalInsert(n, pager, key, value, degree)
	default:
		panic("bptree: node with unknown kind")
	}
}

func nodeSearch(n *node, pager *Pager, key []byte) ([]byte, bool, error) {
	switch n.kind {
	case kindLeaf:
		v, ok := leafSearch(n, key)
		return v, ok, nil
	case kindInternal:
		return internalSearch(n, pager, key)
	default:
		panic("bptree: node with unknown kind")
	}
}

// nodeRemove returns (found, underflowed).
func nodeRemove(n *node, pager *Pager, key []byte, degree int) (bool, bool, error) {
	switch n.kind {
	case kindLeaf:
		found, underflow := leafRemove(n, key, degree)
		return found, underflow, nil
	case kindInternal:
		return internalRemove(n, pager, key, degree)
	default:
		panic("bptree: node with unknown kind")
	}
}
