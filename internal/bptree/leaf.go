package bptree

import "bytes"

// leafSearchPosition returns the position p such that keys[p] would hold key
// if present, via binary search.
func leafSearchPosition(keys [][]byte, key []byte) (pos int, found bool) {
	lo, hi := 0, len(keys)
	for lo < hi {
		mid := (lo + hi) / 2
		switch bytes.Compare(keys[mid], key) {
		case -1:
			lo = mid + 1
		case 0:
			return mid, true
		default:
			hi = mid
		}
	}
	return lo, false
}

// leafInsert implements spec §4.2 Leaf insert: exact match overwrites the
// value in place (spec §9, open question 1); otherwise the key/value pair
// is inserted in order and the leaf splits on overflow.
//
// Returns (separatorKey, newRightLeaf, split).
func leafInsert(n *node, pager *Pager, key, value []byte, degree int) ([]byte, *node, bool, error) {
	pos, found := leafSearchPosition(n.keys, key)
	if found {
		n.values[pos] = value
		return nil, nil, false, nil
	}

	n.keys = insertAt(n.keys, pos, key)
	n.values = insertAt(n.values, pos, value)

	if len(n.keys) <= degree-1 {
		return nil, nil, false, nil
	}
	return leafSplit(n, pager)
}

// leafSplit implements spec §4.2 overflow handling: the separator promoted
// upward is the last key retained in the left leaf, not the first key of
// the new right leaf (spec §9, open question 2 depends on this).
func leafSplit(n *node, pager *Pager) ([]byte, *node, bool, error) {
	s := len(n.keys) / 2
	separator := n.keys[s-1]

	right := newLeaf()
	right.keys = append([][]byte{}, n.keys[s:]...)
	right.values = append([][]byte{}, n.values[s:]...)

	n.keys = n.keys[:s]
	n.values = n.values[:s]

	offset := pager.NextOffset()
	right.offset = &offset

	return separator, right, true, nil
}

// leafRemove removes key from n if present. Returns (found, nowUnderflowed).
func leafRemove(n *node, key []byte, degree int) (found bool, underflow bool) {
	pos, ok := leafSearchPosition(n.keys, key)
	if !ok {
		return false, false
	}
	n.keys = removeAt(n.keys, pos)
	n.values = removeAt(n.values, pos)
	return true, n.underflowed(degree)
}

// leafSearch implements spec §4.2 Leaf search.
func leafSearch(n *node, key []byte) ([]byte, bool) {
	pos, ok := leafSearchPosition(n.keys, key)
	if !ok {
		return nil, false
	}
	return n.values[pos], true
}

// lowerBound returns the first index p such that keys[p] >= key (len(keys)
// if none). Internal descent uses this directly: an exact match descends
// into children[p], not children[p+1] (spec §9, open question 2), which is
// only correct because leafSplit promotes the last key of the left leaf.
func lowerBound(keys [][]byte, key []byte) int {
	pos, _ := leafSearchPosition(keys, key)
	return pos
}

// ─── slice helpers shared with internal.go ─────────────────────────────────

func insertAt[T any](s []T, pos int, v T) []T {
	s = append(s, v)
	copy(s[pos+1:], s[pos:])
	s[pos] = v
	return s
}

func removeAt[T any](s []T, pos int) []T {
	copy(s[pos:], s[pos+1:])
	return s[:len(s)-1]
}
