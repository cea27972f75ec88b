package bptree

// internalInsert implements spec §4.3 Internal insert: descend via
// lower-bound, recurse, absorb a child split into this node's keys/children,
// and split this node in turn on overflow.
//
// Returns (separatorKey, newRightNode, split).
func internalInsert(n *node, pager *Pager, key, value []byte, degree int) ([]byte, *node, bool, error) {
	pos := lowerBound(n.keys, key)
	childOffset := n.children[pos]

	child, err := pager.Read(childOffset)
	if err != nil {
		return nil, nil, false, err
	}

	sepKey, sibling, childSplit, err := nodeInsert(child, pager, key, value, degree)
	if err != nil {
		return nil, nil, false, err
	}
	if err := pager.WriteAt(child, childOffset); err != nil {
		return nil, nil, false, err
	}
	if !childSplit {
		return nil, nil, false, nil
	}

	siblingOffset, err := pager.AllocateAndWrite(sibling)
	if err != nil {
		return nil, nil, false, err
	}
	n.keys = insertAt(n.keys, pos, sepKey)
	n.children = insertAt(n.children, pos+1, siblingOffset)

	if len(n.keys) <= degree-1 {
		return nil, nil, false, nil
	}
	return internalSplit(n, pager)
}

// internalSplit implements spec §4.3 overflow handling: the median key is
// removed from both halves and promoted upward; the right half keeps the
// children to its right of the median.
func internalSplit(n *node, pager *Pager) ([]byte, *node, bool, error) {
	s := len(n.keys) / 2
	median := n.keys[s]

	right := newInternal()
	right.keys = append([][]byte{}, n.keys[s+1:]...)
	right.children = append([]Offset{}, n.children[s+1:]...)

	n.keys = n.keys[:s]
	n.children = n.children[:s+1]

	offset := pager.NextOffset()
	right.offset = &offset

	return median, right, true, nil
}

// internalSearch implements spec §4.3 Internal search.
func internalSearch(n *node, pager *Pager, key []byte) ([]byte, bool, error) {
	pos := lowerBound(n.keys, key)
	child, err := pager.Read(n.children[pos])
	if err != nil {
		return nil, false, err
	}
	return nodeSearch(child, pager, key)
}

// internalRemove implements spec §4.3 Internal delete: recurse into the
// chosen child, write it back, and rebalance this node if the child
// underflowed. Returns (found, nowUnderflowed).
func internalRemove(n *node, pager *Pager, key []byte, degree int) (found bool, underflow bool, err error) {
	pos := lowerBound(n.keys, key)
	childOffset := n.children[pos]

	child, err := pager.Read(childOffset)
	if err != nil {
		return false, false, err
	}

	found, childUnderflow, err := nodeRemove(child, pager, key, degree)
	if err != nil || !found {
		return found, false, err
	}
	if err := pager.WriteAt(child, childOffset); err != nil {
		return true, false, err
	}
	if !childUnderflow {
		return true, false, nil
	}

	underflow, err = rebalance(n, pager, pos, degree)
	return true, underflow, err
}

// rebalance implements spec §4.3 rebalance: borrow from the left sibling if
// it can spare a key, else from the right, else merge (left sibling
// preferred, right as fallback). Returns whether n is now underflowed.
func rebalance(n *node, pager *Pager, index int, degree int) (bool, error) {
	child, err := pager.Read(n.children[index])
	if err != nil {
		return false, err
	}

	if index > 0 {
		left, err := pager.Read(n.children[index-1])
		if err != nil {
			return false, err
		}
		if left.canBorrow(degree) {
			if err := borrowLeft(n, pager, index, left, child); err != nil {
				return false, err
			}
			return false, nil
		}
	}

	if index < len(n.children)-1 {
		right, err := pager.Read(n.children[index+1])
		if err != nil {
			return false, err
		}
		if right.canBorrow(degree) {
			if err := borrowRight(n, pager, index, child, right); err != nil {
				return false, err
			}
			return false, nil
		}
	}

	if index > 0 {
		left, err := pager.Read(n.children[index-1])
		if err != nil {
			return false, err
		}
		if err := mergeLeft(n, pager, index, left, child); err != nil {
			return false, err
		}
	} else {
		right, err := pager.Read(n.children[index+1])
		if err != nil {
			return false, err
		}
		if err := mergeRight(n, pager, index, child, right); err != nil {
			return false, err
		}
	}

	return n.underflowed(degree), nil
}

// borrowLeft moves the left sibling's largest entry into the front of the
// underfull child at index, rotating the separator through the parent
// (spec §4.3 Borrow-left).
func borrowLeft(n *node, pager *Pager, index int, left, child *node) error {
	switch child.kind {
	case kindLeaf:
		li := len(left.keys) - 1
		borrowedKey, borrowedVal := left.keys[li], left.values[li]
		left.keys, left.values = left.keys[:li], left.values[:li]

		child.keys = insertAt(child.keys, 0, borrowedKey)
		child.values = insertAt(child.values, 0, borrowedVal)
		n.keys[index-1] = left.keys[len(left.keys)-1]
	case kindInternal:
		li := len(left.keys) - 1
		borrowedKey := left.keys[li]
		borrowedChild := left.children[len(left.children)-1]
		left.keys = left.keys[:li]
		left.children = left.children[:len(left.children)-1]

		child.keys = insertAt(child.keys, 0, n.keys[index-1])
		child.children = insertAt(child.children, 0, borrowedChild)
		n.keys[index-1] = borrowedKey
	}

	if err := pager.WriteAt(left, n.children[index-1]); err != nil {
		return err
	}
	return pager.WriteAt(child, n.children[index])
}

// borrowRight moves the right sibling's smallest entry into the end of the
// underfull child at index (spec §4.3 Borrow-right).
func borrowRight(n *node, pager *Pager, index int, child, right *node) error {
	switch child.kind {
	case kindLeaf:
		borrowedKey, borrowedVal := right.keys[0], right.values[0]
		right.keys, right.values = removeAt(right.keys, 0), removeAt(right.values, 0)

		child.keys = append(child.keys, borrowedKey)
		child.values = append(child.values, borrowedVal)
		n.keys[index] = borrowedKey
	case kindInternal:
		borrowedKey := right.keys[0]
		borrowedChild := right.children[0]
		right.keys = removeAt(right.keys, 0)
		right.children = removeAt(right.children, 0)

		child.keys = append(child.keys, n.keys[index])
		child.children = append(child.children, borrowedChild)
		n.keys[index] = borrowedKey
	}

	if err := pager.WriteAt(right, n.children[index+1]); err != nil {
		return err
	}
	return pager.WriteAt(child, n.children[index])
}

// mergeLeft fuses child at index into its left sibling, dropping the
// separator key and the child's slot from the parent (spec §4.3 Merge-left).
func mergeLeft(n *node, pager *Pager, index int, left, child *node) error {
	switch child.kind {
	case kindLeaf:
		left.keys = append(left.keys, child.keys...)
		left.values = append(left.values, child.values...)
	case kindInternal:
		left.keys = append(left.keys, n.keys[index-1])
		left.keys = append(left.keys, child.keys...)
		left.children = append(left.children, child.children...)
	}

	n.keys = removeAt(n.keys, index-1)
	n.children = removeAt(n.children, index)

	return pager.WriteAt(left, n.children[index-1])
}

// mergeRight fuses the right sibling into child at index, dropping the
// separator key and the sibling's slot from the parent (spec §4.3
// Merge-right).
func mergeRight(n *node, pager *Pager, index int, child, right *node) error {
	switch child.kind {
	case kindLeaf:
		child.keys = append(child.keys, right.keys...)
		child.values = append(child.values, right.values...)
	case kindInternal:
		child.keys = append(child.keys, n.keys[index])
		child.keys = append(child.keys, right.keys...)
		child.children = append(child.children, right.children...)
	}

	n.keys = removeAt(n.keys, index)
	n.children = removeAt(n.children, index+1)

	return pager.WriteAt(child, n.children[index])
}
