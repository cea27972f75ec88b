package bptree

import (
	"fmt"
	"io"

	"github.com/go-logr/logr"
)

// Tree is the sole public surface of the core engine (spec §4.4/§6.3). It
// threads a root offset through recursive insert/delete/search calls against
// a Pager, performing root promotion on overflow and root collapse on
// underflow.
type Tree struct {
	degree int
	pager  *Pager
	root   *Offset
	log    logr.Logger
}

// Option configures a Tree at construction time.
type Option func(*Tree)

// WithLogger attaches a structured logger that records root promotion and
// root collapse at V(1); splits, borrows and merges below the root are not
// logged. The default is
// logr.Discard(), matching the teacher corpus's convention of paying nothing
// for logging when the caller doesn't ask for it.
func WithLogger(l logr.Logger) Option {
	return func(t *Tree) { t.log = l }
}

// New constructs a Tree with the given branching degree (d >= 3), backed by
// pager, which allocates starting at its configured startup offset. The
// tree starts with no root; the first Insert creates one.
func New(degree int, pager *Pager, opts ...Option) *Tree {
	t := &Tree{degree: degree, pager: pager, log: logr.Discard()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// IsEmpty reports whether the tree has no root, or its root holds zero keys
// (spec §4.4/§9 open question 3: an empty leaf root still counts as empty,
// and is reused by the next Insert rather than discarded).
func (t *Tree) IsEmpty() (bool, error) {
	if t.root == nil {
		return true, nil
	}
	root, err := t.pager.Read(*t.root)
	if err != nil {
		return false, err
	}
	return root.isEmpty(), nil
}

// Insert adds or overwrites key with value (spec §4.4).
func (t *Tree) Insert(key, value []byte) error {
	if t.root == nil {
		leaf := newLeaf()
		leaf.keys = [][]byte{key}
		leaf.values = [][]byte{value}
		offset, err := t.pager.AllocateAndWrite(leaf)
		if err != nil {
			return err
		}
		t.root = &offset
		return nil
	}

	rootOffset := *t.root
	root, err := t.pager.Read(rootOffset)
	if err != nil {
		return err
	}

	sepKey, sibling, split, err := nodeInsert(root, t.pager, key, value, t.degree)
	if err != nil {
		return err
	}
	if err := t.pager.WriteAt(root, rootOffset); err != nil {
		return err
	}
	if !split {
		return nil
	}

	siblingOffset, err := t.pager.AllocateAndWrite(sibling)
	if err != nil {
		return err
	}

	newRoot := newInternal()
	newRoot.keys = [][]byte{sepKey}
	newRoot.children = []Offset{rootOffset, siblingOffset}
	newRootOffset, err := t.pager.AllocateAndWrite(newRoot)
	if err != nil {
		return err
	}
	t.log.V(1).Info("root split", "oldRoot", rootOffset, "sibling", siblingOffset, "newRoot", newRootOffset)
	t.root = &newRootOffset
	return nil
}

// Delete removes key if present; absent keys are a silent no-op (spec §7).
func (t *Tree) Delete(key []byte) error {
	if t.root == nil {
		return nil
	}

	rootOffset := *t.root
	root, err := t.pager.Read(rootOffset)
	if err != nil {
		return err
	}

	found, underflow, err := nodeRemove(root, t.pager, key, t.degree)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	if err := t.pager.WriteAt(root, rootOffset); err != nil {
		return err
	}

	if underflow && root.kind == kindInternal && len(root.keys) == 0 {
		collapsed := root.children[0]
		t.log.V(1).Info("root collapsed", "oldRoot", rootOffset, "newRoot", collapsed)
		t.root = &collapsed
	}
	return nil
}

// Search returns the value for key, or (nil, false) if absent (spec §4.4).
func (t *Tree) Search(key []byte) ([]byte, bool, error) {
	if t.root == nil {
		return nil, false, nil
	}
	root, err := t.pager.Read(*t.root)
	if err != nil {
		return nil, false, err
	}
	return nodeSearch(root, t.pager, key)
}

// DebugPrint writes a depth-indented dump of the tree's structure to w,
// following the same shape as the original implementation's debug_print
// (see SPEC_FULL.md Part D). It is diagnostic only; nothing in the core
// depends on it.
func (t *Tree) DebugPrint(w io.Writer) error {
	if t.root == nil {
		return nil
	}
	root, err := t.pager.Read(*t.root)
	if err != nil {
		return err
	}
	return t.debugPrintNode(w, root, 0)
}

func (t *Tree) debugPrintNode(w io.Writer, n *node, level int) error {
	indent := ""
	for i := 0; i < level; i++ {
		indent += "  "
	}
	switch n.kind {
	case kindLeaf:
		fmt.Fprintf(w, "%sLeaf: keys=%q values=%q\n", indent, n.keys, n.values)
	case kindInternal:
		fmt.Fprintf(w, "%sInternal: keys=%q children=%v\n", indent, n.keys, n.children)
		for _, childOffset := range n.children {
			child, err := t.pager.Read(childOffset)
			if err != nil {
				return err
			}
			if err := t.debugPrintNode(w, child, level+1); err != nil {
				return err
			}
		}
	}
	return nil
}
