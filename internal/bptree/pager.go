// Package bptree implements a single-file, disk-backed B+Tree key-value
// store: a tagged Leaf/Internal node model, the recursive insert/split and
// delete/borrow/merge algorithms, and the pager that commits node mutations
// to fixed-size pages on disk.
package bptree

import (
	"io"
)

// PageSize is the fixed size, in bytes, of every page the pager allocates.
// A node's encoded form must fit within one page (see codec.go).
const PageSize = 4096

// file is the subset of *os.File the pager needs. Opening the file, its
// truncation policy, and its lifetime are the caller's responsibility (spec
// §1): the pager only ever seeks, reads, and writes within it.
type file interface {
	io.ReaderAt
	io.WriterAt
}

// Pager translates between in-memory nodes and fixed-size pages on disk. It
// allocates fresh pages at a monotonically increasing cursor and never
// reclaims one: merging abandons a page rather than freeing it (spec §4.1).
//
// There is no page cache here (unlike the teacher repo's LRU-backed pager):
// reading the same offset twice yields two independent in-memory copies, by
// design (spec §4.1 Non-goals).
type Pager struct {
	f      file
	cursor Offset
}

// NewPager wraps f, an already-opened readable/writable file, allocating
// pages starting at startupOffset. Bytes before startupOffset are reserved
// and never touched (spec §6.1).
func NewPager(f file, startupOffset Offset) *Pager {
	return &Pager{f: f, cursor: startupOffset}
}

// NextOffset returns the offset the next allocation will use, without
// advancing the cursor.
func (p *Pager) NextOffset() Offset {
	return p.cursor
}

// AllocateAndWrite serializes n, writes it to the current cursor position,
// advances the cursor by PageSize, and returns the offset written.
func (p *Pager) AllocateAndWrite(n *node) (Offset, error) {
	offset := p.cursor
	if err := p.WriteAt(n, offset); err != nil {
		return 0, err
	}
	p.cursor += PageSize
	return offset, nil
}

// WriteAt serializes n and writes it at the given absolute offset,
// overwriting whatever page was there.
func (p *Pager) WriteAt(n *node, offset Offset) error {
	data, err := encodeNode(n)
	if err != nil {
		return err
	}
	page := make([]byte, PageSize)
	copy(page, data)
	if _, err := p.f.WriteAt(page, int64(offset)); err != nil {
		return wrapIO(err, "write", offset)
	}
	return nil
}

// Read loads exactly one page's worth of bytes from offset and decodes a
// node from its prefix; trailing bytes are padding and ignored.
func (p *Pager) Read(offset Offset) (*node, error) {
	page := make([]byte, PageSize)
	if _, err := p.f.ReadAt(page, int64(offset)); err != nil {
		return nil, wrapIO(err, "read", offset)
	}
	n, err := decodeNode(page)
	if err != nil {
		return nil, wrapCodec(err, offset)
	}
	return n, nil
}
