package bptree

import (
	"encoding/binary"

	"github.com/cockroachdb/errors"
)

// Key is an opaque byte string, ordered lexicographically by byte value.
type Key = []byte

// Value is an opaque byte string; the engine never interprets its contents.
type Value = []byte

// Offset is an absolute byte position in the backing file. It is always a
// multiple of PageSize relative to the pager's configured startup offset.
type Offset = uint64

const (
	tagLeaf     byte = 0
	tagInternal byte = 1
)

// encodeNode serializes n into a deterministic, length-prefixed binary form.
// It fails with ErrOversizedNode if the result would not fit in one page.
func encodeNode(n *node) ([]byte, error) {
	buf := make([]byte, 0, PageSize/4)

	switch n.kind {
	case kindLeaf:
		buf = append(buf, tagLeaf)
		buf = appendStringSeq(buf, n.keys)
		buf = appendStringSeq(buf, n.values)
	case kindInternal:
		buf = append(buf, tagInternal)
		buf = appendStringSeq(buf, n.keys)
		buf = appendOffsetSeq(buf, n.children)
	default:
		return nil, errors.Newf("bptree: unknown node kind %d", n.kind)
	}

	buf = appendOptionalOffset(buf, n.offset)

	if len(buf) > PageSize {
		return nil, ErrOversizedNode
	}
	return buf, nil
}

// decodeNode reads a node from the prefix of page, ignoring trailing padding.
func decodeNode(page []byte) (*node, error) {
	if len(page) == 0 {
		return nil, errors.New("bptree: empty page")
	}

	tag, rest := page[0], page[1:]
	n := &node{}

	var err error
	switch tag {
	case tagLeaf:
		n.kind = kindLeaf
		if n.keys, rest, err = readStringSeq(rest); err != nil {
			return nil, err
		}
		if n.values, rest, err = readStringSeq(rest); err != nil {
			return nil, err
		}
	case tagInternal:
		n.kind = kindInternal
		if n.keys, rest, err = readStringSeq(rest); err != nil {
			return nil, err
		}
		if n.children, rest, err = readOffsetSeq(rest); err != nil {
			return nil, err
		}
	default:
		return nil, errors.Newf("bptree: unknown node tag %d", tag)
	}

	if n.offset, _, err = readOptionalOffset(rest); err != nil {
		return nil, err
	}
	return n, nil
}

// ─── sequence helpers ──────────────────────────────────────────────────────

func appendStringSeq(buf []byte, seq [][]byte) []byte {
	buf = binary.AppendUvarint(buf, uint64(len(seq)))
	for _, s := range seq {
		buf = binary.AppendUvarint(buf, uint64(len(s)))
		buf = append(buf, s...)
	}
	return buf
}

func readStringSeq(buf []byte) ([][]byte, []byte, error) {
	n, buf, err := readUvarint(buf)
	if err != nil {
		return nil, nil, err
	}
	seq := make([][]byte, 0, n)
	for i := uint64(0); i < n; i++ {
		var l uint64
		l, buf, err = readUvarint(buf)
		if err != nil {
			return nil, nil, err
		}
		if uint64(len(buf)) < l {
			return nil, nil, errors.New("bptree: truncated string in node")
		}
		s := make([]byte, l)
		copy(s, buf[:l])
		seq = append(seq, s)
		buf = buf[l:]
	}
	return seq, buf, nil
}

func appendOffsetSeq(buf []byte, seq []Offset) []byte {
	buf = binary.AppendUvarint(buf, uint64(len(seq)))
	for _, o := range seq {
		buf = binary.LittleEndian.AppendUint64(buf, o)
	}
	return buf
}

func readOffsetSeq(buf []byte) ([]Offset, []byte, error) {
	n, buf, err := readUvarint(buf)
	if err != nil {
		return nil, nil, err
	}
	seq := make([]Offset, 0, n)
	for i := uint64(0); i < n; i++ {
		if len(buf) < 8 {
			return nil, nil, errors.New("bptree: truncated offset in node")
		}
		seq = append(seq, binary.LittleEndian.Uint64(buf))
		buf = buf[8:]
	}
	return seq, buf, nil
}

func appendOptionalOffset(buf []byte, o *Offset) []byte {
	if o == nil {
		return append(buf, 0)
	}
	buf = append(buf, 1)
	return binary.LittleEndian.AppendUint64(buf, *o)
}

func readOptionalOffset(buf []byte) (*Offset, []byte, error) {
	if len(buf) < 1 {
		return nil, nil, errors.New("bptree: truncated presence tag")
	}
	present, buf := buf[0], buf[1:]
	if present == 0 {
		return nil, buf, nil
	}
	if len(buf) < 8 {
		return nil, nil, errors.New("bptree: truncated self offset")
	}
	o := binary.LittleEndian.Uint64(buf)
	return &o, buf[8:], nil
}

func readUvarint(buf []byte) (uint64, []byte, error) {
	v, n := binary.Uvarint(buf)
	if n <= 0 {
		return 0, nil, errors.New("bptree: malformed varint in node")
	}
	return v, buf[n:], nil
}
