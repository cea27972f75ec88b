package bptree

import (
	"bytes"
	"testing"
)

func TestCodecRoundTripLeaf(t *testing.T) {
	offset := Offset(4096)
	n := &node{
		kind:   kindLeaf,
		keys:   [][]byte{[]byte("a"), []byte("bb"), []byte("ccc")},
		values: [][]byte{[]byte("1"), []byte("22"), []byte("333")},
		offset: &offset,
	}

	encoded, err := encodeNode(n)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(encoded) > PageSize {
		t.Fatalf("encoded leaf exceeds page size: %d", len(encoded))
	}

	page := make([]byte, PageSize)
	copy(page, encoded)

	decoded, err := decodeNode(page)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.kind != kindLeaf {
		t.Fatalf("expected leaf, got kind %v", decoded.kind)
	}
	if len(decoded.keys) != len(n.keys) {
		t.Fatalf("key count mismatch: got %d, want %d", len(decoded.keys), len(n.keys))
	}
	for i := range n.keys {
		if !bytes.Equal(decoded.keys[i], n.keys[i]) {
			t.Fatalf("key %d mismatch: got %q, want %q", i, decoded.keys[i], n.keys[i])
		}
		if !bytes.Equal(decoded.values[i], n.values[i]) {
			t.Fatalf("value %d mismatch: got %q, want %q", i, decoded.values[i], n.values[i])
		}
	}
	if decoded.offset == nil || *decoded.offset != offset {
		t.Fatalf("offset mismatch: got %v, want %d", decoded.offset, offset)
	}
}

func TestCodecRoundTripInternal(t *testing.T) {
	n := &node{
		kind:     kindInternal,
		keys:     [][]byte{[]byte("m"), []byte("z")},
		children: []Offset{100, 200, 300},
	}

	encoded, err := encodeNode(n)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	page := make([]byte, PageSize)
	copy(page, encoded)

	decoded, err := decodeNode(page)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.kind != kindInternal {
		t.Fatalf("expected internal, got kind %v", decoded.kind)
	}
	if len(decoded.children) != len(n.children) {
		t.Fatalf("children count mismatch: got %d, want %d", len(decoded.children), len(n.children))
	}
	for i := range n.children {
		if decoded.children[i] != n.children[i] {
			t.Fatalf("child %d mismatch: got %d, want %d", i, decoded.children[i], n.children[i])
		}
	}
	if decoded.offset != nil {
		t.Fatalf("expected no self-offset, got %v", decoded.offset)
	}
}

func TestEncodeNodeRejectsOversize(t *testing.T) {
	bigValue := bytes.Repeat([]byte("x"), PageSize)
	n := &node{
		kind:   kindLeaf,
		keys:   [][]byte{[]byte("k")},
		values: [][]byte{bigValue},
	}
	if _, err := encodeNode(n); err == nil {
		t.Fatalf("expected ErrOversizedNode, got nil")
	}
}
