package bptree

import "github.com/cockroachdb/errors"

// ErrOversizedNode is returned by the pager when a node's encoded form does
// not fit within a single page. Keys/values large enough to trigger this are
// a caller error: the engine has no overflow-page mechanism (see spec
// Non-goals).
var ErrOversizedNode = errors.New("bptree: encoded node exceeds page size")

// wrapIO tags an I/O failure (seek/read/write on the backing file) with the
// offset it happened at so failures are traceable without a debugger.
func wrapIO(err error, op string, offset Offset) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, "bptree: %s at offset %d", op, offset)
}

// wrapCodec tags a decode failure (corrupted or truncated page) with the
// offset it was read from.
func wrapCodec(err error, offset Offset) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, "bptree: decode node at offset %d", offset)
}
