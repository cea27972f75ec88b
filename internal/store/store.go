// Package store owns the one external collaborator the core engine
// contracts with directly (spec §1): opening the backing file and deciding
// its truncation policy. The core itself never calls os.Open or os.Create —
// it only ever receives an already-opened file handle and a startup offset.
package store

import (
	"os"

	"github.com/cockroachdb/errors"
)

// DefaultStartupOffset reserves a 4096-byte header page plus a 20-byte
// trailer before the first allocatable page, matching the original
// implementation's convention (see SPEC_FULL.md Part D) rather than
// spec.md's looser "typical choice: 2*PageSize" — both are equally valid
// since the reserved region is unused by the core either way.
const DefaultStartupOffset = 4096 + 20

// Options controls how Open prepares the backing file.
type Options struct {
	// Truncate discards any existing contents, starting from an empty
	// file. Off by default: existing contents are kept, though Open itself
	// does not interpret them.
	Truncate bool
}

// Open opens (creating if necessary) the file at path for the core engine
// to use as its backing store, applying opts. The caller owns the returned
// handle's lifetime and must Close it.
func Open(path string, opts Options) (*os.File, error) {
	flags := os.O_RDWR | os.O_CREATE
	if opts.Truncate {
		flags |= os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "store: open %s", path)
	}
	return f, nil
}
