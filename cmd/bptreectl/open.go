package main

import (
	"os"

	"github.com/go-logr/logr"

	"github.com/nrummel/bptreedb/internal/bptree"
	"github.com/nrummel/bptreedb/internal/config"
	"github.com/nrummel/bptreedb/internal/store"
)

// openTree applies cfg's open/truncate policy and returns a ready-to-use
// Tree plus the underlying file for the caller to Close. The Tree starts
// with no root: it does not find or reuse a tree written to the file by an
// earlier invocation, and its first insert writes over the page at the
// startup offset.
func openTree(cfg config.Config, log logr.Logger) (*bptree.Tree, *os.File, error) {
	f, err := store.Open(cfg.Path, store.Options{Truncate: cfg.Truncate})
	if err != nil {
		return nil, nil, err
	}
	pager := bptree.NewPager(f, store.DefaultStartupOffset)
	tree := bptree.New(cfg.Degree, pager, bptree.WithLogger(log))
	return tree, f, nil
}
