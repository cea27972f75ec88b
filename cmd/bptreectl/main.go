// Command bptreectl is the operator-facing shell around the bptree engine:
// put/get/delete/dump against a single store file, and a bench subcommand
// that races the engine against an in-memory baseline and pebble.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
