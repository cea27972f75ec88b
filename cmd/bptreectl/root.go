package main

import (
	"github.com/go-logr/stdr"
	"github.com/spf13/cobra"

	"github.com/nrummel/bptreedb/internal/config"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "bptreectl",
		Short:         "operate a disk-backed B+Tree key/value store",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	resolver := config.Bind(root.PersistentFlags())
	log := stdr.New(nil)

	root.AddCommand(
		newPutCmd(resolver, log),
		newGetCmd(resolver, log),
		newDeleteCmd(resolver, log),
		newDumpCmd(resolver, log),
		newBenchCmd(resolver, log),
	)
	return root
}
