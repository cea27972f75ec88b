package main

import (
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/nrummel/bptreedb/internal/config"
)

func newDumpCmd(resolver *config.Resolver, log logr.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "print the tree's structure, depth-indented, for diagnostics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolver.Resolve()
			if err != nil {
				return err
			}
			tree, f, err := openTree(cfg, log)
			if err != nil {
				return err
			}
			defer f.Close()
			return tree.DebugPrint(cmd.OutOrStdout())
		},
	}
}
