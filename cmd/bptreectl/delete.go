package main

import (
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/nrummel/bptreedb/internal/config"
)

func newDeleteCmd(resolver *config.Resolver, log logr.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <key>",
		Short: "remove a key if present",
		Args:  cobra.ExactArgs(1),
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
			return tree.Delete([]byte(args[0]))
		},
	}
}
