package main

import (
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/nrummel/bptreedb/internal/config"
)

func newPutCmd(resolver *config.Resolver, log logr.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "put <key> <value>",
		Short: "insert or overwrite a key",
		Args:  cobra.ExactArgs(2),
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
			return tree.Insert([]byte(args[0]), []byte(args[1]))
		},
	}
}
