package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/nrummel/bptreedb/internal/config"
)

func newGetCmd(resolver *config.Resolver, log logr.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "look up a key",
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

			value, ok, err := tree.Search([]byte(args[0]))
			if err != nil {
				return err
			}
			if !ok {
				return errors.Newf("key not found: %q", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(value))
			return nil
		},
	}
}
