package main

import (
	"github.com/spf13/cobra"

	"github.com/forgo/catalog/internal/config"
	"github.com/forgo/catalog/internal/store"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "Apply or inspect the catalog schema",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"up", "down", "status"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), func(_ *config.Config, st *store.Store) error {
				return st.Migrate(cmd.Context(), args[0], cmd.OutOrStdout())
			})
		},
	}
}
