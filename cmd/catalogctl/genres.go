package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/forgo/catalog/internal/config"
	"github.com/forgo/catalog/internal/store"
)

func newGenresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "genres",
		Short: "List all genres",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withStore(ctx, func(_ *config.Config, st *store.Store) error {
				genres, err := st.NewServices(nil).Genres.List(ctx)
				if err != nil {
					return err
				}
				if len(genres) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No genres found.")
					return nil
				}

				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tNAME\tURL")
				for _, g := range genres {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", g.ID, g.Name, g.URL())
				}
				return tw.Flush()
			})
		},
	}
}
