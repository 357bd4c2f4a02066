package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forgo/catalog/internal/config"
	"github.com/forgo/catalog/internal/seed"
	"github.com/forgo/catalog/internal/store"
)

func newSeedCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load genres, authors and books from a YAML file",
		Long: "Loads a seed file through the catalog services. Genre names are " +
			"deduplicated the same way the create form does it.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd, file)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Seed file (default: CATALOG_SEED_FILE)")

	return cmd
}

func runSeed(cmd *cobra.Command, file string) error {
	ctx := cmd.Context()

	return withStore(ctx, func(cfg *config.Config, st *store.Store) error {
		if file == "" {
			file = cfg.Catalog.SeedFile
		}
		if file == "" {
			return errors.New("no seed file given; pass --file or set CATALOG_SEED_FILE")
		}

		f, err := seed.ParseFile(file)
		if err != nil {
			return err
		}

		services := st.NewServices(nil)
		seeder := seed.NewSeeder(seed.SeederConfig{
			GenreService:  services.Genres,
			AuthorService: services.Authors,
			BookService:   services.Books,
		})
		res, err := seeder.Apply(ctx, f)
		if err != nil {
			return fmt.Errorf("seeding: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "genres created: %d\n", res.GenresCreated)
		fmt.Fprintf(out, "genres reused:  %d\n", res.GenresReused)
		fmt.Fprintf(out, "authors:        %d\n", res.Authors)
		fmt.Fprintf(out, "books:          %d\n", res.Books)
		return nil
	})
}
