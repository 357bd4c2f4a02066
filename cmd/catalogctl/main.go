// Package main provides the catalogctl command for operating a catalog store.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	rootCmd := &cobra.Command{
		Use:     "catalogctl",
		Short:   "Manage the library catalog store",
		Version: version,
	}

	rootCmd.AddCommand(
		newMigrateCmd(),
		newSeedCmd(),
		newGenresCmd(),
	)

	return rootCmd.ExecuteContext(ctx)
}
