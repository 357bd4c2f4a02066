package main

import (
	"context"
	"fmt"

	"github.com/forgo/catalog/internal/config"
	"github.com/forgo/catalog/internal/store"
)

// withStore loads config, opens the configured store and calls fn.
// The store is closed when fn returns.
func withStore(ctx context.Context, fn func(*config.Config, *store.Store) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	st, err := store.Open(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("opening %s store: %w", cfg.Database.Driver, err)
	}
	defer st.Close()

	return fn(cfg, st)
}
