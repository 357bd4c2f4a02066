package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgo/catalog/internal/config"
	"github.com/forgo/catalog/internal/store"
)

func TestMigrateCmd_RequiresCommand(t *testing.T) {
	cmd := newMigrateCmd()
	assert.Error(t, cmd.Args(cmd, nil))
	assert.NoError(t, cmd.Args(cmd, []string{"status"}))
	assert.Error(t, cmd.Args(cmd, []string{"up", "down"}))
}

func TestSeedCmd_FileFlag(t *testing.T) {
	cmd := newSeedCmd()
	require.NoError(t, cmd.ParseFlags([]string{"-f", "seed.yaml"}))

	file, err := cmd.Flags().GetString("file")
	require.NoError(t, err)
	assert.Equal(t, "seed.yaml", file)
}

func TestWithStore_InvalidConfig(t *testing.T) {
	t.Setenv("DB_DRIVER", "mongo")

	called := false
	err := withStore(context.Background(), func(_ *config.Config, _ *store.Store) error {
		called = true
		return nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_DRIVER")
	assert.False(t, called)
}
