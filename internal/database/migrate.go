package database

import (
	"context"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

// LoadMigrations reads every .surql file in fsys in lexical order,
// skipping seed.surql.
func LoadMigrations(fsys fs.FS) ([]Migration, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("reading migrations dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if !e.IsDir() && strings.HasSuffix(name, ".surql") && name != "seed.surql" {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	migrations := make([]Migration, 0, len(names))
	for _, name := range names {
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		migrations = append(migrations, Migration{Name: name, Body: string(content)})
	}
	return migrations, nil
}

// Migration is a single schema file
type Migration struct {
	Name string
	Body string
}

// ApplyMigrations runs the .surql files in fsys against db in order.
// The schema statements are idempotent (DEFINE ... IF NOT EXISTS), so
// reapplying is safe.
func ApplyMigrations(ctx context.Context, db Database, fsys fs.FS) ([]string, error) {
	migrations, err := LoadMigrations(fsys)
	if err != nil {
		return nil, err
	}

	applied := make([]string, 0, len(migrations))
	for _, m := range migrations {
		if err := db.Execute(ctx, m.Body, nil); err != nil {
			return applied, fmt.Errorf("migration %s: %w", m.Name, err)
		}
		applied = append(applied, m.Name)
	}
	return applied, nil
}
