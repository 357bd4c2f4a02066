// Package postgres implements the catalog repositories on PostgreSQL with
// pgx. Schema changes are goose migrations embedded in the binary.
package postgres

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/forgo/catalog/internal/database"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const migrationsDir = "migrations"

const uniqueViolation = "23505"

// Open connects a pool to dsn and verifies it with a ping
func Open(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", database.ErrConnection, err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%w: %v", database.ErrConnection, err)
	}
	return pool, nil
}

// Migrate runs a goose command ("up", "down" or "status") against pool
// using the embedded migrations. Status output goes to out.
func Migrate(ctx context.Context, pool *pgxpool.Pool, command string, out io.Writer) error {
	db := stdlib.OpenDBFromPool(pool)
	defer func() { _ = db.Close() }()

	goose.SetBaseFS(migrationsFS)
	defer goose.SetBaseFS(nil)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	switch command {
	case "up":
		return goose.UpContext(ctx, db, migrationsDir)
	case "down":
		return goose.DownContext(ctx, db, migrationsDir)
	case "status":
		version, err := goose.GetDBVersionContext(ctx, db)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "postgres schema version: %d\n", version)
		return err
	default:
		return fmt.Errorf("unknown migrate command %q", command)
	}
}

// classify maps driver errors onto the database sentinels
func classify(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", database.ErrDuplicate, pgErr.ConstraintName)
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return database.ErrNotFound
	}
	return fmt.Errorf("%w: %v", database.ErrQuery, err)
}

func nullable(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
