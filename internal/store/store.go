// Package store opens the configured catalog backend and exposes its
// repositories behind the service interfaces.
package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/forgo/catalog/internal/config"
	"github.com/forgo/catalog/internal/database"
	"github.com/forgo/catalog/internal/repository"
	"github.com/forgo/catalog/internal/repository/postgres"
	"github.com/forgo/catalog/internal/service"
	"github.com/forgo/catalog/migrations"
)

// ErrUnknownDriver is returned by Open for an unsupported driver name
var ErrUnknownDriver = errors.New("unknown store driver")

// Store is an open backend plus its repositories
type Store struct {
	Driver  string
	Genres  service.GenreRepository
	Books   service.BookRepository
	Authors service.AuthorRepository

	surreal *database.SurrealDB
	pool    *pgxpool.Pool
}

// Open connects to the backend named by cfg.Driver
func Open(ctx context.Context, cfg config.DatabaseConfig) (*Store, error) {
	switch cfg.Driver {
	case config.DriverSurreal:
		db := database.NewSurrealDB(database.Config{
			Host:      cfg.Host,
			Port:      cfg.Port,
			User:      cfg.User,
			Password:  cfg.Password,
			Namespace: cfg.Namespace,
			Database:  cfg.Database,
		})
		if err := db.Connect(ctx); err != nil {
			return nil, err
		}
		slog.Info("connected to database",
			slog.String("driver", cfg.Driver),
			slog.String("host", cfg.Host),
			slog.String("database", cfg.Database),
		)
		return &Store{
			Driver:  cfg.Driver,
			Genres:  repository.NewGenreRepository(db),
			Books:   repository.NewBookRepository(db),
			Authors: repository.NewAuthorRepository(db),
			surreal: db,
		}, nil

	case config.DriverPostgres:
		pool, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		slog.Info("connected to database", slog.String("driver", cfg.Driver))
		return &Store{
			Driver:  cfg.Driver,
			Genres:  postgres.NewGenreRepository(pool),
			Books:   postgres.NewBookRepository(pool),
			Authors: postgres.NewAuthorRepository(pool),
			pool:    pool,
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
}

// Migrate runs a schema command ("up", "down" or "status"). SurrealDB
// schema files are idempotent and only support "up" and "status".
func (s *Store) Migrate(ctx context.Context, command string, out io.Writer) error {
	if s.pool != nil {
		return postgres.Migrate(ctx, s.pool, command, out)
	}

	switch command {
	case "up":
		applied, err := database.ApplyMigrations(ctx, s.surreal, migrations.FS)
		for _, name := range applied {
			_, _ = fmt.Fprintf(out, "applied %s\n", name)
		}
		return err
	case "status":
		defined, err := database.LoadMigrations(migrations.FS)
		if err != nil {
			return err
		}
		for _, m := range defined {
			_, _ = fmt.Fprintf(out, "defined %s\n", m.Name)
		}
		return nil
	case "down":
		return fmt.Errorf("migrate down is not supported by the %s driver", s.Driver)
	}
	return fmt.Errorf("unknown migrate command %q", command)
}

// Ping checks the backend connection
func (s *Store) Ping(ctx context.Context) error {
	if s.pool != nil {
		return s.pool.Ping(ctx)
	}
	return s.surreal.Ping(ctx)
}

// Close releases the backend connection
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
		return
	}
	if s.surreal != nil {
		_ = s.surreal.Close()
	}
}

// Services holds the catalog services built over one store
type Services struct {
	Genres  *service.GenreService
	Books   *service.BookService
	Authors *service.AuthorService
}

// NewServices wires the catalog services over s. events may be nil.
func (s *Store) NewServices(events service.Publisher) *Services {
	return &Services{
		Genres: service.NewGenreService(service.GenreServiceConfig{
			GenreRepo: s.Genres,
			BookRepo:  s.Books,
			Events:    events,
		}),
		Books: service.NewBookService(service.BookServiceConfig{
			BookRepo:   s.Books,
			GenreRepo:  s.Genres,
			AuthorRepo: s.Authors,
			Events:     events,
		}),
		Authors: service.NewAuthorService(service.AuthorServiceConfig{
			AuthorRepo: s.Authors,
			BookRepo:   s.Books,
			Events:     events,
		}),
	}
}
