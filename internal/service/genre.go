package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/forgo/catalog/internal/database"
	"github.com/forgo/catalog/internal/fold"
	"github.com/forgo/catalog/internal/model"
	"github.com/forgo/catalog/internal/validation"
)

// GenreRepository defines the interface for genre storage.
// Lookups return nil, nil when the record does not exist.
type GenreRepository interface {
	GenreNameLookup
	List(ctx context.Context) ([]*model.Genre, error)
	GetByID(ctx context.Context, id string) (*model.Genre, error)
	Create(ctx context.Context, genre *model.Genre) error
	Update(ctx context.Context, genre *model.Genre) error
	Delete(ctx context.Context, id string) error
}

// GenreService handles genre business logic
type GenreService struct {
	genres   GenreRepository
	books    BookRepository
	resolver *IdentityResolver
	events   Publisher
}

// GenreServiceConfig holds configuration for the genre service
type GenreServiceConfig struct {
	GenreRepo GenreRepository
	BookRepo  BookRepository
	Events    Publisher // optional
}

// NewGenreService creates a new genre service
func NewGenreService(cfg GenreServiceConfig) *GenreService {
	return &GenreService{
		genres:   cfg.GenreRepo,
		books:    cfg.BookRepo,
		resolver: NewIdentityResolver(cfg.GenreRepo),
		events:   cfg.Events,
	}
}

// List returns all genres sorted by name
func (s *GenreService) List(ctx context.Context) ([]*model.Genre, error) {
	genres, err := s.genres.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing genres: %w", err)
	}
	return genres, nil
}

// Get returns a single genre, used to prefill the update form
func (s *GenreService) Get(ctx context.Context, id string) (*model.Genre, error) {
	genre, err := s.genres.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting genre: %w", err)
	}
	if genre == nil {
		return nil, ErrGenreNotFound
	}
	return genre, nil
}

// Detail returns a genre with its books, read concurrently
func (s *GenreService) Detail(ctx context.Context, id string) (*model.GenreDetail, error) {
	genre, books, err := fetchWithDependents(ctx, ErrGenreNotFound,
		func(ctx context.Context) (*model.Genre, error) {
			return s.genres.GetByID(ctx, id)
		},
		func(ctx context.Context) ([]model.BookSummary, error) {
			return s.books.ListByGenre(ctx, id)
		},
	)
	if err != nil {
		if errors.Is(err, ErrGenreNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("reading genre detail: %w", err)
	}
	return &model.GenreDetail{Genre: *genre, Books: books}, nil
}

// DeleteConfirmation returns the same payload as Detail, shown before a delete
func (s *GenreService) DeleteConfirmation(ctx context.Context, id string) (*model.GenreDetail, error) {
	return s.Detail(ctx, id)
}

// Create adds a genre unless an equivalent one already exists, in which case
// the existing genre is returned and nothing is written. created reports
// which of the two happened.
func (s *GenreService) Create(ctx context.Context, form model.GenreForm) (genre *model.Genre, created bool, err error) {
	clean, fieldErrs := validation.Genre(form)
	if len(fieldErrs) > 0 {
		return nil, false, invalid(clean, fieldErrs...)
	}

	existing, err := s.resolver.Resolve(ctx, clean.Name)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		slog.Info("genre reused",
			slog.String("genre_id", existing.ID),
			slog.String("name", clean.Name),
		)
		return existing, false, nil
	}

	genre = &model.Genre{Name: clean.Name, NameKey: fold.Key(clean.Name)}
	if err := s.genres.Create(ctx, genre); err != nil {
		if !errors.Is(err, database.ErrDuplicate) {
			return nil, false, fmt.Errorf("creating genre: %w", err)
		}
		// A concurrent writer inserted an equivalent name after our lookup.
		winner, rerr := s.resolver.Resolve(ctx, clean.Name)
		if rerr != nil {
			return nil, false, rerr
		}
		if winner == nil {
			return nil, false, fmt.Errorf("creating genre: %w", err)
		}
		slog.Info("genre merged on conflict",
			slog.String("genre_id", winner.ID),
			slog.String("name", clean.Name),
		)
		return winner, false, nil
	}

	slog.Info("genre created", slog.String("genre_id", genre.ID), slog.String("name", genre.Name))
	publishChange(s.events, EventCreated, model.KindGenre, genre.ID)
	return genre, true, nil
}

// Update renames a genre. A name equivalent to a different genre is a
// validation failure; a case or accent variant of the genre's own name is
// allowed.
func (s *GenreService) Update(ctx context.Context, id string, form model.GenreForm) (*model.Genre, error) {
	clean, fieldErrs := validation.Genre(form)
	if len(fieldErrs) > 0 {
		return nil, invalid(clean, fieldErrs...)
	}

	genre, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	existing, err := s.resolver.Resolve(ctx, clean.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != genre.ID {
		return nil, invalid(clean, genreExistsError())
	}

	genre.Name = clean.Name
	genre.NameKey = fold.Key(clean.Name)
	if err := s.genres.Update(ctx, genre); err != nil {
		switch {
		case errors.Is(err, database.ErrDuplicate):
			return nil, invalid(clean, genreExistsError())
		case errors.Is(err, database.ErrNotFound):
			return nil, ErrGenreNotFound
		}
		return nil, fmt.Errorf("updating genre: %w", err)
	}
	publishChange(s.events, EventUpdated, model.KindGenre, genre.ID)
	return genre, nil
}

// Delete removes a genre that no book references. When books still reference
// it, the genre and its books are returned with a *BlockedError and nothing
// is deleted.
func (s *GenreService) Delete(ctx context.Context, id, bodyID string) (*model.GenreDetail, error) {
	if err := confirmDeleteID(id, bodyID); err != nil {
		return nil, err
	}

	detail, err := s.Detail(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkDeletable(model.KindGenre, id, detail.Books); err != nil {
		slog.Info("genre delete blocked",
			slog.String("genre_id", id),
			slog.Int("books", len(detail.Books)),
		)
		return detail, err
	}

	if err := s.genres.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("deleting genre: %w", err)
	}
	slog.Info("genre deleted", slog.String("genre_id", id))
	publishChange(s.events, EventDeleted, model.KindGenre, id)
	return nil, nil
}

func genreExistsError() model.FieldError {
	return model.FieldError{Field: "name", Message: "Genre already exists"}
}
