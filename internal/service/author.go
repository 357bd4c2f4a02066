package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/forgo/catalog/internal/database"
	"github.com/forgo/catalog/internal/model"
	"github.com/forgo/catalog/internal/validation"
)

// AuthorRepository defines the interface for author storage.
// GetByID returns nil, nil when the author does not exist.
type AuthorRepository interface {
	List(ctx context.Context) ([]*model.Author, error)
	GetByID(ctx context.Context, id string) (*model.Author, error)
	Create(ctx context.Context, author *model.Author) error
	Update(ctx context.Context, author *model.Author) error
	Delete(ctx context.Context, id string) error
}

// AuthorService handles author business logic
type AuthorService struct {
	authors AuthorRepository
	books   BookRepository
	events  Publisher
}

// AuthorServiceConfig holds configuration for the author service
type AuthorServiceConfig struct {
	AuthorRepo AuthorRepository
	BookRepo   BookRepository
	Events     Publisher // optional
}

// NewAuthorService creates a new author service
func NewAuthorService(cfg AuthorServiceConfig) *AuthorService {
	return &AuthorService{
		authors: cfg.AuthorRepo,
		books:   cfg.BookRepo,
		events:  cfg.Events,
	}
}

// List returns all authors sorted by family name
func (s *AuthorService) List(ctx context.Context) ([]*model.Author, error) {
	authors, err := s.authors.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing authors: %w", err)
	}
	return authors, nil
}

// Get returns a single author
func (s *AuthorService) Get(ctx context.Context, id string) (*model.Author, error) {
	author, err := s.authors.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting author: %w", err)
	}
	if author == nil {
		return nil, ErrAuthorNotFound
	}
	return author, nil
}

// Detail returns an author with their books, read concurrently
func (s *AuthorService) Detail(ctx context.Context, id string) (*model.AuthorDetail, error) {
	author, books, err := fetchWithDependents(ctx, ErrAuthorNotFound,
		func(ctx context.Context) (*model.Author, error) {
			return s.authors.GetByID(ctx, id)
		},
		func(ctx context.Context) ([]model.BookSummary, error) {
			return s.books.ListByAuthor(ctx, id)
		},
	)
	if err != nil {
		if errors.Is(err, ErrAuthorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("reading author detail: %w", err)
	}
	return &model.AuthorDetail{Author: *author, Books: books}, nil
}

// DeleteConfirmation returns the same payload as Detail
func (s *AuthorService) DeleteConfirmation(ctx context.Context, id string) (*model.AuthorDetail, error) {
	return s.Detail(ctx, id)
}

// Create adds an author
func (s *AuthorService) Create(ctx context.Context, form model.AuthorForm) (*model.Author, error) {
	author, err := authorFromForm(form)
	if err != nil {
		return nil, err
	}

	if err := s.authors.Create(ctx, author); err != nil {
		return nil, fmt.Errorf("creating author: %w", err)
	}
	slog.Info("author created", slog.String("author_id", author.ID))
	publishChange(s.events, EventCreated, model.KindAuthor, author.ID)
	return author, nil
}

// Update replaces an author's fields
func (s *AuthorService) Update(ctx context.Context, id string, form model.AuthorForm) (*model.Author, error) {
	updated, err := authorFromForm(form)
	if err != nil {
		return nil, err
	}

	author, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	author.FirstName = updated.FirstName
	author.FamilyName = updated.FamilyName
	author.DateOfBirth = updated.DateOfBirth
	author.DateOfDeath = updated.DateOfDeath
	if err := s.authors.Update(ctx, author); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrAuthorNotFound
		}
		return nil, fmt.Errorf("updating author: %w", err)
	}
	publishChange(s.events, EventUpdated, model.KindAuthor, author.ID)
	return author, nil
}

// Delete removes an author no book references. When books still reference
// the author, the detail is returned with a *BlockedError.
func (s *AuthorService) Delete(ctx context.Context, id, bodyID string) (*model.AuthorDetail, error) {
	if err := confirmDeleteID(id, bodyID); err != nil {
		return nil, err
	}

	detail, err := s.Detail(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkDeletable(model.KindAuthor, id, detail.Books); err != nil {
		slog.Info("author delete blocked",
			slog.String("author_id", id),
			slog.Int("books", len(detail.Books)),
		)
		return detail, err
	}

	if err := s.authors.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("deleting author: %w", err)
	}
	slog.Info("author deleted", slog.String("author_id", id))
	publishChange(s.events, EventDeleted, model.KindAuthor, id)
	return nil, nil
}

func authorFromForm(form model.AuthorForm) (*model.Author, error) {
	clean, fieldErrs := validation.Author(form)
	if len(fieldErrs) > 0 {
		return nil, invalid(clean, fieldErrs...)
	}

	// Both dates already passed the datetime rule.
	birth, _ := validation.ParseDate(clean.DateOfBirth)
	death, _ := validation.ParseDate(clean.DateOfDeath)

	return &model.Author{
		FirstName:   clean.FirstName,
		FamilyName:  clean.FamilyName,
		DateOfBirth: birth,
		DateOfDeath: death,
	}, nil
}
