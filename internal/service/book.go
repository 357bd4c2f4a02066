package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/forgo/catalog/internal/database"
	"github.com/forgo/catalog/internal/model"
	"github.com/forgo/catalog/internal/validation"
)

// BookRepository defines the interface for book storage.
// GetByID returns nil, nil when the book does not exist.
type BookRepository interface {
	List(ctx context.Context) ([]*model.Book, error)
	GetByID(ctx context.Context, id string) (*model.Book, error)
	Create(ctx context.Context, book *model.Book) error
	Update(ctx context.Context, book *model.Book) error
	Delete(ctx context.Context, id string) error

	// ListByGenre and ListByAuthor return the referencing books sorted by
	// title ascending.
	ListByGenre(ctx context.Context, genreID string) ([]model.BookSummary, error)
	ListByAuthor(ctx context.Context, authorID string) ([]model.BookSummary, error)
}

// BookService handles book business logic
type BookService struct {
	books   BookRepository
	genres  GenreRepository
	authors AuthorRepository
	events  Publisher
}

// BookServiceConfig holds configuration for the book service
type BookServiceConfig struct {
	BookRepo   BookRepository
	GenreRepo  GenreRepository
	AuthorRepo AuthorRepository
	Events     Publisher // optional
}

// NewBookService creates a new book service
func NewBookService(cfg BookServiceConfig) *BookService {
	return &BookService{
		books:   cfg.BookRepo,
		genres:  cfg.GenreRepo,
		authors: cfg.AuthorRepo,
		events:  cfg.Events,
	}
}

// List returns all books sorted by title
func (s *BookService) List(ctx context.Context) ([]*model.Book, error) {
	books, err := s.books.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing books: %w", err)
	}
	return books, nil
}

// Get returns a single book
func (s *BookService) Get(ctx context.Context, id string) (*model.Book, error) {
	book, err := s.books.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting book: %w", err)
	}
	if book == nil {
		return nil, ErrBookNotFound
	}
	return book, nil
}

// Detail returns a book with its author and genre. The two references are
// resolved concurrently once the book is loaded; a dangling reference is
// shown as absent.
func (s *BookService) Detail(ctx context.Context, id string) (*model.BookDetail, error) {
	book, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &model.BookDetail{Book: *book}
	var g errgroup.Group
	if book.AuthorID != nil {
		g.Go(func() error {
			author, err := s.authors.GetByID(ctx, *book.AuthorID)
			detail.Author = author
			return err
		})
	}
	if book.GenreID != nil {
		g.Go(func() error {
			genre, err := s.genres.GetByID(ctx, *book.GenreID)
			detail.Genre = genre
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("reading book detail: %w", err)
	}
	return detail, nil
}

// FormOptions returns the authors and genres a book form can reference
func (s *BookService) FormOptions(ctx context.Context) (*model.BookFormOptions, error) {
	opts := &model.BookFormOptions{}
	var g errgroup.Group
	g.Go(func() error {
		authors, err := s.authors.List(ctx)
		opts.Authors = derefAll(authors)
		return err
	})
	g.Go(func() error {
		genres, err := s.genres.List(ctx)
		opts.Genres = derefAll(genres)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("loading book form options: %w", err)
	}
	return opts, nil
}

// Create adds a book. Author and genre references must resolve.
func (s *BookService) Create(ctx context.Context, form model.BookForm) (*model.Book, error) {
	book, err := s.bookFromForm(ctx, form)
	if err != nil {
		return nil, err
	}

	if err := s.books.Create(ctx, book); err != nil {
		return nil, fmt.Errorf("creating book: %w", err)
	}
	slog.Info("book created", slog.String("book_id", book.ID))
	publishChange(s.events, EventCreated, model.KindBook, book.ID)
	return book, nil
}

// Update replaces a book's fields
func (s *BookService) Update(ctx context.Context, id string, form model.BookForm) (*model.Book, error) {
	updated, err := s.bookFromForm(ctx, form)
	if err != nil {
		return nil, err
	}

	book, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	book.Title = updated.Title
	book.Summary = updated.Summary
	book.ISBN = updated.ISBN
	book.AuthorID = updated.AuthorID
	book.GenreID = updated.GenreID
	if err := s.books.Update(ctx, book); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, fmt.Errorf("updating book: %w", err)
	}
	publishChange(s.events, EventUpdated, model.KindBook, book.ID)
	return book, nil
}

// Delete removes a book. Nothing depends on books, so there is no guard.
func (s *BookService) Delete(ctx context.Context, id, bodyID string) error {
	if err := confirmDeleteID(id, bodyID); err != nil {
		return err
	}
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.books.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting book: %w", err)
	}
	slog.Info("book deleted", slog.String("book_id", id))
	publishChange(s.events, EventDeleted, model.KindBook, id)
	return nil
}

// bookFromForm validates the form and checks that its references resolve.
// The two reference lookups run concurrently.
func (s *BookService) bookFromForm(ctx context.Context, form model.BookForm) (*model.Book, error) {
	clean, fieldErrs := validation.Book(form)
	if len(fieldErrs) > 0 {
		return nil, invalid(clean, fieldErrs...)
	}

	var (
		author *model.Author
		genre  *model.Genre
		g      errgroup.Group
	)
	if clean.Author != "" {
		g.Go(func() (err error) {
			author, err = s.authors.GetByID(ctx, clean.Author)
			return err
		})
	}
	if clean.Genre != "" {
		g.Go(func() (err error) {
			genre, err = s.genres.GetByID(ctx, clean.Genre)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("checking book references: %w", err)
	}

	var refErrs []model.FieldError
	if clean.Author != "" && author == nil {
		refErrs = append(refErrs, model.FieldError{Field: "author", Message: ErrInvalidAuthorRef.Error()})
	}
	if clean.Genre != "" && genre == nil {
		refErrs = append(refErrs, model.FieldError{Field: "genre", Message: ErrInvalidGenreRef.Error()})
	}
	if len(refErrs) > 0 {
		return nil, invalid(clean, refErrs...)
	}

	return &model.Book{
		Title:    clean.Title,
		Summary:  clean.Summary,
		ISBN:     clean.ISBN,
		AuthorID: optional(clean.Author),
		GenreID:  optional(clean.Genre),
	}, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefAll[T any](items []*T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if item != nil {
			out = append(out, *item)
		}
	}
	return out
}
