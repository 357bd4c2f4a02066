// Package memstore provides in-memory genre, book and author repositories
// for tests. They honor the same contracts as the SurrealDB and PostgreSQL
// repositories: missing records read as nil, nil, lists come back sorted,
// and the genre name key is unique.
//
// Hooks let a test fail or delay individual operations:
//
//	store := memstore.New()
//	store.Hooks.ListByGenre = func(ctx context.Context, id string) error {
//	    return database.ErrConnection
//	}
package memstore

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/forgo/catalog/internal/database"
	"github.com/forgo/catalog/internal/model"
)

// Hook runs before the named operation; a non-nil error is returned in its
// place.
type Hook func(ctx context.Context, arg string) error

// Hooks holds optional per-operation interceptors
type Hooks struct {
	GenreGet     Hook
	GenreFindKey Hook
	GenreCreate  Hook
	GenreDelete  Hook
	ListByGenre  Hook
	ListByAuthor Hook
	AuthorGet    Hook
	BookCreate   Hook
	AuthorDelete Hook
}

// Store is a goroutine-safe in-memory catalog
type Store struct {
	mu      sync.RWMutex
	genres  map[string]model.Genre
	books   map[string]model.Book
	authors map[string]model.Author
	now     func() time.Time

	Hooks Hooks
	// Writes counts every successful create, update and delete
	Writes int
}

// New creates an empty store
func New() *Store {
	return &Store{
		genres:  make(map[string]model.Genre),
		books:   make(map[string]model.Book),
		authors: make(map[string]model.Author),
		now:     time.Now,
	}
}

// Genres returns the genre repository view of the store
func (s *Store) Genres() *GenreRepo { return &GenreRepo{s} }

// Books returns the book repository view of the store
func (s *Store) Books() *BookRepo { return &BookRepo{s} }

// Authors returns the author repository view of the store
func (s *Store) Authors() *AuthorRepo { return &AuthorRepo{s} }

// GenreCount returns the number of stored genres
func (s *Store) GenreCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.genres)
}

func run(ctx context.Context, h Hook, arg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if h == nil {
		return nil
	}
	return h(ctx, arg)
}

// ============================================================================
// Genres
// ============================================================================

// GenreRepo implements service.GenreRepository
type GenreRepo struct{ s *Store }

func (r *GenreRepo) List(ctx context.Context) ([]*model.Genre, error) {
	if err := run(ctx, nil, ""); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*model.Genre, 0, len(r.s.genres))
	for _, g := range r.s.genres {
		g := g
		out = append(out, &g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *GenreRepo) GetByID(ctx context.Context, id string) (*model.Genre, error) {
	if err := run(ctx, r.s.Hooks.GenreGet, id); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	g, ok := r.s.genres[id]
	if !ok {
		return nil, nil
	}
	return &g, nil
}

func (r *GenreRepo) FindByNameKey(ctx context.Context, key string) (*model.Genre, error) {
	if err := run(ctx, r.s.Hooks.GenreFindKey, key); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, g := range r.s.genres {
		if g.NameKey == key {
			g := g
			return &g, nil
		}
	}
	return nil, nil
}

func (r *GenreRepo) Create(ctx context.Context, genre *model.Genre) error {
	if err := run(ctx, r.s.Hooks.GenreCreate, genre.Name); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.checkKeyLocked(genre.NameKey, ""); err != nil {
		return err
	}
	now := r.s.now().UTC()
	genre.ID = uuid.NewString()
	genre.CreatedOn = now
	genre.UpdatedOn = now
	r.s.genres[genre.ID] = *genre
	r.s.Writes++
	return nil
}

func (r *GenreRepo) Update(ctx context.Context, genre *model.Genre) error {
	if err := run(ctx, nil, ""); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.genres[genre.ID]; !ok {
		return database.ErrNotFound
	}
	if err := r.checkKeyLocked(genre.NameKey, genre.ID); err != nil {
		return err
	}
	genre.UpdatedOn = r.s.now().UTC()
	r.s.genres[genre.ID] = *genre
	r.s.Writes++
	return nil
}

func (r *GenreRepo) Delete(ctx context.Context, id string) error {
	if err := run(ctx, r.s.Hooks.GenreDelete, id); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.genres, id)
	r.s.Writes++
	return nil
}

func (r *GenreRepo) checkKeyLocked(key, exceptID string) error {
	for id, g := range r.s.genres {
		if id != exceptID && g.NameKey == key {
			return fmt.Errorf("%w: genre name key %q", database.ErrDuplicate, key)
		}
	}
	return nil
}

// ============================================================================
// Books
// ============================================================================

// BookRepo implements service.BookRepository
type BookRepo struct{ s *Store }

func (r *BookRepo) List(ctx context.Context) ([]*model.Book, error) {
	if err := run(ctx, nil, ""); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*model.Book, 0, len(r.s.books))
	for _, b := range r.s.books {
		b := b
		out = append(out, &b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (r *BookRepo) GetByID(ctx context.Context, id string) (*model.Book, error) {
	if err := run(ctx, nil, ""); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	b, ok := r.s.books[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (r *BookRepo) Create(ctx context.Context, book *model.Book) error {
	if err := run(ctx, r.s.Hooks.BookCreate, book.Title); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := r.s.now().UTC()
	book.ID = uuid.NewString()
	book.CreatedOn = now
	book.UpdatedOn = now
	r.s.books[book.ID] = *book
	r.s.Writes++
	return nil
}

func (r *BookRepo) Update(ctx context.Context, book *model.Book) error {
	if err := run(ctx, nil, ""); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.books[book.ID]; !ok {
		return database.ErrNotFound
	}
	book.UpdatedOn = r.s.now().UTC()
	r.s.books[book.ID] = *book
	r.s.Writes++
	return nil
}

func (r *BookRepo) Delete(ctx context.Context, id string) error {
	if err := run(ctx, nil, ""); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.books, id)
	r.s.Writes++
	return nil
}

func (r *BookRepo) ListByGenre(ctx context.Context, genreID string) ([]model.BookSummary, error) {
	if err := run(ctx, r.s.Hooks.ListByGenre, genreID); err != nil {
		return nil, err
	}
	return r.summaries(func(b model.Book) bool {
		return b.GenreID != nil && *b.GenreID == genreID
	}), nil
}

func (r *BookRepo) ListByAuthor(ctx context.Context, authorID string) ([]model.BookSummary, error) {
	if err := run(ctx, r.s.Hooks.ListByAuthor, authorID); err != nil {
		return nil, err
	}
	return r.summaries(func(b model.Book) bool {
		return b.AuthorID != nil && *b.AuthorID == authorID
	}), nil
}

func (r *BookRepo) summaries(match func(model.Book) bool) []model.BookSummary {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []model.BookSummary{}
	for _, b := range r.s.books {
		if match(b) {
			out = append(out, b.Summarize())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out
}

// ============================================================================
// Authors
// ============================================================================

// AuthorRepo implements service.AuthorRepository
type AuthorRepo struct{ s *Store }

func (r *AuthorRepo) List(ctx context.Context) ([]*model.Author, error) {
	if err := run(ctx, nil, ""); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*model.Author, 0, len(r.s.authors))
	for _, a := range r.s.authors {
		a := a
		out = append(out, &a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].FamilyName != out[j].FamilyName {
			return out[i].FamilyName < out[j].FamilyName
		}
		return strings.Compare(out[i].FirstName, out[j].FirstName) < 0
	})
	return out, nil
}

func (r *AuthorRepo) GetByID(ctx context.Context, id string) (*model.Author, error) {
	if err := run(ctx, r.s.Hooks.AuthorGet, id); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.authors[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *AuthorRepo) Create(ctx context.Context, author *model.Author) error {
	if err := run(ctx, nil, ""); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := r.s.now().UTC()
	author.ID = uuid.NewString()
	author.CreatedOn = now
	author.UpdatedOn = now
	r.s.authors[author.ID] = *author
	r.s.Writes++
	return nil
}

func (r *AuthorRepo) Update(ctx context.Context, author *model.Author) error {
	if err := run(ctx, nil, ""); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.authors[author.ID]; !ok {
		return database.ErrNotFound
	}
	author.UpdatedOn = r.s.now().UTC()
	r.s.authors[author.ID] = *author
	r.s.Writes++
	return nil
}

func (r *AuthorRepo) Delete(ctx context.Context, id string) error {
	if err := run(ctx, r.s.Hooks.AuthorDelete, id); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.authors, id)
	r.s.Writes++
	return nil
}
