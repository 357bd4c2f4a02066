// Package fixtures provides catalog test data factories backed by the
// SurrealDB repositories.
//
// Each factory method creates an entity with sensible defaults while
// allowing customization via option functions.
//
//	f := fixtures.New(tdb.DB)
//	genre := f.CreateGenre(t)
//	author := f.CreateAuthor(t)
//	book := f.CreateBook(t, fixtures.InGenre(genre), fixtures.ByAuthor(author))
package fixtures

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/forgo/catalog/internal/database"
	"github.com/forgo/catalog/internal/fold"
	"github.com/forgo/catalog/internal/model"
	"github.com/forgo/catalog/internal/repository"
)

// Factory creates test entities in the database
type Factory struct {
	Genres  *repository.GenreRepository
	Books   *repository.BookRepository
	Authors *repository.AuthorRepository
}

// New creates a new fixture factory
func New(db database.Database) *Factory {
	return &Factory{
		Genres:  repository.NewGenreRepository(db),
		Books:   repository.NewBookRepository(db),
		Authors: repository.NewAuthorRepository(db),
	}
}

// randomID generates a random hex suffix
func randomID() string {
	b := make([]byte, 4)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func ctx(t *testing.T) context.Context {
	c, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return c
}

// ============================================================================
// Genre Fixtures
// ============================================================================

// CreateGenre creates a genre. The default name is unique per call.
func (f *Factory) CreateGenre(t *testing.T, name ...string) *model.Genre {
	t.Helper()

	n := fmt.Sprintf("Genre %s", randomID())
	if len(name) > 0 {
		n = name[0]
	}
	genre := &model.Genre{Name: n, NameKey: fold.Key(n)}
	if err := f.Genres.Create(ctx(t), genre); err != nil {
		t.Fatalf("fixtures: failed to create genre: %v", err)
	}
	return genre
}

// ============================================================================
// Author Fixtures
// ============================================================================

// AuthorOpts customizes author creation
type AuthorOpts struct {
	FirstName   string
	FamilyName  string
	DateOfBirth *time.Time
	DateOfDeath *time.Time
}

// CreateAuthor creates an author with optional customizations
func (f *Factory) CreateAuthor(t *testing.T, opts ...func(*AuthorOpts)) *model.Author {
	t.Helper()

	o := &AuthorOpts{
		FirstName:  "Test",
		FamilyName: "Author " + randomID(),
	}
	for _, fn := range opts {
		fn(o)
	}

	author := &model.Author{
		FirstName:   o.FirstName,
		FamilyName:  o.FamilyName,
		DateOfBirth: o.DateOfBirth,
		DateOfDeath: o.DateOfDeath,
	}
	if err := f.Authors.Create(ctx(t), author); err != nil {
		t.Fatalf("fixtures: failed to create author: %v", err)
	}
	return author
}

// ============================================================================
// Book Fixtures
// ============================================================================

// BookOpts customizes book creation
type BookOpts struct {
	Title    string
	Summary  string
	ISBN     string
	GenreID  *string
	AuthorID *string
}

// InGenre sets the book's genre
func InGenre(g *model.Genre) func(*BookOpts) {
	return func(o *BookOpts) { o.GenreID = &g.ID }
}

// ByAuthor sets the book's author
func ByAuthor(a *model.Author) func(*BookOpts) {
	return func(o *BookOpts) { o.AuthorID = &a.ID }
}

// Titled sets the book's title
func Titled(title string) func(*BookOpts) {
	return func(o *BookOpts) { o.Title = title }
}

// CreateBook creates a book with optional customizations
func (f *Factory) CreateBook(t *testing.T, opts ...func(*BookOpts)) *model.Book {
	t.Helper()

	id := randomID()
	o := &BookOpts{
		Title:   "Book " + id,
		Summary: "Test book summary",
		ISBN:    "978-" + id,
	}
	for _, fn := range opts {
		fn(o)
	}

	book := &model.Book{
		Title:    o.Title,
		Summary:  o.Summary,
		ISBN:     o.ISBN,
		GenreID:  o.GenreID,
		AuthorID: o.AuthorID,
	}
	if err := f.Books.Create(ctx(t), book); err != nil {
		t.Fatalf("fixtures: failed to create book: %v", err)
	}
	return book
}
