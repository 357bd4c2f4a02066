package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgo/catalog/internal/database"
	"github.com/forgo/catalog/internal/model"
	"github.com/forgo/catalog/internal/service"
)

func TestBookService_Create_RejectsUnknownReferences(t *testing.T) {
	t.Parallel()
	c := newCatalog()

	_, err := c.books.Create(context.Background(), model.BookForm{
		Title:   "Dune",
		Summary: "s",
		ISBN:    "1",
		Author:  "ghost",
		Genre:   "ghost",
	})

	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 2)
	assert.Equal(t, "author", verr.Fields[0].Field)
	assert.Equal(t, "genre", verr.Fields[1].Field)
	assert.Zero(t, c.store.Writes)
}

func TestBookService_Create_ReferenceLookupFailure(t *testing.T) {
	t.Parallel()
	c := newCatalog()
	c.store.Hooks.AuthorGet = func(ctx context.Context, id string) error {
		return database.ErrConnection
	}

	_, err := c.books.Create(context.Background(), model.BookForm{Title: "Dune", Summary: "s", ISBN: "1", Author: "a"})
	assert.ErrorIs(t, err, database.ErrConnection)
	assert.NotErrorIs(t, err, service.ErrValidation)
}

func TestBookService_Detail_ResolvesReferences(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := newCatalog()
	g := c.mustGenre(t, "Science Fiction")
	a := c.mustAuthor(t, "Frank", "Herbert")

	book, err := c.books.Create(ctx, model.BookForm{Title: "Dune", Summary: "s", ISBN: "1", Author: a.ID, Genre: g.ID})
	require.NoError(t, err)

	detail, err := c.books.Detail(ctx, book.ID)
	require.NoError(t, err)
	require.NotNil(t, detail.Author)
	require.NotNil(t, detail.Genre)
	assert.Equal(t, "Herbert, Frank", detail.Author.Name())
	assert.Equal(t, "Science Fiction", detail.Genre.Name)
}

func TestBookService_Detail_Missing(t *testing.T) {
	t.Parallel()
	c := newCatalog()

	_, err := c.books.Detail(context.Background(), "nope")
	assert.ErrorIs(t, err, service.ErrBookNotFound)
}

func TestBookService_FormOptions(t *testing.T) {
	t.Parallel()
	c := newCatalog()
	c.mustGenre(t, "Poetry")
	c.mustAuthor(t, "Frank", "Herbert")

	opts, err := c.books.FormOptions(context.Background())
	require.NoError(t, err)
	assert.Len(t, opts.Genres, 1)
	assert.Len(t, opts.Authors, 1)
}

func TestBookService_Delete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := newCatalog()
	book := c.mustBook(t, "Dune", "")

	assert.ErrorIs(t, c.books.Delete(ctx, book.ID, "other"), service.ErrIDMismatch)
	require.NoError(t, c.books.Delete(ctx, book.ID, book.ID))
	assert.ErrorIs(t, c.books.Delete(ctx, book.ID, ""), service.ErrBookNotFound)
}
