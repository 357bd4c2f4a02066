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

func (c *catalog) mustAuthor(t *testing.T, first, family string) *model.Author {
	t.Helper()
	a, err := c.authors.Create(context.Background(), model.AuthorForm{
		FirstName:   first,
		FamilyName:  family,
		DateOfBirth: "1920-10-08",
	})
	require.NoError(t, err)
	return a
}

func TestAuthorService_CreateParsesDates(t *testing.T) {
	t.Parallel()
	c := newCatalog()

	a, err := c.authors.Create(context.Background(), model.AuthorForm{
		FirstName:   "Frank",
		FamilyName:  "Herbert",
		DateOfBirth: "1920-10-08",
		DateOfDeath: "1986-02-11",
	})
	require.NoError(t, err)
	assert.Equal(t, "Herbert, Frank", a.Name())
	assert.Equal(t, "Oct 8, 1920 - Feb 11, 1986", a.Lifespan())
	assert.Equal(t, "1986-02-11", a.DateOfDeathISO())
}

func TestAuthorService_CreateInvalid(t *testing.T) {
	t.Parallel()
	c := newCatalog()

	_, err := c.authors.Create(context.Background(), model.AuthorForm{FamilyName: "Herbert"})

	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "first_name", verr.Fields[0].Field)
	assert.Zero(t, c.store.Writes)
}

func TestAuthorService_List_SortedByFamilyName(t *testing.T) {
	t.Parallel()
	c := newCatalog()
	c.mustAuthor(t, "Ursula", "Le Guin")
	c.mustAuthor(t, "Frank", "Herbert")

	authors, err := c.authors.List(context.Background())
	require.NoError(t, err)
	require.Len(t, authors, 2)
	assert.Equal(t, "Herbert", authors[0].FamilyName)
}

func TestAuthorService_Detail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := newCatalog()
	a := c.mustAuthor(t, "Frank", "Herbert")
	_, err := c.books.Create(ctx, model.BookForm{Title: "Dune", Summary: "s", ISBN: "1", Author: a.ID})
	require.NoError(t, err)

	detail, err := c.authors.Detail(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, detail.Books, 1)
	assert.Equal(t, "Dune", detail.Books[0].Title)

	_, err = c.authors.DeleteConfirmation(ctx, "missing")
	assert.ErrorIs(t, err, service.ErrAuthorNotFound)
}

func TestAuthorService_Delete_Guarded(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := newCatalog()
	a := c.mustAuthor(t, "Frank", "Herbert")
	book, err := c.books.Create(ctx, model.BookForm{Title: "Dune", Summary: "s", ISBN: "1", Author: a.ID})
	require.NoError(t, err)

	detail, err := c.authors.Delete(ctx, a.ID, a.ID)
	assert.ErrorIs(t, err, service.ErrAuthorHasBooks)
	require.NotNil(t, detail)
	assert.Len(t, detail.Books, 1)

	require.NoError(t, c.books.Delete(ctx, book.ID, ""))

	_, err = c.authors.Delete(ctx, a.ID, a.ID)
	require.NoError(t, err)
	_, err = c.authors.Get(ctx, a.ID)
	assert.ErrorIs(t, err, service.ErrAuthorNotFound)
}

func TestAuthorService_Update(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := newCatalog()
	a := c.mustAuthor(t, "Frank", "Herbert")

	updated, err := c.authors.Update(ctx, a.ID, model.AuthorForm{FirstName: "Brian", FamilyName: "Herbert"})
	require.NoError(t, err)
	assert.Equal(t, "Herbert, Brian", updated.Name())
	assert.Nil(t, updated.DateOfBirth)
	assert.Empty(t, updated.Lifespan())

	_, err = c.authors.Update(ctx, "missing", model.AuthorForm{FirstName: "A", FamilyName: "B"})
	assert.ErrorIs(t, err, service.ErrAuthorNotFound)
}

func TestAuthorService_Delete_StoreFailure(t *testing.T) {
	t.Parallel()
	c := newCatalog()
	a := c.mustAuthor(t, "Frank", "Herbert")
	c.store.Hooks.AuthorDelete = func(ctx context.Context, id string) error {
		return database.ErrConnection
	}

	_, err := c.authors.Delete(context.Background(), a.ID, "")
	assert.ErrorIs(t, err, database.ErrConnection)
}
