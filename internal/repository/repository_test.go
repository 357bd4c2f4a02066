package repository_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgo/catalog/internal/database"
	"github.com/forgo/catalog/internal/fold"
	"github.com/forgo/catalog/internal/model"
	"github.com/forgo/catalog/internal/testing/fixtures"
	"github.com/forgo/catalog/internal/testing/helpers"
	"github.com/forgo/catalog/internal/testing/testdb"
)

func TestGenreRepository(t *testing.T) {
	shared := testdb.NewShared(t)
	defer shared.Close()

	t.Run("create and find by name key", func(t *testing.T) {
		tdb := shared.SetupSubtest(t)
		f := fixtures.New(tdb.DB)

		genre := f.CreateGenre(t, "Fantasy")
		require.NotEmpty(t, genre.ID)
		helpers.AssertRecordExists(t, tdb.DB, "genre", genre.ID)

		found, err := f.Genres.FindByNameKey(tdb.Ctx(), fold.Key("FANTASY"))
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, genre.ID, found.ID)
		assert.Equal(t, "Fantasy", found.Name)
	})

	t.Run("duplicate name key is rejected", func(t *testing.T) {
		tdb := shared.SetupSubtest(t)
		f := fixtures.New(tdb.DB)
		f.CreateGenre(t, "Poetry")

		dup := &model.Genre{Name: "poetry", NameKey: fold.Key("poetry")}
		err := f.Genres.Create(tdb.Ctx(), dup)
		assert.True(t, errors.Is(err, database.ErrDuplicate), "got %v", err)
	})

	t.Run("missing and malformed ids read as absent", func(t *testing.T) {
		tdb := shared.SetupSubtest(t)
		f := fixtures.New(tdb.DB)

		for _, id := range []string{"doesnotexist", "book:abc", ""} {
			genre, err := f.Genres.GetByID(tdb.Ctx(), id)
			require.NoError(t, err)
			assert.Nil(t, genre, id)
		}
	})

	t.Run("list is sorted by name", func(t *testing.T) {
		tdb := shared.SetupSubtest(t)
		f := fixtures.New(tdb.DB)
		f.CreateGenre(t, "Science Fiction")
		f.CreateGenre(t, "Fantasy")
		f.CreateGenre(t, "Horror")

		genres, err := f.Genres.List(tdb.Ctx())
		require.NoError(t, err)
		require.Len(t, genres, 3)
		assert.Equal(t, "Fantasy", genres[0].Name)
		assert.Equal(t, "Horror", genres[1].Name)
		assert.Equal(t, "Science Fiction", genres[2].Name)
	})

	t.Run("update of a missing genre does not create it", func(t *testing.T) {
		tdb := shared.SetupSubtest(t)
		f := fixtures.New(tdb.DB)

		ghost := &model.Genre{ID: "ghost", Name: "Ghost", NameKey: "ghost"}
		err := f.Genres.Update(tdb.Ctx(), ghost)
		assert.ErrorIs(t, err, database.ErrNotFound)
		helpers.AssertRecordNotExists(t, tdb.DB, "genre", "ghost")
	})

	t.Run("delete", func(t *testing.T) {
		tdb := shared.SetupSubtest(t)
		f := fixtures.New(tdb.DB)
		genre := f.CreateGenre(t)

		require.NoError(t, f.Genres.Delete(tdb.Ctx(), genre.ID))
		helpers.AssertRecordNotExists(t, tdb.DB, "genre", genre.ID)
	})
}

func TestBookRepository(t *testing.T) {
	shared := testdb.NewShared(t)
	defer shared.Close()

	t.Run("dependents are listed by title", func(t *testing.T) {
		tdb := shared.SetupSubtest(t)
		f := fixtures.New(tdb.DB)
		fantasy := f.CreateGenre(t, "Fantasy")
		other := f.CreateGenre(t, "Other")
		f.CreateBook(t, fixtures.Titled("The Hobbit"), fixtures.InGenre(fantasy))
		f.CreateBook(t, fixtures.Titled("Dune"), fixtures.InGenre(fantasy))
		f.CreateBook(t, fixtures.Titled("Elsewhere"), fixtures.InGenre(other))

		books, err := f.Books.ListByGenre(tdb.Ctx(), fantasy.ID)
		require.NoError(t, err)
		require.Len(t, books, 2)
		assert.Equal(t, "Dune", books[0].Title)
		assert.Equal(t, "The Hobbit", books[1].Title)
	})

	t.Run("references round trip", func(t *testing.T) {
		tdb := shared.SetupSubtest(t)
		f := fixtures.New(tdb.DB)
		genre := f.CreateGenre(t)
		author := f.CreateAuthor(t)
		book := f.CreateBook(t, fixtures.InGenre(genre), fixtures.ByAuthor(author))

		got, err := f.Books.GetByID(tdb.Ctx(), book.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.NotNil(t, got.GenreID)
		require.NotNil(t, got.AuthorID)
		assert.Equal(t, genre.ID, *got.GenreID)
		assert.Equal(t, author.ID, *got.AuthorID)

		byAuthor, err := f.Books.ListByAuthor(tdb.Ctx(), author.ID)
		require.NoError(t, err)
		assert.Len(t, byAuthor, 1)
	})

	t.Run("update clears a reference", func(t *testing.T) {
		tdb := shared.SetupSubtest(t)
		f := fixtures.New(tdb.DB)
		genre := f.CreateGenre(t)
		book := f.CreateBook(t, fixtures.InGenre(genre))

		book.GenreID = nil
		require.NoError(t, f.Books.Update(tdb.Ctx(), book))

		books, err := f.Books.ListByGenre(tdb.Ctx(), genre.ID)
		require.NoError(t, err)
		assert.Empty(t, books)
	})
}

func TestAuthorRepository(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()
	f := fixtures.New(tdb.DB)

	birth := helpers.MustParseDate(t, "1920-10-08")
	author := f.CreateAuthor(t, func(o *fixtures.AuthorOpts) {
		o.FirstName = "Frank"
		o.FamilyName = "Herbert"
		o.DateOfBirth = helpers.TimePtr(birth)
	})

	got, err := f.Authors.GetByID(tdb.Ctx(), author.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Herbert, Frank", got.Name())
	require.NotNil(t, got.DateOfBirth)
	assert.True(t, got.DateOfBirth.Equal(birth))
	assert.Nil(t, got.DateOfDeath)

	got.DateOfDeath = helpers.TimePtr(helpers.MustParseDate(t, "1986-02-11"))
	require.NoError(t, f.Authors.Update(tdb.Ctx(), got))
	assert.Equal(t, "Oct 8, 1920 - Feb 11, 1986", got.Lifespan())
}
