package seed_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgo/catalog/internal/seed"
	"github.com/forgo/catalog/internal/service"
	"github.com/forgo/catalog/internal/testing/memstore"
)

const doc = `
genres:
  - Fantasy
  - fantasy
  - Science Fiction
authors:
  - key: herbert
    first_name: Frank
    family_name: Herbert
    date_of_birth: "1920-10-08"
    date_of_death: "1986-02-11"
books:
  - title: Dune
    summary: Spice and sand.
    isbn: "9780441013593"
    author: herbert
    genre: SCIENCE FICTION
  - title: The Hobbit
    summary: There and back again.
    isbn: "9780547928227"
    genre: Fantásy
`

func newSeeder(store *memstore.Store) *seed.Seeder {
	return seed.NewSeeder(seed.SeederConfig{
		GenreService: service.NewGenreService(service.GenreServiceConfig{
			GenreRepo: store.Genres(),
			BookRepo:  store.Books(),
		}),
		AuthorService: service.NewAuthorService(service.AuthorServiceConfig{
			AuthorRepo: store.Authors(),
			BookRepo:   store.Books(),
		}),
		BookService: service.NewBookService(service.BookServiceConfig{
			BookRepo:   store.Books(),
			GenreRepo:  store.Genres(),
			AuthorRepo: store.Authors(),
		}),
	})
}

func TestParse(t *testing.T) {
	f, err := seed.Parse(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, []string{"Fantasy", "fantasy", "Science Fiction"}, f.Genres)
	require.Len(t, f.Authors, 1)
	assert.Equal(t, "1920-10-08", f.Authors[0].DateOfBirth)
	require.Len(t, f.Books, 2)
	assert.Equal(t, "herbert", f.Books[0].Author)
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	_, err := seed.Parse(strings.NewReader("genres: [Fantasy]\npublishers: [Ace]\n"))
	assert.Error(t, err)
}

func TestParse_Empty(t *testing.T) {
	f, err := seed.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, f.Genres)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	f, err := seed.ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, f.Books, 2)

	_, err = seed.ParseFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestApply_DeduplicatesGenres(t *testing.T) {
	store := memstore.New()
	f, err := seed.Parse(strings.NewReader(doc))
	require.NoError(t, err)

	res, err := newSeeder(store).Apply(context.Background(), f)
	require.NoError(t, err)

	assert.Equal(t, 2, res.GenresCreated)
	assert.Equal(t, 3, res.GenresReused)
	assert.Equal(t, 1, res.Authors)
	assert.Equal(t, 2, res.Books)
	assert.Equal(t, 2, store.GenreCount())

	books, err := store.Books().List(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 2)
	for _, b := range books {
		require.NotNil(t, b.GenreID, b.Title)
	}
}

func TestApply_UnknownAuthorKey(t *testing.T) {
	f := &seed.File{Books: []seed.Book{{Title: "Orphan", Summary: "s", ISBN: "1", Author: "nobody"}}}

	_, err := newSeeder(memstore.New()).Apply(context.Background(), f)
	assert.ErrorContains(t, err, "unknown author key")
}

func TestApply_InvalidGenreStops(t *testing.T) {
	f := &seed.File{Genres: []string{"Fantasy", "ab"}}

	res, err := newSeeder(memstore.New()).Apply(context.Background(), f)
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrValidation))
	assert.Equal(t, 1, res.GenresCreated)
}
