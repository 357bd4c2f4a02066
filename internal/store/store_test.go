package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgo/catalog/internal/config"
	"github.com/forgo/catalog/internal/model"
	"github.com/forgo/catalog/internal/store"
	"github.com/forgo/catalog/internal/testing/memstore"
)

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := store.Open(context.Background(), config.DatabaseConfig{Driver: "mongo"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, store.ErrUnknownDriver))
}

func TestNewServices_SharesRepositories(t *testing.T) {
	mem := memstore.New()
	st := &store.Store{
		Genres:  mem.Genres(),
		Books:   mem.Books(),
		Authors: mem.Authors(),
	}
	services := st.NewServices(nil)
	ctx := context.Background()

	genre, created, err := services.Genres.Create(ctx, model.GenreForm{Name: "Fantasy"})
	require.NoError(t, err)
	require.True(t, created)

	_, err = services.Books.Create(ctx, model.BookForm{
		Title:   "The Hobbit",
		Summary: "There and back again.",
		ISBN:    "9780261103344",
		Genre:   genre.ID,
	})
	require.NoError(t, err)

	detail, err := services.Genres.Detail(ctx, genre.ID)
	require.NoError(t, err)
	require.Len(t, detail.Books, 1)
	assert.Equal(t, "The Hobbit", detail.Books[0].Title)
}
