package handler_test

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgo/catalog/internal/handler"
	"github.com/forgo/catalog/internal/model"
	"github.com/forgo/catalog/internal/service"
	"github.com/forgo/catalog/internal/testing/helpers"
	"github.com/forgo/catalog/internal/testing/memstore"
)

func TestEventsStream_RejectsUnknownKind(t *testing.T) {
	hub := service.NewEventHub(time.Hour)
	defer hub.Close()

	rec := helpers.NewRequest(t, http.MethodGet, "/catalog/events?kind=shelf").
		Do(http.HandlerFunc(handler.NewEventsHandler(hub).Stream))

	helpers.AssertProblemDetails(t, rec, http.StatusBadRequest, model.ErrCodeInvalidInput)
}

func TestEventsStream_DeliversChanges(t *testing.T) {
	hub := service.NewEventHub(time.Hour)
	defer hub.Close()

	store := memstore.New()
	genres := service.NewGenreService(service.GenreServiceConfig{
		GenreRepo: store.Genres(),
		BookRepo:  store.Books(),
		Events:    hub,
	})

	srv := httptest.NewServer(http.HandlerFunc(handler.NewEventsHandler(hub).Stream))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"?kind=genre", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	lines := bufio.NewScanner(resp.Body)
	require.True(t, lines.Scan())
	require.Equal(t, "event: connected", lines.Text())

	// The subscription exists once the connected event has been flushed.
	genre, _, err := genres.Create(ctx, model.GenreForm{Name: "Horror"})
	require.NoError(t, err)

	var got []string
	for lines.Scan() {
		if strings.HasPrefix(lines.Text(), "event: catalog.") {
			got = append(got, lines.Text())
			require.True(t, lines.Scan())
			assert.Contains(t, lines.Text(), genre.URL())
			break
		}
	}
	assert.Equal(t, []string{"event: catalog.created"}, got)
}
