package handler

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/forgo/catalog/internal/service"
)

// IndexHandler serves the catalog home page with entity counts
type IndexHandler struct {
	genres  *service.GenreService
	books   *service.BookService
	authors *service.AuthorService
}

// IndexHandlerConfig holds the services the home page counts
type IndexHandlerConfig struct {
	GenreService  *service.GenreService
	BookService   *service.BookService
	AuthorService *service.AuthorService
}

// NewIndexHandler creates a new index handler
func NewIndexHandler(cfg IndexHandlerConfig) *IndexHandler {
	return &IndexHandler{
		genres:  cfg.GenreService,
		books:   cfg.BookService,
		authors: cfg.AuthorService,
	}
}

// Index handles GET /catalog
func (h *IndexHandler) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var genres, books, authors int

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := h.genres.List(ctx)
		genres = len(list)
		return err
	})
	g.Go(func() error {
		list, err := h.books.List(ctx)
		books = len(list)
		return err
	})
	g.Go(func() error {
		list, err := h.authors.List(ctx)
		authors = len(list)
		return err
	})
	if err := g.Wait(); err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "counting catalog"))
		return
	}

	WriteView(w, http.StatusOK, View{
		View:  "index",
		Title: "Local Library Home",
		Data: map[string]int{
			"genre_count":  genres,
			"book_count":   books,
			"author_count": authors,
		},
	})
}
