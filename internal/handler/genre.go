package handler

import (
	"log/slog"
	"net/http"

	"github.com/forgo/catalog/internal/model"
	"github.com/forgo/catalog/internal/service"
)

// GenreHandler handles genre HTTP requests
type GenreHandler struct {
	svc *service.GenreService
}

// NewGenreHandler creates a new genre handler
func NewGenreHandler(svc *service.GenreService) *GenreHandler {
	return &GenreHandler{svc: svc}
}

// RegisterRoutes registers the genre routes on mux
func (h *GenreHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /catalog/genres", h.List)
	mux.HandleFunc("GET /catalog/genre/create", h.CreateForm)
	mux.HandleFunc("POST /catalog/genre/create", h.Create)
	mux.HandleFunc("GET /catalog/genre/{id}", h.Detail)
	mux.HandleFunc("GET /catalog/genre/{id}/delete", h.DeleteForm)
	mux.HandleFunc("POST /catalog/genre/{id}/delete", h.Delete)
	mux.HandleFunc("GET /catalog/genre/{id}/update", h.UpdateForm)
	mux.HandleFunc("POST /catalog/genre/{id}/update", h.Update)
}

// List handles GET /catalog/genres
func (h *GenreHandler) List(w http.ResponseWriter, r *http.Request) {
	genres, err := h.svc.List(r.Context())
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "listing genres"))
		return
	}
	WriteView(w, http.StatusOK, View{
		View:  "genre_list",
		Title: "Genre List",
		Data:  map[string]interface{}{"genre_list": genres},
	})
}

// Detail handles GET /catalog/genre/{id}
func (h *GenreHandler) Detail(w http.ResponseWriter, r *http.Request) {
	detail, err := h.svc.Detail(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteView(w, http.StatusOK, View{View: "genre_detail", Title: "Genre Detail", Data: detail})
}

// CreateForm handles GET /catalog/genre/create
func (h *GenreHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	WriteView(w, http.StatusOK, View{View: "genre_form", Title: "Create Genre"})
}

// Create handles POST /catalog/genre/create. An equivalent existing genre
// is reused, so both outcomes redirect to a genre's page.
func (h *GenreHandler) Create(w http.ResponseWriter, r *http.Request) {
	var form model.GenreForm
	if err := decodeForm(w, r, &form); err != nil {
		badBody(w)
		return
	}

	genre, created, err := h.svc.Create(r.Context(), form)
	if err != nil {
		writeFormError(w, "genre_form", "Create Genre", "genre", nil, err)
		return
	}
	if !created {
		slog.Debug("genre create resolved to existing", slog.String("genre_id", genre.ID))
	}
	Redirect(w, r, genre.URL())
}

// DeleteForm handles GET /catalog/genre/{id}/delete
func (h *GenreHandler) DeleteForm(w http.ResponseWriter, r *http.Request) {
	detail, err := h.svc.DeleteConfirmation(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteView(w, http.StatusOK, View{View: "genre_delete", Title: "Delete Genre", Data: detail})
}

// Delete handles POST /catalog/genre/{id}/delete
func (h *GenreHandler) Delete(w http.ResponseWriter, r *http.Request) {
	bodyID, err := decodeDeleteID(w, r, "genreid")
	if err != nil {
		badBody(w)
		return
	}

	detail, err := h.svc.Delete(r.Context(), r.PathValue("id"), bodyID)
	if err != nil {
		writeDeleteError(w, "genre_delete", "Delete Genre", detail, err)
		return
	}
	Redirect(w, r, model.ListURL(model.KindGenre))
}

// UpdateForm handles GET /catalog/genre/{id}/update
func (h *GenreHandler) UpdateForm(w http.ResponseWriter, r *http.Request) {
	genre, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteView(w, http.StatusOK, View{
		View:  "genre_form",
		Title: "Update Genre",
		Data:  map[string]interface{}{"genre": genre},
	})
}

// Update handles POST /catalog/genre/{id}/update
func (h *GenreHandler) Update(w http.ResponseWriter, r *http.Request) {
	var form model.GenreForm
	if err := decodeForm(w, r, &form); err != nil {
		badBody(w)
		return
	}

	genre, err := h.svc.Update(r.Context(), r.PathValue("id"), form)
	if err != nil {
		writeFormError(w, "genre_form", "Update Genre", "genre", nil, err)
		return
	}
	Redirect(w, r, genre.URL())
}
