package handler

import (
	"net/http"

	"github.com/forgo/catalog/internal/model"
	"github.com/forgo/catalog/internal/service"
)

// AuthorHandler handles author HTTP requests
type AuthorHandler struct {
	svc *service.AuthorService
}

// NewAuthorHandler creates a new author handler
func NewAuthorHandler(svc *service.AuthorService) *AuthorHandler {
	return &AuthorHandler{svc: svc}
}

// RegisterRoutes registers the author routes on mux
func (h *AuthorHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /catalog/authors", h.List)
	mux.HandleFunc("GET /catalog/author/create", h.CreateForm)
	mux.HandleFunc("POST /catalog/author/create", h.Create)
	mux.HandleFunc("GET /catalog/author/{id}", h.Detail)
	mux.HandleFunc("GET /catalog/author/{id}/delete", h.DeleteForm)
	mux.HandleFunc("POST /catalog/author/{id}/delete", h.Delete)
	mux.HandleFunc("GET /catalog/author/{id}/update", h.UpdateForm)
	mux.HandleFunc("POST /catalog/author/{id}/update", h.Update)
}

// List handles GET /catalog/authors
func (h *AuthorHandler) List(w http.ResponseWriter, r *http.Request) {
	authors, err := h.svc.List(r.Context())
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "listing authors"))
		return
	}
	WriteView(w, http.StatusOK, View{
		View:  "author_list",
		Title: "Author List",
		Data:  map[string]interface{}{"author_list": authors},
	})
}

// Detail handles GET /catalog/author/{id}
func (h *AuthorHandler) Detail(w http.ResponseWriter, r *http.Request) {
	detail, err := h.svc.Detail(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteView(w, http.StatusOK, View{View: "author_detail", Title: "Author Detail", Data: detail})
}

// CreateForm handles GET /catalog/author/create
func (h *AuthorHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	WriteView(w, http.StatusOK, View{View: "author_form", Title: "Create Author"})
}

// Create handles POST /catalog/author/create
func (h *AuthorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var form model.AuthorForm
	if err := decodeForm(w, r, &form); err != nil {
		badBody(w)
		return
	}

	author, err := h.svc.Create(r.Context(), form)
	if err != nil {
		writeFormError(w, "author_form", "Create Author", "author", nil, err)
		return
	}
	Redirect(w, r, author.URL())
}

// DeleteForm handles GET /catalog/author/{id}/delete
func (h *AuthorHandler) DeleteForm(w http.ResponseWriter, r *http.Request) {
	detail, err := h.svc.DeleteConfirmation(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteView(w, http.StatusOK, View{View: "author_delete", Title: "Delete Author", Data: detail})
}

// Delete handles POST /catalog/author/{id}/delete
func (h *AuthorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	bodyID, err := decodeDeleteID(w, r, "authorid")
	if err != nil {
		badBody(w)
		return
	}

	detail, err := h.svc.Delete(r.Context(), r.PathValue("id"), bodyID)
	if err != nil {
		writeDeleteError(w, "author_delete", "Delete Author", detail, err)
		return
	}
	Redirect(w, r, model.ListURL(model.KindAuthor))
}

// UpdateForm handles GET /catalog/author/{id}/update
func (h *AuthorHandler) UpdateForm(w http.ResponseWriter, r *http.Request) {
	author, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteView(w, http.StatusOK, View{
		View:  "author_form",
		Title: "Update Author",
		Data:  map[string]interface{}{"author": author},
	})
}

// Update handles POST /catalog/author/{id}/update
func (h *AuthorHandler) Update(w http.ResponseWriter, r *http.Request) {
	var form model.AuthorForm
	if err := decodeForm(w, r, &form); err != nil {
		badBody(w)
		return
	}

	author, err := h.svc.Update(r.Context(), r.PathValue("id"), form)
	if err != nil {
		writeFormError(w, "author_form", "Update Author", "author", nil, err)
		return
	}
	Redirect(w, r, author.URL())
}
