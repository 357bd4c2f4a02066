package handler

import (
	"errors"
	"net/http"

	"github.com/forgo/catalog/internal/model"
	"github.com/forgo/catalog/internal/service"
)

// BookHandler handles book HTTP requests
type BookHandler struct {
	svc *service.BookService
}

// NewBookHandler creates a new book handler
func NewBookHandler(svc *service.BookService) *BookHandler {
	return &BookHandler{svc: svc}
}

// RegisterRoutes registers the book routes on mux
func (h *BookHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /catalog/books", h.List)
	mux.HandleFunc("GET /catalog/book/create", h.CreateForm)
	mux.HandleFunc("POST /catalog/book/create", h.Create)
	mux.HandleFunc("GET /catalog/book/{id}", h.Detail)
	mux.HandleFunc("GET /catalog/book/{id}/delete", h.DeleteForm)
	mux.HandleFunc("POST /catalog/book/{id}/delete", h.Delete)
	mux.HandleFunc("GET /catalog/book/{id}/update", h.UpdateForm)
	mux.HandleFunc("POST /catalog/book/{id}/update", h.Update)
}

// List handles GET /catalog/books
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.svc.List(r.Context())
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "listing books"))
		return
	}
	WriteView(w, http.StatusOK, View{
		View:  "book_list",
		Title: "Book List",
		Data:  map[string]interface{}{"book_list": books},
	})
}

// Detail handles GET /catalog/book/{id}
func (h *BookHandler) Detail(w http.ResponseWriter, r *http.Request) {
	detail, err := h.svc.Detail(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteView(w, http.StatusOK, View{View: "book_detail", Title: detail.Book.Title, Data: detail})
}

// CreateForm handles GET /catalog/book/create
func (h *BookHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	data, err := h.formData(r)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteView(w, http.StatusOK, View{View: "book_form", Title: "Create Book", Data: data})
}

// Create handles POST /catalog/book/create
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var form model.BookForm
	if err := decodeForm(w, r, &form); err != nil {
		badBody(w)
		return
	}

	book, err := h.svc.Create(r.Context(), form)
	if err != nil {
		h.writeFormError(w, r, "Create Book", err)
		return
	}
	Redirect(w, r, book.URL())
}

// DeleteForm handles GET /catalog/book/{id}/delete
func (h *BookHandler) DeleteForm(w http.ResponseWriter, r *http.Request) {
	book, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteView(w, http.StatusOK, View{
		View:  "book_delete",
		Title: "Delete Book",
		Data:  map[string]interface{}{"book": book},
	})
}

// Delete handles POST /catalog/book/{id}/delete
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	bodyID, err := decodeDeleteID(w, r, "bookid")
	if err != nil {
		badBody(w)
		return
	}

	if err := h.svc.Delete(r.Context(), r.PathValue("id"), bodyID); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	Redirect(w, r, model.ListURL(model.KindBook))
}

// UpdateForm handles GET /catalog/book/{id}/update
func (h *BookHandler) UpdateForm(w http.ResponseWriter, r *http.Request) {
	book, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	data, err := h.formData(r)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	data["book"] = book
	WriteView(w, http.StatusOK, View{View: "book_form", Title: "Update Book", Data: data})
}

// Update handles POST /catalog/book/{id}/update
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	var form model.BookForm
	if err := decodeForm(w, r, &form); err != nil {
		badBody(w)
		return
	}

	book, err := h.svc.Update(r.Context(), r.PathValue("id"), form)
	if err != nil {
		h.writeFormError(w, r, "Update Book", err)
		return
	}
	Redirect(w, r, book.URL())
}

// formData loads the authors and genres a book form offers
func (h *BookHandler) formData(r *http.Request) (map[string]interface{}, error) {
	opts, err := h.svc.FormOptions(r.Context())
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"authors": opts.Authors,
		"genres":  opts.Genres,
	}, nil
}

func (h *BookHandler) writeFormError(w http.ResponseWriter, r *http.Request, title string, err error) {
	if !errors.Is(err, service.ErrValidation) {
		WriteError(w, MapServiceError(err))
		return
	}
	data, optsErr := h.formData(r)
	if optsErr != nil {
		WriteError(w, MapServiceError(optsErr))
		return
	}
	writeFormError(w, "book_form", title, "book", data, err)
}
