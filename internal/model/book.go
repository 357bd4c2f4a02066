package model

import (
	"encoding/json"
	"time"
)

// Book is a catalog title. Author and genre are optional plain references;
// nothing in the store enforces that they resolve.
type Book struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Summary   string    `json:"summary"`
	ISBN      string    `json:"isbn"`
	AuthorID  *string   `json:"author,omitempty"`
	GenreID   *string   `json:"genre,omitempty"`
	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

// URL returns the book's identity URL
func (b Book) URL() string {
	return EntityURL(KindBook, b.ID)
}

// MarshalJSON adds the derived url field
func (b Book) MarshalJSON() ([]byte, error) {
	type alias Book
	return json.Marshal(struct {
		alias
		URL string `json:"url"`
	}{alias(b), b.URL()})
}

// Summarize projects the book to its dependent-list shape
func (b Book) Summarize() BookSummary {
	return BookSummary{ID: b.ID, Title: b.Title, Summary: b.Summary}
}

// BookSummary is the projection used when listing books that depend on
// another entity
type BookSummary struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

// URL returns the book's identity URL
func (b BookSummary) URL() string {
	return EntityURL(KindBook, b.ID)
}

// MarshalJSON adds the derived url field
func (b BookSummary) MarshalJSON() ([]byte, error) {
	type alias BookSummary
	return json.Marshal(struct {
		alias
		URL string `json:"url"`
	}{alias(b), b.URL()})
}

// BookForm is the user-editable part of a book. Author and Genre carry ids;
// empty means unset.
type BookForm struct {
	Title   string `json:"title" validate:"required,max=200" msg:"Title must not be empty"`
	Summary string `json:"summary" validate:"required,max=2000" msg:"Summary must not be empty"`
	ISBN    string `json:"isbn" validate:"required,max=20" msg:"ISBN must not be empty"`
	Author  string `json:"author" validate:"max=100"`
	Genre   string `json:"genre" validate:"max=100"`
}

// BookDetail is a book with its resolved author and genre
type BookDetail struct {
	Book   Book    `json:"book"`
	Author *Author `json:"author,omitempty"`
	Genre  *Genre  `json:"genre,omitempty"`
}

// BookFormOptions lists the choices offered on a book form
type BookFormOptions struct {
	Authors []Author `json:"authors"`
	Genres  []Genre  `json:"genres"`
}
