package model

import (
	"encoding/json"
	"time"
)

// Genre is a uniquely named book category.
// NameKey is the folded form of Name and is what uniqueness is enforced on.
type Genre struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	NameKey   string    `json:"-"`
	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

// URL returns the genre's identity URL
func (g Genre) URL() string {
	return EntityURL(KindGenre, g.ID)
}

// MarshalJSON adds the derived url field
func (g Genre) MarshalJSON() ([]byte, error) {
	type alias Genre
	return json.Marshal(struct {
		alias
		URL string `json:"url"`
	}{alias(g), g.URL()})
}

// GenreForm is the user-editable part of a genre
type GenreForm struct {
	Name string `json:"name" validate:"required,min=3,max=100" msg:"Genre must contain at least 3 characters"`
}

// GenreDetail is a genre together with the books that reference it
type GenreDetail struct {
	Genre Genre         `json:"genre"`
	Books []BookSummary `json:"genre_books"`
}
