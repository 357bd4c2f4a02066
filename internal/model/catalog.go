package model

import "time"

// Entity kinds, used in identity URLs and error messages
const (
	KindGenre  = "genre"
	KindBook   = "book"
	KindAuthor = "author"
)

// EntityURL returns the canonical identity URL of an entity
func EntityURL(kind, id string) string {
	return "/catalog/" + kind + "/" + id
}

// ListURL returns the list URL for an entity kind
func ListURL(kind string) string {
	return "/catalog/" + kind + "s"
}

// Medium date layout used for display strings
const (
	DateMedium = "Jan 2, 2006"
	DateISO    = "2006-01-02"
)

func formatDate(t *time.Time, layout string) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.UTC().Format(layout)
}
