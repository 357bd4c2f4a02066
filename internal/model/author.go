package model

import (
	"encoding/json"
	"time"
)

// Author is a book author. Display fields (Name, Lifespan and the ISO dates)
// are computed from the stored fields on every call and never persisted.
type Author struct {
	ID          string     `json:"id"`
	FirstName   string     `json:"first_name"`
	FamilyName  string     `json:"family_name"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	DateOfDeath *time.Time `json:"date_of_death,omitempty"`
	CreatedOn   time.Time  `json:"created_on"`
	UpdatedOn   time.Time  `json:"updated_on"`
}

// Name returns "Family, First", or "" unless both parts are set
func (a Author) Name() string {
	if a.FirstName == "" || a.FamilyName == "" {
		return ""
	}
	return a.FamilyName + ", " + a.FirstName
}

// URL returns the author's identity URL
func (a Author) URL() string {
	return EntityURL(KindAuthor, a.ID)
}

// Lifespan returns "<birth> - <death>" in medium date form.
// It is empty without a birth date; the death part is empty while alive.
func (a Author) Lifespan() string {
	birth := formatDate(a.DateOfBirth, DateMedium)
	if birth == "" {
		return ""
	}
	return birth + " - " + formatDate(a.DateOfDeath, DateMedium)
}

// DateOfBirthISO returns the birth date as YYYY-MM-DD, or ""
func (a Author) DateOfBirthISO() string {
	return formatDate(a.DateOfBirth, DateISO)
}

// DateOfDeathISO returns the death date as YYYY-MM-DD, or ""
func (a Author) DateOfDeathISO() string {
	return formatDate(a.DateOfDeath, DateISO)
}

// MarshalJSON adds the derived display fields
func (a Author) MarshalJSON() ([]byte, error) {
	type alias Author
	return json.Marshal(struct {
		alias
		Name           string `json:"name"`
		URL            string `json:"url"`
		Lifespan       string `json:"lifespan"`
		DateOfBirthISO string `json:"date_of_birth_yyyy_mm_dd"`
		DateOfDeathISO string `json:"date_of_death_yyyy_mm_dd"`
	}{
		alias:          alias(a),
		Name:           a.Name(),
		URL:            a.URL(),
		Lifespan:       a.Lifespan(),
		DateOfBirthISO: a.DateOfBirthISO(),
		DateOfDeathISO: a.DateOfDeathISO(),
	})
}

// AuthorForm is the user-editable part of an author. Dates are YYYY-MM-DD;
// empty means unknown.
type AuthorForm struct {
	FirstName   string `json:"first_name" validate:"required,max=100" msg:"First name must be specified"`
	FamilyName  string `json:"family_name" validate:"required,max=100" msg:"Family name must be specified"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02" msg:"Invalid date of birth"`
	DateOfDeath string `json:"date_of_death" validate:"omitempty,datetime=2006-01-02" msg:"Invalid date of death"`
}

// AuthorDetail is an author together with their books
type AuthorDetail struct {
	Author Author        `json:"author"`
	Books  []BookSummary `json:"author_books"`
}
