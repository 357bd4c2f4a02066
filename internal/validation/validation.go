// Package validation cleans and checks user-submitted forms.
//
// Each pipeline trims every string field, runs the struct-tag rules, and only
// when the form is valid HTML-escapes the free-text fields for safe storage
// and display. The rules run again on the escaped form, so length limits hold
// for the stored value. On failure the trimmed, unescaped form is returned
// alongside the field errors so it can be shown back to the user.
//
// Error messages come from the `msg` struct tag when present; field names
// come from the `json` tag.
package validation

import (
	"errors"
	"fmt"
	"html"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/forgo/catalog/internal/model"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Genre validates and sanitizes a genre form
func Genre(in model.GenreForm) (model.GenreForm, []model.FieldError) {
	in.Name = strings.TrimSpace(in.Name)
	if errs := check(&in); len(errs) > 0 {
		return in, errs
	}
	return escaped(in, func(f *model.GenreForm) {
		f.Name = html.EscapeString(f.Name)
	})
}

// Book validates and sanitizes a book form. Reference ids are trimmed but
// not escaped.
func Book(in model.BookForm) (model.BookForm, []model.FieldError) {
	in.Title = strings.TrimSpace(in.Title)
	in.Summary = strings.TrimSpace(in.Summary)
	in.ISBN = strings.TrimSpace(in.ISBN)
	in.Author = strings.TrimSpace(in.Author)
	in.Genre = strings.TrimSpace(in.Genre)
	if errs := check(&in); len(errs) > 0 {
		return in, errs
	}
	return escaped(in, func(f *model.BookForm) {
		f.Title = html.EscapeString(f.Title)
		f.Summary = html.EscapeString(f.Summary)
		f.ISBN = html.EscapeString(f.ISBN)
	})
}

// Author validates and sanitizes an author form. A death date before the
// birth date is rejected.
func Author(in model.AuthorForm) (model.AuthorForm, []model.FieldError) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.FamilyName = strings.TrimSpace(in.FamilyName)
	in.DateOfBirth = strings.TrimSpace(in.DateOfBirth)
	in.DateOfDeath = strings.TrimSpace(in.DateOfDeath)

	errs := check(&in)
	if len(errs) == 0 {
		birth, _ := ParseDate(in.DateOfBirth)
		death, _ := ParseDate(in.DateOfDeath)
		if birth != nil && death != nil && death.Before(*birth) {
			errs = append(errs, model.FieldError{
				Field:   "date_of_death",
				Message: "Date of death must not be before date of birth",
			})
		}
	}
	if len(errs) > 0 {
		return in, errs
	}

	return escaped(in, func(f *model.AuthorForm) {
		f.FirstName = html.EscapeString(f.FirstName)
		f.FamilyName = html.EscapeString(f.FamilyName)
	})
}

// escaped applies escape to a copy of a valid form and checks the result
// again. Escaping only grows a value, so only max rules can fail here; the
// unescaped form is returned with those errors.
func escaped[T any](in T, escape func(*T)) (T, []model.FieldError) {
	out := in
	escape(&out)
	if errs := check(&out); len(errs) > 0 {
		return in, errs
	}
	return out, nil
}

// ParseDate parses a YYYY-MM-DD form value. Empty input yields nil.
func ParseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(model.DateISO, s)
	if err != nil {
		return nil, fmt.Errorf("parse date %q: %w", s, err)
	}
	return &t, nil
}

func check(form interface{}) []model.FieldError {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []model.FieldError{{Field: "form", Message: err.Error()}}
	}

	t := reflect.Indirect(reflect.ValueOf(form)).Type()
	out := make([]model.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, model.FieldError{
			Field:   fe.Field(),
			Message: message(t, fe),
		})
	}
	return out
}

// message prefers the field's msg tag for presence and minimum checks and
// falls back to a generic message per rule.
func message(t reflect.Type, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "min", "datetime":
		if sf, ok := t.FieldByName(fe.StructField()); ok {
			if msg := sf.Tag.Get("msg"); msg != "" {
				return msg
			}
		}
	}

	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "datetime":
		return fmt.Sprintf("%s must be a date in %s form", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
