package service

import (
	"errors"
	"fmt"

	"github.com/forgo/catalog/internal/model"
)

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Not Found Errors =====
var (
	ErrGenreNotFound  = errors.New("genre not found")
	ErrBookNotFound   = errors.New("book not found")
	ErrAuthorNotFound = errors.New("author not found")
)

// ===== Referential Errors =====
var (
	ErrGenreHasBooks    = errors.New("genre has books")
	ErrAuthorHasBooks   = errors.New("author has books")
	ErrInvalidGenreRef  = errors.New("referenced genre does not exist")
	ErrInvalidAuthorRef = errors.New("referenced author does not exist")
)

// ===== Request Errors =====
var (
	ErrValidation = errors.New("validation failed")
	ErrIDMismatch = errors.New("form id does not match the requested id")
)

// ValidationError carries the field errors of a rejected form along with the
// cleaned form so it can be redisplayed.
type ValidationError struct {
	Form   interface{}
	Fields []model.FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	return fmt.Sprintf("%s: %s: %s", ErrValidation, e.Fields[0].Field, e.Fields[0].Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func invalid(form interface{}, fields ...model.FieldError) *ValidationError {
	return &ValidationError{Form: form, Fields: fields}
}

// BlockedError reports a delete refused because books still reference the
// target. Dependents are sorted by title.
type BlockedError struct {
	Kind       string
	ID         string
	Dependents []model.BookSummary
}

func (e *BlockedError) Error() string {
	return fmt.Sprintf("%s %s is referenced by %d book(s)", e.Kind, e.ID, len(e.Dependents))
}

func (e *BlockedError) Unwrap() error {
	switch e.Kind {
	case model.KindAuthor:
		return ErrAuthorHasBooks
	default:
		return ErrGenreHasBooks
	}
}
