package handler

import (
	"errors"
	"log/slog"

	"github.com/forgo/catalog/internal/database"
	"github.com/forgo/catalog/internal/model"
	"github.com/forgo/catalog/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// Handlers that can redisplay a form or a delete confirmation deal with
// *service.ValidationError and *service.BlockedError themselves; this is
// the fallback for everything else.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	var blocked *service.BlockedError
	var invalid *service.ValidationError

	switch {
	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrGenreNotFound):
		return model.NewNotFoundError("Genre")
	case errors.Is(err, service.ErrBookNotFound):
		return model.NewNotFoundError("Book")
	case errors.Is(err, service.ErrAuthorNotFound):
		return model.NewNotFoundError("Author")

	// ===== Request Errors → 400 =====
	case errors.Is(err, service.ErrIDMismatch):
		return model.NewBadRequestError(err.Error())

	// ===== Validation Errors → 422 =====
	case errors.As(err, &invalid):
		return model.NewValidationError(invalid.Fields)

	// ===== Conflict Errors → 409 =====
	case errors.As(err, &blocked):
		return model.NewHasDependentsError(blocked.Kind+" "+blocked.ID, len(blocked.Dependents))
	case errors.Is(err, database.ErrDuplicate):
		return model.NewConflictError("record already exists")

	// ===== Store Errors → 503 =====
	case errors.Is(err, database.ErrConnection):
		slog.Error("store unavailable", slog.String("error", err.Error()))
		return model.NewServiceUnavailableError("the catalog store is unavailable")

	// ===== Default → 500 =====
	default:
		slog.Error("unhandled service error", slog.String("error", err.Error()))
		return model.NewInternalError("")
	}
}

// MapServiceErrorWithContext converts a service error to a ProblemDetails response
// with additional context about the operation that failed.
func MapServiceErrorWithContext(err error, operation string) *model.ProblemDetails {
	pd := MapServiceError(err)
	if pd != nil && pd.Status == 500 {
		pd.Detail = operation + ": an unexpected error occurred"
	}
	return pd
}
