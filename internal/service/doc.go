// Package service implements the catalog business logic: genres, books and
// authors, the rules that tie them together, and the change events they emit.
//
// Services are the only layer that enforces catalog invariants. Handlers and
// the seed loader call services; services call repositories through the
// interfaces declared here, so SurrealDB, PostgreSQL and the in-memory test
// store are interchangeable.
//
// # Service Pattern
//
//   - Constructor function (NewXxxService) accepts a config struct with repository dependencies
//   - Forms are validated and cleaned before any store access
//   - Errors are returned as sentinel errors or typed errors that unwrap to one
//   - Context is passed through for cancellation and request-scoped values
//
// # Genre Identity
//
// Genre names are unique up to case and diacritics. IdentityResolver looks a
// candidate name up by its folded key, and GenreService.Create returns the
// existing genre instead of inserting a duplicate:
//
//	genre, created, err := genres.Create(ctx, model.GenreForm{Name: "fantasy"})
//	// created == false when "Fantasy" already existed
//
// # Guarded Deletes
//
// Genres and authors referenced by books cannot be deleted. Delete returns
// the entity detail together with a *BlockedError listing the books:
//
//	detail, err := genres.Delete(ctx, id, bodyID)
//	var blocked *service.BlockedError
//	if errors.As(err, &blocked) {
//	    // show detail.Books to the user
//	}
//
// # Error Handling
//
//	var (
//	    ErrGenreNotFound = errors.New("genre not found")
//	    ErrGenreHasBooks = errors.New("genre has books")
//	)
//
// *ValidationError carries field errors and the cleaned form and unwraps to
// ErrValidation.
package service
