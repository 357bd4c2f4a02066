// Package repository implements the SurrealDB data access layer for the
// catalog service.
//
// Each repository handles one entity (genre, book, author) and satisfies the
// matching interface declared in the service package.
//
// # Repository Pattern
//
//   - Constructor function (NewXxxRepository) accepts a database.Database
//   - Lookups return nil, nil when the record does not exist
//   - Update returns database.ErrNotFound when the record is gone
//   - Results are parsed from SurrealDB maps into model structs
//
// # Identifiers
//
// Public ids are the record key without the table prefix. recordID rebuilds
// the full "table:key" form and rejects keys that could address another
// table; a rejected key behaves like a missing record.
//
// # Query Patterns
//
//   - Parameterized queries with $variable syntax
//   - type::record() for safe id handling
//   - UPDATE ... WHERE id = ... RETURN AFTER so a missing record is never created
//   - time::now() for automatic timestamps
//
// # Example Usage
//
//	repo := repository.NewGenreRepository(db)
//	genre, err := repo.FindByNameKey(ctx, fold.Key("Fantasy"))
//	if err != nil {
//	    return err
//	}
//	if genre == nil {
//	    // no equivalent genre yet
//	}
//
// The postgres subpackage provides the same repositories over PostgreSQL.
package repository
