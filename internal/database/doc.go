// Package database provides the document store connection for the catalog.
//
// The Database interface wraps SurrealDB with three query methods:
//   - Query: all statement results as {status, result} maps
//   - QueryOne: the first record of the first statement, or ErrNotFound
//   - Execute: no return value (for CREATE/UPDATE/DELETE)
//
// # Error Handling
//
// Standard errors are defined for common failure cases:
//   - ErrNotFound: Record does not exist
//   - ErrDuplicate: Unique index violation
//   - ErrConnection: Database connection issues
//   - ErrQuery: Query execution failures
//
// Use errors.Is() to check error types:
//
//	if errors.Is(err, database.ErrDuplicate) {
//	    // another writer got there first
//	}
//
// # Schema
//
// ApplyMigrations runs the embedded .surql files from the migrations
// package in lexical order.
//
//	db := database.NewSurrealDB(cfg)
//	if err := db.Connect(ctx); err != nil { ... }
//	defer db.Close()
//	_, err := database.ApplyMigrations(ctx, db, migrations.FS)
package database
