// Package fixtures provides test data factories for catalog integration
// tests.
//
// Create a factory over a test database:
//
//	tdb := testdb.New(t)
//	defer tdb.Close()
//	f := fixtures.New(tdb.DB)
//
// Factories write through the SurrealDB repositories and fail the test on
// error:
//
//	fantasy := f.CreateGenre(t, "Fantasy")
//	herbert := f.CreateAuthor(t, func(o *fixtures.AuthorOpts) {
//	    o.FirstName, o.FamilyName = "Frank", "Herbert"
//	})
//	dune := f.CreateBook(t, fixtures.Titled("Dune"), fixtures.InGenre(fantasy), fixtures.ByAuthor(herbert))
//
// Test data is removed when the test database is closed.
package fixtures
