// Package testdb provides SurrealDB test database utilities.
//
// Each TestDB gets a unique namespace with the catalog schema applied from
// the embedded migrations. Tests are skipped when SurrealDB is not reachable
// (TEST_DB_HOST, TEST_DB_PORT, TEST_DB_USER, TEST_DB_PASSWORD) and in
// -short mode.
//
//	func TestSomething(t *testing.T) {
//	    tdb := testdb.New(t)
//	    defer tdb.Close()
//
//	    repo := repository.NewGenreRepository(tdb.DB)
//	}
//
// For subtests that share a connection:
//
//	shared := testdb.NewShared(t)
//	defer shared.Close()
//	t.Run("create", func(t *testing.T) {
//	    tdb := shared.SetupSubtest(t)
//	})
package testdb
