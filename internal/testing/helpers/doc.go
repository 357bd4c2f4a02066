// Package helpers provides test utilities for the catalog service.
//
// # Request Helpers
//
//	rec := helpers.NewRequest(t, http.MethodPost, "/catalog/genre/create").
//	    WithForm(url.Values{"name": {"Fantasy"}}).
//	    Do(mux)
//	helpers.AssertRedirect(t, rec, "/catalog/genre/abc")
//
// # View Helpers
//
//	v := helpers.DecodeView(t, rec, "genre_form")
//	helpers.AssertFieldError(t, v, "name")
//
// # Database Assertion Helpers
//
//	helpers.AssertRecordExists(t, tdb.DB, "genre", id)
//	helpers.AssertRecordNotExists(t, tdb.DB, "genre", id)
package helpers
