// Package handler provides the HTTP handlers for the catalog service.
//
// Each handler struct wraps one service and registers its routes on a
// Go 1.22 ServeMux with RegisterRoutes. Every entity kind exposes the same
// route set under /catalog:
//
//	GET  /catalog/<kind>s               list view
//	GET  /catalog/<kind>/create         empty form
//	POST /catalog/<kind>/create         303 to the new entity, 422 form on error
//	GET  /catalog/<kind>/{id}           detail view
//	GET  /catalog/<kind>/{id}/delete    delete confirmation
//	POST /catalog/<kind>/{id}/delete    303 to the list, 409 confirmation when blocked
//	GET  /catalog/<kind>/{id}/update    prefilled form
//	POST /catalog/<kind>/{id}/update    303 to the entity, 422 form on error
//
// GET /catalog serves the home page counts and GET /catalog/events streams
// catalog changes as server-sent events.
//
// # Views
//
// Pages are written through a JSON view sink as {view, title, data, errors}.
// A renderer can pick a template by view name; API clients read data.
//
// # Forms
//
// Form posts are accepted as application/x-www-form-urlencoded or
// application/json. Field names match the model form json tags.
//
// # Errors
//
// Errors that do not redisplay a page are mapped to RFC 9457 Problem Details
// by MapServiceError.
package handler
