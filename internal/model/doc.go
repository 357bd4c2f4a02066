// Package model defines the catalog entities and wire types.
//
// # Entities
//
//   - Genre: uniquely named category; NameKey holds the folded name
//   - Book: title with optional author and genre references
//   - Author: person with derived display fields
//
// Every entity has an identity URL of the form /catalog/<kind>/<id>,
// exposed as the "url" field when serialized.
//
// # Derived Fields
//
// Author display fields (name, lifespan, ISO dates) are methods over the
// stored fields. They are added to the JSON form by MarshalJSON and are never
// written to the store.
//
// # Errors
//
// ProblemDetails implements RFC 9457 and carries FieldError values for
// validation failures.
package model
