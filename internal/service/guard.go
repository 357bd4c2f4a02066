package service

import (
	"github.com/forgo/catalog/internal/model"
)

// checkDeletable is the referential guard verdict over an already fetched
// dependent list: nil when nothing references the target, otherwise a
// *BlockedError carrying every dependent.
//
// The check and the delete that follows are not atomic; a book written in
// between can still end up referencing a deleted entity.
func checkDeletable(kind, id string, dependents []model.BookSummary) error {
	if len(dependents) == 0 {
		return nil
	}
	return &BlockedError{Kind: kind, ID: id, Dependents: dependents}
}

// confirmDeleteID validates the id submitted with a delete form against the
// id in the path. An empty form id means the path id.
func confirmDeleteID(pathID, bodyID string) error {
	if bodyID != "" && bodyID != pathID {
		return ErrIDMismatch
	}
	return nil
}
