package service

import (
	"context"
	"fmt"

	"github.com/forgo/catalog/internal/fold"
	"github.com/forgo/catalog/internal/model"
)

// GenreNameLookup finds a genre by its folded name key.
// It returns nil, nil when no genre has that key.
type GenreNameLookup interface {
	FindByNameKey(ctx context.Context, key string) (*model.Genre, error)
}

// IdentityResolver decides whether a genre equivalent to a candidate name
// already exists. Equivalence ignores letter case and accent marks.
type IdentityResolver struct {
	genres GenreNameLookup
}

// NewIdentityResolver creates a resolver over the given lookup
func NewIdentityResolver(genres GenreNameLookup) *IdentityResolver {
	return &IdentityResolver{genres: genres}
}

// Resolve returns the existing genre equivalent to name, or nil if there is
// none. It never writes. Store failures are returned unchanged in meaning.
func (r *IdentityResolver) Resolve(ctx context.Context, name string) (*model.Genre, error) {
	existing, err := r.genres.FindByNameKey(ctx, fold.Key(name))
	if err != nil {
		return nil, fmt.Errorf("resolving genre %q: %w", name, err)
	}
	return existing, nil
}
