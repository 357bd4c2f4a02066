package service

import (
	"context"
	"errors"
	"testing"

	"github.com/forgo/catalog/internal/database"
	"github.com/forgo/catalog/internal/model"
)

// ============================================================================
// Mock Repositories
// ============================================================================

type mockGenreLookup struct {
	findByNameKeyFunc func(ctx context.Context, key string) (*model.Genre, error)
}

func (m *mockGenreLookup) FindByNameKey(ctx context.Context, key string) (*model.Genre, error) {
	if m.findByNameKeyFunc != nil {
		return m.findByNameKeyFunc(ctx, key)
	}
	return nil, nil
}

// ============================================================================
// Resolve Tests
// ============================================================================

func TestIdentityResolver_Resolve_FoldsCaseAndAccents(t *testing.T) {
	t.Parallel()

	var gotKey string
	r := NewIdentityResolver(&mockGenreLookup{
		findByNameKeyFunc: func(ctx context.Context, key string) (*model.Genre, error) {
			gotKey = key
			return &model.Genre{ID: "g1", Name: "Fantasía", NameKey: key}, nil
		},
	})

	genre, err := r.Resolve(context.Background(), "FANTASÍA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotKey != "fantasia" {
		t.Errorf("expected folded key 'fantasia', got %q", gotKey)
	}
	if genre == nil || genre.ID != "g1" {
		t.Errorf("expected existing genre g1, got %+v", genre)
	}
}

func TestIdentityResolver_Resolve_NoMatch(t *testing.T) {
	t.Parallel()

	r := NewIdentityResolver(&mockGenreLookup{})

	genre, err := r.Resolve(context.Background(), "Poetry")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if genre != nil {
		t.Errorf("expected nil genre, got %+v", genre)
	}
}

func TestIdentityResolver_Resolve_PropagatesStoreFailure(t *testing.T) {
	t.Parallel()

	r := NewIdentityResolver(&mockGenreLookup{
		findByNameKeyFunc: func(ctx context.Context, key string) (*model.Genre, error) {
			return nil, database.ErrConnection
		},
	})

	_, err := r.Resolve(context.Background(), "Poetry")
	if !errors.Is(err, database.ErrConnection) {
		t.Errorf("expected connection error, got %v", err)
	}
}

// ============================================================================
// Guard Tests
// ============================================================================

func TestCheckDeletable(t *testing.T) {
	t.Parallel()

	if err := checkDeletable(model.KindGenre, "g1", nil); err != nil {
		t.Errorf("expected allowed, got %v", err)
	}

	deps := []model.BookSummary{{ID: "b1", Title: "Dune"}}
	err := checkDeletable(model.KindGenre, "g1", deps)

	var blocked *BlockedError
	if !errors.As(err, &blocked) {
		t.Fatalf("expected BlockedError, got %v", err)
	}
	if len(blocked.Dependents) != 1 || blocked.Dependents[0].Title != "Dune" {
		t.Errorf("unexpected dependents %+v", blocked.Dependents)
	}
	if !errors.Is(err, ErrGenreHasBooks) {
		t.Error("expected blocked genre to unwrap to ErrGenreHasBooks")
	}

	err = checkDeletable(model.KindAuthor, "a1", deps)
	if !errors.Is(err, ErrAuthorHasBooks) {
		t.Error("expected blocked author to unwrap to ErrAuthorHasBooks")
	}
}

func TestConfirmDeleteID(t *testing.T) {
	t.Parallel()

	if err := confirmDeleteID("g1", ""); err != nil {
		t.Errorf("empty body id should default to path id, got %v", err)
	}
	if err := confirmDeleteID("g1", "g1"); err != nil {
		t.Errorf("matching ids should pass, got %v", err)
	}
	if err := confirmDeleteID("g1", "g2"); !errors.Is(err, ErrIDMismatch) {
		t.Errorf("expected ErrIDMismatch, got %v", err)
	}
}
