package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/forgo/catalog/internal/database"
	"github.com/forgo/catalog/internal/model"
)

// GenreRepository handles genre data access
type GenreRepository struct {
	db database.Database
}

// NewGenreRepository creates a new genre repository
func NewGenreRepository(db database.Database) *GenreRepository {
	return &GenreRepository{db: db}
}

// List returns every genre sorted by name
func (r *GenreRepository) List(ctx context.Context) ([]*model.Genre, error) {
	results, err := r.db.Query(ctx, `SELECT * FROM genre ORDER BY name ASC`, nil)
	if err != nil {
		return nil, err
	}

	rows := extractQueryResults(results)
	genres := make([]*model.Genre, 0, len(rows))
	for _, row := range rows {
		genres = append(genres, parseGenre(row))
	}
	return genres, nil
}

// GetByID retrieves a genre by its public id
func (r *GenreRepository) GetByID(ctx context.Context, id string) (*model.Genre, error) {
	rid, ok := recordID("genre", id)
	if !ok {
		return nil, nil
	}

	result, err := r.db.QueryOne(ctx, `SELECT * FROM type::record($id)`, map[string]interface{}{"id": rid})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	data, err := asRecord(result)
	if err != nil {
		return nil, err
	}
	return parseGenre(data), nil
}

// FindByNameKey retrieves the genre with the given folded name key
func (r *GenreRepository) FindByNameKey(ctx context.Context, key string) (*model.Genre, error) {
	query := `SELECT * FROM genre WHERE name_key = $name_key LIMIT 1`
	result, err := r.db.QueryOne(ctx, query, map[string]interface{}{"name_key": key})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	data, err := asRecord(result)
	if err != nil {
		return nil, err
	}
	return parseGenre(data), nil
}

// Create inserts a genre. A name key already in use yields database.ErrDuplicate.
func (r *GenreRepository) Create(ctx context.Context, genre *model.Genre) error {
	query := `
		CREATE genre CONTENT {
			name: $name,
			name_key: $name_key,
			created_on: time::now(),
			updated_on: time::now()
		}
	`
	vars := map[string]interface{}{
		"name":     genre.Name,
		"name_key": genre.NameKey,
	}

	results, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return fmt.Errorf("%w: genre name already exists", database.ErrDuplicate)
		}
		return err
	}

	created, err := firstRecord(results)
	if err != nil {
		return err
	}
	*genre = *parseGenre(created)
	return nil
}

// Update writes a genre's name and name key
func (r *GenreRepository) Update(ctx context.Context, genre *model.Genre) error {
	rid, ok := recordID("genre", genre.ID)
	if !ok {
		return database.ErrNotFound
	}

	query := `
		UPDATE genre SET
			name = $name,
			name_key = $name_key,
			updated_on = time::now()
		WHERE id = type::record($id)
		RETURN AFTER
	`
	vars := map[string]interface{}{
		"id":       rid,
		"name":     genre.Name,
		"name_key": genre.NameKey,
	}

	results, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return fmt.Errorf("%w: genre name already exists", database.ErrDuplicate)
		}
		return err
	}

	updated, err := firstRecord(results)
	if err != nil {
		return database.ErrNotFound
	}
	*genre = *parseGenre(updated)
	return nil
}

// Delete removes a genre
func (r *GenreRepository) Delete(ctx context.Context, id string) error {
	rid, ok := recordID("genre", id)
	if !ok {
		return nil
	}
	return r.db.Execute(ctx, `DELETE type::record($id)`, map[string]interface{}{"id": rid})
}

func parseGenre(data map[string]interface{}) *model.Genre {
	return &model.Genre{
		ID:        publicID(data["id"]),
		Name:      getString(data, "name"),
		NameKey:   getString(data, "name_key"),
		CreatedOn: parseTime(data["created_on"]),
		UpdatedOn: parseTime(data["updated_on"]),
	}
}
