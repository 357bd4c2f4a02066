package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/forgo/catalog/internal/model"
)

// GenreRepository handles genre data access
type GenreRepository struct {
	db *pgxpool.Pool
}

// NewGenreRepository creates a new genre repository
func NewGenreRepository(db *pgxpool.Pool) *GenreRepository {
	return &GenreRepository{db: db}
}

const genreColumns = `id, name, name_key, created_on, updated_on`

func scanGenre(row pgx.Row) (*model.Genre, error) {
	var g model.Genre
	if err := row.Scan(&g.ID, &g.Name, &g.NameKey, &g.CreatedOn, &g.UpdatedOn); err != nil {
		return nil, err
	}
	return &g, nil
}

// List returns every genre sorted by name
func (r *GenreRepository) List(ctx context.Context) ([]*model.Genre, error) {
	rows, err := r.db.Query(ctx, `SELECT `+genreColumns+` FROM genres ORDER BY name ASC`)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var genres []*model.Genre
	for rows.Next() {
		g, err := scanGenre(rows)
		if err != nil {
			return nil, classify(err)
		}
		genres = append(genres, g)
	}
	return genres, classify(rows.Err())
}

// GetByID retrieves a genre by id
func (r *GenreRepository) GetByID(ctx context.Context, id string) (*model.Genre, error) {
	return r.getOne(ctx, `SELECT `+genreColumns+` FROM genres WHERE id = $1`, id)
}

// FindByNameKey retrieves the genre with the given folded name key
func (r *GenreRepository) FindByNameKey(ctx context.Context, key string) (*model.Genre, error) {
	return r.getOne(ctx, `SELECT `+genreColumns+` FROM genres WHERE name_key = $1`, key)
}

func (r *GenreRepository) getOne(ctx context.Context, sql string, arg string) (*model.Genre, error) {
	g, err := scanGenre(r.db.QueryRow(ctx, sql, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, classify(err)
	}
	return g, nil
}

// Create inserts a genre. A name key already in use yields database.ErrDuplicate.
func (r *GenreRepository) Create(ctx context.Context, genre *model.Genre) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO genres (id, name, name_key)
		VALUES ($1, $2, $3)
		RETURNING `+genreColumns,
		uuid.NewString(), genre.Name, genre.NameKey,
	)
	created, err := scanGenre(row)
	if err != nil {
		return classify(err)
	}
	*genre = *created
	return nil
}

// Update writes a genre's name and name key
func (r *GenreRepository) Update(ctx context.Context, genre *model.Genre) error {
	row := r.db.QueryRow(ctx, `
		UPDATE genres SET name = $2, name_key = $3, updated_on = now()
		WHERE id = $1
		RETURNING `+genreColumns,
		genre.ID, genre.Name, genre.NameKey,
	)
	updated, err := scanGenre(row)
	if err != nil {
		return classify(err)
	}
	*genre = *updated
	return nil
}

// Delete removes a genre
func (r *GenreRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM genres WHERE id = $1`, id)
	if err != nil {
		return classify(err)
	}
	return nil
}
