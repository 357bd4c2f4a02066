package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/forgo/catalog/internal/model"
)

// AuthorRepository handles author data access
type AuthorRepository struct {
	db *pgxpool.Pool
}

// NewAuthorRepository creates a new author repository
func NewAuthorRepository(db *pgxpool.Pool) *AuthorRepository {
	return &AuthorRepository{db: db}
}

const authorColumns = `id, first_name, family_name, date_of_birth, date_of_death, created_on, updated_on`

func scanAuthor(row pgx.Row) (*model.Author, error) {
	var a model.Author
	err := row.Scan(&a.ID, &a.FirstName, &a.FamilyName, &a.DateOfBirth, &a.DateOfDeath, &a.CreatedOn, &a.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// List returns every author sorted by family name
func (r *AuthorRepository) List(ctx context.Context) ([]*model.Author, error) {
	rows, err := r.db.Query(ctx, `SELECT `+authorColumns+` FROM authors ORDER BY family_name ASC, first_name ASC`)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var authors []*model.Author
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, classify(err)
		}
		authors = append(authors, a)
	}
	return authors, classify(rows.Err())
}

// GetByID retrieves an author by id
func (r *AuthorRepository) GetByID(ctx context.Context, id string) (*model.Author, error) {
	a, err := scanAuthor(r.db.QueryRow(ctx, `SELECT `+authorColumns+` FROM authors WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, classify(err)
	}
	return a, nil
}

// Create inserts an author
func (r *AuthorRepository) Create(ctx context.Context, author *model.Author) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO authors (id, first_name, family_name, date_of_birth, date_of_death)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+authorColumns,
		uuid.NewString(), author.FirstName, author.FamilyName, author.DateOfBirth, author.DateOfDeath,
	)
	created, err := scanAuthor(row)
	if err != nil {
		return classify(err)
	}
	*author = *created
	return nil
}

// Update replaces an author's fields
func (r *AuthorRepository) Update(ctx context.Context, author *model.Author) error {
	row := r.db.QueryRow(ctx, `
		UPDATE authors SET
			first_name = $2, family_name = $3, date_of_birth = $4, date_of_death = $5, updated_on = now()
		WHERE id = $1
		RETURNING `+authorColumns,
		author.ID, author.FirstName, author.FamilyName, author.DateOfBirth, author.DateOfDeath,
	)
	updated, err := scanAuthor(row)
	if err != nil {
		return classify(err)
	}
	*author = *updated
	return nil
}

// Delete removes an author
func (r *AuthorRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id); err != nil {
		return classify(err)
	}
	return nil
}
