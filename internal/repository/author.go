package repository

import (
	"context"
	"errors"

	"github.com/forgo/catalog/internal/database"
	"github.com/forgo/catalog/internal/model"
)

// AuthorRepository handles author data access
type AuthorRepository struct {
	db database.Database
}

// NewAuthorRepository creates a new author repository
func NewAuthorRepository(db database.Database) *AuthorRepository {
	return &AuthorRepository{db: db}
}

// List returns every author sorted by family name
func (r *AuthorRepository) List(ctx context.Context) ([]*model.Author, error) {
	query := `SELECT * FROM author ORDER BY family_name ASC, first_name ASC`
	results, err := r.db.Query(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	rows := extractQueryResults(results)
	authors := make([]*model.Author, 0, len(rows))
	for _, row := range rows {
		authors = append(authors, parseAuthor(row))
	}
	return authors, nil
}

// GetByID retrieves an author by their public id
func (r *AuthorRepository) GetByID(ctx context.Context, id string) (*model.Author, error) {
	rid, ok := recordID("author", id)
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
	return parseAuthor(data), nil
}

// Create inserts an author
func (r *AuthorRepository) Create(ctx context.Context, author *model.Author) error {
	query := `
		CREATE author CONTENT {
			first_name: $first_name,
			family_name: $family_name,
			date_of_birth: IF $date_of_birth IS NOT NULL THEN <datetime> $date_of_birth ELSE NONE END,
			date_of_death: IF $date_of_death IS NOT NULL THEN <datetime> $date_of_death ELSE NONE END,
			created_on: time::now(),
			updated_on: time::now()
		}
	`
	results, err := r.db.Query(ctx, query, authorVars(author))
	if err != nil {
		return err
	}

	created, err := firstRecord(results)
	if err != nil {
		return err
	}
	*author = *parseAuthor(created)
	return nil
}

// Update replaces an author's fields
func (r *AuthorRepository) Update(ctx context.Context, author *model.Author) error {
	rid, ok := recordID("author", author.ID)
	if !ok {
		return database.ErrNotFound
	}

	query := `
		UPDATE author SET
			first_name = $first_name,
			family_name = $family_name,
			date_of_birth = IF $date_of_birth IS NOT NULL THEN <datetime> $date_of_birth ELSE NONE END,
			date_of_death = IF $date_of_death IS NOT NULL THEN <datetime> $date_of_death ELSE NONE END,
			updated_on = time::now()
		WHERE id = type::record($id)
		RETURN AFTER
	`
	vars := authorVars(author)
	vars["id"] = rid

	results, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	updated, err := firstRecord(results)
	if err != nil {
		return database.ErrNotFound
	}
	*author = *parseAuthor(updated)
	return nil
}

// Delete removes an author
func (r *AuthorRepository) Delete(ctx context.Context, id string) error {
	rid, ok := recordID("author", id)
	if !ok {
		return nil
	}
	return r.db.Execute(ctx, `DELETE type::record($id)`, map[string]interface{}{"id": rid})
}

func authorVars(author *model.Author) map[string]interface{} {
	return map[string]interface{}{
		"first_name":    author.FirstName,
		"family_name":   author.FamilyName,
		"date_of_birth": formatDate(author.DateOfBirth),
		"date_of_death": formatDate(author.DateOfDeath),
	}
}

func parseAuthor(data map[string]interface{}) *model.Author {
	return &model.Author{
		ID:          publicID(data["id"]),
		FirstName:   getString(data, "first_name"),
		FamilyName:  getString(data, "family_name"),
		DateOfBirth: getTime(data, "date_of_birth"),
		DateOfDeath: getTime(data, "date_of_death"),
		CreatedOn:   parseTime(data["created_on"]),
		UpdatedOn:   parseTime(data["updated_on"]),
	}
}
