package repository

import (
	"context"
	"errors"

	"github.com/forgo/catalog/internal/database"
	"github.com/forgo/catalog/internal/model"
)

// BookRepository handles book data access
type BookRepository struct {
	db database.Database
}

// NewBookRepository creates a new book repository
func NewBookRepository(db database.Database) *BookRepository {
	return &BookRepository{db: db}
}

// List returns every book sorted by title
func (r *BookRepository) List(ctx context.Context) ([]*model.Book, error) {
	results, err := r.db.Query(ctx, `SELECT * FROM book ORDER BY title ASC`, nil)
	if err != nil {
		return nil, err
	}

	rows := extractQueryResults(results)
	books := make([]*model.Book, 0, len(rows))
	for _, row := range rows {
		books = append(books, parseBook(row))
	}
	return books, nil
}

// GetByID retrieves a book by its public id
func (r *BookRepository) GetByID(ctx context.Context, id string) (*model.Book, error) {
	rid, ok := recordID("book", id)
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
	return parseBook(data), nil
}

// ListByGenre returns the books referencing a genre, sorted by title
func (r *BookRepository) ListByGenre(ctx context.Context, genreID string) ([]model.BookSummary, error) {
	return r.listSummaries(ctx, `
		SELECT id, title, summary FROM book
		WHERE genre = $ref
		ORDER BY title ASC
	`, genreID)
}

// ListByAuthor returns the books referencing an author, sorted by title
func (r *BookRepository) ListByAuthor(ctx context.Context, authorID string) ([]model.BookSummary, error) {
	return r.listSummaries(ctx, `
		SELECT id, title, summary FROM book
		WHERE author = $ref
		ORDER BY title ASC
	`, authorID)
}

func (r *BookRepository) listSummaries(ctx context.Context, query, ref string) ([]model.BookSummary, error) {
	results, err := r.db.Query(ctx, query, map[string]interface{}{"ref": ref})
	if err != nil {
		return nil, err
	}

	rows := extractQueryResults(results)
	summaries := make([]model.BookSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, model.BookSummary{
			ID:      publicID(row["id"]),
			Title:   getString(row, "title"),
			Summary: getString(row, "summary"),
		})
	}
	return summaries, nil
}

// Create inserts a book
func (r *BookRepository) Create(ctx context.Context, book *model.Book) error {
	query := `
		CREATE book CONTENT {
			title: $title,
			summary: $summary,
			isbn: $isbn,
			genre: IF $genre IS NOT NULL THEN $genre ELSE NONE END,
			author: IF $author IS NOT NULL THEN $author ELSE NONE END,
			created_on: time::now(),
			updated_on: time::now()
		}
	`
	results, err := r.db.Query(ctx, query, bookVars(book))
	if err != nil {
		return err
	}

	created, err := firstRecord(results)
	if err != nil {
		return err
	}
	*book = *parseBook(created)
	return nil
}

// Update replaces a book's fields
func (r *BookRepository) Update(ctx context.Context, book *model.Book) error {
	rid, ok := recordID("book", book.ID)
	if !ok {
		return database.ErrNotFound
	}

	query := `
		UPDATE book SET
			title = $title,
			summary = $summary,
			isbn = $isbn,
			genre = IF $genre IS NOT NULL THEN $genre ELSE NONE END,
			author = IF $author IS NOT NULL THEN $author ELSE NONE END,
			updated_on = time::now()
		WHERE id = type::record($id)
		RETURN AFTER
	`
	vars := bookVars(book)
	vars["id"] = rid

	results, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	updated, err := firstRecord(results)
	if err != nil {
		return database.ErrNotFound
	}
	*book = *parseBook(updated)
	return nil
}

// Delete removes a book
func (r *BookRepository) Delete(ctx context.Context, id string) error {
	rid, ok := recordID("book", id)
	if !ok {
		return nil
	}
	return r.db.Execute(ctx, `DELETE type::record($id)`, map[string]interface{}{"id": rid})
}

func bookVars(book *model.Book) map[string]interface{} {
	return map[string]interface{}{
		"title":   book.Title,
		"summary": book.Summary,
		"isbn":    book.ISBN,
		"genre":   nilIfEmpty(book.GenreID),
		"author":  nilIfEmpty(book.AuthorID),
	}
}

func parseBook(data map[string]interface{}) *model.Book {
	return &model.Book{
		ID:        publicID(data["id"]),
		Title:     getString(data, "title"),
		Summary:   getString(data, "summary"),
		ISBN:      getString(data, "isbn"),
		GenreID:   getStringPtr(data, "genre"),
		AuthorID:  getStringPtr(data, "author"),
		CreatedOn: parseTime(data["created_on"]),
		UpdatedOn: parseTime(data["updated_on"]),
	}
}
