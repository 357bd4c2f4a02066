package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/forgo/catalog/internal/model"
)

// BookRepository handles book data access
type BookRepository struct {
	db *pgxpool.Pool
}

// NewBookRepository creates a new book repository
func NewBookRepository(db *pgxpool.Pool) *BookRepository {
	return &BookRepository{db: db}
}

const bookColumns = `id, title, summary, isbn, genre_id, author_id, created_on, updated_on`

func scanBook(row pgx.Row) (*model.Book, error) {
	var b model.Book
	err := row.Scan(&b.ID, &b.Title, &b.Summary, &b.ISBN, &b.GenreID, &b.AuthorID, &b.CreatedOn, &b.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// List returns every book sorted by title
func (r *BookRepository) List(ctx context.Context) ([]*model.Book, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bookColumns+` FROM books ORDER BY title ASC`)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var books []*model.Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, classify(err)
		}
		books = append(books, b)
	}
	return books, classify(rows.Err())
}

// GetByID retrieves a book by id
func (r *BookRepository) GetByID(ctx context.Context, id string) (*model.Book, error) {
	b, err := scanBook(r.db.QueryRow(ctx, `SELECT `+bookColumns+` FROM books WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, classify(err)
	}
	return b, nil
}

// ListByGenre returns the books referencing a genre, sorted by title
func (r *BookRepository) ListByGenre(ctx context.Context, genreID string) ([]model.BookSummary, error) {
	return r.summaries(ctx, `SELECT id, title, summary FROM books WHERE genre_id = $1 ORDER BY title ASC`, genreID)
}

// ListByAuthor returns the books referencing an author, sorted by title
func (r *BookRepository) ListByAuthor(ctx context.Context, authorID string) ([]model.BookSummary, error) {
	return r.summaries(ctx, `SELECT id, title, summary FROM books WHERE author_id = $1 ORDER BY title ASC`, authorID)
}

func (r *BookRepository) summaries(ctx context.Context, sql, ref string) ([]model.BookSummary, error) {
	rows, err := r.db.Query(ctx, sql, ref)
	if err != nil {
		return nil, classify(err)
	}
	summaries, err := pgx.CollectRows(rows, pgx.RowToStructByPos[model.BookSummary])
	if err != nil {
		return nil, classify(err)
	}
	if summaries == nil {
		summaries = []model.BookSummary{}
	}
	return summaries, nil
}

// Create inserts a book
func (r *BookRepository) Create(ctx context.Context, book *model.Book) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO books (id, title, summary, isbn, genre_id, author_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+bookColumns,
		uuid.NewString(), book.Title, book.Summary, book.ISBN, nullable(book.GenreID), nullable(book.AuthorID),
	)
	created, err := scanBook(row)
	if err != nil {
		return classify(err)
	}
	*book = *created
	return nil
}

// Update replaces a book's fields
func (r *BookRepository) Update(ctx context.Context, book *model.Book) error {
	row := r.db.QueryRow(ctx, `
		UPDATE books SET
			title = $2, summary = $3, isbn = $4, genre_id = $5, author_id = $6, updated_on = now()
		WHERE id = $1
		RETURNING `+bookColumns,
		book.ID, book.Title, book.Summary, book.ISBN, nullable(book.GenreID), nullable(book.AuthorID),
	)
	updated, err := scanBook(row)
	if err != nil {
		return classify(err)
	}
	*book = *updated
	return nil
}

// Delete removes a book
func (r *BookRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM books WHERE id = $1`, id); err != nil {
		return classify(err)
	}
	return nil
}
