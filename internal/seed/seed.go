// Package seed loads catalog data from a YAML document through the service
// layer, so seeded genres are deduplicated like any other create.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/forgo/catalog/internal/model"
	"github.com/forgo/catalog/internal/service"
)

// File is the seed document layout.
//
//	genres:
//	  - Fantasy
//	authors:
//	  - key: herbert
//	    first_name: Frank
//	    family_name: Herbert
//	    date_of_birth: "1920-10-08"
//	books:
//	  - title: Dune
//	    summary: ...
//	    isbn: "9780441013593"
//	    author: herbert
//	    genre: Science Fiction
type File struct {
	Genres  []string `yaml:"genres"`
	Authors []Author `yaml:"authors"`
	Books   []Book   `yaml:"books"`
}

// Author is a seeded author. Key is how books in the same file refer to it.
type Author struct {
	Key         string `yaml:"key"`
	FirstName   string `yaml:"first_name"`
	FamilyName  string `yaml:"family_name"`
	DateOfBirth string `yaml:"date_of_birth"`
	DateOfDeath string `yaml:"date_of_death"`
}

// Book is a seeded book. Author is an author key from the same file and
// Genre is a genre name, created if absent.
type Book struct {
	Title   string `yaml:"title"`
	Summary string `yaml:"summary"`
	ISBN    string `yaml:"isbn"`
	Author  string `yaml:"author"`
	Genre   string `yaml:"genre"`
}

// Result counts what a seed run did
type Result struct {
	GenresCreated int
	GenresReused  int
	Authors       int
	Books         int
}

// Parse decodes a seed document
func Parse(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}
	return &f, nil
}

// ParseFile decodes the seed document at path
func ParseFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening seed file: %w", err)
	}
	defer func() { _ = fh.Close() }()
	return Parse(fh)
}

// Seeder writes seed documents through the catalog services
type Seeder struct {
	genres  *service.GenreService
	authors *service.AuthorService
	books   *service.BookService
}

// SeederConfig holds the services a Seeder writes through
type SeederConfig struct {
	GenreService  *service.GenreService
	AuthorService *service.AuthorService
	BookService   *service.BookService
}

// NewSeeder creates a new seeder
func NewSeeder(cfg SeederConfig) *Seeder {
	return &Seeder{
		genres:  cfg.GenreService,
		authors: cfg.AuthorService,
		books:   cfg.BookService,
	}
}

// Apply writes f: genres first, then authors, then books. It stops at the
// first failure; entities written before it stay written.
func (s *Seeder) Apply(ctx context.Context, f *File) (*Result, error) {
	res := &Result{}
	genreIDs := make(map[string]string)

	genre := func(name string) (string, error) {
		if id, ok := genreIDs[name]; ok {
			return id, nil
		}
		g, created, err := s.genres.Create(ctx, model.GenreForm{Name: name})
		if err != nil {
			return "", fmt.Errorf("genre %q: %w", name, err)
		}
		if created {
			res.GenresCreated++
		} else {
			res.GenresReused++
		}
		genreIDs[name] = g.ID
		return g.ID, nil
	}

	for _, name := range f.Genres {
		if _, err := genre(name); err != nil {
			return res, err
		}
	}

	authorIDs := make(map[string]string, len(f.Authors))
	for _, a := range f.Authors {
		author, err := s.authors.Create(ctx, model.AuthorForm{
			FirstName:   a.FirstName,
			FamilyName:  a.FamilyName,
			DateOfBirth: a.DateOfBirth,
			DateOfDeath: a.DateOfDeath,
		})
		if err != nil {
			return res, fmt.Errorf("author %q: %w", a.Key, err)
		}
		if a.Key != "" {
			authorIDs[a.Key] = author.ID
		}
		res.Authors++
	}

	for _, b := range f.Books {
		form := model.BookForm{Title: b.Title, Summary: b.Summary, ISBN: b.ISBN}
		if b.Author != "" {
			id, ok := authorIDs[b.Author]
			if !ok {
				return res, fmt.Errorf("book %q: unknown author key %q", b.Title, b.Author)
			}
			form.Author = id
		}
		if b.Genre != "" {
			id, err := genre(b.Genre)
			if err != nil {
				return res, fmt.Errorf("book %q: %w", b.Title, err)
			}
			form.Genre = id
		}
		if _, err := s.books.Create(ctx, form); err != nil {
			return res, fmt.Errorf("book %q: %w", b.Title, err)
		}
		res.Books++
	}

	slog.Info("seed applied",
		slog.Int("genres_created", res.GenresCreated),
		slog.Int("genres_reused", res.GenresReused),
		slog.Int("authors", res.Authors),
		slog.Int("books", res.Books),
	)
	return res, nil
}
