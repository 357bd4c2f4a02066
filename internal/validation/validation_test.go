package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgo/catalog/internal/model"
)

func TestGenre_Valid(t *testing.T) {
	t.Parallel()

	out, errs := Genre(model.GenreForm{Name: "  Fantasy  "})

	require.Empty(t, errs)
	assert.Equal(t, "Fantasy", out.Name)
}

func TestGenre_TooShort(t *testing.T) {
	t.Parallel()

	out, errs := Genre(model.GenreForm{Name: " ab "})

	require.Len(t, errs, 1)
	assert.Equal(t, "name", errs[0].Field)
	assert.Equal(t, "Genre must contain at least 3 characters", errs[0].Message)
	assert.Equal(t, "ab", out.Name, "trimmed input is handed back")
}

func TestGenre_BlankIsRequired(t *testing.T) {
	t.Parallel()

	_, errs := Genre(model.GenreForm{Name: "   "})

	require.Len(t, errs, 1)
	assert.Equal(t, "Genre must contain at least 3 characters", errs[0].Message)
}

func TestGenre_TooLong(t *testing.T) {
	t.Parallel()

	_, errs := Genre(model.GenreForm{Name: strings.Repeat("x", 101)})

	require.Len(t, errs, 1)
	assert.Equal(t, "name must be at most 100 characters", errs[0].Message)
}

func TestGenre_CountsRunesNotBytes(t *testing.T) {
	t.Parallel()

	_, errs := Genre(model.GenreForm{Name: "Ñú"})
	require.Len(t, errs, 1)

	_, errs = Genre(model.GenreForm{Name: "Ñúñ"})
	assert.Empty(t, errs)
}

func TestGenre_EscapesOnSuccess(t *testing.T) {
	t.Parallel()

	out, errs := Genre(model.GenreForm{Name: "<b>Horror</b>"})

	require.Empty(t, errs)
	assert.Equal(t, "&lt;b&gt;Horror&lt;/b&gt;", out.Name)
}

func TestGenre_MaxLengthAppliesAfterEscaping(t *testing.T) {
	t.Parallel()

	in := strings.Repeat("&", 100)
	out, errs := Genre(model.GenreForm{Name: in})

	require.Len(t, errs, 1)
	assert.Equal(t, "name", errs[0].Field)
	assert.Equal(t, "name must be at most 100 characters", errs[0].Message)
	assert.Equal(t, in, out.Name, "unescaped input is handed back")
}

func TestGenre_EscapedValueAtLimit(t *testing.T) {
	t.Parallel()

	out, errs := Genre(model.GenreForm{Name: strings.Repeat("&", 20)})

	require.Empty(t, errs)
	assert.Len(t, out.Name, 100)
}

func TestBook_TitleMaxLengthAppliesAfterEscaping(t *testing.T) {
	t.Parallel()

	_, errs := Book(model.BookForm{
		Title:   strings.Repeat("<", 51),
		Summary: "s",
		ISBN:    "978-0",
	})

	require.Len(t, errs, 1)
	assert.Equal(t, "title", errs[0].Field)
}

func TestBook_MissingFields(t *testing.T) {
	t.Parallel()

	_, errs := Book(model.BookForm{Title: " ", Summary: "", ISBN: "123"})

	require.Len(t, errs, 2)
	fields := []string{errs[0].Field, errs[1].Field}
	assert.ElementsMatch(t, []string{"title", "summary"}, fields)
	for _, e := range errs {
		assert.NotEmpty(t, e.Message)
	}
}

func TestBook_ValidKeepsRefs(t *testing.T) {
	t.Parallel()

	out, errs := Book(model.BookForm{
		Title:   "Dune",
		Summary: "Spice & sand",
		ISBN:    "978-0441013593",
		Genre:   " g1 ",
	})

	require.Empty(t, errs)
	assert.Equal(t, "Spice &amp; sand", out.Summary)
	assert.Equal(t, "g1", out.Genre)
	assert.Empty(t, out.Author)
}

func TestAuthor_Valid(t *testing.T) {
	t.Parallel()

	out, errs := Author(model.AuthorForm{
		FirstName:   "Frank",
		FamilyName:  "Herbert",
		DateOfBirth: "1920-10-08",
		DateOfDeath: "1986-02-11",
	})

	require.Empty(t, errs)
	assert.Equal(t, "Herbert", out.FamilyName)
}

func TestAuthor_BadDate(t *testing.T) {
	t.Parallel()

	_, errs := Author(model.AuthorForm{FirstName: "A", FamilyName: "B", DateOfBirth: "08/10/1920"})

	require.Len(t, errs, 1)
	assert.Equal(t, "date_of_birth", errs[0].Field)
	assert.Equal(t, "Invalid date of birth", errs[0].Message)
}

func TestAuthor_DeathBeforeBirth(t *testing.T) {
	t.Parallel()

	_, errs := Author(model.AuthorForm{
		FirstName:   "A",
		FamilyName:  "B",
		DateOfBirth: "1990-01-01",
		DateOfDeath: "1980-01-01",
	})

	require.Len(t, errs, 1)
	assert.Equal(t, "date_of_death", errs[0].Field)
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	d, err := ParseDate("")
	require.NoError(t, err)
	assert.Nil(t, d)

	d, err = ParseDate("2001-02-03")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, 2001, d.Year())

	_, err = ParseDate("nope")
	assert.Error(t, err)
}
