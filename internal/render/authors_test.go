// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/writer/pkg/types"
)

func testAuthors(n int) []types.AuthorEntry {
	authors := make([]types.AuthorEntry, n)
	for i := range authors {
		authors[i] = types.AuthorEntry{
			Name:         fmt.Sprintf("Author %d", i+1),
			Department:   "Dept",
			Organization: "Org",
			City:         "City",
			Country:      "Country",
			Email:        fmt.Sprintf("a%d@example.com", i+1),
		}
	}
	return authors
}

func TestRenderAuthorsLinear(t *testing.T) {
	t.Run("no authors emits nothing", func(t *testing.T) {
		got, err := RenderAuthorsLinear(nil)
		require.NoError(t, err)
		assert.Equal(t, "", got)
	})

	t.Run("single author", func(t *testing.T) {
		got, err := RenderAuthorsLinear([]types.AuthorEntry{{
			Name: "Ada Lovelace", Department: "Mathematics", Organization: "Analytical Society",
			City: "London", Country: "UK", Email: "ada@example.com",
		}})
		require.NoError(t, err)
		want := "\\author{\\IEEEauthorblockN{1\\textsuperscript{1st} Ada Lovelace}\n" +
			"\\IEEEauthorblockA{\\textit{Mathematics} \\\\\n" +
			"\\textit{Analytical Society}\\\\\n" +
			"London, UK \\\\\n" +
			"ada@example.com}\n}"
		assert.Equal(t, want, got)
	})

	t.Run("ordinals and separators", func(t *testing.T) {
		got, err := RenderAuthorsLinear(testAuthors(MaxAuthors))
		require.NoError(t, err)
		for i, ord := range []string{"1st", "2nd", "3rd", "4th", "5th", "6th"} {
			assert.Contains(t, got, fmt.Sprintf("{%d\\textsuperscript{%s} Author %d}", i+1, ord, i+1))
		}
		assert.Equal(t, MaxAuthors-1, strings.Count(got, "\n\\and\n"))
		assert.Less(t, strings.Index(got, "Author 1"), strings.Index(got, "Author 2"))
	})

	t.Run("too many authors", func(t *testing.T) {
		_, err := RenderAuthorsLinear(testAuthors(MaxAuthors + 1))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrValidation))
	})
}

func TestRenderAuthorsGrid(t *testing.T) {
	t.Run("no authors is a validation error", func(t *testing.T) {
		_, err := RenderAuthorsGrid(nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrValidation))

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "authors", verr.Section)
		assert.Equal(t, 0, verr.Count)
	})

	t.Run("four authors make two rows with two padded cells", func(t *testing.T) {
		got, err := RenderAuthorsGrid(testAuthors(4))
		require.NoError(t, err)

		require.True(t, strings.HasPrefix(got, `\author{`))
		require.True(t, strings.HasSuffix(got, "\n}"))
		body := strings.TrimSuffix(strings.TrimPrefix(got, `\author{`), "\n}")

		rows := strings.Split(body, "\n\\\\[1em]\n")
		require.Len(t, rows, 2)
		assert.Equal(t, 0, strings.Count(rows[0], emptyCell))
		assert.Equal(t, 2, strings.Count(rows[1], emptyCell))
		assert.Contains(t, rows[1], "Author 4")

		for _, row := range rows {
			assert.Equal(t, GridColumns, len(strings.Split(row, ` \hfill `)))
		}
	})

	t.Run("single author pads the rest of the grid", func(t *testing.T) {
		got, err := RenderAuthorsGrid(testAuthors(1))
		require.NoError(t, err)
		assert.Equal(t, MaxAuthors-1, strings.Count(got, emptyCell))
		assert.Contains(t, got, "\\textbf{Author 1}\\\\\n")
		assert.Contains(t, got, "City, Country\\\\\na1@example.com\n\\end{minipage}")
	})

	t.Run("full grid has no padding", func(t *testing.T) {
		got, err := RenderAuthorsGrid(testAuthors(MaxAuthors))
		require.NoError(t, err)
		assert.Equal(t, 0, strings.Count(got, emptyCell))
		assert.Equal(t, MaxAuthors, strings.Count(got, `\centering`))
	})

	t.Run("too many authors", func(t *testing.T) {
		_, err := RenderAuthorsGrid(testAuthors(MaxAuthors + 1))
		assert.ErrorIs(t, err, ErrValidation)
	})
}
