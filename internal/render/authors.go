// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"strconv"
	"strings"

	"github.com/pdiddy/writer/pkg/types"
)

const (
	// MaxAuthors is the number of authors a report template can hold.
	MaxAuthors = 6
	// GridColumns is the number of author cells per grid row.
	GridColumns = 3

	authorsSection = "authors"

	linearSeparator = "\n\\and\n"
	cellSeparator   = ` \hfill `
	rowSeparator    = "\n\\\\[1em]\n"

	minipageOpen  = `\begin{minipage}[t]{0.32\textwidth}`
	minipageClose = `\end{minipage}`
	emptyCell     = minipageOpen + minipageClose
)

var ordinals = [MaxAuthors]string{"1st", "2nd", "3rd", "4th", "5th", "6th"}

func authorDirective(body string) string {
	return `\author{` + body + "\n}"
}

// RenderAuthorsLinear renders one IEEE author block per author, numbered
// with ordinals and separated by \and. No authors yields an empty string so
// no \author directive is emitted.
func RenderAuthorsLinear(entries []types.AuthorEntry) (string, error) {
	if len(entries) == 0 {
		return "", nil
	}
	if len(entries) > MaxAuthors {
		return "", &ValidationError{Section: authorsSection, Count: len(entries), Max: MaxAuthors, Message: "too many authors"}
	}

	blocks := make([]string, len(entries))
	for i, a := range entries {
		var b strings.Builder
		b.WriteString(`\IEEEauthorblockN{` + strconv.Itoa(i+1) + `\textsuperscript{` + ordinals[i] + "} " + a.Name + "}\n")
		b.WriteString(`\IEEEauthorblockA{\textit{` + a.Department + `} \\` + "\n")
		b.WriteString(`\textit{` + a.Organization + `}\\` + "\n")
		b.WriteString(a.City + ", " + a.Country + ` \\` + "\n")
		b.WriteString(a.Email + "}")
		blocks[i] = b.String()
	}
	return authorDirective(strings.Join(blocks, linearSeparator)), nil
}

// RenderAuthorsGrid lays authors out as minipage cells, GridColumns per
// row. Cells after the last author are padded with empty minipages up to
// MaxAuthors so the grid stays rectangular. At least one author is required.
func RenderAuthorsGrid(entries []types.AuthorEntry) (string, error) {
	if len(entries) == 0 {
		return "", &ValidationError{Section: authorsSection, Count: 0, Message: "at least one author is required"}
	}
	if len(entries) > MaxAuthors {
		return "", &ValidationError{Section: authorsSection, Count: len(entries), Max: MaxAuthors, Message: "too many authors"}
	}

	cells := make([]string, MaxAuthors)
	for i := range cells {
		if i < len(entries) {
			cells[i] = gridCell(entries[i])
		} else {
			cells[i] = emptyCell
		}
	}

	rows := make([]string, 0, MaxAuthors/GridColumns)
	for start := 0; start < len(cells); start += GridColumns {
		rows = append(rows, strings.Join(cells[start:start+GridColumns], cellSeparator))
	}
	return authorDirective(strings.Join(rows, rowSeparator)), nil
}

func gridCell(a types.AuthorEntry) string {
	var b strings.Builder
	b.WriteString(minipageOpen + "\n")
	b.WriteString(`\centering` + "\n")
	b.WriteString(`\textbf{` + a.Name + `}\\` + "\n")
	b.WriteString(`\textit{` + a.Department + `}\\` + "\n")
	b.WriteString(`\textit{` + a.Organization + `}\\` + "\n")
	b.WriteString(a.City + ", " + a.Country + `\\` + "\n")
	b.WriteString(a.Email + "\n")
	b.WriteString(minipageClose)
	return b.String()
}
