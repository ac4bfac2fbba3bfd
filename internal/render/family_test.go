// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/writer/pkg/types"
)

const resumeTemplate = "\\documentclass{article}\n" +
	"\\begin{document}\n" +
	"\\name{Place_Holder_Name} \\email{Place_Holder_Mail}\n" +
	"\\section{Education}\n" + educationExample + "\n" +
	"\\section{Experience}\n" + experienceExample + "\n" +
	"\\section{Projects}\n" + projectExample + "\n" +
	"\\end{document}\n"

const reportTemplate = "\\documentclass{IEEEtran}\n" +
	"\\title{PlaceHolderTitle}\n" +
	"\\author{\\IEEEauthorblockN{PlaceHolderAuthorName}\n\\IEEEauthorblockA{\\textit{PlaceHolderDepartmentName}}}\n" +
	"\\begin{document}\n" +
	"\\maketitle\n" +
	"\\begin{abstract}PlaceHolderAbstract\\end{abstract}\n" +
	"\\end{document}\n"

func resumeData() types.ResumeData {
	return types.ResumeData{
		BasicInfo: map[string]string{
			"Place_Holder_Name": "Ada Lovelace",
			"Place_Holder_Mail": "ada@example.com",
			"PlaceHolderBody":   "not a resume token",
		},
		Education: []types.EducationEntry{{
			Education: "MIT", Course: "CS", Location: "Boston", Score: "4.0",
			StartMonth: "Sep", StartYear: "2020", EndMonth: "Jun", EndYear: "2024",
		}},
		Experience: []types.ExperienceEntry{{
			Position: "Engineer", Company: "Acme", Location: "Remote",
			StartMonth: "Jan", StartYear: "2024", IsPresent: true,
			Items: []types.Item{{Description: "Shipped the renderer"}},
		}},
		Projects: []types.ProjectEntry{{
			Title: "Writer", Tools: "Go",
			StartMonth: "May", StartYear: "2024", EndMonth: "Aug", EndYear: "2024",
		}},
	}
}

func TestLookup(t *testing.T) {
	for _, name := range []string{FamilyResume, FamilyReport, FamilyReportGrid, FamilyLetter} {
		f, err := Lookup(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, f.Name())
	}

	_, err := Lookup("invoice")
	assert.Error(t, err)
	assert.Equal(t, []string{"letter", "report", "report-grid", "resume"}, FamilyNames())
}

func TestResumeRender(t *testing.T) {
	f, err := Lookup(FamilyResume)
	require.NoError(t, err)

	data := resumeData()
	got, err := f.Render(resumeTemplate, ResumeInput(data), Options{})
	require.NoError(t, err)

	assert.Empty(t, got.Fallbacks)
	assert.Contains(t, got.Source, `\name{Ada Lovelace} \email{ada@example.com}`)
	assert.Contains(t, got.Source, RenderEducationSection(data.Education))
	assert.Contains(t, got.Source, RenderExperienceSection(data.Experience))
	assert.Contains(t, got.Source, RenderProjectSection(data.Projects))
	assert.Contains(t, got.Source, "{Jan 2024 -- Present}")
	assert.NotContains(t, got.Source, "PlaceHolder")
	assert.NotContains(t, got.Source, "Place_Holder")

	edu := strings.Index(got.Source, `\section{Education}`)
	exp := strings.Index(got.Source, `\section{Experience}`)
	assert.Less(t, edu, strings.Index(got.Source, "{MIT}"))
	assert.Less(t, strings.Index(got.Source, "{MIT}"), exp)
	assert.True(t, strings.HasSuffix(got.Source, "\\end{document}\n"))
}

func TestResumeRenderFallback(t *testing.T) {
	f, err := Lookup(FamilyResume)
	require.NoError(t, err)

	// Reindented example blocks no longer match byte for byte.
	drifted := strings.ReplaceAll(resumeTemplate, "    \\resumeEducation", "  \\resumeEducation")

	t.Run("falls back before end of document", func(t *testing.T) {
		got, err := f.Render(drifted, ResumeInput(resumeData()), Options{})
		require.NoError(t, err)
		assert.Equal(t, []string{"education"}, got.Fallbacks)

		idx := strings.Index(got.Source, "{MIT}")
		require.GreaterOrEqual(t, idx, 0)
		assert.Less(t, strings.Index(got.Source, `\textbf{Writer}`), idx)
		assert.Contains(t, got.Source, "\\resumeSubHeadingListEnd\n\n\\end{document}")
	})

	t.Run("strict anchors refuse fallback", func(t *testing.T) {
		_, err := f.Render(drifted, ResumeInput(resumeData()), Options{StrictAnchors: true})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNoInsertionPoint))

		var nip *NoInsertionPointError
		require.True(t, errors.As(err, &nip))
		assert.Equal(t, "education", nip.Section)
	})
}

func TestReportRender(t *testing.T) {
	authors := []types.AuthorEntry{
		{Name: "Ada", Department: "Math", Organization: "Society", City: "London", Country: "UK", Email: "ada@example.com"},
		{Name: "Charles", Department: "Engines", Organization: "Society", City: "London", Country: "UK", Email: "cb@example.com"},
	}
	data := types.ReportData{Title: "Engines", Abstract: "We compute.", Authors: authors}

	t.Run("linear replaces the author block", func(t *testing.T) {
		f, err := Lookup(FamilyReport)
		require.NoError(t, err)

		got, err := f.Render(reportTemplate, ReportInput(data), Options{})
		require.NoError(t, err)

		want, err := RenderAuthorsLinear(authors)
		require.NoError(t, err)
		assert.Contains(t, got.Source, "\\title{Engines}\n"+want+"\n\\begin{document}")
		assert.Contains(t, got.Source, `\begin{abstract}We compute.\end{abstract}`)
		assert.NotContains(t, got.Source, "PlaceHolderAuthorName")
		assert.Equal(t, 1, strings.Count(got.Source, `\author{`))
		assert.Empty(t, got.Fallbacks)
	})

	t.Run("grid replaces the author block", func(t *testing.T) {
		f, err := Lookup(FamilyReportGrid)
		require.NoError(t, err)

		got, err := f.Render(reportTemplate, ReportInput(data), Options{})
		require.NoError(t, err)
		assert.Contains(t, got.Source, `\textbf{Charles}`)
		assert.Equal(t, 4, strings.Count(got.Source, emptyCell))
	})

	t.Run("grid without authors fails", func(t *testing.T) {
		f, err := Lookup(FamilyReportGrid)
		require.NoError(t, err)

		_, err = f.Render(reportTemplate, ReportInput(types.ReportData{Title: "T"}), Options{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrValidation))
	})

	t.Run("missing author block inserts before maketitle", func(t *testing.T) {
		f, err := Lookup(FamilyReport)
		require.NoError(t, err)

		tmpl := "\\title{PlaceHolderTitle}\n\\begin{document}\n\\maketitle\n\\end{document}\n"
		got, err := f.Render(tmpl, ReportInput(data), Options{})
		require.NoError(t, err)
		assert.Equal(t, []string{"authors"}, got.Fallbacks)
		assert.Contains(t, got.Source, "cb@example.com}\n}\n\n\\maketitle")
	})

	t.Run("unclosed author block is malformed", func(t *testing.T) {
		f, err := Lookup(FamilyReport)
		require.NoError(t, err)

		_, err = f.Render("\\author{Ada {\n\\maketitle\n", ReportInput(data), Options{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMalformedTemplate))
	})
}

func TestLetterRender(t *testing.T) {
	f, err := Lookup(FamilyLetter)
	require.NoError(t, err)

	tmpl := "PlaceHolderName\\\\PlaceHolderCompanyName\\\\PlaceHolderDate\n\nDear PlaceHolderHiringManagerName,\n\nPlaceHolderBody\n"
	got, err := f.Render(tmpl, LetterInput(types.LetterData{
		Name:      "Ada Lovelace",
		Company:   "Acme",
		Date:      "January 15, 2025",
		Recipient: "Ms. Byron",
		Body:      "First paragraph.\n\nSecond paragraph.",
	}), Options{})
	require.NoError(t, err)

	want := "Ada Lovelace\\\\Acme\\\\January 15, 2025\n\nDear Ms. Byron,\n\nFirst paragraph.\n\nSecond paragraph.\n"
	assert.Equal(t, want, got.Source)
	assert.Empty(t, got.Fallbacks)
}

func TestRenderIdempotent(t *testing.T) {
	f, err := Lookup(FamilyResume)
	require.NoError(t, err)

	in := ResumeInput(resumeData())
	first, err := f.Render(resumeTemplate, in, Options{})
	require.NoError(t, err)
	second, err := f.Render(resumeTemplate, in, Options{})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPlaceholderTablesHaveNoNestedTokens(t *testing.T) {
	tables := map[string][]Placeholder{
		"basic":      BasicPlaceholders(),
		"education":  EducationPlaceholders(),
		"experience": ExperiencePlaceholders(),
		"project":    ProjectPlaceholders(),
		"report":     ReportPlaceholders(),
		"author":     AuthorPlaceholders(),
		"letter":     LetterPlaceholders(),
	}
	for name, table := range tables {
		t.Run(name, func(t *testing.T) {
			require.NotEmpty(t, table)
			seen := map[string]bool{}
			for i, a := range table {
				assert.False(t, seen[a.Token], "duplicate token %s", a.Token)
				seen[a.Token] = true
				for j, b := range table {
					if i != j {
						assert.NotContains(t, b.Token, a.Token, "%s nests %s", b.Token, a.Token)
					}
				}
			}
		})
	}
}

func TestPlaceholderAccessorsCopy(t *testing.T) {
	table := BasicPlaceholders()
	table[0].Token = "mutated"
	assert.NotEqual(t, "mutated", BasicPlaceholders()[0].Token)

	labels := LabelMap(ReportPlaceholders())
	assert.Equal(t, "Abstract", labels["PlaceHolderAbstract"])
}
