// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"github.com/pdiddy/writer/pkg/types"
)

// Family names.
const (
	FamilyResume     = "resume"
	FamilyReport     = "report"
	FamilyReportGrid = "report-grid"
	FamilyLetter     = "letter"
)

// Fallback anchors used when a section's own anchor is absent.
const (
	endDocumentAnchor = `\end{document}`
	makeTitleAnchor   = `\maketitle`
	authorOpener      = `\author{`
)

// Example blocks shipped in the resume templates. They must match the
// template text exactly; see the resume template family.
const (
	educationExample = "\\resumeSubHeadingListStart\n" +
		"    \\resumeEducation\n" +
		"      {PlaceHolderEducation}\n" +
		"      {PlaceHolderLocation1}\n" +
		"      {PlaceHolderCourse}\n" +
		"      {PlaceHolderStartMonth PlaceHolderStartYear -- PlaceHolderEndMonth PlaceHolderEndYear}\n" +
		"      {PlaceHolderScore}\n" +
		"\\resumeSubHeadingListEnd"

	experienceExample = "  \\resumeSubHeadingListStart\n" +
		"    \\resumeSubheading\n" +
		"      {PlaceHolderExperiencePosition1}{PlaceHolderExperiencePositionStartMonth PlaceHolderExperiencePositionStartYear -- PlaceHolderExperiencePositionEndMonth PlaceHolderExperiencePositionStartYear}\n" +
		"      {PlaceHolderExperiencePositionCompany}{PlaceHolderExperiencePositionLocation}\n" +
		"      \\resumeItemListStart\n" +
		"        \\resumeItem{PlaceHolderExperienceItem1}\n" +
		"      \\resumeItemListEnd\n" +
		"  \\resumeSubHeadingListEnd"

	projectExample = "    \\resumeSubHeadingListStart\n" +
		"      \\resumeProjectHeading\n" +
		"          {\\textbf{PlaceHolderProjectTitle} $|$ \\emph{PlaceHolderProjectTool1}}{PlaceHolderProjectStartMonth PlaceHolderProjectStartYear -- PlaceHolderProjectEndMonth PlaceHolderProjectEndYear}\n" +
		"          \\resumeItemListStart\n" +
		"            \\resumeItem{PlaceHolderProjectItem1}\n" +
		"          \\resumeItemListEnd\n" +
		"    \\resumeSubHeadingListEnd"
)

// Input is the structured data of one render.
type Input struct {
	// Scalars maps placeholder tokens to replacement text. Tokens outside
	// the family's scalar table are dropped.
	Scalars map[string]string

	Education  []types.EducationEntry
	Experience []types.ExperienceEntry
	Projects   []types.ProjectEntry
	Authors    []types.AuthorEntry
}

// Options tunes a render.
type Options struct {
	// StrictAnchors fails a section whose anchor is missing instead of
	// inserting it before the family's fallback anchor.
	StrictAnchors bool
}

// Result is the rendered LaTeX source.
type Result struct {
	Source string

	// Fallbacks names the sections that were placed by fallback insertion.
	Fallbacks []string
}

// Section describes one repeatable section of a family.
type Section struct {
	Name     string
	Anchor   Anchor
	Fallback string

	generate func(Input) (string, error)
}

// Family is a group of templates sharing one placeholder table and one set
// of repeatable sections. Families are immutable.
type Family struct {
	name     string
	scalars  []Placeholder
	sections []Section
}

// Name returns the family name.
func (f *Family) Name() string { return f.name }

// Placeholders returns the family's scalar table.
func (f *Family) Placeholders() []Placeholder { return slices.Clone(f.scalars) }

// Sections returns the family's repeatable sections.
func (f *Family) Sections() []Section { return slices.Clone(f.sections) }

// Render substitutes scalars, then generates and splices each section in
// declaration order. It touches no shared state and may run concurrently.
func (f *Family) Render(template string, in Input, opts Options) (Result, error) {
	allowed := tokenSet(f.scalars)
	bindings := make(map[string]string, len(in.Scalars))
	for tok, val := range in.Scalars {
		if allowed[tok] {
			bindings[tok] = val
		}
	}
	out := SubstituteScalars(template, bindings)

	var fallbacks []string
	for _, s := range f.sections {
		fragment, err := s.generate(in)
		if err != nil {
			return Result{}, fmt.Errorf("generating %s section: %w", s.Name, err)
		}

		fallback := s.Fallback
		if opts.StrictAnchors {
			fallback = ""
		}
		spliced, placement, err := SpliceSection(out, fragment, s.Anchor, fallback)
		if err != nil {
			var nip *NoInsertionPointError
			if errors.As(err, &nip) {
				nip.Section = s.Name
			}
			return Result{}, fmt.Errorf("placing %s section: %w", s.Name, err)
		}
		if placement == PlacedFallback {
			fallbacks = append(fallbacks, s.Name)
		}
		out = spliced
	}

	return Result{Source: out, Fallbacks: fallbacks}, nil
}

var families = map[string]*Family{
	FamilyResume: {
		name:    FamilyResume,
		scalars: basicPlaceholders,
		sections: []Section{
			{
				Name:     "education",
				Anchor:   Anchor{Literal: educationExample},
				Fallback: endDocumentAnchor,
				generate: func(in Input) (string, error) { return RenderEducationSection(in.Education), nil },
			},
			{
				Name:     "experience",
				Anchor:   Anchor{Literal: experienceExample},
				Fallback: endDocumentAnchor,
				generate: func(in Input) (string, error) { return RenderExperienceSection(in.Experience), nil },
			},
			{
				Name:     "projects",
				Anchor:   Anchor{Literal: projectExample},
				Fallback: endDocumentAnchor,
				generate: func(in Input) (string, error) { return RenderProjectSection(in.Projects), nil },
			},
		},
	},
	FamilyReport: {
		name:    FamilyReport,
		scalars: reportPlaceholders,
		sections: []Section{{
			Name:     authorsSection,
			Anchor:   Anchor{Opener: authorOpener},
			Fallback: makeTitleAnchor,
			generate: func(in Input) (string, error) { return RenderAuthorsLinear(in.Authors) },
		}},
	},
	FamilyReportGrid: {
		name:    FamilyReportGrid,
		scalars: reportPlaceholders,
		sections: []Section{{
			Name:     authorsSection,
			Anchor:   Anchor{Opener: authorOpener},
			Fallback: makeTitleAnchor,
			generate: func(in Input) (string, error) { return RenderAuthorsGrid(in.Authors) },
		}},
	},
	FamilyLetter: {
		name:    FamilyLetter,
		scalars: letterPlaceholders,
	},
}

// Lookup returns the named family.
func Lookup(name string) (*Family, error) {
	f, ok := families[name]
	if !ok {
		return nil, fmt.Errorf("unknown template family %q: use one of %v", name, FamilyNames())
	}
	return f, nil
}

// FamilyNames returns the known family names, sorted.
func FamilyNames() []string {
	names := make([]string, 0, len(families))
	for n := range families {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ResumeInput maps a resume payload to render input.
func ResumeInput(d types.ResumeData) Input {
	return Input{
		Scalars:    d.BasicInfo,
		Education:  d.Education,
		Experience: d.Experience,
		Projects:   d.Projects,
	}
}

// ReportInput maps a report payload to render input.
func ReportInput(d types.ReportData) Input {
	return Input{
		Scalars: map[string]string{
			"PlaceHolderTitle":        d.Title,
			"PlaceHolderAbstract":     d.Abstract,
			"PlaceHolderIndexTerms":   d.IndexTerms,
			"PlaceHolderIntroduction": d.Introduction,
		},
		Authors: d.Authors,
	}
}

// LetterInput maps a cover letter payload to render input.
func LetterInput(d types.LetterData) Input {
	return Input{
		Scalars: map[string]string{
			"PlaceHolderName":                d.Name,
			"PlaceHolderAddress":             d.Address,
			"PlaceHolderCityStateZip":        d.City,
			"PlaceHolderPhone":               d.Phone,
			"PlaceHolderEmail":               d.Email,
			"PlaceHolderHiringManagerName":   d.Recipient,
			"PlaceHolderCompanyName":         d.Company,
			"PlaceHolderCompanyAddress":      d.CompanyAddress,
			"PlaceHolderCompanyCityStateZip": d.CompanyCity,
			"PlaceHolderPositionTitle":       d.Position,
			"PlaceHolderDate":                d.Date,
			"PlaceHolderBody":                d.Body,
		},
	}
}
