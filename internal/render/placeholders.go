// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import "slices"

// Placeholder is a literal token in a template together with the label
// shown to the user when asking for its value.
type Placeholder struct {
	Token string `json:"token" yaml:"token"`
	Label string `json:"label" yaml:"label"`
}

// The tables below are fixed at process start and never mutated; accessors
// hand out copies. Tokens within one table must not be substrings of each
// other.

var basicPlaceholders = []Placeholder{
	{"Place_Holder_Name", "Name"},
	{"Place_Holder_contact", "Contact Number"},
	{"Place_Holder_Mail", "Email"},
	{"Place_Holder_linkedin", "LinkedIn Profile"},
	{"Place_Holder_github", "GitHub Profile"},
}

var educationPlaceholders = []Placeholder{
	{"PlaceHolderEducation", `\parbox{8cm}{Education Institute}`},
	{"PlaceHolderCourse", `\parbox{8cm}{Course Undertaken}`},
	{"PlaceHolderScore", `\parbox{8cm}{Percentage/GPA}`},
	{"PlaceHolderLocation1", `\parbox{8cm}{Location of Institute}`},
	{"PlaceHolderStartMonth", `\makebox[2cm][l]{Start Month}`},
	{"PlaceHolderStartYear", `\makebox[2cm][l]{Start Year}`},
	{"PlaceHolderEndMonth", `\makebox[2cm][l]{End Month}`},
	{"PlaceHolderEndYear", `\makebox[2cm][l]{End Year}`},
}

var experiencePlaceholders = []Placeholder{
	{"PlaceHolderExperiencePosition1", "Position Title"},
	{"PlaceHolderExperiencePositionCompany", "Company Name"},
	{"PlaceHolderExperiencePositionLocation", "Location"},
	{"PlaceHolderExperiencePositionStartMonth", "Start Month"},
	{"PlaceHolderExperiencePositionStartYear", "Start Year"},
	{"PlaceHolderExperiencePositionEndMonth", "End Month"},
	{"PlaceHolderExperiencePositionEndYear", "End Year"},
	{"PlaceHolderExpeienceItem1", "Experience Description"},
}

var projectPlaceholders = []Placeholder{
	{"PlaceHolderProjectTitle", "Project Title"},
	{"PlaceHolderProjectTool1", "Project Tools"},
	{"PlaceHolderProjectStartMonth", "Start Month"},
	{"PlaceHolderProjectStartYear", "Start Year"},
	{"PlaceHolderProjectEndMonth", "End Month"},
	{"PlaceHolderProjectEndYear", "End Year"},
	{"PlaceHolderProjectItem1", "Project Description"},
}

var reportPlaceholders = []Placeholder{
	{"PlaceHolderTitle", "Document Title"},
	{"PlaceHolderAbstract", "Abstract"},
	{"PlaceHolderIndexTerms", "Index Terms"},
	{"PlaceHolderIntroduction", "Introduction"},
}

// authorPlaceholders appear inside the example \author{...} block of report
// templates. The whole block is replaced, so they are never substituted
// one by one.
var authorPlaceholders = []Placeholder{
	{"PlaceHolderAuthorName", "Author Name"},
	{"PlaceHolderDepartmentName", "Department Name"},
	{"PlaceHolderOrganizationName", "Organization Name"},
	{"PlaceHolderCity", "City"},
	{"PlaceHolderCountry", "Country"},
	{"PlaceHolderEmail", "Email Address"},
}

var letterPlaceholders = []Placeholder{
	{"PlaceHolderName", "Full name"},
	{"PlaceHolderAddress", "Street address"},
	{"PlaceHolderCityStateZip", "City, state, and ZIP"},
	{"PlaceHolderPhone", "Phone number"},
	{"PlaceHolderEmail", "Email address"},
	{"PlaceHolderHiringManagerName", "Hiring manager's name"},
	{"PlaceHolderCompanyName", "Company name"},
	{"PlaceHolderCompanyAddress", "Company address"},
	{"PlaceHolderCompanyCityStateZip", "Company city, state, and ZIP"},
	{"PlaceHolderPositionTitle", "Position title"},
	{"PlaceHolderDate", "Date (e.g., January 15, 2025)"},
	{"PlaceHolderBody", "Cover letter body"},
}

// BasicPlaceholders returns the resume basic-info table.
func BasicPlaceholders() []Placeholder { return slices.Clone(basicPlaceholders) }

// EducationPlaceholders returns the tokens of the example education block.
func EducationPlaceholders() []Placeholder { return slices.Clone(educationPlaceholders) }

// ExperiencePlaceholders returns the tokens of the example experience block.
func ExperiencePlaceholders() []Placeholder { return slices.Clone(experiencePlaceholders) }

// ProjectPlaceholders returns the tokens of the example project block.
func ProjectPlaceholders() []Placeholder { return slices.Clone(projectPlaceholders) }

// ReportPlaceholders returns the report scalar table.
func ReportPlaceholders() []Placeholder { return slices.Clone(reportPlaceholders) }

// AuthorPlaceholders returns the tokens of the example author block.
func AuthorPlaceholders() []Placeholder { return slices.Clone(authorPlaceholders) }

// LetterPlaceholders returns the cover letter scalar table.
func LetterPlaceholders() []Placeholder { return slices.Clone(letterPlaceholders) }

// LabelMap turns a table into token -> label, the shape served by the
// placeholders endpoints.
func LabelMap(table []Placeholder) map[string]string {
	m := make(map[string]string, len(table))
	for _, p := range table {
		m[p.Token] = p.Label
	}
	return m
}

func tokenSet(table []Placeholder) map[string]bool {
	m := make(map[string]bool, len(table))
	for _, p := range table {
		m[p.Token] = true
	}
	return m
}
