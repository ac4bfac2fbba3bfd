// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Item is one free-text line of an experience or project entry.
type Item struct {
	// Description is the line text. It is emitted verbatim into the
	// template; LaTeX meta-characters are not escaped.
	Description string `json:"description" yaml:"description"`
}

// Period is a month and year pair as typed by the user (e.g. "Sep", "2020").
type Period struct {
	Month string `json:"month" yaml:"month"`
	Year  string `json:"year" yaml:"year"`
}

// EducationEntry is one row of the education section.
type EducationEntry struct {
	Education  string `json:"education" yaml:"education"`
	Course     string `json:"course" yaml:"course"`
	Location   string `json:"location" yaml:"location"`
	StartMonth string `json:"startMonth" yaml:"start_month"`
	StartYear  string `json:"startYear" yaml:"start_year"`
	EndMonth   string `json:"endMonth" yaml:"end_month"`
	EndYear    string `json:"endYear" yaml:"end_year"`
	Score      string `json:"score" yaml:"score"`

	// IsPresent marks an ongoing entry; the end month and year are ignored.
	IsPresent bool `json:"isPresent" yaml:"is_present"`
}

// ExperienceEntry is one position in the experience section.
type ExperienceEntry struct {
	Position   string `json:"position" yaml:"position"`
	Company    string `json:"company" yaml:"company"`
	Location   string `json:"location" yaml:"location"`
	StartMonth string `json:"startMonth" yaml:"start_month"`
	StartYear  string `json:"startYear" yaml:"start_year"`
	EndMonth   string `json:"endMonth" yaml:"end_month"`
	EndYear    string `json:"endYear" yaml:"end_year"`
	IsPresent  bool   `json:"isPresent" yaml:"is_present"`
	Items      []Item `json:"items" yaml:"items"`
}

// ProjectEntry is one project in the projects section.
type ProjectEntry struct {
	Title      string `json:"title" yaml:"title"`
	Tools      string `json:"tools" yaml:"tools"`
	StartMonth string `json:"startMonth" yaml:"start_month"`
	StartYear  string `json:"startYear" yaml:"start_year"`
	EndMonth   string `json:"endMonth" yaml:"end_month"`
	EndYear    string `json:"endYear" yaml:"end_year"`
	IsPresent  bool   `json:"isPresent" yaml:"is_present"`
	Items      []Item `json:"items" yaml:"items"`
}

// AuthorEntry identifies one author of a report. Both author layouts
// consume this shape.
type AuthorEntry struct {
	Name         string `json:"name" yaml:"name"`
	Department   string `json:"department" yaml:"department"`
	Organization string `json:"organization" yaml:"organization"`
	City         string `json:"city" yaml:"city"`
	Country      string `json:"country" yaml:"country"`
	Email        string `json:"email" yaml:"email"`
}

// ResumeData is the payload for the resume family.
type ResumeData struct {
	TemplateName string `json:"template_name" yaml:"template_name"`

	// BasicInfo maps basic placeholder tokens (e.g. "Place_Holder_Name")
	// to their values. Keys outside the basic table are ignored.
	BasicInfo map[string]string `json:"basic_info" yaml:"basic_info"`

	Education  []EducationEntry  `json:"education_entries" yaml:"education_entries"`
	Experience []ExperienceEntry `json:"experience_entries" yaml:"experience_entries"`
	Projects   []ProjectEntry    `json:"project_entries" yaml:"project_entries"`

	OutputFilename string `json:"output_filename" yaml:"output_filename"`
}

// ReportData is the payload for the report families.
type ReportData struct {
	TemplateName string        `json:"template_name" yaml:"template_name"`
	Title        string        `json:"title" yaml:"title"`
	Abstract     string        `json:"abstract" yaml:"abstract"`
	IndexTerms   string        `json:"index_terms" yaml:"index_terms"`
	Introduction string        `json:"introduction" yaml:"introduction"`
	Authors      []AuthorEntry `json:"authors" yaml:"authors"`

	OutputFilename string `json:"output_filename" yaml:"output_filename"`
}

// LetterData is the payload for the cover letter family. Field names follow
// the letter form of the web client.
type LetterData struct {
	Name           string `json:"name" yaml:"name"`
	Address        string `json:"address" yaml:"address"`
	City           string `json:"city" yaml:"city"`
	Phone          string `json:"phone" yaml:"phone"`
	Email          string `json:"email" yaml:"email"`
	Recipient      string `json:"recipient" yaml:"recipient"`
	Company        string `json:"company" yaml:"company"`
	CompanyAddress string `json:"companyAddress" yaml:"company_address"`
	CompanyCity    string `json:"companyCity" yaml:"company_city"`
	Position       string `json:"position" yaml:"position"`
	Date           string `json:"date" yaml:"date"`
	Body           string `json:"body" yaml:"body"`

	// Template is the template file name.
	Template string `json:"template" yaml:"template"`

	OutputFilename string `json:"output_filename,omitempty" yaml:"output_filename,omitempty"`
}

// Document is the payload of one render. Exactly one field is set, matching
// the template family.
type Document struct {
	Resume *ResumeData `json:"resume,omitempty" yaml:"resume,omitempty"`
	Report *ReportData `json:"report,omitempty" yaml:"report,omitempty"`
	Letter *LetterData `json:"letter,omitempty" yaml:"letter,omitempty"`
}

// TemplateName returns the template file named by the payload.
func (d Document) TemplateName() string {
	switch {
	case d.Resume != nil:
		return d.Resume.TemplateName
	case d.Report != nil:
		return d.Report.TemplateName
	case d.Letter != nil:
		return d.Letter.Template
	}
	return ""
}

// OutputFilename returns the output name requested by the payload.
func (d Document) OutputFilename() string {
	switch {
	case d.Resume != nil:
		return d.Resume.OutputFilename
	case d.Report != nil:
		return d.Report.OutputFilename
	case d.Letter != nil:
		return d.Letter.OutputFilename
	}
	return ""
}

// BatchJob is one entry of a batch file.
type BatchJob struct {
	// Family is the template family of the document.
	Family string `json:"family" yaml:"family"`

	// Data is the path of the payload file, relative to the batch file.
	Data string `json:"data" yaml:"data"`

	// Template overrides the template named in the payload.
	Template string `json:"template,omitempty" yaml:"template,omitempty"`

	// Output overrides the output filename named in the payload.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
}

// BatchFile lists the documents rendered by one batch run.
type BatchFile struct {
	Jobs []BatchJob `json:"jobs" yaml:"jobs"`
}
