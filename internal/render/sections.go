// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"strings"

	"github.com/pdiddy/writer/pkg/types"
)

// Layout commands defined by the resume template preamble.
const (
	subHeadingListStart = `\resumeSubHeadingListStart`
	subHeadingListEnd   = `\resumeSubHeadingListEnd`
	itemListStart       = `\resumeItemListStart`
	itemListEnd         = `\resumeItemListEnd`
)

// wrapList joins bodies between an opening and closing list command. An
// empty list still yields both commands so the layout stays paired.
func wrapList(indent string, bodies []string) string {
	start := indent + subHeadingListStart
	end := indent + subHeadingListEnd
	if len(bodies) == 0 {
		return start + "\n" + end
	}
	return start + "\n" + strings.Join(bodies, "\n") + "\n" + end
}

// itemList renders an entry's description lines, one \resumeItem per line,
// in input order.
func itemList(indent string, items []types.Item) string {
	var b strings.Builder
	b.WriteString(indent + itemListStart + "\n")
	for _, it := range items {
		fmt.Fprintf(&b, "%s  \\resumeItem{%s}\n", indent, it.Description)
	}
	b.WriteString(indent + itemListEnd)
	return b.String()
}

// RenderEducationSection renders the education list. Entries are emitted in
// the order given.
func RenderEducationSection(entries []types.EducationEntry) string {
	bodies := make([]string, 0, len(entries))
	for _, e := range entries {
		var b strings.Builder
		b.WriteString("    \\resumeEducation\n")
		fmt.Fprintf(&b, "      {%s}\n", e.Education)
		fmt.Fprintf(&b, "      {%s}\n", e.Location)
		fmt.Fprintf(&b, "      {%s}\n", e.Course)
		fmt.Fprintf(&b, "      {%s}\n", entryRange(e.StartMonth, e.StartYear, e.EndMonth, e.EndYear, e.IsPresent))
		fmt.Fprintf(&b, "      {%s}", e.Score)
		bodies = append(bodies, b.String())
	}
	return wrapList("", bodies)
}

// RenderExperienceSection renders the experience list with one item list per
// position.
func RenderExperienceSection(entries []types.ExperienceEntry) string {
	bodies := make([]string, 0, len(entries))
	for _, e := range entries {
		var b strings.Builder
		b.WriteString("    \\resumeSubheading\n")
		fmt.Fprintf(&b, "      {%s}{%s}\n", e.Position, entryRange(e.StartMonth, e.StartYear, e.EndMonth, e.EndYear, e.IsPresent))
		fmt.Fprintf(&b, "      {%s}{%s}\n", e.Company, e.Location)
		b.WriteString(itemList("      ", e.Items))
		bodies = append(bodies, b.String())
	}
	return wrapList("", bodies)
}

// RenderProjectSection renders the projects list. The project block sits
// one level deeper in the templates than the other sections.
func RenderProjectSection(entries []types.ProjectEntry) string {
	bodies := make([]string, 0, len(entries))
	for _, e := range entries {
		var b strings.Builder
		b.WriteString("      \\resumeProjectHeading\n")
		fmt.Fprintf(&b, "          {\\textbf{%s} $|$ \\emph{%s}}{%s}\n",
			e.Title, e.Tools, entryRange(e.StartMonth, e.StartYear, e.EndMonth, e.EndYear, e.IsPresent))
		b.WriteString(itemList("          ", e.Items))
		bodies = append(bodies, b.String())
	}
	return wrapList("    ", bodies)
}
