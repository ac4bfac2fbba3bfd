// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/writer/internal/render"
)

var placeholdersCmd = &cobra.Command{
	Use:   "placeholders",
	Short: "Print the placeholder tokens each template family understands",
	Long: `Placeholders prints the tokens a template may contain, with the label
shown when asking for each value. Section tables (education, experience,
projects, authors) describe the example blocks that are replaced whole.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		family, _ := cmd.Flags().GetString("family")
		families := render.FamilyNames()
		if family != "" {
			if _, err := render.Lookup(family); err != nil {
				return err
			}
			families = []string{family}
		}

		tables := make(map[string]map[string][]render.Placeholder, len(families))
		for _, f := range families {
			tables[f] = placeholderTables(f)
		}

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(tables)
		}

		for _, f := range families {
			fmt.Printf("%s\n%s\n", f, strings.Repeat("=", len(f)))
			for _, name := range []string{"basic_info", "education", "experience", "project", "report_info", "author_info", "letter_info"} {
				table, ok := tables[f][name]
				if !ok {
					continue
				}
				fmt.Printf("\n%s:\n", name)
				for _, p := range table {
					fmt.Printf("  %-34s  %s\n", p.Token, p.Label)
				}
			}
			fmt.Println()
		}
		return nil
	},
}

// placeholderTables returns the tables relevant to family, keyed the way
// the HTTP API keys them.
func placeholderTables(family string) map[string][]render.Placeholder {
	switch family {
	case render.FamilyResume:
		return map[string][]render.Placeholder{
			"basic_info": render.BasicPlaceholders(),
			"education":  render.EducationPlaceholders(),
			"experience": render.ExperiencePlaceholders(),
			"project":    render.ProjectPlaceholders(),
		}
	case render.FamilyReport, render.FamilyReportGrid:
		return map[string][]render.Placeholder{
			"report_info": render.ReportPlaceholders(),
			"author_info": render.AuthorPlaceholders(),
		}
	case render.FamilyLetter:
		return map[string][]render.Placeholder{
			"letter_info": render.LetterPlaceholders(),
		}
	}
	return nil
}

func init() {
	placeholdersCmd.Flags().String("family", "", "template family: resume, report, report-grid, or letter (default: all)")
	placeholdersCmd.Flags().Bool("json", false, "output tables as JSON")
	rootCmd.AddCommand(placeholdersCmd)
}
