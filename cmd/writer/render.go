// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/writer/internal/assemble"
	"github.com/pdiddy/writer/internal/document"
)

var renderCmd = &cobra.Command{
	Use:   "render <data-file>",
	Short: "Render one document from a YAML or JSON data file",
	Long: `Render reads the payload for a template family from a data file
(.yaml, .yml, or .json), fills the template it names, and compiles the
result to PDF in the output directory.

With --dry-run only the .tex source is written, so templates can be
checked without a TeX installation.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	family, _ := cmd.Flags().GetString("family")
	template, _ := cmd.Flags().GetString("template")
	output, _ := cmd.Flags().GetString("output")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	doc, err := document.Load(args[0], family)
	if err != nil {
		return err
	}

	svc, cleanup, err := newService(cmd.Context(), dryRun)
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := svc.Generate(cmd.Context(), assemble.Request{
		Family:   family,
		Document: doc,
		Template: template,
		Output:   output,
		DryRun:   dryRun,
	})
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	printOutcome(out)
	return nil
}

func printOutcome(out assemble.Outcome) {
	if out.DryRun {
		fmt.Printf("LaTeX written: %s\n", out.TeXPath)
	} else {
		fmt.Printf("PDF generated successfully: %s\n", out.PDFPath)
	}
	for _, s := range out.Fallbacks {
		fmt.Fprintf(os.Stderr, "warning: %s section anchor not found in %s; inserted at fallback position\n", s, out.Template)
	}
}

func init() {
	renderCmd.Flags().String("family", "resume", "template family: resume, report, report-grid, or letter")
	renderCmd.Flags().String("template", "", "template file name (overrides the data file)")
	renderCmd.Flags().String("output", "", "output file name without .pdf (overrides the data file)")
	renderCmd.Flags().Bool("dry-run", false, "write the .tex source without compiling")
	renderCmd.Flags().Bool("json", false, "print the outcome as JSON")

	rootCmd.AddCommand(renderCmd)
}
