// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/writer/internal/assemble"
	"github.com/pdiddy/writer/internal/prompt"
	"github.com/pdiddy/writer/internal/render"
	"github.com/pdiddy/writer/internal/templates"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Fill a template interactively",
	Long: `Prompt lists the templates, asks for the value of every placeholder
the chosen template contains, and compiles the result. A cover letter
body or report abstract is typed line by line and finished with a line
reading DONE; each non-blank line becomes a paragraph. Report families
then ask for up to six authors; a blank name ends the list.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("family")
		family, err := render.Lookup(name)
		if err != nil {
			return err
		}

		names, err := templates.List(cfg.TemplatesDir)
		if err != nil {
			return err
		}
		load := func(n string) (string, error) { return templates.Load(cfg.TemplatesDir, n) }

		m := prompt.New(family, names, load, assemble.DefaultOutput(name))
		res, err := prompt.Run(cmd.Context(), m, os.Stdin, os.Stdout)
		if errors.Is(err, prompt.ErrCanceled) {
			fmt.Fprintln(os.Stderr, "Canceled.")
			return nil
		}
		if err != nil {
			return err
		}

		doc, err := prompt.Document(name, res)
		if err != nil {
			return err
		}

		svc, cleanup, err := newService(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer cleanup()

		out, err := svc.Generate(cmd.Context(), assemble.Request{Family: name, Document: doc})
		if err != nil {
			return err
		}
		printOutcome(out)
		return nil
	},
}

func init() {
	promptCmd.Flags().String("family", "resume", "template family: resume, report, report-grid, or letter")
	rootCmd.AddCommand(promptCmd)
}
