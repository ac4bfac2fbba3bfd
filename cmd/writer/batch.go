// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/writer/internal/document"
)

var batchCmd = &cobra.Command{
	Use:   "batch <jobs-file>",
	Short: "Render many documents listed in a batch file",
	Long: `Batch reads a YAML or JSON file listing jobs (family, data file, and
optional template and output overrides) and renders them concurrently.
Jobs are independent; a failing job is reported and the rest continue.

Example jobs file:

  jobs:
    - family: resume
      data: ada.yaml
      output: ada_cv
    - family: letter
      data: letters/acme.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		bf, err := document.LoadBatch(args[0])
		if err != nil {
			return err
		}

		svc, cleanup, err := newService(cmd.Context(), dryRun)
		if err != nil {
			return err
		}
		defer cleanup()

		fmt.Fprintf(os.Stdout, "Rendering %d document(s)\n", len(bf.Jobs))
		result := svc.Batch(cmd.Context(), bf.Jobs, viper.GetInt("concurrency"), dryRun, os.Stdout)
		fmt.Fprintf(os.Stdout, "\n%d succeeded, %d failed (%d total)\n", result.Succeeded, result.Failed, result.Total())
		if result.HasFailures() {
			return fmt.Errorf("%d document(s) failed", result.Failed)
		}
		return nil
	},
}

func init() {
	batchCmd.Flags().Int("concurrency", 0, "documents rendered in parallel (default from config)")
	batchCmd.Flags().Bool("dry-run", false, "write .tex sources without compiling")
	_ = viper.BindPFlag("concurrency", batchCmd.Flags().Lookup("concurrency"))

	rootCmd.AddCommand(batchCmd)
}
