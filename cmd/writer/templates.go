// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/writer/internal/templates"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the available templates",
	Long: `Templates lists the .txt and .tex files in the templates directory,
numbered in name order. The numbers match the keys served by the HTTP API.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := templates.List(cfg.TemplatesDir)
		if err != nil {
			return err
		}

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(templates.Numbered(names))
		}
		for i, n := range names {
			fmt.Printf("%d. %s\n", i+1, n)
		}
		return nil
	},
}

func init() {
	templatesCmd.Flags().Bool("json", false, "output the listing as JSON")
	rootCmd.AddCommand(templatesCmd)
}
