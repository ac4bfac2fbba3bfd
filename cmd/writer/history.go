// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/writer/internal/history"
	"github.com/pdiddy/writer/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past renders",
	Long: `History lists recorded renders, newest first, with their outcome and
any sections that were placed at a fallback position because the
template's anchor was missing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		q, err := historyQuery(cmd)
		if err != nil {
			return err
		}

		store, err := history.Open(cfg.History.Dir)
		if err != nil {
			return err
		}
		defer store.Close()

		if yamlOutput, _ := cmd.Flags().GetBool("yaml"); yamlOutput {
			return store.ExportYAML(cmd.Context(), os.Stdout, q)
		}

		records, err := store.List(cmd.Context(), q)
		if err != nil {
			return err
		}
		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			if records == nil {
				records = []types.RenderRecord{}
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(records)
		}
		return formatHistory(records)
	},
}

func historyQuery(cmd *cobra.Command) (history.Query, error) {
	family, _ := cmd.Flags().GetString("family")
	status, _ := cmd.Flags().GetString("status")
	since, _ := cmd.Flags().GetDuration("since")
	limit, _ := cmd.Flags().GetInt("limit")

	q := history.Query{Family: family, Status: types.RenderStatus(status), Limit: limit}
	switch q.Status {
	case "", types.RenderSucceeded, types.RenderFailed, types.RenderDryRun:
	default:
		return q, fmt.Errorf("unknown status %q: use %s, %s, or %s",
			status, types.RenderSucceeded, types.RenderFailed, types.RenderDryRun)
	}
	if since > 0 {
		q.Since = time.Now().Add(-since)
	}
	return q, nil
}

func formatHistory(records []types.RenderRecord) error {
	if len(records) == 0 {
		fmt.Println("No renders recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-5s  %-19s  %-11s  %-9s  %-24s  %s\n",
		"ID", "When", "Family", "Status", "Template", "Output")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))
	for _, r := range records {
		tmpl := r.Template
		if len(tmpl) > 24 {
			tmpl = tmpl[:21] + "..."
		}
		detail := r.Output
		if r.Error != "" {
			detail = r.Error
		}
		fmt.Fprintf(os.Stdout, "%-5d  %-19s  %-11s  %-9s  %-24s  %s\n",
			r.ID, r.CreatedAt.Local().Format("2006-01-02 15:04:05"), r.Family, r.Status, tmpl, detail)
		if len(r.Fallbacks) > 0 {
			fmt.Fprintf(os.Stdout, "       fallback: %s\n", strings.Join(r.Fallbacks, ", "))
		}
	}
	fmt.Fprintf(os.Stdout, "\n%d render(s)\n", len(records))
	return nil
}

func init() {
	historyCmd.Flags().Int("limit", 50, "maximum number of renders listed")
	historyCmd.Flags().String("family", "", "only renders of this family")
	historyCmd.Flags().String("status", "", "only renders with this status: succeeded, failed, dry-run")
	historyCmd.Flags().Duration("since", 0, "only renders newer than this (e.g. 24h)")
	historyCmd.Flags().Bool("json", false, "output as JSON")
	historyCmd.Flags().Bool("yaml", false, "export as YAML")

	rootCmd.AddCommand(historyCmd)
}
