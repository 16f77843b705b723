package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/nba-id-lookup/internal/config"
	"github.com/preston-bernstein/nba-id-lookup/internal/report"
)

func newVerifyCommand() *cobra.Command {
	var reportPath string

	cmd := &cobra.Command{
		Use:         "verify",
		Short:       "Check a report and summarize its matches",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := report.Read(reportPath)
			if err != nil {
				return err
			}
			summary := report.Summarize(results)
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, renderVerifySummary(summary))
			for _, id := range summary.DuplicateIDs() {
				fmt.Fprintf(out, "warning: id %d assigned to %s\n", id, strings.Join(summary.Duplicates[id], ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&reportPath, "report", config.DefaultOutput, "Report file to verify")
	return cmd
}

func renderVerifySummary(summary report.Summary) string {
	rows := []summaryRow{
		{"Rows", strconv.Itoa(summary.Total)},
		{"Matched", strconv.Itoa(summary.Matched)},
		{"Unmatched", strconv.Itoa(summary.Unmatched)},
		{"Shared ids", strconv.Itoa(len(summary.DuplicateIDs()))},
	}
	return renderSummaryTable("Check", "Count", rows)
}
