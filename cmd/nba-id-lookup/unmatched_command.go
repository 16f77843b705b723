package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/nba-id-lookup/internal/config"
	"github.com/preston-bernstein/nba-id-lookup/internal/report"
)

func newUnmatchedCommand() *cobra.Command {
	var reportPath string
	var outputPath string

	cmd := &cobra.Command{
		Use:         "unmatched",
		Short:       "Write the names a report could not resolve to a names file",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := report.Read(reportPath)
			if err != nil {
				return err
			}
			names := report.UnmatchedNames(results)
			if err := report.WriteNames(outputPath, names); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d unmatched names written to %s\n", len(names), outputPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&reportPath, "report", config.DefaultOutput, "Report file to read")
	cmd.Flags().StringVar(&outputPath, "output", config.DefaultInput, "Names file to write")
	return cmd
}
