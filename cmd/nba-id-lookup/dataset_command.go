package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/nba-id-lookup/internal/directory/nbastats"
	"github.com/preston-bernstein/nba-id-lookup/internal/directory/static"
)

const defaultDatasetPath = "nba_players.json"

func newDatasetCommand() *cobra.Command {
	var outputPath string
	var season string
	var baseURL string

	cmd := &cobra.Command{
		Use:         "dataset",
		Short:       "Download the full NBA player list for the static directory",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			client := nbastats.NewClient(nbastats.Config{BaseURL: baseURL, Season: season})
			list, err := client.FetchPlayers(cmd.Context())
			if err != nil {
				return err
			}
			if err := static.Save(outputPath, list); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d players written to %s\nUse it with --dataset %s or DIRECTORY_DATASET=%s\n",
				len(list), outputPath, outputPath, outputPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&outputPath, "output", defaultDatasetPath, "Dataset file to write (.json, .yaml or .yml)")
	cmd.Flags().StringVar(&season, "season", "", "Season sent to stats.nba.com, e.g. 2024-25")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "stats.nba.com API base URL")
	_ = cmd.Flags().MarkHidden("base-url")
	return cmd
}
