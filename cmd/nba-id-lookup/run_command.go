package main

import (
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/nba-id-lookup/internal/config"
	"github.com/preston-bernstein/nba-id-lookup/internal/logging"
	"github.com/preston-bernstein/nba-id-lookup/internal/lookup"
	"github.com/preston-bernstein/nba-id-lookup/internal/report"
	"github.com/preston-bernstein/nba-id-lookup/internal/runner"
)

const serviceName = "nba-id-lookup"

type runOptions struct {
	input     string
	output    string
	directory string
	dataset   string
	table     bool
}

func newRunCommand(ctx *commandContext) *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Look up every name in the input file and write the report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd, ctx, opts)
		},
	}
	bindRunFlags(cmd, opts)
	return cmd
}

func bindRunFlags(cmd *cobra.Command, opts *runOptions) {
	cmd.Flags().StringVar(&opts.input, "input", "", "Names file, one per line (default "+config.DefaultInput+")")
	cmd.Flags().StringVar(&opts.output, "output", "", "Report file to write (default "+config.DefaultOutput+")")
	cmd.Flags().StringVar(&opts.directory, "directory", "", "Player directory: static (NBA.com ids from the player dataset) or balldontlie (only hits that carry nba_player_id)")
	cmd.Flags().StringVar(&opts.dataset, "dataset", "", "Player dataset file for the static directory (see the dataset command)")
	cmd.Flags().BoolVar(&opts.table, "table", false, "Print a summary table after the run")
}

// applyFlags layers explicitly set flags over the loaded configuration.
func (o *runOptions) applyFlags(cmd *cobra.Command, cfg config.Config) (config.Config, error) {
	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.InputPath = o.input
	}
	if flags.Changed("output") {
		cfg.OutputPath = o.output
	}
	if flags.Changed("directory") {
		cfg.Directory.Kind = strings.ToLower(strings.TrimSpace(o.directory))
	}
	if flags.Changed("dataset") {
		cfg.Directory.Dataset = o.dataset
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runLookup(cmd *cobra.Command, ctx *commandContext, opts *runOptions) error {
	loaded, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	cfg, err := opts.applyFlags(cmd, loaded)
	if err != nil {
		return err
	}

	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: serviceName,
		Version: appVersion,
		Output:  cmd.ErrOrStderr(),
	})

	out := cmd.OutOrStdout()
	progress := lookup.NewProgress(out, shouldColorize(out))

	var r *runner.Runner
	if opts.table {
		progress.WithSummary(func(summary report.Summary) string {
			return renderRunSummary(r.DirectoryName(), summary, r.Stats().LastCallLatency)
		})
	}

	r, err = runner.New(cfg, logger, progress)
	if err != nil {
		return err
	}
	_, err = r.Run(cmd.Context())
	return err
}

func renderRunSummary(directory string, summary report.Summary, lastLatency time.Duration) string {
	rows := []summaryRow{
		{"Directory", directory},
		{"Names", strconv.Itoa(summary.Total)},
		{"Matched", strconv.Itoa(summary.Matched)},
		{"Unmatched", strconv.Itoa(summary.Unmatched)},
		{"Shared ids", strconv.Itoa(len(summary.DuplicateIDs()))},
		{"Last lookup", lastLatency.Round(time.Millisecond).String()},
	}
	return renderSummaryTable("Metric", "Value", rows)
}
