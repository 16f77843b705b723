package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	opts := &runOptions{}

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "nba-id-lookup",
		Short:         "Resolve player names to NBA player ids",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd, ctx, opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path (TOML)")
	bindRunFlags(rootCmd, opts)

	rootCmd.AddCommand(newRunCommand(ctx))
	rootCmd.AddCommand(newUnmatchedCommand())
	rootCmd.AddCommand(newVerifyCommand())
	rootCmd.AddCommand(newDatasetCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
