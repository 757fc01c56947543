package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"toolbox/internal/app"
	"toolbox/internal/infra/telemetry"
)

func newRecentCmd(opts *cliOptions) *cobra.Command {
	list := newRecentListCmd(opts)
	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Show or clear recently opened tools",
		Args:  cobra.NoArgs,
		RunE:  list.RunE,
	}
	cmd.AddCommand(list, newRecentClearCmd(opts))
	return cmd
}

func newRecentListCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recently opened tools, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withApplication(cmd, telemetry.LogSourceCLI, func(application *app.Application) error {
				return printDescriptors(cmd.OutOrStdout(), application.Workspace().Recent(), opts.jsonOutput)
			})
		},
	}
}

func newRecentClearCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Forget recently opened tools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withApplication(cmd, telemetry.LogSourceCLI, func(application *app.Application) error {
				if err := application.Workspace().ClearRecent(cmd.Context()); err != nil {
					return err
				}
				if opts.jsonOutput {
					return writeJSON(cmd.OutOrStdout(), map[string]any{"cleared": true})
				}
				fmt.Fprintln(cmd.OutOrStdout(), "recent tools cleared")
				return nil
			})
		},
	}
}
