package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"toolbox/internal/app"
)

func newVersionCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), map[string]string{
					"version": app.Version,
					"build":   app.Build,
					"go":      runtime.Version(),
				})
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "toolbox %s (%s, %s)\n", app.Version, app.Build, runtime.Version())
			return err
		},
	}
}
