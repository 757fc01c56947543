package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"toolbox/internal/app"
	"toolbox/internal/domain"
	"toolbox/internal/infra/telemetry"
	"toolbox/internal/ui/shell"
)

func newShellCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Open the interactive workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(cmd.OutOrStdout()) {
				return domain.E(domain.CodeFailedPrecond, "cli.shell", "shell needs an interactive terminal", nil)
			}
			return opts.withApplication(cmd, telemetry.LogSourceShell, func(application *app.Application) error {
				return shell.Run(cmd.Context(), application.Workspace())
			})
		},
	}
}

func isTerminal(w any) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}
