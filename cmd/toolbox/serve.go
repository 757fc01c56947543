package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"toolbox/internal/app"
	"toolbox/internal/infra/httpapi"
	"toolbox/internal/infra/telemetry"
)

func newServeCmd(opts *cliOptions) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the workspace as a local JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withApplication(cmd, telemetry.LogSourceAPI, func(application *app.Application) error {
				ctx := cmd.Context()
				cfg := application.Config()
				logger := application.Logger()

				if err := application.WatchConfig(ctx); err != nil {
					logger.Warn("config watcher disabled", zap.Error(err))
				}

				if cfg.Observability.MetricsEnabled {
					go func() {
						err := telemetry.StartHTTPServer(ctx, telemetry.HTTPServerOptions{
							Addr:          cfg.Observability.ListenAddress,
							EnableMetrics: true,
							EnableHealthz: true,
							Health:        application.Health(),
							Registry:      application.MetricsRegistry(),
						}, logger)
						if err != nil {
							logger.Error("observability server failed", zap.Error(err))
						}
					}()
				}

				listen := cfg.API.ListenAddress
				if addr != "" {
					listen = addr
				}
				server := httpapi.NewServer(httpapi.Options{
					Addr:      listen,
					Workspace: application.Workspace(),
					Health:    application.Health(),
					Gatherer:  application.MetricsRegistry(),
					Logger:    logger,
				})
				return server.Run(ctx)
			})
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides api.listenAddress)")
	return cmd
}
