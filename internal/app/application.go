package app

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"toolbox/internal/domain"
	"toolbox/internal/infra/config"
	"toolbox/internal/infra/kvstore"
	"toolbox/internal/infra/telemetry"
)

// Application wires the workspace and its supporting infrastructure.
type Application struct {
	configPath string
	config     domain.Config

	logger    *zap.Logger
	level     zap.AtomicLevel
	registry  *prometheus.Registry
	metrics   domain.Metrics
	health    *telemetry.HealthTracker
	store     *kvstore.BoltStore
	workspace *Workspace
}

// ApplicationOptions captures dependencies and settings for Application.
type ApplicationOptions struct {
	RunConfig RunConfig
	Logger    *zap.Logger
	Level     zap.AtomicLevel
	Registry  *prometheus.Registry
	Metrics   domain.Metrics
	Health    *telemetry.HealthTracker
	Store     *kvstore.BoltStore
	Workspace *Workspace
}

// NewApplication constructs the application runtime.
func NewApplication(opts ApplicationOptions) *Application {
	return &Application{
		configPath: opts.RunConfig.ConfigPath,
		config:     opts.RunConfig.Config,
		logger:     opts.Logger,
		level:      opts.Level,
		registry:   opts.Registry,
		metrics:    opts.Metrics,
		health:     opts.Health,
		store:      opts.Store,
		workspace:  opts.Workspace,
	}
}

func (a *Application) Workspace() *Workspace {
	return a.workspace
}

func (a *Application) Config() domain.Config {
	return a.config
}

func (a *Application) Logger() *zap.Logger {
	return a.logger
}

func (a *Application) MetricsRegistry() *prometheus.Registry {
	return a.registry
}

func (a *Application) Health() *telemetry.HealthTracker {
	return a.health
}

// WatchConfig reloads the config file on change and applies the settings
// that can change at runtime: log level and featured limit.
func (a *Application) WatchConfig(ctx context.Context) error {
	if a.configPath == "" {
		return nil
	}
	watcher := config.NewWatcher(config.NewLoader(a.logger), a.configPath, config.WatcherOptions{
		Logger:   a.logger,
		OnChange: a.applyConfig,
	})
	return watcher.Start(ctx)
}

func (a *Application) applyConfig(cfg domain.Config) {
	ApplyLogLevel(a.level, cfg.LogLevel)
	a.workspace.SetFeaturedLimit(cfg.FeaturedLimit)
}

// Close releases the local database.
func (a *Application) Close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}
