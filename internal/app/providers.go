package app

import (
	"context"
	"net/http"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"toolbox/internal/domain"
	"toolbox/internal/infra/kvstore"
	"toolbox/internal/infra/recent"
	"toolbox/internal/infra/registry"
	"toolbox/internal/infra/telemetry"
	"toolbox/internal/infra/tools"
)

// RunConfig is the resolved configuration handed to the injector.
type RunConfig struct {
	ConfigPath string
	Config     domain.Config
}

func NewConfig(run RunConfig) domain.Config {
	return run.Config
}

func NewMetricsRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))
	registry.MustRegister(prometheus.NewGoCollector())
	return registry
}

func NewMetrics(registry *prometheus.Registry) domain.Metrics {
	return telemetry.NewPrometheusMetrics(registry)
}

func NewHealthTracker() *telemetry.HealthTracker {
	return telemetry.NewHealthTracker()
}

// NewStore opens the local database inside the configured data directory.
// The returned cleanup closes it and releases the file lock.
func NewStore(cfg domain.Config, health *telemetry.HealthTracker, logger *zap.Logger) (*kvstore.BoltStore, func(), error) {
	path := filepath.Join(cfg.DataDir, domain.DefaultDataFileName)
	store, err := kvstore.OpenBolt(path)
	health.Set("store", err)
	if err != nil {
		return nil, nil, domain.E(domain.CodeUnavailable, "app.store", "open "+path, err)
	}
	logger.Debug("store opened", zap.String("path", path))
	cleanup := func() {
		if err := store.Close(); err != nil {
			logger.Warn("store close failed", zap.String("path", path), zap.Error(err))
		}
	}
	return store, cleanup, nil
}

// NewRecentTracker builds the tracker and loads the persisted list.
func NewRecentTracker(ctx context.Context, store domain.KeyValueStore, metrics domain.Metrics, logger *zap.Logger) *recent.Tracker {
	tracker := recent.NewTracker(store, recent.Options{
		Logger:  logger,
		Metrics: metrics,
	})
	tracker.Load(ctx)
	return tracker
}

func NewToolRegistry(metrics domain.Metrics, logger *zap.Logger) (*registry.Registry, error) {
	return registry.New(tools.Builtin(), registry.Options{
		Logger:  logger,
		Metrics: metrics,
	})
}

func NewToolDeps(cfg domain.Config) domain.ToolDeps {
	timeout := time.Duration(cfg.HTTPTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = domain.DefaultHTTPTimeoutSeconds * time.Second
	}
	return domain.ToolDeps{
		HTTP:      &http.Client{Timeout: timeout},
		Endpoints: cfg.Endpoints,
	}.WithDefaults()
}

func NewWorkspaceFromConfig(
	reg *registry.Registry,
	tracker *recent.Tracker,
	deps domain.ToolDeps,
	cfg domain.Config,
	metrics domain.Metrics,
	logger *zap.Logger,
) *Workspace {
	return NewWorkspace(WorkspaceOptions{
		Registry:      reg,
		Tracker:       tracker,
		Deps:          deps,
		FeaturedLimit: cfg.FeaturedLimit,
		Metrics:       metrics,
		Logger:        logger,
	})
}
