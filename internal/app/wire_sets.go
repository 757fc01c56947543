//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"toolbox/internal/domain"
	"toolbox/internal/infra/kvstore"
)

var CoreInfraSet = wire.NewSet(
	NewConfig,
	NewLogging,
	NewLogger,
	NewLogLevel,
	NewMetricsRegistry,
	NewMetrics,
	NewHealthTracker,
	NewStore,
	wire.Bind(new(domain.KeyValueStore), new(*kvstore.BoltStore)),
)

var WorkspaceSet = wire.NewSet(
	NewToolRegistry,
	NewRecentTracker,
	NewToolDeps,
	NewWorkspaceFromConfig,
)

var AppSet = wire.NewSet(
	CoreInfraSet,
	WorkspaceSet,
	wire.Struct(new(ApplicationOptions), "*"),
	NewApplication,
)
