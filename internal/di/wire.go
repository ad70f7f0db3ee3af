//go:build wireinject
// +build wireinject

package di

import (
	"RegimeEye/pkg/config"
	"RegimeEye/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure clients
		ProvideClickHouseClient,
		ProvideDocumentStore,
		ProvideCache,

		// Use cases
		ProvideRegimeService,
		ProvideBacktestService,
		ProvideScenarioService,

		// HTTP surface
		ProvideDashboardHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
