//go:build wireinject
// +build wireinject

package di

import (
	"StorePulse/pkg/config"
	"StorePulse/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Ambient infrastructure
		ProvideLogger,
		ProvideCache,
		ProvideMetrics,

		// Repositories
		ProvideRuleCatalog,
		ProvideDatasetRepository,

		// Use cases
		ProvidePanelService,
		ProvideSession,

		// Transport
		ProvideRateLimiter,
		ProvidePanelsHandler,
		ProvideHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
