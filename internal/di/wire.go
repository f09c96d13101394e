//go:build wireinject
// +build wireinject

package di

import (
	"PriceScope/pkg/config"
	"PriceScope/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Observability
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure
		ProvidePriceSource,
		ProvideCache,

		// Use cases
		ProvideDetectors,
		ProvideAnalyzer,

		// HTTP surface
		ProvideAPIHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
