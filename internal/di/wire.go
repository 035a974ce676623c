//go:build wireinject
// +build wireinject

package di

import (
	"WhaleEye/internal/usecase"
	"WhaleEye/pkg/config"
	"WhaleEye/pkg/server"

	"github.com/google/wire"
)

var analysisSet = wire.NewSet(
	ProvideLogger,
	ProvideMetrics,
	ProvideQuotaGuard,
	ProvideWhaleAnalyzer,
	ProvideNewsAnalyst,
	ProvideEventPublisher,
	ProvideOrchestrator,
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, func(), error) {
	wire.Build(
		analysisSet,

		// HTTP
		ProvideAnalysisHandler,
		ProvideHTTPServer,

		// Application server
		ProvideApp,
	)
	return nil, nil, nil
}

// InitializeOrchestrator wires the orchestrator alone for one-shot CLI use.
func InitializeOrchestrator(cfg *config.Config) (*usecase.Orchestrator, func(), error) {
	wire.Build(analysisSet)
	return nil, nil, nil
}
