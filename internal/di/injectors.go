//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"daddeck/internal"
	"daddeck/internal/catalog"
	"daddeck/internal/controllers"
	"daddeck/internal/migration"
	"daddeck/internal/providers"
	"daddeck/internal/services"
	"daddeck/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,
		providers.NewRateLimiter,

		catalog.New,
		catalog.NewGenerator,
		catalog.NewEventSchedule,
		services.NewCollectionService,
		services.NewWishlistService,
		services.NewTradeService,

		migration.NewZstdCompressor,
		migration.NewRegistry,
		migration.NewRunner,
		migration.NewCodec,
		migration.NewFacade,
		migration.NewFileManager,
		migration.NewScheduler,

		controllers.NewApiController,
		controllers.NewTradeController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
