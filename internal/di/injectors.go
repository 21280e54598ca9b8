//go:build wireinject
// +build wireinject

package di

import (
	"contesthub/internal"
	"contesthub/internal/controllers"
	"contesthub/internal/platforms"
	"contesthub/internal/providers"
	"contesthub/internal/services"
	"contesthub/internal/storage"
	"contesthub/internal/structures"
	"contesthub/internal/youtube"

	wire "github.com/google/wire"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,
		providers.NewHTTPClientProvider,

		storage.NewStoreProvider,
		platforms.NewAdapters,
		youtube.NewPlaylistFetcher,
		youtube.NewMatcher,
		wire.Bind(new(youtube.CredentialsInterface), new(services.SettingsServiceInterface)),

		services.NewSolutionService,
		services.NewSettingsService,
		services.NewVideoService,
		services.NewAggregatorService,

		controllers.NewContestController,
		controllers.NewSolutionController,
		controllers.NewVideoController,
		controllers.NewSettingsController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
