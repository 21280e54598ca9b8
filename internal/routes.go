package internal

import (
	"net/http"

	"contesthub/internal/controllers"
	"contesthub/internal/providers"
)

func InitRoutes(
	contestController *controllers.ContestController,
	solutionController *controllers.SolutionController,
	videoController *controllers.VideoController,
	settingsController *controllers.SettingsController,
) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/contests", http.HandlerFunc(contestController.GetContests))

	routers.Get("/solutions", http.HandlerFunc(solutionController.ListSolutions))
	routers.Post("/solutions", http.HandlerFunc(solutionController.SaveSolution))
	routers.Delete("/solutions", http.HandlerFunc(solutionController.RemoveSolution))
	routers.Post("/solutions/match", http.HandlerFunc(solutionController.MatchSolution))

	routers.Get("/videos", http.HandlerFunc(videoController.ListVideos))
	routers.Get("/videos/match", http.HandlerFunc(videoController.MatchVideo))

	routers.Get("/settings", http.HandlerFunc(settingsController.GetSettings))
	routers.Put("/settings", http.HandlerFunc(settingsController.PutSettings))
	return routers
}
