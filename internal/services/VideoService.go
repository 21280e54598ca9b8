package services

import (
	"context"
	"strings"

	"contesthub/internal/models"
	"contesthub/internal/providers"
	"contesthub/internal/youtube"
)

type VideoServiceInterface interface {
	ListVideos(ctx context.Context, playlistURL string, platform models.Platform, search string) ([]models.YouTubeVideo, error)
	FindSolution(ctx context.Context, contestName, playlistURL string, platform models.Platform) models.MatchResult
	MatchAndSave(ctx context.Context, contestID, contestName, playlistURL string, platform models.Platform) (models.MatchResult, error)
}

type VideoService struct {
	fetcher   youtube.FetcherInterface
	matcher   youtube.MatcherInterface
	settings  SettingsServiceInterface
	solutions SolutionServiceInterface
	logger    providers.Logger
	metrics   providers.MetricsProviderInterface
}

func NewVideoService(
	fetcher youtube.FetcherInterface,
	matcher youtube.MatcherInterface,
	settings SettingsServiceInterface,
	solutions SolutionServiceInterface,
	logger providers.Logger,
	metrics providers.MetricsProviderInterface,
) VideoServiceInterface {
	return &VideoService{
		fetcher:   fetcher,
		matcher:   matcher,
		settings:  settings,
		solutions: solutions,
		logger:    logger,
		metrics:   metrics,
	}
}

// ListVideos fetches the playlist chosen from the explicit url, the
// platform's playlist or the default one, in that order.
func (vs *VideoService) ListVideos(ctx context.Context, playlistURL string, platform models.Platform, search string) ([]models.YouTubeVideo, error) {
	if playlistURL == "" {
		if platform != "" {
			playlistURL = vs.settings.PlaylistFor(ctx, platform)
		} else {
			playlistURL = vs.settings.DefaultPlaylistURL(ctx)
		}
	}

	videos, err := vs.fetcher.FetchPlaylistVideos(ctx, playlistURL, vs.settings.YouTubeAPIKey(ctx))
	if err != nil {
		return nil, err
	}
	return FilterVideos(videos, search), nil
}

// FindSolution passes the platform playlist to the matcher as the supplied
// one, so it is also the fallback when the fetch fails.
func (vs *VideoService) FindSolution(ctx context.Context, contestName, playlistURL string, platform models.Platform) models.MatchResult {
	if playlistURL == "" {
		playlistURL = vs.settings.PlatformPlaylist(platform)
	}
	result := vs.matcher.FindVideoForContest(ctx, contestName, playlistURL)
	vs.metrics.IncMatches(string(result.Kind))
	return result
}

// MatchAndSave persists the link only when a specific video was found.
func (vs *VideoService) MatchAndSave(ctx context.Context, contestID, contestName, playlistURL string, platform models.Platform) (models.MatchResult, error) {
	if contestID == "" {
		return models.NoMatch(), models.MissingInput("contest id")
	}

	result := vs.FindSolution(ctx, contestName, playlistURL, platform)
	if result.Kind != models.MatchVideo {
		vs.logger.Infof(providers.TypeApp, "No video for %s (%s)", contestID, result.Kind)
		return result, nil
	}
	if err := vs.solutions.Save(ctx, contestID, result.URL); err != nil {
		return result, err
	}
	return result, nil
}

// FilterVideos keeps videos whose title or description contains search,
// ignoring case. An empty search keeps everything.
func FilterVideos(videos []models.YouTubeVideo, search string) []models.YouTubeVideo {
	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return videos
	}
	out := make([]models.YouTubeVideo, 0, len(videos))
	for _, v := range videos {
		if strings.Contains(strings.ToLower(v.Title), needle) || strings.Contains(strings.ToLower(v.Description), needle) {
			out = append(out, v)
		}
	}
	return out
}
