package youtube

import (
	"context"
	"strings"

	"contesthub/internal/models"
	"contesthub/internal/providers"
)

// CredentialsInterface supplies the API key and fallback playlist at call time.
type CredentialsInterface interface {
	YouTubeAPIKey(ctx context.Context) string
	DefaultPlaylistURL(ctx context.Context) string
}

type MatcherInterface interface {
	FindVideoForContest(ctx context.Context, contestName, playlistURL string) models.MatchResult
}

type Matcher struct {
	fetcher FetcherInterface
	creds   CredentialsInterface
	logger  providers.Logger
}

func NewMatcher(fetcher FetcherInterface, creds CredentialsInterface, logger providers.Logger) MatcherInterface {
	return &Matcher{fetcher: fetcher, creds: creds, logger: logger}
}

// FindVideoForContest never fails: it yields a video, the playlist, or nothing.
func (m *Matcher) FindVideoForContest(ctx context.Context, contestName, playlistURL string) models.MatchResult {
	if contestName == "" {
		return models.PlaylistMatch(playlistURL)
	}

	effective := playlistURL
	if effective == "" {
		effective = m.creds.DefaultPlaylistURL(ctx)
	}
	apiKey := m.creds.YouTubeAPIKey(ctx)
	if effective == "" || apiKey == "" {
		return models.NoMatch()
	}

	videos, err := m.fetcher.FetchPlaylistVideos(ctx, effective, apiKey)
	if err != nil {
		m.logger.Warnf(providers.TypeUpstream, "Matching %q fell back: %v", contestName, err)
		return models.PlaylistMatch(playlistURL)
	}

	if video, ok := MatchVideo(contestName, videos); ok {
		return models.VideoMatch(video)
	}
	return models.PlaylistMatch(effective)
}

// MatchVideo returns the first video whose title contains every
// whitespace-separated term of name, case-insensitively.
func MatchVideo(name string, videos []models.YouTubeVideo) (models.YouTubeVideo, bool) {
	terms := strings.Fields(strings.ToLower(name))
	for _, v := range videos {
		if titleHasAll(strings.ToLower(v.Title), terms) {
			return v, true
		}
	}
	return models.YouTubeVideo{}, false
}

func titleHasAll(title string, terms []string) bool {
	for _, term := range terms {
		if !strings.Contains(title, term) {
			return false
		}
	}
	return true
}
