package youtube

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"contesthub/internal/models"
	"contesthub/internal/providers"
	"contesthub/internal/structures"

	json "github.com/goccy/go-json"
)

const (
	// MaxResults is the page size of the playlistItems endpoint. Only the
	// first page is requested.
	MaxResults = 50

	maxBodySize = 4 << 20
)

type FetcherInterface interface {
	FetchPlaylistVideos(ctx context.Context, playlistURL, apiKey string) ([]models.YouTubeVideo, error)
}

type playlistItemsResponse struct {
	NextPageToken string         `json:"nextPageToken"`
	Items         []playlistItem `json:"items"`
}

type playlistItem struct {
	Snippet struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		PublishedAt string `json:"publishedAt"`
		Thumbnails  struct {
			High    *thumbnail `json:"high"`
			Medium  *thumbnail `json:"medium"`
			Default *thumbnail `json:"default"`
		} `json:"thumbnails"`
		ResourceID struct {
			VideoID string `json:"videoId"`
		} `json:"resourceId"`
	} `json:"snippet"`
}

type thumbnail struct {
	URL string `json:"url"`
}

type apiErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

type PlaylistFetcher struct {
	client  *http.Client
	baseURL string
	timeout time.Duration
	logger  providers.Logger
	metrics providers.MetricsProviderInterface
}

func NewPlaylistFetcher(client *http.Client, conf *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface) FetcherInterface {
	return &PlaylistFetcher{
		client:  client,
		baseURL: strings.TrimRight(conf.YouTube.BaseURL, "/"),
		timeout: conf.YouTube.Timeout,
		logger:  logger,
		metrics: metrics,
	}
}

// FetchPlaylistVideos returns up to MaxResults videos of the playlist in
// upstream order.
func (f *PlaylistFetcher) FetchPlaylistVideos(ctx context.Context, playlistURL, apiKey string) ([]models.YouTubeVideo, error) {
	if playlistURL == "" {
		return nil, models.MissingInput("playlist url")
	}
	if apiKey == "" {
		return nil, models.MissingInput("YouTube API key")
	}
	playlistID, ok := ExtractPlaylistID(playlistURL)
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidPlaylistURL, playlistURL)
	}

	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	videos, err := f.fetch(ctx, playlistID, apiKey)
	if err != nil {
		f.metrics.IncVideoFetches("error")
		f.logger.Errorf(providers.TypeUpstream, "playlist %s: %v", playlistID, err)
		return nil, err
	}
	if len(videos) == 0 {
		f.metrics.IncVideoFetches("empty")
	} else {
		f.metrics.IncVideoFetches("ok")
	}
	return videos, nil
}

func (f *PlaylistFetcher) fetch(ctx context.Context, playlistID, apiKey string) ([]models.YouTubeVideo, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("maxResults", fmt.Sprintf("%d", MaxResults))
	params.Set("playlistId", playlistID)
	params.Set("key", apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"/playlistItems?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("youtube data API: build request: %w", withoutURL(err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &models.UpstreamError{Message: "youtube data API unreachable", Err: withoutURL(err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &models.UpstreamError{Message: "read playlist response", Err: withoutURL(err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr apiErrorResponse
		_ = json.Unmarshal(body, &apiErr)
		return nil, &models.UpstreamError{StatusCode: resp.StatusCode, Message: apiErr.Error.Message}
	}

	var page playlistItemsResponse
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, &models.UpstreamError{Message: "decode playlist response", Err: err}
	}
	if page.NextPageToken != "" {
		f.logger.Warnf(providers.TypeUpstream, "playlist %s has more than %d items, only the first page is used", playlistID, MaxResults)
	}

	videos := make([]models.YouTubeVideo, 0, len(page.Items))
	for _, item := range page.Items {
		videos = append(videos, toVideo(item, playlistID))
	}
	return videos, nil
}

// withoutURL drops the request URL from err. The URL carries the API key in
// its query string.
func withoutURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}

func toVideo(item playlistItem, playlistID string) models.YouTubeVideo {
	s := item.Snippet
	video := models.YouTubeVideo{
		VideoID:      s.ResourceID.VideoID,
		Title:        s.Title,
		Description:  s.Description,
		ThumbnailURL: pickThumbnail(s.Thumbnails.High, s.Thumbnails.Medium, s.Thumbnails.Default),
		PlaylistID:   playlistID,
	}
	if t, err := time.Parse(time.RFC3339, s.PublishedAt); err == nil {
		video.PublishedAt = t.UTC()
	}
	return video
}

// pickThumbnail returns the first non-empty URL in preference order.
func pickThumbnail(candidates ...*thumbnail) string {
	for _, c := range candidates {
		if c != nil && c.URL != "" {
			return c.URL
		}
	}
	return ""
}
