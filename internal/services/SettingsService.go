package services

import (
	"context"
	"fmt"

	"contesthub/internal/models"
	"contesthub/internal/providers"
	"contesthub/internal/storage/interfaces"
	"contesthub/internal/structures"
	"contesthub/internal/youtube"
)

const (
	settingYouTubeAPIKey      = "youtube_api_key"
	settingYouTubePlaylistURL = "youtube_playlist_url"
)

type SettingsServiceInterface interface {
	youtube.CredentialsInterface
	PlatformPlaylist(platform models.Platform) string
	PlaylistFor(ctx context.Context, platform models.Platform) string
	Get(ctx context.Context) models.Settings
	Save(ctx context.Context, settings models.Settings) error
}

// SettingsService resolves YouTube credentials on every call. Values saved
// in the store take precedence over the config file.
type SettingsService struct {
	conf   *structures.Config
	store  interfaces.KeyValueStore
	logger providers.Logger
}

func NewSettingsService(conf *structures.Config, store interfaces.KeyValueStore, logger providers.Logger) SettingsServiceInterface {
	return &SettingsService{conf: conf, store: store, logger: logger}
}

func (s *SettingsService) YouTubeAPIKey(ctx context.Context) string {
	return s.lookup(ctx, settingYouTubeAPIKey, s.conf.YouTube.APIKey)
}

func (s *SettingsService) DefaultPlaylistURL(ctx context.Context) string {
	return s.lookup(ctx, settingYouTubePlaylistURL, s.conf.YouTube.PlaylistURL)
}

// PlatformPlaylist returns the solution playlist configured for platform, if any.
func (s *SettingsService) PlatformPlaylist(platform models.Platform) string {
	return s.conf.YouTube.Playlists[string(platform)]
}

// PlaylistFor prefers the platform's configured playlist over the default one.
func (s *SettingsService) PlaylistFor(ctx context.Context, platform models.Platform) string {
	if url := s.PlatformPlaylist(platform); url != "" {
		return url
	}
	return s.DefaultPlaylistURL(ctx)
}

func (s *SettingsService) Get(ctx context.Context) models.Settings {
	return models.Settings{
		YouTubeAPIKey:      s.YouTubeAPIKey(ctx),
		YouTubePlaylistURL: s.DefaultPlaylistURL(ctx),
	}.Masked()
}

// Save stores non-empty fields and clears the override of empty ones. An API
// key equal to the masked current key is left untouched.
func (s *SettingsService) Save(ctx context.Context, settings models.Settings) error {
	if settings.YouTubePlaylistURL != "" && !youtube.ValidPlaylistURL(settings.YouTubePlaylistURL) {
		return fmt.Errorf("%w: %s", models.ErrInvalidPlaylistURL, settings.YouTubePlaylistURL)
	}

	writeKey := settings.YouTubeAPIKey == "" || settings.YouTubeAPIKey != s.Get(ctx).YouTubeAPIKey
	var prevKey string
	if writeKey {
		var err error
		if prevKey, _, err = s.store.Get(ctx, models.BucketSettings, settingYouTubeAPIKey); err != nil {
			return err
		}
		if err := s.put(ctx, settingYouTubeAPIKey, settings.YouTubeAPIKey); err != nil {
			return err
		}
	}
	if err := s.put(ctx, settingYouTubePlaylistURL, settings.YouTubePlaylistURL); err != nil {
		if writeKey {
			// the store has no transactions; put the previous key back
			if rbErr := s.put(ctx, settingYouTubeAPIKey, prevKey); rbErr != nil {
				s.logger.Errorf(providers.TypeApp, "Restoring API key after failed settings save: %v", rbErr)
			}
		}
		return err
	}
	s.logger.Infof(providers.TypeApp, "Settings updated")
	return nil
}

func (s *SettingsService) put(ctx context.Context, key, value string) error {
	if value == "" {
		return s.store.Remove(ctx, models.BucketSettings, key)
	}
	return s.store.Set(ctx, models.BucketSettings, key, value)
}

func (s *SettingsService) lookup(ctx context.Context, key, fallback string) string {
	v, ok, err := s.store.Get(ctx, models.BucketSettings, key)
	if err != nil {
		s.logger.Warnf(providers.TypeApp, "Reading setting %s failed, using config: %v", key, err)
		return fallback
	}
	if !ok || v == "" {
		return fallback
	}
	return v
}
