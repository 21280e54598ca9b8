package controllers

import (
	"context"

	"contesthub/internal/models"
)

// --- local mocks (scoped to controller tests) ---

type mockAggregator struct {
	list *models.ContestList
	err  error
}

func (m *mockAggregator) FetchAllContests(_ context.Context) (*models.ContestList, error) {
	if m.err != nil {
		return nil, m.err
	}
	copied := *m.list
	return &copied, nil
}

type mockSolutions struct {
	links   map[string]string
	err     error
	saved   [][2]string
	removed []string
}

func (m *mockSolutions) GetAll(_ context.Context) (map[string]string, error) {
	return m.links, m.err
}

func (m *mockSolutions) Get(_ context.Context, id string) (string, bool, error) {
	v, ok := m.links[id]
	return v, ok, m.err
}

func (m *mockSolutions) Save(_ context.Context, id, url string) error {
	if id == "" {
		return models.MissingInput("contest id")
	}
	if url == "" {
		return models.MissingInput("solution url")
	}
	if m.err != nil {
		return m.err
	}
	m.saved = append(m.saved, [2]string{id, url})
	return nil
}

func (m *mockSolutions) Remove(_ context.Context, id string) error {
	if id == "" {
		return models.MissingInput("contest id")
	}
	m.removed = append(m.removed, id)
	return m.err
}

type videoCall struct {
	contestID, name, playlist, search string
	platform                          models.Platform
}

type mockVideos struct {
	videos []models.YouTubeVideo
	result models.MatchResult
	err    error
	calls  []videoCall
}

func (m *mockVideos) ListVideos(_ context.Context, playlistURL string, platform models.Platform, search string) ([]models.YouTubeVideo, error) {
	m.calls = append(m.calls, videoCall{playlist: playlistURL, platform: platform, search: search})
	return m.videos, m.err
}

func (m *mockVideos) FindSolution(_ context.Context, name, playlistURL string, platform models.Platform) models.MatchResult {
	m.calls = append(m.calls, videoCall{name: name, playlist: playlistURL, platform: platform})
	return m.result
}

func (m *mockVideos) MatchAndSave(_ context.Context, contestID, name, playlistURL string, platform models.Platform) (models.MatchResult, error) {
	m.calls = append(m.calls, videoCall{contestID: contestID, name: name, playlist: playlistURL, platform: platform})
	if contestID == "" {
		return models.NoMatch(), models.MissingInput("contest id")
	}
	return m.result, m.err
}

type mockSettings struct {
	current models.Settings
	saved   []models.Settings
	err     error
}

func (m *mockSettings) YouTubeAPIKey(context.Context) string { return m.current.YouTubeAPIKey }
func (m *mockSettings) DefaultPlaylistURL(context.Context) string {
	return m.current.YouTubePlaylistURL
}
func (m *mockSettings) PlatformPlaylist(models.Platform) string { return "" }
func (m *mockSettings) PlaylistFor(context.Context, models.Platform) string {
	return m.current.YouTubePlaylistURL
}
func (m *mockSettings) Get(context.Context) models.Settings { return m.current.Masked() }

func (m *mockSettings) Save(_ context.Context, s models.Settings) error {
	if m.err != nil {
		return m.err
	}
	m.saved = append(m.saved, s)
	m.current = s
	return nil
}
