package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaylistMatch_EmptyIsNone(t *testing.T) {
	m := PlaylistMatch("")
	assert.Equal(t, MatchNone, m.Kind)
	assert.False(t, m.Found())
}

func TestVideoMatch_UsesWatchURL(t *testing.T) {
	m := VideoMatch(YouTubeVideo{VideoID: "abc123"})
	assert.Equal(t, MatchVideo, m.Kind)
	assert.Equal(t, "https://www.youtube.com/watch?v=abc123", m.URL)
	assert.Equal(t, "abc123", m.Video.VideoID)
	assert.True(t, m.Found())
}

func TestSettings_Masked(t *testing.T) {
	s := Settings{YouTubeAPIKey: "AIzaSyD-secret-1234", YouTubePlaylistURL: "https://www.youtube.com/playlist?list=PL1"}
	m := s.Masked()
	assert.Equal(t, "***************1234", m.YouTubeAPIKey)
	assert.Equal(t, s.YouTubePlaylistURL, m.YouTubePlaylistURL)

	assert.Equal(t, "****", Settings{YouTubeAPIKey: "abc"}.Masked().YouTubeAPIKey)
	assert.Equal(t, "", Settings{}.Masked().YouTubeAPIKey)
}
