package models

type Settings struct {
	YouTubeAPIKey      string `json:"youtube_api_key"`
	YouTubePlaylistURL string `json:"youtube_playlist_url"`
}

// Masked hides all but the last four characters of the API key.
func (s Settings) Masked() Settings {
	key := s.YouTubeAPIKey
	if len(key) > 4 {
		masked := make([]byte, len(key)-4)
		for i := range masked {
			masked[i] = '*'
		}
		key = string(masked) + key[len(key)-4:]
	} else if key != "" {
		key = "****"
	}
	return Settings{YouTubeAPIKey: key, YouTubePlaylistURL: s.YouTubePlaylistURL}
}
