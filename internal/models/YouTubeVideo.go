package models

import "time"

const WatchURLPrefix = "https://www.youtube.com/watch?v="

type YouTubeVideo struct {
	VideoID      string    `json:"video_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ThumbnailURL string    `json:"thumbnail_url"`
	PublishedAt  time.Time `json:"published_at"`
	PlaylistID   string    `json:"playlist_id"`
}

func (v *YouTubeVideo) WatchURL() string {
	return WatchURLPrefix + v.VideoID
}
