package models

type MatchKind string

const (
	MatchVideo    MatchKind = "video"
	MatchPlaylist MatchKind = "playlist"
	MatchNone     MatchKind = "none"
)

// MatchResult is the outcome of looking up a solution video: a specific
// video, the playlist as a whole, or nothing.
type MatchResult struct {
	Kind  MatchKind     `json:"kind"`
	URL   string        `json:"url,omitempty"`
	Video *YouTubeVideo `json:"video,omitempty"`
}

func NoMatch() MatchResult {
	return MatchResult{Kind: MatchNone}
}

// PlaylistMatch degrades to NoMatch when the playlist URL is empty.
func PlaylistMatch(playlistURL string) MatchResult {
	if playlistURL == "" {
		return NoMatch()
	}
	return MatchResult{Kind: MatchPlaylist, URL: playlistURL}
}

func VideoMatch(video YouTubeVideo) MatchResult {
	return MatchResult{Kind: MatchVideo, URL: video.WatchURL(), Video: &video}
}

func (m MatchResult) Found() bool {
	return m.Kind != MatchNone
}
