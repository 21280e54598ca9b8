package youtube

import "regexp"

// playlistPatterns are tried in order; the first capture wins.
var playlistPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)youtube\.com/playlist\?list=([^&]+)`),
	regexp.MustCompile(`(?i)youtube\.com/watch\?v=[^&]+&list=([^&]+)`),
	regexp.MustCompile(`(?i)youtu\.be/[^&]+\?list=([^&]+)`),
}

// ExtractPlaylistID pulls the playlist identifier out of a playlist, watch or
// short link. Unrecognized input is reported with ok=false.
func ExtractPlaylistID(rawURL string) (string, bool) {
	if rawURL == "" {
		return "", false
	}
	for _, re := range playlistPatterns {
		if m := re.FindStringSubmatch(rawURL); len(m) == 2 && m[1] != "" {
			return m[1], true
		}
	}
	return "", false
}

// ValidPlaylistURL reports whether rawURL has a recognized playlist shape.
func ValidPlaylistURL(rawURL string) bool {
	_, ok := ExtractPlaylistID(rawURL)
	return ok
}
