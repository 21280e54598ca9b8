package controllers

import (
	"fmt"
	"net/http"

	"contesthub/internal/models"
	"contesthub/internal/providers"
	"contesthub/internal/services"
)

type VideoController struct {
	logger providers.Logger
	videos services.VideoServiceInterface
}

func NewVideoController(logger providers.Logger, videos services.VideoServiceInterface) *VideoController {
	return &VideoController{logger: logger, videos: videos}
}

// ListVideos serves the first page of a playlist, filtered by q.
func (vc *VideoController) ListVideos(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	platform, err := parsePlatform(q.Get("platform"))
	if err != nil {
		writeError(w, r, vc.logger, err)
		return
	}

	videos, err := vc.videos.ListVideos(r.Context(), q.Get("playlist"), platform, q.Get("q"))
	if err != nil {
		writeError(w, r, vc.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, videos)
}

// MatchVideo resolves a solution link without saving it.
func (vc *VideoController) MatchVideo(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	platform, err := parsePlatform(q.Get("platform"))
	if err != nil {
		writeError(w, r, vc.logger, err)
		return
	}

	result := vc.videos.FindSolution(r.Context(), q.Get("name"), q.Get("playlist"), platform)
	if !result.Found() {
		writeError(w, r, vc.logger, fmt.Errorf("%w: %v", models.ErrNoMatch, errNoVideo))
		return
	}
	writeJSON(w, http.StatusOK, result)
}
