package controllers

import (
	"fmt"
	"net/http"

	"contesthub/internal/models"
	"contesthub/internal/providers"
	"contesthub/internal/services"
)

type saveSolutionRequest struct {
	ContestID string `json:"contest_id"`
	URL       string `json:"url" validate:"fullUrl"`
}

type matchSolutionRequest struct {
	ContestID   string `json:"contest_id"`
	ContestName string `json:"contest_name"`
	Platform    string `json:"platform" validate:"in:codeforces,codechef,leetcode"`
	PlaylistURL string `json:"playlist_url" validate:"fullUrl"`
}

type SolutionController struct {
	logger    providers.Logger
	solutions services.SolutionServiceInterface
	videos    services.VideoServiceInterface
}

func NewSolutionController(logger providers.Logger, solutions services.SolutionServiceInterface, videos services.VideoServiceInterface) *SolutionController {
	return &SolutionController{logger: logger, solutions: solutions, videos: videos}
}

func (sc *SolutionController) ListSolutions(w http.ResponseWriter, r *http.Request) {
	links, err := sc.solutions.GetAll(r.Context())
	if err != nil {
		writeError(w, r, sc.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, links)
}

func (sc *SolutionController) SaveSolution(w http.ResponseWriter, r *http.Request) {
	var payload saveSolutionRequest
	if err := decodeAndValidate(w, r, &payload); err != nil {
		writeError(w, r, sc.logger, err)
		return
	}
	if err := sc.solutions.Save(r.Context(), payload.ContestID, payload.URL); err != nil {
		writeError(w, r, sc.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, payload)
}

func (sc *SolutionController) RemoveSolution(w http.ResponseWriter, r *http.Request) {
	if err := sc.solutions.Remove(r.Context(), r.URL.Query().Get("contest_id")); err != nil {
		writeError(w, r, sc.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MatchSolution looks up a video for the contest and saves it when one is found.
func (sc *SolutionController) MatchSolution(w http.ResponseWriter, r *http.Request) {
	var payload matchSolutionRequest
	if err := decodeAndValidate(w, r, &payload); err != nil {
		writeError(w, r, sc.logger, err)
		return
	}

	result, err := sc.videos.MatchAndSave(r.Context(), payload.ContestID, payload.ContestName,
		payload.PlaylistURL, models.Platform(payload.Platform))
	if err != nil {
		writeError(w, r, sc.logger, err)
		return
	}
	if !result.Found() {
		writeError(w, r, sc.logger, fmt.Errorf("%w: %v", models.ErrNoMatch, errNoVideo))
		return
	}
	writeJSON(w, http.StatusOK, result)
}
