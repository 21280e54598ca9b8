package controllers

import (
	"net/http"

	"contesthub/internal/models"
	"contesthub/internal/providers"
	"contesthub/internal/services"
)

type settingsRequest struct {
	YouTubeAPIKey      string `json:"youtube_api_key"`
	YouTubePlaylistURL string `json:"youtube_playlist_url" validate:"fullUrl"`
}

type SettingsController struct {
	logger   providers.Logger
	settings services.SettingsServiceInterface
}

func NewSettingsController(logger providers.Logger, settings services.SettingsServiceInterface) *SettingsController {
	return &SettingsController{logger: logger, settings: settings}
}

// GetSettings never returns the full API key.
func (sc *SettingsController) GetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, sc.settings.Get(r.Context()))
}

func (sc *SettingsController) PutSettings(w http.ResponseWriter, r *http.Request) {
	var payload settingsRequest
	if err := decodeAndValidate(w, r, &payload); err != nil {
		writeError(w, r, sc.logger, err)
		return
	}
	err := sc.settings.Save(r.Context(), models.Settings{
		YouTubeAPIKey:      payload.YouTubeAPIKey,
		YouTubePlaylistURL: payload.YouTubePlaylistURL,
	})
	if err != nil {
		writeError(w, r, sc.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, sc.settings.Get(r.Context()))
}
