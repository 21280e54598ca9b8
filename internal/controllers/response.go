package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"contesthub/internal/models"
	"contesthub/internal/providers"

	json "github.com/goccy/go-json"
	"github.com/gookit/validate"
)

const maxRequestBodySize = 1 << 20 // 1 MB

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

var kindStatus = map[string]int{
	models.KindMissingInput:       http.StatusBadRequest,
	models.KindInvalidPlaylistURL: http.StatusBadRequest,
	models.KindInvalidInput:       http.StatusBadRequest,
	models.KindUpstream:           http.StatusBadGateway,
	models.KindAdapterFailure:     http.StatusBadGateway,
	models.KindNoMatch:            http.StatusNotFound,
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	gson, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

// writeError maps err to a status code and a JSON body naming its kind.
// Internal errors are logged and their text is not exposed.
func writeError(w http.ResponseWriter, r *http.Request, logger providers.Logger, err error) {
	kind := models.ErrorKind(err)
	status, ok := kindStatus[kind]
	msg := err.Error()
	if !ok {
		status = http.StatusInternalServerError
		msg = "Internal Server Error"
		logger.Errorf(providers.GetLogTypeByRequestType(r.Method), "%s %s: %v", r.Method, r.URL.Path, err)
	}
	writeJSON(w, status, errorResponse{Error: msg, Kind: kind})
}

// decodeAndValidate reads a JSON body into dst and checks its validate tags.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: malformed JSON body", models.ErrInvalidInput)
	}
	v := validate.Struct(dst)
	if !v.Validate() {
		return fmt.Errorf("%w: %s", models.ErrInvalidInput, v.Errors.One())
	}
	return nil
}

func parsePlatform(raw string) (models.Platform, error) {
	if raw == "" {
		return "", nil
	}
	p, ok := models.ParsePlatform(raw)
	if !ok {
		return "", fmt.Errorf("%w: unknown platform %q", models.ErrInvalidInput, raw)
	}
	return p, nil
}

func parseStatus(raw string) (models.Status, error) {
	if raw == "" {
		return "", nil
	}
	s, ok := models.ParseStatus(raw)
	if !ok {
		return "", fmt.Errorf("%w: unknown status %q", models.ErrInvalidInput, raw)
	}
	return s, nil
}

var errNoVideo = errors.New("no video or playlist found for this contest")
