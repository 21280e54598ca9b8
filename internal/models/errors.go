package models

import (
	"errors"
	"fmt"
)

var (
	ErrMissingInput       = errors.New("missing input")
	ErrInvalidPlaylistURL = errors.New("invalid playlist url")
	ErrNoMatch            = errors.New("no matching data")
	ErrInvalidInput       = errors.New("invalid input")
)

// MissingInput names the absent field in the error message.
func MissingInput(field string) error {
	return fmt.Errorf("%w: %s is required", ErrMissingInput, field)
}

// UpstreamError is a failed call to an external API. StatusCode is zero when
// no usable response arrived (transport, read or decode failure); Err then
// holds the cause.
type UpstreamError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		msg := e.Message
		if msg == "" {
			msg = "request failed"
		}
		if e.Err != nil {
			return fmt.Sprintf("upstream error: %s: %v", msg, e.Err)
		}
		return "upstream error: " + msg
	}
	if e.Message != "" {
		return fmt.Sprintf("upstream error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("upstream error: API request failed with status %d", e.StatusCode)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// AdapterFailure reports that a platform could not produce contest data.
type AdapterFailure struct {
	Platform Platform
	Err      error
}

func (e *AdapterFailure) Error() string {
	return fmt.Sprintf("%s adapter failed: %v", e.Platform.DisplayName(), e.Err)
}

func (e *AdapterFailure) Unwrap() error {
	return e.Err
}

const (
	KindMissingInput       = "missing_input"
	KindInvalidPlaylistURL = "invalid_playlist_url"
	KindUpstream           = "upstream_error"
	KindAdapterFailure     = "adapter_failure"
	KindNoMatch            = "no_match"
	KindInvalidInput       = "invalid_input"
	KindInternal           = "internal"
)

// ErrorKind classifies err into one of the user facing error kinds.
func ErrorKind(err error) string {
	var adapterErr *AdapterFailure
	var upstreamErr *UpstreamError
	switch {
	case errors.As(err, &adapterErr):
		return KindAdapterFailure
	case errors.Is(err, ErrMissingInput):
		return KindMissingInput
	case errors.Is(err, ErrInvalidPlaylistURL):
		return KindInvalidPlaylistURL
	case errors.As(err, &upstreamErr):
		return KindUpstream
	case errors.Is(err, ErrNoMatch):
		return KindNoMatch
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidInput
	default:
		return KindInternal
	}
}
