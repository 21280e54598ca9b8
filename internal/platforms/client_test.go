package platforms

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"contesthub/internal/models"
	"contesthub/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GetJSON(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(`{"value":42}`))
	})

	var out struct {
		Value int `json:"value"`
	}
	require.NoError(t, newTestClient(srv).GetJSON(context.Background(), srv.URL, &out))
	assert.Equal(t, 42, out.Value)
}

func TestClient_PostJSON(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"query":"q"}`, string(body))
		_, _ = w.Write([]byte(`{}`))
	})

	var out map[string]interface{}
	require.NoError(t, newTestClient(srv).PostJSON(context.Background(), srv.URL, graphQLRequest{Query: "q"}, &out))
}

func TestClient_RetriesTransientStatus(t *testing.T) {
	var calls atomic.Int32
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	logger := &testutil.MockLogger{}
	client := NewClient(srv.Client(), 0, logger).WithRetry(fastRetry)

	var out struct {
		OK bool `json:"ok"`
	}
	require.NoError(t, client.GetJSON(context.Background(), srv.URL, &out))
	assert.True(t, out.OK)
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, 2, logger.Count("warn"))
}

func TestClient_GivesUpAfterRetries(t *testing.T) {
	var calls atomic.Int32
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	})

	err := newTestClient(srv).GetJSON(context.Background(), srv.URL, &struct{}{})
	var upstream *models.UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, http.StatusTooManyRequests, upstream.StatusCode)
	assert.Equal(t, int32(fastRetry.MaxRetries+1), calls.Load())
}

func TestClient_NoRetryOnClientError(t *testing.T) {
	var calls atomic.Int32
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	})

	err := newTestClient(srv).GetJSON(context.Background(), srv.URL, &struct{}{})
	var upstream *models.UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, http.StatusNotFound, upstream.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_DecodeError(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	})

	err := newTestClient(srv).GetJSON(context.Background(), srv.URL, &struct{}{})
	assert.ErrorContains(t, err, "decode")
}

func TestClient_RateLimited(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})
	client := NewClient(srv.Client(), 20, &testutil.MockLogger{})

	start := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, client.GetJSON(context.Background(), srv.URL, &struct{}{}))
	}
	// burst of one, then 50ms per request
	assert.GreaterOrEqual(t, time.Since(start), 90*time.Millisecond)
}

func TestClient_CancelledContext(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := newTestClient(srv).GetJSON(ctx, srv.URL, &struct{}{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, isRetryable(&models.UpstreamError{StatusCode: 502}))
	assert.False(t, isRetryable(&models.UpstreamError{StatusCode: 400}))
	assert.False(t, isRetryable(context.DeadlineExceeded))
	assert.False(t, isRetryable(errors.New("plain")))
	assert.True(t, isRetryable(&models.UpstreamError{Err: &net.OpError{Op: "dial", Err: errors.New("refused")}}))
	assert.False(t, isRetryable(&models.UpstreamError{Message: "decode", Err: errors.New("bad json")}))
}

func TestClient_ErrorBodyMessage(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"status":"FAILED","comment":"contestId: Contest with id 99999 not found"}`))
	})

	err := newTestClient(srv).GetJSON(context.Background(), srv.URL, &struct{}{})
	var upstream *models.UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, http.StatusBadRequest, upstream.StatusCode)
	assert.Equal(t, "contestId: Contest with id 99999 not found", upstream.Message)
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "maintenance", errorMessage([]byte(`{"status":"error","message":"maintenance"}`)))
	assert.Equal(t, "", errorMessage([]byte(`<html>502</html>`)))
	assert.Equal(t, "", errorMessage(nil))
}

func TestRetryDo_StopsOnPermanentError(t *testing.T) {
	calls := 0
	_, err := retryDo(context.Background(), fastRetry, nil, func() (int, error) {
		calls++
		return 0, &models.UpstreamError{StatusCode: http.StatusForbidden}
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetryDo_BackoffIsCapped(t *testing.T) {
	rc := RetryConfig{MaxRetries: 5, InitialWait: 100 * time.Millisecond, MaxWait: 300 * time.Millisecond, Multiplier: 2}
	assert.Equal(t, 100*time.Millisecond, rc.backoff(1))
	assert.Equal(t, 200*time.Millisecond, rc.backoff(2))
	assert.Equal(t, 300*time.Millisecond, rc.backoff(3))
	assert.Equal(t, 300*time.Millisecond, rc.backoff(5))
}
