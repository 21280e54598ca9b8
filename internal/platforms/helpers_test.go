package platforms

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"contesthub/internal/testutil"
)

var fastRetry = RetryConfig{MaxRetries: 2, InitialWait: time.Millisecond, MaxWait: time.Millisecond, Multiplier: 1}

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(srv *httptest.Server) *Client {
	return NewClient(srv.Client(), 0, &testutil.MockLogger{}).WithRetry(fastRetry)
}

func fixedNow(ts time.Time) func() time.Time {
	return func() time.Time { return ts }
}
