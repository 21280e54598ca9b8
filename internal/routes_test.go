package internal

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"contesthub/internal/controllers"
	"contesthub/internal/models"
	"contesthub/internal/platforms/interfaces"
	"contesthub/internal/providers"
	"contesthub/internal/services"
	"contesthub/internal/structures"
	"contesthub/internal/testutil"
	"contesthub/internal/youtube"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	videos []models.YouTubeVideo
}

func (s *stubFetcher) FetchPlaylistVideos(_ context.Context, _, _ string) ([]models.YouTubeVideo, error) {
	return s.videos, nil
}

func newTestApp(t *testing.T) (*App, *testutil.MockStore) {
	t.Helper()
	conf := &structures.Config{
		AppName:     "ContestHub",
		WebServer:   structures.Server{Host: "127.0.0.1", Port: 0},
		Aggregation: structures.AggregationConfig{Policy: structures.PolicyAbort, Timeout: time.Second},
		Store:       structures.StoreConfig{Driver: "file"},
		YouTube: structures.YouTubeConfig{
			APIKey:      "test-key",
			PlaylistURL: "https://www.youtube.com/playlist?list=PLdefault",
		},
	}
	logger := &testutil.MockLogger{}
	metrics := testutil.NewMockMetrics()
	store := testutil.NewMockStore()

	start := time.Now().Add(-48 * time.Hour)
	adapters := []interfaces.AdapterInterface{
		&testutil.MockAdapter{Name: models.PlatformLeetcode, Contests: []models.Contest{{
			ID: "leetcode-weekly-contest-350", Name: "Weekly Contest 350", Platform: models.PlatformLeetcode,
			StartTime: start, EndTime: start.Add(90 * time.Minute), URL: "https://leetcode.com/contest/weekly-contest-350",
		}}},
	}

	fetcher := &stubFetcher{videos: []models.YouTubeVideo{{VideoID: "v350", Title: "Weekly Contest 350 Solution"}}}
	settings := services.NewSettingsService(conf, store, logger)
	solutions := services.NewSolutionService(store, logger)
	videos := services.NewVideoService(fetcher, youtube.NewMatcher(fetcher, settings, logger), settings, solutions, logger, metrics)
	aggregator := services.NewAggregatorService(conf, adapters, solutions, logger, metrics)

	router := InitRoutes(
		controllers.NewContestController(logger, aggregator),
		controllers.NewSolutionController(logger, solutions, videos),
		controllers.NewVideoController(logger, videos),
		controllers.NewSettingsController(logger, settings),
	)
	app := NewApp(controllers.NewHealthController(conf, adapters), conf, logger, router, metrics, store)
	return app, store
}

func TestInitRoutes_RegistersRoutes(t *testing.T) {
	router := InitRoutes(&controllers.ContestController{}, &controllers.SolutionController{},
		&controllers.VideoController{}, &controllers.SettingsController{})
	urls := make([]string, 0)
	for _, r := range router.GetRoutes() {
		urls = append(urls, r.Url)
	}
	assert.Equal(t, []string{"/contests", "/solutions", "/solutions/match", "/videos", "/videos/match", "/settings"}, urls)
}

func TestApp_MatchThenList(t *testing.T) {
	app, store := newTestApp(t)
	srv := httptest.NewServer(app.WebServer.Handler)
	defer srv.Close()

	body := `{"contest_id":"leetcode-weekly-contest-350","contest_name":"Weekly Contest 350","platform":"leetcode"}`
	resp, err := http.Post(srv.URL+"/solutions/match", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(providers.RequestIDHeader))
	assert.Equal(t, "https://www.youtube.com/watch?v=v350", store.Buckets[models.BucketSolutionLinks]["leetcode-weekly-contest-350"])

	resp, err = http.Get(srv.URL + "/contests?status=past")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list models.ContestList
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list.Contests, 1)
	assert.Equal(t, models.StatusPast, list.Contests[0].Status)
	assert.Equal(t, "https://www.youtube.com/watch?v=v350", list.Contests[0].SolutionLink)
}

func TestApp_MethodNotAllowed(t *testing.T) {
	app, _ := newTestApp(t)
	srv := httptest.NewServer(app.WebServer.Handler)
	defer srv.Close()

	req, _ := http.NewRequest(http.MethodPatch, srv.URL+"/solutions", nil)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Equal(t, "DELETE, GET, POST", resp.Header.Get("Allow"))
}

func TestApp_Health(t *testing.T) {
	app, _ := newTestApp(t)
	srv := httptest.NewServer(app.WebServer.Handler)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestNewApp_WriteTimeoutCoversAggregation(t *testing.T) {
	app, _ := newTestApp(t)
	assert.Equal(t, 10*time.Second, app.WebServer.WriteTimeout)
}
