package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"contesthub/internal/models"
	"contesthub/internal/testutil"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleList() *models.ContestList {
	start := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	return &models.ContestList{
		GeneratedAt: start,
		Contests: []models.Contest{
			{ID: "codechef-START1", Platform: models.PlatformCodechef, Status: models.StatusOngoing, StartTime: start},
			{ID: "codeforces-2", Platform: models.PlatformCodeforces, Status: models.StatusUpcoming, StartTime: start},
			{ID: "codeforces-1", Platform: models.PlatformCodeforces, Status: models.StatusPast, StartTime: start, SolutionLink: "https://youtu.be/x"},
		},
	}
}

func getContests(t *testing.T, agg *mockAggregator, query string) *httptest.ResponseRecorder {
	t.Helper()
	cc := NewContestController(&testutil.MockLogger{}, agg)
	req := httptest.NewRequest(http.MethodGet, "/contests"+query, nil)
	rr := httptest.NewRecorder()
	cc.GetContests(rr, req)
	return rr
}

func TestGetContests_All(t *testing.T) {
	rr := getContests(t, &mockAggregator{list: sampleList()}, "")
	require.Equal(t, http.StatusOK, rr.Code)

	var list models.ContestList
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	require.Len(t, list.Contests, 3)
	assert.Equal(t, "codechef-START1", list.Contests[0].ID)
	assert.Equal(t, "https://youtu.be/x", list.Contests[2].SolutionLink)
}

func TestGetContests_Filters(t *testing.T) {
	rr := getContests(t, &mockAggregator{list: sampleList()}, "?platform=codeforces&status=past")
	require.Equal(t, http.StatusOK, rr.Code)

	var list models.ContestList
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	require.Len(t, list.Contests, 1)
	assert.Equal(t, "codeforces-1", list.Contests[0].ID)
}

func TestGetContests_InvalidFilters(t *testing.T) {
	for _, query := range []string{"?platform=atcoder", "?status=cancelled"} {
		rr := getContests(t, &mockAggregator{list: sampleList()}, query)
		assert.Equal(t, http.StatusBadRequest, rr.Code, query)

		var resp errorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, models.KindInvalidInput, resp.Kind)
	}
}

func TestGetContests_AdapterFailure(t *testing.T) {
	agg := &mockAggregator{err: &models.AdapterFailure{Platform: models.PlatformCodechef, Err: errors.New("timeout")}}
	rr := getContests(t, agg, "")
	assert.Equal(t, http.StatusBadGateway, rr.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, models.KindAdapterFailure, resp.Kind)
	assert.Contains(t, resp.Error, "CodeChef")
}

func TestGetContests_InternalErrorHidden(t *testing.T) {
	logger := &testutil.MockLogger{}
	cc := NewContestController(logger, &mockAggregator{err: errors.New("secret detail")})
	req := httptest.NewRequest(http.MethodGet, "/contests", nil)
	rr := httptest.NewRecorder()
	cc.GetContests(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "secret detail")
	assert.Equal(t, 1, logger.Count("error"))
}
