package platforms

import (
	"context"
	"fmt"
	"strings"
	"time"

	"contesthub/internal/models"
	"contesthub/internal/platforms/interfaces"
)

const codeforcesContestURL = "https://codeforces.com/contest/"

type codeforcesResponse struct {
	Status  string              `json:"status"`
	Comment string              `json:"comment"`
	Result  []codeforcesContest `json:"result"`
}

type codeforcesContest struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	Phase            string `json:"phase"`
	DurationSeconds  int64  `json:"durationSeconds"`
	StartTimeSeconds *int64 `json:"startTimeSeconds"`
}

type CodeforcesAdapter struct {
	client    *Client
	baseURL   string
	pastLimit int
	now       func() time.Time
}

func NewCodeforcesAdapter(client *Client, baseURL string, pastLimit int) interfaces.AdapterInterface {
	return &CodeforcesAdapter{
		client:    client,
		baseURL:   strings.TrimRight(baseURL, "/"),
		pastLimit: pastLimit,
		now:       time.Now,
	}
}

func (a *CodeforcesAdapter) Platform() models.Platform {
	return models.PlatformCodeforces
}

func (a *CodeforcesAdapter) Fetch(ctx context.Context) ([]models.Contest, error) {
	var resp codeforcesResponse
	if err := a.client.GetJSON(ctx, a.baseURL+"/api/contest.list?gym=false", &resp); err != nil {
		return nil, err
	}
	if resp.Status != "OK" {
		return nil, fmt.Errorf("codeforces api status %q: %s", resp.Status, resp.Comment)
	}

	contests := make([]models.Contest, 0, len(resp.Result))
	for _, c := range resp.Result {
		// contests without a scheduled start are not listed
		if c.StartTimeSeconds == nil {
			continue
		}
		start := time.Unix(*c.StartTimeSeconds, 0).UTC()
		contests = append(contests, models.Contest{
			ID:        fmt.Sprintf("codeforces-%d", c.ID),
			Name:      c.Name,
			Platform:  models.PlatformCodeforces,
			StartTime: start,
			EndTime:   start.Add(time.Duration(c.DurationSeconds) * time.Second),
			URL:       fmt.Sprintf("%s%d", codeforcesContestURL, c.ID),
		})
	}
	return limitPast(contests, a.now(), a.pastLimit), nil
}
