package platforms

import (
	"context"
	"fmt"
	"strings"
	"time"

	"contesthub/internal/models"
	"contesthub/internal/platforms/interfaces"
	"contesthub/internal/providers"
)

const codechefContestURL = "https://www.codechef.com/"

type codechefResponse struct {
	Status          string            `json:"status"`
	Message         string            `json:"message"`
	PresentContests []codechefContest `json:"present_contests"`
	FutureContests  []codechefContest `json:"future_contests"`
	PastContests    []codechefContest `json:"past_contests"`
}

type codechefContest struct {
	Code     string `json:"contest_code"`
	Name     string `json:"contest_name"`
	StartISO string `json:"contest_start_date_iso"`
	EndISO   string `json:"contest_end_date_iso"`
}

type CodechefAdapter struct {
	client    *Client
	baseURL   string
	pastLimit int
	now       func() time.Time
}

func NewCodechefAdapter(client *Client, baseURL string, pastLimit int) interfaces.AdapterInterface {
	return &CodechefAdapter{
		client:    client,
		baseURL:   strings.TrimRight(baseURL, "/"),
		pastLimit: pastLimit,
		now:       time.Now,
	}
}

func (a *CodechefAdapter) Platform() models.Platform {
	return models.PlatformCodechef
}

func (a *CodechefAdapter) Fetch(ctx context.Context) ([]models.Contest, error) {
	var resp codechefResponse
	url := a.baseURL + "/api/list/contests/all?sort_by=START&sorting_order=asc&offset=0&mode=all"
	if err := a.client.GetJSON(ctx, url, &resp); err != nil {
		return nil, err
	}
	if resp.Status != "success" {
		return nil, fmt.Errorf("codechef api status %q: %s", resp.Status, resp.Message)
	}

	groups := [][]codechefContest{resp.PresentContests, resp.FutureContests, resp.PastContests}
	contests := make([]models.Contest, 0, len(resp.PresentContests)+len(resp.FutureContests)+len(resp.PastContests))
	seen := make(map[string]struct{})
	for _, group := range groups {
		for _, c := range group {
			if _, dup := seen[c.Code]; dup {
				continue
			}
			start, errStart := time.Parse(time.RFC3339, c.StartISO)
			end, errEnd := time.Parse(time.RFC3339, c.EndISO)
			if errStart != nil || errEnd != nil {
				a.client.logger.Warnf(providers.TypeUpstream, "codechef contest %s skipped: bad times %q / %q", c.Code, c.StartISO, c.EndISO)
				continue
			}
			seen[c.Code] = struct{}{}
			contests = append(contests, models.Contest{
				ID:        "codechef-" + c.Code,
				Name:      c.Name,
				Platform:  models.PlatformCodechef,
				StartTime: start.UTC(),
				EndTime:   end.UTC(),
				URL:       codechefContestURL + c.Code,
			})
		}
	}
	return limitPast(contests, a.now(), a.pastLimit), nil
}
