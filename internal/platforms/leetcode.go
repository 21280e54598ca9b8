package platforms

import (
	"context"
	"errors"
	"strings"
	"time"

	"contesthub/internal/models"
	"contesthub/internal/platforms/interfaces"
)

const (
	leetcodeContestURL = "https://leetcode.com/contest/"
	leetcodeQuery      = `{ allContests { title titleSlug startTime duration } }`
)

type graphQLRequest struct {
	Query string `json:"query"`
}

type leetcodeResponse struct {
	Data struct {
		AllContests []leetcodeContest `json:"allContests"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

type leetcodeContest struct {
	Title     string `json:"title"`
	TitleSlug string `json:"titleSlug"`
	StartTime int64  `json:"startTime"`
	Duration  int64  `json:"duration"`
}

type LeetcodeAdapter struct {
	client    *Client
	baseURL   string
	pastLimit int
	now       func() time.Time
}

func NewLeetcodeAdapter(client *Client, baseURL string, pastLimit int) interfaces.AdapterInterface {
	return &LeetcodeAdapter{
		client:    client,
		baseURL:   strings.TrimRight(baseURL, "/"),
		pastLimit: pastLimit,
		now:       time.Now,
	}
}

func (a *LeetcodeAdapter) Platform() models.Platform {
	return models.PlatformLeetcode
}

func (a *LeetcodeAdapter) Fetch(ctx context.Context) ([]models.Contest, error) {
	var resp leetcodeResponse
	if err := a.client.PostJSON(ctx, a.baseURL+"/graphql", graphQLRequest{Query: leetcodeQuery}, &resp); err != nil {
		return nil, err
	}
	if len(resp.Errors) > 0 {
		return nil, errors.New("leetcode graphql: " + resp.Errors[0].Message)
	}

	contests := make([]models.Contest, 0, len(resp.Data.AllContests))
	for _, c := range resp.Data.AllContests {
		start := time.Unix(c.StartTime, 0).UTC()
		contests = append(contests, models.Contest{
			ID:        "leetcode-" + c.TitleSlug,
			Name:      c.Title,
			Platform:  models.PlatformLeetcode,
			StartTime: start,
			EndTime:   start.Add(time.Duration(c.Duration) * time.Second),
			URL:       leetcodeContestURL + c.TitleSlug,
		})
	}
	return limitPast(contests, a.now(), a.pastLimit), nil
}
