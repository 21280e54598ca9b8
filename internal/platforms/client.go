package platforms

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"contesthub/internal/models"
	"contesthub/internal/providers"

	json "github.com/goccy/go-json"
	"golang.org/x/time/rate"
)

const (
	maxBodySize = 8 << 20
	userAgent   = "contesthub/1.0 (+https://github.com/contesthub)"
)

// Client is the paced, retrying JSON transport used by one platform adapter.
type Client struct {
	http    *http.Client
	limiter *rate.Limiter
	retry   RetryConfig
	logger  providers.Logger
}

// NewClient allows rps requests per second with a burst of one. A
// non-positive rps disables pacing.
func NewClient(httpClient *http.Client, rps float64, logger providers.Logger) *Client {
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	return &Client{
		http:    httpClient,
		limiter: rate.NewLimiter(limit, 1),
		retry:   DefaultRetryConfig,
		logger:  logger,
	}
}

func (c *Client) WithRetry(rc RetryConfig) *Client {
	c.retry = rc
	return c
}

func (c *Client) GetJSON(ctx context.Context, url string, out interface{}) error {
	return c.do(ctx, http.MethodGet, url, nil, out)
}

func (c *Client) PostJSON(ctx context.Context, url string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, url, body, out)
}

// errorMessage pulls the reason out of an error body: Codeforces sends it in
// "comment", CodeChef in "message".
func errorMessage(body []byte) string {
	var e struct {
		Comment string `json:"comment"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &e) != nil {
		return ""
	}
	if e.Comment != "" {
		return e.Comment
	}
	return e.Message
}

func (c *Client) do(ctx context.Context, method, url string, payload []byte, out interface{}) error {
	onRetry := func(attempt int, wait time.Duration, err error) {
		c.logger.Warnf(providers.TypeUpstream, "%s %s attempt %d failed (%v), retrying in %s", method, url, attempt, err, wait)
	}

	body, err := retryDo(ctx, c.retry, onRetry, func() ([]byte, error) {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, url, reader)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", userAgent)
		req.Header.Set("Accept", "application/json")
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
		if err != nil {
			return nil, err
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, &models.UpstreamError{StatusCode: resp.StatusCode, Message: errorMessage(data)}
		}
		return data, nil
	})
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}
