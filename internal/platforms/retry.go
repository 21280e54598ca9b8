package platforms

import (
	"context"
	"errors"
	"math"
	"net"
	"net/http"
	"time"

	"contesthub/internal/models"
)

type RetryConfig struct {
	MaxRetries  int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

var DefaultRetryConfig = RetryConfig{
	MaxRetries:  3,
	InitialWait: 500 * time.Millisecond,
	MaxWait:     10 * time.Second,
	Multiplier:  2.0,
}

// backoff is the wait before retry number n (1-based), capped at MaxWait.
func (rc RetryConfig) backoff(n int) time.Duration {
	wait := time.Duration(float64(rc.InitialWait) * math.Pow(rc.Multiplier, float64(n-1)))
	if wait > rc.MaxWait {
		return rc.MaxWait
	}
	return wait
}

// retryDo calls fn until it succeeds, fails permanently, or MaxRetries
// retries are spent. onRetry sees every failure that is about to be retried.
func retryDo[T any](ctx context.Context, rc RetryConfig, onRetry func(attempt int, wait time.Duration, err error), fn func() (T, error)) (T, error) {
	for n := 0; ; n++ {
		result, err := fn()
		if err == nil || n == rc.MaxRetries || !isRetryable(err) {
			return result, err
		}

		wait := rc.backoff(n + 1)
		if onRetry != nil {
			onRetry(n+1, wait, err)
		}
		timer := time.NewTimer(wait)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			var zero T
			return zero, ctx.Err()
		}
	}
}

func isRetryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var upstream *models.UpstreamError
	if errors.As(err, &upstream) && upstream.StatusCode != 0 {
		return isRetryableStatus(upstream.StatusCode)
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	// net.Error includes OpError, so check after OpError
	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}

	return false
}

func isRetryableStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests, http.StatusInternalServerError, http.StatusBadGateway,
		http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}
