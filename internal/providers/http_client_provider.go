package providers

import (
	"net"
	"net/http"
	"time"

	"contesthub/internal/structures"
)

// NewHTTPClientProvider builds the outbound client shared by the platform
// adapters and the video API.
func NewHTTPClientProvider(conf *structures.Config) *http.Client {
	timeout := conf.Platforms.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        50,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			DialContext: (&net.Dialer{
				Timeout:   5 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
		},
	}
}
