package platforms

import (
	"net/http"

	"contesthub/internal/models"
	"contesthub/internal/platforms/interfaces"
	"contesthub/internal/providers"
	"contesthub/internal/structures"
)

type adapterFactory func(client *Client, baseURL string, pastLimit int) interfaces.AdapterInterface

// NewAdapters builds one adapter per enabled platform, each with its own
// rate limiter and wrapped in the response cache.
func NewAdapters(conf *structures.Config, httpClient *http.Client, cache providers.CacheProviderInterface, logger providers.Logger) []interfaces.AdapterInterface {
	entries := []struct {
		platform models.Platform
		conf     structures.PlatformConfig
		factory  adapterFactory
	}{
		{models.PlatformCodeforces, conf.Platforms.Codeforces, NewCodeforcesAdapter},
		{models.PlatformCodechef, conf.Platforms.Codechef, NewCodechefAdapter},
		{models.PlatformLeetcode, conf.Platforms.Leetcode, NewLeetcodeAdapter},
	}

	adapters := make([]interfaces.AdapterInterface, 0, len(entries))
	for _, e := range entries {
		if !e.conf.Enabled {
			logger.Infof(providers.TypeApp, "%s adapter disabled", e.platform.DisplayName())
			continue
		}
		client := NewClient(httpClient, e.conf.RPS, logger)
		adapters = append(adapters, NewCachedAdapter(e.factory(client, e.conf.BaseURL, e.conf.PastLimit), cache, logger))
	}
	return adapters
}
