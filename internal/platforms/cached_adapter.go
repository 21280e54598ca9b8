package platforms

import (
	"context"

	"contesthub/internal/models"
	"contesthub/internal/platforms/interfaces"
	"contesthub/internal/providers"

	json "github.com/goccy/go-json"
)

// CachedAdapter memoizes the raw records of an adapter for the cache TTL.
type CachedAdapter struct {
	inner  interfaces.AdapterInterface
	cache  providers.CacheProviderInterface
	logger providers.Logger
	key    string
}

func NewCachedAdapter(inner interfaces.AdapterInterface, cache providers.CacheProviderInterface, logger providers.Logger) interfaces.AdapterInterface {
	return &CachedAdapter{
		inner:  inner,
		cache:  cache,
		logger: logger,
		key:    "contests:" + string(inner.Platform()),
	}
}

func (a *CachedAdapter) Platform() models.Platform {
	return a.inner.Platform()
}

func (a *CachedAdapter) Fetch(ctx context.Context) ([]models.Contest, error) {
	if data, ok := a.cache.Get(a.key); ok {
		var contests []models.Contest
		if err := json.Unmarshal(data, &contests); err == nil {
			return contests, nil
		}
		a.logger.Warnf(providers.TypeApp, "Dropping unreadable cache entry %s", a.key)
		a.cache.Del(a.key)
	}

	contests, err := a.inner.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(contests)
	if err != nil {
		a.logger.Errorf(providers.TypeApp, "Failed to encode %s for cache: %v", a.key, err)
		return contests, nil
	}
	a.cache.Set(a.key, data)
	return contests, nil
}
