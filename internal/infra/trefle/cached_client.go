package trefle

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"plantcare/internal/domain/service"
	"plantcare/internal/errors"
	"plantcare/internal/infra/cache"

	"golang.org/x/sync/singleflight"
)

const (
	cacheKeyPrefix  = "trefle:search:"
	defaultCacheTTL = 10 * time.Minute

	// bounds a shared upstream search once it no longer follows any single caller
	sharedSearchTimeout = 15 * time.Second
)

type cachedClient struct {
	next   service.PlantLookup
	store  cache.Store
	ttl    time.Duration
	sf     singleflight.Group
	logger *slog.Logger
}

// NewCachedClient caches search results per normalized query. Cache faults are
// logged and the search goes straight to next.
func NewCachedClient(next service.PlantLookup, store cache.Store, ttl time.Duration, logger *slog.Logger) service.PlantLookup {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}

	return &cachedClient{
		next:   next,
		store:  store,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *cachedClient) Search(ctx context.Context, query string) ([]service.ExternalPlant, error) {
	key := cacheKey(query)

	cached, err := c.store.Get(ctx, key)
	switch {
	case err == nil:
		var raws []json.RawMessage
		if jsonErr := json.Unmarshal(cached, &raws); jsonErr == nil {
			if plants, decodeErr := decodePlants(raws); decodeErr == nil {
				return plants, nil
			}
		}
		c.logger.Warn("Discarding unreadable cached trefle response", slog.String("key", key))
	case !errors.Is(err, cache.ErrMiss):
		c.logger.Warn("Trefle cache read failed", slog.String("key", key), slog.Any("error", err))
	}

	// Callers joining the same key share one upstream call. Each caller waits on
	// its own ctx; the shared call only stops at its own timeout.
	ch := c.sf.DoChan(key, func() (interface{}, error) {
		sharedCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedSearchTimeout)
		defer cancel()

		plants, err := c.next.Search(sharedCtx, query)
		if err != nil {
			return nil, err
		}
		c.write(sharedCtx, key, plants)

		return plants, nil
	})

	select {
	case <-ctx.Done():
		return nil, errors.WithStack(ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}

		return res.Val.([]service.ExternalPlant), nil
	}
}

func (c *cachedClient) write(ctx context.Context, key string, plants []service.ExternalPlant) {
	raws := make([]json.RawMessage, 0, len(plants))
	for _, plant := range plants {
		raws = append(raws, plant.Raw)
	}

	data, err := json.Marshal(raws)
	if err != nil {
		c.logger.Warn("Failed to encode trefle response for cache", slog.Any("error", err))

		return
	}

	if err := c.store.Set(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("Trefle cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}

func cacheKey(query string) string {
	return cacheKeyPrefix + strings.ToLower(strings.TrimSpace(query))
}
