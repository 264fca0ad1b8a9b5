package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"hoofline/models"
	"hoofline/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// CachedClient decorates a Client with a Redis leg cache. Road networks do
// not change minute to minute, so legs are cached on coordinates rounded to
// ~100m for an hour. Only Leg is cached; full multi-point routes are rare
// enough to go straight upstream.
type CachedClient struct {
	Inner Client
	Cache *redis.Client
	TTL   time.Duration
}

// NewCachedClient wraps inner with the shared routing cache.
func NewCachedClient(inner Client) *CachedClient {
	return &CachedClient{
		Inner: inner,
		Cache: utils.GetRoutingCacheClient(),
		TTL:   time.Hour,
	}
}

func legKey(from, to models.GeoPoint) string {
	// Three decimals is roughly 100m, close enough for drive-time estimates.
	return fmt.Sprintf("leg:%.3f,%.3f:%.3f,%.3f", from.Lat(), from.Lon(), to.Lat(), to.Lon())
}

func (c *CachedClient) Leg(ctx context.Context, from, to models.GeoPoint) (Leg, error) {
	logger := utils.GetLogger()
	key := legKey(from, to)

	if data, err := c.Cache.Get(ctx, key).Result(); err == nil {
		var leg Leg
		if err := json.Unmarshal([]byte(data), &leg); err == nil {
			return leg, nil
		}
		logger.Warn("discarding corrupt cached leg", zap.String("key", key))
	}

	leg, err := c.Inner.Leg(ctx, from, to)
	if err != nil {
		return Leg{}, err
	}

	if data, err := json.Marshal(leg); err == nil {
		if err := c.Cache.Set(ctx, key, data, c.TTL).Err(); err != nil {
			logger.Warn("failed to cache routed leg", zap.String("key", key), zap.Error(err))
		}
	}
	return leg, nil
}

func (c *CachedClient) Route(ctx context.Context, points []models.GeoPoint) (RouteResult, error) {
	return c.Inner.Route(ctx, points)
}
