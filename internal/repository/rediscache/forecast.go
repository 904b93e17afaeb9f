package rediscache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"household-hub-go/internal/domain/weather"
)

// ForecastCache keeps reduced forecasts in Redis. It fails safe: a missing
// key, a connectivity problem or a corrupt entry all read as a cache miss,
// and writes swallow errors.
type ForecastCache struct {
	client *redis.Client
}

func NewForecastCache(client *redis.Client) *ForecastCache {
	return &ForecastCache{client: client}
}

func (c *ForecastCache) Get(ctx context.Context, key string) ([]weather.DayForecast, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var days []weather.DayForecast
	if err := json.Unmarshal(raw, &days); err != nil {
		return nil, false
	}
	return days, true
}

func (c *ForecastCache) Set(ctx context.Context, key string, days []weather.DayForecast, ttl time.Duration) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(days)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, key, raw, ttl).Err()
}
