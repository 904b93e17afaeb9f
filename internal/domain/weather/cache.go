package weather

import (
	"context"
	"time"
)

// Cache stores reduced forecasts. Implementations must fail safe: a broken
// cache behaves like a miss, never like an error.
type Cache interface {
	Get(ctx context.Context, key string) ([]DayForecast, bool)
	Set(ctx context.Context, key string, days []DayForecast, ttl time.Duration)
}

type noopCache struct{}

func (noopCache) Get(context.Context, string) ([]DayForecast, bool) { return nil, false }

func (noopCache) Set(context.Context, string, []DayForecast, time.Duration) {}
