package weather

import (
	"context"
	"fmt"
	"math"
	"time"

	"household-hub-go/internal/domain/laundry"
)

// The provider emits 3-hourly samples; keeping every 8th yields one
// observation per day.
const (
	pointsPerDay = 8
	forecastDays = 3
)

// Provider fetches a raw multi-point forecast time series.
type Provider interface {
	Forecast(ctx context.Context, lat, lon float64) ([]Point, error)
}

type Service struct {
	provider Provider
	cache    Cache
	cacheTTL time.Duration
}

func NewService(provider Provider, cache Cache, cacheTTL time.Duration) *Service {
	if cache == nil {
		cache = noopCache{}
	}
	return &Service{provider: provider, cache: cache, cacheTTL: cacheTTL}
}

// Forecast reduces the provider's series to one observation per day for the
// next few days and attaches the laundry score to each.
func (s *Service) Forecast(ctx context.Context, lat, lon float64) ([]DayForecast, error) {
	key := fmt.Sprintf("forecast:%.4f:%.4f", lat, lon)
	if days, ok := s.cache.Get(ctx, key); ok {
		return days, nil
	}

	points, err := s.provider.Forecast(ctx, lat, lon)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	days := reduce(points)
	s.cache.Set(ctx, key, days, s.cacheTTL)
	return days, nil
}

func reduce(points []Point) []DayForecast {
	days := make([]DayForecast, 0, forecastDays)
	for i := 0; i < len(points) && len(days) < forecastDays; i += pointsPerDay {
		p := points[i]
		days = append(days, DayForecast{
			Date:        p.Date,
			Condition:   p.Condition,
			Description: p.Description,
			TempC:       int(math.Round(p.TempC)),
			Humidity:    p.Humidity,
			WindSpeed:   p.WindSpeed,
			Icon:        p.Icon,
			LaundryScore: laundry.Score(laundry.Observation{
				Condition: p.Condition,
				TempC:     p.TempC,
				Humidity:  p.Humidity,
				WindSpeed: p.WindSpeed,
			}),
		})
	}
	return days
}
