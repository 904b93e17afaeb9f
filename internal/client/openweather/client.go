package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"household-hub-go/internal/config"
	"household-hub-go/internal/domain/weather"
)

// Client fetches 5-day/3-hour forecasts from the OpenWeatherMap API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func New(cfg config.WeatherConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type forecastResponse struct {
	List []struct {
		DtTxt string `json:"dt_txt"`
		Main  struct {
			Temp     float64 `json:"temp"`
			Humidity float64 `json:"humidity"`
		} `json:"main"`
		Weather []struct {
			Main        string `json:"main"`
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
	} `json:"list"`
}

func (c *Client) Forecast(ctx context.Context, lat, lon float64) ([]weather.Point, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("openweather: api key not configured")
	}

	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	query.Set("units", "metric")
	query.Set("appid", c.apiKey)

	endpoint := c.baseURL + "/data/2.5/forecast?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openweather: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openweather: unexpected status %d", resp.StatusCode)
	}

	var payload forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("openweather: decode response: %w", err)
	}

	points := make([]weather.Point, 0, len(payload.List))
	for _, item := range payload.List {
		point := weather.Point{
			Date:      dateOf(item.DtTxt),
			TempC:     item.Main.Temp,
			Humidity:  item.Main.Humidity,
			WindSpeed: item.Wind.Speed,
		}
		if len(item.Weather) > 0 {
			point.Condition = item.Weather[0].Main
			point.Description = item.Weather[0].Description
			point.Icon = item.Weather[0].Icon
		}
		points = append(points, point)
	}
	return points, nil
}

// dateOf extracts the calendar date from the provider's
// "2006-01-02 15:04:05" timestamp text.
func dateOf(dtTxt string) string {
	date, _, _ := strings.Cut(dtTxt, " ")
	return date
}
