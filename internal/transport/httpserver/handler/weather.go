package handler

import (
	"errors"
	"net/http"

	weatherdomain "household-hub-go/internal/domain/weather"
)

type dayForecastResponse struct {
	Date         string  `json:"date"`
	Condition    string  `json:"condition"`
	Description  string  `json:"description"`
	TempC        int     `json:"temp_c"`
	Humidity     float64 `json:"humidity"`
	WindSpeed    float64 `json:"wind_speed"`
	Icon         string  `json:"icon"`
	LaundryScore int     `json:"laundry_score"`
}

func (h *Handlers) GetForecast(w http.ResponseWriter, r *http.Request) {
	lat, err := parseFloatParam(r.URL.Query().Get("lat"), h.weatherCfg.DefaultLat)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "lat must be a number")
		return
	}
	lon, err := parseFloatParam(r.URL.Query().Get("lon"), h.weatherCfg.DefaultLon)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "lon must be a number")
		return
	}

	days, err := h.Weather.Forecast(r.Context(), lat, lon)
	if err != nil {
		if errors.Is(err, weatherdomain.ErrProviderUnavailable) {
			h.log.InternalError("weather.forecast: provider unavailable", err)
			writeError(w, http.StatusBadGateway, "external_service_error", "weather provider unavailable")
			return
		}
		h.log.InternalError("weather.forecast: forecast failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]dayForecastResponse, 0, len(days))
	for _, day := range days {
		response = append(response, dayForecastResponse{
			Date:         day.Date,
			Condition:    day.Condition,
			Description:  day.Description,
			TempC:        day.TempC,
			Humidity:     day.Humidity,
			WindSpeed:    day.WindSpeed,
			Icon:         day.Icon,
			LaundryScore: day.LaundryScore,
		})
	}

	writeJSON(w, http.StatusOK, response)
}
