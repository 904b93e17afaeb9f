package handler

import (
	"errors"
	"net/http"
	"strings"

	laundrydomain "household-hub-go/internal/domain/laundry"
)

type laundryAdviceRequest struct {
	Condition   string  `json:"condition"`
	TempC       float64 `json:"temp_c"`
	Humidity    float64 `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
	LoadPercent float64 `json:"load_percent"`
}

type laundryAdviceResponse struct {
	Advice       string `json:"advice"`
	Score        int    `json:"score"`
	TimerMinutes int    `json:"timer_minutes"`
}

func (h *Handlers) LaundryAdvice(w http.ResponseWriter, r *http.Request) {
	var req laundryAdviceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if strings.TrimSpace(req.Condition) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "condition is required")
		return
	}

	observation := laundrydomain.Observation{
		Condition: req.Condition,
		TempC:     req.TempC,
		Humidity:  req.Humidity,
		WindSpeed: req.WindSpeed,
	}

	advice, err := h.Laundry.Advice(r.Context(), observation, req.LoadPercent)
	if err != nil {
		switch {
		case errors.Is(err, laundrydomain.ErrInvalidInput):
			h.log.BusinessError("laundry.advice: rejected input", err)
			writeError(w, http.StatusBadRequest, "invalid_request", "load_percent must be between 0 and 100")
		case errors.Is(err, laundrydomain.ErrAdviceUnavailable):
			h.log.InternalError("laundry.advice: generator unavailable", err)
			writeError(w, http.StatusBadGateway, "external_service_error", "advice generation failed")
		default:
			h.log.InternalError("laundry.advice: advice failed", err)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, laundryAdviceResponse{
		Advice:       advice,
		Score:        laundrydomain.Score(observation),
		TimerMinutes: laundrydomain.TimerMinutes(req.LoadPercent),
	})
}
