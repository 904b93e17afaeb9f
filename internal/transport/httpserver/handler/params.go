package handler

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

func parseDateParam(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func parseBoolParam(value string) (*bool, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return nil, fmt.Errorf("invalid bool %q", value)
	}
	return &parsed, nil
}

func parseFloatParam(value string, fallback float64) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", value)
	}
	return parsed, nil
}

// parseCompletedState maps the ?status= filter to a completed flag:
// "completed" and "pending" filter, empty means no filter.
func parseCompletedState(value string) (*bool, error) {
	switch strings.TrimSpace(value) {
	case "":
		return nil, nil
	case "completed":
		state := true
		return &state, nil
	case "pending":
		state := false
		return &state, nil
	default:
		return nil, fmt.Errorf("invalid status %q", value)
	}
}
