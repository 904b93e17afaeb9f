package laundry

import (
	"context"
	"fmt"
	"strings"
)

// TextGenerator renders free-form advice text from a prompt. The core does
// not interpret the returned text beyond non-emptiness.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type Service struct {
	generator TextGenerator
}

func NewService(generator TextGenerator) *Service {
	return &Service{generator: generator}
}

// Advice asks the text generator for a short narrative covering timing,
// hanging technique and drying-time estimates for the given conditions.
func (s *Service) Advice(ctx context.Context, o Observation, loadPercent float64) (string, error) {
	if loadPercent < 0 || loadPercent > 100 {
		return "", fmt.Errorf("%w: load percent must be between 0 and 100", ErrInvalidInput)
	}

	prompt := fmt.Sprintf(
		"Today's weather: %s\nTemperature: %.1f°C\nHumidity: %.0f%%\nWind speed: %.1f m/s\nLaundry load: %.0f%% of the drum\n\n"+
			"Based on these conditions, give laundry advice in about 100 words. "+
			"Cover the best time to wash, how to hang the load, and an estimated drying time.",
		o.Condition, o.TempC, o.Humidity, o.WindSpeed, loadPercent,
	)

	text, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAdviceUnavailable, err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrAdviceUnavailable
	}
	return text, nil
}
