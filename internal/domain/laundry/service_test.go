package laundry

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTextGenerator struct {
	text   string
	err    error
	prompt string
}

func (g *fakeTextGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	g.prompt = prompt
	return g.text, g.err
}

func TestAdviceSuccess(t *testing.T) {
	gen := &fakeTextGenerator{text: "Wash in the morning and hang outside."}
	svc := NewService(gen)

	advice, err := svc.Advice(context.Background(), Observation{
		Condition: ConditionClear,
		TempC:     24,
		Humidity:  55,
		WindSpeed: 3,
	}, 60)
	require.NoError(t, err)
	assert.Equal(t, "Wash in the morning and hang outside.", advice)
	assert.True(t, strings.Contains(gen.prompt, "Clear"))
	assert.True(t, strings.Contains(gen.prompt, "60%"))
}

func TestAdviceRejectsOutOfRangeLoad(t *testing.T) {
	svc := NewService(&fakeTextGenerator{text: "ok"})

	_, err := svc.Advice(context.Background(), Observation{Condition: ConditionClear}, 101)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Advice(context.Background(), Observation{Condition: ConditionClear}, -1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAdviceGeneratorFailure(t *testing.T) {
	svc := NewService(&fakeTextGenerator{err: errors.New("upstream down")})

	_, err := svc.Advice(context.Background(), Observation{Condition: ConditionRain}, 50)
	assert.ErrorIs(t, err, ErrAdviceUnavailable)
}

func TestAdviceEmptyTextIsUnavailable(t *testing.T) {
	svc := NewService(&fakeTextGenerator{text: "   "})

	_, err := svc.Advice(context.Background(), Observation{Condition: ConditionClouds}, 50)
	assert.ErrorIs(t, err, ErrAdviceUnavailable)
}
