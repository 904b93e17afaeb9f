package laundry

import "math"

// Weather condition classes as reported by the forecast provider.
const (
	ConditionClear   = "Clear"
	ConditionClouds  = "Clouds"
	ConditionRain    = "Rain"
	ConditionDrizzle = "Drizzle"
)

// Observation is a single weather reading; the score is derived from
// nothing else.
type Observation struct {
	Condition string
	TempC     float64
	Humidity  float64
	WindSpeed float64
}

// Score rates drying conditions from 0 to 100. Clear skies contribute 50
// points, clouds 30, anything wet nothing. Warmth above 15°C adds up to 30,
// low humidity up to 10 (gone near 100%), and wind up to 10 (full at
// 5 m/s). The sum is rounded to the nearest integer, then clamped.
func Score(o Observation) int {
	score := 0.0

	switch o.Condition {
	case ConditionClear:
		score += 50
	case ConditionClouds:
		score += 30
	}

	score += math.Min(math.Max(0, o.TempC-15)*2, 30)
	score += math.Max(0, 10-(o.Humidity-40)/6)
	score += math.Min(o.WindSpeed*2, 10)

	rounded := int(math.Round(score))
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return rounded
}

// TimerMinutes suggests a drying-timer length for a load measured as a
// drum-fill percentage: 10 minutes for an empty drum, 30 for a full one,
// rounded up.
func TimerMinutes(loadPercent float64) int {
	return int(math.Ceil(10 + loadPercent/5))
}
