package sim

import "fmt"

// WeatherCondition is the single active condition for a tick. The progress
// modifier is strictly positive so a stretch of bad weather slows an
// expedition without stalling it outright.
type WeatherCondition struct {
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	ProgressModifier float64  `json:"progress_modifier"`
	SafetyRisk       Severity `json:"safety_risk"`
}

const (
	WeatherClear    = "Clear"
	WeatherCloudy   = "Cloudy"
	WeatherWindy    = "Windy"
	WeatherStorm    = "Storm"
	WeatherBlizzard = "Blizzard"
)

var weatherConditions = map[string]WeatherCondition{
	WeatherClear:    {Name: WeatherClear, Description: "Perfect climbing conditions", ProgressModifier: 1.0, SafetyRisk: SeverityLow},
	WeatherCloudy:   {Name: WeatherCloudy, Description: "Reduced visibility but safe", ProgressModifier: 0.9, SafetyRisk: SeverityLow},
	WeatherWindy:    {Name: WeatherWindy, Description: "Strong winds, increased difficulty", ProgressModifier: 0.75, SafetyRisk: SeverityModerate},
	WeatherStorm:    {Name: WeatherStorm, Description: "Dangerous conditions, shelter advised", ProgressModifier: 0.5, SafetyRisk: SeverityHigh},
	WeatherBlizzard: {Name: WeatherBlizzard, Description: "Extreme conditions, barely any progress possible", ProgressModifier: 0.25, SafetyRisk: SeverityExtreme},
}

// ConditionByName looks up the tuning table entry for a condition name.
func ConditionByName(name string) (WeatherCondition, bool) {
	c, ok := weatherConditions[name]
	return c, ok
}

type weightedWeather struct {
	Name   string
	Weight int
}

// weatherBand buckets altitude into the four regimes the weight tables are
// authored for. Everything inside a band sees the same daily condition.
func weatherBand(altitude float64) int {
	switch {
	case altitude < 2500:
		return 0
	case altitude < 4000:
		return 1
	case altitude < 6000:
		return 2
	default:
		return 3
	}
}

func weatherWeightsForBand(band int) []weightedWeather {
	switch band {
	case 0:
		return []weightedWeather{
			{Name: WeatherClear, Weight: 42},
			{Name: WeatherCloudy, Weight: 30},
			{Name: WeatherWindy, Weight: 18},
			{Name: WeatherStorm, Weight: 10},
		}
	case 1:
		return []weightedWeather{
			{Name: WeatherClear, Weight: 32},
			{Name: WeatherCloudy, Weight: 28},
			{Name: WeatherWindy, Weight: 22},
			{Name: WeatherStorm, Weight: 14},
			{Name: WeatherBlizzard, Weight: 4},
		}
	case 2:
		return []weightedWeather{
			{Name: WeatherClear, Weight: 22},
			{Name: WeatherCloudy, Weight: 24},
			{Name: WeatherWindy, Weight: 26},
			{Name: WeatherStorm, Weight: 18},
			{Name: WeatherBlizzard, Weight: 10},
		}
	default:
		return []weightedWeather{
			{Name: WeatherClear, Weight: 12},
			{Name: WeatherCloudy, Weight: 18},
			{Name: WeatherWindy, Weight: 28},
			{Name: WeatherStorm, Weight: 24},
			{Name: WeatherBlizzard, Weight: 18},
		}
	}
}

// CurrentWeather resolves the day's condition for the given altitude. The
// same (altitude band, daySeed) pair always yields the same condition.
func CurrentWeather(altitude float64, daySeed int64) WeatherCondition {
	band := weatherBand(altitude)
	weights := weatherWeightsForBand(band)

	total := 0
	for _, entry := range weights {
		total += entry.Weight
	}

	roll := deterministicRoll(daySeed, fmt.Sprintf("band:%d:weather", band)) % total
	cumulative := 0
	for _, entry := range weights {
		cumulative += entry.Weight
		if roll < cumulative {
			return weatherConditions[entry.Name]
		}
	}
	return weatherConditions[weights[len(weights)-1].Name]
}
