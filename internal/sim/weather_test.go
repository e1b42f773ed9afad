package sim

import "testing"

func TestCurrentWeatherIsDeterministicPerDay(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		first := CurrentWeather(3200, seed)
		second := CurrentWeather(3200, seed)
		if first.Name != second.Name {
			t.Fatalf("same seed %d produced %s then %s", seed, first.Name, second.Name)
		}
	}
}

func TestCurrentWeatherSameBandSameCondition(t *testing.T) {
	// 4100 and 5900 share the 4000-6000 band, so a given day resolves
	// identically at both altitudes.
	for seed := int64(0); seed < 100; seed++ {
		low := CurrentWeather(4100, seed)
		high := CurrentWeather(5900, seed)
		if low.Name != high.Name {
			t.Fatalf("seed %d: same band produced %s at 4100m and %s at 5900m", seed, low.Name, high.Name)
		}
	}
}

func TestCurrentWeatherNoBlizzardAtLowAltitude(t *testing.T) {
	for seed := int64(0); seed < 500; seed++ {
		condition := CurrentWeather(1000, seed)
		if condition.Name == WeatherBlizzard {
			t.Fatalf("seed %d produced a blizzard below 2500m", seed)
		}
	}
}

func TestCurrentWeatherModifiersStayPositive(t *testing.T) {
	altitudes := []float64{0, 2400, 2500, 3900, 4000, 5999, 6000, 8848}
	for _, altitude := range altitudes {
		for seed := int64(0); seed < 200; seed++ {
			condition := CurrentWeather(altitude, seed)
			if condition.ProgressModifier <= 0 || condition.ProgressModifier > 1 {
				t.Fatalf("altitude %.0f seed %d: modifier %.2f out of (0,1]", altitude, seed, condition.ProgressModifier)
			}
		}
	}
}

func TestHighAltitudeSeesMoreSevereWeather(t *testing.T) {
	severe := func(altitude float64) int {
		count := 0
		for seed := int64(0); seed < 1000; seed++ {
			c := CurrentWeather(altitude, seed)
			if c.Name == WeatherStorm || c.Name == WeatherBlizzard {
				count++
			}
		}
		return count
	}

	valley := severe(1000)
	deathZone := severe(8000)
	if deathZone <= valley {
		t.Fatalf("expected more severe weather at 8000m than 1000m, got %d <= %d", deathZone, valley)
	}
}

func TestConditionByName(t *testing.T) {
	condition, ok := ConditionByName(WeatherBlizzard)
	if !ok {
		t.Fatal("blizzard missing from the condition table")
	}
	if condition.ProgressModifier != 0.25 {
		t.Fatalf("blizzard modifier = %.2f, want 0.25", condition.ProgressModifier)
	}
	if condition.SafetyRisk != SeverityExtreme {
		t.Fatalf("blizzard safety risk = %s, want extreme", condition.SafetyRisk)
	}
	if _, ok := ConditionByName("Volcano"); ok {
		t.Fatal("unknown condition name resolved")
	}
}
