package sim

// AcclimatizationStatus tracks how settled the climber is at the current
// altitude band. MaxAltitudeReached only ever grows, even across descents.
type AcclimatizationStatus struct {
	DaysAtCurrentAltitude int     `json:"days_at_current_altitude"`
	AltitudeSicknessRisk  float64 `json:"altitude_sickness_risk"` // 0-1
	MaxAltitudeReached    float64 `json:"max_altitude_reached"`
	AcclimatizedAltitude  float64 `json:"acclimatized_altitude"`
	CurrentBand           int     `json:"current_band"`
}

const (
	// altitudeBandSize groups altitudes into 500 m bands; moving bands
	// resets the days-at-altitude counter.
	altitudeBandSize = 500.0

	// deathZoneAltitude is where sickness risk never reaches zero no
	// matter how long the climber waits.
	deathZoneAltitude  = 7500.0
	deathZoneRiskFloor = 0.25
)

func newAcclimatizationStatus(startAltitude float64) AcclimatizationStatus {
	return AcclimatizationStatus{
		MaxAltitudeReached:   startAltitude,
		AcclimatizedAltitude: startAltitude,
		CurrentBand:          altitudeBand(startAltitude),
	}
}

func altitudeBand(altitude float64) int {
	if altitude < 0 {
		return 0
	}
	return int(altitude / altitudeBandSize)
}

// advanceAcclimatization moves the tracker one tick. Day counting happens
// once per new calendar day and restarts whenever the climber changes band;
// the acclimatized altitude ratchets up after enough settled days.
func advanceAcclimatization(prev AcclimatizationStatus, altitude float64, newDay bool) AcclimatizationStatus {
	out := prev

	band := altitudeBand(altitude)
	if band != prev.CurrentBand {
		out.CurrentBand = band
		out.DaysAtCurrentAltitude = 0
	} else if newDay {
		out.DaysAtCurrentAltitude++
	}

	if altitude > out.MaxAltitudeReached {
		out.MaxAltitudeReached = altitude
	}
	if out.DaysAtCurrentAltitude >= acclimatizedDays && altitude > out.AcclimatizedAltitude {
		out.AcclimatizedAltitude = altitude
	}

	out.AltitudeSicknessRisk = sicknessRiskFor(altitude, out.AcclimatizedAltitude, out.DaysAtCurrentAltitude)
	return out
}

// sicknessRiskFor rises with the gap above the acclimatized altitude and
// falls with settled days. Inside the death zone the risk is floored.
func sicknessRiskFor(altitude, acclimatized float64, days int) float64 {
	gap := altitude - acclimatized
	if gap < 0 {
		gap = 0
	}

	risk := gap/3000.0 - 0.05*float64(days)
	risk = clampFloat(risk, 0, 1)

	if altitude >= deathZoneAltitude && risk < deathZoneRiskFloor {
		risk = deathZoneRiskFloor
	}
	return risk
}
