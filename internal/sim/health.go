package sim

// HealthStatus is the climber physiology snapshot, recomputed each tick.
// Bounded fields are clamped to their documented ranges after every update.
type HealthStatus struct {
	AltitudeSicknessSeverity int     `json:"altitude_sickness_severity"` // 0-3
	FatigueLevel             float64 `json:"fatigue_level"`              // 0-1
	HydrationLevel           float64 `json:"hydration_level"`            // 0-1
	NutritionLevel           float64 `json:"nutrition_level"`            // 0-1
}

func NewHealthStatus() HealthStatus {
	return HealthStatus{
		HydrationLevel: 0.8,
		NutritionLevel: 0.8,
	}
}

// Altitude thresholds above which sickness severity can step up, indexed by
// the severity level they unlock.
const (
	sicknessAltitudeMild     = 3500.0
	sicknessAltitudeSerious  = 5500.0
	sicknessAltitudeCritical = 7500.0

	acclimatizedDays = 3
)

// healthInput carries the per-tick exposure feeding the physiology update.
type healthInput struct {
	Altitude       float64
	Exertion       float64 // 0-1, derived from workout intensity and heart rate
	SleepQuality   float64 // 0-1
	DaysAtAltitude int
	SicknessRisk   float64 // acclimatization tracker output
}

// updateHealth advances the physiology model by one tick. Fatigue rises with
// exertion and decays over rest, hydration drains faster at altitude and
// under load, nutrition drains slowly with passive recovery on rest days.
func updateHealth(prev HealthStatus, in healthInput) HealthStatus {
	out := prev

	exertion := clampFloat(in.Exertion, 0, 1)
	sleep := clampFloat(in.SleepQuality, 0, 1)

	// Fatigue: load adds, recovery subtracts. Poor sleep halves recovery.
	out.FatigueLevel += 0.3 * exertion
	recovery := 0.1 * (1 - exertion)
	if sleep < 0.5 {
		recovery *= 0.5
	}
	out.FatigueLevel -= recovery

	// Hydration drains every tick, scaled by altitude and effort.
	drain := 0.05 + 0.04*(in.Altitude/8000) + 0.06*exertion
	out.HydrationLevel -= drain

	// Nutrition moves slower than hydration and creeps back on rest days.
	if exertion < 0.1 {
		out.NutritionLevel += 0.03
	} else {
		out.NutritionLevel -= 0.02 + 0.02*exertion
	}

	out.AltitudeSicknessSeverity = nextSicknessSeverity(prev, in)

	return out.clamped()
}

// nextSicknessSeverity steps severity toward the altitude-implied target.
// The climb up happens only when acclimatization lags or the body is already
// compromised; the climb down needs a couple of settled days.
func nextSicknessSeverity(prev HealthStatus, in healthInput) int {
	target := sicknessTarget(in.Altitude)
	sev := prev.AltitudeSicknessSeverity

	switch {
	case target > sev:
		vulnerable := in.DaysAtAltitude < acclimatizedDays ||
			in.SicknessRisk > 0.7 ||
			prev.HydrationLevel < 0.4 ||
			prev.FatigueLevel > 0.8
		if vulnerable {
			sev++
		}
	case target < sev:
		if in.DaysAtAltitude >= 2 && in.SicknessRisk < 0.3 {
			sev--
		}
	}

	return clamp(sev, 0, 3)
}

func sicknessTarget(altitude float64) int {
	switch {
	case altitude > sicknessAltitudeCritical:
		return 3
	case altitude > sicknessAltitudeSerious:
		return 2
	case altitude > sicknessAltitudeMild:
		return 1
	default:
		return 0
	}
}

func (h HealthStatus) clamped() HealthStatus {
	h.AltitudeSicknessSeverity = clamp(h.AltitudeSicknessSeverity, 0, 3)
	h.FatigueLevel = clampFloat(h.FatigueLevel, 0, 1)
	h.HydrationLevel = clampFloat(h.HydrationLevel, 0, 1)
	h.NutritionLevel = clampFloat(h.NutritionLevel, 0, 1)
	return h
}

func clamp(number, min, max int) int {
	if number < min {
		return min
	}
	if number > max {
		return max
	}
	return number
}

func clampFloat(number, min, max float64) float64 {
	if number < min {
		return min
	}
	if number > max {
		return max
	}
	return number
}
