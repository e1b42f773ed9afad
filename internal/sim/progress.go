package sim

import (
	"fmt"
	"math"
	"time"
)

// DefaultSleepQuality stands in when the health-data collaborator has no
// sleep reading for the day.
const DefaultSleepQuality = 0.5

// minImpact keeps every impact factor strictly positive: bad days slow an
// expedition, they never stall it.
const minImpact = 0.05

// acclimatizationPenalty scales how hard sickness risk bites into progress.
const acclimatizationPenalty = 0.5

// RealisticProgress is the per-tick report of the four impact factors. Their
// product is the effective progress multiplier applied to the raw input.
type RealisticProgress struct {
	AltitudeGain          float64 `json:"altitude_gain"`
	WeatherImpact         float64 `json:"weather_impact"`
	HealthImpact          float64 `json:"health_impact"`
	EquipmentImpact       float64 `json:"equipment_impact"`
	AcclimatizationImpact float64 `json:"acclimatization_impact"`
}

func (p RealisticProgress) EffectiveMultiplier() float64 {
	return p.WeatherImpact * p.HealthImpact * p.EquipmentImpact * p.AcclimatizationImpact
}

// TickInput is one day's resolved activity from the health-data collaborator.
type TickInput struct {
	Steps            int
	Elevation        float64
	Workouts         []WorkoutData
	HeartRate        []float64
	WorkoutIntensity float64 // 0-1
	SleepQuality     float64 // 0-1
	Date             time.Time // zero value means the engine clock's now
}

func (in TickInput) validate() error {
	if in.Steps < 0 {
		return fmt.Errorf("%w: negative steps %d", ErrInvalidInput, in.Steps)
	}
	if in.Elevation < 0 {
		return fmt.Errorf("%w: negative elevation %.1f", ErrInvalidInput, in.Elevation)
	}
	if in.WorkoutIntensity < 0 || in.SleepQuality < 0 {
		return fmt.Errorf("%w: negative intensity or sleep quality", ErrInvalidInput)
	}
	for _, hr := range in.HeartRate {
		if hr < 0 {
			return fmt.Errorf("%w: negative heart rate sample", ErrInvalidInput)
		}
	}
	for _, w := range in.Workouts {
		if err := w.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// TickResult is everything a tick produced, returned alongside the updated
// snapshots available through the engine getters.
type TickResult struct {
	Progress          RealisticProgress
	CreditedSteps     int
	CreditedElevation float64
	ReachedCamps      []Camp
	ZoneChange        *ZoneTransition
	Risks             []RiskFactor
	Tips              []ClimbingTip
	Completed         bool
}

// Tick runs one simulation step over the day's raw activity. All validation
// happens before any state mutation; a returned error leaves the engine
// untouched.
func (e *Engine) Tick(in TickInput) (TickResult, error) {
	if e.expedition == nil {
		return TickResult{}, ErrNoActiveExpedition
	}
	if err := in.validate(); err != nil {
		return TickResult{}, err
	}

	date := in.Date
	if date.IsZero() {
		date = e.now()
	}

	camp, ok := e.mountain.CampByID(e.expedition.CurrentCampID)
	if !ok {
		camp = e.mountain.BaseCamp()
	}
	altitude := camp.Altitude

	_, hasToday := e.expedition.TodayProgress(date)
	newDay := !hasToday

	weather := e.weatherFn(altitude, e.daySeed(date))
	exertion := exertionFor(in)

	acclim := advanceAcclimatization(e.acclim, altitude, newDay)
	health := updateHealth(e.health, healthInput{
		Altitude:       altitude,
		Exertion:       exertion,
		SleepQuality:   in.SleepQuality,
		DaysAtAltitude: acclim.DaysAtCurrentAltitude,
		SicknessRisk:   acclim.AltitudeSicknessRisk,
	})
	equipment := decayEquipment(e.equipment, weather, exertion)

	progress := RealisticProgress{
		WeatherImpact:         clampFloat(weather.ProgressModifier, minImpact, 1),
		HealthImpact:          healthImpactFor(health),
		EquipmentImpact:       clampFloat(equipmentImpact(equipment, e.mountain.EquipmentRequired), minImpact, 1),
		AcclimatizationImpact: clampFloat(1-acclim.AltitudeSicknessRisk*acclimatizationPenalty, minImpact, 1),
	}

	multiplier := progress.EffectiveMultiplier()
	creditedSteps := int(math.Round(float64(in.Steps) * multiplier))
	creditedElevation := in.Elevation * multiplier * dayWorkoutMultiplier(in.Workouts)
	progress.AltitudeGain = altitudeGainFor(e.mountain, altitude, creditedElevation)

	zoneBefore := ZoneForAltitude(altitude)

	// Commit: input was validated, everything below is infallible.
	e.acclim = acclim
	e.health = health
	e.equipment = equipment
	e.weather = weather

	reached := e.expedition.advance(e.mountain, creditedSteps, creditedElevation, e.now())
	e.expedition.recordDay(date, in.Steps, in.Elevation, creditedSteps, creditedElevation, multiplier, in.Workouts)

	newAltitude := e.CurrentAltitude()
	var zoneChange *ZoneTransition
	if zoneAfter := ZoneForAltitude(newAltitude); zoneAfter != zoneBefore {
		zoneChange = &ZoneTransition{From: zoneBefore, To: zoneAfter, Altitude: newAltitude}
	}

	e.evaluateState(newAltitude)
	e.lastProgress = progress
	e.resetMitigationWindow()

	return TickResult{
		Progress:          progress,
		CreditedSteps:     creditedSteps,
		CreditedElevation: creditedElevation,
		ReachedCamps:      reached,
		ZoneChange:        zoneChange,
		Risks:             e.Risks(),
		Tips:              e.Tips(),
		Completed:         e.expedition.IsCompleted,
	}, nil
}

// healthImpactFor maps physiology into a progress factor. Penalties step in
// at the same thresholds the risk evaluator watches, so the factor stays at
// 1.0 for a healthy climber.
func healthImpactFor(h HealthStatus) float64 {
	impact := 1.0
	impact -= 0.2 * float64(h.AltitudeSicknessSeverity)

	switch {
	case h.FatigueLevel > 0.7:
		impact -= 0.2
	case h.FatigueLevel > 0.5:
		impact -= 0.1
	}

	switch {
	case h.HydrationLevel < 0.3:
		impact -= 0.15
	case h.HydrationLevel < 0.6:
		impact -= 0.1
	}

	return clampFloat(impact, minImpact, 1)
}

// exertionFor derives a 0-1 exertion proxy from the reported workout
// intensity, raised when heart-rate samples indicate a harder session.
func exertionFor(in TickInput) float64 {
	exertion := clampFloat(in.WorkoutIntensity, 0, 1)

	if avg := averageSample(in.HeartRate); avg > 0 {
		// Estimated max heart rate for the default profile.
		const estimatedMaxHR = 190.0
		switch pct := avg / estimatedMaxHR; {
		case pct >= 0.85:
			exertion = math.Max(exertion, 0.9)
		case pct >= 0.65:
			exertion = math.Max(exertion, 0.6)
		}
	}
	return exertion
}

func averageSample(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range samples {
		sum += s
	}
	return sum / float64(len(samples))
}

// altitudeGainFor estimates virtual ascent for the tick: a tenth of credited
// elevation, scaled by mountain difficulty and squeezed near the top.
func altitudeGainFor(mountain Mountain, altitude, creditedElevation float64) float64 {
	base := creditedElevation * 0.1
	difficulty := mountain.DifficultyMultiplier / 10.0
	if difficulty <= 0 {
		difficulty = 1.0
	}
	penalty := math.Max(0.1, 1.0-(altitude/mountain.Height)*0.8)
	return base * difficulty * penalty
}
