package sim

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func testCamp(name string, altitude float64, steps int, elevation float64, base, summit bool) Camp {
	return Camp{
		ID:                uuid.New(),
		Name:              name,
		Altitude:          altitude,
		StepsRequired:     steps,
		ElevationRequired: elevation,
		IsBaseCamp:        base,
		IsSummit:          summit,
	}
}

func testMountain() Mountain {
	return Mountain{
		ID:                   uuid.New(),
		Name:                 "Testpeak",
		Height:               5895,
		Difficulty:           DifficultyIntermediate,
		DifficultyMultiplier: 10,
		Camps: []Camp{
			testCamp("Base Camp", 1000, 0, 0, true, false),
			testCamp("Camp One", 3000, 15000, 500, false, false),
			testCamp("Camp Two", 4500, 35000, 1500, false, false),
			testCamp("Camp Three", 5200, 60000, 3000, false, false),
			testCamp("Summit", 5895, 100000, 4500, false, true),
		},
	}
}

func clearWeather(altitude float64, daySeed int64) WeatherCondition {
	return weatherConditions[WeatherClear]
}

// testEngine starts an expedition on Testpeak with pinned weather and a
// clock that the returned function advances one day at a time.
func testEngine(t *testing.T) (*Engine, func() time.Time) {
	t.Helper()

	current := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	clock := func() time.Time { return current }
	nextDay := func() time.Time {
		current = current.Add(24 * time.Hour)
		return current
	}

	engine := NewEngine(WithSeed(7), WithClock(clock), WithWeatherFunc(clearWeather))
	if err := engine.Start(testMountain()); err != nil {
		t.Fatalf("start: %v", err)
	}
	return engine, nextDay
}

func TestStartRejectsSecondExpedition(t *testing.T) {
	engine, _ := testEngine(t)
	if err := engine.Start(testMountain()); !errors.Is(err, ErrAlreadyActive) {
		t.Fatalf("second start error = %v, want ErrAlreadyActive", err)
	}
}

func TestStartRejectsInvalidMountain(t *testing.T) {
	engine := NewEngine(WithSeed(1))
	bad := testMountain()
	bad.Camps = bad.Camps[:1]
	if err := engine.Start(bad); !errors.Is(err, ErrInvalidMountain) {
		t.Fatalf("start error = %v, want ErrInvalidMountain", err)
	}
}

func TestTickWithoutExpedition(t *testing.T) {
	engine := NewEngine(WithSeed(1))
	if _, err := engine.Tick(TickInput{Steps: 100}); !errors.Is(err, ErrNoActiveExpedition) {
		t.Fatalf("tick error = %v, want ErrNoActiveExpedition", err)
	}
}

func TestTickRejectsNegativeInputWithoutMutation(t *testing.T) {
	engine, _ := testEngine(t)
	before, _ := engine.Expedition()

	if _, err := engine.Tick(TickInput{Steps: -1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("tick error = %v, want ErrInvalidInput", err)
	}
	if _, err := engine.Tick(TickInput{Elevation: -5}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("tick error = %v, want ErrInvalidInput", err)
	}
	if _, err := engine.Tick(TickInput{HeartRate: []float64{120, -3}}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("tick error = %v, want ErrInvalidInput", err)
	}
	if _, err := engine.Tick(TickInput{Workouts: []WorkoutData{{Type: "swimming_with_sharks"}}}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("tick error = %v, want ErrInvalidInput", err)
	}

	after, _ := engine.Expedition()
	if after.TotalSteps != before.TotalSteps || len(after.DailyProgress) != len(before.DailyProgress) {
		t.Fatal("rejected tick mutated expedition state")
	}
}

func TestFreshClimberGetsFullCredit(t *testing.T) {
	engine, _ := testEngine(t)

	result, err := engine.Tick(TickInput{Steps: 8000, SleepQuality: DefaultSleepQuality})
	if err != nil {
		t.Fatalf("tick: %v", err)
	}

	// Clear weather, healthy physiology, near-fresh gear, fully
	// acclimatized at base altitude: every factor resolves to 1.0.
	if mult := result.Progress.EffectiveMultiplier(); !almostEqual(mult, 1.0) {
		t.Fatalf("multiplier = %.4f, want exactly 1.0 (%+v)", mult, result.Progress)
	}
	if result.CreditedSteps != 8000 {
		t.Fatalf("credited steps = %d, want 8000", result.CreditedSteps)
	}
}

func TestAdvanceRequiresBothThresholds(t *testing.T) {
	engine, nextDay := testEngine(t)

	// Steps alone blow past Camp One's threshold, but with zero elevation
	// the climber stays at base.
	result, err := engine.Tick(TickInput{Steps: 20000, SleepQuality: DefaultSleepQuality})
	if err != nil {
		t.Fatalf("tick: %v", err)
	}
	if len(result.ReachedCamps) != 0 {
		t.Fatalf("reached %d camps on a steps-only day, want 0", len(result.ReachedCamps))
	}
	if camp, _ := engine.CurrentCamp(); camp.Name != "Base Camp" {
		t.Fatalf("at %q, want Base Camp", camp.Name)
	}

	// The next day's elevation satisfies the second threshold.
	result, err = engine.Tick(TickInput{Elevation: 600, SleepQuality: DefaultSleepQuality, Date: nextDay()})
	if err != nil {
		t.Fatalf("tick: %v", err)
	}
	if len(result.ReachedCamps) != 1 || result.ReachedCamps[0].Name != "Camp One" {
		t.Fatalf("reached = %+v, want Camp One", result.ReachedCamps)
	}
	if result.ZoneChange == nil || result.ZoneChange.To != ZoneAlpineDesert {
		t.Fatalf("zone change = %+v, want transition into the alpine desert", result.ZoneChange)
	}
}

func TestDegradedConditionsQuarterTheCredit(t *testing.T) {
	engine, _ := testEngine(t)
	engine.weatherFn = func(altitude float64, daySeed int64) WeatherCondition {
		return weatherConditions[WeatherStorm]
	}

	// Pre-tick physiology chosen so the post-update snapshot lands on
	// healthImpact 0.5: sickness level 1 (-0.2), heavy fatigue (-0.2),
	// middling hydration (-0.1).
	engine.health.AltitudeSicknessSeverity = 1
	engine.health.FatigueLevel = 0.85
	engine.health.HydrationLevel = 0.5

	result, err := engine.Tick(TickInput{Steps: 20000, Elevation: 600, SleepQuality: DefaultSleepQuality})
	if err != nil {
		t.Fatalf("tick: %v", err)
	}

	if !almostEqual(result.Progress.WeatherImpact, 0.5) || !almostEqual(result.Progress.HealthImpact, 0.5) {
		t.Fatalf("impacts = %+v, want weather 0.5 and health 0.5", result.Progress)
	}
	if !almostEqual(result.Progress.EffectiveMultiplier(), 0.25) {
		t.Fatalf("multiplier = %.4f, want 0.25", result.Progress.EffectiveMultiplier())
	}
	if result.CreditedSteps != 5000 {
		t.Fatalf("credited steps = %d, want 5000", result.CreditedSteps)
	}
	// 5000 credited steps clear nothing, so the climber stays at base.
	if camp, _ := engine.CurrentCamp(); !camp.IsBaseCamp {
		t.Fatalf("at %q, want Base Camp", camp.Name)
	}
}

func TestSingleHugeTickJumpsToSummit(t *testing.T) {
	engine, _ := testEngine(t)

	result, err := engine.Tick(TickInput{
		Steps:        500000,
		Elevation:    5000,
		Workouts:     []WorkoutData{{Type: WorkoutClimbing, Duration: 4 * time.Hour, StartedAt: time.Now()}},
		SleepQuality: DefaultSleepQuality,
	})
	if err != nil {
		t.Fatalf("tick: %v", err)
	}

	if !result.Completed {
		t.Fatal("expected the expedition to complete")
	}
	if len(result.ReachedCamps) != 4 {
		t.Fatalf("reached %d camps, want all 4 above base", len(result.ReachedCamps))
	}
	if last := result.ReachedCamps[len(result.ReachedCamps)-1]; !last.IsSummit {
		t.Fatalf("last reached camp %q is not the summit", last.Name)
	}

	exp, _ := engine.Expedition()
	if !exp.IsCompleted || exp.CompletionDate == nil {
		t.Fatal("completion state not recorded")
	}
}

func TestPostCompletionTicksKeepAccumulating(t *testing.T) {
	engine, nextDay := testEngine(t)

	if _, err := engine.Tick(TickInput{
		Steps:        500000,
		Elevation:    5000,
		Workouts:     []WorkoutData{{Type: WorkoutClimbing, Duration: time.Hour, StartedAt: time.Now()}},
		SleepQuality: DefaultSleepQuality,
	}); err != nil {
		t.Fatalf("summit tick: %v", err)
	}

	exp, _ := engine.Expedition()
	completedAt := *exp.CompletionDate
	stepsAtSummit := exp.TotalSteps

	result, err := engine.Tick(TickInput{Steps: 4000, SleepQuality: DefaultSleepQuality, Date: nextDay()})
	if err != nil {
		t.Fatalf("post-completion tick: %v", err)
	}
	if len(result.ReachedCamps) != 0 {
		t.Fatal("no camps remain after the summit")
	}

	exp, _ = engine.Expedition()
	if !exp.IsCompleted {
		t.Fatal("completion flag lost")
	}
	if !exp.CompletionDate.Equal(completedAt) {
		t.Fatal("completion date changed on a later tick")
	}
	if exp.TotalSteps <= stepsAtSummit {
		t.Fatal("totals should keep accumulating after completion")
	}
}

func TestSameDayTicksFoldIntoOneRecord(t *testing.T) {
	engine, _ := testEngine(t)
	date := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	if _, err := engine.Tick(TickInput{Steps: 3000, SleepQuality: DefaultSleepQuality, Date: date}); err != nil {
		t.Fatalf("first tick: %v", err)
	}
	daysAfterFirst := engine.Acclimatization().DaysAtCurrentAltitude

	if _, err := engine.Tick(TickInput{Steps: 2000, SleepQuality: DefaultSleepQuality, Date: date.Add(6 * time.Hour)}); err != nil {
		t.Fatalf("second tick: %v", err)
	}

	exp, _ := engine.Expedition()
	if len(exp.DailyProgress) != 1 {
		t.Fatalf("daily records = %d, want 1", len(exp.DailyProgress))
	}
	if exp.DailyProgress[0].Steps != 5000 {
		t.Fatalf("daily steps = %d, want 5000", exp.DailyProgress[0].Steps)
	}
	if got := engine.Acclimatization().DaysAtCurrentAltitude; got != daysAfterFirst {
		t.Fatalf("same-day tick advanced the day counter: %d -> %d", daysAfterFirst, got)
	}
}

func TestRestDaysStillDrainHydration(t *testing.T) {
	engine, nextDay := testEngine(t)

	// A week of zero-activity ticks: hydration drains until the
	// dehydration risk fires even though the climber never moved.
	var sawDehydration bool
	for day := 0; day < 10; day++ {
		result, err := engine.Tick(TickInput{SleepQuality: DefaultSleepQuality, Date: nextDay()})
		if err != nil {
			t.Fatalf("day %d: %v", day, err)
		}
		for _, risk := range result.Risks {
			if risk.Type == RiskDehydration {
				sawDehydration = true
			}
		}
	}
	if !sawDehydration {
		t.Fatal("expected a dehydration risk after days without drinking")
	}

	exp, _ := engine.Expedition()
	if exp.TotalSteps != 0 {
		t.Fatalf("rest days credited %d steps", exp.TotalSteps)
	}
}

func TestTickInvariantsOverRandomSequence(t *testing.T) {
	engine, nextDay := testEngine(t)

	prevSteps := 0
	prevElevation := 0.0
	for day := 0; day < 120; day++ {
		steps := deterministicRoll(int64(day), "steps") % 20000
		elevation := float64(deterministicRoll(int64(day), "elev") % 800)
		intensity := float64(deterministicRoll(int64(day), "int")%100) / 100

		result, err := engine.Tick(TickInput{
			Steps:            steps,
			Elevation:        elevation,
			WorkoutIntensity: intensity,
			SleepQuality:     DefaultSleepQuality,
			Date:             nextDay(),
		})
		if err != nil {
			t.Fatalf("day %d: %v", day, err)
		}

		if mult := result.Progress.EffectiveMultiplier(); mult <= 0 || mult > 1 {
			t.Fatalf("day %d: multiplier %.4f out of (0,1]", day, mult)
		}
		if result.CreditedSteps > steps {
			t.Fatalf("day %d: credited %d steps from %d raw", day, result.CreditedSteps, steps)
		}

		exp, _ := engine.Expedition()
		if exp.TotalSteps < prevSteps || exp.TotalElevation < prevElevation {
			t.Fatalf("day %d: totals regressed", day)
		}
		prevSteps = exp.TotalSteps
		prevElevation = exp.TotalElevation

		health := engine.Health()
		for _, level := range []float64{health.FatigueLevel, health.HydrationLevel, health.NutritionLevel} {
			if level < 0 || level > 1 {
				t.Fatalf("day %d: health level %.4f out of range", day, level)
			}
		}
		if risk := engine.Acclimatization().AltitudeSicknessRisk; risk < 0 || risk > 1 {
			t.Fatalf("day %d: sickness risk %.4f out of range", day, risk)
		}
		for _, item := range engine.Equipment() {
			if item.Durability < 0 || item.Durability > 100 {
				t.Fatalf("day %d: durability %d out of range", day, item.Durability)
			}
		}
	}
}

func TestAbandonAndReset(t *testing.T) {
	engine, _ := testEngine(t)
	if _, err := engine.Tick(TickInput{Steps: 20000, Elevation: 600, SleepQuality: DefaultSleepQuality}); err != nil {
		t.Fatalf("tick: %v", err)
	}

	if err := engine.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	exp, _ := engine.Expedition()
	if exp.TotalSteps != 0 || exp.TotalElevation != 0 {
		t.Fatal("reset left totals behind")
	}
	if camp, _ := engine.CurrentCamp(); !camp.IsBaseCamp {
		t.Fatalf("reset left the climber at %q", camp.Name)
	}

	engine.Abandon()
	if _, ok := engine.Expedition(); ok {
		t.Fatal("abandon left an active expedition")
	}
	engine.Abandon() // safe to repeat
	if err := engine.Reset(); !errors.Is(err, ErrNoActiveExpedition) {
		t.Fatalf("reset after abandon = %v, want ErrNoActiveExpedition", err)
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	engine, nextDay := testEngine(t)
	for day := 0; day < 5; day++ {
		if _, err := engine.Tick(TickInput{Steps: 9000, Elevation: 300, SleepQuality: DefaultSleepQuality, Date: nextDay()}); err != nil {
			t.Fatalf("day %d: %v", day, err)
		}
	}

	snap := engine.Snapshot()
	restored, err := Restore(snap, WithWeatherFunc(clearWeather))
	if err != nil {
		t.Fatalf("restore: %v", err)
	}

	origExp, _ := engine.Expedition()
	restExp, ok := restored.Expedition()
	if !ok {
		t.Fatal("restored engine has no expedition")
	}
	if restExp.ID != origExp.ID || restExp.TotalSteps != origExp.TotalSteps || len(restExp.DailyProgress) != len(origExp.DailyProgress) {
		t.Fatalf("restored expedition differs: %+v vs %+v", restExp, origExp)
	}
	if restored.Health() != engine.Health() {
		t.Fatal("restored health differs")
	}
	if restored.Mountain().Name != engine.Mountain().Name {
		t.Fatal("restored mountain differs")
	}
}

func TestRestoreRejectsBrokenSnapshot(t *testing.T) {
	engine, _ := testEngine(t)
	snap := engine.Snapshot()
	snap.Mountain.Camps = snap.Mountain.Camps[:1]

	if _, err := Restore(snap); !errors.Is(err, ErrInvalidMountain) {
		t.Fatalf("restore error = %v, want ErrInvalidMountain", err)
	}
}

func TestSummitProgress(t *testing.T) {
	engine, _ := testEngine(t)
	if got := engine.SummitProgress(); got != 0 {
		t.Fatalf("fresh progress = %.2f, want 0", got)
	}
	if _, err := engine.Tick(TickInput{Steps: 30000, SleepQuality: DefaultSleepQuality}); err != nil {
		t.Fatalf("tick: %v", err)
	}
	if got := engine.SummitProgress(); !almostEqual(got, 0.3) {
		t.Fatalf("progress = %.2f, want 0.3", got)
	}
}
