package sim

import (
	"time"

	"github.com/google/uuid"
)

// DailyProgress is the append-only per-calendar-day activity record. A
// second tick on the same date folds into the existing entry.
type DailyProgress struct {
	Date              time.Time     `json:"date"`
	Steps             int           `json:"steps"`
	Elevation         float64       `json:"elevation"`
	CreditedSteps     int           `json:"credited_steps"`
	CreditedElevation float64       `json:"credited_elevation"`
	Multiplier        float64       `json:"multiplier"`
	Workouts          []WorkoutData `json:"workouts,omitempty"`
}

// ExpeditionProgress is the mutable per-climb state. It is owned by the
// caller but mutated only through the engine.
type ExpeditionProgress struct {
	ID             uuid.UUID       `json:"id"`
	MountainID     uuid.UUID       `json:"mountain_id"`
	CurrentCampID  uuid.UUID       `json:"current_camp_id"`
	TotalSteps     int             `json:"total_steps"`
	TotalElevation float64         `json:"total_elevation"`
	StartDate      time.Time       `json:"start_date"`
	LastUpdateDate time.Time       `json:"last_update_date"`
	IsCompleted    bool            `json:"is_completed"`
	CompletionDate *time.Time      `json:"completion_date,omitempty"`
	DailyProgress  []DailyProgress `json:"daily_progress,omitempty"`
}

func newExpeditionProgress(mountain Mountain, now time.Time) ExpeditionProgress {
	return ExpeditionProgress{
		ID:             uuid.New(),
		MountainID:     mountain.ID,
		CurrentCampID:  mountain.BaseCamp().ID,
		StartDate:      now,
		LastUpdateDate: now,
	}
}

// advance credits steps and elevation, then walks the camps in order and
// lands on the furthest one whose step AND elevation thresholds are both
// met. Camps skipped in a single large tick are reported once as reached.
// After completion the camp position is frozen; totals keep accumulating.
func (e *ExpeditionProgress) advance(mountain Mountain, creditedSteps int, creditedElevation float64, now time.Time) []Camp {
	e.TotalSteps += creditedSteps
	e.TotalElevation += creditedElevation
	e.LastUpdateDate = now

	if e.IsCompleted {
		return nil
	}

	currentIdx := mountain.campIndex(e.CurrentCampID)
	target := currentIdx
	for i, camp := range mountain.Camps {
		if e.TotalSteps >= camp.StepsRequired && e.TotalElevation >= camp.ElevationRequired {
			target = i
		}
	}

	if target <= currentIdx {
		return nil
	}

	reached := make([]Camp, 0, target-currentIdx)
	for i := currentIdx + 1; i <= target; i++ {
		reached = append(reached, mountain.Camps[i])
	}

	e.CurrentCampID = mountain.Camps[target].ID
	if mountain.Camps[target].IsSummit {
		e.IsCompleted = true
		completion := now
		e.CompletionDate = &completion
	}
	return reached
}

// recordDay upserts the daily record for the tick's calendar date.
func (e *ExpeditionProgress) recordDay(date time.Time, rawSteps int, rawElevation float64, creditedSteps int, creditedElevation float64, multiplier float64, workouts []WorkoutData) {
	day := startOfDay(date)
	for i := range e.DailyProgress {
		if sameDay(e.DailyProgress[i].Date, day) {
			e.DailyProgress[i].Steps += rawSteps
			e.DailyProgress[i].Elevation += rawElevation
			e.DailyProgress[i].CreditedSteps += creditedSteps
			e.DailyProgress[i].CreditedElevation += creditedElevation
			e.DailyProgress[i].Multiplier = multiplier
			e.DailyProgress[i].Workouts = append(e.DailyProgress[i].Workouts, workouts...)
			return
		}
	}
	e.DailyProgress = append(e.DailyProgress, DailyProgress{
		Date:              day,
		Steps:             rawSteps,
		Elevation:         rawElevation,
		CreditedSteps:     creditedSteps,
		CreditedElevation: creditedElevation,
		Multiplier:        multiplier,
		Workouts:          append([]WorkoutData(nil), workouts...),
	})
}

// TodayProgress returns the record for the given date's calendar day.
func (e ExpeditionProgress) TodayProgress(date time.Time) (DailyProgress, bool) {
	for _, dp := range e.DailyProgress {
		if sameDay(dp.Date, date) {
			return dp, true
		}
	}
	return DailyProgress{}, false
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
